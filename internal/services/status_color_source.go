package services

import (
	"context"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"orderstatuscolor/server/internal/models"
	"orderstatuscolor/server/internal/statuscolor"
)

// DefaultRedisColorKey is the hash holding status id -> color text.
const DefaultRedisColorKey = "order_status_color"

// OverrideSource returns the operator-chosen status colors ordered by status id.
type OverrideSource interface {
	ListOverrides(ctx context.Context) ([]statuscolor.StatusColorOverride, error)
}

// PostgresOverrideSource reads mtb_order_status_color
type PostgresOverrideSource struct {
	db *gorm.DB
}

// NewPostgresOverrideSource создает источник цветов на базе PostgreSQL
func NewPostgresOverrideSource(db *gorm.DB) *PostgresOverrideSource {
	return &PostgresOverrideSource{db: db}
}

// ListOverrides returns every color row ordered by id.
func (s *PostgresOverrideSource) ListOverrides(ctx context.Context) ([]statuscolor.StatusColorOverride, error) {
	var rows []models.OrderStatusColor
	if err := s.db.WithContext(ctx).Select("id", "name").Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "listing order status colors")
	}

	overrides := make([]statuscolor.StatusColorOverride, 0, len(rows))
	for _, row := range rows {
		overrides = append(overrides, statuscolor.StatusColorOverride{
			StatusID: row.ID,
			RawColor: row.Color(),
		})
	}
	return overrides, nil
}

// RedisOverrideSource reads the colors from a Redis hash keyed by status id.
type RedisOverrideSource struct {
	client redis.Cmdable
	key    string
}

// NewRedisOverrideSource creates a source over the given hash key.
func NewRedisOverrideSource(client redis.Cmdable, key string) *RedisOverrideSource {
	if key == "" {
		key = DefaultRedisColorKey
	}
	return &RedisOverrideSource{client: client, key: key}
}

// ListOverrides returns the hash fields ordered by status id.
func (s *RedisOverrideSource) ListOverrides(ctx context.Context) ([]statuscolor.StatusColorOverride, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "reading hash %s", s.key)
	}
	return overridesFromHash(s.key, fields), nil
}

// overridesFromHash skips fields that are not status ids.
func overridesFromHash(key string, fields map[string]string) []statuscolor.StatusColorOverride {
	overrides := make([]statuscolor.StatusColorOverride, 0, len(fields))
	for field, color := range fields {
		id, err := strconv.Atoi(field)
		if err != nil {
			log.WithFields(log.Fields{"key": key, "field": field}).Warn("Ignoring non-numeric status color field")
			continue
		}
		overrides = append(overrides, statuscolor.StatusColorOverride{StatusID: id, RawColor: color})
	}
	sort.Slice(overrides, func(i, j int) bool {
		return overrides[i].StatusID < overrides[j].StatusID
	})
	return overrides
}
