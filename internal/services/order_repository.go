package services

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"orderstatuscolor/server/internal/models"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// StatusLister returns every known order status id.
type StatusLister interface {
	ListStatusIDs(ctx context.Context) ([]int, error)
}

// OrderStatusRepository reads the order status master list
type OrderStatusRepository struct {
	db *gorm.DB
}

// NewOrderStatusRepository создает новый экземпляр OrderStatusRepository
func NewOrderStatusRepository(db *gorm.DB) *OrderStatusRepository {
	return &OrderStatusRepository{db: db}
}

// FindAll returns all statuses in display order.
func (r *OrderStatusRepository) FindAll(ctx context.Context) ([]models.OrderStatus, error) {
	var statuses []models.OrderStatus
	if err := r.db.WithContext(ctx).Order("sort_no").Order("id").Find(&statuses).Error; err != nil {
		return nil, errors.Wrap(err, "listing order statuses")
	}
	return statuses, nil
}

// ListStatusIDs returns the ids of FindAll.
func (r *OrderStatusRepository) ListStatusIDs(ctx context.Context) ([]int, error) {
	statuses, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(statuses))
	for _, s := range statuses {
		ids = append(ids, s.ID)
	}
	return ids, nil
}

// OrderFinder loads the orders shown on an admin list page.
type OrderFinder interface {
	FindPage(ctx context.Context, page, limit int) ([]models.Order, error)
	FindByIDs(ctx context.Context, ids []int) ([]models.Order, error)
}

// OrderRepository loads orders with their shippings
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository создает новый экземпляр OrderRepository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// FindPage returns one page of orders, newest first.
func (r *OrderRepository) FindPage(ctx context.Context, page, limit int) ([]models.Order, error) {
	page, limit = NormalizePage(page, limit)

	var orders []models.Order
	err := r.withShippings(ctx).
		Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, errors.Wrapf(err, "loading order page %d", page)
	}
	return orders, nil
}

// FindByIDs returns the given orders in id order.
func (r *OrderRepository) FindByIDs(ctx context.Context, ids []int) ([]models.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var orders []models.Order
	if err := r.withShippings(ctx).Where("id IN ?", ids).Order("id").Find(&orders).Error; err != nil {
		return nil, errors.Wrap(err, "loading orders by id")
	}
	return orders, nil
}

func (r *OrderRepository) withShippings(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Shippings", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	})
}

// NormalizePage clamps paging parameters to sane values.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}
