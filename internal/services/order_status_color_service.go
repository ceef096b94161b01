package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"orderstatuscolor/server/internal/statuscolor"
)

const (
	// AdminOrderIndexPage is the admin page the colors are published for.
	AdminOrderIndexPage = "@admin/Order/index.twig"
	// OrderIndexScriptSnippet is the client fragment that applies the colors to the rows.
	OrderIndexScriptSnippet = "order_status_color/order_index_script.js"
)

// Subscriptions maps an admin page to the snippet injected into it.
func Subscriptions() map[string]string {
	return map[string]string{AdminOrderIndexPage: OrderIndexScriptSnippet}
}

// RenderParams is what the order list page receives for row coloring.
type RenderParams struct {
	StatusColors            statuscolor.ColorMap            `json:"statusColors"`
	ShippingIDToStatusIDMap statuscolor.ShipmentStatusIndex `json:"shippingIdToStatusIdMap"`
	Opacity                 float64                         `json:"opacity"`
	Snippets                []string                        `json:"snippets"`
}

// OrderFetcher loads one of the order collections a page can provide.
type OrderFetcher func(ctx context.Context) ([]statuscolor.Order, error)

// OrderStatusColorService computes the row coloring data for one page render
type OrderStatusColorService struct {
	overrides OverrideSource
	statuses  StatusLister
	resolver  *statuscolor.ColorResolver
	indexer   *statuscolor.ShipmentStatusIndexer
	opacity   float64
	logger    log.FieldLogger
}

// NewOrderStatusColorService создает новый экземпляр OrderStatusColorService
func NewOrderStatusColorService(overrides OverrideSource, statuses StatusLister, defaultColor string, opacity float64) *OrderStatusColorService {
	return &OrderStatusColorService{
		overrides: overrides,
		statuses:  statuses,
		resolver:  statuscolor.NewColorResolver(defaultColor),
		indexer:   statuscolor.NewShipmentStatusIndexer(),
		opacity:   opacity,
		logger:    log.StandardLogger(),
	}
}

// SetLogger replaces the logger used when a call does not bring its own.
func (s *OrderStatusColorService) SetLogger(logger log.FieldLogger) {
	if logger != nil {
		s.logger = logger
	}
}

// Opacity returns the configured row background opacity.
func (s *OrderStatusColorService) Opacity() float64 {
	return s.opacity
}

// ResolveColors loads overrides and statuses and returns the full color map.
// Lookup failures are logged; the affected input is treated as empty.
func (s *OrderStatusColorService) ResolveColors(ctx context.Context, logger log.FieldLogger) statuscolor.ColorMap {
	if logger == nil {
		logger = s.logger
	}

	var overrides []statuscolor.StatusColorOverride
	if s.overrides != nil {
		var err error
		overrides, err = s.overrides.ListOverrides(ctx)
		if err != nil {
			logger.WithError(err).Error("Failed to load status color overrides, using default color")
			overrides = nil
		}
	}

	var known []int
	if s.statuses != nil {
		var err error
		known, err = s.statuses.ListStatusIDs(ctx)
		if err != nil {
			logger.WithError(err).Error("Failed to load order statuses")
			known = nil
		}
	}

	return s.resolver.Resolve(overrides, known)
}

// IndexShipments picks the order source and builds the shipment index.
// The secondary fetcher is only called when the primary yields no orders.
func (s *OrderStatusColorService) IndexShipments(ctx context.Context, logger log.FieldLogger, primary, secondary OrderFetcher) statuscolor.ShipmentStatusIndex {
	if logger == nil {
		logger = s.logger
	}

	source, err := selectSource(ctx, primary, secondary)
	if err != nil {
		logger.WithError(err).Error("Failed to load orders for shipment coloring")
		return make(statuscolor.ShipmentStatusIndex)
	}

	result := s.indexer.Index(source.Items)
	for _, d := range result.Diagnostics {
		logger.WithFields(log.Fields{
			"order_id": d.OrderID,
			"error":    d.Err.Error(),
		}).Error("Failed to process order for shipment coloring")
	}
	logger.WithFields(log.Fields{
		"source":    source.Kind.String(),
		"orders":    len(source.Items),
		"shipments": len(result.Index),
	}).Debug("Shipment status index built")

	return result.Index
}

// Build computes everything the admin order list needs for one render.
func (s *OrderStatusColorService) Build(ctx context.Context, logger log.FieldLogger, primary, secondary OrderFetcher) *RenderParams {
	return &RenderParams{
		StatusColors:            s.ResolveColors(ctx, logger),
		ShippingIDToStatusIDMap: s.IndexShipments(ctx, logger, primary, secondary),
		Opacity:                 s.opacity,
		Snippets:                []string{OrderIndexScriptSnippet},
	}
}

func selectSource(ctx context.Context, primary, secondary OrderFetcher) (statuscolor.OrderSource, error) {
	var first, second []statuscolor.Order
	var err error

	if primary != nil {
		if first, err = primary(ctx); err != nil {
			return statuscolor.Empty(), err
		}
	}
	if len(first) == 0 && secondary != nil {
		if second, err = secondary(ctx); err != nil {
			return statuscolor.Empty(), err
		}
	}
	return statuscolor.SelectOrderSource(first, second), nil
}
