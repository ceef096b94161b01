package api

import (
	"context"
	_ "embed"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"orderstatuscolor/server/internal/models"
	"orderstatuscolor/server/internal/services"
	"orderstatuscolor/server/internal/statuscolor"
)

//go:embed assets/order_index_script.js
var orderIndexScript []byte

// OrderIndexScriptPath is where the row coloring fragment is served.
const OrderIndexScriptPath = "/admin/assets/" + services.OrderIndexScriptSnippet

type AdminController struct {
	colorService *services.OrderStatusColorService
	orders       services.OrderFinder
}

func NewAdminController(colorService *services.OrderStatusColorService, orders services.OrderFinder) *AdminController {
	return &AdminController{
		colorService: colorService,
		orders:       orders,
	}
}

// GetOrderStatusColors returns the row coloring data for an order list page.
// The page of orders is used first; order_ids is only consulted when the page is empty.
// GET /api/v1/admin/orders/status-colors?page=1&limit=50&order_ids=1,2,3
func (ac *AdminController) GetOrderStatusColors(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", services.DefaultPageSize)
	ids := parseIDs(c.Query("order_ids"))

	var primary, secondary services.OrderFetcher
	if ac.orders != nil {
		primary = func(ctx context.Context) ([]statuscolor.Order, error) {
			orders, err := ac.orders.FindPage(ctx, page, limit)
			if err != nil {
				return nil, err
			}
			return models.AsOrders(orders), nil
		}
		secondary = func(ctx context.Context) ([]statuscolor.Order, error) {
			orders, err := ac.orders.FindByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			return models.AsOrders(orders), nil
		}
	}

	params := ac.colorService.Build(c.Request.Context(), requestLogger(c), primary, secondary)
	c.JSON(http.StatusOK, params)
}

// GetSubscriptions lists the admin pages that receive a coloring snippet.
// GET /api/v1/admin/order-status-colors/subscriptions
func (ac *AdminController) GetSubscriptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"subscriptions": services.Subscriptions(),
		"script":        OrderIndexScriptPath,
	})
}

// GetOrderIndexScript serves the client fragment that applies the colors.
func (ac *AdminController) GetOrderIndexScript(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/javascript; charset=utf-8", orderIndexScript)
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}

// parseIDs ignores anything that is not a positive integer.
func parseIDs(raw string) []int {
	if raw == "" {
		return nil
	}
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
