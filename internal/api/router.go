package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter registers the admin order-list endpoints.
func NewRouter(admin *AdminController) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Health check endpoint
	r.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "Order Status Color",
		})
	})

	r.Use(RequestID(), RequestLogger())

	r.GET(OrderIndexScriptPath, admin.GetOrderIndexScript)

	apiGroup := r.Group("/api/v1")
	adminGroup := apiGroup.Group("/admin")
	{
		adminGroup.GET("/orders/status-colors", admin.GetOrderStatusColors)
		adminGroup.GET("/order-status-colors/subscriptions", admin.GetSubscriptions)
	}

	return r
}
