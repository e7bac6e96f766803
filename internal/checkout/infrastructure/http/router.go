package http

import (
	"net/http"

	"github.com/Lexv0lk/merch-checkout/internal/pkg/jwt"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/logging"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type RouterDeps struct {
	Handler     *PurchaseHandler
	TokenParser jwt.TokenParser
	JwtSecret   string
	Metrics     *metrics.ServerMetrics
	Gatherer    prometheus.Gatherer
	Logger      logging.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), NewMetricsMiddleware(deps.Metrics))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler(deps.Gatherer)))

	api := router.Group("/api", NewAuthMiddleware(deps.JwtSecret, deps.TokenParser, deps.Logger))
	{
		purchases := api.Group("/purchases")
		{
			purchases.POST("/checkout", deps.Handler.Checkout)
			purchases.GET("", deps.Handler.ListActive)
			purchases.GET("/:"+PurchaseIDKey, deps.Handler.GetPurchase)
			purchases.GET("/:"+PurchaseIDKey+"/installments", deps.Handler.InstallmentPlan)
			purchases.GET("/:"+PurchaseIDKey+"/invoice", deps.Handler.Invoice)
			purchases.PATCH("/:"+PurchaseIDKey+"/shares", deps.Handler.PayShare)
			purchases.DELETE("/:"+PurchaseIDKey, deps.Handler.Deactivate)
		}
	}

	return router
}
