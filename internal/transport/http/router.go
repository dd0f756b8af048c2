package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/paulkisakye-beep/little-readers/pkg/httpx"
)

// NewRouter — wires middleware and the storefront API.
// otelServiceName is empty when tracing is disabled.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/session", h.openSession)
	r.GET("/books", h.listBooks)
	r.GET("/delivery/areas", h.deliveryAreas)

	r.GET("/cart", h.getCart)
	r.POST("/cart/items", h.addToCart)
	r.DELETE("/cart/items/:index", h.removeFromCart)
	r.DELETE("/cart", h.clearCart)

	r.POST("/checkout/open", h.openCheckout)
	r.POST("/checkout/close", h.closeCheckout)
	r.POST("/checkout/promo", h.applyPromo)
	r.DELETE("/checkout/promo", h.removePromo)
	r.PUT("/checkout/delivery-area", h.setDeliveryArea)
	r.GET("/checkout/totals", h.getTotals)
	r.POST("/checkout/order", h.submitOrder)

	return r
}
