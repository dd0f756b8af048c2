package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/paulkisakye-beep/little-readers/internal/domain"
	"github.com/paulkisakye-beep/little-readers/internal/ports"
	"github.com/paulkisakye-beep/little-readers/internal/usecase"
	"github.com/paulkisakye-beep/little-readers/pkg/httpx"
	"github.com/paulkisakye-beep/little-readers/pkg/validate"
)

const sessionHeader = "X-Session-ID"

type Handler struct {
	service *usecase.Storefront
	log     ports.Logger
}

func NewHandler(service *usecase.Storefront, log ports.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// sessionID — session routes require the client-held id.
func (h *Handler) sessionID(c *gin.Context) (string, bool) {
	id := c.GetHeader(sessionHeader)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + sessionHeader + " header"})
		return "", false
	}
	return id, true
}

// writeError — maps usecase errors onto the API's status taxonomy:
// 400 for malformed or invalid input, 404 for unknown resources,
// 409 for business-rule rejections the client can recover from,
// 502 when the backend answered with an error, 503 when it did not
// answer at all.
func (h *Handler) writeError(c *gin.Context, err error) {
	var verr *validate.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
		return
	}

	var uerr *usecase.UnavailableError
	if errors.As(err, &uerr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":       uerr.Error(),
			"removed":     uerr.Removed,
			"cartEmptied": uerr.CartEmptied,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrUnknownBook):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrPromoCodeEmpty),
		errors.Is(err, domain.ErrIndexOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrBookUnavailable),
		errors.Is(err, domain.ErrAlreadyInCart),
		errors.Is(err, domain.ErrCartEmpty),
		errors.Is(err, domain.ErrSubmitInFlight),
		errors.Is(err, domain.ErrInvalidPromo),
		errors.Is(err, domain.ErrAreaNotDeliverable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	default:
		if be, ok := domain.AsBackendError(err); ok {
			c.JSON(http.StatusBadGateway, gin.H{"error": be.Message})
			return
		}
		h.log.Errorf(c.Request.Context(), "book service call failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "book service unavailable, please retry"})
	}
}

func (h *Handler) openSession(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionId"`
	}
	// body is optional; absent means a brand-new session
	_ = c.ShouldBindJSON(&req)

	sess, err := h.service.OpenSession(c.Request.Context(), req.SessionID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	state, err := h.service.Cart(c.Request.Context(), sess.ID())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sess.ID(), "cart": state})
}

func (h *Handler) listBooks(c *gin.Context) {
	filter := domain.BookFilter{
		Category:   c.Query("category"),
		AgeGroup:   c.Query("ageGroup"),
		PriceRange: c.Query("priceRange"),
		Search:     c.Query("search"),
	}
	books := h.service.Catalog().Filter(filter)
	total := len(books)

	limit, offset := httpx.ParseLimitOffset(c, 0, 500)
	if offset > len(books) {
		offset = len(books)
	}
	books = books[offset:]
	if limit > 0 && limit < len(books) {
		books = books[:limit]
	}

	c.JSON(http.StatusOK, gin.H{"books": books, "total": total})
}

func (h *Handler) deliveryAreas(c *gin.Context) {
	areas, err := h.service.DeliveryAreas(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

func (h *Handler) getCart(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	state, err := h.service.Cart(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *Handler) addToCart(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}
	state, err := h.service.AddToCart(c.Request.Context(), id, req.Code)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *Handler) removeFromCart(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}
	state, err := h.service.RemoveFromCart(c.Request.Context(), id, index)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *Handler) clearCart(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	state, err := h.service.ClearCart(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *Handler) openCheckout(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	state, err := h.service.OpenCheckout(c.Request.Context(), id)
	if err != nil {
		// an emptied cart still reports what reconciliation removed
		if errors.Is(err, domain.ErrCartEmpty) && len(state.Removed) > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "removed": state.Removed})
			return
		}
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *Handler) closeCheckout(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	if err := h.service.CloseCheckout(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) applyPromo(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	state, err := h.service.ApplyPromo(c.Request.Context(), id, req.Code)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPromo) {
			// state carries the cleared promo and recomputed totals
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "totals": state.Totals})
			return
		}
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *Handler) removePromo(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	state, err := h.service.RemovePromo(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *Handler) setDeliveryArea(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req struct {
		Area string `json:"area"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	state, err := h.service.ResolveDeliveryArea(c.Request.Context(), id, req.Area)
	if err != nil {
		if errors.Is(err, domain.ErrAreaNotDeliverable) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "totals": state.Totals})
			return
		}
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *Handler) getTotals(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	totals, err := h.service.Totals(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (h *Handler) submitOrder(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req usecase.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	result, err := h.service.SubmitOrder(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
