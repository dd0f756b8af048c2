package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/paulkisakye-beep/little-readers/internal/domain"
	"github.com/paulkisakye-beep/little-readers/pkg/metrics"
)

// SubmitRequest — customer fields entered on the checkout form. Cart,
// promo and delivery area come from the session, not the request.
type SubmitRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	DeliveryNotes string `json:"deliveryNotes"`
}

// SubmitResult — a confirmed order.
type SubmitResult struct {
	OrderID string        `json:"orderId"`
	Totals  domain.Totals `json:"totals"`
}

// UnavailableError — submission aborted because books sold out between
// checkout and confirm. The pruned entries are reported so the client
// can name them; the order was never sent.
type UnavailableError struct {
	Removed     []domain.RemovedBook
	CartEmptied bool
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%d cart item(s) no longer available", len(e.Removed))
}

// SubmitOrder — the single-shot submission flow: validate, recheck
// availability, send to the backend exactly once.
//
// A session allows one in-flight submission; concurrent attempts are
// rejected rather than queued so a double click can never produce two
// orders. The backend call itself runs outside the session lock, a
// slow order must not freeze cart browsing.
func (s *Storefront) SubmitOrder(ctx context.Context, sessionID string, req SubmitRequest) (*SubmitResult, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if sess.submitting {
		sess.mu.Unlock()
		return nil, domain.ErrSubmitInFlight
	}
	sess.submitting = true
	sess.mu.Unlock()

	defer func() {
		sess.mu.Lock()
		sess.submitting = false
		sess.mu.Unlock()
	}()

	sess.mu.Lock()
	cart, promo, quote := sess.snapshotLocked()
	sess.mu.Unlock()

	order := &domain.Order{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		DeliveryNotes: req.DeliveryNotes,
		Books:         cart,
	}
	if quote != nil {
		order.DeliveryArea = quote.Area
	}
	if promo != nil {
		order.PromoCode = promo.Code
	}

	if err := s.validator.Validate(ctx, order, quote != nil); err != nil {
		metrics.OrdersSubmitted.WithLabelValues("rejected").Inc()
		return nil, err
	}

	// last availability check before money changes hands
	sess.mu.Lock()
	removed, rerr := s.reconcileLocked(ctx, sess)
	if rerr != nil {
		sess.mu.Unlock()
		metrics.OrdersSubmitted.WithLabelValues(submitOutcome(rerr)).Inc()
		return nil, rerr
	}
	if len(removed) > 0 {
		emptied := len(sess.cart) == 0
		if emptied {
			sess.checkoutOpen = false
			sess.promo = nil
		}
		sess.mu.Unlock()
		metrics.OrdersSubmitted.WithLabelValues("rejected").Inc()
		return nil, &UnavailableError{Removed: removed, CartEmptied: emptied}
	}
	order.Books = append([]domain.Book(nil), sess.cart...)
	sess.mu.Unlock()

	orderID, err := s.gateway.ProcessOrder(ctx, order)
	if err != nil {
		metrics.OrdersSubmitted.WithLabelValues(submitOutcome(err)).Inc()
		return nil, err
	}

	totals := ComputeTotal(order.Books, promo, quote)

	sess.mu.Lock()
	sess.cart = nil
	sess.promo = nil
	sess.checkoutOpen = false
	if derr := s.carts.Delete(ctx, sess.id); derr != nil {
		s.log.Warnf(ctx, "session %s: clear cart after order: %v", sess.id, derr)
	}
	sess.mu.Unlock()

	metrics.OrdersSubmitted.WithLabelValues("ok").Inc()
	s.log.Infof(ctx, "session %s: order %s accepted total=%d", sess.id, orderID, totals.Total)

	// refresh the catalog after the backend had time to mark the
	// sold books; immediate reloads race the spreadsheet write
	s.scheduleCatalogReload(ctx)

	return &SubmitResult{OrderID: orderID, Totals: totals}, nil
}

func (s *Storefront) scheduleCatalogReload(ctx context.Context) {
	delay := s.autoClose
	if delay <= 0 {
		delay = time.Second
	}
	time.AfterFunc(delay, func() {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()
		if err := s.catalog.Reload(rctx); err != nil {
			s.log.Warnf(rctx, "post-order catalog reload: %v", err)
		}
	})
}

func submitOutcome(err error) string {
	if _, ok := domain.AsBackendError(err); ok {
		return "backend_error"
	}
	return "transport_error"
}
