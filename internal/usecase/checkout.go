package usecase

import (
	"context"
	"strings"

	"github.com/paulkisakye-beep/little-readers/internal/domain"
)

// CheckoutState — what the client renders when the checkout panel
// opens or changes: surviving items, anything reconciliation pruned,
// and the recomputed summary.
type CheckoutState struct {
	Open    bool                 `json:"open"`
	Items   []domain.Book        `json:"items"`
	Removed []domain.RemovedBook `json:"removed,omitempty"`
	Promo   *domain.Promo        `json:"promo,omitempty"`
	Totals  domain.Totals        `json:"totals"`
}

func (s *Storefront) checkoutStateLocked(sess *Session, removed []domain.RemovedBook) CheckoutState {
	st := s.stateLocked(sess)
	return CheckoutState{
		Open:    sess.checkoutOpen,
		Items:   st.Items,
		Removed: removed,
		Promo:   st.Promo,
		Totals:  st.Totals,
	}
}

// OpenCheckout — starts checkout for the session's cart.
//
// Any previously applied promo is dropped so every checkout starts
// from list prices; the chosen delivery area survives reopenings. The
// cart is reconciled against live availability first, and checkout
// only opens if something survives. An unreachable backend does not
// block the user, the authoritative recheck at submission covers it.
func (s *Storefront) OpenCheckout(ctx context.Context, sessionID string) (CheckoutState, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return CheckoutState{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if len(sess.cart) == 0 {
		return CheckoutState{}, domain.ErrCartEmpty
	}

	sess.promo = nil

	removed, rerr := s.reconcileLocked(ctx, sess)
	if rerr != nil {
		s.log.Warnf(ctx, "session %s: checkout reconciliation skipped: %v", sess.id, rerr)
	}
	if len(sess.cart) == 0 {
		sess.checkoutOpen = false
		return s.checkoutStateLocked(sess, removed), domain.ErrCartEmpty
	}

	sess.checkoutOpen = true
	return s.checkoutStateLocked(sess, removed), nil
}

// CloseCheckout — dismisses the checkout panel. Cart, promo and
// delivery selection are untouched.
func (s *Storefront) CloseCheckout(ctx context.Context, sessionID string) error {
	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	sess.checkoutOpen = false
	sess.mu.Unlock()
	return nil
}

// ApplyPromo — validates a code with the backend and applies it to the
// session. An invalid code clears any previously applied promo, the
// summary must never keep a stale discount after a failed attempt.
func (s *Storefront) ApplyPromo(ctx context.Context, sessionID, code string) (CheckoutState, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return CheckoutState{}, err
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return CheckoutState{}, domain.ErrPromoCodeEmpty
	}

	promo, err := s.gateway.ValidatePromo(ctx, code)
	if err != nil {
		return CheckoutState{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if promo == nil {
		sess.promo = nil
		return s.checkoutStateLocked(sess, nil), domain.ErrInvalidPromo
	}
	p := *promo
	sess.promo = &p
	return s.checkoutStateLocked(sess, nil), nil
}

// RemovePromo — drops the applied promo and returns list-price totals.
func (s *Storefront) RemovePromo(ctx context.Context, sessionID string) (CheckoutState, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return CheckoutState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.promo = nil
	return s.checkoutStateLocked(sess, nil), nil
}

// DeliveryAreas — pass-through to the (cached) gateway.
func (s *Storefront) DeliveryAreas(ctx context.Context) ([]string, error) {
	return s.gateway.DeliveryAreas(ctx)
}

// ResolveDeliveryArea — looks up the fee for a free-text area and
// stores the quote on the session.
//
// The lookup runs outside the session lock; each request bumps a
// sequence counter and only the newest request may install its result,
// so a slow quote for an abandoned choice can never overwrite the fee
// of the area the user settled on. A blank area clears the selection.
func (s *Storefront) ResolveDeliveryArea(ctx context.Context, sessionID, area string) (CheckoutState, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return CheckoutState{}, err
	}

	area = strings.TrimSpace(area)

	sess.mu.Lock()
	if area == "" {
		sess.quote = nil
		st := s.checkoutStateLocked(sess, nil)
		sess.mu.Unlock()
		return st, nil
	}
	sess.areaSeq++
	seq := sess.areaSeq
	sess.mu.Unlock()

	quote, lerr := s.gateway.DeliveryPrice(ctx, area)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.areaSeq != seq {
		// a newer area request has been made, drop this result
		s.log.Infof(ctx, "session %s: stale delivery quote for %q discarded", sess.id, area)
		return s.checkoutStateLocked(sess, nil), nil
	}

	if lerr != nil {
		sess.quote = nil
		return s.checkoutStateLocked(sess, nil), lerr
	}
	if quote == nil {
		sess.quote = nil
		return s.checkoutStateLocked(sess, nil), domain.ErrAreaNotDeliverable
	}

	q := *quote
	sess.quote = &q
	return s.checkoutStateLocked(sess, nil), nil
}

// Totals — the current order summary without side effects.
func (s *Storefront) Totals(ctx context.Context, sessionID string) (domain.Totals, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return domain.Totals{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	cart, promo, quote := sess.snapshotLocked()
	return ComputeTotal(cart, promo, quote), nil
}
