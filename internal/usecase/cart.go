package usecase

import (
	"context"

	"github.com/paulkisakye-beep/little-readers/internal/domain"
)

// Cart — current cart contents and totals.
func (s *Storefront) Cart(ctx context.Context, sessionID string) (CartState, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return CartState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.stateLocked(sess), nil
}

// AddToCart — adds a catalog book to the session cart.
//
// Secondhand stock is single-copy, so a code may appear in the cart at
// most once. The book must exist in the current catalog snapshot and
// still be listed as available; the authoritative check happens again
// at checkout and submission.
func (s *Storefront) AddToCart(ctx context.Context, sessionID, code string) (CartState, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return CartState{}, err
	}

	book, ok := s.catalog.Get(code)
	if !ok {
		return CartState{}, domain.ErrUnknownBook
	}
	if !book.Available || book.Status != domain.StatusAvailable {
		return CartState{}, domain.ErrBookUnavailable
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	for _, b := range sess.cart {
		if b.Code == code {
			return s.stateLocked(sess), domain.ErrAlreadyInCart
		}
	}
	sess.cart = append(sess.cart, book)
	s.persistLocked(ctx, sess)

	return s.stateLocked(sess), nil
}

// RemoveFromCart — removes the entry at index, preserving the order of
// the rest. Emptying the cart closes an open checkout and drops the
// applied promo; the delivery area is kept for the next checkout.
func (s *Storefront) RemoveFromCart(ctx context.Context, sessionID string, index int) (CartState, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return CartState{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if index < 0 || index >= len(sess.cart) {
		return s.stateLocked(sess), domain.ErrIndexOutOfRange
	}
	sess.cart = append(sess.cart[:index], sess.cart[index+1:]...)
	if len(sess.cart) == 0 {
		sess.checkoutOpen = false
		sess.promo = nil
	}
	s.persistLocked(ctx, sess)

	return s.stateLocked(sess), nil
}

// ClearCart — drops every cart entry, the persisted copy, and any
// checkout state tied to the emptied cart.
func (s *Storefront) ClearCart(ctx context.Context, sessionID string) (CartState, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return CartState{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.cart = nil
	sess.checkoutOpen = false
	sess.promo = nil
	sess.quote = nil
	if err := s.carts.Delete(ctx, sess.id); err != nil {
		s.log.Warnf(ctx, "session %s: delete cart: %v", sess.id, err)
	}

	return s.stateLocked(sess), nil
}
