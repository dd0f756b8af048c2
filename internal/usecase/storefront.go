package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/paulkisakye-beep/little-readers/internal/domain"
	"github.com/paulkisakye-beep/little-readers/internal/ports"
)

// Session — per-client storefront state. One mutex guards all fields;
// backend lookups that must not block the session (delivery quotes)
// release it and revalidate with seq on return.
type Session struct {
	id string

	mu           sync.Mutex
	cart         []domain.Book
	promo        *domain.Promo
	quote        *domain.DeliveryQuote
	areaSeq      uint64 // bumped on every delivery-area request; stale responses are discarded
	submitting   bool
	checkoutOpen bool
}

func (s *Session) ID() string { return s.id }

// snapshotLocked — copies the mutable state for callers outside the
// lock. s.mu must be held.
func (s *Session) snapshotLocked() ([]domain.Book, *domain.Promo, *domain.DeliveryQuote) {
	cart := append([]domain.Book(nil), s.cart...)
	var promo *domain.Promo
	if s.promo != nil {
		p := *s.promo
		promo = &p
	}
	var quote *domain.DeliveryQuote
	if s.quote != nil {
		q := *s.quote
		quote = &q
	}
	return cart, promo, quote
}

// CartState — cart contents plus recomputed totals, returned by every
// operation that can change the order summary.
type CartState struct {
	Items  []domain.Book `json:"items"`
	Promo  *domain.Promo `json:"promo,omitempty"`
	Totals domain.Totals `json:"totals"`
}

// Storefront — the glue layer between browsing clients and the book
// backend: catalog snapshot, per-session carts, pricing and order
// submission.
type Storefront struct {
	gateway   ports.BookGateway
	carts     ports.CartStore
	validator ports.OrderValidator
	catalog   *CatalogStore
	log       ports.Logger

	// delay between a successful order and the catalog refresh that
	// reflects the sold books
	autoClose time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStorefront(
	gateway ports.BookGateway,
	carts ports.CartStore,
	validator ports.OrderValidator,
	catalog *CatalogStore,
	log ports.Logger,
	autoClose time.Duration,
) *Storefront {
	return &Storefront{
		gateway:   gateway,
		carts:     carts,
		validator: validator,
		catalog:   catalog,
		log:       log,
		autoClose: autoClose,
		sessions:  make(map[string]*Session),
	}
}

// OpenSession — creates a session and restores its persisted cart.
// A fresh id always gets an empty cart; restoring an existing id picks
// up whatever the store kept for it.
func (s *Storefront) OpenSession(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		id = uuid.NewString()
	}

	s.mu.Lock()
	if sess, ok := s.sessions[id]; ok {
		s.mu.Unlock()
		return sess, nil
	}
	sess := &Session{id: id}
	s.sessions[id] = sess
	s.mu.Unlock()

	cart, err := s.carts.Load(ctx, id)
	if err != nil {
		// store contract tolerates corrupt data; a real I/O failure
		// still leaves the session usable with an empty cart
		s.log.Warnf(ctx, "session %s: restore cart: %v", id, err)
		cart = []domain.Book{}
	}
	sess.mu.Lock()
	sess.cart = cart
	sess.mu.Unlock()

	return sess, nil
}

func (s *Storefront) session(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

// Catalog — read access for the transport layer.
func (s *Storefront) Catalog() *CatalogStore { return s.catalog }

// stateLocked — builds the CartState for the current session state.
// sess.mu must be held.
func (s *Storefront) stateLocked(sess *Session) CartState {
	cart, promo, quote := sess.snapshotLocked()
	return CartState{
		Items:  cart,
		Promo:  promo,
		Totals: ComputeTotal(cart, promo, quote),
	}
}

// persistLocked — writes the cart through to the store. Persistence is
// best effort; a failed write costs the user a restore, not the
// current session. sess.mu must be held.
func (s *Storefront) persistLocked(ctx context.Context, sess *Session) {
	if err := s.carts.Save(ctx, sess.id, sess.cart); err != nil {
		s.log.Warnf(ctx, "session %s: persist cart: %v", sess.id, err)
	}
}
