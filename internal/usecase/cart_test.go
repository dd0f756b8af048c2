package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/paulkisakye-beep/little-readers/internal/domain"
)

func TestAddToCart_Success(t *testing.T) {
	f := newFixture(t, bookA, bookB)
	f.allowPersist()

	state, err := f.sf.AddToCart(context.Background(), sessionID, bookA.Code)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(state.Items) != 1 || state.Items[0].Code != bookA.Code {
		t.Fatalf("unexpected cart: %+v", state.Items)
	}
	if state.Totals.Subtotal != bookA.Price {
		t.Fatalf("want subtotal %d, got %d", bookA.Price, state.Totals.Subtotal)
	}
}

func TestAddToCart_PersistsOnMutation(t *testing.T) {
	f := newFixture(t, bookA)

	f.carts.EXPECT().Save(gomock.Any(), sessionID, gomock.Len(1)).Return(nil)

	if _, err := f.sf.AddToCart(context.Background(), sessionID, bookA.Code); err != nil {
		t.Fatalf("add: %v", err)
	}
}

func TestAddToCart_DuplicateRejected(t *testing.T) {
	f := newFixture(t, bookA)
	f.allowPersist()

	if _, err := f.sf.AddToCart(context.Background(), sessionID, bookA.Code); err != nil {
		t.Fatalf("first add: %v", err)
	}
	state, err := f.sf.AddToCart(context.Background(), sessionID, bookA.Code)
	if !errors.Is(err, domain.ErrAlreadyInCart) {
		t.Fatalf("want ErrAlreadyInCart, got %v", err)
	}
	if len(state.Items) != 1 {
		t.Fatalf("duplicate must not grow the cart: %+v", state.Items)
	}
}

func TestAddToCart_UnknownBook(t *testing.T) {
	f := newFixture(t, bookA)

	if _, err := f.sf.AddToCart(context.Background(), sessionID, "BK-404"); !errors.Is(err, domain.ErrUnknownBook) {
		t.Fatalf("want ErrUnknownBook, got %v", err)
	}
}

func TestAddToCart_UnavailableBook(t *testing.T) {
	sold := bookB
	sold.Available = false
	sold.Status = domain.StatusSold
	f := newFixture(t, bookA, sold)

	if _, err := f.sf.AddToCart(context.Background(), sessionID, sold.Code); !errors.Is(err, domain.ErrBookUnavailable) {
		t.Fatalf("want ErrBookUnavailable, got %v", err)
	}
}

func TestRemoveFromCart_PreservesOrder(t *testing.T) {
	f := newFixture(t, bookA, bookB, bookC)
	f.allowPersist()

	ctx := context.Background()
	for _, code := range []string{bookA.Code, bookB.Code, bookC.Code} {
		if _, err := f.sf.AddToCart(ctx, sessionID, code); err != nil {
			t.Fatalf("add %s: %v", code, err)
		}
	}

	state, err := f.sf.RemoveFromCart(ctx, sessionID, 1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(state.Items) != 2 || state.Items[0].Code != bookA.Code || state.Items[1].Code != bookC.Code {
		t.Fatalf("want [A C], got %+v", state.Items)
	}
}

func TestRemoveFromCart_IndexOutOfRange(t *testing.T) {
	f := newFixture(t, bookA)
	f.allowPersist()

	ctx := context.Background()
	if _, err := f.sf.AddToCart(ctx, sessionID, bookA.Code); err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := f.sf.RemoveFromCart(ctx, sessionID, 5); !errors.Is(err, domain.ErrIndexOutOfRange) {
		t.Fatalf("want ErrIndexOutOfRange, got %v", err)
	}
	if _, err := f.sf.RemoveFromCart(ctx, sessionID, -1); !errors.Is(err, domain.ErrIndexOutOfRange) {
		t.Fatalf("want ErrIndexOutOfRange for negative, got %v", err)
	}
}

func TestRemoveFromCart_EmptiedCartDropsPromo(t *testing.T) {
	f := newFixture(t, bookA)
	f.allowPersist()

	ctx := context.Background()
	if _, err := f.sf.AddToCart(ctx, sessionID, bookA.Code); err != nil {
		t.Fatalf("add: %v", err)
	}
	f.gw.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).
		Return(allAvailable([]string{bookA.Code}), nil)
	if _, err := f.sf.OpenCheckout(ctx, sessionID); err != nil {
		t.Fatalf("open checkout: %v", err)
	}
	f.gw.EXPECT().ValidatePromo(gomock.Any(), "READ10").
		Return(&domain.Promo{Code: "READ10", Discount: 0.1}, nil)
	if _, err := f.sf.ApplyPromo(ctx, sessionID, "read10"); err != nil {
		t.Fatalf("apply promo: %v", err)
	}

	state, err := f.sf.RemoveFromCart(ctx, sessionID, 0)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if state.Promo != nil || state.Totals.Discount != 0 {
		t.Fatalf("emptied cart must drop the promo: %+v", state)
	}

	// the next cart read must agree
	state, err = f.sf.Cart(ctx, sessionID)
	if err != nil {
		t.Fatalf("cart: %v", err)
	}
	if state.Promo != nil || state.Totals.Discount != 0 {
		t.Fatalf("promo must stay gone after the cart emptied: %+v", state)
	}
}

func TestClearCart_DropsPromoAndQuote(t *testing.T) {
	f := newFixture(t, bookA)
	f.allowPersist()

	ctx := context.Background()
	if _, err := f.sf.AddToCart(ctx, sessionID, bookA.Code); err != nil {
		t.Fatalf("add: %v", err)
	}
	f.gw.EXPECT().ValidatePromo(gomock.Any(), "READ10").
		Return(&domain.Promo{Code: "READ10", Discount: 0.1}, nil)
	if _, err := f.sf.ApplyPromo(ctx, sessionID, "READ10"); err != nil {
		t.Fatalf("apply promo: %v", err)
	}
	f.gw.EXPECT().DeliveryPrice(gomock.Any(), "Kampala").
		Return(&domain.DeliveryQuote{Area: "Kampala", Matched: "Kampala", Fee: 10000}, nil)
	if _, err := f.sf.ResolveDeliveryArea(ctx, sessionID, "Kampala"); err != nil {
		t.Fatalf("resolve area: %v", err)
	}

	state, err := f.sf.ClearCart(ctx, sessionID)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if state.Promo != nil || state.Totals.Discount != 0 {
		t.Fatalf("clear must drop the promo: %+v", state)
	}
	if state.Totals.DeliveryResolved || state.Totals.Total != 0 {
		t.Fatalf("clear must drop the delivery quote: %+v", state.Totals)
	}
}

func TestClearCart_DropsPersistedCopy(t *testing.T) {
	f := newFixture(t, bookA)

	ctx := context.Background()
	f.carts.EXPECT().Save(gomock.Any(), sessionID, gomock.Any()).Return(nil)
	if _, err := f.sf.AddToCart(ctx, sessionID, bookA.Code); err != nil {
		t.Fatalf("add: %v", err)
	}

	f.carts.EXPECT().Delete(gomock.Any(), sessionID).Return(nil)
	state, err := f.sf.ClearCart(ctx, sessionID)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(state.Items) != 0 || state.Totals.Total != 0 {
		t.Fatalf("want empty cart, got %+v", state)
	}
}
