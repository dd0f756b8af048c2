package usecase

import (
	"math"

	"github.com/paulkisakye-beep/little-readers/internal/domain"
)

// FreeDeliveryThreshold — discounted subtotal at or above which a
// positive quoted delivery fee is waived.
const FreeDeliveryThreshold int64 = 300000

// ComputeTotal — the pricing engine. Pure: identical inputs always
// yield identical totals, so it is recomputed from scratch whenever
// cart, promo or delivery state changes.
//
// The promo discount applies to the books subtotal only, never the
// delivery fee. A nil quote means delivery is unresolved: the total
// then excludes delivery entirely and DeliveryResolved is false
// (submission stays blocked). A quote with Fee 0 is genuinely free
// delivery, not an unresolved state.
func ComputeTotal(items []domain.Book, promo *domain.Promo, quote *domain.DeliveryQuote) domain.Totals {
	var subtotal int64
	for _, b := range items {
		subtotal += b.Price
	}

	var discount int64
	if promo != nil && promo.Discount > 0 {
		discount = int64(math.Round(float64(subtotal) * promo.Discount))
	}
	discountedSubtotal := subtotal - discount

	t := domain.Totals{
		Subtotal: subtotal,
		Discount: discount,
	}

	if quote == nil {
		t.Total = discountedSubtotal
		return t
	}

	t.DeliveryResolved = true
	t.QuotedFee = quote.Fee
	t.DeliveryFee = quote.Fee
	if discountedSubtotal >= FreeDeliveryThreshold && quote.Fee > 0 {
		t.FreeDelivery = true
		t.DeliveryFee = 0
	}
	t.Total = discountedSubtotal + t.DeliveryFee
	return t
}
