package domain

// Order — the payload sent to the backend for fulfilment. Constructed
// at submission time from the session; never persisted on this side.
type Order struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	DeliveryArea  string `json:"deliveryArea"`
	DeliveryNotes string `json:"deliveryNotes"`
	Books         []Book `json:"books"`
	PromoCode     string `json:"promoCode"`
}

// Totals — the order summary shown during checkout.
//
// DeliveryResolved distinguishes "no area chosen yet" from a real
// zero-fee quote: while unresolved, Total excludes delivery entirely
// and submission is blocked.
type Totals struct {
	Subtotal         int64 `json:"subtotal"`
	Discount         int64 `json:"discount"`
	DeliveryFee      int64 `json:"deliveryFee"`
	QuotedFee        int64 `json:"quotedFee"`
	FreeDelivery     bool  `json:"freeDelivery"`
	DeliveryResolved bool  `json:"deliveryResolved"`
	Total            int64 `json:"total"`
}
