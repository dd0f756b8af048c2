package domain

// BookStatus — lifecycle of a listed book. Only the backend moves a book
// between statuses; this service re-fetches to observe changes.
type BookStatus string

const (
	StatusAvailable   BookStatus = "available"
	StatusReserved    BookStatus = "reserved"
	StatusSold        BookStatus = "sold"
	StatusUnavailable BookStatus = "unavailable"
)

// Book — a secondhand book as listed by the backend catalog.
// Immutable once fetched except for Available/Status, which are
// backend-owned.
type Book struct {
	Code      string     `json:"code"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	Category  string     `json:"category"`
	AgeGroup  string     `json:"ageGroup"`
	Price     int64      `json:"price"`
	Image     string     `json:"image"`
	Available bool       `json:"available"`
	Status    BookStatus `json:"status"`
}

// Availability — per-code availability as reported by the backend.
type Availability struct {
	Available bool       `json:"available"`
	Status    BookStatus `json:"status"`
}

// RemovedBook — a cart entry pruned by reconciliation, with the
// terminal status shown in the user notice.
type RemovedBook struct {
	Code   string     `json:"code"`
	Status BookStatus `json:"status"`
}

// Promo — a percentage discount on the books subtotal only.
// Discount is in [0,1).
type Promo struct {
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
}

// DeliveryQuote — a resolved fee for a free-text delivery area.
// Matched carries the backend's canonical area name. A fee of 0 is a
// valid "free delivery" quote; an unresolved quote is represented by a
// nil *DeliveryQuote, never a zero fee.
type DeliveryQuote struct {
	Area    string `json:"area"`
	Matched string `json:"matched"`
	Fee     int64  `json:"fee"`
}
