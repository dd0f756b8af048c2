package domain

import "strings"

// Price buckets offered by the storefront filter controls.
const (
	PriceUnder10k = "0-10000"
	Price10kTo20k = "10000-20000"
	PriceOver20k  = "20000+"
)

// BookFilter — stateless catalog filter. Zero-value fields match
// everything; set fields compose with AND.
type BookFilter struct {
	Category   string
	AgeGroup   string
	PriceRange string
	Search     string
}

// Matches — reports whether b passes every set criterion. Search is a
// case-insensitive substring match on title or author.
func (f BookFilter) Matches(b Book) bool {
	if f.Category != "" && b.Category != f.Category {
		return false
	}
	if f.AgeGroup != "" && b.AgeGroup != f.AgeGroup {
		return false
	}
	if f.PriceRange != "" && !priceInRange(b.Price, f.PriceRange) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(b.Title), q) &&
			!strings.Contains(strings.ToLower(b.Author), q) {
			return false
		}
	}
	return true
}

// Apply — filters books from scratch, preserving catalog order.
func (f BookFilter) Apply(books []Book) []Book {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if f.Matches(b) {
			out = append(out, b)
		}
	}
	return out
}

func priceInRange(price int64, bucket string) bool {
	switch bucket {
	case PriceUnder10k:
		return price < 10000
	case Price10kTo20k:
		return price >= 10000 && price <= 20000
	case PriceOver20k:
		return price > 20000
	default:
		// Unknown bucket: treat as unset rather than hiding the catalog.
		return true
	}
}
