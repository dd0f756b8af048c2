package ports

import (
	"context"

	"github.com/paulkisakye-beep/little-readers/internal/domain"
)

// BookGateway — the six operations of the external book service.
//
// Every method yields exactly one of three outcomes: a decoded success
// value, a *domain.BackendError (the backend answered and said no), or
// any other error (transport/parse failure). Callers branch on
// domain.AsBackendError to tell the last two apart.
type BookGateway interface {
	// ListBooks — full catalog snapshot.
	ListBooks(ctx context.Context) ([]domain.Book, error)

	// CheckAvailability — current availability for the given codes.
	// Codes absent from the returned map must be treated as unavailable.
	CheckAvailability(ctx context.Context, codes []string) (map[string]domain.Availability, error)

	// DeliveryAreas — known delivery area names.
	DeliveryAreas(ctx context.Context) ([]string, error)

	// DeliveryPrice — resolve a free-text area to a quote;
	// (nil, nil) when the backend does not deliver there.
	DeliveryPrice(ctx context.Context, area string) (*domain.DeliveryQuote, error)

	// ValidatePromo — (nil, nil) when the code is invalid or expired.
	ValidatePromo(ctx context.Context, code string) (*domain.Promo, error)

	// ProcessOrder — submit the order; returns the backend order id.
	ProcessOrder(ctx context.Context, order *domain.Order) (string, error)
}
