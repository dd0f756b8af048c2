package ports

import (
	"context"

	"github.com/paulkisakye-beep/little-readers/internal/domain"
)

// OrderValidator — pre-submission validation. deliveryResolved reports
// whether a delivery fee has been quoted for the session; validation
// aggregates every failing field into one error (see pkg/validate).
type OrderValidator interface {
	Validate(ctx context.Context, order *domain.Order, deliveryResolved bool) error
}
