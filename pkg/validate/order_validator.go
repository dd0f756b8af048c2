package validate

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/paulkisakye-beep/little-readers/internal/domain"
	"github.com/paulkisakye-beep/little-readers/internal/ports"
)

var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — sentinel for any validation failure.
var ErrInvalidOrder = errors.New("order validation failed")

// Uganda mobile format: country prefix plus exactly nine digits.
var phonePattern = regexp.MustCompile(`^\+256\d{9}$`)

// ValidationError — every failing field collected into one error, so
// the form can mark all offenders in a single aggregated notice.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("%v: %s", ErrInvalidOrder, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidOrder }

// OrderValidator — pre-submission checks. No backend call is made for
// an order that fails here.
type OrderValidator struct{}

func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// Validate — aggregates all field failures; nil when the order is
// submittable. deliveryResolved reports whether a delivery fee has
// been quoted for the chosen area.
func (v *OrderValidator) Validate(_ context.Context, order *domain.Order, deliveryResolved bool) error {
	fields := map[string]string{}

	if order == nil {
		fields["order"] = "required"
		return &ValidationError{Fields: fields}
	}

	if strings.TrimSpace(order.CustomerName) == "" {
		fields["customerName"] = "required"
	}
	if !phonePattern.MatchString(strings.TrimSpace(order.CustomerPhone)) {
		fields["customerPhone"] = "must be +256 followed by 9 digits"
	}
	if strings.TrimSpace(order.DeliveryArea) == "" {
		fields["deliveryArea"] = "required"
	} else if !deliveryResolved {
		fields["deliveryArea"] = "delivery fee not resolved"
	}
	if len(order.Books) == 0 {
		fields["books"] = "cart is empty"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
