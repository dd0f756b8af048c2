package validate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/paulkisakye-beep/little-readers/internal/domain"
	"github.com/paulkisakye-beep/little-readers/pkg/validate"
)

func validOrder() *domain.Order {
	return &domain.Order{
		CustomerName:  "Amina K",
		CustomerPhone: "+256712345678",
		DeliveryArea:  "Kampala",
		Books:         []domain.Book{{Code: "BK-001", Price: 15000}},
	}
}

func TestValidate_OK(t *testing.T) {
	v := validate.NewOrderValidator()
	if err := v.Validate(context.Background(), validOrder(), true); err != nil {
		t.Fatalf("valid order rejected: %v", err)
	}
}

func TestValidate_PhoneFormat(t *testing.T) {
	v := validate.NewOrderValidator()

	cases := []struct {
		phone string
		ok    bool
	}{
		{"+256712345678", true},
		{" +256712345678 ", true}, // surrounding whitespace tolerated
		{"+25671234567", false},   // eight digits
		{"+2567123456789", false}, // ten digits
		{"0712345678", false},     // missing country prefix
		{"+255712345678", false},  // wrong country
		{"+256 712345678", false}, // inner space
		{"", false},
	}
	for _, tc := range cases {
		o := validOrder()
		o.CustomerPhone = tc.phone
		err := v.Validate(context.Background(), o, true)
		if tc.ok && err != nil {
			t.Errorf("phone %q: unexpected rejection: %v", tc.phone, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("phone %q: want rejection", tc.phone)
		}
	}
}

func TestValidate_AggregatesAllFields(t *testing.T) {
	v := validate.NewOrderValidator()

	err := v.Validate(context.Background(), &domain.Order{}, false)
	if !errors.Is(err, validate.ErrInvalidOrder) {
		t.Fatalf("want ErrInvalidOrder, got %v", err)
	}

	var verr *validate.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %T", err)
	}
	for _, field := range []string{"customerName", "customerPhone", "deliveryArea", "books"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("field %q missing from aggregate: %v", field, verr.Fields)
		}
	}
}

func TestValidate_UnresolvedDeliveryFee(t *testing.T) {
	v := validate.NewOrderValidator()

	o := validOrder()
	err := v.Validate(context.Background(), o, false)

	var verr *validate.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if msg, ok := verr.Fields["deliveryArea"]; !ok || msg != "delivery fee not resolved" {
		t.Fatalf("want unresolved-fee message, got %v", verr.Fields)
	}
}

func TestValidate_NotesOptional(t *testing.T) {
	v := validate.NewOrderValidator()

	o := validOrder()
	o.DeliveryNotes = ""
	if err := v.Validate(context.Background(), o, true); err != nil {
		t.Fatalf("notes are optional: %v", err)
	}
}
