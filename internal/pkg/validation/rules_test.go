package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	Name  string  `json:"name" validate:"notblank"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,phone"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterOn(v)
	return v
}

func strPtr(s string) *string { return &s }

func TestPhoneRule(t *testing.T) {
	v := newValidator()

	tests := []struct {
		phone *string
		valid bool
	}{
		{phone: nil, valid: true},
		{phone: strPtr("5551234567"), valid: true},
		{phone: strPtr("123456789012345"), valid: true},
		{phone: strPtr("123456789"), valid: false},
		{phone: strPtr("1234567890123456"), valid: false},
		{phone: strPtr("555-123-4567"), valid: false},
	}

	for _, tt := range tests {
		err := v.Struct(sample{Name: "x", Phone: tt.phone})
		if (err == nil) != tt.valid {
			t.Fatalf("phone %v: expected valid=%v, got %v", tt.phone, tt.valid, err)
		}
	}
}

func TestNotBlankReportsJSONName(t *testing.T) {
	err := newValidator().Struct(sample{Name: "   "})

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) != 1 {
		t.Fatalf("expected one validation error, got %v", err)
	}
	if verrs[0].Field() != "name" || verrs[0].Tag() != "notblank" {
		t.Fatalf("unexpected field error %s/%s", verrs[0].Field(), verrs[0].Tag())
	}
}
