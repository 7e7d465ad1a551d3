// Package validation implements the field-level checks for inventory inputs.
//
// The item checks exist in two modes over the same ordered rules
// (name, then quantity, then price): Item returns the first failure,
// ItemAll collects every failure for form-level feedback.
package validation

import (
	"math"
	"strconv"
	"strings"
)

// FieldError is a user-correctable, per-field validation failure.
// It is always returned as a value, never panicked.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// Numeric parses value as a non-negative finite number.
// ParseFloat accepts "NaN" and "Inf" spellings; those are not usable amounts,
// so they fail the same way as non-numeric text.
func Numeric(value, fieldName string) (float64, error) {
	num, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, &FieldError{Field: fieldName, Message: fieldName + " must be a number"}
	}
	if num < 0 {
		return 0, &FieldError{Field: fieldName, Message: fieldName + " cannot be negative"}
	}

	return num, nil
}

// Integer parses value like Numeric and truncates to an int, rejecting
// amounts too large to represent.
func Integer(value, fieldName string) (int, error) {
	num, err := Numeric(value, fieldName)
	if err != nil {
		return 0, err
	}
	if num > math.MaxInt32 {
		return 0, &FieldError{Field: fieldName, Message: fieldName + " must be a number"}
	}

	return int(num), nil
}

// Item runs the item checks fail-fast, returning the first failure.
func Item(name, quantity, price string) error {
	if strings.TrimSpace(name) == "" {
		return &FieldError{Field: "Item name", Message: "Item name is required"}
	}
	if _, err := Numeric(quantity, "Quantity"); err != nil {
		return err
	}
	if _, err := Numeric(price, "Price"); err != nil {
		return err
	}

	return nil
}

// ItemAll runs the same checks as Item but accumulates every failure,
// in rule order.
func ItemAll(name, quantity, price string) []error {
	var errs []error

	if strings.TrimSpace(name) == "" {
		errs = append(errs, &FieldError{Field: "Item name", Message: "Item name is required"})
	}
	if _, err := Numeric(quantity, "Quantity"); err != nil {
		errs = append(errs, err)
	}
	if _, err := Numeric(price, "Price"); err != nil {
		errs = append(errs, err)
	}

	return errs
}

// PasswordMinLength is the legacy minimum password length.
const PasswordMinLength = 6

func Password(password string) error {
	if len(password) < PasswordMinLength {
		return &FieldError{Field: "Password", Message: "Password must be at least 6 characters"}
	}

	return nil
}
