package services

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationKind classifies why a submission check failed.
type ValidationKind string

const (
	ValidationMissingField  ValidationKind = "missing_field"
	ValidationInvalidFormat ValidationKind = "invalid_format"
	ValidationEmptyList     ValidationKind = "empty_list"
)

// ValidationError is a blocking submission failure with a human-readable
// reason. Validation never mutates anything: a failed check leaves every
// record exactly as it was, the user corrects the input and retries.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ValidateWindowItems is the strict counterpart of CalcWindowLineCost.
// It requires at least one window and positive width, height, unit price
// and quantity on every window. The first failure is returned with the
// window's position so the user knows exactly what to fix.
func ValidateWindowItems(windows []WindowForPricing) error {
	if len(windows) == 0 {
		return &ValidationError{Kind: ValidationEmptyList, Message: "Please add at least one window."}
	}

	for i, w := range windows {
		fields := []struct {
			value float64
			label string
		}{
			{w.WidthMM, "width"},
			{w.HeightMM, "height"},
			{w.PricePerSqm, "price per m²"},
			{w.Quantity, "quantity"},
		}
		for _, f := range fields {
			if f.value <= 0 {
				return &ValidationError{
					Kind:    ValidationMissingField,
					Message: fmt.Sprintf("Window %d: %s is required.", i+1, f.label),
				}
			}
		}
	}
	return nil
}

// CustomerDetails is the customer block entered on the invoice screen.
type CustomerDetails struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// emailHasAt is the only email rule applied: the address must contain "@".
var emailHasAt = validation.By(func(value any) error {
	s, _ := value.(string)
	if !strings.Contains(s, "@") {
		return errors.New("must contain @")
	}
	return nil
})

// ValidateCustomer checks the customer block before an invoice document
// can be generated or emailed.
func ValidateCustomer(c CustomerDetails) error {
	checks := []struct {
		value string
		rules []validation.Rule
		kind  ValidationKind
		msg   string
	}{
		{c.Name, []validation.Rule{validation.Required}, ValidationMissingField, "Customer name is required."},
		{c.Email, []validation.Rule{validation.Required}, ValidationMissingField, "Email is required."},
		{c.Email, []validation.Rule{emailHasAt}, ValidationInvalidFormat, "Valid email is required."},
		{c.Phone, []validation.Rule{validation.Required}, ValidationMissingField, "Phone number is required."},
		{c.Phone, []validation.Rule{validation.Length(8, 0)}, ValidationInvalidFormat, "Valid phone number is required."},
		{c.Address, []validation.Rule{validation.Required}, ValidationMissingField, "Address is required."},
	}

	for _, ch := range checks {
		if err := validation.Validate(strings.TrimSpace(ch.value), ch.rules...); err != nil {
			return &ValidationError{Kind: ch.kind, Message: ch.msg}
		}
	}
	return nil
}

// ValidateForSubmission runs the full pre-generation gate: the window list
// first, then the customer block, in that order.
func ValidateForSubmission(windows []WindowForPricing, customer CustomerDetails) error {
	if err := ValidateWindowItems(windows); err != nil {
		return err
	}
	return ValidateCustomer(customer)
}
