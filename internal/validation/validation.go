// Package validation checks entities before they are handed to the backend.
// Validators accumulate every applicable error in field order and never
// return early; results are data, not errors.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
)

// Result carries the outcome of a validation pass
type Result struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

func newResult(errors []string) Result {
	return Result{IsValid: len(errors) == 0, Errors: errors}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
var nonDigits = regexp.MustCompile(`\D`)

// IsValidEmail reports whether the string has a local@domain.tld shape
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidABN reports whether the string normalizes to exactly 11 digits
func IsValidABN(abn string) bool {
	return len(nonDigits.ReplaceAllString(abn, "")) == 11
}

// IsValidPhone reports whether the string normalizes to at least 10 digits,
// the minimum for an Australian number with area code
func IsValidPhone(phone string) bool {
	return len(nonDigits.ReplaceAllString(phone, "")) >= 10
}

// IsEmpty reports whether the string is empty or whitespace only
func IsEmpty(value string) bool {
	return strings.TrimSpace(value) == ""
}

// Required returns an error message when the value is empty, or ""
func Required(value, fieldName string) string {
	if IsEmpty(value) {
		return fieldName + " is required"
	}
	return ""
}

// ValidateParty checks a provider or client. The label prefixes each error so
// invoice-level results stay attributable.
func ValidateParty(party entity.Party, label string) Result {
	var errs []string

	if IsEmpty(party.Name) {
		errs = append(errs, label+" name is required")
	}
	if party.Email != "" && !IsValidEmail(party.Email) {
		errs = append(errs, label+" email is invalid")
	}
	if party.ABN != "" && !IsValidABN(party.ABN) {
		errs = append(errs, label+" ABN must be 11 digits")
	}
	if party.Phone != "" && !IsValidPhone(party.Phone) {
		errs = append(errs, label+" phone number is invalid")
	}

	return newResult(errs)
}

// ValidateLineItem checks a single service item
func ValidateLineItem(item entity.ServiceItem) Result {
	var errs []string

	if IsEmpty(item.Description) {
		errs = append(errs, "Description is required")
	}
	if item.Quantity <= 0 {
		errs = append(errs, "Quantity must be greater than 0")
	}
	if item.UnitPrice < 0 {
		errs = append(errs, "Unit price cannot be negative")
	}

	return newResult(errs)
}

// ValidateInvoice checks an entire invoice, accumulating provider, client,
// item, and date errors in that order
func ValidateInvoice(inv entity.Invoice) Result {
	var errs []string

	errs = append(errs, ValidateParty(inv.Provider, "provider").Errors...)
	errs = append(errs, ValidateParty(inv.Client, "client").Errors...)

	if len(inv.Items) == 0 {
		errs = append(errs, "At least one service item is required")
	} else {
		for _, item := range inv.Items {
			errs = append(errs, ValidateLineItem(item).Errors...)
		}
	}

	if inv.Date.IsZero() {
		errs = append(errs, "Issue date is required")
	}
	if inv.Due.IsZero() {
		errs = append(errs, "Due date is required")
	}

	return newResult(errs)
}

// ValidateEmailConfig checks a dispatch request, naming each invalid
// recipient in the error message
func ValidateEmailConfig(cfg entity.EmailConfig) Result {
	var errs []string

	if len(cfg.To) == 0 {
		errs = append(errs, "Email recipient (To) is required")
	} else {
		var invalid []string
		for _, addr := range cfg.To {
			if !IsValidEmail(addr) {
				invalid = append(invalid, addr)
			}
		}
		if len(invalid) > 0 {
			errs = append(errs, fmt.Sprintf("Invalid email address(es): %s", strings.Join(invalid, ", ")))
		}
	}

	if IsEmpty(cfg.Subject) {
		errs = append(errs, "Email subject is required")
	}
	if IsEmpty(cfg.Body) {
		errs = append(errs, "Email body is required")
	}

	return newResult(errs)
}
