// Package core implements the transport-independent pieces of bookhub:
// input validation and sanitization, the tool result envelope, error
// mapping, and the operator policy.
package core

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/bookhub/bookhub/internal/neobookings"
)

const dateLayout = "2006-01-02"
const dateTimeLayout = "2006-01-02T15:04:05"

// RequireFields checks that every named field is present and non-null in
// args. It reports all missing fields in one error, in declaration order.
func RequireFields(args map[string]any, fields ...string) error {
	var missing []string
	for _, f := range fields {
		if v, ok := args[f]; !ok || v == nil {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return neobookings.NewValidationError(neobookings.CodeMissingFields,
			"Missing required fields: "+strings.Join(missing, ", "),
			map[string]any{"missing_fields": missing})
	}
	return nil
}

// SanitizeString trims surrounding whitespace, strips control and other
// non-printable runes, and truncates to maxLen runes when maxLen > 0.
// It never fails and is idempotent; whitespace-only input collapses to "".
func SanitizeString(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, s)
	if maxLen > 0 {
		runes := []rune(s)
		if len(runes) > maxLen {
			s = strings.TrimSpace(string(runes[:maxLen]))
		}
	}
	return s
}

// ParseDate validates a YYYY-MM-DD value and returns it in canonical form.
// field names the offending argument in the error.
func ParseDate(field, value string) (string, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return "", neobookings.NewValidationError(neobookings.CodeInvalidDate,
			fmt.Sprintf("invalid %s %q, expected YYYY-MM-DD", field, value),
			map[string]any{"field": field, "value": value})
	}
	return t.Format(dateLayout), nil
}

// ParseDateTime accepts either a date or a combined date-time
// (YYYY-MM-DDTHH:MM:SS) and returns the full date-time form; a bare date
// expands to midnight.
func ParseDateTime(field, value string) (string, error) {
	if t, err := time.Parse(dateTimeLayout, value); err == nil {
		return t.Format(dateTimeLayout), nil
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t.Format(dateTimeLayout), nil
	}
	return "", neobookings.NewValidationError(neobookings.CodeInvalidDate,
		fmt.Sprintf("invalid %s %q, expected YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS", field, value),
		map[string]any{"field": field, "value": value})
}

// ValidateDateRange requires toDate to fall strictly after fromDate. Both
// values must already be YYYY-MM-DD.
func ValidateDateRange(fromField, fromDate, toField, toDate string) error {
	from, err := time.Parse(dateLayout, fromDate)
	if err != nil {
		return neobookings.NewValidationError(neobookings.CodeInvalidDate,
			fmt.Sprintf("invalid %s %q, expected YYYY-MM-DD", fromField, fromDate),
			map[string]any{"field": fromField, "value": fromDate})
	}
	to, err := time.Parse(dateLayout, toDate)
	if err != nil {
		return neobookings.NewValidationError(neobookings.CodeInvalidDate,
			fmt.Sprintf("invalid %s %q, expected YYYY-MM-DD", toField, toDate),
			map[string]any{"field": toField, "value": toDate})
	}
	if !to.After(from) {
		return neobookings.NewValidationError(neobookings.CodeInvalidInput,
			fmt.Sprintf("%s %q must be after %s %q", toField, toDate, fromField, fromDate),
			map[string]any{fromField: fromDate, toField: toDate})
	}
	return nil
}
