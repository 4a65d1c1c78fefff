package neobookings

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorTypesDistinguishableWithAs(t *testing.T) {
	var errs = []error{
		NewValidationError(CodeMissingFields, "missing fields", map[string]any{"missing_fields": []string{"basket_id"}}),
		NewAuthenticationError(CodeTokenNotSet, "Authentication token required but not set", nil),
		NewAPIError(CodeTransport, "request failed", nil),
	}

	wrapped := make([]error, len(errs))
	for i, e := range errs {
		wrapped[i] = fmt.Errorf("call failed: %w", e)
	}

	var vErr *ValidationError
	if !errors.As(wrapped[0], &vErr) || vErr.Code != CodeMissingFields {
		t.Fatalf("validation error not recovered from %v", wrapped[0])
	}
	if errors.As(wrapped[0], new(*AuthenticationError)) || errors.As(wrapped[0], new(*APIError)) {
		t.Fatal("validation error matched a sibling type")
	}

	var aErr *AuthenticationError
	if !errors.As(wrapped[1], &aErr) || aErr.Code != CodeTokenNotSet {
		t.Fatalf("authentication error not recovered from %v", wrapped[1])
	}

	var apiErr *APIError
	if !errors.As(wrapped[2], &apiErr) || apiErr.Code != CodeTransport {
		t.Fatalf("api error not recovered from %v", wrapped[2])
	}
}

func TestFailureErrorStringIsMessage(t *testing.T) {
	err := NewAPIError(CodeServer, "server error 502 for endpoint /HotelSearchRQ", nil)
	if err.Error() != "server error 502 for endpoint /HotelSearchRQ" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if err.ErrorCode() != CodeServer {
		t.Fatalf("ErrorCode() = %q", err.ErrorCode())
	}
}
