package neobookings

// Stable error codes carried by Failure. Remote-reported errors keep the
// code the API sent (e.g. INVALID_CREDENTIALS) instead of one of these.
const (
	CodeMissingFields   = "MISSING_REQUIRED_FIELDS"
	CodeInvalidDate     = "INVALID_DATE"
	CodeInvalidLanguage = "INVALID_LANGUAGE"
	CodeInvalidInput    = "INVALID_INPUT"

	CodeAuthFailed   = "AUTH_FAILED"
	CodeTokenMissing = "TOKEN_MISSING"
	CodeTokenNotSet  = "TOKEN_NOT_SET"

	CodeAPIError   = "API_ERROR"
	CodeTransport  = "TRANSPORT_ERROR"
	CodeServer     = "SERVER_ERROR"
	CodeUnexpected = "UNEXPECTED_ERROR"
)

// Failure is the common shape of every error this package raises.
// Callers switch on the three concrete types below with errors.As.
type Failure struct {
	Code    string
	Message string
	Details map[string]any
}

func (f *Failure) Error() string { return f.Message }

func (f *Failure) ErrorCode() string { return f.Code }

// ValidationError reports caller-supplied input that was rejected before
// any network traffic happened.
type ValidationError struct{ Failure }

// AuthenticationError reports a failed or missing authentication step.
type AuthenticationError struct{ Failure }

// APIError reports a failed call against the remote API: transport
// failures, non-2xx statuses, undecodable bodies, and remote-reported
// envelope errors.
type APIError struct{ Failure }

func NewValidationError(code, message string, details map[string]any) *ValidationError {
	return &ValidationError{Failure{Code: code, Message: message, Details: details}}
}

func NewAuthenticationError(code, message string, details map[string]any) *AuthenticationError {
	return &AuthenticationError{Failure{Code: code, Message: message, Details: details}}
}

func NewAPIError(code, message string, details map[string]any) *APIError {
	return &APIError{Failure{Code: code, Message: message, Details: details}}
}
