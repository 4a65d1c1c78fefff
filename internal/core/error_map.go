package core

import (
	"errors"
	"net/http"

	"github.com/bookhub/bookhub/internal/neobookings"
)

// CodedError is implemented by domain errors that carry a machine-readable code.
type CodedError interface {
	error
	ErrorCode() string
}

type ErrorInfo struct {
	Kind       string
	Code       string
	Message    string
	HTTPStatus int
}

// MapError translates a tool failure into a stable code and an HTTP status
// for the REST surface. Validation problems are the caller's fault (400),
// policy refusals are 403, and anything that went wrong against the remote
// API surfaces as a bad gateway.
func MapError(err error, fallbackStatus int) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: "INTERNAL_ERROR", Message: "internal server error", HTTPStatus: fallbackStatus}
	}

	var vErr *neobookings.ValidationError
	if errors.As(err, &vErr) {
		return ErrorInfo{Kind: "validation", Code: vErr.Code, Message: vErr.Message, HTTPStatus: http.StatusBadRequest}
	}

	var authErr *neobookings.AuthenticationError
	if errors.As(err, &authErr) {
		return ErrorInfo{Kind: "authentication", Code: authErr.Code, Message: authErr.Message, HTTPStatus: http.StatusBadGateway}
	}

	var apiErr *neobookings.APIError
	if errors.As(err, &apiErr) {
		return ErrorInfo{Kind: "api", Code: apiErr.Code, Message: apiErr.Message, HTTPStatus: http.StatusBadGateway}
	}

	var cfgErr *neobookings.ConfigError
	if errors.As(err, &cfgErr) {
		return ErrorInfo{Code: "MISSING_CONFIG", Message: cfgErr.Error(), HTTPStatus: http.StatusInternalServerError}
	}

	var coded CodedError
	if errors.As(err, &coded) {
		switch code := coded.ErrorCode(); code {
		case "TOOL_NOT_ALLOWED":
			return ErrorInfo{Code: code, Message: err.Error(), HTTPStatus: http.StatusForbidden}
		case "UNKNOWN_TOOL":
			return ErrorInfo{Code: code, Message: err.Error(), HTTPStatus: http.StatusNotFound}
		default:
			return ErrorInfo{Code: code, Message: err.Error(), HTTPStatus: fallbackStatus}
		}
	}

	return ErrorInfo{Code: "INTERNAL_ERROR", Message: err.Error(), HTTPStatus: fallbackStatus}
}
