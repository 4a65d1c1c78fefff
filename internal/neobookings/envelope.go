package neobookings

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultLanguage is applied when a caller does not name one.
const DefaultLanguage = "es"

var supportedLanguages = map[string]bool{
	"es": true,
	"en": true,
	"fr": true,
	"de": true,
	"it": true,
	"pt": true,
}

// NormalizeLanguage maps the empty string to DefaultLanguage and rejects
// anything outside the supported set.
func NormalizeLanguage(lang string) (string, error) {
	if lang == "" {
		return DefaultLanguage, nil
	}
	if !supportedLanguages[lang] {
		return "", NewValidationError(CodeInvalidLanguage,
			fmt.Sprintf("unsupported language %q, expected one of es, en, fr, de, it, pt", lang),
			map[string]any{"language": lang})
	}
	return lang, nil
}

// RequestEnvelope rides under the "Request" key of every outbound body.
// RequestId is minted fresh for every call and never reused.
type RequestEnvelope struct {
	RequestID string `json:"RequestId"`
	Timestamp string `json:"Timestamp"`
	Language  string `json:"Language"`
}

func NewRequest(language string) RequestEnvelope {
	return RequestEnvelope{
		RequestID: uuid.New().String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Language:  language,
	}
}

// Credentials mirror the wire shape of the Credentials block. They appear
// only in authentication payloads, never in domain payloads or logs.
type Credentials struct {
	ClientCode string `json:"ClientCode"`
	SystemCode string `json:"SystemCode"`
	Username   string `json:"Username"`
	Password   string `json:"Password"`
}

// NewPayload returns the outbound body skeleton for a standard call.
// Domain fields are merged in next to the Request key.
func NewPayload(language string) map[string]any {
	return map[string]any{"Request": NewRequest(language)}
}

// NewAuthPayload returns the body for the authentication endpoint: a fresh
// envelope plus the Credentials block from cfg.
func NewAuthPayload(cfg Config, language string) map[string]any {
	return map[string]any{
		"Request": NewRequest(language),
		"Credentials": Credentials{
			ClientCode: cfg.ClientCode,
			SystemCode: cfg.SystemCode,
			Username:   cfg.Username,
			Password:   cfg.Password,
		},
	}
}

type ResponseError struct {
	Code        string `json:"Code"`
	Description string `json:"Description"`
}

// ResponseEnvelope is the "Response" block present on every inbound reply.
type ResponseEnvelope struct {
	StatusCode   int             `json:"StatusCode"`
	RequestID    string          `json:"RequestId"`
	Timestamp    string          `json:"Timestamp"`
	TimeResponse int64           `json:"TimeResponse"`
	Success      json.RawMessage `json:"Success,omitempty"`
	Warning      json.RawMessage `json:"Warning,omitempty"`
	Error        []ResponseError `json:"Error,omitempty"`
}

// Reply is a decoded inbound body: the envelope, the top-level Token when
// the endpoint issued one, and the full body for domain field access.
type Reply struct {
	Envelope *ResponseEnvelope
	Token    string
	Body     map[string]any
}

func ParseReply(raw []byte) (*Reply, error) {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}

	var wire struct {
		Response *ResponseEnvelope `json:"Response"`
		Token    string            `json:"Token"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("decode response envelope: %w", err)
	}

	return &Reply{Envelope: wire.Response, Token: wire.Token, Body: body}, nil
}
