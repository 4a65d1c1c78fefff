package neobookings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/bookhub/bookhub/internal/telemetry"
)

// AuthEndpoint is the only endpoint reachable without a token.
const AuthEndpoint = "/AuthenticatorRQ"

// Client is the gateway to the reservation API. One Client serves one
// invocation: construct it, authenticate, make the call, Close. The token
// lives only inside this client and dies with Close.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger

	mu    sync.Mutex
	token string
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Close drops the token and releases idle transport connections. The
// client must not be used afterwards.
func (c *Client) Close() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	c.httpClient.CloseIdleConnections()
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Authenticate performs the first phase of the call protocol: it posts the
// credentials payload and returns the issued token. It does not store the
// token; callers sequence SetToken explicitly.
//
// Rejections reported by the API become AuthenticationError. Transport,
// 5xx and parse failures stay APIError: the call never got far enough to
// be judged on credentials.
func (c *Client) Authenticate(ctx context.Context, language string) (string, error) {
	reply, err := c.Post(ctx, AuthEndpoint, NewAuthPayload(c.cfg, language), false)
	if err != nil {
		telemetry.IncAuthFailure()
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			switch apiErr.Code {
			case CodeTransport, CodeServer, CodeUnexpected:
				return "", err
			}
			return "", NewAuthenticationError(CodeAuthFailed, "Authentication failed: "+apiErr.Message, apiErr.Details)
		}
		return "", err
	}
	if reply.Token == "" {
		telemetry.IncAuthFailure()
		return "", NewAuthenticationError(CodeTokenMissing, "Failed to obtain authentication token", nil)
	}
	return reply.Token, nil
}

// Post sends payload to endpoint and returns the decoded reply. With
// requireAuth set it refuses to touch the network until a token is set.
// Every error it returns is one of the taxonomy types.
func (c *Client) Post(ctx context.Context, endpoint string, payload map[string]any, requireAuth bool) (*Reply, error) {
	token := c.Token()
	if requireAuth && token == "" {
		return nil, NewAuthenticationError(CodeTokenNotSet, "Authentication token required but not set", nil)
	}

	requestID := requestIDOf(payload)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, NewAPIError(CodeUnexpected, fmt.Sprintf("marshal request for %s: %v", endpoint, err),
			map[string]any{"endpoint": endpoint})
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, NewAPIError(CodeUnexpected, fmt.Sprintf("build request for %s: %v", endpoint, err),
			map[string]any{"endpoint": endpoint})
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if requireAuth {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("api request",
		"endpoint", endpoint,
		"request_id", requestID,
		"has_token", token != "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		telemetry.IncAPICall(endpoint, 0)
		return nil, NewAPIError(CodeTransport, fmt.Sprintf("request failed for endpoint %s: %v", endpoint, err),
			map[string]any{"endpoint": endpoint})
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		telemetry.IncAPICall(endpoint, resp.StatusCode)
		return nil, NewAPIError(CodeTransport, fmt.Sprintf("read response from %s: %v", endpoint, err),
			map[string]any{"endpoint": endpoint})
	}

	c.logger.Debug("api response",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"request_id", requestID)
	telemetry.IncAPICall(endpoint, resp.StatusCode)

	switch {
	case resp.StatusCode >= 500:
		return nil, NewAPIError(CodeServer, fmt.Sprintf("server error %d for endpoint %s", resp.StatusCode, endpoint),
			map[string]any{"endpoint": endpoint, "http_status": resp.StatusCode})
	case resp.StatusCode >= 400:
		return nil, clientError(endpoint, resp.StatusCode, raw)
	}

	reply, err := ParseReply(raw)
	if err != nil {
		return nil, NewAPIError(CodeUnexpected, fmt.Sprintf("parse response from %s: %v", endpoint, err),
			map[string]any{"endpoint": endpoint})
	}
	if reply.Envelope == nil {
		return nil, NewAPIError(CodeUnexpected, fmt.Sprintf("response from %s has no Response envelope", endpoint),
			map[string]any{"endpoint": endpoint})
	}
	if reply.Envelope.StatusCode != http.StatusOK || len(reply.Envelope.Error) > 0 {
		return nil, remoteError(endpoint, reply.Envelope)
	}

	return reply, nil
}

// clientError shapes a 4xx reply. The body may or may not carry an
// envelope; use its first error description when it does.
func clientError(endpoint string, httpStatus int, raw []byte) *APIError {
	details := map[string]any{"endpoint": endpoint, "http_status": httpStatus}
	if reply, err := ParseReply(raw); err == nil && reply.Envelope != nil {
		env := reply.Envelope
		details["status_code"] = env.StatusCode
		if len(env.Error) > 0 {
			details["errors"] = env.Error
			code := env.Error[0].Code
			if code == "" {
				code = CodeAPIError
			}
			return NewAPIError(code, env.Error[0].Description, details)
		}
	}
	return NewAPIError(CodeAPIError, fmt.Sprintf("API request failed with status %d for endpoint %s", httpStatus, endpoint), details)
}

// remoteError shapes an HTTP 200 reply whose envelope reports failure.
func remoteError(endpoint string, env *ResponseEnvelope) *APIError {
	details := map[string]any{"endpoint": endpoint, "status_code": env.StatusCode}
	if env.RequestID != "" {
		details["request_id"] = env.RequestID
	}
	if len(env.Error) > 0 {
		details["errors"] = env.Error
		code := env.Error[0].Code
		if code == "" {
			code = CodeAPIError
		}
		return NewAPIError(code, env.Error[0].Description, details)
	}
	return NewAPIError(CodeAPIError, fmt.Sprintf("API returned status code %d", env.StatusCode), details)
}

func requestIDOf(payload map[string]any) string {
	switch v := payload["Request"].(type) {
	case RequestEnvelope:
		return v.RequestID
	case map[string]any:
		if id, ok := v["RequestId"].(string); ok {
			return id
		}
	}
	return ""
}
