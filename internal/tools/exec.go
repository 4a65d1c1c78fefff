package tools

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bookhub/bookhub/internal/core"
	"github.com/bookhub/bookhub/internal/neobookings"
	"github.com/bookhub/bookhub/internal/telemetry"
)

// CallRecord is the journal row written after every tool call. It carries
// identifiers and outcomes only, never arguments or credentials.
type CallRecord struct {
	CallID     string    `json:"call_id"`
	Tool       string    `json:"tool"`
	Category   string    `json:"category"`
	RequestID  string    `json:"request_id"`
	Language   string    `json:"language"`
	Status     string    `json:"status"`
	ErrorCode  string    `json:"error_code"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// Recorder persists call records. A failed write must not fail the call.
type Recorder interface {
	Record(ctx context.Context, rec CallRecord) error
}

// Executor runs catalog tools: policy check, argument validation, the
// two-phase authenticated API call, and result shaping. Configuration is
// resolved and a fresh client constructed on every call, so environment
// changes take effect without restarts and no token outlives its call.
type Executor struct {
	registry *Registry
	policy   *core.Policy
	journal  Recorder
	logger   *slog.Logger
}

func NewExecutor(registry *Registry, policy *core.Policy, journal Recorder, logger *slog.Logger) *Executor {
	return &Executor{registry: registry, policy: policy, journal: journal, logger: logger}
}

func (e *Executor) Registry() *Registry { return e.registry }

type outcome struct {
	result    map[string]any
	text      string
	requestID string
	language  string
}

// Execute runs the named tool and always returns an envelope; failures
// land in Envelope.Error rather than a Go error so both transports render
// them uniformly.
func (e *Executor) Execute(ctx context.Context, name string, rawArgs map[string]any) core.ToolEnvelope {
	start := time.Now()
	callID := uuid.New().String()

	var out outcome
	category := ""
	tool, err := e.registry.Lookup(name)
	if err == nil {
		category = tool.Category
		if err = e.policy.CheckTool(tool.Name, tool.Category); err == nil {
			out, err = e.run(ctx, tool, rawArgs)
		}
	}

	duration := time.Since(start)
	env := core.ToolEnvelope{
		Meta: core.ToolMeta{
			CallID:     callID,
			Tool:       name,
			RequestID:  out.requestID,
			DurationMS: duration.Milliseconds(),
		},
	}

	status := "ok"
	errorCode := ""
	if err != nil {
		status = "error"
		info := core.MapError(err, http.StatusInternalServerError)
		errorCode = info.Code
		env.Error = &core.ToolError{Kind: info.Kind, Code: info.Code, Message: info.Message, Details: errorDetails(err)}
		e.logger.Warn("tool call failed",
			"call_id", callID,
			"tool", name,
			"code", errorCode,
			"duration_ms", duration.Milliseconds(),
			"error", err)
	} else {
		env.OK = true
		env.Result = out.result
		env.Text = out.text
		e.logger.Info("tool call completed",
			"call_id", callID,
			"tool", name,
			"request_id", out.requestID,
			"duration_ms", duration.Milliseconds())
	}

	telemetry.IncToolCall(name, status)
	telemetry.ObserveToolDuration(name, duration)

	e.record(ctx, CallRecord{
		CallID:     callID,
		Tool:       name,
		Category:   category,
		RequestID:  out.requestID,
		Language:   out.language,
		Status:     status,
		ErrorCode:  errorCode,
		DurationMS: duration.Milliseconds(),
		CreatedAt:  start.UTC(),
	})

	return env
}

func (e *Executor) run(ctx context.Context, tool *Tool, rawArgs map[string]any) (outcome, error) {
	cfg, err := neobookings.ResolveConfig()
	if err != nil {
		return outcome{}, err
	}

	args := core.NewArgs(rawArgs)
	language, err := neobookings.NormalizeLanguage(args.String("language"))
	if err != nil {
		return outcome{}, err
	}
	out := outcome{language: language}

	if err := core.RequireFields(args.Map(), tool.Required...); err != nil {
		return out, err
	}
	domain, err := tool.Build(args)
	if err != nil {
		return out, err
	}
	if err := args.Err(); err != nil {
		return out, err
	}

	client := neobookings.NewClient(cfg, e.logger)
	defer client.Close()

	if tool.AuthOnly {
		token, err := client.Authenticate(ctx, language)
		if err != nil {
			return out, err
		}
		out.result = map[string]any{"token": token, "language": language}
		out.text = "Authenticated, token " + truncateToken(token)
		return out, nil
	}

	payload := neobookings.NewPayload(language)
	for k, v := range domain {
		payload[k] = v
	}
	if req, ok := payload["Request"].(neobookings.RequestEnvelope); ok {
		out.requestID = req.RequestID
	}

	token, err := client.Authenticate(ctx, language)
	if err != nil {
		return out, err
	}
	client.SetToken(token)

	reply, err := client.Post(ctx, tool.Path, payload, true)
	if err != nil {
		return out, err
	}

	out.result = reply.Body
	if tool.Summarize != nil {
		out.text = tool.Summarize(reply)
	}
	if out.text == "" {
		out.text = tool.Name + " completed"
	}
	return out, nil
}

func (e *Executor) record(ctx context.Context, rec CallRecord) {
	if e.journal == nil {
		return
	}
	if err := e.journal.Record(ctx, rec); err != nil {
		telemetry.IncJournalWriteFailure()
		e.logger.Warn("journal write failed",
			"call_id", rec.CallID,
			"tool", rec.Tool,
			"error", err)
	}
}

// truncateToken renders a token prefix safe for display.
func truncateToken(token string) string {
	const keep = 20
	if len(token) <= keep {
		return token
	}
	return token[:keep] + "... (truncated)"
}

func errorDetails(err error) map[string]any {
	var vErr *neobookings.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Details
	}
	var authErr *neobookings.AuthenticationError
	if errors.As(err, &authErr) {
		return authErr.Details
	}
	var apiErr *neobookings.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Details
	}
	return nil
}
