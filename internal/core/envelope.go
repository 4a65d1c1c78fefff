package core

// ToolEnvelope is the standard response wrapper for all tool calls.
// Used by the HTTP transport; the MCP transport renders Text instead.
type ToolEnvelope struct {
	OK     bool       `json:"ok"`
	Meta   ToolMeta   `json:"meta"`
	Result any        `json:"result,omitempty"`
	Text   string     `json:"text,omitempty"`
	Error  *ToolError `json:"error,omitempty"`
}

// ToolMeta identifies one tool invocation.
type ToolMeta struct {
	CallID     string `json:"call_id"`
	Tool       string `json:"tool"`
	RequestID  string `json:"request_id,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// ToolError is a tool-level failure (distinct from transport errors).
// Kind is the taxonomy bucket (validation, authentication, api) and is
// empty for failures raised on our side of the gateway.
type ToolError struct {
	Kind    string         `json:"kind,omitempty"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
