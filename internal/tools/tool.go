// Package tools holds the reservation tool catalog and the executor that
// runs catalog tools against the Neobookings API. Each tool maps MCP-style
// snake_case arguments onto the PascalCase wire payload of one endpoint.
package tools

import (
	"fmt"

	"github.com/bookhub/bookhub/internal/core"
	"github.com/bookhub/bookhub/internal/neobookings"
)

// Tool is one catalog entry. Build translates validated arguments into the
// domain portion of the outbound payload; the executor supplies the Request
// envelope, authentication, and the HTTP call.
type Tool struct {
	Name        string
	Description string
	Path        string
	Category    string
	Required    []string
	Schema      map[string]any
	Build       func(a *core.Args) (map[string]any, error)
	Summarize   func(reply *neobookings.Reply) string

	// AuthOnly tools stop after the authentication phase and never post
	// to Path.
	AuthOnly bool
}

// Definition renders the tool in MCP tools/list shape.
func (t *Tool) Definition() map[string]any {
	schema := map[string]any{"type": "object", "properties": t.Schema}
	if len(t.Required) > 0 {
		schema["required"] = t.Required
	}
	return map[string]any{
		"name":        t.Name,
		"description": t.Description,
		"inputSchema": schema,
	}
}

// UnknownToolError reports a call to a name outside the catalog.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string     { return fmt.Sprintf("unknown tool %q", e.Name) }
func (e *UnknownToolError) ErrorCode() string { return "UNKNOWN_TOOL" }

// Registry is the immutable tool catalog, ordered by category then by
// position within the category file.
type Registry struct {
	order  []*Tool
	byName map[string]*Tool
}

// NewRegistry assembles the full catalog.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]*Tool)}
	r.register(authenticationTools()...)
	r.register(basketTools()...)
	r.register(budgetTools()...)
	r.register(genericProductTools()...)
	r.register(geosearchTools()...)
	r.register(hotelDetailTools()...)
	r.register(hotelAvailabilityTools()...)
	r.register(hotelInventoryTools()...)
	r.register(orderTools()...)
	r.register(packageTools()...)
	r.register(userTools()...)
	return r
}

func (r *Registry) register(tools ...*Tool) {
	for _, t := range tools {
		if _, dup := r.byName[t.Name]; dup {
			panic("tools: duplicate tool name " + t.Name)
		}
		r.byName[t.Name] = t
		r.order = append(r.order, t)
	}
}

// Lookup resolves a tool by name.
func (r *Registry) Lookup(name string) (*Tool, error) {
	t, ok := r.byName[name]
	if !ok {
		return nil, &UnknownToolError{Name: name}
	}
	return t, nil
}

// All returns the catalog in registration order. Callers must not mutate
// the returned slice.
func (r *Registry) All() []*Tool { return r.order }

func (r *Registry) Len() int { return len(r.order) }
