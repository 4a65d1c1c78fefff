package core

import (
	"fmt"
	"strings"
)

// PolicyError reports a tool call refused by the operator allowlist.
type PolicyError struct {
	Tool string
}

func (e *PolicyError) Error() string     { return fmt.Sprintf("tool %q not in allowlist", e.Tool) }
func (e *PolicyError) ErrorCode() string { return "TOOL_NOT_ALLOWED" }

// Policy restricts which catalog tools are callable, parsed from
// comma-separated env vars. With both lists empty every tool is callable;
// setting either list closes everything outside it.
type Policy struct {
	allowedTools      map[string]bool
	allowedCategories map[string]bool
}

// NewPolicy creates a Policy from comma-separated allowlist strings.
func NewPolicy(toolCSV, categoryCSV string) *Policy {
	return &Policy{
		allowedTools:      parseCSV(toolCSV),
		allowedCategories: parseCSV(categoryCSV),
	}
}

// CheckTool returns an error if the named tool of the given category is
// outside the configured allowlists. A nil Policy allows everything.
func (p *Policy) CheckTool(name, category string) error {
	if p == nil {
		return nil
	}
	if len(p.allowedTools) == 0 && len(p.allowedCategories) == 0 {
		return nil
	}
	if p.allowedTools[name] || p.allowedCategories[category] {
		return nil
	}
	return &PolicyError{Tool: name}
}

func parseCSV(s string) map[string]bool {
	m := make(map[string]bool)
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			m[item] = true
		}
	}
	return m
}
