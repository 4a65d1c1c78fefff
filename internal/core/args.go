package core

import (
	"fmt"
	"math"

	"github.com/bookhub/bookhub/internal/neobookings"
)

// Args wraps decoded tool arguments with typed accessors. Absent keys
// yield zero values (or the caller's default); a wrongly typed value marks
// the whole argument set invalid. Callers read fields first and check
// Err() once, so field mappings stay linear.
type Args struct {
	m   map[string]any
	err error
}

func NewArgs(m map[string]any) *Args {
	if m == nil {
		m = map[string]any{}
	}
	return &Args{m: m}
}

// Err returns the first type mismatch hit by an accessor, if any.
func (a *Args) Err() error { return a.err }

func (a *Args) fail(key, want string, got any) {
	if a.err == nil {
		a.err = neobookings.NewValidationError(neobookings.CodeInvalidInput,
			fmt.Sprintf("field %q must be a %s, got %T", key, want, got),
			map[string]any{"field": key})
	}
}

func (a *Args) Has(key string) bool {
	v, ok := a.m[key]
	return ok && v != nil
}

func (a *Args) Any(key string) any { return a.m[key] }

// Map returns the raw argument map.
func (a *Args) Map() map[string]any { return a.m }

func (a *Args) String(key string) string {
	v, ok := a.m[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		a.fail(key, "string", v)
		return ""
	}
	return s
}

func (a *Args) StringOr(key, def string) string {
	if !a.Has(key) {
		return def
	}
	if s := a.String(key); s != "" {
		return s
	}
	return def
}

func (a *Args) Int(key string) int {
	v, ok := a.m[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return int(math.Round(n))
	case int:
		return n
	case int64:
		return int(n)
	default:
		a.fail(key, "number", v)
		return 0
	}
}

func (a *Args) IntOr(key string, def int) int {
	if !a.Has(key) {
		return def
	}
	return a.Int(key)
}

func (a *Args) Float(key string) float64 {
	v, ok := a.m[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		a.fail(key, "number", v)
		return 0
	}
}

func (a *Args) Bool(key string) bool {
	v, ok := a.m[key]
	if !ok || v == nil {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		a.fail(key, "boolean", v)
		return false
	}
	return b
}

func (a *Args) BoolOr(key string, def bool) bool {
	if !a.Has(key) {
		return def
	}
	return a.Bool(key)
}

func (a *Args) StringSlice(key string) []string {
	v, ok := a.m[key]
	if !ok || v == nil {
		return nil
	}
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				a.fail(key, "list of strings", item)
				return nil
			}
			out = append(out, s)
		}
		return out
	default:
		a.fail(key, "list of strings", v)
		return nil
	}
}

func (a *Args) Object(key string) map[string]any {
	v, ok := a.m[key]
	if !ok || v == nil {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		a.fail(key, "object", v)
		return nil
	}
	return m
}

func (a *Args) ObjectSlice(key string) []map[string]any {
	v, ok := a.m[key]
	if !ok || v == nil {
		return nil
	}
	switch list := v.(type) {
	case []map[string]any:
		return list
	case []any:
		out := make([]map[string]any, 0, len(list))
		for _, item := range list {
			m, ok := item.(map[string]any)
			if !ok {
				a.fail(key, "list of objects", item)
				return nil
			}
			out = append(out, m)
		}
		return out
	default:
		a.fail(key, "list of objects", v)
		return nil
	}
}
