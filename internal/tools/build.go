package tools

import (
	"fmt"
	"strings"

	"github.com/bookhub/bookhub/internal/core"
	"github.com/bookhub/bookhub/internal/neobookings"
)

// Helpers shared by the Build functions. Optional wire fields are omitted
// rather than sent blank, matching what the API expects.

func clean(s string) string { return core.SanitizeString(s, 0) }

// invalidInput is shorthand for the most common rejection.
func invalidInput(message string) error {
	return neobookings.NewValidationError(neobookings.CodeInvalidInput, message, nil)
}

// reqStr reads a required string argument, failing when sanitization
// collapses it to empty.
func reqStr(a *core.Args, key string) (string, error) {
	v := clean(a.String(key))
	if v == "" {
		return "", neobookings.NewValidationError(neobookings.CodeInvalidInput,
			fmt.Sprintf("%s cannot be empty", key),
			map[string]any{"field": key})
	}
	return v, nil
}

// reqStrList reads a required list argument, dropping entries that
// sanitize to empty and failing when nothing survives.
func reqStrList(a *core.Args, key string) ([]string, error) {
	out := cleanList(a.StringSlice(key))
	if len(out) == 0 {
		return nil, neobookings.NewValidationError(neobookings.CodeInvalidInput,
			fmt.Sprintf("%s must contain at least one value", key),
			map[string]any{"field": key})
	}
	return out, nil
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if v := clean(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// putStr sets key when the value is non-empty.
func putStr(m map[string]any, key, val string) {
	if val != "" {
		m[key] = val
	}
}

// putTrue sets key only when val is true.
func putTrue(m map[string]any, key string, val bool) {
	if val {
		m[key] = true
	}
}

// putList sets key when the list has at least one entry.
func putList(m map[string]any, key string, items []string) {
	if len(items) > 0 {
		m[key] = items
	}
}

// putObj sets key when the nested object carries at least one field.
func putObj(m map[string]any, key string, obj map[string]any) {
	if len(obj) > 0 {
		m[key] = obj
	}
}

// Accessors for nested objects inside decoded arguments. They tolerate
// missing keys and wrong types so builders stay linear; schema-level type
// errors surface through Args instead.

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func boolVal(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

// strList pulls a list of non-empty strings out of a nested object value.
func strList(m map[string]any, key string) []string {
	items, _ := m[key].([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func has(m map[string]any, key string) bool {
	v, ok := m[key]
	return ok && v != nil
}

// objList coerces a raw JSON array value into object items, skipping
// anything else.
func objList(v any) []map[string]any {
	list, _ := v.([]any)
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// mapFields copies non-nil values onto a fresh object following the
// snake_case to wire-name mapping, preserving value types.
func mapFields(m map[string]any, mapping [][2]string) map[string]any {
	out := map[string]any{}
	for _, f := range mapping {
		if v, ok := m[f[0]]; ok && v != nil {
			out[f[1]] = v
		}
	}
	return out
}

// clientLocationFields shape the ClientLocation block shared by basket
// and availability payloads.
var clientLocationFields = [][2]string{
	{"country", "Country"},
	{"ip", "Ip"},
}

// intVal reads an integer-valued field from a decoded JSON object.
// Numbers arrive as float64 after JSON decoding.
func intVal(m map[string]any, key string) (int, bool) {
	switch n := m[key].(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

func toNum(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func numVal(m map[string]any, key string) (float64, bool) { return toNum(m[key]) }

// formatGuests validates one distribution's guest list: each entry is an
// age from 0 to 120 with an amount from 1 to 20.
func formatGuests(prefix string, guests []map[string]any) ([]map[string]any, error) {
	if len(guests) == 0 {
		return nil, neobookings.NewValidationError(neobookings.CodeInvalidInput,
			prefix+": at least one guest specification is required", nil)
	}
	out := make([]map[string]any, 0, len(guests))
	for j, guest := range guests {
		age, ageOK := intVal(guest, "age")
		amount, amountOK := intVal(guest, "amount")
		if !ageOK || age < 0 || age > 120 {
			return nil, neobookings.NewValidationError(neobookings.CodeInvalidInput,
				fmt.Sprintf("%s, guest %d: age must be between 0 and 120", prefix, j+1), nil)
		}
		if !amountOK || amount < 1 || amount > 20 {
			return nil, neobookings.NewValidationError(neobookings.CodeInvalidInput,
				fmt.Sprintf("%s, guest %d: amount must be between 1 and 20", prefix, j+1), nil)
		}
		out = append(out, map[string]any{"Age": age, "Amount": amount})
	}
	return out, nil
}

// upperCountryCodes validates ISO 3166-1 alpha-2 codes, upper-casing them.
func upperCountryCodes(codes []string) ([]string, error) {
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		c := strings.ToUpper(strings.TrimSpace(code))
		if len(c) != 2 {
			return nil, neobookings.NewValidationError(neobookings.CodeInvalidInput,
				fmt.Sprintf("country code must be 2 characters: %s", code),
				map[string]any{"value": code})
		}
		out = append(out, c)
	}
	return out, nil
}

// clientLocationFromArgs builds the ClientLocation block from the flat
// client_country and client_ip arguments.
func clientLocationFromArgs(a *core.Args) map[string]any {
	loc := map[string]any{}
	if c := clean(a.String("client_country")); c != "" {
		loc["Country"] = strings.ToUpper(c)
	}
	putStr(loc, "Ip", clean(a.String("client_ip")))
	return loc
}
