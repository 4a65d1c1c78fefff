package core

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/bookhub/bookhub/internal/neobookings"
)

// decodeArgs mirrors how tool arguments actually arrive: through
// encoding/json, so numbers are float64 and objects are map[string]any.
func decodeArgs(t *testing.T, raw string) *Args {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return NewArgs(m)
}

func TestArgsAccessors(t *testing.T) {
	args := decodeArgs(t, `{
		"hotel_code": "H123",
		"num_results": 25,
		"price": 99.5,
		"only_online": true,
		"hotel_codes": ["H1", "H2"],
		"occupancy": {"adults": 2},
		"rooms": [{"code": "DBL"}, {"code": "SGL"}]
	}`)

	if got := args.String("hotel_code"); got != "H123" {
		t.Fatalf("String: got %q", got)
	}
	if got := args.Int("num_results"); got != 25 {
		t.Fatalf("Int: got %d", got)
	}
	if got := args.Float("price"); got != 99.5 {
		t.Fatalf("Float: got %v", got)
	}
	if !args.Bool("only_online") {
		t.Fatal("Bool: want true")
	}
	if got := args.StringSlice("hotel_codes"); len(got) != 2 || got[0] != "H1" || got[1] != "H2" {
		t.Fatalf("StringSlice: got %v", got)
	}
	if got := args.Object("occupancy"); got == nil || got["adults"] != float64(2) {
		t.Fatalf("Object: got %v", got)
	}
	rooms := args.ObjectSlice("rooms")
	if len(rooms) != 2 || rooms[1]["code"] != "SGL" {
		t.Fatalf("ObjectSlice: got %v", rooms)
	}
	if err := args.Err(); err != nil {
		t.Fatalf("clean reads must not record an error: %v", err)
	}
}

func TestArgsAbsentKeysYieldZeroValues(t *testing.T) {
	args := decodeArgs(t, `{"present": "yes", "null": null}`)

	if args.String("missing") != "" || args.Int("missing") != 0 || args.Bool("missing") {
		t.Fatal("absent keys must read as zero values")
	}
	if args.StringSlice("missing") != nil || args.Object("missing") != nil {
		t.Fatal("absent collections must read as nil")
	}
	if args.Has("null") {
		t.Fatal("JSON null must count as absent")
	}
	if !args.Has("present") {
		t.Fatal("present key must report Has")
	}
	if err := args.Err(); err != nil {
		t.Fatalf("absence is not an error: %v", err)
	}
}

func TestArgsDefaults(t *testing.T) {
	args := decodeArgs(t, `{"language": "", "page": 3, "show_details": false}`)

	if got := args.StringOr("language", "es"); got != "es" {
		t.Fatalf("empty string falls back to default, got %q", got)
	}
	if got := args.StringOr("missing", "es"); got != "es" {
		t.Fatalf("missing key falls back to default, got %q", got)
	}
	if got := args.IntOr("page", 1); got != 3 {
		t.Fatalf("present value wins, got %d", got)
	}
	if got := args.IntOr("num_results", 10); got != 10 {
		t.Fatalf("missing int falls back to default, got %d", got)
	}
	if !args.BoolOr("missing", true) {
		t.Fatal("missing bool falls back to default")
	}
	// Unlike StringOr, an explicit false is a value, not an absence.
	if args.BoolOr("show_details", true) {
		t.Fatal("explicit false must win over the default")
	}
}

func TestArgsRecordsFirstTypeMismatch(t *testing.T) {
	args := decodeArgs(t, `{"hotel_code": 42, "num_results": "ten"}`)

	if got := args.String("hotel_code"); got != "" {
		t.Fatalf("mismatch must read as zero, got %q", got)
	}
	_ = args.Int("num_results")

	err := args.Err()
	if err == nil {
		t.Fatal("expected a recorded mismatch")
	}
	var vErr *neobookings.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if vErr.Code != neobookings.CodeInvalidInput {
		t.Fatalf("want %s, got %s", neobookings.CodeInvalidInput, vErr.Code)
	}
	// The first failure wins; hotel_code was read before num_results.
	if vErr.Details["field"] != "hotel_code" {
		t.Fatalf("want first mismatch retained, got %v", vErr.Details)
	}
}

func TestArgsMixedSliceRejected(t *testing.T) {
	args := decodeArgs(t, `{"hotel_codes": ["H1", 2]}`)

	if got := args.StringSlice("hotel_codes"); got != nil {
		t.Fatalf("mixed slice must read as nil, got %v", got)
	}
	if args.Err() == nil {
		t.Fatal("expected a recorded mismatch")
	}
}

func TestNewArgsNilMap(t *testing.T) {
	args := NewArgs(nil)
	if args.String("anything") != "" || args.Err() != nil {
		t.Fatal("nil map must behave as empty")
	}
}
