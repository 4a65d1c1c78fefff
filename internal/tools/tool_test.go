package tools

import (
	"errors"
	"regexp"
	"strings"
	"testing"
)

func TestRegistryCatalog(t *testing.T) {
	r := NewRegistry()

	if got, want := r.Len(), 51; got != want {
		t.Fatalf("catalog size = %d, want %d", got, want)
	}

	wantCategories := map[string]int{
		"authentication": 1,
		"basket":         9,
		"budget":         4,
		"genericproduct": 3,
		"geosearch":      1,
		"hotelinventory": 15,
		"orders":         13,
		"packages":       4,
		"users":          1,
	}
	gotCategories := map[string]int{}
	for _, tool := range r.All() {
		gotCategories[tool.Category]++
	}
	for category, want := range wantCategories {
		if gotCategories[category] != want {
			t.Errorf("category %s has %d tools, want %d", category, gotCategories[category], want)
		}
	}
	if len(gotCategories) != len(wantCategories) {
		t.Errorf("categories = %v", gotCategories)
	}
}

func TestRegistryToolShape(t *testing.T) {
	nameRE := regexp.MustCompile(`^[a-z][a-z0-9_]*_rq$`)

	for _, tool := range NewRegistry().All() {
		t.Run(tool.Name, func(t *testing.T) {
			if !nameRE.MatchString(tool.Name) {
				t.Errorf("name %q is not snake_case ending in _rq", tool.Name)
			}
			if tool.Description == "" {
				t.Error("empty description")
			}
			if !strings.HasPrefix(tool.Path, "/") || !strings.HasSuffix(tool.Path, "RQ") {
				t.Errorf("path %q must start with / and end with RQ", tool.Path)
			}
			if tool.Build == nil {
				t.Error("nil Build")
			}
			if len(tool.Schema) == 0 {
				t.Error("empty schema")
			}
			if _, ok := tool.Schema["language"]; !ok {
				t.Error("schema has no language property")
			}
			for _, field := range tool.Required {
				if _, ok := tool.Schema[field]; !ok {
					t.Errorf("required field %q not in schema", field)
				}
			}
		})
	}
}

func TestRegistryPaths(t *testing.T) {
	// Spot checks, including the one endpoint whose casing does not
	// follow from the tool name.
	tests := []struct {
		name string
		path string
	}{
		{"authenticator_rq", "/AuthenticatorRQ"},
		{"basket_unlock_rq", "/BasketUnLockRQ"},
		{"hotel_room_avail_rq", "/HotelRoomAvailRQ"},
		{"order_put_rq", "/OrderPutRQ"},
		{"package_extra_avail_rq", "/PackageExtraAvailRQ"},
		{"zone_search_rq", "/ZoneSearchRQ"},
	}

	r := NewRegistry()
	for _, tc := range tests {
		tool, err := r.Lookup(tc.name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tc.name, err)
		}
		if tool.Path != tc.path {
			t.Errorf("%s path = %q, want %q", tc.name, tool.Path, tc.path)
		}
	}
}

func TestRegistryLookupUnknown(t *testing.T) {
	_, err := NewRegistry().Lookup("teleport_rq")

	var unknown *UnknownToolError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownToolError", err)
	}
	if unknown.Name != "teleport_rq" {
		t.Fatalf("name = %q", unknown.Name)
	}
	if unknown.ErrorCode() != "UNKNOWN_TOOL" {
		t.Fatalf("code = %q", unknown.ErrorCode())
	}
}

func TestToolDefinition(t *testing.T) {
	r := NewRegistry()
	tool, err := r.Lookup("hotel_details_rq")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	def := tool.Definition()
	if def["name"] != "hotel_details_rq" {
		t.Fatalf("name = %v", def["name"])
	}
	if def["description"] == "" {
		t.Fatal("empty description")
	}
	schema, ok := def["inputSchema"].(map[string]any)
	if !ok {
		t.Fatalf("inputSchema = %T", def["inputSchema"])
	}
	if schema["type"] != "object" {
		t.Fatalf("schema type = %v", schema["type"])
	}
	if _, ok := schema["properties"].(map[string]any); !ok {
		t.Fatalf("properties = %T", schema["properties"])
	}
	if req, ok := schema["required"].([]string); !ok || len(req) != 1 || req[0] != "hotel_ids" {
		t.Fatalf("required = %v", schema["required"])
	}

	// Optional-only tools must not render a required key at all.
	details, err := r.Lookup("package_details_rq")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if _, ok := details.Definition()["inputSchema"].(map[string]any)["required"]; ok {
		t.Fatal("package_details_rq rendered an empty required list")
	}
}
