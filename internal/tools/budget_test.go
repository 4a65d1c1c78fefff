package tools

import (
	"reflect"
	"testing"
)

func TestBudgetSearch(t *testing.T) {
	p := buildPayload(t, "budget_search_rq", map[string]any{
		"order_by":   "price",
		"order_type": "asc",
		"budget_ids": []any{" BU1 "},
	})
	want := map[string]any{
		"OrderBy":    "price",
		"OrderType":  "asc",
		"BudgetId":   []string{"BU1"},
		"DateBy":     "creationdate",
		"Page":       1,
		"NumResults": 10,
	}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("payload = %#v, want %#v", p, want)
	}
}

func TestBudgetSearchFilter(t *testing.T) {
	p := buildPayload(t, "budget_search_rq", map[string]any{
		"order_by":   "creationdate",
		"order_type": "desc",
		"filter_by": map[string]any{
			"name":   " Ana ",
			"status": []any{"pending", "booked"},
			"client": map[string]any{
				"email": "ana@example.com",
				// Prefix without number never filters.
				"phone": map[string]any{"prefix": "+34"},
			},
		},
	})
	want := map[string]any{
		"Name":   "Ana",
		"Status": []any{"pending", "booked"},
		"Client": map[string]any{"Email": "ana@example.com"},
	}
	if !reflect.DeepEqual(p["FilterBy"], want) {
		t.Fatalf("FilterBy = %#v, want %#v", p["FilterBy"], want)
	}
}

func TestBudgetSearchDateOrder(t *testing.T) {
	err := buildError(t, "budget_search_rq", map[string]any{
		"order_by":   "creationdate",
		"order_type": "desc",
		"date_from":  "2026-05-10",
		"date_to":    "2026-05-01",
	})
	wantValidation(t, err, "date_from cannot be later than date_to")
}

func TestBudgetPropertiesUpdate(t *testing.T) {
	p := buildPayload(t, "budget_properties_update_rq", map[string]any{
		"budget_id":         "BU1",
		"sent_date":         "2026-09-01",
		"clear_copied_date": true,
	})
	want := map[string]any{
		"BudgetId":        "BU1",
		"SentDate":        "2026-09-01T00:00:00",
		"ClearCopiedDate": true,
	}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("payload = %#v, want %#v", p, want)
	}
}

func TestBudgetPropertiesUpdateRejects(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{
			"sent date conflict",
			map[string]any{
				"budget_id":       "BU1",
				"sent_date":       "2026-09-01",
				"clear_sent_date": true,
			},
			"Cannot set sent_date and clear_sent_date at the same time",
		},
		{
			"copied date conflict",
			map[string]any{
				"budget_id":         "BU1",
				"copied_date":       "2026-09-01T10:00:00",
				"clear_copied_date": true,
			},
			"Cannot set copied_date and clear_copied_date at the same time",
		},
		{
			"nothing to update",
			map[string]any{"budget_id": "BU1"},
			"At least one property update must be specified",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := buildError(t, "budget_properties_update_rq", tt.args)
			wantValidation(t, err, tt.want)
		})
	}
}
