package tools

import (
	"fmt"
	"reflect"
	"testing"
)

func TestInventoryReadWindow(t *testing.T) {
	p := buildPayload(t, "hotel_inventory_read_rq", map[string]any{
		"date_from": "2026-05-01",
		"date_to":   "2026-05-31",
		"hotel_ids": []any{"H1"},
	})
	want := map[string]any{
		"DateFrom": "2026-05-01",
		"DateTo":   "2026-05-31",
		"HotelId":  []string{"H1"},
	}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("payload = %#v, want %#v", p, want)
	}

	err := buildError(t, "hotel_inventory_read_rq", map[string]any{
		"date_from": "2026-05-31",
		"date_to":   "2026-05-01",
	})
	wantValidation(t, err, "date_from must be before date_to")

	err = buildError(t, "hotel_inventory_read_rq", map[string]any{
		"date_from": "2026-01-01",
		"date_to":   "2027-01-02",
	})
	wantValidation(t, err, "Date range cannot exceed 365 days")
}

func inventoryUpdateItem() map[string]any {
	return map[string]any{
		"hotel_id":  "H1",
		"room_id":   "R1",
		"date_from": "2026-05-01",
		"date_to":   "2026-05-10",
		"partner":   map[string]any{"use_partner_mapping": true, "partner_mapping_name": "booking"},
	}
}

func TestInventoryUpdatePayload(t *testing.T) {
	item := inventoryUpdateItem()
	item["availability"] = float64(5)
	item["restrictions"] = map[string]any{
		"release":           float64(2),
		"min_stay":          float64(2),
		"max_stay":          float64(7),
		"closed":            true,
		"closed_on_arrival": false,
	}
	item["rate_id"] = "RT1"
	p := buildPayload(t, "hotel_inventory_update_rq", map[string]any{
		"inventory_updates": []any{item},
	})
	want := map[string]any{"InventoryUpdate": []map[string]any{{
		"HotelId":  "H1",
		"RoomId":   "R1",
		"DateFrom": "2026-05-01",
		"DateTo":   "2026-05-10",
		"Partner":  map[string]any{"UsePartnerMapping": true, "PartnerMappingName": "booking"},
		"Avail":    5,
		"Restriction": map[string]any{
			"Release":         2,
			"MinStay":         2,
			"MaxStay":         7,
			"Closed":          true,
			"ClosedOnArrival": false,
		},
		"RateId": "RT1",
	}}}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("payload = %#v, want %#v", p, want)
	}
}

func TestInventoryUpdateRejects(t *testing.T) {
	scope := " for hotel H1 room R1"
	tests := []struct {
		name   string
		mutate func(item map[string]any)
		want   string
	}{
		{
			"missing partner",
			func(item map[string]any) { delete(item, "partner") },
			"Inventory update #1: Missing required field: partner",
		},
		{
			"window too long",
			func(item map[string]any) { item["date_to"] = "2027-06-01" },
			"Inventory update #1: Date range cannot exceed 365 days" + scope,
		},
		{
			"negative availability",
			func(item map[string]any) { item["availability"] = float64(-1) },
			"Inventory update #1: availability must be a non-negative integer" + scope,
		},
		{
			"min stay zero",
			func(item map[string]any) {
				item["restrictions"] = map[string]any{"min_stay": float64(0)}
			},
			"Inventory update #1: restrictions.min_stay must be a positive integer" + scope,
		},
		{
			"partner flag missing",
			func(item map[string]any) { item["partner"] = map[string]any{} },
			"Inventory update #1: partner.use_partner_mapping is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := inventoryUpdateItem()
			tt.mutate(item)
			err := buildError(t, "hotel_inventory_update_rq", map[string]any{
				"inventory_updates": []any{item},
			})
			wantValidation(t, err, tt.want)
		})
	}
}

func TestInventoryUpdateBatchLimits(t *testing.T) {
	err := buildError(t, "hotel_inventory_update_rq", map[string]any{
		"inventory_updates": []any{},
	})
	wantValidation(t, err, "At least one inventory update is required")

	oversized := make([]any, maxBatchUpdates+1)
	for i := range oversized {
		oversized[i] = inventoryUpdateItem()
	}
	err = buildError(t, "hotel_inventory_update_rq", map[string]any{
		"inventory_updates": oversized,
	})
	wantValidation(t, err, fmt.Sprintf("Cannot process more than %d inventory updates at once", maxBatchUpdates))
}

func priceUpdateItem(mode string, pricing map[string]any) map[string]any {
	return map[string]any{
		"hotel_id":     "H1",
		"room_id":      "R1",
		"date_from":    "2026-05-01",
		"date_to":      "2026-05-10",
		"mode":         mode,
		"partner":      map[string]any{"use_partner_mapping": false},
		"pricing_data": pricing,
	}
}

func TestPriceUpdateOccupancy(t *testing.T) {
	p := buildPayload(t, "hotel_price_update_rq", map[string]any{
		"price_updates": []any{priceUpdateItem("occupancy", map[string]any{
			"base_price":         float64(100),
			"extra_adults_price": []any{float64(20), float64(25)},
		})},
	})
	items, ok := p["PriceUpdate"].([]map[string]any)
	if !ok || len(items) != 1 {
		t.Fatalf("PriceUpdate = %#v, want one item", p["PriceUpdate"])
	}
	wantField(t, items[0], "Mode", "occupancy")
	wantField(t, items[0], "Occupancy", map[string]any{
		"BasePrice":        float64(100),
		"ExtraAdultsPrice": []float64{20, 25},
	})
}

func TestPriceUpdatePax(t *testing.T) {
	p := buildPayload(t, "hotel_price_update_rq", map[string]any{
		"price_updates": []any{priceUpdateItem("pax", map[string]any{
			"pax_configurations": []any{
				map[string]any{"adults": float64(2), "price": float64(120)},
				map[string]any{"adults": float64(2), "children": float64(1), "price": float64(140.5)},
			},
		})},
	})
	items := p["PriceUpdate"].([]map[string]any)
	wantField(t, items[0], "Pax", []map[string]any{
		{"Adult": 2, "Price": float64(120)},
		{"Adult": 2, "Child": 1, "Price": float64(140.5)},
	})
}

func TestPriceUpdateAccommodation(t *testing.T) {
	p := buildPayload(t, "hotel_price_update_rq", map[string]any{
		"price_updates": []any{priceUpdateItem("accommodation", map[string]any{
			"accommodation_price": float64(99.5),
		})},
	})
	items := p["PriceUpdate"].([]map[string]any)
	wantField(t, items[0], "Accommodation", map[string]any{"Price": float64(99.5)})
}

func TestPriceUpdateRejects(t *testing.T) {
	scope := " for hotel H1 room R1"
	tests := []struct {
		name string
		item map[string]any
		want string
	}{
		{
			"invalid mode",
			priceUpdateItem("flat", map[string]any{}),
			"Price update #1: Invalid mode: flat. Must be 'pax', 'occupancy', or 'accommodation'",
		},
		{
			"occupancy without base price",
			priceUpdateItem("occupancy", map[string]any{}),
			"Price update #1: base_price is required for occupancy mode" + scope,
		},
		{
			"negative extra price",
			priceUpdateItem("occupancy", map[string]any{
				"base_price":        float64(80),
				"extra_child_price": []any{float64(-5)},
			}),
			"Price update #1: extra_child_price[0] must be a non-negative number" + scope,
		},
		{
			"pax entry incomplete",
			priceUpdateItem("pax", map[string]any{
				"pax_configurations": []any{map[string]any{"adults": float64(2)}},
			}),
			"Price update #1: pax_configurations[0] must contain 'adults' and 'price'" + scope,
		},
		{
			"accommodation without price",
			priceUpdateItem("accommodation", map[string]any{}),
			"Price update #1: accommodation_price is required for accommodation mode" + scope,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := buildError(t, "hotel_price_update_rq", map[string]any{
				"price_updates": []any{tt.item},
			})
			wantValidation(t, err, tt.want)
		})
	}
}
