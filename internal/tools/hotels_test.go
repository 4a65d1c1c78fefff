package tools

import (
	"reflect"
	"testing"
)

func TestHotelSearchDefaultsOmitted(t *testing.T) {
	p := buildPayload(t, "hotel_search_rq", nil)
	if len(p) != 0 {
		t.Fatalf("payload = %v, want empty", p)
	}

	p = buildPayload(t, "hotel_search_rq", map[string]any{
		"page":        float64(1),
		"num_results": float64(25),
	})
	wantAbsent(t, p, "Page", "NumResults")

	p = buildPayload(t, "hotel_search_rq", map[string]any{
		"page":        float64(3),
		"num_results": float64(50),
	})
	wantField(t, p, "Page", 3)
	wantField(t, p, "NumResults", 50)
}

func TestHotelSearchLists(t *testing.T) {
	p := buildPayload(t, "hotel_search_rq", map[string]any{
		"hotel_names":      []any{" Sol Mar ", "   "},
		"countries":        []any{"ES"},
		"zones":            []any{"Z1", "Z2"},
		"hotel_categories": []any{"4"},
	})
	wantField(t, p, "HotelName", []string{"Sol Mar"})
	wantField(t, p, "Country", []string{"ES"})
	wantField(t, p, "Zone", []string{"Z1", "Z2"})
	wantField(t, p, "HotelCategory", []string{"4"})
}

func TestHotelDetailsRequiresIDs(t *testing.T) {
	err := buildError(t, "hotel_details_rq", map[string]any{
		"hotel_ids": []any{"   ", ""},
	})
	wantValidation(t, err, "hotel_ids must contain at least one value")
}

func TestHotelInfoListFlags(t *testing.T) {
	p := buildPayload(t, "hotel_info_list_details_rq", nil)
	wantField(t, p, "ShowHidden", false)
	wantField(t, p, "ShowDisabled", false)
	wantAbsent(t, p, "HotelId")

	p = buildPayload(t, "hotel_info_list_details_rq", map[string]any{
		"hotel_ids":     []any{"H1"},
		"show_hidden":   true,
		"show_disabled": true,
	})
	wantField(t, p, "ShowHidden", true)
	wantField(t, p, "ShowDisabled", true)
	wantField(t, p, "HotelId", []string{"H1"})
}

func TestChainInfoListEmptyPayload(t *testing.T) {
	p := buildPayload(t, "chain_info_list_details_rq", nil)
	if len(p) != 0 {
		t.Fatalf("payload = %v, want empty", p)
	}
}

// Board details always ship a FilterBy block; rate details only when a
// promo code filter survives.
func TestHotelBoardAndRateFilters(t *testing.T) {
	p := buildPayload(t, "hotel_board_details_rq", map[string]any{
		"board_ids": []any{"BB", "HB"},
	})
	wantField(t, p, "FilterBy", map[string]any{})
	wantField(t, p, "BoardId", []string{"BB", "HB"})

	p = buildPayload(t, "hotel_rate_details_rq", map[string]any{
		"rate_ids": []any{"R1"},
	})
	wantField(t, p, "RateId", []string{"R1"})
	wantAbsent(t, p, "FilterBy")

	p = buildPayload(t, "hotel_rate_details_rq", map[string]any{
		"hotel_ids": []any{"H1"},
		"filters":   map[string]any{"promo_codes": []any{" SUMMER "}},
	})
	wantField(t, p, "FilterBy", map[string]any{"PromoCode": []string{"SUMMER"}})
}

func TestOfferFilter(t *testing.T) {
	p := buildPayload(t, "hotel_offer_details_rq", map[string]any{
		"hotel_ids": []any{"H1"},
		"filters": map[string]any{
			"promo_codes":         []any{"WINTER"},
			"exclude_offer_types": []any{"promocode", "weekend", "discount"},
			"client_location":     map[string]any{"country": " es ", "ip": "10.0.0.9"},
			"client_device":       "tablet",
		},
	})
	filter, ok := p["FilterBy"].(map[string]any)
	if !ok {
		t.Fatalf("FilterBy missing, payload = %v", p)
	}
	wantField(t, filter, "PromoCode", []string{"WINTER"})
	wantField(t, filter, "ExcludeOfferType", []string{"promocode", "discount"})
	wantField(t, filter, "ClientLocation", map[string]any{"Country": "es", "Ip": "10.0.0.9"})
	wantField(t, filter, "ClientDevice", "tablet")
}

func TestOfferFilterDropsUnknownDevice(t *testing.T) {
	p := buildPayload(t, "hotel_offer_details_rq", map[string]any{
		"offer_ids": []any{"OF1"},
		"filters":   map[string]any{"client_device": "phone"},
	})
	wantField(t, p, "OfferId", []string{"OF1"})
	wantAbsent(t, p, "FilterBy")
}

func TestHotelRoomExtraDetailLists(t *testing.T) {
	p := buildPayload(t, "hotel_room_extra_details_rq", map[string]any{
		"hotel_ids": []any{"H1"},
		"room_ids":  []any{"R1"},
		"extra_ids": []any{"E1", "E2"},
	})
	want := map[string]any{
		"HotelId":          []string{"H1"},
		"HotelRoomId":      []string{"R1"},
		"HotelRoomExtraId": []string{"E1", "E2"},
	}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("payload = %#v, want %#v", p, want)
	}
}
