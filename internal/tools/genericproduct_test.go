package tools

import (
	"reflect"
	"testing"
)

func productAvailArgs() map[string]any {
	return map[string]any{
		"product_distributions": []any{
			map[string]any{
				"product_rph": float64(1),
				"date_from":   "2026-08-01",
				"date_to":     "2026-08-03",
				"guests": []any{
					map[string]any{"age": float64(30), "amount": float64(2)},
				},
			},
		},
	}
}

func TestGenericProductAvailDefaults(t *testing.T) {
	p := buildPayload(t, "generic_product_avail_rq", productAvailArgs())

	wantField(t, p, "GenericProductDistribution", []map[string]any{{
		"GenericProductRPH": 1,
		"DateFrom":          "2026-08-01",
		"DateTo":            "2026-08-03",
		"Guest":             []map[string]any{{"Age": 30, "Amount": 2}},
	}})
	wantField(t, p, "ShowHotelBasicDetail", true)
	wantField(t, p, "ShowHotelRoomBasicDetail", true)
	wantField(t, p, "ShowHotelRoomExtraBasicDetail", false)
	wantField(t, p, "ShowGenericProductNotAvailability", false)
	wantField(t, p, "ShowGenericProductDetail", true)
	// Defaults stay off the wire.
	wantAbsent(t, p, "ResultType", "OrderBy", "OrderType", "Page", "NumResults",
		"GenericProductFilterBy", "ClientDevice")
}

func TestGenericProductAvailSpecificDay(t *testing.T) {
	args := map[string]any{
		"product_distributions": []any{
			map[string]any{
				"product_rph":  float64(2),
				"date_from":    "2026-08-01",
				"date_to":      "2026-08-03",
				"specific_day": "2026-08-15",
				"guests": []any{
					map[string]any{"age": float64(40), "amount": float64(1)},
				},
			},
		},
	}
	p := buildPayload(t, "generic_product_avail_rq", args)
	wantField(t, p, "GenericProductDistribution", []map[string]any{{
		"GenericProductRPH": 2,
		"Day":               "2026-08-15",
		"Guest":             []map[string]any{{"Age": 40, "Amount": 1}},
	}})
}

func TestGenericProductAvailFilters(t *testing.T) {
	args := productAvailArgs()
	args["countries"] = []any{" es "}
	args["product_types"] = []any{"simpleproduct"}
	args["result_type"] = "besthotelprice"
	args["order_by"] = "quantity"
	args["page"] = float64(2)
	args["client_country"] = "es"
	args["client_ip"] = "10.2.3.4"
	p := buildPayload(t, "generic_product_avail_rq", args)
	wantField(t, p, "Country", []string{"ES"})
	wantField(t, p, "GenericProductFilterBy", map[string]any{
		"GenericProductType": []string{"simpleproduct"},
	})
	wantField(t, p, "ResultType", "besthotelprice")
	wantField(t, p, "OrderBy", "quantity")
	wantField(t, p, "Page", 2)
	wantField(t, p, "ClientLocation", map[string]any{"Country": "ES", "Ip": "10.2.3.4"})
}

func TestGenericProductAvailRejects(t *testing.T) {
	err := buildError(t, "generic_product_avail_rq", map[string]any{
		"product_distributions": []any{},
	})
	wantValidation(t, err, "product_distributions must contain at least one distribution")

	err = buildError(t, "generic_product_avail_rq", map[string]any{
		"product_distributions": []any{map[string]any{
			"product_rph": float64(0),
			"guests":      []any{map[string]any{"age": float64(30), "amount": float64(1)}},
		}},
	})
	wantValidation(t, err, "distribution 1: product_rph must be a positive integer")

	err = buildError(t, "generic_product_avail_rq", map[string]any{
		"product_distributions": []any{map[string]any{"product_rph": float64(1)}},
	})
	wantValidation(t, err, "distribution 1: at least one guest specification is required")

	args := productAvailArgs()
	args["countries"] = []any{"esp"}
	err = buildError(t, "generic_product_avail_rq", args)
	wantValidation(t, err, "country code must be 2 characters: esp")
}

func TestGenericProductDetails(t *testing.T) {
	p := buildPayload(t, "generic_product_details_rq", nil)
	want := map[string]any{"Status": "enabled"}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("payload = %#v, want %#v", p, want)
	}

	p = buildPayload(t, "generic_product_details_rq", map[string]any{
		"product_ids": []any{" GP1 "},
		"status":      "all",
	})
	wantField(t, p, "GenericProductId", []string{"GP1"})
	wantField(t, p, "Status", "all")
}

func TestGenericProductExtraAvail(t *testing.T) {
	p := buildPayload(t, "generic_product_extra_avail_rq", map[string]any{
		"product_availability_ids": []any{"GPA1"},
		"basket_id":                " BK2 ",
		"client_country":           "fr",
	})
	want := map[string]any{
		"GenericProductAvailabilityId": []string{"GPA1"},
		"BasketId":                     "BK2",
		"ClientLocation":               map[string]any{"Country": "FR"},
	}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("payload = %#v, want %#v", p, want)
	}

	err := buildError(t, "generic_product_extra_avail_rq", nil)
	wantValidation(t, err, "product_availability_ids must contain at least one value")
}
