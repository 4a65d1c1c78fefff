package tools

import (
	"strings"
	"testing"
)

func packageAvailArgs() map[string]any {
	return map[string]any{
		"hotel_room_distribution": []any{
			map[string]any{
				"hotel_room_rph": float64(1),
				"date_from":      "2026-07-01",
				"date_to":        "2026-07-08",
				"guest": []any{
					map[string]any{"age": float64(30), "amount": float64(2)},
				},
			},
		},
	}
}

func TestPackageAvailDefaults(t *testing.T) {
	p := buildPayload(t, "package_avail_rq", packageAvailArgs())

	wantField(t, p, "HotelRoomDistribution", []map[string]any{{
		"HotelRoomRPH": 1,
		"DateFrom":     "2026-07-01",
		"DateTo":       "2026-07-08",
		"Guest":        []map[string]any{{"Age": 30, "Amount": 2}},
	}})
	wantField(t, p, "ShowHotelBasicDetail", true)
	wantField(t, p, "ShowHotelRoomBasicDetail", true)
	wantField(t, p, "ShowHotelRoomExtraBasicDetail", false)
	wantField(t, p, "ShowPackageNotAvailability", false)
	wantField(t, p, "ShowPackageDetail", true)
	wantField(t, p, "ResultType", "liveprice")
	wantField(t, p, "OrderBy", "price")
	wantField(t, p, "OrderType", "asc")
	wantField(t, p, "Page", 1)
	wantField(t, p, "NumResults", 20)
	wantField(t, p, "ClientDevice", "desktop")
	wantAbsent(t, p, "PromoCode", "Rewards", "Origin", "FilterBy", "ClientLocation")
}

func TestPackageAvailFilters(t *testing.T) {
	args := packageAvailArgs()
	args["promo_code"] = " SUN26 "
	args["rewards"] = true
	args["client_location"] = map[string]any{"country": "ES", "ip": "10.0.0.1"}
	args["filters"] = map[string]any{
		"reservation_mode": []any{"package"},
		"location_data": map[string]any{
			"latitude":  "39.57",
			"longitude": "2.65",
			"radio":     float64(25),
		},
	}
	p := buildPayload(t, "package_avail_rq", args)
	wantField(t, p, "PromoCode", "SUN26")
	wantField(t, p, "Rewards", true)
	wantField(t, p, "ClientLocation", map[string]any{"country": "ES", "ip": "10.0.0.1"})
	wantField(t, p, "FilterBy", map[string]any{
		"ReservationMode": []any{"package"},
		"LocationData": map[string]any{
			"latitude":  "39.57",
			"longitude": "2.65",
			"radio":     float64(25),
		},
	})
}

func TestPackageAvailRejects(t *testing.T) {
	room := func(mutate func(room map[string]any)) map[string]any {
		args := packageAvailArgs()
		room := args["hotel_room_distribution"].([]any)[0].(map[string]any)
		mutate(room)
		return args
	}
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{
			"no distribution",
			map[string]any{"hotel_room_distribution": []any{}},
			"Hotel room distribution is required",
		},
		{
			"bad rph",
			room(func(r map[string]any) { r["hotel_room_rph"] = float64(0) }),
			"Room 1: hotel_room_rph must be a positive integer",
		},
		{
			"missing dates",
			room(func(r map[string]any) { delete(r, "date_to") }),
			"Room 1: date_from and date_to are required",
		},
		{
			"malformed date",
			room(func(r map[string]any) { r["date_from"] = "2026/07/01" }),
			`Room 1: invalid date_from "2026/07/01", expected YYYY-MM-DD`,
		},
		{
			"no guests",
			room(func(r map[string]any) { r["guest"] = []any{} }),
			"Room 1: at least one guest is required",
		},
		{
			"guest amount too high",
			room(func(r map[string]any) {
				r["guest"] = []any{map[string]any{"age": float64(30), "amount": float64(11)}}
			}),
			"Room 1, Guest 1: amount must be between 1 and 10",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := buildError(t, "package_avail_rq", tt.args)
			wantValidation(t, err, tt.want)
		})
	}
}

func TestPackageAvailBounds(t *testing.T) {
	args := packageAvailArgs()
	args["page"] = float64(0)
	err := buildError(t, "package_avail_rq", args)
	wantValidation(t, err, "Page must be at least 1")

	args = packageAvailArgs()
	args["num_results"] = float64(101)
	err = buildError(t, "package_avail_rq", args)
	wantValidation(t, err, "Number of results must be between 1 and 100")

	oversized := make([]any, 101)
	for i := range oversized {
		oversized[i] = "H1"
	}
	args = packageAvailArgs()
	args["hotel_ids"] = oversized
	err = buildError(t, "package_avail_rq", args)
	wantValidation(t, err, "Hotel ID: maximum 100 items allowed")
}

func TestPackageCalendarAvail(t *testing.T) {
	p := buildPayload(t, "package_calendar_avail_rq", map[string]any{
		"date_from":   "2026-07-01",
		"date_to":     "2026-07-31",
		"adults":      float64(2),
		"package_ids": []any{"P1"},
	})
	wantField(t, p, "DateFrom", "2026-07-01")
	wantField(t, p, "DateTo", "2026-07-31")
	wantField(t, p, "Adults", 2)
	wantField(t, p, "PackageId", []string{"P1"})

	err := buildError(t, "package_calendar_avail_rq", map[string]any{
		"date_from": "2026-07-01",
		"adults":    float64(2),
	})
	wantValidation(t, err, "Both date_from and date_to are required")

	err = buildError(t, "package_calendar_avail_rq", map[string]any{
		"date_from": "2026-07-01",
		"date_to":   "2026-07-31",
		"adults":    float64(21),
	})
	wantValidation(t, err, "Adults must be between 1 and 20")
}

func TestPackageDetailsStatus(t *testing.T) {
	p := buildPayload(t, "package_details_rq", nil)
	wantField(t, p, "Status", "enabled")

	p = buildPayload(t, "package_details_rq", map[string]any{
		"status":      "all",
		"package_ids": []any{" P1 "},
	})
	wantField(t, p, "Status", "all")
	wantField(t, p, "PackageId", []string{"P1"})

	err := buildError(t, "package_details_rq", map[string]any{"status": "archived"})
	wantValidation(t, err, "Status must be 'enabled', 'disabled', or 'all'")
}

func TestPackageExtraAvail(t *testing.T) {
	tracking := map[string]any{"origin": "trivago", "code": "T-1"}
	p := buildPayload(t, "package_extra_avail_rq", map[string]any{
		"package_availability_ids": []any{"PAV1"},
		"basket_id":                "BK1",
		"tracking":                 tracking,
	})
	wantField(t, p, "PackageAvailabilityId", []string{"PAV1"})
	wantField(t, p, "BasketId", "BK1")
	wantField(t, p, "Tracking", tracking)
	wantField(t, p, "ClientDevice", "desktop")
}

func TestPackageExtraAvailRejects(t *testing.T) {
	err := buildError(t, "package_extra_avail_rq", nil)
	wantValidation(t, err, "Package availability IDs are required")

	oversized := make([]any, 51)
	for i := range oversized {
		oversized[i] = "PAV"
	}
	err = buildError(t, "package_extra_avail_rq", map[string]any{
		"package_availability_ids": oversized,
	})
	wantValidation(t, err, "Maximum 50 package availability IDs allowed")

	err = buildError(t, "package_extra_avail_rq", map[string]any{
		"package_availability_ids": []any{strings.Repeat("p", 101)},
	})
	wantValidation(t, err, "Package availability ID 1: maximum 100 characters allowed")

	err = buildError(t, "package_extra_avail_rq", map[string]any{
		"package_availability_ids": []any{"PAV1"},
		"basket_id":                "   ",
	})
	wantValidation(t, err, "Basket ID must be a non-empty string if provided")
}
