package tools

import (
	"fmt"
	"strings"

	"github.com/bookhub/bookhub/internal/core"
	"github.com/bookhub/bookhub/internal/neobookings"
)

func packageTools() []*Tool {
	return []*Tool{
		{
			Name:        "package_avail_rq",
			Description: "Search availability and pricing for tourism packages",
			Path:        "/PackageAvailRQ",
			Category:    "packages",
			Required:    []string{"hotel_room_distribution"},
			Schema: map[string]any{
				"hotel_room_distribution": arrayProp("Room and guest distribution details", objItem(map[string]any{
					"hotel_room_rph": intProp("Room reference number"),
					"date_from":      dateProp("Check-in date"),
					"date_to":        dateProp("Check-out date"),
					"guest":          guestArrayProp(),
				}, "hotel_room_rph", "date_from", "date_to", "guest")),
				"country":          strArrayProp("Country codes to filter by (ISO 3166-1)"),
				"zone":             strArrayProp("Zone codes to filter by"),
				"hotel_ids":        strArrayProp("Specific hotel identifiers to search"),
				"hotel_room_ids":   strArrayProp("Specific room identifiers to include"),
				"hotel_types":      strArrayProp("Hotel types to filter by"),
				"hotel_categories": strArrayProp("Hotel categories to filter by"),
				"result_type":      enumProp("Type of pricing result", "besthotelprice", "liveprice"),
				"order_by":         enumProp("Field to sort results by", "id", "hotelid", "roomid", "price", "quantity", "location", "order"),
				"order_type":       enumProp("Sort direction", "asc", "desc"),
				"page":             intProp("Page number"),
				"num_results":      intProp("Results per page (max 100)"),
				"promo_code":       strProp("Promotional code to apply"),
				"rewards":          boolProp("Include loyalty rewards"),
				"origin":           strProp("Booking origin identifier"),
				"filters": objProp("Additional filtering criteria", map[string]any{
					"reservation_mode":       strArrayProp("Reservation modes to include: room, package, product"),
					"hotel_room_amenity_ids": strArrayProp("Required room amenities"),
					"hotel_amenity_ids":      strArrayProp("Required hotel amenities"),
					"location_data": objProp("Geographic location filtering", map[string]any{
						"latitude":      strProp("Latitude of the search point"),
						"longitude":     strProp("Longitude of the search point"),
						"response_unit": enumProp("Distance unit", "km", "mt", "ml"),
						"radio":         numProp("Search radius"),
					}),
				}),
				"show_hotel_basic_detail":            boolProp("Include basic hotel information"),
				"show_hotel_room_basic_detail":       boolProp("Include basic room information"),
				"show_hotel_room_extra_basic_detail": boolProp("Include room extra information"),
				"show_package_not_availability":      boolProp("Include packages that are not available"),
				"show_package_detail":                boolProp("Include detailed package information"),
				"client_location": objProp("Client location information", map[string]any{
					"country": strProp("Country code (ISO 3166-1)"),
					"ip":      strProp("Client IP address"),
				}),
				"client_device": enumProp("Client device type", "desktop", "mobile", "tablet"),
				"language":      langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				distribution, err := packageDistributions(a.ObjectSlice("hotel_room_distribution"))
				if err != nil {
					return nil, err
				}
				country, err := cappedIDList(a.StringSlice("country"), "Country", 50)
				if err != nil {
					return nil, err
				}
				zone, err := cappedIDList(a.StringSlice("zone"), "Zone", 100)
				if err != nil {
					return nil, err
				}
				hotelIDs, err := cappedIDList(a.StringSlice("hotel_ids"), "Hotel ID", 100)
				if err != nil {
					return nil, err
				}
				roomIDs, err := cappedIDList(a.StringSlice("hotel_room_ids"), "Hotel Room ID", 100)
				if err != nil {
					return nil, err
				}
				hotelTypes, err := cappedIDList(a.StringSlice("hotel_types"), "Hotel Type", 20)
				if err != nil {
					return nil, err
				}
				hotelCategories, err := cappedIDList(a.StringSlice("hotel_categories"), "Hotel Category", 20)
				if err != nil {
					return nil, err
				}
				page := a.IntOr("page", 1)
				if page < 1 {
					return nil, invalidInput("Page must be at least 1")
				}
				numResults := a.IntOr("num_results", 20)
				if numResults < 1 || numResults > 100 {
					return nil, invalidInput("Number of results must be between 1 and 100")
				}
				p := map[string]any{
					"HotelRoomDistribution":         distribution,
					"ShowHotelBasicDetail":          a.BoolOr("show_hotel_basic_detail", true),
					"ShowHotelRoomBasicDetail":      a.BoolOr("show_hotel_room_basic_detail", true),
					"ShowHotelRoomExtraBasicDetail": a.Bool("show_hotel_room_extra_basic_detail"),
					"ShowPackageNotAvailability":    a.Bool("show_package_not_availability"),
					"ResultType":                    a.StringOr("result_type", "liveprice"),
					"OrderBy":                       a.StringOr("order_by", "price"),
					"OrderType":                     a.StringOr("order_type", "asc"),
					"Page":                          page,
					"NumResults":                    numResults,
				}
				putList(p, "Country", country)
				putList(p, "Zone", zone)
				putList(p, "HotelId", hotelIDs)
				putList(p, "HotelRoomId", roomIDs)
				putList(p, "HotelType", hotelTypes)
				putList(p, "HotelCategory", hotelCategories)
				putTrue(p, "ShowPackageDetail", a.BoolOr("show_package_detail", true))
				putStr(p, "PromoCode", clean(a.String("promo_code")))
				putTrue(p, "Rewards", a.Bool("rewards"))
				putStr(p, "Origin", clean(a.String("origin")))
				if loc := a.Object("client_location"); len(loc) > 0 {
					p["ClientLocation"] = loc
				}
				p["ClientDevice"] = a.StringOr("client_device", "desktop")
				putObj(p, "FilterBy", packageAvailFilter(a.Object("filters")))
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "PackageAvail", "available package")
			},
		},
		{
			Name:        "package_calendar_avail_rq",
			Description: "Retrieve day by day availability calendars for packages",
			Path:        "/PackageCalendarAvailRQ",
			Category:    "packages",
			Required:    []string{"date_from", "date_to", "adults"},
			Schema: map[string]any{
				"date_from":      dateProp("Start date for the calendar range"),
				"date_to":        dateProp("End date for the calendar range"),
				"adults":         intProp("Number of adults for pricing"),
				"hotel_ids":      strArrayProp("Specific hotel identifiers to check"),
				"package_ids":    strArrayProp("Specific package identifiers to check"),
				"hotel_room_ids": strArrayProp("Specific room identifiers to check"),
				"language":       langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				dateFrom := strings.TrimSpace(a.String("date_from"))
				dateTo := strings.TrimSpace(a.String("date_to"))
				if dateFrom == "" || dateTo == "" {
					return nil, invalidInput("Both date_from and date_to are required")
				}
				var err error
				if dateFrom, err = core.ParseDate("date_from", dateFrom); err != nil {
					return nil, err
				}
				if dateTo, err = core.ParseDate("date_to", dateTo); err != nil {
					return nil, err
				}
				adults := a.Int("adults")
				if adults < 1 || adults > 20 {
					return nil, invalidInput("Adults must be between 1 and 20")
				}
				hotelIDs, err := cappedIDList(a.StringSlice("hotel_ids"), "Hotel ID", 100)
				if err != nil {
					return nil, err
				}
				packageIDs, err := cappedIDList(a.StringSlice("package_ids"), "Package ID", 100)
				if err != nil {
					return nil, err
				}
				roomIDs, err := cappedIDList(a.StringSlice("hotel_room_ids"), "Hotel Room ID", 100)
				if err != nil {
					return nil, err
				}
				p := map[string]any{
					"DateFrom": dateFrom,
					"DateTo":   dateTo,
					"Adults":   adults,
				}
				putList(p, "HotelId", hotelIDs)
				putList(p, "PackageId", packageIDs)
				putList(p, "HotelRoomId", roomIDs)
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "PackageCalendarAvail", "calendar entry")
			},
		},
		{
			Name:        "package_details_rq",
			Description: "Retrieve package descriptions, inclusions and categories",
			Path:        "/PackageDetailsRQ",
			Category:    "packages",
			Schema: map[string]any{
				"package_ids":    strArrayProp("Specific package identifiers to retrieve"),
				"hotel_ids":      strArrayProp("Hotel identifiers to get packages for"),
				"hotel_room_ids": strArrayProp("Room identifiers to get packages for"),
				"status":         enumProp("Package status filter", "enabled", "disabled", "all"),
				"language":       langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				packageIDs, err := cappedIDList(a.StringSlice("package_ids"), "Package ID", 100)
				if err != nil {
					return nil, err
				}
				hotelIDs, err := cappedIDList(a.StringSlice("hotel_ids"), "Hotel ID", 100)
				if err != nil {
					return nil, err
				}
				roomIDs, err := cappedIDList(a.StringSlice("hotel_room_ids"), "Hotel Room ID", 100)
				if err != nil {
					return nil, err
				}
				status := a.StringOr("status", "enabled")
				if status != "enabled" && status != "disabled" && status != "all" {
					return nil, invalidInput("Status must be 'enabled', 'disabled', or 'all'")
				}
				p := map[string]any{}
				putList(p, "PackageId", packageIDs)
				putList(p, "HotelId", hotelIDs)
				putList(p, "HotelRoomId", roomIDs)
				p["Status"] = status
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "PackageDetail", "package")
			},
		},
		{
			Name:        "package_extra_avail_rq",
			Description: "Check extra service availability for package bookings",
			Path:        "/PackageExtraAvailRQ",
			Category:    "packages",
			Required:    []string{"package_availability_ids"},
			Schema: map[string]any{
				"package_availability_ids": strArrayProp("Package availability identifiers to check extras for"),
				"basket_id":                strProp("Basket to evaluate the extras against"),
				"origin":                   strProp("Booking origin identifier"),
				"tracking": objProp("Tracking information for the booking origin", map[string]any{
					"origin": enumProp("Tracking origin", "googlehpa", "trivago", "trivagocpa", "tripadvisor"),
					"code":   strProp("Tracking code"),
					"locale": strProp("Tracking locale"),
				}),
				"client_location": objProp("Client location information", map[string]any{
					"country": strProp("Country code (ISO 3166-1)"),
					"ip":      strProp("Client IP address"),
				}),
				"client_device": enumProp("Client device type", "desktop", "mobile", "tablet"),
				"language":      langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				ids, err := packageAvailabilityIDs(a.StringSlice("package_availability_ids"))
				if err != nil {
					return nil, err
				}
				basketID := a.String("basket_id")
				if basketID != "" && strings.TrimSpace(basketID) == "" {
					return nil, invalidInput("Basket ID must be a non-empty string if provided")
				}
				origin := a.String("origin")
				if origin != "" && strings.TrimSpace(origin) == "" {
					return nil, invalidInput("Origin must be a non-empty string if provided")
				}
				p := map[string]any{"PackageAvailabilityId": ids}
				putStr(p, "BasketId", clean(strings.TrimSpace(basketID)))
				putStr(p, "Origin", clean(strings.TrimSpace(origin)))
				if tracking := a.Object("tracking"); len(tracking) > 0 {
					p["Tracking"] = tracking
				}
				if loc := a.Object("client_location"); len(loc) > 0 {
					p["ClientLocation"] = loc
				}
				p["ClientDevice"] = a.StringOr("client_device", "desktop")
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "PackageExtraAvail", "extra")
			},
		},
	}
}

// cappedIDList bounds the list size before running the per-item
// identifier checks.
func cappedIDList(values []string, label string, max int) ([]string, error) {
	if len(values) > max {
		return nil, invalidInput(fmt.Sprintf("%s: maximum %d items allowed", label, max))
	}
	return cleanIDList(values, label)
}

// packageDistributions validates the per-room stay blocks of a package
// search. Unlike room searches, each room carries its own date window.
func packageDistributions(rooms []map[string]any) ([]map[string]any, error) {
	if len(rooms) == 0 {
		return nil, invalidInput("Hotel room distribution is required")
	}
	out := make([]map[string]any, 0, len(rooms))
	for i, room := range rooms {
		rph, ok := intVal(room, "hotel_room_rph")
		if !ok || rph < 1 {
			return nil, invalidInput(fmt.Sprintf("Room %d: hotel_room_rph must be a positive integer", i+1))
		}
		dateFrom := strings.TrimSpace(str(room, "date_from"))
		dateTo := strings.TrimSpace(str(room, "date_to"))
		if dateFrom == "" || dateTo == "" {
			return nil, invalidInput(fmt.Sprintf("Room %d: date_from and date_to are required", i+1))
		}
		var err error
		if dateFrom, err = core.ParseDate("date_from", dateFrom); err != nil {
			return nil, prefixValidation(fmt.Sprintf("Room %d", i+1), err)
		}
		if dateTo, err = core.ParseDate("date_to", dateTo); err != nil {
			return nil, prefixValidation(fmt.Sprintf("Room %d", i+1), err)
		}
		guests := objList(room["guest"])
		if len(guests) == 0 {
			return nil, invalidInput(fmt.Sprintf("Room %d: at least one guest is required", i+1))
		}
		formatted := make([]map[string]any, 0, len(guests))
		for j, guest := range guests {
			age, ok := intVal(guest, "age")
			if !ok || age < 0 || age > 120 {
				return nil, invalidInput(fmt.Sprintf("Room %d, Guest %d: age must be between 0 and 120", i+1, j+1))
			}
			amount, ok := intVal(guest, "amount")
			if !ok || amount < 1 || amount > 10 {
				return nil, invalidInput(fmt.Sprintf("Room %d, Guest %d: amount must be between 1 and 10", i+1, j+1))
			}
			formatted = append(formatted, map[string]any{"Age": age, "Amount": amount})
		}
		out = append(out, map[string]any{
			"HotelRoomRPH": rph,
			"DateFrom":     dateFrom,
			"DateTo":       dateTo,
			"Guest":        formatted,
		})
	}
	return out, nil
}

var packageFilterLists = [][2]string{
	{"reservation_mode", "ReservationMode"},
	{"hotel_room_amenity_ids", "HotelRoomAmenityId"},
	{"hotel_amenity_ids", "HotelAmenityId"},
}

func packageAvailFilter(filters map[string]any) map[string]any {
	out := map[string]any{}
	for _, f := range packageFilterLists {
		if list, _ := filters[f[0]].([]any); len(list) > 0 {
			out[f[1]] = list
		}
	}
	if loc, _ := filters["location_data"].(map[string]any); len(loc) > 0 {
		out["LocationData"] = loc
	}
	return out
}

func packageAvailabilityIDs(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, invalidInput("Package availability IDs are required")
	}
	if len(ids) > 50 {
		return nil, invalidInput("Maximum 50 package availability IDs allowed")
	}
	out := make([]string, 0, len(ids))
	for i, id := range ids {
		if strings.TrimSpace(id) == "" {
			return nil, invalidInput(fmt.Sprintf("Package availability ID %d: must be a non-empty string", i+1))
		}
		s := clean(id)
		if s == "" {
			return nil, invalidInput(fmt.Sprintf("Package availability ID %d: invalid format after sanitization", i+1))
		}
		if len(s) > 100 {
			return nil, invalidInput(fmt.Sprintf("Package availability ID %d: maximum 100 characters allowed", i+1))
		}
		out = append(out, s)
	}
	return out, nil
}
