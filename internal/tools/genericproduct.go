package tools

import (
	"fmt"

	"github.com/bookhub/bookhub/internal/core"
	"github.com/bookhub/bookhub/internal/neobookings"
)

func genericProductTools() []*Tool {
	return []*Tool{
		{
			Name:        "generic_product_avail_rq",
			Description: "Search generic product availability by distribution, location and filters",
			Path:        "/GenericProductAvailRQ",
			Category:    "genericproduct",
			Required:    []string{"product_distributions"},
			Schema: map[string]any{
				"countries":        strArrayProp("ISO 3166-1 country codes to filter by"),
				"zones":            strArrayProp("Zone codes to filter by"),
				"hotel_ids":        strArrayProp("Hotel identifiers to search in"),
				"hotel_room_ids":   strArrayProp("Hotel room identifiers to search in"),
				"hotel_types":      strArrayProp("Hotel types to filter by"),
				"hotel_categories": strArrayProp("Hotel categories to filter by"),
				"product_distributions": arrayProp("Product distribution criteria", objItem(map[string]any{
					"product_rph":  intProp("Reference number for the product"),
					"date_from":    dateProp("Start date"),
					"date_to":      dateProp("End date"),
					"specific_day": dateProp("Specific day, overrides date_from and date_to"),
					"guests":       guestArrayProp(),
				}, "product_rph", "guests")),
				"product_types":        strArrayProp("Product types: accommodation, simpleproduct, extraproduct, combinedproduct"),
				"product_methods":      strArrayProp("Reservation methods: withdates, undated"),
				"reservation_modes":    strArrayProp("Reservation modes: room, package, product"),
				"result_type":          enumProp("Pricing result type", "besthotelprice", "liveprice"),
				"order_by":             enumProp("Field to sort by", "id", "hotelid", "roomid", "price", "quantity", "location", "order"),
				"order_type":           enumProp("Sort direction", "asc", "desc"),
				"page":                 intProp("Page number"),
				"num_results":          intProp("Results per page"),
				"show_hotel_details":   boolProp("Include hotel basic information"),
				"show_room_details":    boolProp("Include room basic information"),
				"show_extra_details":   boolProp("Include extra basic information"),
				"show_not_available":   boolProp("Include products that are not available"),
				"show_product_details": boolProp("Include detailed product information"),
				"promo_code":           strProp("Promotional code for special pricing"),
				"rewards":              boolProp("Include rewards program pricing"),
				"origin":               strProp("Origin of the reservation"),
				"client_country":       strProp("Client country code"),
				"client_ip":            strProp("Client IP address"),
				"client_device":        enumProp("Client device type", "desktop", "mobile", "tablet"),
				"language":             langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				distributions, err := formatProductDistributions(a.ObjectSlice("product_distributions"))
				if err != nil {
					return nil, err
				}
				p := map[string]any{
					"GenericProductDistribution":        distributions,
					"ShowHotelBasicDetail":              a.BoolOr("show_hotel_details", true),
					"ShowHotelRoomBasicDetail":          a.BoolOr("show_room_details", true),
					"ShowHotelRoomExtraBasicDetail":     a.Bool("show_extra_details"),
					"ShowGenericProductNotAvailability": a.Bool("show_not_available"),
				}
				countries, err := upperCountryCodes(a.StringSlice("countries"))
				if err != nil {
					return nil, err
				}
				putList(p, "Country", countries)
				putList(p, "Zone", cleanList(a.StringSlice("zones")))
				putList(p, "HotelId", cleanList(a.StringSlice("hotel_ids")))
				putList(p, "HotelRoomId", a.StringSlice("hotel_room_ids"))
				putList(p, "HotelType", a.StringSlice("hotel_types"))
				putList(p, "HotelCategory", a.StringSlice("hotel_categories"))
				if v := a.StringOr("result_type", "liveprice"); v != "liveprice" {
					p["ResultType"] = v
				}
				filter := map[string]any{}
				putList(filter, "GenericProductType", a.StringSlice("product_types"))
				putList(filter, "GenericProductMethod", a.StringSlice("product_methods"))
				putList(filter, "ReservationMode", a.StringSlice("reservation_modes"))
				putObj(p, "GenericProductFilterBy", filter)
				if v := a.StringOr("order_by", "price"); v != "price" {
					p["OrderBy"] = v
				}
				if v := a.StringOr("order_type", "asc"); v != "asc" {
					p["OrderType"] = v
				}
				if v := a.IntOr("page", 1); v > 1 {
					p["Page"] = v
				}
				if v := a.IntOr("num_results", 25); v != 25 {
					p["NumResults"] = v
				}
				putTrue(p, "ShowGenericProductDetail", a.BoolOr("show_product_details", true))
				putStr(p, "PromoCode", clean(a.String("promo_code")))
				putTrue(p, "Rewards", a.Bool("rewards"))
				putStr(p, "Origin", clean(a.String("origin")))
				putObj(p, "ClientLocation", clientLocationFromArgs(a))
				putStr(p, "ClientDevice", a.String("client_device"))
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "GenericProductAvail", "product option")
			},
		},
		{
			Name:        "generic_product_details_rq",
			Description: "Retrieve configuration details of generic products",
			Path:        "/GenericProductDetailsRQ",
			Category:    "genericproduct",
			Schema: map[string]any{
				"product_ids":    strArrayProp("Generic product identifiers"),
				"hotel_ids":      strArrayProp("Hotel identifiers to filter by"),
				"hotel_room_ids": strArrayProp("Hotel room identifiers to filter by"),
				"status":         enumProp("Product status filter", "enabled", "disabled", "all"),
				"language":       langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				p := map[string]any{}
				putList(p, "GenericProductId", cleanList(a.StringSlice("product_ids")))
				putList(p, "HotelId", cleanList(a.StringSlice("hotel_ids")))
				putList(p, "HotelRoomId", cleanList(a.StringSlice("hotel_room_ids")))
				p["Status"] = a.StringOr("status", "enabled")
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "GenericProductDetail", "product")
			},
		},
		{
			Name:        "generic_product_extra_avail_rq",
			Description: "Search extras available for generic product availabilities",
			Path:        "/GenericProductExtraAvailRQ",
			Category:    "genericproduct",
			Required:    []string{"product_availability_ids"},
			Schema: map[string]any{
				"product_availability_ids": strArrayProp("Generic product availability identifiers"),
				"basket_id":                strProp("Basket identifier for pricing context"),
				"origin":                   strProp("Origin of the reservation"),
				"client_country":           strProp("Client country code"),
				"client_ip":                strProp("Client IP address"),
				"client_device":            enumProp("Client device type", "desktop", "mobile", "tablet"),
				"language":                 langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				ids, err := reqStrList(a, "product_availability_ids")
				if err != nil {
					return nil, err
				}
				p := map[string]any{"GenericProductAvailabilityId": ids}
				putStr(p, "BasketId", clean(a.String("basket_id")))
				putStr(p, "Origin", clean(a.String("origin")))
				putObj(p, "ClientLocation", clientLocationFromArgs(a))
				putStr(p, "ClientDevice", a.String("client_device"))
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "GenericProductExtraAvail", "extra")
			},
		},
	}
}

// formatProductDistributions shapes the GenericProductDistribution block.
// A specific day wins over a date range.
func formatProductDistributions(distributions []map[string]any) ([]map[string]any, error) {
	if len(distributions) == 0 {
		return nil, neobookings.NewValidationError(neobookings.CodeInvalidInput,
			"product_distributions must contain at least one distribution", nil)
	}
	out := make([]map[string]any, 0, len(distributions))
	for i, dist := range distributions {
		prefix := fmt.Sprintf("distribution %d", i+1)
		rph, ok := intVal(dist, "product_rph")
		if !ok || rph < 1 {
			return nil, neobookings.NewValidationError(neobookings.CodeInvalidInput,
				prefix+": product_rph must be a positive integer", nil)
		}
		formatted := map[string]any{"GenericProductRPH": rph}
		if day := str(dist, "specific_day"); day != "" {
			parsed, err := core.ParseDate("specific_day", day)
			if err != nil {
				return nil, err
			}
			formatted["Day"] = parsed
		} else {
			if from := str(dist, "date_from"); from != "" {
				parsed, err := core.ParseDate("date_from", from)
				if err != nil {
					return nil, err
				}
				formatted["DateFrom"] = parsed
			}
			if to := str(dist, "date_to"); to != "" {
				parsed, err := core.ParseDate("date_to", to)
				if err != nil {
					return nil, err
				}
				formatted["DateTo"] = parsed
			}
		}
		guests, err := formatGuests(prefix, objList(dist["guests"]))
		if err != nil {
			return nil, err
		}
		formatted["Guest"] = guests
		out = append(out, formatted)
	}
	return out, nil
}
