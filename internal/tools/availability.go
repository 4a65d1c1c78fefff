package tools

import (
	"fmt"

	"github.com/bookhub/bookhub/internal/core"
	"github.com/bookhub/bookhub/internal/neobookings"
)

func hotelAvailabilityTools() []*Tool {
	return []*Tool{
		{
			Name:        "hotel_room_avail_rq",
			Description: "Search hotel room availability for a stay and guest distribution",
			Path:        "/HotelRoomAvailRQ",
			Category:    "hotelinventory",
			Required:    []string{"date_from", "date_to", "guests"},
			Schema: map[string]any{
				"date_from": dateProp("Check-in date"),
				"date_to":   dateProp("Check-out date"),
				"guests": arrayProp("Guest distribution per room", objItem(map[string]any{
					"room_number": intProp("Room reference number"),
					"guests":      guestArrayProp(),
				}, "room_number", "guests")),
				"hotel_ids":    strArrayProp("Specific hotel identifiers to search"),
				"room_ids":     strArrayProp("Specific room identifiers to search"),
				"countries":    strArrayProp("ISO 3166-1 country codes to filter by"),
				"zones":        strArrayProp("Zone codes to filter by"),
				"show_details": boolProp("Include hotel and room basic information"),
				"result_type":  enumProp("Pricing result type", "besthotelprice", "liveprice"),
				"order_by":     enumProp("Field to sort by", "id", "hotelid", "roomid", "price", "quantity", "location", "order"),
				"order_type":   enumProp("Sort direction", "asc", "desc"),
				"page":         intProp("Page number"),
				"num_results":  intProp("Results per page"),
				"promo_code":   strProp("Promotional code for special pricing"),
				"rewards":      boolProp("Include rewards program pricing"),
				"language":     langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				dateFrom, err := core.ParseDate("date_from", a.String("date_from"))
				if err != nil {
					return nil, err
				}
				dateTo, err := core.ParseDate("date_to", a.String("date_to"))
				if err != nil {
					return nil, err
				}
				if err := core.ValidateDateRange("date_from", dateFrom, "date_to", dateTo); err != nil {
					return nil, err
				}
				distributions, err := formatRoomDistributions(a.ObjectSlice("guests"), dateFrom, dateTo)
				if err != nil {
					return nil, err
				}
				showDetails := a.BoolOr("show_details", true)
				p := map[string]any{
					"HotelRoomDistribution":        distributions,
					"ResultType":                   a.StringOr("result_type", "liveprice"),
					"OrderBy":                      a.StringOr("order_by", "price"),
					"OrderType":                    a.StringOr("order_type", "asc"),
					"Page":                         a.IntOr("page", 1),
					"NumResults":                   a.IntOr("num_results", 20),
					"ShowHotelBasicDetail":         showDetails,
					"ShowHotelRoomBasicDetail":     showDetails,
					"ShowHotelRoomNotAvailability": true,
				}
				putList(p, "Country", a.StringSlice("countries"))
				putList(p, "Zone", a.StringSlice("zones"))
				putList(p, "HotelId", a.StringSlice("hotel_ids"))
				putList(p, "HotelRoomId", a.StringSlice("room_ids"))
				putStr(p, "PromoCode", a.String("promo_code"))
				putTrue(p, "Rewards", a.Bool("rewards"))
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "HotelRoomDistribution", "room option")
			},
		},
		{
			Name:        "hotel_calendar_avail_rq",
			Description: "Retrieve day-by-day room availability for a date range",
			Path:        "/HotelCalendarAvailRQ",
			Category:    "hotelinventory",
			Required:    []string{"date_from", "date_to", "adults"},
			Schema: map[string]any{
				"date_from":     dateProp("Start date"),
				"date_to":       dateProp("End date"),
				"adults":        intProp("Number of adults for the search"),
				"hotel_ids":     strArrayProp("Hotel identifiers to filter by"),
				"room_ids":      strArrayProp("Room identifiers to filter by"),
				"calendar_type": enumProp("Calendar view type", "normal", "merge"),
				"language":      langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				dateFrom, err := core.ParseDate("date_from", a.String("date_from"))
				if err != nil {
					return nil, err
				}
				dateTo, err := core.ParseDate("date_to", a.String("date_to"))
				if err != nil {
					return nil, err
				}
				adults := a.Int("adults")
				if adults < 1 {
					return nil, invalidInput("adults must be a positive integer")
				}
				p := map[string]any{
					"DateFrom":     dateFrom,
					"DateTo":       dateTo,
					"Adults":       adults,
					"CalendarType": a.StringOr("calendar_type", "normal"),
					// Calendars only cover rooms on public sale.
					"FilterBy": map[string]any{"Visibility": []string{"visible"}},
				}
				putList(p, "HotelId", cleanList(a.StringSlice("hotel_ids")))
				putList(p, "HotelRoomId", cleanList(a.StringSlice("room_ids")))
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "HotelCalendarAvail", "calendar entry")
			},
		},
		{
			Name:        "hotel_room_extra_avail_rq",
			Description: "Retrieve extras and supplements available for room availabilities",
			Path:        "/HotelRoomExtraAvailRQ",
			Category:    "hotelinventory",
			Required:    []string{"room_availability_ids"},
			Schema: map[string]any{
				"room_availability_ids": strArrayProp("Room availability identifiers to get extras for"),
				"basket_id":             strProp("Basket identifier for pricing context"),
				"origin":                strProp("Origin of the reservation"),
				"client_location": objProp("Client location information", map[string]any{
					"country": strProp("Client country code"),
					"ip":      strProp("Client IP address"),
				}),
				"client_device": enumProp("Client device type", "desktop", "mobile", "tablet"),
				"language":      langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				ids, err := reqStrList(a, "room_availability_ids")
				if err != nil {
					return nil, err
				}
				p := map[string]any{
					"HotelRoomAvailabilityId": ids,
					"ClientDevice":            a.StringOr("client_device", "desktop"),
				}
				putStr(p, "BasketId", clean(a.String("basket_id")))
				putStr(p, "Origin", clean(a.String("origin")))
				if location := a.Object("client_location"); len(location) > 0 {
					loc := map[string]any{}
					putStr(loc, "Country", str(location, "country"))
					putStr(loc, "Ip", str(location, "ip"))
					putObj(p, "ClientLocation", loc)
				}
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "HotelRoomExtraAvail", "extra")
			},
		},
	}
}

// formatRoomDistributions shapes HotelRoomDistribution entries. The stay
// dates are shared by every room in the request.
func formatRoomDistributions(rooms []map[string]any, dateFrom, dateTo string) ([]map[string]any, error) {
	if len(rooms) == 0 {
		return nil, invalidInput("Guest information is required")
	}
	out := make([]map[string]any, 0, len(rooms))
	for i, room := range rooms {
		prefix := fmt.Sprintf("room %d", i+1)
		rph, ok := intVal(room, "room_number")
		if !ok || rph < 1 {
			return nil, invalidInput(prefix + ": room_number must be a positive integer")
		}
		guests, err := formatGuests(prefix, objList(room["guests"]))
		if err != nil {
			return nil, err
		}
		out = append(out, map[string]any{
			"HotelRoomRPH": rph,
			"DateFrom":     dateFrom,
			"DateTo":       dateTo,
			"Guest":        guests,
		})
	}
	return out, nil
}
