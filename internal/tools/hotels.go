package tools

import (
	"github.com/bookhub/bookhub/internal/core"
	"github.com/bookhub/bookhub/internal/neobookings"
)

func hotelDetailTools() []*Tool {
	return []*Tool{
		{
			Name:        "hotel_search_rq",
			Description: "Search hotels by name, location and category",
			Path:        "/HotelSearchRQ",
			Category:    "hotelinventory",
			Schema: map[string]any{
				"hotel_names":      strArrayProp("Hotel names to search for, partial matches allowed"),
				"countries":        strArrayProp("ISO 3166-1 country codes to filter by"),
				"zones":            strArrayProp("Zone codes to filter by"),
				"hotel_categories": strArrayProp("Minimum hotel category levels to filter by"),
				"page":             intProp("Page number"),
				"num_results":      intProp("Results per page"),
				"language":         langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				p := map[string]any{}
				putList(p, "HotelName", cleanList(a.StringSlice("hotel_names")))
				putList(p, "Country", cleanList(a.StringSlice("countries")))
				putList(p, "Zone", cleanList(a.StringSlice("zones")))
				putList(p, "HotelCategory", cleanList(a.StringSlice("hotel_categories")))
				if v := a.IntOr("page", 1); v > 1 {
					p["Page"] = v
				}
				if v := a.IntOr("num_results", 25); v != 25 {
					p["NumResults"] = v
				}
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "HotelBasicDetail", "hotel")
			},
		},
		{
			Name:        "hotel_details_rq",
			Description: "Retrieve full configuration details for specific hotels",
			Path:        "/HotelDetailsRQ",
			Category:    "hotelinventory",
			Required:    []string{"hotel_ids"},
			Schema: map[string]any{
				"hotel_ids": strArrayProp("Hotel identifiers to get details for"),
				"language":  langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				ids, err := reqStrList(a, "hotel_ids")
				if err != nil {
					return nil, err
				}
				return map[string]any{"HotelId": ids}, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "HotelDetail", "hotel")
			},
		},
		{
			Name:        "hotel_info_list_details_rq",
			Description: "List hotels with their rooms, rates, boards, packages and products",
			Path:        "/HotelInfoListDetailsRQ",
			Category:    "hotelinventory",
			Schema: map[string]any{
				"hotel_ids":     strArrayProp("Hotel identifiers to filter by"),
				"show_hidden":   boolProp("Include hidden items in the results"),
				"show_disabled": boolProp("Include disabled items in the results"),
				"language":      langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				p := map[string]any{
					"ShowHidden":   a.Bool("show_hidden"),
					"ShowDisabled": a.Bool("show_disabled"),
				}
				putList(p, "HotelId", cleanList(a.StringSlice("hotel_ids")))
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "HotelInfoListDetail", "hotel")
			},
		},
		{
			Name:        "chain_info_list_details_rq",
			Description: "Retrieve hotel chains and their associated hotels",
			Path:        "/ChainInfoListDetailsRQ",
			Category:    "hotelinventory",
			Schema: map[string]any{
				"language": langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				return map[string]any{}, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "ChainInfoListDetail", "chain")
			},
		},
		{
			Name:        "hotel_room_details_rq",
			Description: "Retrieve configuration details for hotel rooms",
			Path:        "/HotelRoomDetailsRQ",
			Category:    "hotelinventory",
			Schema: map[string]any{
				"hotel_ids": strArrayProp("Hotel identifiers to get room details for"),
				"room_ids":  strArrayProp("Room identifiers to get details for"),
				"language":  langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				p := map[string]any{}
				putList(p, "HotelId", cleanList(a.StringSlice("hotel_ids")))
				putList(p, "HotelRoomId", cleanList(a.StringSlice("room_ids")))
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "HotelRoomDetail", "room")
			},
		},
		{
			Name:        "hotel_board_details_rq",
			Description: "Retrieve board types (meal plans) configured for hotels",
			Path:        "/HotelBoardDetailsRQ",
			Category:    "hotelinventory",
			Schema: map[string]any{
				"hotel_ids": strArrayProp("Hotel identifiers to filter by"),
				"board_ids": strArrayProp("Board identifiers to filter by"),
				"language":  langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				// FilterBy ships even when empty.
				p := map[string]any{"FilterBy": map[string]any{}}
				putList(p, "HotelId", cleanList(a.StringSlice("hotel_ids")))
				putList(p, "BoardId", cleanList(a.StringSlice("board_ids")))
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "HotelBoardDetail", "board")
			},
		},
		{
			Name:        "hotel_offer_details_rq",
			Description: "Retrieve hotel offers, promotions and special deals",
			Path:        "/HotelOfferDetailsRQ",
			Category:    "hotelinventory",
			Schema: map[string]any{
				"hotel_ids": strArrayProp("Hotel identifiers to get offers for"),
				"offer_ids": strArrayProp("Specific offer identifiers to retrieve"),
				"filters": objProp("Additional filtering options", map[string]any{
					"promo_codes":         strArrayProp("Promotional codes to filter by"),
					"exclude_offer_types": strArrayProp("Offer types to exclude: promocode, callout, notice, supplement, discount"),
					"client_location": objProp("Client location", map[string]any{
						"country": strProp("Client country code"),
						"ip":      strProp("Client IP address"),
					}),
					"client_device": enumProp("Client device type", "desktop", "mobile", "tablet"),
				}),
				"language": langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				p := map[string]any{}
				putList(p, "HotelId", cleanList(a.StringSlice("hotel_ids")))
				putList(p, "OfferId", cleanList(a.StringSlice("offer_ids")))
				putObj(p, "FilterBy", offerFilter(a.Object("filters")))
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "HotelOfferDetail", "offer")
			},
		},
		{
			Name:        "hotel_rate_details_rq",
			Description: "Retrieve hotel rates and pricing structures",
			Path:        "/HotelRateDetailsRQ",
			Category:    "hotelinventory",
			Schema: map[string]any{
				"hotel_ids": strArrayProp("Hotel identifiers to get rates for"),
				"rate_ids":  strArrayProp("Specific rate identifiers to retrieve"),
				"filters": objProp("Additional filtering options", map[string]any{
					"promo_codes": strArrayProp("Promotional codes to filter by"),
				}),
				"language": langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				p := map[string]any{}
				putList(p, "HotelId", cleanList(a.StringSlice("hotel_ids")))
				putList(p, "RateId", cleanList(a.StringSlice("rate_ids")))
				filter := map[string]any{}
				putList(filter, "PromoCode", cleanList(strList(a.Object("filters"), "promo_codes")))
				putObj(p, "FilterBy", filter)
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "HotelRateDetail", "rate")
			},
		},
		{
			Name:        "hotel_room_extra_details_rq",
			Description: "Retrieve configuration details for hotel room extras",
			Path:        "/HotelRoomExtraDetailsRQ",
			Category:    "hotelinventory",
			Schema: map[string]any{
				"hotel_ids": strArrayProp("Hotel identifiers to get room extras for"),
				"room_ids":  strArrayProp("Room identifiers to get extras for"),
				"extra_ids": strArrayProp("Extra identifiers to get details for"),
				"language":  langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				p := map[string]any{}
				putList(p, "HotelId", cleanList(a.StringSlice("hotel_ids")))
				putList(p, "HotelRoomId", cleanList(a.StringSlice("room_ids")))
				putList(p, "HotelRoomExtraId", cleanList(a.StringSlice("extra_ids")))
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "HotelRoomExtraDetail", "room extra")
			},
		},
	}
}

// validOfferTypes are the offer kinds the exclusion filter understands.
var validOfferTypes = map[string]bool{
	"promocode":  true,
	"callout":    true,
	"notice":     true,
	"supplement": true,
	"discount":   true,
}

func offerFilter(filters map[string]any) map[string]any {
	out := map[string]any{}
	putList(out, "PromoCode", cleanList(strList(filters, "promo_codes")))
	var excluded []string
	for _, offerType := range strList(filters, "exclude_offer_types") {
		if validOfferTypes[offerType] {
			excluded = append(excluded, offerType)
		}
	}
	putList(out, "ExcludeOfferType", excluded)
	if location, _ := filters["client_location"].(map[string]any); len(location) > 0 {
		loc := map[string]any{}
		putStr(loc, "Country", clean(str(location, "country")))
		putStr(loc, "Ip", clean(str(location, "ip")))
		putObj(out, "ClientLocation", loc)
	}
	if device := str(filters, "client_device"); device == "desktop" || device == "mobile" || device == "tablet" {
		out["ClientDevice"] = device
	}
	return out
}
