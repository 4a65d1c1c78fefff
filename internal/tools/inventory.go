package tools

import (
	"errors"
	"fmt"
	"time"

	"github.com/bookhub/bookhub/internal/core"
	"github.com/bookhub/bookhub/internal/neobookings"
)

// maxBatchUpdates caps one inventory or price request.
const maxBatchUpdates = 100

func hotelInventoryTools() []*Tool {
	return []*Tool{
		{
			Name:        "hotel_inventory_read_rq",
			Description: "Read room inventory, quotas and restrictions for a date range",
			Path:        "/HotelInventoryReadRQ",
			Category:    "hotelinventory",
			Required:    []string{"date_from", "date_to"},
			Schema: map[string]any{
				"hotel_ids": strArrayProp("Hotel identifiers to get inventory for, all accessible hotels when omitted"),
				"date_from": dateProp("Start date of the inventory period"),
				"date_to":   dateProp("End date of the inventory period"),
				"language":  langProp(),
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
				if err := validateUpdateWindow(dateFrom, dateTo, ""); err != nil {
					return nil, err
				}
				p := map[string]any{"DateFrom": dateFrom, "DateTo": dateTo}
				putList(p, "HotelId", cleanList(a.StringSlice("hotel_ids")))
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "HotelInventory", "inventory record")
			},
		},
		{
			Name:        "hotel_inventory_update_rq",
			Description: "Update room availability, quotas and stay restrictions",
			Path:        "/HotelInventoryUpdateRQ",
			Category:    "hotelinventory",
			Required:    []string{"inventory_updates"},
			Schema: map[string]any{
				"inventory_updates": arrayProp("Inventory update operations to perform", objItem(map[string]any{
					"hotel_id":     strProp("Hotel identifier"),
					"room_id":      strProp("Room identifier"),
					"date_from":    dateProp("Start date of the update period"),
					"date_to":      dateProp("End date of the update period"),
					"partner":      partnerProp(),
					"availability": intProp("Room availability count"),
					"restrictions": objProp("Stay and booking restrictions", map[string]any{
						"release":             intProp("Advance booking requirement in days"),
						"min_stay":            intProp("Minimum stay in nights"),
						"max_stay":            intProp("Maximum stay in nights"),
						"closed":              boolProp("Stop sale"),
						"closed_on_arrival":   boolProp("Arrivals closed"),
						"closed_on_departure": boolProp("Departures closed"),
					}),
					"rate_id":  strProp("Specific rate identifier"),
					"board_id": strProp("Specific board identifier"),
				}, "hotel_id", "room_id", "date_from", "date_to", "partner")),
				"language": langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				updates, err := batchUpdates(a, "inventory_updates", "inventory update")
				if err != nil {
					return nil, err
				}
				formatted := make([]map[string]any, 0, len(updates))
				for i, update := range updates {
					item, err := formatInventoryUpdate(update)
					if err != nil {
						return nil, prefixValidation(fmt.Sprintf("Inventory update #%d", i+1), err)
					}
					formatted = append(formatted, item)
				}
				return map[string]any{"InventoryUpdate": formatted}, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return successSummary(reply, "Inventory update")
			},
		},
		{
			Name:        "hotel_price_update_rq",
			Description: "Update room prices for date ranges and occupancy scenarios",
			Path:        "/HotelPriceUpdateRQ",
			Category:    "hotelinventory",
			Required:    []string{"price_updates"},
			Schema: map[string]any{
				"price_updates": arrayProp("Price update operations to perform", objItem(map[string]any{
					"hotel_id":     strProp("Hotel identifier"),
					"room_id":      strProp("Room identifier"),
					"date_from":    dateProp("Start date of the update period"),
					"date_to":      dateProp("End date of the update period"),
					"mode":         enumProp("Pricing mode", "pax", "occupancy", "accommodation"),
					"partner":      partnerProp(),
					"pricing_data": objProp("Pricing information for the selected mode", map[string]any{}),
					"rate_id":      strProp("Specific rate identifier"),
					"board_id":     strProp("Specific board identifier"),
				}, "hotel_id", "room_id", "date_from", "date_to", "mode", "partner", "pricing_data")),
				"language": langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				updates, err := batchUpdates(a, "price_updates", "price update")
				if err != nil {
					return nil, err
				}
				formatted := make([]map[string]any, 0, len(updates))
				for i, update := range updates {
					item, err := formatPriceUpdate(update)
					if err != nil {
						return nil, prefixValidation(fmt.Sprintf("Price update #%d", i+1), err)
					}
					formatted = append(formatted, item)
				}
				return map[string]any{"PriceUpdate": formatted}, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return successSummary(reply, "Price update")
			},
		},
	}
}

func partnerProp() map[string]any {
	return objProp("Partner mapping configuration", map[string]any{
		"use_partner_mapping":  boolProp("Apply partner identifier mapping"),
		"partner_mapping_name": strProp("Partner mapping name to use"),
	})
}

func successSummary(reply *neobookings.Reply, label string) string {
	if reply != nil && reply.Body != nil && boolVal(reply.Body, "Success") {
		return label + " applied"
	}
	return label + " completed with warnings"
}

// batchUpdates rejects empty and oversized update lists up front.
func batchUpdates(a *core.Args, key, noun string) ([]map[string]any, error) {
	updates := a.ObjectSlice(key)
	if len(updates) == 0 {
		return nil, invalidInput(fmt.Sprintf("At least one %s is required", noun))
	}
	if len(updates) > maxBatchUpdates {
		return nil, invalidInput(fmt.Sprintf("Cannot process more than %d %ss at once", maxBatchUpdates, noun))
	}
	return updates, nil
}

// prefixValidation rewrites a validation error as "prefix: message" so
// batch items identify themselves. Other errors pass through untouched.
func prefixValidation(prefix string, err error) error {
	var verr *neobookings.ValidationError
	if errors.As(err, &verr) {
		return neobookings.NewValidationError(verr.Code, prefix+": "+verr.Message, verr.Details)
	}
	return err
}

// validateUpdateWindow enforces the ordering and one year cap shared by
// inventory reads and both update endpoints. Inputs already passed
// ParseDate, so ISO ordering is lexical.
func validateUpdateWindow(dateFrom, dateTo, scope string) error {
	if dateFrom >= dateTo {
		return invalidInput("date_from must be before date_to" + scope)
	}
	from, _ := time.Parse("2006-01-02", dateFrom)
	to, _ := time.Parse("2006-01-02", dateTo)
	if to.Sub(from) > 365*24*time.Hour {
		return invalidInput("Date range cannot exceed 365 days" + scope)
	}
	return nil
}

// updateCommon validates the fields shared by inventory and price update
// items and returns the wire object plus the error scope suffix.
func updateCommon(update map[string]any) (map[string]any, string, error) {
	hotelID := clean(str(update, "hotel_id"))
	roomID := clean(str(update, "room_id"))
	if hotelID == "" {
		return nil, "", invalidInput("hotel_id cannot be empty")
	}
	if roomID == "" {
		return nil, "", invalidInput("room_id cannot be empty")
	}
	dateFrom, err := core.ParseDate("date_from", str(update, "date_from"))
	if err != nil {
		return nil, "", err
	}
	dateTo, err := core.ParseDate("date_to", str(update, "date_to"))
	if err != nil {
		return nil, "", err
	}
	scope := fmt.Sprintf(" for hotel %s room %s", hotelID, roomID)
	if err := validateUpdateWindow(dateFrom, dateTo, scope); err != nil {
		return nil, "", err
	}
	item := map[string]any{
		"HotelId":  hotelID,
		"RoomId":   roomID,
		"DateFrom": dateFrom,
		"DateTo":   dateTo,
	}
	return item, scope, nil
}

func partnerBlock(update map[string]any) (map[string]any, error) {
	partner, ok := update["partner"].(map[string]any)
	if !ok {
		return nil, invalidInput("partner must be an object")
	}
	if !has(partner, "use_partner_mapping") {
		return nil, invalidInput("partner.use_partner_mapping is required")
	}
	out := map[string]any{"UsePartnerMapping": partner["use_partner_mapping"]}
	putStr(out, "PartnerMappingName", clean(str(partner, "partner_mapping_name")))
	return out, nil
}

// boundedInt validates an optional integer field with a lower bound,
// using label in the error message. ok is false when the field is absent.
func boundedInt(m map[string]any, key, label string, min int, scope string) (int, bool, error) {
	if !has(m, key) {
		return 0, false, nil
	}
	n, ok := intVal(m, key)
	if !ok || n < min {
		bound := "a positive integer"
		if min == 0 {
			bound = "a non-negative integer"
		}
		return 0, false, invalidInput(fmt.Sprintf("%s must be %s%s", label, bound, scope))
	}
	return n, true, nil
}

func formatInventoryUpdate(update map[string]any) (map[string]any, error) {
	for _, field := range []string{"hotel_id", "room_id", "date_from", "date_to", "partner"} {
		if _, ok := update[field]; !ok {
			return nil, invalidInput("Missing required field: " + field)
		}
	}
	item, scope, err := updateCommon(update)
	if err != nil {
		return nil, err
	}
	partner, err := partnerBlock(update)
	if err != nil {
		return nil, err
	}
	item["Partner"] = partner
	avail, ok, err := boundedInt(update, "availability", "availability", 0, scope)
	if err != nil {
		return nil, err
	}
	if ok {
		item["Avail"] = avail
	}
	if restrictions, _ := update["restrictions"].(map[string]any); len(restrictions) > 0 {
		restriction := map[string]any{}
		for _, f := range []struct {
			key string
			min int
		}{
			{"release", 0},
			{"min_stay", 1},
			{"max_stay", 1},
		} {
			n, ok, err := boundedInt(restrictions, f.key, "restrictions."+f.key, f.min, scope)
			if err != nil {
				return nil, err
			}
			if ok {
				restriction[restrictionWireNames[f.key]] = n
			}
		}
		for _, key := range []string{"closed", "closed_on_arrival", "closed_on_departure"} {
			if has(restrictions, key) {
				restriction[restrictionWireNames[key]] = boolVal(restrictions, key)
			}
		}
		putObj(item, "Restriction", restriction)
	}
	putStr(item, "RateId", clean(str(update, "rate_id")))
	putStr(item, "BoardId", clean(str(update, "board_id")))
	return item, nil
}

var restrictionWireNames = map[string]string{
	"release":             "Release",
	"min_stay":            "MinStay",
	"max_stay":            "MaxStay",
	"closed":              "Closed",
	"closed_on_arrival":   "ClosedOnArrival",
	"closed_on_departure": "ClosedOnDeparture",
}

func formatPriceUpdate(update map[string]any) (map[string]any, error) {
	for _, field := range []string{"hotel_id", "room_id", "date_from", "date_to", "mode", "partner", "pricing_data"} {
		if _, ok := update[field]; !ok {
			return nil, invalidInput("Missing required field: " + field)
		}
	}
	item, scope, err := updateCommon(update)
	if err != nil {
		return nil, err
	}
	mode := str(update, "mode")
	if mode != "pax" && mode != "occupancy" && mode != "accommodation" {
		return nil, invalidInput(fmt.Sprintf("Invalid mode: %s. Must be 'pax', 'occupancy', or 'accommodation'", mode))
	}
	item["Mode"] = mode
	partner, err := partnerBlock(update)
	if err != nil {
		return nil, err
	}
	item["Partner"] = partner
	pricing, ok := update["pricing_data"].(map[string]any)
	if !ok {
		return nil, invalidInput("pricing_data must be an object")
	}
	switch mode {
	case "occupancy":
		err = occupancyPricing(pricing, item, scope)
	case "pax":
		err = paxPricing(pricing, item, scope)
	case "accommodation":
		err = accommodationPricing(pricing, item, scope)
	}
	if err != nil {
		return nil, err
	}
	putStr(item, "RateId", clean(str(update, "rate_id")))
	putStr(item, "BoardId", clean(str(update, "board_id")))
	return item, nil
}

func occupancyPricing(pricing, item map[string]any, scope string) error {
	if !has(pricing, "base_price") {
		return invalidInput("base_price is required for occupancy mode" + scope)
	}
	base, ok := numVal(pricing, "base_price")
	if !ok || base < 0 {
		return invalidInput("base_price must be a non-negative number" + scope)
	}
	occupancy := map[string]any{"BasePrice": base}
	for _, f := range [][2]string{
		{"extra_adults_price", "ExtraAdultsPrice"},
		{"extra_child_price", "ExtraChildPrice"},
	} {
		prices, err := priceList(pricing, f[0], scope)
		if err != nil {
			return err
		}
		if len(prices) > 0 {
			occupancy[f[1]] = prices
		}
	}
	item["Occupancy"] = occupancy
	return nil
}

// priceList validates an optional list of non-negative prices.
func priceList(pricing map[string]any, key, scope string) ([]float64, error) {
	raw, present := pricing[key]
	if !present || raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, invalidInput(fmt.Sprintf("%s must be a list%s", key, scope))
	}
	out := make([]float64, 0, len(items))
	for i, item := range items {
		price, ok := toNum(item)
		if !ok || price < 0 {
			return nil, invalidInput(fmt.Sprintf("%s[%d] must be a non-negative number%s", key, i, scope))
		}
		out = append(out, price)
	}
	return out, nil
}

func paxPricing(pricing, item map[string]any, scope string) error {
	if !has(pricing, "pax_configurations") {
		return invalidInput("pax_configurations is required for pax mode" + scope)
	}
	configs, ok := pricing["pax_configurations"].([]any)
	if !ok || len(configs) == 0 {
		return invalidInput("pax_configurations must be a non-empty list" + scope)
	}
	pax := make([]map[string]any, 0, len(configs))
	for i, raw := range configs {
		config, ok := raw.(map[string]any)
		if !ok {
			return invalidInput(fmt.Sprintf("pax_configurations[%d] must be an object%s", i, scope))
		}
		if !has(config, "adults") || !has(config, "price") {
			return invalidInput(fmt.Sprintf("pax_configurations[%d] must contain 'adults' and 'price'%s", i, scope))
		}
		adults, ok := intVal(config, "adults")
		if !ok || adults < 1 {
			return invalidInput(fmt.Sprintf("pax_configurations[%d].adults must be a positive integer%s", i, scope))
		}
		children, err := paxCount(config, "children", i, scope)
		if err != nil {
			return err
		}
		babies, err := paxCount(config, "babies", i, scope)
		if err != nil {
			return err
		}
		price, ok := numVal(config, "price")
		if !ok || price < 0 {
			return invalidInput(fmt.Sprintf("pax_configurations[%d].price must be a non-negative number%s", i, scope))
		}
		entry := map[string]any{"Adult": adults, "Price": price}
		if children > 0 {
			entry["Child"] = children
		}
		if babies > 0 {
			entry["Baby"] = babies
		}
		pax = append(pax, entry)
	}
	item["Pax"] = pax
	return nil
}

// paxCount reads an optional occupant count that defaults to zero.
func paxCount(config map[string]any, key string, index int, scope string) (int, error) {
	if !has(config, key) {
		return 0, nil
	}
	n, ok := intVal(config, key)
	if !ok || n < 0 {
		return 0, invalidInput(fmt.Sprintf("pax_configurations[%d].%s must be a non-negative integer%s", index, key, scope))
	}
	return n, nil
}

func accommodationPricing(pricing, item map[string]any, scope string) error {
	if !has(pricing, "accommodation_price") {
		return invalidInput("accommodation_price is required for accommodation mode" + scope)
	}
	price, ok := numVal(pricing, "accommodation_price")
	if !ok || price < 0 {
		return invalidInput("accommodation_price must be a non-negative number" + scope)
	}
	item["Accommodation"] = map[string]any{"Price": price}
	return nil
}
