package tools

import (
	"github.com/bookhub/bookhub/internal/core"
	"github.com/bookhub/bookhub/internal/neobookings"
)

func budgetTools() []*Tool {
	return []*Tool{
		{
			Name:        "budget_search_rq",
			Description: "Search budgets with filters, sorting and pagination",
			Path:        "/BudgetSearchRQ",
			Category:    "budget",
			Required:    []string{"order_by", "order_type"},
			Schema: map[string]any{
				"budget_ids": strArrayProp("Specific budget identifiers to search for"),
				"hotel_ids":  strArrayProp("Hotel identifiers to filter by"),
				"date_from":  dateProp("Start date for filtering"),
				"date_to":    dateProp("End date for filtering"),
				"date_by":    enumProp("Date field to filter by", "creationdate", "lastupdate"),
				"filter_by": objProp("Additional budget filters", map[string]any{
					"name":     strProp("Customer name"),
					"surname":  strProp("Customer surname"),
					"country":  strProp("Customer country"),
					"document": strProp("Customer document or passport"),
					"address":  strProp("Customer address"),
					"user":     strProp("User who created the budget"),
					"status":   strArrayProp("Budget status values: deleted, expired, booked, pending"),
					"client": objProp("Client contact filter", map[string]any{
						"email": strProp("Customer email"),
						"phone": objProp("Phone filter", map[string]any{
							"prefix": strProp("Phone prefix"),
							"number": strProp("Phone number"),
						}),
					}),
				}),
				"page":        intProp("Page number"),
				"num_results": intProp("Results per page"),
				"order_by":    enumProp("Field to order by", "id", "hotelid", "name", "price", "creationdate", "lastupdate", "arrivaldate", "departuredate", "status", "user"),
				"order_type":  enumProp("Sort direction", "asc", "desc"),
				"language":    langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				p := map[string]any{
					"OrderBy":   a.String("order_by"),
					"OrderType": a.String("order_type"),
				}
				putList(p, "BudgetId", cleanList(a.StringSlice("budget_ids")))
				putList(p, "HotelId", cleanList(a.StringSlice("hotel_ids")))
				dateFrom, dateTo, err := optionalDateWindow(a, "date_from", "date_to")
				if err != nil {
					return nil, err
				}
				putStr(p, "DateFrom", dateFrom)
				putStr(p, "DateTo", dateTo)
				p["DateBy"] = a.StringOr("date_by", "creationdate")
				p["Page"] = a.IntOr("page", 1)
				p["NumResults"] = a.IntOr("num_results", 10)
				if filter := a.Object("filter_by"); filter != nil {
					putObj(p, "FilterBy", formatBudgetFilter(filter))
				}
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "BudgetBasicDetail", "budget")
			},
		},
		{
			Name:        "budget_details_rq",
			Description: "Retrieve detailed information for one or more budgets",
			Path:        "/BudgetDetailsRQ",
			Category:    "budget",
			Required:    []string{"budget_ids"},
			Schema: map[string]any{
				"budget_ids": strArrayProp("Budget identifiers to retrieve"),
				"language":   langProp(),
			},
			Build:     buildBudgetIDList,
			Summarize: func(reply *neobookings.Reply) string { return "Budget details retrieved" },
		},
		{
			Name:        "budget_properties_update_rq",
			Description: "Update the sent and copied dates of a budget",
			Path:        "/BudgetPropertiesUpdateRQ",
			Category:    "budget",
			Required:    []string{"budget_id"},
			Schema: map[string]any{
				"budget_id":         strProp("Budget identifier"),
				"sent_date":         strProp("Date the budget was sent (YYYY-MM-DDTHH:MM:SS)"),
				"copied_date":       strProp("Date the budget was copied (YYYY-MM-DDTHH:MM:SS)"),
				"clear_sent_date":   boolProp("Clear the sent date"),
				"clear_copied_date": boolProp("Clear the copied date"),
				"language":          langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				budgetID, err := reqStr(a, "budget_id")
				if err != nil {
					return nil, err
				}
				sentDate, copiedDate := a.String("sent_date"), a.String("copied_date")
				clearSent, clearCopied := a.Bool("clear_sent_date"), a.Bool("clear_copied_date")
				if sentDate != "" {
					if sentDate, err = core.ParseDateTime("sent_date", sentDate); err != nil {
						return nil, err
					}
				}
				if copiedDate != "" {
					if copiedDate, err = core.ParseDateTime("copied_date", copiedDate); err != nil {
						return nil, err
					}
				}
				if sentDate != "" && clearSent {
					return nil, neobookings.NewValidationError(neobookings.CodeInvalidInput,
						"Cannot set sent_date and clear_sent_date at the same time", nil)
				}
				if copiedDate != "" && clearCopied {
					return nil, neobookings.NewValidationError(neobookings.CodeInvalidInput,
						"Cannot set copied_date and clear_copied_date at the same time", nil)
				}
				if sentDate == "" && copiedDate == "" && !clearSent && !clearCopied {
					return nil, neobookings.NewValidationError(neobookings.CodeInvalidInput,
						"At least one property update must be specified", nil)
				}
				p := map[string]any{"BudgetId": budgetID}
				putStr(p, "SentDate", sentDate)
				putStr(p, "CopiedDate", copiedDate)
				putTrue(p, "ClearSentDate", clearSent)
				putTrue(p, "ClearCopiedDate", clearCopied)
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string { return "Budget properties updated" },
		},
		{
			Name:        "budget_delete_rq",
			Description: "Delete one or more budgets",
			Path:        "/BudgetDeleteRQ",
			Category:    "budget",
			Required:    []string{"budget_ids"},
			Schema: map[string]any{
				"budget_ids": strArrayProp("Budget identifiers to delete"),
				"language":   langProp(),
			},
			Build:     buildBudgetIDList,
			Summarize: func(reply *neobookings.Reply) string { return "Budgets deleted" },
		},
	}
}

func buildBudgetIDList(a *core.Args) (map[string]any, error) {
	ids, err := reqStrList(a, "budget_ids")
	if err != nil {
		return nil, err
	}
	return map[string]any{"BudgetId": ids}, nil
}

var budgetFilterFields = [][2]string{
	{"name", "Name"},
	{"surname", "Surname"},
	{"country", "Country"},
	{"document", "Document"},
	{"address", "Address"},
	{"user", "User"},
}

func formatBudgetFilter(filter map[string]any) map[string]any {
	out := map[string]any{}
	for _, f := range budgetFilterFields {
		putStr(out, f[1], clean(str(filter, f[0])))
	}
	if status, ok := filter["status"]; ok {
		if list, ok := status.([]any); ok && len(list) > 0 {
			out["Status"] = list
		}
	}
	if client, _ := filter["client"].(map[string]any); len(client) > 0 {
		clientFilter := map[string]any{}
		putStr(clientFilter, "Email", clean(str(client, "email")))
		if phone, _ := client["phone"].(map[string]any); len(phone) > 0 {
			prefix, number := clean(str(phone, "prefix")), clean(str(phone, "number"))
			if prefix != "" && number != "" {
				clientFilter["Phone"] = map[string]any{"Prefix": prefix, "Number": number}
			}
		}
		putObj(out, "Client", clientFilter)
	}
	return out
}

// optionalDateWindow validates an optional from/to date pair. Either side
// may be absent; when both are present from must not be later than to.
func optionalDateWindow(a *core.Args, fromKey, toKey string) (string, string, error) {
	var dateFrom, dateTo string
	var err error
	if v := a.String(fromKey); v != "" {
		if dateFrom, err = core.ParseDate(fromKey, v); err != nil {
			return "", "", err
		}
	}
	if v := a.String(toKey); v != "" {
		if dateTo, err = core.ParseDate(toKey, v); err != nil {
			return "", "", err
		}
	}
	if dateFrom != "" && dateTo != "" && dateFrom > dateTo {
		return "", "", neobookings.NewValidationError(neobookings.CodeInvalidInput,
			fromKey+" cannot be later than "+toKey,
			map[string]any{fromKey: dateFrom, toKey: dateTo})
	}
	return dateFrom, dateTo, nil
}
