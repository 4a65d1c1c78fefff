package tools

import (
	"github.com/bookhub/bookhub/internal/core"
	"github.com/bookhub/bookhub/internal/neobookings"
)

func geosearchTools() []*Tool {
	return []*Tool{
		{
			Name:        "zone_search_rq",
			Description: "List the geographic zones configured in the reservation system",
			Path:        "/ZoneSearchRQ",
			Category:    "geosearch",
			Schema: map[string]any{
				"order_by":   enumProp("Sort order", "order", "alphabetical"),
				"order_type": enumProp("Sort direction", "asc", "desc"),
				"language":   langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				return map[string]any{
					"OrderBy":   a.StringOr("order_by", "order"),
					"OrderType": a.StringOr("order_type", "asc"),
				}, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "ZoneDetail", "zone")
			},
		},
	}
}
