package tools

import (
	"fmt"

	"github.com/bookhub/bookhub/internal/neobookings"
)

// Helpers for the one-line summaries tools attach to successful replies.
// All accessors are nil-safe; a missing key simply contributes nothing.

func bodyList(reply *neobookings.Reply, key string) []any {
	if reply == nil || reply.Body == nil {
		return nil
	}
	list, _ := reply.Body[key].([]any)
	return list
}

func bodyString(reply *neobookings.Reply, key string) string {
	if reply == nil || reply.Body == nil {
		return ""
	}
	s, _ := reply.Body[key].(string)
	return s
}

func bodyObject(reply *neobookings.Reply, key string) map[string]any {
	if reply == nil || reply.Body == nil {
		return nil
	}
	m, _ := reply.Body[key].(map[string]any)
	return m
}

func bodyInt(reply *neobookings.Reply, key string) (int, bool) {
	if reply == nil || reply.Body == nil {
		return 0, false
	}
	n, ok := reply.Body[key].(float64)
	return int(n), ok
}

// countSummary renders "Found N <noun>(s)" plus pagination when the reply
// carries CurrentPage/TotalPages/TotalRecords. noun must pluralize with a
// plain trailing s.
func countSummary(reply *neobookings.Reply, listKey, noun string) string {
	n := len(bodyList(reply, listKey))
	text := fmt.Sprintf("Found %d %s", n, pluralize(noun, n))
	if page, ok := bodyInt(reply, "CurrentPage"); ok {
		if pages, ok := bodyInt(reply, "TotalPages"); ok {
			text += fmt.Sprintf(" (page %d of %d", page, pages)
			if records, ok := bodyInt(reply, "TotalRecords"); ok {
				text += fmt.Sprintf(", %d total", records)
			}
			text += ")"
		}
	}
	return text
}

// idSummary renders "<label> <id>" when the reply carries the id, falling
// back to the bare label.
func idSummary(reply *neobookings.Reply, label, idKey string) string {
	if id := bodyString(reply, idKey); id != "" {
		return label + " " + id
	}
	return label
}

func pluralize(noun string, n int) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
