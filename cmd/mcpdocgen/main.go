// Command mcpdocgen renders the tool catalog as Markdown for docs/TOOLS.md.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/bookhub/bookhub/internal/tools"
)

func main() {
	registry := tools.NewRegistry()

	fmt.Fprintln(os.Stdout, "# MCP Tools (Generated)")
	fmt.Fprintln(os.Stdout)
	fmt.Fprintf(os.Stdout, "This file is generated from the tool catalog (%d tools). Regenerate with `go run ./cmd/mcpdocgen`.\n", registry.Len())
	fmt.Fprintln(os.Stdout)

	category := ""
	for _, t := range registry.All() {
		if t.Category != category {
			category = t.Category
			fmt.Fprintf(os.Stdout, "## %s\n", category)
			fmt.Fprintln(os.Stdout)
		}

		fmt.Fprintf(os.Stdout, "- `%s`\n", t.Name)
		if t.Description != "" {
			fmt.Fprintf(os.Stdout, "  - Description: %s\n", t.Description)
		}
		if t.AuthOnly {
			fmt.Fprintln(os.Stdout, "  - Authenticates only, no endpoint call")
		} else {
			fmt.Fprintf(os.Stdout, "  - Endpoint: `%s`\n", t.Path)
		}

		requiredSet := make(map[string]bool, len(t.Required))
		for _, r := range t.Required {
			requiredSet[r] = true
		}

		keys := make([]string, 0, len(t.Schema))
		for k := range t.Schema {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		if len(keys) > 0 {
			fmt.Fprintln(os.Stdout, "  - Input:")
			for _, k := range keys {
				req := "optional"
				if requiredSet[k] {
					req = "required"
				}
				fmt.Fprintf(os.Stdout, "    - `%s` (%s)\n", k, req)
			}
		}
		fmt.Fprintln(os.Stdout)
	}
}
