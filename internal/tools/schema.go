package tools

// Schema property constructors. Leaf properties are map[string]string so
// the rendered JSON matches hand-written MCP definitions; composites use
// map[string]any.

func strProp(desc string) map[string]string {
	return map[string]string{"type": "string", "description": desc}
}

func intProp(desc string) map[string]string {
	return map[string]string{"type": "integer", "description": desc}
}

func numProp(desc string) map[string]string {
	return map[string]string{"type": "number", "description": desc}
}

func boolProp(desc string) map[string]string {
	return map[string]string{"type": "boolean", "description": desc}
}

func enumProp(desc string, values ...string) map[string]any {
	return map[string]any{"type": "string", "description": desc, "enum": values}
}

func strArrayProp(desc string) map[string]any {
	return map[string]any{"type": "array", "description": desc, "items": map[string]string{"type": "string"}}
}

func arrayProp(desc string, items map[string]any) map[string]any {
	return map[string]any{"type": "array", "description": desc, "items": items}
}

func objProp(desc string, props map[string]any) map[string]any {
	return map[string]any{"type": "object", "description": desc, "properties": props}
}

// objItem shapes an object used inside an array property.
func objItem(props map[string]any, required ...string) map[string]any {
	item := map[string]any{"type": "object", "properties": props}
	if len(required) > 0 {
		item["required"] = required
	}
	return item
}

func langProp() map[string]any {
	return enumProp("Response language", "es", "en", "fr", "de", "it", "pt")
}

// dateProp documents a YYYY-MM-DD argument.
func dateProp(desc string) map[string]string {
	return strProp(desc + " (YYYY-MM-DD)")
}

// guestArrayProp is the shared guest distribution shape: one entry per
// distinct age, with the number of guests of that age.
func guestArrayProp() map[string]any {
	return arrayProp("Guests by age", objItem(map[string]any{
		"age":    intProp("Guest age in years"),
		"amount": intProp("Number of guests of this age"),
	}, "age", "amount"))
}
