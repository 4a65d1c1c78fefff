package tools

import "github.com/bookhub/bookhub/internal/core"

func authenticationTools() []*Tool {
	return []*Tool{
		{
			Name:        "authenticator_rq",
			Description: "Authenticate against the reservation API and verify credentials",
			Path:        "/AuthenticatorRQ",
			Category:    "authentication",
			Schema: map[string]any{
				"language": langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				return map[string]any{}, nil
			},
			AuthOnly: true,
		},
	}
}
