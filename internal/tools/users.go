package tools

import (
	"github.com/bookhub/bookhub/internal/core"
	"github.com/bookhub/bookhub/internal/neobookings"
)

func userTools() []*Tool {
	return []*Tool{
		{
			Name:        "user_rewards_details_rq",
			Description: "Retrieve rewards program details for subscribed users",
			Path:        "/UserRewardsDetailsRQ",
			Category:    "users",
			Required:    []string{"user_reward_ids"},
			Schema: map[string]any{
				"user_reward_ids": strArrayProp("User reward identifiers (email addresses)"),
				"language":        langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				ids, err := reqStrList(a, "user_reward_ids")
				if err != nil {
					return nil, err
				}
				return map[string]any{"UserRewardId": ids}, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "UserRewardsDetails", "rewards user")
			},
		},
	}
}
