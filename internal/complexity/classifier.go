// Package complexity classifies project requests into tiers and resolves
// the resource-budget profile for each tier.
package complexity

import (
	"strings"

	"github.com/squadhq/squad/pkg/models"
)

// Rule pairs a tier with the keywords that select it.
type Rule struct {
	Tier     models.Tier
	Keywords []string
}

// rules is the ordered classification table. Rules are evaluated top-down
// and the first matching keyword wins; no scoring or weighting. Requests
// matching no rule default to SIMPLE.
var rules = []Rule{
	{
		Tier: models.TierComplex,
		Keywords: []string{
			"enterprise",
			"platform",
			"architecture",
			"microservices",
			"distributed",
			"scalable",
			"large-scale",
			"complex",
		},
	},
	{
		Tier: models.TierModerate,
		Keywords: []string{
			"application",
			"app",
			"system",
			"multiple",
			"integration",
		},
	},
}

// Classification describes how a request was classified.
type Classification struct {
	// Tier is the resolved complexity tier.
	Tier models.Tier
	// MatchedKeyword is the keyword that triggered the selection, empty
	// when the request fell through to the default.
	MatchedKeyword string
}

// ClassifyWithMatch classifies a request and reports the matching keyword.
func ClassifyWithMatch(requestText string) Classification {
	lower := strings.ToLower(requestText)

	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return Classification{Tier: rule.Tier, MatchedKeyword: kw}
			}
		}
	}

	return Classification{Tier: models.TierSimple}
}

// Classify returns the complexity tier for a request. It never errors;
// unmatched text always resolves to SIMPLE.
func Classify(requestText string) models.Tier {
	return ClassifyWithMatch(requestText).Tier
}
