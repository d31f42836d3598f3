package validator

import (
	"fmt"

	"github.com/TDL-133/ai-weekly-fr/internal/models"
)

// DefaultMaxSourceDifference is the largest max-min spread still considered balanced.
const DefaultMaxSourceDifference = 3

// MessageNoArticles is reported when there is nothing to balance.
const MessageNoArticles = "No articles found"

// BalanceResult is the verdict of the source balance check.
type BalanceResult struct {
	Counts     map[string]int `json:"counts,omitempty"`
	Message    string         `json:"message"`
	Min        int            `json:"min"`
	Max        int            `json:"max"`
	Difference int            `json:"difference"`
	Balanced   bool           `json:"balanced"`
}

// AnalyzeBalance counts articles per source and checks that the spread between the
// least and most represented source does not exceed maxDifference.
// Sources form an open set: only names that actually occur are counted.
func AnalyzeBalance(sources []string, maxDifference int) BalanceResult {
	if len(sources) == 0 {
		return BalanceResult{Balanced: true, Message: MessageNoArticles}
	}

	counts := make(map[string]int)
	for _, s := range sources {
		counts[s]++
	}

	first := true
	lo, hi := 0, 0

	for _, c := range counts {
		if first {
			lo, hi = c, c
			first = false

			continue
		}

		lo = min(lo, c)
		hi = max(hi, c)
	}

	diff := hi - lo
	res := BalanceResult{
		Counts:     counts,
		Min:        lo,
		Max:        hi,
		Difference: diff,
		Balanced:   diff <= maxDifference,
	}

	if res.Balanced {
		res.Message = fmt.Sprintf("Sources are balanced (min: %d, max: %d)", lo, hi)
	} else {
		res.Message = fmt.Sprintf("Sources are unbalanced (min: %d, max: %d, diff: %d)", lo, hi, diff)
	}

	return res
}

// AnalyzeArticles runs AnalyzeBalance over the sources of articles.
func AnalyzeArticles(articles []models.Article, maxDifference int) BalanceResult {
	sources := make([]string, 0, len(articles))
	for _, a := range articles {
		sources = append(sources, a.Source)
	}

	return AnalyzeBalance(sources, maxDifference)
}
