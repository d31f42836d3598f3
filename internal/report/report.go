// Package report checks extracted newsletter counts against the balance policy
// and renders the result for the terminal.
//
// This policy is stricter than the data validator's: every configured source
// must appear, the spread between sources is capped (default 1) and no source
// may exceed a per-source cap (default 3).
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/TDL-133/ai-weekly-fr/internal/config"
	"github.com/TDL-133/ai-weekly-fr/internal/extractor"
)

// Stats summarises the sources that were counted at least once.
type Stats struct {
	Total      int
	Min        int
	Max        int
	Difference int
}

// SourceLine is one represented source.
type SourceLine struct {
	Name  string
	Count int
	OK    bool
}

// CategoryLine is one category compared with its target range.
type CategoryLine struct {
	Label   string
	Count   int
	Min     int
	Max     int
	Found   bool
	InRange bool
}

// Report is the outcome of validating one rendered newsletter.
type Report struct {
	Sources    []SourceLine
	Missing    []string
	Categories []CategoryLine
	Stats      Stats
	Errors     []string
	Warnings   []string
}

// Passed reports whether no hard error was found. Warnings do not fail a report.
func (r *Report) Passed() bool {
	return len(r.Errors) == 0
}

// ExitCode is 0 when the report passed and 1 otherwise.
func (r *Report) ExitCode() int {
	if r.Passed() {
		return 0
	}

	return 1
}

// Build validates an extraction against the configured policy.
func Build(ex *extractor.Extraction, cfg *config.Config) *Report {
	r := &Report{}

	r.checkBalance(ex.Sources, cfg)
	r.checkCategories(ex.Categories, cfg)

	return r
}

func (r *Report) checkBalance(counts map[string]int, cfg *config.Config) {
	v := cfg.Validation

	for _, name := range cfg.Sources {
		if counts[name] == 0 {
			r.Missing = append(r.Missing, name)
		}
	}

	if len(r.Missing) > 0 {
		r.Errors = append(r.Errors, fmt.Sprintf("Sources manquantes : %s", strings.Join(r.Missing, ", ")))
	}

	r.Stats = computeStats(counts)

	if r.Stats.Total < v.RecommendedMinTotal {
		r.Warnings = append(r.Warnings, fmt.Sprintf(
			"Total d'articles trop faible : %d (minimum recommandé : %d)", r.Stats.Total, v.RecommendedMinTotal))
	} else if r.Stats.Total > v.RecommendedMaxTotal {
		r.Warnings = append(r.Warnings, fmt.Sprintf(
			"Total d'articles élevé : %d (recommandé : %d-%d)", r.Stats.Total, v.RecommendedMinTotal, v.RecommendedMaxTotal))
	}

	if r.Stats.Difference > v.MaxReportDifference {
		r.Errors = append(r.Errors, fmt.Sprintf(
			"Différence maximale trop élevée : %d articles (maximum autorisé : %d)", r.Stats.Difference, v.MaxReportDifference))
	}

	var over []string

	for _, name := range sortedByCount(counts) {
		c := counts[name]
		if c == 0 {
			continue
		}

		ok := c <= v.MaxPerSource
		r.Sources = append(r.Sources, SourceLine{Name: name, Count: c, OK: ok})

		if !ok {
			over = append(over, fmt.Sprintf("%s (%d)", name, c))
		}
	}

	if len(over) > 0 {
		r.Errors = append(r.Errors, fmt.Sprintf(
			"Sources avec plus de %d articles : %s", v.MaxPerSource, strings.Join(over, ", ")))
	}
}

func (r *Report) checkCategories(counts map[string]int, cfg *config.Config) {
	for _, cat := range cfg.Categories {
		count, found := counts[cat.Label]
		line := CategoryLine{
			Label:   cat.Label,
			Count:   count,
			Min:     cat.Min,
			Max:     cat.Max,
			Found:   found,
			InRange: found && count >= cat.Min && count <= cat.Max,
		}
		r.Categories = append(r.Categories, line)

		switch {
		case !found:
			r.Warnings = append(r.Warnings, fmt.Sprintf("%s : section introuvable", cat.Label))
		case count < cat.Min:
			r.Warnings = append(r.Warnings, fmt.Sprintf(
				"%s : %d articles (minimum recommandé : %d)", cat.Label, count, cat.Min))
		case count > cat.Max:
			r.Warnings = append(r.Warnings, fmt.Sprintf(
				"%s : %d articles (maximum recommandé : %d)", cat.Label, count, cat.Max))
		}
	}
}

// computeStats ignores sources with a zero count. All fields are zero when nothing was counted.
func computeStats(counts map[string]int) Stats {
	var s Stats

	first := true

	for _, c := range counts {
		if c <= 0 {
			continue
		}

		s.Total += c

		if first {
			s.Min, s.Max = c, c
			first = false

			continue
		}

		s.Min = min(s.Min, c)
		s.Max = max(s.Max, c)
	}

	s.Difference = s.Max - s.Min

	return s
}

// sortedByCount orders names by descending count, then by name.
func sortedByCount(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}

		return names[i] < names[j]
	})

	return names
}
