package report

import (
	"errors"
	"fmt"
	"sort"

	"github.com/TDL-133/ai-weekly-fr/internal/extractor"
	"github.com/TDL-133/ai-weekly-fr/pkg/metadata"
)

// CrossCheckManifest compares the extracted counts with the manifest the
// renderer embedded in the document. Every difference is a warning: the
// extraction remains the source of truth. It returns false when the document
// carries no manifest.
func (r *Report) CrossCheckManifest(html string, ex *extractor.Extraction) bool {
	meta, _ := metadata.Extract(html)
	if meta == nil {
		return false
	}

	if _, err := metadata.Verify(html); err != nil {
		if errors.Is(err, metadata.ErrHashMismatch) {
			r.Warnings = append(r.Warnings, "Manifeste : le contenu a été modifié après la génération")
		} else {
			r.Warnings = append(r.Warnings, fmt.Sprintf("Manifeste illisible : %v", err))
		}
	}

	r.Warnings = append(r.Warnings, diffCounts("Manifeste", "source", meta.Sources, ex.Sources)...)
	r.Warnings = append(r.Warnings, diffCounts("Manifeste", "catégorie", meta.Categories, ex.Categories)...)

	return true
}

// CrossCheckDOM compares pattern-scan counts with counts taken from the parsed document.
func (r *Report) CrossCheckDOM(scan, dom *extractor.Extraction) {
	r.Warnings = append(r.Warnings, diffCounts("DOM", "source", dom.Sources, scan.Sources)...)
	r.Warnings = append(r.Warnings, diffCounts("DOM", "catégorie", dom.Categories, scan.Categories)...)
}

// diffCounts lists keys whose counts differ, treating a missing key as zero.
func diffCounts(origin, kind string, expected, actual map[string]int) []string {
	keys := make(map[string]bool, len(expected)+len(actual))
	for k := range expected {
		keys[k] = true
	}

	for k := range actual {
		keys[k] = true
	}

	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}

	sort.Strings(sorted)

	var out []string

	for _, k := range sorted {
		if expected[k] != actual[k] {
			out = append(out, fmt.Sprintf("%s : %s %s attendu %d, extrait %d", origin, kind, k, expected[k], actual[k]))
		}
	}

	return out
}
