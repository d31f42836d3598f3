package extractor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractDOM derives the same counts as Extract from the parsed document tree.
//
// Text is entity-decoded by the parser, so a source rendered as "A &amp; B" is
// counted here as "A & B" while the pattern scan misses it. The two results are
// compared by the report to surface such rendering differences.
func (e *Extractor) ExtractDOM(html string) (*Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	result := &Extraction{
		Sources:    make(map[string]int, len(e.sources)),
		Categories: make(map[string]int, len(e.labels)),
	}

	for _, s := range e.sources {
		result.Sources[s] = 0
	}

	// Bare markers only: no attributes, no nested elements.
	doc.Find(e.sourceSelector).Each(func(_ int, s *goquery.Selection) {
		if len(s.Nodes[0].Attr) > 0 || s.Children().Length() > 0 {
			return
		}

		name := strings.TrimSpace(s.Text())
		if e.known[name] {
			result.Sources[name]++
		}
	})

	wanted := make(map[string]bool, len(e.labels))

	for _, label := range e.labels {
		wanted[label] = true
	}

	// Matches come back in document order, so each article belongs to the
	// closest heading before it.
	current := ""
	seen := make(map[string]bool, len(e.labels))

	doc.Find(e.headingTag + ", " + e.articleSelector).Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == e.headingTag {
			label := strings.TrimSpace(s.Text())

			current = ""

			if wanted[label] && !seen[label] {
				seen[label] = true
				current = label
				result.Categories[label] = 0
			}

			return
		}

		if current != "" {
			result.Categories[current]++
		}
	})

	return result, nil
}
