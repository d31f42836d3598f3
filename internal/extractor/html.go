// Package extractor recovers source and category counts from rendered newsletter HTML.
//
// It never sees the structured input: everything is derived by scanning the
// output artifact, so escaping or substitution bugs in rendering show up as
// count differences.
package extractor

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/TDL-133/ai-weekly-fr/internal/config"
)

// DOM selectors used when the configuration leaves them empty.
const (
	defaultSourceSelector  = "span"
	defaultArticleSelector = "article"
)

// ErrSourcePatternGroup is returned when the source pattern does not capture exactly one group.
var ErrSourcePatternGroup = errors.New("source pattern must have exactly one capture group")

// Extraction holds the counts recovered from one document.
type Extraction struct {
	// Sources has an entry for every configured source, zero when absent.
	Sources map[string]int
	// Categories has an entry for every category whose heading was found, keyed by label.
	Categories map[string]int
}

// Extractor scans HTML with the configured markers.
type Extractor struct {
	sources       []string
	known         map[string]bool
	labels        []string
	sourcePattern *regexp.Regexp
	headings      map[string]*regexp.Regexp
	headingOpen   string
	headingTag    string
	articleMarker string

	sourceSelector  string
	articleSelector string
}

// NewExtractor compiles the extraction patterns of cfg.
func NewExtractor(cfg *config.Config) (*Extractor, error) {
	sourcePattern, err := regexp.Compile(cfg.Extraction.SourcePattern)
	if err != nil {
		return nil, fmt.Errorf("invalid source pattern: %w", err)
	}

	if sourcePattern.NumSubexp() != 1 {
		return nil, fmt.Errorf("%w: %q", ErrSourcePatternGroup, cfg.Extraction.SourcePattern)
	}

	tag := cfg.Extraction.HeadingTag

	e := &Extractor{
		sources:       append([]string(nil), cfg.Sources...),
		known:         make(map[string]bool, len(cfg.Sources)),
		sourcePattern: sourcePattern,
		headings:      make(map[string]*regexp.Regexp, len(cfg.Categories)),
		headingOpen:   "<" + tag,
		headingTag:    tag,
		articleMarker: cfg.Extraction.ArticleMarker,

		sourceSelector:  cfg.Extraction.SourceSelector,
		articleSelector: cfg.Extraction.ArticleSelector,
	}

	if e.sourceSelector == "" {
		e.sourceSelector = defaultSourceSelector
	}

	if e.articleSelector == "" {
		e.articleSelector = defaultArticleSelector
	}

	for _, s := range cfg.Sources {
		e.known[s] = true
	}

	for _, cat := range cfg.Categories {
		// Attributes on the heading are ignored; only the text must match.
		expr := fmt.Sprintf(`<%s(?:\s[^>]*)?>%s</%s>`,
			regexp.QuoteMeta(tag), regexp.QuoteMeta(cat.Label), regexp.QuoteMeta(tag))

		heading, compileErr := regexp.Compile(expr)
		if compileErr != nil {
			return nil, fmt.Errorf("invalid heading pattern for %q: %w", cat.Label, compileErr)
		}

		e.labels = append(e.labels, cat.Label)
		e.headings[cat.Label] = heading
	}

	return e, nil
}

// Sources returns the configured source names.
func (e *Extractor) Sources() []string {
	return append([]string(nil), e.sources...)
}

// Extract returns both source and category counts.
func (e *Extractor) Extract(html string) *Extraction {
	return &Extraction{
		Sources:    e.SourceCounts(html),
		Categories: e.CategoryCounts(html),
	}
}

// SourceCounts counts source markers whose trimmed text is exactly a configured source.
// Anything else, including HTML-escaped names, is ignored.
func (e *Extractor) SourceCounts(html string) map[string]int {
	counts := make(map[string]int, len(e.sources))
	for _, s := range e.sources {
		counts[s] = 0
	}

	for _, match := range e.sourcePattern.FindAllStringSubmatch(html, -1) {
		name := strings.TrimSpace(match[1])
		if e.known[name] {
			counts[name]++
		}
	}

	return counts
}

// CategoryCounts counts article markers between each category heading and the next heading.
func (e *Extractor) CategoryCounts(html string) map[string]int {
	counts := make(map[string]int, len(e.labels))

	for _, label := range e.labels {
		loc := e.headings[label].FindStringIndex(html)
		if loc == nil {
			continue
		}

		section := html[loc[1]:]
		if next := strings.Index(section, e.headingOpen); next >= 0 {
			section = section[:next]
		}

		counts[label] = strings.Count(section, e.articleMarker)
	}

	return counts
}
