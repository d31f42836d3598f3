// Package validator checks newsletter data before it is rendered.
package validator

import (
	"fmt"
	"strings"

	"github.com/TDL-133/ai-weekly-fr/internal/config"
	"github.com/TDL-133/ai-weekly-fr/internal/models"
	"github.com/TDL-133/ai-weekly-fr/pkg/utils"
)

// unknownSource is the balance key of articles without a usable source.
const unknownSource = "(unknown)"

// articleFields lists the checked article fields and the label used in messages.
var articleFields = []struct {
	key   string
	label string
}{
	{"title", "title"},
	{"url", "URL"},
	{"description", "description"},
	{"source", "source"},
	{"date", "date"},
}

// Validator validates raw newsletter documents.
type Validator struct {
	minArticles   int
	maxDifference int
	categoryKeys  []string
}

// NewValidator creates a validator from the configuration thresholds.
func NewValidator(cfg *config.Config) *Validator {
	return &Validator{
		minArticles:   cfg.Validation.MinArticles,
		maxDifference: cfg.Validation.MaxSourceDifference,
		categoryKeys:  models.CategoryKeys,
	}
}

// ValidateNewsletter checks a document decoded from JSON into untyped values
// (map[string]any, []any, string, float64, bool, nil).
//
// Every rule is evaluated and reported; the only early return is a missing or
// non-object "categories" field, in which case no stats are computed.
func (v *Validator) ValidateNewsletter(data any) *ValidationResult {
	result := &ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}

	doc, _ := data.(map[string]any)

	if week, ok := doc["week"].(string); !ok || week == "" {
		result.addError("Missing or invalid week field")
	}

	categories, ok := doc["categories"].(map[string]any)
	if !ok {
		result.addError("Missing or invalid categories field")

		return result
	}

	buckets := make([][]any, 0, len(v.categoryKeys))

	for _, key := range v.categoryKeys {
		bucket, isList := categories[key].([]any)
		if !isList {
			result.addWarning(fmt.Sprintf("Category '%s' is not an array or is missing", key))
		}

		buckets = append(buckets, bucket)
	}

	total := 0
	for _, bucket := range buckets {
		total += len(bucket)
	}

	if total < v.minArticles {
		result.addError(fmt.Sprintf("Minimum %d articles required, found %d", v.minArticles, total))
	}

	// Indexes restart in every bucket.
	var sources []string

	for _, bucket := range buckets {
		for i, item := range bucket {
			article, _ := item.(map[string]any)
			for _, msg := range validateArticle(article, i) {
				result.addError(msg)
			}

			sources = append(sources, sourceKey(article["source"]))
		}
	}

	balance := AnalyzeBalance(sources, v.maxDifference)
	if !balance.Balanced {
		result.addWarning(balance.Message)
	}

	v.validateSources(doc["sources"], result)

	result.Stats = &Stats{
		TotalArticles: total,
		Balance:       balance,
	}
	result.Valid = len(result.Errors) == 0

	return result
}

// validateArticle returns one error per failing field; index is 0-based within the bucket.
func validateArticle(article map[string]any, index int) []string {
	var errs []string

	for _, f := range articleFields {
		var ok bool
		if f.key == "url" {
			ok = isValidURLValue(article[f.key])
		} else {
			ok = isNonBlankString(article[f.key])
		}

		if !ok {
			errs = append(errs, fmt.Sprintf("Article %d: Missing or invalid %s", index+1, f.label))
		}
	}

	return errs
}

func (v *Validator) validateSources(raw any, result *ValidationResult) {
	list, ok := raw.([]any)
	if !ok {
		result.addWarning("Sources list is missing or invalid")

		return
	}

	for i, item := range list {
		entry, _ := item.(map[string]any)

		if !isPresent(entry["name"]) || !isPresent(entry["url"]) {
			result.addError(fmt.Sprintf("Source %d: Missing name or URL", i+1))
		} else if !isValidURLValue(entry["url"]) {
			result.addError(fmt.Sprintf("Source %d: Invalid URL", i+1))
		}
	}
}

// ValidateTyped validates an already decoded newsletter by converting it back to
// the untyped form, so both entry points apply exactly the same rules.
func (v *Validator) ValidateTyped(n *models.Newsletter) *ValidationResult {
	return v.ValidateNewsletter(ToDocument(n))
}

// ToDocument converts a typed newsletter to the untyped document form.
func ToDocument(n *models.Newsletter) map[string]any {
	categories := make(map[string]any, len(models.CategoryKeys))

	for _, key := range models.CategoryKeys {
		bucket := n.Categories.Bucket(key)

		items := make([]any, 0, len(bucket))
		for _, a := range bucket {
			items = append(items, map[string]any{
				"title":       a.Title,
				"url":         a.URL,
				"description": a.Description,
				"source":      a.Source,
				"date":        a.Date,
			})
		}

		categories[key] = items
	}

	sources := make([]any, 0, len(n.Sources))
	for _, s := range n.Sources {
		sources = append(sources, map[string]any{"name": s.Name, "url": s.URL})
	}

	return map[string]any{
		"week":       n.Week,
		"categories": categories,
		"sources":    sources,
	}
}

func isNonBlankString(v any) bool {
	s, ok := v.(string)

	return ok && strings.TrimSpace(s) != ""
}

func isValidURLValue(v any) bool {
	s, ok := v.(string)

	return ok && utils.IsValidURL(s)
}

// isPresent treats null, false, zero and the empty string as absent.
func isPresent(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	default:
		return true
	}
}

func sourceKey(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return unknownSource
}
