package validator

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/TDL-133/ai-weekly-fr/internal/config"
	"github.com/TDL-133/ai-weekly-fr/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleNewsletter builds a well-formed edition: sources cycle through the
// default registry and buckets hold 9/8/8 articles.
func sampleNewsletter(t *testing.T, total int) *models.Newsletter {
	t.Helper()

	n := &models.Newsletter{Week: "2026-01-11 to 2026-01-17"}

	for i := 0; i < total; i++ {
		a := models.Article{
			Title:       fmt.Sprintf("Article %d", i+1),
			URL:         fmt.Sprintf("https://example.com/articles/%d", i+1),
			Description: "A short description.",
			Source:      config.DefaultSources[i%len(config.DefaultSources)],
			Date:        "2026-01-12",
		}

		switch {
		case i < 9:
			n.Categories.Critique = append(n.Categories.Critique, a)
		case i < 17:
			n.Categories.Important = append(n.Categories.Important, a)
		default:
			n.Categories.GoodToKnow = append(n.Categories.GoodToKnow, a)
		}
	}

	for _, name := range config.DefaultSources {
		n.Sources = append(n.Sources, models.Source{Name: name, URL: "https://example.com/sources"})
	}

	return n
}

// decode round-trips through JSON so tests see the same shapes as real input.
func decode(t *testing.T, v any) map[string]any {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	return doc
}

func decodeRaw(t *testing.T, raw string) any {
	t.Helper()

	var doc any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	return doc
}

func newTestValidator() *Validator {
	return NewValidator(config.Default())
}

func TestValidateNewsletter_Valid(t *testing.T) {
	res := newTestValidator().ValidateNewsletter(decode(t, sampleNewsletter(t, 25)))

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
	require.NotNil(t, res.Stats)
	assert.Equal(t, 25, res.Stats.TotalArticles)
	assert.True(t, res.Stats.Balance.Balanced)
	assert.Equal(t, 1, res.Stats.Balance.Difference)
}

func TestValidateNewsletter_MissingCategoriesShortCircuits(t *testing.T) {
	doc := decode(t, sampleNewsletter(t, 25))
	delete(doc, "categories")

	res := newTestValidator().ValidateNewsletter(doc)

	assert.False(t, res.Valid)
	assert.Equal(t, []string{"Missing or invalid categories field"}, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Nil(t, res.Stats)
}

// A JSON array passes a loose "is an object" check but has no named buckets,
// so it is rejected up front like any other non-object. The document is
// invalid either way; only the error list is shorter.
func TestValidateNewsletter_CategoriesArrayRejected(t *testing.T) {
	for _, raw := range []string{
		`{"week":"w","categories":[]}`,
		`{"week":"w","categories":"critique"}`,
		`{"week":"w","categories":null}`,
	} {
		res := newTestValidator().ValidateNewsletter(decodeRaw(t, raw))

		assert.False(t, res.Valid, raw)
		assert.Equal(t, []string{"Missing or invalid categories field"}, res.Errors, raw)
		assert.Nil(t, res.Stats, raw)
	}
}

func TestValidateNewsletter_MissingWeekAndCategories(t *testing.T) {
	res := newTestValidator().ValidateNewsletter(decodeRaw(t, `{}`))

	assert.Equal(t, []string{
		"Missing or invalid week field",
		"Missing or invalid categories field",
	}, res.Errors)
	assert.Nil(t, res.Stats)
}

func TestValidateNewsletter_NotAnObject(t *testing.T) {
	res := newTestValidator().ValidateNewsletter(decodeRaw(t, `[1, 2, 3]`))

	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 2)
	assert.Nil(t, res.Stats)
}

func TestValidateNewsletter_InvalidWeek(t *testing.T) {
	for _, week := range []any{"", 42, nil} {
		doc := decode(t, sampleNewsletter(t, 25))
		doc["week"] = week

		res := newTestValidator().ValidateNewsletter(doc)

		assert.False(t, res.Valid)
		assert.Equal(t, []string{"Missing or invalid week field"}, res.Errors)
		require.NotNil(t, res.Stats)
	}
}

func TestValidateNewsletter_TooFewArticles(t *testing.T) {
	res := newTestValidator().ValidateNewsletter(decode(t, sampleNewsletter(t, 24)))

	assert.False(t, res.Valid)
	assert.Equal(t, []string{"Minimum 25 articles required, found 24"}, res.Errors)
	assert.Equal(t, 24, res.Stats.TotalArticles)
}

func TestValidateNewsletter_NoUpperBound(t *testing.T) {
	res := newTestValidator().ValidateNewsletter(decode(t, sampleNewsletter(t, 40)))

	assert.True(t, res.Valid)
	assert.Equal(t, 40, res.Stats.TotalArticles)
}

func TestValidateNewsletter_NonArrayBucketIsWarning(t *testing.T) {
	doc := decode(t, sampleNewsletter(t, 25))
	categories := doc["categories"].(map[string]any)
	categories["goodToKnow"] = "not a list"
	delete(categories, "important")

	res := newTestValidator().ValidateNewsletter(doc)

	assert.Equal(t, []string{
		"Category 'important' is not an array or is missing",
		"Category 'goodToKnow' is not an array or is missing",
	}, res.Warnings[:2])
	// only the 9 critique articles remain countable
	assert.Equal(t, 9, res.Stats.TotalArticles)
	assert.Equal(t, []string{"Minimum 25 articles required, found 9"}, res.Errors)
}

func TestValidateNewsletter_TotalIgnoresArticleValidity(t *testing.T) {
	doc := decode(t, sampleNewsletter(t, 25))
	critique := doc["categories"].(map[string]any)["critique"].([]any)
	critique[0] = map[string]any{}
	critique[1] = nil

	res := newTestValidator().ValidateNewsletter(doc)

	assert.Equal(t, 25, res.Stats.TotalArticles)
	assert.Len(t, res.Errors, 10)
	assert.False(t, res.Valid)
}

func TestValidateNewsletter_ArticleFieldErrors(t *testing.T) {
	doc := decode(t, sampleNewsletter(t, 25))
	critique := doc["categories"].(map[string]any)["critique"].([]any)
	important := doc["categories"].(map[string]any)["important"].([]any)

	first := critique[2].(map[string]any)
	first["title"] = "   "
	first["url"] = "ftp://example.com"
	first["date"] = 20260112

	second := important[2].(map[string]any)
	delete(second, "description")
	second["source"] = ""

	res := newTestValidator().ValidateNewsletter(doc)

	// Indexes restart per bucket, so both buckets report "Article 3".
	assert.Equal(t, []string{
		"Article 3: Missing or invalid title",
		"Article 3: Missing or invalid URL",
		"Article 3: Missing or invalid date",
		"Article 3: Missing or invalid description",
		"Article 3: Missing or invalid source",
	}, res.Errors)
	assert.False(t, res.Valid)
}

func TestValidateNewsletter_URLValidity(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"https://example.com/x", true},
		{"http://example.com", true},
		{"ftp://example.com", false},
		{"example.com/x", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			doc := decode(t, sampleNewsletter(t, 25))
			article := doc["categories"].(map[string]any)["critique"].([]any)[0].(map[string]any)
			article["url"] = tt.url

			source := doc["sources"].([]any)[0].(map[string]any)
			source["url"] = tt.url

			res := newTestValidator().ValidateNewsletter(doc)

			if tt.valid {
				assert.Empty(t, res.Errors)

				return
			}

			assert.Contains(t, res.Errors, "Article 1: Missing or invalid URL")

			if tt.url == "" {
				assert.Contains(t, res.Errors, "Source 1: Missing name or URL")
			} else {
				assert.Contains(t, res.Errors, "Source 1: Invalid URL")
			}
		})
	}
}

func TestValidateNewsletter_UnbalancedIsWarning(t *testing.T) {
	n := sampleNewsletter(t, 25)
	for i := range n.Categories.Critique {
		n.Categories.Critique[i].Source = "TLDR AI"
	}

	res := newTestValidator().ValidateNewsletter(decode(t, n))

	assert.True(t, res.Valid)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, res.Stats.Balance.Message, res.Warnings[0])
	assert.False(t, res.Stats.Balance.Balanced)
	assert.Contains(t, res.Warnings[0], "Sources are unbalanced")
}

func TestValidateNewsletter_OpenSourceSet(t *testing.T) {
	n := sampleNewsletter(t, 25)
	n.Categories.Important[0].Source = "Some Other Newsletter"

	res := newTestValidator().ValidateNewsletter(decode(t, n))

	assert.True(t, res.Valid)
	assert.Equal(t, 1, res.Stats.Balance.Counts["Some Other Newsletter"])
}

func TestValidateNewsletter_SourcesList(t *testing.T) {
	t.Run("missing list is a warning", func(t *testing.T) {
		doc := decode(t, sampleNewsletter(t, 25))
		delete(doc, "sources")

		res := newTestValidator().ValidateNewsletter(doc)

		assert.True(t, res.Valid)
		assert.Equal(t, []string{"Sources list is missing or invalid"}, res.Warnings)
	})

	t.Run("non list is a warning", func(t *testing.T) {
		doc := decode(t, sampleNewsletter(t, 25))
		doc["sources"] = map[string]any{"name": "x"}

		res := newTestValidator().ValidateNewsletter(doc)

		assert.Equal(t, []string{"Sources list is missing or invalid"}, res.Warnings)
	})

	t.Run("entries are indexed across the list", func(t *testing.T) {
		doc := decode(t, sampleNewsletter(t, 25))
		sources := doc["sources"].([]any)
		sources[1] = map[string]any{"name": "No URL"}
		sources[4] = map[string]any{"url": "https://example.com"}
		sources[7] = map[string]any{"name": "Bad", "url": "mailto:x@example.com"}
		sources[9] = "not an object"

		res := newTestValidator().ValidateNewsletter(doc)

		assert.Equal(t, []string{
			"Source 2: Missing name or URL",
			"Source 5: Missing name or URL",
			"Source 8: Invalid URL",
			"Source 10: Missing name or URL",
		}, res.Errors)
	})

	t.Run("non string url is invalid", func(t *testing.T) {
		doc := decode(t, sampleNewsletter(t, 25))
		doc["sources"].([]any)[0] = map[string]any{"name": "x", "url": 12}

		res := newTestValidator().ValidateNewsletter(doc)

		assert.Equal(t, []string{"Source 1: Invalid URL"}, res.Errors)
	})
}

func TestValidateNewsletter_CustomThresholds(t *testing.T) {
	cfg := config.Default()
	cfg.Validation.MinArticles = 3

	res := NewValidator(cfg).ValidateNewsletter(decode(t, sampleNewsletter(t, 2)))

	assert.Contains(t, res.Errors, "Minimum 3 articles required, found 2")
}

func TestValidateTyped(t *testing.T) {
	v := newTestValidator()
	n := sampleNewsletter(t, 25)

	assert.Equal(t, v.ValidateNewsletter(decode(t, n)), v.ValidateTyped(n))
}

func TestValidationResult_String(t *testing.T) {
	res := newTestValidator().ValidateNewsletter(decode(t, sampleNewsletter(t, 25)))
	assert.Contains(t, res.String(), "VALID | Articles: 25")

	short := newTestValidator().ValidateNewsletter(decodeRaw(t, `{}`))
	assert.Contains(t, short.String(), "INVALID | Errors: 2")
}
