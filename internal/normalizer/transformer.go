package normalizer

import (
	"errors"

	"github.com/TDL-133/ai-weekly-fr/internal/models"
	"github.com/TDL-133/ai-weekly-fr/pkg/utils"
)

// ErrInvalidTransformerDataType is returned when the document is not a JSON object.
var ErrInvalidTransformerDataType = errors.New("invalid data type: expected a JSON object")

// Transformer maps loose documents onto models.
type Transformer struct{}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform converts a decoded document into a Newsletter. Fields of the wrong
// type become empty and non-array buckets become empty; the validator is
// responsible for rejecting such input beforehand.
func (t *Transformer) Transform(data any) (*models.Newsletter, error) {
	doc, ok := data.(map[string]any)
	if !ok {
		return nil, ErrInvalidTransformerDataType
	}

	n := &models.Newsletter{Week: stringField(doc, "week")}

	if categories, isMap := doc["categories"].(map[string]any); isMap {
		for _, key := range models.CategoryKeys {
			n.Categories.SetBucket(key, t.articles(categories[key]))
		}
	}

	if sources, isList := doc["sources"].([]any); isList {
		for _, raw := range sources {
			entry, _ := raw.(map[string]any)
			n.Sources = append(n.Sources, models.Source{
				Name: utils.NormalizeWhitespace(stringField(entry, "name")),
				URL:  stringField(entry, "url"),
			})
		}
	}

	return n, nil
}

func (t *Transformer) articles(raw any) []models.Article {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	out := make([]models.Article, 0, len(list))

	for _, item := range list {
		entry, _ := item.(map[string]any)
		out = append(out, models.Article{
			Title:       stringField(entry, "title"),
			URL:         stringField(entry, "url"),
			Description: stringField(entry, "description"),
			Source:      stringField(entry, "source"),
			Date:        stringField(entry, "date"),
		})
	}

	return out
}

// stringField returns m[key] when it is a string and "" otherwise. A nil map is allowed.
func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)

	return s
}
