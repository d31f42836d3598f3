package models

// Category keys as they appear in the data file.
const (
	CategoryCritique   = "critique"
	CategoryImportant  = "important"
	CategoryGoodToKnow = "goodToKnow"
)

// CategoryKeys lists the category keys in display order.
var CategoryKeys = []string{CategoryCritique, CategoryImportant, CategoryGoodToKnow}

// Categories partitions a week's articles into the three buckets.
type Categories struct {
	Critique   []Article `json:"critique"`
	Important  []Article `json:"important"`
	GoodToKnow []Article `json:"goodToKnow"`
}

// Newsletter is one weekly edition.
type Newsletter struct {
	Week       string     `json:"week"`
	Categories Categories `json:"categories"`
	Sources    []Source   `json:"sources"`
}

// Bucket returns the articles stored under key, or nil for an unknown key.
func (c *Categories) Bucket(key string) []Article {
	switch key {
	case CategoryCritique:
		return c.Critique
	case CategoryImportant:
		return c.Important
	case CategoryGoodToKnow:
		return c.GoodToKnow
	default:
		return nil
	}
}

// SetBucket replaces the articles stored under key. Unknown keys are ignored.
func (c *Categories) SetBucket(key string, articles []Article) {
	switch key {
	case CategoryCritique:
		c.Critique = articles
	case CategoryImportant:
		c.Important = articles
	case CategoryGoodToKnow:
		c.GoodToKnow = articles
	}
}

// AllArticles flattens the buckets in display order.
func (n *Newsletter) AllArticles() []Article {
	all := make([]Article, 0, n.TotalArticles())
	for _, key := range CategoryKeys {
		all = append(all, n.Categories.Bucket(key)...)
	}

	return all
}

// TotalArticles returns the number of articles across all buckets.
func (n *Newsletter) TotalArticles() int {
	return len(n.Categories.Critique) + len(n.Categories.Important) + len(n.Categories.GoodToKnow)
}

// SourceCounts returns the number of articles per article source.
func (n *Newsletter) SourceCounts() map[string]int {
	counts := make(map[string]int)
	for _, a := range n.AllArticles() {
		counts[a.Source]++
	}

	return counts
}
