// Package renderer turns a newsletter into a static HTML page.
//
// Pages are assembled from five fragment templates (base, header, category,
// article, sources) whose {{name}} placeholders are substituted in a single
// pass. The finished page carries a signed manifest block summarising what was
// rendered.
package renderer

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/TDL-133/ai-weekly-fr/internal/config"
	"github.com/TDL-133/ai-weekly-fr/internal/models"
	"github.com/TDL-133/ai-weekly-fr/pkg/metadata"
)

// Template names.
const (
	TemplateBase     = "base"
	TemplateHeader   = "header"
	TemplateCategory = "category"
	TemplateArticle  = "article"
	TemplateSources  = "sources"
)

var templateNames = []string{TemplateBase, TemplateHeader, TemplateCategory, TemplateArticle, TemplateSources}

// Renderer errors.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrNilNewsletter    = errors.New("newsletter is nil")
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// Renderer renders newsletters with a fixed set of templates.
type Renderer struct {
	templates  map[string]string
	categories []config.CategoryConfig
	cssPath    string
}

// NewRenderer loads the templates. They come from cfg.Paths.TemplatesDir when
// set and from the built-in set otherwise.
func NewRenderer(cfg *config.Config) (*Renderer, error) {
	var (
		fsys fs.FS
		err  error
	)

	if cfg.Paths.TemplatesDir != "" {
		fsys = os.DirFS(cfg.Paths.TemplatesDir)
	} else {
		fsys, err = fs.Sub(embeddedTemplates, "templates")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded templates: %w", err)
		}
	}

	r := &Renderer{
		templates:  make(map[string]string, len(templateNames)),
		categories: append([]config.CategoryConfig(nil), cfg.Categories...),
		cssPath:    cfg.Paths.CSSPath,
	}

	for _, name := range templateNames {
		content, readErr := fs.ReadFile(fsys, name+".html")
		if readErr != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrTemplateNotFound, name, readErr)
		}

		r.templates[name] = string(content)
	}

	return r, nil
}

// Render produces the complete signed page for n.
func (r *Renderer) Render(n *models.Newsletter) (string, error) {
	if n == nil {
		return "", ErrNilNewsletter
	}

	var sections []string

	manifest := &metadata.Metadata{
		Validation: true,
		EditionID:  uuid.NewString(),
		Week:       n.Week,
		Total:      n.TotalArticles(),
		Sources:    n.SourceCounts(),
		Categories: make(map[string]int),
	}

	number := 1

	for _, cat := range r.categories {
		articles := n.Categories.Bucket(cat.Key)
		if len(articles) == 0 {
			continue
		}

		sections = append(sections, r.RenderCategory(cat.Label, articles, cat.Color, number))
		manifest.Categories[cat.Label] += len(articles)
		number += len(articles)
	}

	page := substitute(r.templates[TemplateBase], map[string]string{
		"week":       EscapeHTML(n.Week),
		"cssPath":    EscapeHTML(r.cssPath),
		"header":     r.RenderHeader(n.Week),
		"categories": strings.Join(sections, "\n"),
		"sources":    r.RenderSources(n.Sources),
	})

	signed, err := metadata.Sign(page, manifest)
	if err != nil {
		return "", fmt.Errorf("failed to sign newsletter: %w", err)
	}

	return signed, nil
}

// RenderHeader renders the page header for a week range.
func (r *Renderer) RenderHeader(week string) string {
	return substitute(r.templates[TemplateHeader], map[string]string{
		"dateRange":       EscapeHTML(week),
		"dateRangeFrench": EscapeHTML(FormatDateRangeFrench(week)),
	})
}

// RenderCategory renders one section. Articles are numbered from start.
func (r *Renderer) RenderCategory(label string, articles []models.Article, color string, start int) string {
	items := make([]string, 0, len(articles))
	for i, a := range articles {
		items = append(items, r.RenderArticle(a, start+i, color))
	}

	return substitute(r.templates[TemplateCategory], map[string]string{
		"categoryName": label,
		"color":        color,
		"articles":     strings.Join(items, "\n"),
	})
}

// RenderArticle renders one article card.
func (r *Renderer) RenderArticle(a models.Article, number int, color string) string {
	return substitute(r.templates[TemplateArticle], map[string]string{
		"number":      padNumber(number),
		"color":       color,
		"title":       EscapeHTML(a.Title),
		"url":         EscapeHTML(a.URL),
		"description": EscapeHTML(a.Description),
		"source":      EscapeHTML(a.Source),
		"date":        EscapeHTML(a.Date),
	})
}

// RenderSources renders the source list section.
func (r *Renderer) RenderSources(sources []models.Source) string {
	items := make([]string, 0, len(sources))
	for _, s := range sources {
		items = append(items, fmt.Sprintf(`<li><a href="%s" target="_blank" rel="noopener noreferrer">%s</a></li>`,
			EscapeHTML(s.URL), EscapeHTML(s.Name)))
	}

	return substitute(r.templates[TemplateSources], map[string]string{
		"sourceItems": strings.Join(items, "\n"),
	})
}

// padNumber zero-pads to two digits; larger numbers are kept whole.
func padNumber(n int) string {
	s := strconv.Itoa(n)
	if len(s) < 2 {
		s = "0" + s
	}

	return s
}

// substitute replaces every {{key}} of tmpl in one pass. Replacement values are
// never rescanned, so a value containing "{{x}}" stays literal. Unknown
// placeholders are left untouched.
func substitute(tmpl string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{{"+k+"}}", v)
	}

	return strings.NewReplacer(pairs...).Replace(tmpl)
}
