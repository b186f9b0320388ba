// Package html renders a layout document as a static record-detail page in
// the visual style of a CRM. Design mode draws every field with hide/show
// and swap affordances; preview mode draws only what a viewer would see.
package html

import (
	"context"
	"fmt"
	"html"
	"io/fs"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-layoutmock/pkg/layout"
	"github.com/goliatone/go-layoutmock/pkg/render"
	rendertemplate "github.com/goliatone/go-layoutmock/pkg/render/template"
	gotemplate "github.com/goliatone/go-layoutmock/pkg/render/template/gotemplate"
	theme "github.com/goliatone/go-theme"
)

const pageTemplate = "templates/page.tmpl"

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	stylesheet       string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheet replaces the embedded stylesheet inlined into the page.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = css
	}
}

// Renderer implements render.Renderer for static HTML pages.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	stylesheet string
	sanitizer  *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		stylesheet: defaultStylesheet(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:  renderer,
		stylesheet: cfg.stylesheet,
		sanitizer:  bluemonday.StrictPolicy(),
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render draws the document as a full HTML page.
func (r *Renderer) Render(ctx context.Context, doc *layout.Document, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("html renderer: document is required")
	}

	mode := options.Mode
	if mode == "" {
		mode = render.ModeDesign
	}

	title := options.Title
	if title == "" {
		title = doc.ObjectType()
	}

	data := map[string]any{
		"title":        title,
		"object_type":  doc.ObjectType(),
		"design_mode":  mode == render.ModeDesign,
		"sections":     r.sectionContexts(doc, mode),
		"hidden":       r.hiddenContext(doc),
		"stylesheet":   r.stylesheet,
		"theme_style":  themeStyle(options.Theme),
		"theme_name":   themeName(options.Theme),
		"chrome":       chromeContext(),
		"hidden_count": len(doc.HiddenFields()),
	}

	rendered, err := r.templates.RenderTemplate(pageTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(rendered), nil
}

type fieldContext struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	ValueHTML string `json:"value_html"`
	Type      string `json:"type"`
	Visible   bool   `json:"visible"`
	Required  bool   `json:"required"`
}

type sectionContext struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Fields       []fieldContext `json:"fields"`
	VisibleCount int            `json:"visible_count"`
	HiddenCount  int            `json:"hidden_count"`
}

func (r *Renderer) sectionContexts(doc *layout.Document, mode render.Mode) []sectionContext {
	sections := doc.Sections()
	out := make([]sectionContext, 0, len(sections))
	for _, s := range sections {
		sc := sectionContext{ID: s.ID, Title: s.Title}
		for _, f := range s.Fields {
			if f.Visible {
				sc.VisibleCount++
			} else {
				sc.HiddenCount++
				if mode == render.ModePreview {
					continue
				}
			}
			sc.Fields = append(sc.Fields, fieldContext{
				ID:        f.ID,
				Label:     r.sanitizer.Sanitize(f.Label),
				ValueHTML: r.displayValue(f),
				Type:      string(f.Type),
				Visible:   f.Visible,
				Required:  f.Required,
			})
		}
		out = append(out, sc)
	}
	return out
}

func (r *Renderer) hiddenContext(doc *layout.Document) []fieldContext {
	var out []fieldContext
	for _, f := range doc.HiddenFields() {
		if f.Label == "" {
			continue
		}
		out = append(out, fieldContext{
			ID:    f.ID,
			Label: r.sanitizer.Sanitize(f.Label),
			Type:  string(f.Type),
		})
	}
	return out
}

// displayValue produces the field's value markup. Values are sanitized down
// to plain text before any markup of our own is added, so imported payloads
// cannot smuggle HTML into the page.
func (r *Renderer) displayValue(f *layout.Field) string {
	value := strings.TrimSpace(r.sanitizer.Sanitize(f.Value))
	if value == "" {
		return "--"
	}

	switch f.Type {
	case layout.FieldTypeURL:
		if layout.ValidateValue(layout.FieldTypeURL, value) != nil {
			return value
		}
		if u, err := url.Parse(value); err == nil {
			safe := html.EscapeString(u.String())
			return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener">%s</a>`, safe, safe)
		}
		return value
	case layout.FieldTypePhone:
		digits := strings.Map(keepDialable, value)
		return fmt.Sprintf(`<a href="tel:%s">%s</a>`, html.EscapeString(digits), value)
	case layout.FieldTypeCheckbox:
		if isChecked(value) {
			return "☑"
		}
		return "☐"
	case layout.FieldTypeTextarea:
		return strings.ReplaceAll(value, "\n", "<br>")
	default:
		return value
	}
}

func keepDialable(r rune) rune {
	if r >= '0' && r <= '9' || r == '+' {
		return r
	}
	return -1
}

func isChecked(value string) bool {
	switch strings.ToLower(value) {
	case "true", "yes", "checked", "☑":
		return true
	default:
		return false
	}
}

func chromeContext() map[string]string {
	return map[string]string{
		"page":         string(ClassPage),
		"header":       string(ClassHeader),
		"section":      string(ClassSection),
		"section_head": string(ClassSectionHead),
		"grid":         string(ClassGrid),
		"field":        string(ClassField),
		"field_label":  string(ClassFieldLabel),
		"field_value":  string(ClassFieldValue),
		"field_hidden": string(ClassHiddenField),
		"hidden_panel": string(ClassHiddenPanel),
		"controls":     string(ClassControls),
	}
}

func themeName(cfg *theme.RendererConfig) string {
	if cfg == nil {
		return ""
	}
	return cfg.Theme
}

// themeStyle folds theme tokens into a CSS custom-property style block so
// the stylesheet can pick them up without template changes.
func themeStyle(cfg *theme.RendererConfig) string {
	if cfg == nil {
		return ""
	}

	vars := make(map[string]string, len(cfg.Tokens)+len(cfg.CSSVars))
	for token, value := range cfg.Tokens {
		name := token
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		vars[name] = value
	}
	for name, value := range cfg.CSSVars {
		vars[name] = value
	}
	if len(vars) == 0 {
		return ""
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root{")
	for _, name := range names {
		fmt.Fprintf(&b, "%s:%s;", name, vars[name])
	}
	b.WriteString("}")
	return b.String()
}
