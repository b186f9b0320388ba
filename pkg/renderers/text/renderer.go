// Package text renders a layout document as a plain-text record summary,
// useful for terminal output and golden-file diffs.
package text

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-layoutmock/pkg/layout"
	"github.com/goliatone/go-layoutmock/pkg/render"
)

// Renderer implements render.Renderer for plain text output.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

// Option customises the renderer configuration.
type Option func(*Renderer)

// WithIndent replaces the default two-space field indentation.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// New constructs the text renderer applying any provided options.
func New(options ...Option) *Renderer {
	r := &Renderer{indent: "  "}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render writes one line per field, grouped under underlined section
// titles. Preview mode drops hidden fields entirely; design mode keeps
// them with a [hidden] marker and appends the hidden-field roster.
func (r *Renderer) Render(ctx context.Context, doc *layout.Document, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("text renderer: document is required")
	}

	mode := options.Mode
	if mode == "" {
		mode = render.ModeDesign
	}

	title := options.Title
	if title == "" {
		title = doc.ObjectType()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))

	for _, section := range doc.Sections() {
		fmt.Fprintf(&b, "%s\n%s\n", section.Title, strings.Repeat("-", len(section.Title)))
		for _, field := range section.Fields {
			if !field.Visible && mode == render.ModePreview {
				continue
			}
			value := field.Value
			if value == "" {
				value = "--"
			}
			marker := ""
			if !field.Visible {
				marker = " [hidden]"
			}
			required := ""
			if field.Required {
				required = "*"
			}
			fmt.Fprintf(&b, "%s%s%s: %s%s\n", r.indent, field.Label, required, value, marker)
		}
		b.WriteString("\n")
	}

	if mode == render.ModeDesign {
		if hidden := doc.HiddenFields(); len(hidden) > 0 {
			fmt.Fprintf(&b, "Hidden fields (%d):\n", len(hidden))
			for _, field := range hidden {
				fmt.Fprintf(&b, "%s%s (%s)\n", r.indent, field.Label, field.ID)
			}
		}
	}

	return []byte(b.String()), nil
}
