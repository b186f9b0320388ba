// Package layoutmock sketches CRM record-detail layouts. A layout is a tree
// of sections and fields that can be mutated in memory, exported to JSON, and
// rendered as a design surface or a read-only preview.
//
// The subpackages carry the actual machinery; this package re-exports the
// common entry points so simple callers only need one import.
package layoutmock

import (
	"context"
	"fmt"

	"github.com/goliatone/go-layoutmock/pkg/catalog"
	"github.com/goliatone/go-layoutmock/pkg/layout"
	"github.com/goliatone/go-layoutmock/pkg/render"
	htmlrenderer "github.com/goliatone/go-layoutmock/pkg/renderers/html"
	textrenderer "github.com/goliatone/go-layoutmock/pkg/renderers/text"
	"github.com/goliatone/go-layoutmock/pkg/session"
)

// Aliases for the types most callers touch, exported at the root for
// convenience.
type (
	Document      = layout.Document
	Section       = layout.Section
	Field         = layout.Field
	FieldSpec     = layout.FieldSpec
	FieldType     = layout.FieldType
	Direction     = layout.Direction
	RenderOptions = render.RenderOptions
	Mode          = render.Mode
	Session       = session.Session
)

const (
	ModeDesign  = render.ModeDesign
	ModePreview = render.ModePreview
)

// Error sentinels re-exported so callers can errors.Is without importing the
// layout package.
var (
	ErrNotFound         = layout.ErrNotFound
	ErrInvalidOperation = layout.ErrInvalidOperation
	ErrMalformedInput   = layout.ErrMalformedInput
)

// NewDocument starts an empty layout for the given object type.
func NewDocument(objectType string) *Document {
	return layout.New(objectType)
}

// Open starts a session seeded from a named catalog template. An empty name
// loads the default account layout.
func Open(templateName string, options ...session.Option) (*Session, error) {
	return session.Open(templateName, options...)
}

// NewSession wraps an existing document in a session.
func NewSession(doc *Document, options ...session.Option) (*Session, error) {
	return session.New(doc, options...)
}

// Templates lists the names of the built-in catalog layouts.
func Templates() []string {
	return catalog.Names()
}

// Import parses serialized layout JSON into a document.
func Import(raw []byte) (*Document, error) {
	return layout.DecodeJSON(raw)
}

// DefaultRegistry returns a renderer registry with the built-in HTML and
// text renderers registered.
func DefaultRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()

	page, err := htmlrenderer.New()
	if err != nil {
		return nil, fmt.Errorf("layoutmock: build html renderer: %w", err)
	}
	if err := registry.Register(page); err != nil {
		return nil, err
	}
	if err := registry.Register(textrenderer.New()); err != nil {
		return nil, err
	}
	return registry, nil
}

// Render draws the document with the named built-in renderer. It is the
// simplest entry point for callers that just want output bytes.
func Render(ctx context.Context, doc *Document, rendererName string, options RenderOptions) ([]byte, error) {
	registry, err := DefaultRegistry()
	if err != nil {
		return nil, err
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, doc, options)
}

// RenderHTML renders the document as a full HTML page.
func RenderHTML(ctx context.Context, doc *Document, options RenderOptions) ([]byte, error) {
	return Render(ctx, doc, "html", options)
}

// RenderText renders the document as a plain-text summary.
func RenderText(ctx context.Context, doc *Document, options RenderOptions) ([]byte, error) {
	return Render(ctx, doc, "text", options)
}
