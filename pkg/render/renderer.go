// Package render defines the seam between the layout document model and the
// presentation collaborators that draw it. Renderers consume documents
// read-only; all mutation goes through the session layer.
package render

import (
	"context"

	"github.com/goliatone/go-layoutmock/pkg/layout"
)

// Renderer converts a document into a byte representation (HTML page, plain
// text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc *layout.Document, options RenderOptions) ([]byte, error)
}
