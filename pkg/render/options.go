package render

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Mode selects which rendering of the document a renderer produces.
type Mode string

const (
	// ModeDesign renders every field, hidden ones included, with hide/show
	// and reorder affordances. This is the editing view.
	ModeDesign Mode = "design"

	// ModePreview renders only visible fields in order, approximating what
	// the finished record page would look like.
	ModePreview Mode = "preview"
)

// ParseMode normalizes a user-supplied mode string. Empty input defaults to
// design mode.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ModeDesign:
		return ModeDesign, nil
	case ModePreview:
		return ModePreview, nil
	default:
		return "", fmt.Errorf("render: unknown mode %q", raw)
	}
}

// RenderOptions carries per-request rendering inputs. The zero value renders
// design mode with no theme.
type RenderOptions struct {
	// Mode picks the design or preview rendering. Empty means design.
	Mode Mode

	// Title overrides the page heading; defaults to the document's object
	// type.
	Title string

	// Theme supplies resolved go-theme tokens and assets. Renderers derive
	// CSS custom properties from Theme.Tokens/CSSVars when present.
	Theme *theme.RendererConfig
}
