package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/layoutmock.css
var embeddedAssets embed.FS

// StylesheetName is the asset key for the built-in page stylesheet.
const StylesheetName = "layoutmock.css"

// TemplatesFS exposes the embedded template bundle for consumers that want
// the built-in page rendering out of the box.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

func defaultStylesheet() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+StylesheetName)
	if err != nil {
		return ""
	}
	return string(data)
}
