// Package catalog ships the built-in document templates a session starts
// from. Templates are YAML snapshots embedded in the binary; loading one
// always yields a fresh, independent document.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-layoutmock/pkg/layout"
)

//go:embed templates/*.yaml
var templatesFS embed.FS

// DefaultName is the template loaded when the caller does not pick one.
const DefaultName = "account"

// Names lists the available template names, sorted.
func Names() []string {
	entries, err := fs.ReadDir(templatesFS, "templates")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load builds a fresh document from the named built-in template. Unknown
// names report layout.ErrNotFound.
func Load(name string) (*layout.Document, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}

	raw, err := fs.ReadFile(templatesFS, "templates/"+name+".yaml")
	if err != nil {
		return nil, fmt.Errorf("catalog: template %q: %w", name, layout.ErrNotFound)
	}

	var snap layout.Snapshot
	if err := yaml.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("catalog: template %q: %v: %w", name, err, layout.ErrMalformedInput)
	}

	doc, err := layout.FromSnapshot(snap)
	if err != nil {
		return nil, fmt.Errorf("catalog: template %q: %w", name, err)
	}
	return doc, nil
}

// Default loads the default template.
func Default() (*layout.Document, error) {
	return Load(DefaultName)
}
