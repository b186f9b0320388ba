// Package scaffold builds starter layout documents from OpenAPI component
// schemas, so a mock record page can be sketched from an existing API
// contract instead of typed in by hand.
package scaffold

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-layoutmock/pkg/layout"
)

// Options configures schema extraction.
type Options struct {
	// SectionTitle overrides the title of the section holding the schema's
	// scalar properties. Defaults to "<ObjectType> Information".
	SectionTitle string

	// ResolveReferences validates the document and resolves external refs
	// before extraction.
	ResolveReferences bool
}

// Option mutates Options prior to scaffolding.
type Option func(*Options)

// WithSectionTitle overrides the default section title.
func WithSectionTitle(title string) Option {
	return func(opts *Options) {
		opts.SectionTitle = title
	}
}

// WithResolvedReferences enables full document validation and external
// reference resolution.
func WithResolvedReferences() Option {
	return func(opts *Options) {
		opts.ResolveReferences = true
	}
}

// FromData extracts the named component schema from a raw OpenAPI document
// and converts it into a layout document.
func FromData(ctx context.Context, raw []byte, component string, options ...Option) (*layout.Document, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("scaffold: document payload is empty: %w", layout.ErrMalformedInput)
	}

	opts := Options{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&opts)
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: opts.ResolveReferences,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("scaffold: load document: %v: %w", err, layout.ErrMalformedInput)
	}
	if opts.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("scaffold: validate document: %v: %w", err, layout.ErrMalformedInput)
		}
	}

	schema, err := componentSchema(spec, component)
	if err != nil {
		return nil, err
	}
	return build(component, schema, opts)
}

func componentSchema(spec *openapi3.T, component string) (*openapi3.Schema, error) {
	if component == "" {
		return nil, fmt.Errorf("scaffold: component name is required: %w", layout.ErrInvalidOperation)
	}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil, fmt.Errorf("scaffold: document has no component schemas: %w", layout.ErrNotFound)
	}
	ref, ok := spec.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("scaffold: component %q: %w", component, layout.ErrNotFound)
	}
	return ref.Value, nil
}

func build(component string, schema *openapi3.Schema, opts Options) (*layout.Document, error) {
	doc := layout.New(component)

	title := opts.SectionTitle
	if title == "" {
		title = component + " Information"
	}

	scalars, nested := partitionProperties(schema)

	main, err := doc.AddSection(title)
	if err != nil {
		return nil, err
	}
	if err := addFields(doc, main.ID, scalars, schema.Required, ""); err != nil {
		return nil, err
	}

	for _, group := range nested {
		section, err := doc.AddSection(titleize(group.name))
		if err != nil {
			return nil, err
		}
		// Nested ids are namespaced by their group so a child property can
		// share a name with a top-level one.
		if err := addFields(doc, section.ID, group.properties, group.required, group.name+"_"); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

type property struct {
	name   string
	schema *openapi3.Schema
}

type propertyGroup struct {
	name       string
	properties []property
	required   []string
}

// partitionProperties splits a schema into scalar properties for the main
// section and nested object properties that each become their own section.
// Properties come back sorted by name so scaffolding is deterministic.
func partitionProperties(schema *openapi3.Schema) ([]property, []propertyGroup) {
	var scalars []property
	var nested []propertyGroup

	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		value := ref.Value
		if value.Type.Is(openapi3.TypeObject) && len(value.Properties) > 0 {
			group := propertyGroup{name: name, required: value.Required}
			for childName, childRef := range value.Properties {
				if childRef == nil || childRef.Value == nil {
					continue
				}
				group.properties = append(group.properties, property{name: childName, schema: childRef.Value})
			}
			sort.Slice(group.properties, func(i, j int) bool {
				return group.properties[i].name < group.properties[j].name
			})
			nested = append(nested, group)
			continue
		}
		scalars = append(scalars, property{name: name, schema: value})
	}

	sort.Slice(scalars, func(i, j int) bool { return scalars[i].name < scalars[j].name })
	sort.Slice(nested, func(i, j int) bool { return nested[i].name < nested[j].name })
	return scalars, nested
}

func addFields(doc *layout.Document, sectionID string, properties []property, required []string, idPrefix string) error {
	requiredSet := make(map[string]struct{}, len(required))
	for _, name := range required {
		requiredSet[name] = struct{}{}
	}

	for _, prop := range properties {
		spec := layout.FieldSpec{
			ID:    idPrefix + prop.name,
			Label: labelFor(prop.name, prop.schema),
			Type:  fieldTypeFor(prop.schema),
			Value: defaultValueFor(prop.schema),
		}
		if _, ok := requiredSet[prop.name]; ok {
			spec.Required = true
		}
		if len(prop.schema.Enum) > 0 {
			spec.Type = layout.FieldTypePicklist
			for _, option := range prop.schema.Enum {
				spec.Options = append(spec.Options, fmt.Sprint(option))
			}
		}
		if _, err := doc.AddField(sectionID, spec); err != nil {
			return err
		}
	}
	return nil
}

func labelFor(name string, schema *openapi3.Schema) string {
	if schema.Title != "" {
		return schema.Title
	}
	return titleize(name)
}

// fieldTypeFor maps an OpenAPI type/format pair onto the closest layout
// field type. Unknown combinations fall back to plain text.
func fieldTypeFor(schema *openapi3.Schema) layout.FieldType {
	switch {
	case schema.Type.Is(openapi3.TypeBoolean):
		return layout.FieldTypeCheckbox
	case schema.Type.Is(openapi3.TypeInteger), schema.Type.Is(openapi3.TypeNumber):
		return layout.FieldTypeNumber
	case schema.Type.Is(openapi3.TypeString):
		switch schema.Format {
		case "email":
			return layout.FieldTypeEmail
		case "uri", "url":
			return layout.FieldTypeURL
		case "date", "date-time":
			return layout.FieldTypeDate
		case "phone":
			return layout.FieldTypePhone
		}
		if schema.MaxLength != nil && *schema.MaxLength > 255 {
			return layout.FieldTypeTextarea
		}
		return layout.FieldTypeText
	default:
		return layout.FieldTypeText
	}
}

func defaultValueFor(schema *openapi3.Schema) string {
	if schema.Default == nil {
		return ""
	}
	return fmt.Sprint(schema.Default)
}

// titleize turns snake_case and kebab-case identifiers into display labels,
// so "annual_revenue" becomes "Annual Revenue".
func titleize(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
