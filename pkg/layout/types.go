package layout

// FieldType is the simplified enum for record-friendly field kinds.
type FieldType string

const (
	FieldTypeText       FieldType = "text"
	FieldTypeEmail      FieldType = "email"
	FieldTypePhone      FieldType = "phone"
	FieldTypePicklist   FieldType = "picklist"
	FieldTypeDate       FieldType = "date"
	FieldTypeNumber     FieldType = "number"
	FieldTypeCurrency   FieldType = "currency"
	FieldTypeTextarea   FieldType = "textarea"
	FieldTypeURL        FieldType = "url"
	FieldTypeCheckbox   FieldType = "checkbox"
	FieldTypePercentage FieldType = "percentage"
)

var fieldTypes = map[FieldType]struct{}{
	FieldTypeText:       {},
	FieldTypeEmail:      {},
	FieldTypePhone:      {},
	FieldTypePicklist:   {},
	FieldTypeDate:       {},
	FieldTypeNumber:     {},
	FieldTypeCurrency:   {},
	FieldTypeTextarea:   {},
	FieldTypeURL:        {},
	FieldTypeCheckbox:   {},
	FieldTypePercentage: {},
}

// Valid reports whether ft is a known field type.
func (ft FieldType) Valid() bool {
	_, ok := fieldTypes[ft]
	return ok
}

// FieldTypes returns the known field types in declaration order.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText, FieldTypeEmail, FieldTypePhone, FieldTypePicklist,
		FieldTypeDate, FieldTypeNumber, FieldTypeCurrency, FieldTypeTextarea,
		FieldTypeURL, FieldTypeCheckbox, FieldTypePercentage,
	}
}

// Field is a single labeled, typed, orderable, hideable value inside a
// section. Hidden fields stay in the model so they can be restored; deletion
// is a distinct, irreversible operation.
type Field struct {
	ID       string
	Label    string
	Value    string
	Type     FieldType
	Visible  bool
	Required bool
	// Options lists the allowed choices for picklist fields.
	Options []string
	// Order is the dense position of the field within its section.
	Order int
}

// Section is a named, ordered group of fields.
type Section struct {
	ID    string
	Title string
	// Order is the dense position of the section within its document.
	Order  int
	Fields []*Field
}

// VisibleFields returns the section's visible fields in order.
func (s *Section) VisibleFields() []*Field {
	out := make([]*Field, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.Visible {
			out = append(out, f)
		}
	}
	return out
}

// FieldSpec describes a field to add to a document. The zero value yields a
// visible, optional text field with a generated id.
type FieldSpec struct {
	// ID is optional; a unique id is generated when empty. Supplying an id
	// that already exists (or existed) in the document is an invalid
	// operation.
	ID       string
	Label    string
	Value    string
	Type     FieldType
	Required bool
	Options  []string
	// Hidden creates the field with Visible set to false.
	Hidden bool
}

// Direction selects the neighbour a field moves toward.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)
