package layout

import (
	"strings"

	"github.com/google/uuid"
)

// Document is the root of the section/field tree for one record-detail page
// mock. Construct one with New, FromSnapshot, or a catalog template, and
// mutate it only through its methods so the ordering invariants hold.
type Document struct {
	objectType string
	sections   []*Section

	// ids tracks every id ever assigned in this document, including ids of
	// removed entities, so external references stay unambiguous and ids are
	// never reused within the document's lifetime.
	ids map[string]struct{}
}

// New creates an empty document for the given object type (e.g. "Account").
func New(objectType string) *Document {
	return &Document{
		objectType: strings.TrimSpace(objectType),
		ids:        make(map[string]struct{}),
	}
}

// ObjectType reports the CRM object this layout mocks.
func (d *Document) ObjectType() string {
	return d.objectType
}

// Sections returns the sections in order. Callers must treat the result as
// read-only; mutations go through the document methods.
func (d *Document) Sections() []*Section {
	out := make([]*Section, len(d.sections))
	copy(out, d.sections)
	return out
}

// Section returns the section with the given id.
func (d *Document) Section(id string) (*Section, error) {
	for _, s := range d.sections {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, sectionNotFound(id)
}

// Field returns the field with the given id along with its owning section.
func (d *Document) Field(id string) (*Field, *Section, error) {
	for _, s := range d.sections {
		for _, f := range s.Fields {
			if f.ID == id {
				return f, s, nil
			}
		}
	}
	return nil, nil, fieldNotFound(id)
}

// HiddenFields returns every hidden field in the document, section by
// section, powering restore panels in presentation layers.
func (d *Document) HiddenFields() []*Field {
	var out []*Field
	for _, s := range d.sections {
		for _, f := range s.Fields {
			if !f.Visible {
				out = append(out, f)
			}
		}
	}
	return out
}

// AddSection appends a new empty section and assigns the next dense order
// index.
func (d *Document) AddSection(title string) (*Section, error) {
	s := &Section{
		ID:    d.newID(),
		Title: strings.TrimSpace(title),
		Order: len(d.sections),
	}
	d.sections = append(d.sections, s)
	return s, nil
}

// RemoveSection deletes a section and all its fields, then re-densifies the
// remaining section order values.
func (d *Document) RemoveSection(id string) error {
	idx := d.sectionIndex(id)
	if idx < 0 {
		return sectionNotFound(id)
	}
	d.sections = append(d.sections[:idx], d.sections[idx+1:]...)
	d.renumberSections()
	return nil
}

// ReorderSection moves a section to newIndex, clamped to the valid range,
// shifting the sections in between.
func (d *Document) ReorderSection(id string, newIndex int) error {
	idx := d.sectionIndex(id)
	if idx < 0 {
		return sectionNotFound(id)
	}
	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(d.sections)-1 {
		newIndex = len(d.sections) - 1
	}
	if newIndex == idx {
		return nil
	}
	s := d.sections[idx]
	d.sections = append(d.sections[:idx], d.sections[idx+1:]...)
	d.sections = append(d.sections[:newIndex], append([]*Section{s}, d.sections[newIndex:]...)...)
	d.renumberSections()
	return nil
}

// AddField appends a field described by spec to the named section and
// assigns the next dense order index within it.
func (d *Document) AddField(sectionID string, spec FieldSpec) (*Field, error) {
	sec, err := d.Section(sectionID)
	if err != nil {
		return nil, err
	}

	ft := spec.Type
	if ft == "" {
		ft = FieldTypeText
	}
	if !ft.Valid() {
		return nil, invalidOp("unknown field type %q", string(ft))
	}

	// The id is registered last so a rejected add never reserves it.
	id := strings.TrimSpace(spec.ID)
	if id == "" {
		id = d.newID()
	} else {
		if _, taken := d.ids[id]; taken {
			return nil, invalidOp("field id %q already in use", id)
		}
		d.ids[id] = struct{}{}
	}

	f := &Field{
		ID:       id,
		Label:    spec.Label,
		Value:    spec.Value,
		Type:     ft,
		Visible:  !spec.Hidden,
		Required: spec.Required,
		Options:  append([]string(nil), spec.Options...),
		Order:    len(sec.Fields),
	}
	sec.Fields = append(sec.Fields, f)
	return f, nil
}

// RemoveField deletes a field and re-densifies its siblings. Removal is
// irreversible; hide the field instead if it may come back.
func (d *Document) RemoveField(id string) error {
	for _, s := range d.sections {
		for i, f := range s.Fields {
			if f.ID == id {
				s.Fields = append(s.Fields[:i], s.Fields[i+1:]...)
				renumberFields(s)
				return nil
			}
		}
	}
	return fieldNotFound(id)
}

// SetVisibility toggles a field's visibility in place. Setting the current
// state again is a no-op, not an error.
func (d *Document) SetVisibility(id string, visible bool) error {
	f, _, err := d.Field(id)
	if err != nil {
		return err
	}
	f.Visible = visible
	return nil
}

// MoveField swaps a field with its adjacent sibling in the same section.
// Moving past a section boundary is a no-op.
func (d *Document) MoveField(id string, dir Direction) error {
	if dir != DirectionUp && dir != DirectionDown {
		return invalidOp("unknown direction %q", string(dir))
	}
	for _, s := range d.sections {
		for i, f := range s.Fields {
			if f.ID != id {
				continue
			}
			j := i - 1
			if dir == DirectionDown {
				j = i + 1
			}
			if j < 0 || j >= len(s.Fields) {
				return nil
			}
			s.Fields[i], s.Fields[j] = s.Fields[j], s.Fields[i]
			renumberFields(s)
			return nil
		}
	}
	return fieldNotFound(id)
}

// SwapFields exchanges the (section, order) position of two fields, which
// may live in different sections. Swapping a field with itself is an invalid
// operation; swapping twice restores the original positions.
func (d *Document) SwapFields(a, b string) error {
	if a == b {
		return invalidOp("cannot swap field %q with itself", a)
	}
	fa, sa, err := d.Field(a)
	if err != nil {
		return err
	}
	fb, sb, err := d.Field(b)
	if err != nil {
		return err
	}
	ia := fieldIndex(sa, a)
	ib := fieldIndex(sb, b)
	sa.Fields[ia], sb.Fields[ib] = fb, fa
	renumberFields(sa)
	if sb != sa {
		renumberFields(sb)
	}
	return nil
}

// UpdateFieldValue replaces a field's value. Values are free text at this
// level; per-type checks are the explicit ValidateField/Lint operations.
func (d *Document) UpdateFieldValue(id, value string) error {
	f, _, err := d.Field(id)
	if err != nil {
		return err
	}
	f.Value = value
	return nil
}

// UpdateFieldLabel replaces a field's label.
func (d *Document) UpdateFieldLabel(id, label string) error {
	f, _, err := d.Field(id)
	if err != nil {
		return err
	}
	f.Label = label
	return nil
}

func (d *Document) sectionIndex(id string) int {
	for i, s := range d.sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func fieldIndex(s *Section, id string) int {
	for i, f := range s.Fields {
		if f.ID == id {
			return i
		}
	}
	return -1
}

func (d *Document) renumberSections() {
	for i, s := range d.sections {
		s.Order = i
	}
}

func renumberFields(s *Section) {
	for i, f := range s.Fields {
		f.Order = i
	}
}

func (d *Document) newID() string {
	if d.ids == nil {
		d.ids = make(map[string]struct{})
	}
	for {
		id := uuid.NewString()
		if _, taken := d.ids[id]; !taken {
			d.ids[id] = struct{}{}
			return id
		}
	}
}

// registerID records an externally supplied id, used by the snapshot decoder
// and template loaders.
func (d *Document) registerID(id string) bool {
	if d.ids == nil {
		d.ids = make(map[string]struct{})
	}
	if _, taken := d.ids[id]; taken {
		return false
	}
	d.ids[id] = struct{}{}
	return true
}
