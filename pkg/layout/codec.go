package layout

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Snapshot is the serialized form of a document: the interchange payload for
// export/import. Arrays are emitted in current order, so order is primarily
// positional; the numeric order values are carried for human inspection and,
// when present, must form a dense 0..n-1 permutation.
type Snapshot struct {
	ObjectType string            `json:"objectType" yaml:"objectType"`
	Sections   []SectionSnapshot `json:"sections" yaml:"sections"`
}

// SectionSnapshot mirrors Section in the serialized form.
type SectionSnapshot struct {
	ID     string          `json:"id" yaml:"id"`
	Title  string          `json:"title" yaml:"title"`
	Order  int             `json:"order" yaml:"order,omitempty"`
	Fields []FieldSnapshot `json:"fields" yaml:"fields"`
}

// FieldSnapshot mirrors Field in the serialized form. Visible is a pointer
// so handwritten payloads and templates may omit it and default to true.
type FieldSnapshot struct {
	ID       string    `json:"id" yaml:"id"`
	Label    string    `json:"label" yaml:"label"`
	Value    string    `json:"value" yaml:"value,omitempty"`
	Type     FieldType `json:"type" yaml:"type,omitempty"`
	Visible  *bool     `json:"visible" yaml:"visible,omitempty"`
	Required bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Options  []string  `json:"options,omitempty" yaml:"options,omitempty"`
	Order    int       `json:"order" yaml:"order,omitempty"`
}

// Snapshot produces a deterministic, order-preserving copy of the document,
// including hidden fields. Previously removed entities are absent by design.
func (d *Document) Snapshot() Snapshot {
	snap := Snapshot{
		ObjectType: d.objectType,
		Sections:   make([]SectionSnapshot, 0, len(d.sections)),
	}
	for _, s := range d.sections {
		sec := SectionSnapshot{
			ID:     s.ID,
			Title:  s.Title,
			Order:  s.Order,
			Fields: make([]FieldSnapshot, 0, len(s.Fields)),
		}
		for _, f := range s.Fields {
			visible := f.Visible
			sec.Fields = append(sec.Fields, FieldSnapshot{
				ID:       f.ID,
				Label:    f.Label,
				Value:    f.Value,
				Type:     f.Type,
				Visible:  &visible,
				Required: f.Required,
				Options:  append([]string(nil), f.Options...),
				Order:    f.Order,
			})
		}
		snap.Sections = append(snap.Sections, sec)
	}
	return snap
}

// EncodeJSON renders the document's snapshot as indented JSON.
func (d *Document) EncodeJSON() ([]byte, error) {
	data, err := json.MarshalIndent(d.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("layout: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeJSON parses a serialized form and rebuilds a document from it.
func DecodeJSON(raw []byte) (*Document, error) {
	if len(raw) == 0 {
		return nil, malformed("empty payload")
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, malformed("decode snapshot: %v", err)
	}
	return FromSnapshot(snap)
}

// FromSnapshot rebuilds a Document, validating the snapshot against the
// document invariants: required keys present, ids unique, field types known,
// and any declared order values forming a dense permutation.
func FromSnapshot(snap Snapshot) (*Document, error) {
	if strings.TrimSpace(snap.ObjectType) == "" {
		return nil, malformed("objectType is required")
	}

	doc := New(snap.ObjectType)

	sections, err := orderedSections(snap.Sections)
	if err != nil {
		return nil, err
	}

	for _, sec := range sections {
		id := strings.TrimSpace(sec.ID)
		if id == "" {
			return nil, malformed("section %q: id is required", sec.Title)
		}
		if !doc.registerID(id) {
			return nil, malformed("duplicate id %q", id)
		}
		target := &Section{
			ID:    id,
			Title: sec.Title,
			Order: len(doc.sections),
		}
		doc.sections = append(doc.sections, target)

		fields, err := orderedFields(id, sec.Fields)
		if err != nil {
			return nil, err
		}
		for _, fld := range fields {
			fid := strings.TrimSpace(fld.ID)
			if fid == "" {
				return nil, malformed("section %q: field %q: id is required", id, fld.Label)
			}
			if !doc.registerID(fid) {
				return nil, malformed("duplicate id %q", fid)
			}
			ft := fld.Type
			if ft == "" {
				ft = FieldTypeText
			}
			if !ft.Valid() {
				return nil, malformed("field %q: unknown field type %q", fid, string(ft))
			}
			visible := true
			if fld.Visible != nil {
				visible = *fld.Visible
			}
			target.Fields = append(target.Fields, &Field{
				ID:       fid,
				Label:    fld.Label,
				Value:    fld.Value,
				Type:     ft,
				Visible:  visible,
				Required: fld.Required,
				Options:  append([]string(nil), fld.Options...),
				Order:    len(target.Fields),
			})
		}
	}

	return doc, nil
}

func orderedSections(in []SectionSnapshot) ([]SectionSnapshot, error) {
	orders := make([]int, len(in))
	for i, s := range in {
		orders[i] = s.Order
	}
	sortNeeded, err := checkOrders("section", orders)
	if err != nil {
		return nil, err
	}
	if !sortNeeded {
		return in, nil
	}
	out := make([]SectionSnapshot, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func orderedFields(sectionID string, in []FieldSnapshot) ([]FieldSnapshot, error) {
	orders := make([]int, len(in))
	for i, f := range in {
		orders[i] = f.Order
	}
	sortNeeded, err := checkOrders("section "+sectionID+" field", orders)
	if err != nil {
		return nil, err
	}
	if !sortNeeded {
		return in, nil
	}
	out := make([]FieldSnapshot, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

// checkOrders validates declared order values. All-zero means the payload
// relies on array position alone; otherwise the values must be a dense
// 0..n-1 permutation and the caller sorts by them.
func checkOrders(kind string, orders []int) (sortNeeded bool, err error) {
	if len(orders) == 0 {
		return false, nil
	}
	allZero := true
	for _, o := range orders {
		if o != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return false, nil
	}
	seen := make(map[int]struct{}, len(orders))
	for _, o := range orders {
		if o < 0 || o >= len(orders) {
			return false, malformed("%s order %d outside dense range 0..%d", kind, o, len(orders)-1)
		}
		if _, dup := seen[o]; dup {
			return false, malformed("%s order %d duplicated", kind, o)
		}
		seen[o] = struct{}{}
	}
	return true, nil
}
