// Package testsupport holds shared fixtures and comparison helpers used by
// package tests across the module.
package testsupport

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-layoutmock/pkg/layout"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// SampleDocument builds a small account layout with one visible section of
// three fields. Helpers fail the test on error to keep call sites concise.
func SampleDocument(t *testing.T) *layout.Document {
	t.Helper()

	doc := layout.New("Account")
	section, err := doc.AddSection("Account Information")
	if err != nil {
		t.Fatalf("testsupport: add section: %v", err)
	}
	specs := []layout.FieldSpec{
		{ID: "name", Label: "Account Name", Value: "Steed Standard Transport Ltd.", Required: true},
		{ID: "phone", Label: "Phone", Value: "(519) 271-9924", Type: layout.FieldTypePhone},
		{ID: "website", Label: "Website", Value: "http://www.ssl.ca/", Type: layout.FieldTypeURL},
	}
	for _, spec := range specs {
		if _, err := doc.AddField(section.ID, spec); err != nil {
			t.Fatalf("testsupport: add field %s: %v", spec.ID, err)
		}
	}
	return doc
}

// MustExport serializes the document, failing the test on error.
func MustExport(t *testing.T, doc *layout.Document) []byte {
	t.Helper()

	raw, err := doc.EncodeJSON()
	if err != nil {
		t.Fatalf("testsupport: export: %v", err)
	}
	return raw
}

// MustImport parses serialized layout JSON, failing the test on error.
func MustImport(t *testing.T, raw []byte) *layout.Document {
	t.Helper()

	doc, err := layout.DecodeJSON(raw)
	if err != nil {
		t.Fatalf("testsupport: import: %v", err)
	}
	return doc
}

// DiffDocuments compares two documents through their snapshots and returns a
// human-readable diff, empty when they are structurally identical.
func DiffDocuments(a, b *layout.Document) string {
	return cmp.Diff(a.Snapshot(), b.Snapshot())
}

// AssertDenseOrders fails the test unless every section and field order forms
// the sequence 0..n-1 in slice position.
func AssertDenseOrders(t *testing.T, doc *layout.Document) {
	t.Helper()

	for i, section := range doc.Sections() {
		if section.Order != i {
			t.Fatalf("testsupport: section %s order %d at position %d", section.ID, section.Order, i)
		}
		for j, field := range section.Fields {
			if field.Order != j {
				t.Fatalf("testsupport: field %s order %d at position %d", field.ID, field.Order, j)
			}
		}
	}
}
