package catalog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-layoutmock/pkg/layout"
)

func TestNames(t *testing.T) {
	if diff := cmp.Diff([]string{"account", "contact"}, Names()); diff != "" {
		t.Fatalf("template names (-want +got):\n%s", diff)
	}
}

func TestLoad_Account(t *testing.T) {
	doc, err := Load("account")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.ObjectType() != "Account" {
		t.Fatalf("objectType = %q", doc.ObjectType())
	}

	sections := doc.Sections()
	if len(sections) != 3 {
		t.Fatalf("sections = %d, want 3", len(sections))
	}
	for i, s := range sections {
		if s.Order != i {
			t.Fatalf("section %q order = %d, want %d", s.ID, s.Order, i)
		}
		for j, f := range s.Fields {
			if f.Order != j {
				t.Fatalf("field %q order = %d, want %d", f.ID, f.Order, j)
			}
		}
	}

	f, _, err := doc.Field("website")
	if err != nil {
		t.Fatalf("website: %v", err)
	}
	if f.Type != layout.FieldTypeURL || !f.Visible {
		t.Fatalf("website = %+v", f)
	}

	hidden := doc.HiddenFields()
	if len(hidden) != 1 || hidden[0].ID != "risk_reason" {
		t.Fatalf("hidden fields = %+v", hidden)
	}

	// Template values all pass their own type validation.
	if issues := doc.Lint(); len(issues) != 0 {
		t.Fatalf("lint issues: %v", issues)
	}
}

func TestLoad_ReturnsIndependentDocuments(t *testing.T) {
	first, err := Load("contact")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := first.RemoveField("email"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	second, err := Load("contact")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if _, _, err := second.Field("email"); err != nil {
		t.Fatalf("fresh template missing email: %v", err)
	}
}

func TestLoad_Unknown(t *testing.T) {
	_, err := Load("opportunity")
	if !errors.Is(err, layout.ErrNotFound) {
		t.Fatalf("err = %v, want layout.ErrNotFound", err)
	}
}

func TestLoad_EmptyNameUsesDefault(t *testing.T) {
	doc, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.ObjectType() != "Account" {
		t.Fatalf("objectType = %q, want Account", doc.ObjectType())
	}
}
