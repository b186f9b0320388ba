package scaffold

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-layoutmock/pkg/layout"
)

const accountSpec = `
openapi: 3.0.3
info:
  title: CRM
  version: 1.0.0
paths: {}
components:
  schemas:
    Account:
      type: object
      required: [name]
      properties:
        name:
          type: string
          title: Account Name
        rating:
          type: string
          enum: [Hot, Warm, Cold]
        employees:
          type: integer
        website:
          type: string
          format: uri
        active:
          type: boolean
        notes:
          type: string
          maxLength: 4000
        billing_address:
          type: object
          required: [street]
          properties:
            street:
              type: string
            city:
              type: string
`

func TestFromData_BuildsSections(t *testing.T) {
	doc, err := FromData(context.Background(), []byte(accountSpec), "Account")
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}

	sections := doc.Sections()
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != "Account Information" {
		t.Fatalf("unexpected main section title %q", sections[0].Title)
	}
	if sections[1].Title != "Billing Address" {
		t.Fatalf("unexpected nested section title %q", sections[1].Title)
	}
	if len(sections[0].Fields) != 6 {
		t.Fatalf("expected 6 scalar fields, got %d", len(sections[0].Fields))
	}
	if len(sections[1].Fields) != 2 {
		t.Fatalf("expected 2 nested fields, got %d", len(sections[1].Fields))
	}
}

func TestFromData_MapsTypesAndRequired(t *testing.T) {
	doc, err := FromData(context.Background(), []byte(accountSpec), "Account")
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}

	cases := []struct {
		id       string
		label    string
		fieldTyp layout.FieldType
		required bool
	}{
		{"name", "Account Name", layout.FieldTypeText, true},
		{"rating", "Rating", layout.FieldTypePicklist, false},
		{"employees", "Employees", layout.FieldTypeNumber, false},
		{"website", "Website", layout.FieldTypeURL, false},
		{"active", "Active", layout.FieldTypeCheckbox, false},
		{"notes", "Notes", layout.FieldTypeTextarea, false},
		{"billing_address_street", "Street", layout.FieldTypeText, true},
	}
	for _, tc := range cases {
		field, _, err := doc.Field(tc.id)
		if err != nil {
			t.Fatalf("field %s: %v", tc.id, err)
		}
		if field.Label != tc.label {
			t.Errorf("field %s: label %q, want %q", tc.id, field.Label, tc.label)
		}
		if field.Type != tc.fieldTyp {
			t.Errorf("field %s: type %q, want %q", tc.id, field.Type, tc.fieldTyp)
		}
		if field.Required != tc.required {
			t.Errorf("field %s: required %v, want %v", tc.id, field.Required, tc.required)
		}
	}

	rating, _, _ := doc.Field("rating")
	if len(rating.Options) != 3 || rating.Options[0] != "Hot" {
		t.Fatalf("enum options not carried over: %v", rating.Options)
	}
}

func TestFromData_NestedNameCollision(t *testing.T) {
	spec := `
openapi: 3.0.3
info:
  title: CRM
  version: 1.0.0
paths: {}
components:
  schemas:
    Account:
      type: object
      properties:
        phone:
          type: string
        billing:
          type: object
          properties:
            phone:
              type: string
`
	doc, err := FromData(context.Background(), []byte(spec), "Account")
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	if _, _, err := doc.Field("phone"); err != nil {
		t.Fatalf("top-level field missing: %v", err)
	}
	if _, _, err := doc.Field("billing_phone"); err != nil {
		t.Fatalf("nested field not namespaced: %v", err)
	}
}

func TestFromData_UnknownComponent(t *testing.T) {
	_, err := FromData(context.Background(), []byte(accountSpec), "Contact")
	if !errors.Is(err, layout.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFromData_EmptyPayload(t *testing.T) {
	_, err := FromData(context.Background(), nil, "Account")
	if !errors.Is(err, layout.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestFromData_MissingComponentName(t *testing.T) {
	_, err := FromData(context.Background(), []byte(accountSpec), "")
	if !errors.Is(err, layout.ErrInvalidOperation) {
		t.Fatalf("expected ErrInvalidOperation, got %v", err)
	}
}

func TestFromData_SectionTitleOverride(t *testing.T) {
	doc, err := FromData(context.Background(), []byte(accountSpec), "Account", WithSectionTitle("Core Details"))
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	if doc.Sections()[0].Title != "Core Details" {
		t.Fatalf("section title override ignored: %q", doc.Sections()[0].Title)
	}
}
