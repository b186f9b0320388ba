package session

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-layoutmock/pkg/layout"
)

func newAccountSession(t *testing.T, options ...Option) *Session {
	t.Helper()

	s, err := Open("account", options...)
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	return s
}

func TestOpen_UnknownTemplate(t *testing.T) {
	_, err := Open("opportunity")
	if !errors.Is(err, layout.ErrNotFound) {
		t.Fatalf("err = %v, want layout.ErrNotFound", err)
	}
}

func TestNew_RequiresDocument(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil document")
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	a := newAccountSession(t)
	b := newAccountSession(t)

	if a.ID() == b.ID() {
		t.Fatal("sessions share an id")
	}
	if err := a.RemoveField("website"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, _, err := b.Document().Field("website"); err != nil {
		t.Fatalf("mutation leaked across sessions: %v", err)
	}
}

func TestImport_FailureLeavesDocumentUntouched(t *testing.T) {
	s := newAccountSession(t)
	before := s.Document().Snapshot()

	payload := []byte(`{
	  "objectType": "Account",
	  "sections": [{
	    "id": "info",
	    "title": "Info",
	    "fields": [
	      {"id": "dup", "label": "One"},
	      {"id": "dup", "label": "Two"}
	    ]
	  }]
	}`)

	err := s.Import(payload)
	if !errors.Is(err, layout.ErrMalformedInput) {
		t.Fatalf("err = %v, want layout.ErrMalformedInput", err)
	}
	if diff := cmp.Diff(before, s.Document().Snapshot()); diff != "" {
		t.Fatalf("document changed after failed import (-want +got):\n%s", diff)
	}
}

func TestImport_ReplacesDocumentWholesale(t *testing.T) {
	s := newAccountSession(t)

	raw, err := s.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	other := newAccountSession(t)
	if err := other.RemoveSection(other.Document().Sections()[0].ID); err != nil {
		t.Fatalf("remove section: %v", err)
	}

	if err := other.Import(raw); err != nil {
		t.Fatalf("import: %v", err)
	}
	if diff := cmp.Diff(s.Document().Snapshot(), other.Document().Snapshot()); diff != "" {
		t.Fatalf("import mismatch (-want +got):\n%s", diff)
	}
}

func TestExportRoundTripAfterMutations(t *testing.T) {
	s := newAccountSession(t)

	if err := s.SetVisibility("fax", false); err != nil {
		t.Fatalf("hide: %v", err)
	}
	if err := s.SwapFields("phone", "website"); err != nil {
		t.Fatalf("swap: %v", err)
	}
	if _, err := s.AddField("parent_hierarchy", layout.FieldSpec{Label: "Ultimate Parent", Type: layout.FieldTypeText}); err != nil {
		t.Fatalf("add field: %v", err)
	}

	raw, err := s.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	restored, err := layout.DecodeJSON(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(s.Document().Snapshot(), restored.Snapshot()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReset_ReloadsTemplate(t *testing.T) {
	s := newAccountSession(t)
	if err := s.RemoveField("website"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if err := s.Reset("account"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, _, err := s.Document().Field("website"); err != nil {
		t.Fatalf("reset did not restore template: %v", err)
	}
}

func TestMutationsAreAuditLogged(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := newAccountSession(t, WithLogger(zap.New(core)), WithID("test-session"))

	if err := s.SetVisibility("website", false); err != nil {
		t.Fatalf("hide: %v", err)
	}
	if err := s.SetVisibility("ghost", false); !errors.Is(err, layout.ErrNotFound) {
		t.Fatalf("err = %v, want layout.ErrNotFound", err)
	}

	entries := logs.FilterMessage("field visibility set").All()
	if len(entries) != 1 {
		t.Fatalf("audit entries = %d, want 1 (failed mutations are not logged)", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["session_id"] != "test-session" || ctx["field"] != "website" || ctx["visible"] != false {
		t.Fatalf("audit context = %v", ctx)
	}
}
