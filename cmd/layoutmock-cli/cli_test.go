package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-layoutmock/pkg/layout"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTemplatesCommand(t *testing.T) {
	out, err := execute(t, "templates")
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if !strings.Contains(out, "account (default)") {
		t.Fatalf("default template not listed:\n%s", out)
	}
	if !strings.Contains(out, "contact") {
		t.Fatalf("contact template not listed:\n%s", out)
	}
}

func TestExportCommandWritesValidLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")

	if _, err := execute(t, "export", "-o", path); err != nil {
		t.Fatalf("export: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	doc, err := layout.DecodeJSON(raw)
	if err != nil {
		t.Fatalf("exported layout does not import: %v", err)
	}
	if doc.ObjectType() != "Account" {
		t.Fatalf("unexpected object type %q", doc.ObjectType())
	}
}

func TestRenderCommandToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.txt")

	if _, err := execute(t, "render", "-f", "text", "-m", "preview", "-o", path); err != nil {
		t.Fatalf("render: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read render: %v", err)
	}
	if !strings.Contains(string(raw), "Account Information") {
		t.Fatalf("rendered output missing section title:\n%s", raw)
	}
}

func TestRenderCommandRejectsUnknownMode(t *testing.T) {
	if _, err := execute(t, "render", "-m", "sideways"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestScaffoldCommand(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "api.yaml")
	outPath := filepath.Join(dir, "layout.json")

	api := `
openapi: 3.0.3
info:
  title: CRM
  version: 1.0.0
paths: {}
components:
  schemas:
    Contact:
      type: object
      properties:
        email:
          type: string
          format: email
`
	if err := os.WriteFile(specPath, []byte(api), 0o644); err != nil {
		t.Fatalf("write api file: %v", err)
	}

	if _, err := execute(t, "scaffold", specPath, "-c", "Contact", "-o", outPath); err != nil {
		t.Fatalf("scaffold: %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read scaffold: %v", err)
	}
	doc, err := layout.DecodeJSON(raw)
	if err != nil {
		t.Fatalf("scaffolded layout does not import: %v", err)
	}
	field, _, err := doc.Field("email")
	if err != nil {
		t.Fatalf("email field missing: %v", err)
	}
	if field.Type != layout.FieldTypeEmail {
		t.Fatalf("email format not mapped, got %q", field.Type)
	}
}

func TestLintCommandCleanTemplate(t *testing.T) {
	out, err := execute(t, "lint")
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if !strings.Contains(out, "no issues found") {
		t.Fatalf("unexpected lint output:\n%s", out)
	}
}

func TestThemeConfig(t *testing.T) {
	themeName = ""
	brandColor = ""
	if cfg := themeConfig(); cfg != nil {
		t.Fatal("expected nil config without theme flags")
	}

	brandColor = "#ff0000"
	defer func() { brandColor = "" }()
	cfg := themeConfig()
	if cfg == nil || cfg.CSSVars["--layoutmock-brand"] != "#ff0000" {
		t.Fatalf("brand override not applied: %+v", cfg)
	}
}
