package html

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-layoutmock/pkg/layout"
	"github.com/goliatone/go-layoutmock/pkg/render"
)

func sampleDocument(t *testing.T) *layout.Document {
	t.Helper()

	doc := layout.New("Account")
	sec, err := doc.AddSection("Account Information")
	if err != nil {
		t.Fatalf("add section: %v", err)
	}
	specs := []layout.FieldSpec{
		{ID: "name", Label: "Account Name", Value: "Steed Standard Transport Ltd."},
		{ID: "industry", Label: "Industry", Value: "Transportation"},
		{ID: "phone", Label: "Phone", Value: "(519) 271-9924", Type: layout.FieldTypePhone},
		{ID: "website", Label: "Website", Value: "http://www.ssl.ca/", Type: layout.FieldTypeURL},
	}
	for _, spec := range specs {
		if _, err := doc.AddField(sec.ID, spec); err != nil {
			t.Fatalf("add field %s: %v", spec.ID, err)
		}
	}
	return doc
}

func renderPage(t *testing.T, doc *layout.Document, options render.RenderOptions) string {
	t.Helper()

	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := r.Render(context.Background(), doc, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRender_PreviewOmitsHiddenFields(t *testing.T) {
	doc := sampleDocument(t)
	if err := doc.SetVisibility("industry", false); err != nil {
		t.Fatalf("hide: %v", err)
	}

	page := renderPage(t, doc, render.RenderOptions{Mode: render.ModePreview})

	if !strings.Contains(page, "Account Name") || !strings.Contains(page, "Phone") {
		t.Fatal("visible fields missing from preview")
	}
	if strings.Contains(page, "Industry") {
		t.Fatal("hidden field rendered in preview mode")
	}
	if strings.Contains(page, "Swap Mode") {
		t.Fatal("design affordances rendered in preview mode")
	}
}

func TestRender_DesignShowsHiddenFieldsAndPanel(t *testing.T) {
	doc := sampleDocument(t)
	if err := doc.SetVisibility("industry", false); err != nil {
		t.Fatalf("hide: %v", err)
	}

	page := renderPage(t, doc, render.RenderOptions{Mode: render.ModeDesign})

	if !strings.Contains(page, "Industry") {
		t.Fatal("hidden field missing from design mode")
	}
	if !strings.Contains(page, string(ClassHiddenField)) {
		t.Fatal("hidden field chrome class missing")
	}
	if !strings.Contains(page, "Hidden Fields (1)") {
		t.Fatal("hidden panel missing")
	}
	if !strings.Contains(page, "Swap Mode") {
		t.Fatal("design controls missing")
	}
}

func TestRender_FormatsTypedValues(t *testing.T) {
	doc := sampleDocument(t)

	page := renderPage(t, doc, render.RenderOptions{})

	if !strings.Contains(page, `<a href="http://www.ssl.ca/"`) {
		t.Fatal("url field not rendered as anchor")
	}
	if !strings.Contains(page, `<a href="tel:5192719924">`) {
		t.Fatal("phone field not rendered as tel link")
	}
}

func TestRender_EmptyValuePlaceholder(t *testing.T) {
	doc := layout.New("Account")
	sec, _ := doc.AddSection("Info")
	if _, err := doc.AddField(sec.ID, layout.FieldSpec{ID: "fax", Label: "Fax"}); err != nil {
		t.Fatalf("add field: %v", err)
	}

	page := renderPage(t, doc, render.RenderOptions{})
	if !strings.Contains(page, ">--</div>") {
		t.Fatal("empty value placeholder missing")
	}
}

func TestRender_SanitizesValues(t *testing.T) {
	doc := layout.New("Account")
	sec, _ := doc.AddSection("Info")
	if _, err := doc.AddField(sec.ID, layout.FieldSpec{
		ID:    "tricky",
		Label: "Tricky",
		Value: `<script>alert("x")</script>plain`,
	}); err != nil {
		t.Fatalf("add field: %v", err)
	}

	page := renderPage(t, doc, render.RenderOptions{})
	if strings.Contains(page, "<script>alert") {
		t.Fatal("script tag survived sanitizing")
	}
	if !strings.Contains(page, "plain") {
		t.Fatal("text content stripped along with markup")
	}
}

func TestRender_ThemeTokensBecomeCSSVars(t *testing.T) {
	doc := sampleDocument(t)

	page := renderPage(t, doc, render.RenderOptions{
		Theme: &theme.RendererConfig{
			Theme:  "acme",
			Tokens: map[string]string{"brand": "#123456"},
			CSSVars: map[string]string{
				"--layoutmock-brand": "#123456",
			},
		},
	})

	if !strings.Contains(page, "--brand:#123456;") {
		t.Fatal("theme token not folded into CSS vars")
	}
	if !strings.Contains(page, "--layoutmock-brand:#123456;") {
		t.Fatal("explicit CSS var missing")
	}
	if !strings.Contains(page, `data-theme="acme"`) {
		t.Fatal("theme name missing from page")
	}
}

func TestRender_RequiresDocument(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := r.Render(context.Background(), nil, render.RenderOptions{}); err == nil {
		t.Fatal("expected error for nil document")
	}
}
