package layout

import "testing"

func TestValidateValue(t *testing.T) {
	cases := []struct {
		name    string
		ft      FieldType
		value   string
		wantErr bool
	}{
		{"empty always passes", FieldTypeNumber, "", false},
		{"url ok", FieldTypeURL, "http://www.ssl.ca/", false},
		{"url relative", FieldTypeURL, "/accounts/1", true},
		{"url garbage", FieldTypeURL, "not a url", true},
		{"email ok", FieldTypeEmail, "ops@example.com", false},
		{"email bad", FieldTypeEmail, "ops@example", true},
		{"phone ok", FieldTypePhone, "(519) 271-9924 x230", false},
		{"phone bad", FieldTypePhone, "call me maybe", true},
		{"number ok", FieldTypeNumber, "16484517", false},
		{"number bad", FieldTypeNumber, "16,484,517", true},
		{"currency ok", FieldTypeCurrency, "$1,200.50", false},
		{"currency bad", FieldTypeCurrency, "twelve dollars", true},
		{"percentage ok", FieldTypePercentage, "18%", false},
		{"percentage range", FieldTypePercentage, "140%", true},
		{"date iso", FieldTypeDate, "2026-08-30", false},
		{"date us", FieldTypeDate, "08/30/2026", false},
		{"date bad", FieldTypeDate, "yesterday", true},
		{"checkbox ok", FieldTypeCheckbox, "☐", false},
		{"checkbox bad", FieldTypeCheckbox, "maybe", true},
		{"text anything", FieldTypeText, "PeopleNet/TMW CAD", false},
		{"textarea anything", FieldTypeTextarea, "line one\nline two", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateValue(tc.ft, tc.value)
			if tc.wantErr && err == nil {
				t.Fatalf("ValidateValue(%s, %q) = nil, want error", tc.ft, tc.value)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("ValidateValue(%s, %q) = %v", tc.ft, tc.value, err)
			}
		})
	}
}

func TestFieldValidate(t *testing.T) {
	required := &Field{ID: "x", Label: "X", Type: FieldTypeText, Required: true}
	if err := required.Validate(); err == nil {
		t.Fatal("empty required field should fail")
	}

	pick := &Field{
		ID:      "sentiment",
		Label:   "Customer Sentiment",
		Type:    FieldTypePicklist,
		Value:   "Average",
		Options: []string{"Poor", "Average", "Good"},
	}
	if err := pick.Validate(); err != nil {
		t.Fatalf("picklist: %v", err)
	}

	pick.Value = "Stellar"
	if err := pick.Validate(); err == nil {
		t.Fatal("value outside picklist options should fail")
	}
}

func TestDocumentLint(t *testing.T) {
	doc, sec := accountDocument(t)
	if _, err := doc.AddField(sec.ID, FieldSpec{ID: "website", Label: "Website", Type: FieldTypeURL, Value: "not a url"}); err != nil {
		t.Fatalf("add field: %v", err)
	}

	issues := doc.Lint()
	if len(issues) != 1 {
		t.Fatalf("issues = %d, want 1: %v", len(issues), issues)
	}
	if issues[0].FieldID != "website" || issues[0].SectionID != sec.ID {
		t.Fatalf("issue = %+v", issues[0])
	}
	if issues[0].String() == "" {
		t.Fatal("issue should render a message")
	}
}
