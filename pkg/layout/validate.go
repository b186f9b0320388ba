package layout

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9().\-\s]+(x[0-9]+)?$`)
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"01/02/2006",
	"Jan 2, 2006",
}

var checkboxValues = map[string]struct{}{
	"true": {}, "false": {}, "yes": {}, "no": {},
	"checked": {}, "unchecked": {}, "☐": {}, "☑": {},
}

// ValidateValue checks a value against a field type. Empty values always
// pass; whether a value is mandatory is the Required flag's concern. This is
// an explicit operation: UpdateFieldValue never runs it implicitly.
func ValidateValue(ft FieldType, value string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}

	switch ft {
	case FieldTypeURL:
		u, err := url.Parse(v)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%q is not an absolute URL", v)
		}
	case FieldTypeEmail:
		if !emailPattern.MatchString(v) {
			return fmt.Errorf("%q is not an email address", v)
		}
	case FieldTypePhone:
		if !phonePattern.MatchString(v) {
			return fmt.Errorf("%q is not a phone number", v)
		}
	case FieldTypeNumber:
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("%q is not a number", v)
		}
	case FieldTypeCurrency:
		if _, err := strconv.ParseFloat(stripCurrency(v), 64); err != nil {
			return fmt.Errorf("%q is not a currency amount", v)
		}
	case FieldTypePercentage:
		n, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		if err != nil {
			return fmt.Errorf("%q is not a percentage", v)
		}
		if n < 0 || n > 100 {
			return fmt.Errorf("percentage %v outside 0..100", n)
		}
	case FieldTypeDate:
		for _, layout := range dateLayouts {
			if _, err := time.Parse(layout, v); err == nil {
				return nil
			}
		}
		return fmt.Errorf("%q is not a date", v)
	case FieldTypeCheckbox:
		if _, ok := checkboxValues[strings.ToLower(v)]; !ok {
			return fmt.Errorf("%q is not a checkbox state", v)
		}
	}
	return nil
}

// Validate checks the field's value against its type, its Required flag, and
// its picklist options when present.
func (f *Field) Validate() error {
	v := strings.TrimSpace(f.Value)
	if v == "" {
		if f.Required {
			return fmt.Errorf("value is required")
		}
		return nil
	}
	if f.Type == FieldTypePicklist && len(f.Options) > 0 {
		for _, opt := range f.Options {
			if opt == f.Value {
				return nil
			}
		}
		return fmt.Errorf("%q is not one of the picklist options", f.Value)
	}
	return ValidateValue(f.Type, f.Value)
}

// Issue describes one field whose value failed validation.
type Issue struct {
	SectionID string
	FieldID   string
	Label     string
	Err       error
}

func (i Issue) String() string {
	label := i.Label
	if label == "" {
		label = i.FieldID
	}
	return fmt.Sprintf("%s: %v", label, i.Err)
}

// Lint validates every field value in the document and returns the issues
// found, in document order. An empty result means the document is clean.
func (d *Document) Lint() []Issue {
	var issues []Issue
	for _, s := range d.sections {
		for _, f := range s.Fields {
			if err := f.Validate(); err != nil {
				issues = append(issues, Issue{
					SectionID: s.ID,
					FieldID:   f.ID,
					Label:     f.Label,
					Err:       err,
				})
			}
		}
	}
	return issues
}

func stripCurrency(v string) string {
	v = strings.TrimSpace(v)
	for _, sym := range []string{"$", "€", "£", "¥"} {
		v = strings.TrimPrefix(v, sym)
	}
	return strings.ReplaceAll(v, ",", "")
}
