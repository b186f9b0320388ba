package html

// ChromeClass is a typed identifier for the semantic CSS classes the page
// template emits.
type ChromeClass string

const (
	ClassPage        ChromeClass = "layoutmock-page"
	ClassHeader      ChromeClass = "layoutmock-header"
	ClassSection     ChromeClass = "layoutmock-section"
	ClassSectionHead ChromeClass = "layoutmock-section-header"
	ClassGrid        ChromeClass = "layoutmock-grid"
	ClassField       ChromeClass = "layoutmock-field"
	ClassFieldLabel  ChromeClass = "layoutmock-field-label"
	ClassFieldValue  ChromeClass = "layoutmock-field-value"
	ClassHiddenField ChromeClass = "layoutmock-field-hidden"
	ClassHiddenPanel ChromeClass = "layoutmock-hidden-panel"
	ClassControls    ChromeClass = "layoutmock-controls"
)
