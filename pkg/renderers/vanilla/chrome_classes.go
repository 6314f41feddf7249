package vanilla

// ChromeClass is a typed identifier for the semantic CSS classes emitted by
// the comparison template.
type ChromeClass string

const (
	ClassRoot     ChromeClass = "comparison"
	ClassTabs     ChromeClass = "specs-header"
	ClassTab      ChromeClass = "spec-item"
	ClassPanels   ChromeClass = "specs-body"
	ClassPanel    ChromeClass = "specs-article"
	ClassActive   ChromeClass = "active"
	ClassBrochure ChromeClass = "more-info-wrapper"
)

func (c ChromeClass) String() string {
	return string(c)
}
