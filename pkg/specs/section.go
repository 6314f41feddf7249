package specs

import "github.com/goliatone/go-compare/pkg/fields"

// Candidate keys, newest spelling first.
var (
	LabelKeys      = fields.Keys{"label", "spec-label", "spec_label", "specLabel", "name", "title"}
	LeftValueKeys  = fields.Keys{"leftValue", "left-value", "left_value", "left-bike-value", "left_bike_value", "leftBikeValue"}
	RightValueKeys = fields.Keys{"rightValue", "right-value", "right_value", "right-bike-value", "right_bike_value", "rightBikeValue"}

	ListKeys      = fields.Keys{"specs", "comparisonItems", "comparison-items", "comparison_items", "children"}
	GroupKeys     = fields.Keys{"specGroups", "spec-groups", "spec_groups", "groups", "categories"}
	GroupItemKeys = fields.Keys{"specs", "items", "children", "entries"}
	RowKeys       = fields.Keys{"rows", "table"}
	LineKeys      = fields.Keys{"lines", "list"}
)

// Section carries every authored representation of the specifications that
// was found for one widget. Any field may be nil.
type Section struct {
	// Items is an explicit list of spec objects, a list of group wrappers, or
	// a JSON document encoding either.
	Items any
	// Groups is a list of group wrappers each holding an inner spec list.
	Groups any
	// Rows is a table: a sequence of rows, each a sequence of cell texts.
	Rows any
	// Lines is a sequence of delimited "label - left - right" texts.
	Lines any
	// Flat holds fixed scalar attributes (leftEngine, right-engine, ...).
	Flat map[string]any
}

// SectionFrom collects the specification representations stored in an
// authored payload.
func SectionFrom(source map[string]any) Section {
	section := Section{Flat: source}
	if len(source) == 0 {
		return section
	}
	section.Items, _ = fields.Lookup(source, ListKeys)
	section.Groups, _ = fields.Lookup(source, GroupKeys)
	section.Rows, _ = fields.Lookup(source, RowKeys)
	section.Lines, _ = fields.Lookup(source, LineKeys)
	return section
}

// Empty reports whether no representation is present.
func (s Section) Empty() bool {
	return s.Items == nil && s.Groups == nil && s.Rows == nil && s.Lines == nil && len(s.Flat) == 0
}
