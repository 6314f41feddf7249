package specs

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-compare/pkg/fields"
)

// Attribute is one fixed scalar field pair (left/right) that older content
// stored directly on the block instead of inside a spec list.
type Attribute struct {
	// Stem is the camelCase attribute name, e.g. "fuelCapacity". Left and
	// right keys are derived from it (leftFuelCapacity, left-fuel-capacity,
	// left_fuel_capacity).
	Stem string
	// Label is the row label; empty derives one from Stem.
	Label string
}

// DefaultAttributes lists the fixed attributes recognised out of the box.
var DefaultAttributes = []Attribute{
	{Stem: "engine"},
	{Stem: "power"},
	{Stem: "torque"},
	{Stem: "mileage"},
	{Stem: "weight"},
	{Stem: "fuelCapacity"},
	{Stem: "topSpeed"},
	{Stem: "price"},
}

func (a Attribute) label() string {
	if label := strings.TrimSpace(a.Label); label != "" {
		return label
	}
	return Labelize(a.Stem)
}

func (a Attribute) keys(side string) fields.Keys {
	stem := strings.TrimSpace(a.Stem)
	if stem == "" {
		return nil
	}
	return fields.Variants(side + strings.ToUpper(stem[:1]) + stem[1:])
}

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// Labelize turns an attribute stem into a sentence-cased label, splitting on
// separators and camelCase boundaries ("fuelCapacity" becomes "Fuel capacity").
func Labelize(name string) string {
	if name == "" {
		return ""
	}
	var words []string
	for _, chunk := range splitWordsPattern.Split(name, -1) {
		if chunk == "" {
			continue
		}
		words = append(words, strings.Fields(splitCamel(chunk))...)
	}
	if len(words) == 0 {
		return ""
	}
	label := strings.ToLower(strings.Join(words, " "))
	return strings.ToUpper(label[:1]) + label[1:]
}

func splitCamel(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && isBoundary(input, i, r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(input string, index int, r rune) bool {
	prev := rune(input[index-1])
	return (isLower(prev) && isUpper(r)) || (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }
