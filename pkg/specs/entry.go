package specs

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
)

// DefaultID is the slug base used for entries whose label yields no
// alphanumeric characters.
const DefaultID = "spec"

// Entry is one labelled left/right comparison row.
type Entry struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	LeftValue  string `json:"leftValue"`
	RightValue string `json:"rightValue"`
}

// Valid reports whether the row carries any content.
func (e Entry) Valid() bool {
	return e.Label != "" || e.LeftValue != "" || e.RightValue != ""
}

func newEntry(label, left, right string) Entry {
	return Entry{
		Label:      strings.TrimSpace(label),
		LeftValue:  strings.TrimSpace(left),
		RightValue: strings.TrimSpace(right),
	}
}

var (
	separatorRuns = regexp.MustCompile(`[-_]+`)
	symbolRuns    = regexp.MustCompile(`[^\p{L}\p{N}]+`)
)

// Slugify derives a lower-cased, selector-safe identifier from label. Runs of
// non-alphanumeric characters collapse into a single "-"; symbols are dropped
// before transliteration so "&" or "@" never become words.
func Slugify(label string) string {
	out := slug.Make(symbolRuns.ReplaceAllString(label, " "))
	out = separatorRuns.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// AssignIDs returns a copy of entries with IDs derived from their labels.
// Colliding slugs receive numeric suffixes (colour, colour-2, ...) so IDs stay
// unique within one list.
func AssignIDs(entries []Entry) []Entry {
	if len(entries) == 0 {
		return []Entry{}
	}
	out := make([]Entry, len(entries))
	used := make(map[string]struct{}, len(entries))
	for idx, entry := range entries {
		base := Slugify(entry.Label)
		if base == "" {
			base = DefaultID
		}
		id := base
		for n := 2; ; n++ {
			if _, taken := used[id]; !taken {
				break
			}
			id = base + "-" + strconv.Itoa(n)
		}
		used[id] = struct{}{}
		entry.ID = id
		out[idx] = entry
	}
	return out
}
