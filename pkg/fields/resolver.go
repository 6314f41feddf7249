// Package fields resolves logical fields from authored payloads whose key
// spellings drifted over time (hyphenated, snake_case and camelCase variants
// of the same field).
package fields

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

// Keys is an ordered list of candidate key spellings for one logical field.
// The first entry is the current canonical name, later entries are legacy
// spellings that previously authored content may still use.
type Keys []string

// Lookup returns the value stored under the first candidate key that is
// present and not nil or the empty string.
func Lookup(source map[string]any, keys Keys) (any, bool) {
	if len(source) == 0 {
		return nil, false
	}
	for _, key := range keys {
		value, ok := source[key]
		if !ok || isBlank(value) {
			continue
		}
		return value, true
	}
	return nil, false
}

// Resolve returns the first usable value for keys, or fallback when none of
// the candidates carry one.
func Resolve(source map[string]any, keys Keys, fallback any) any {
	if value, ok := Lookup(source, keys); ok {
		return value
	}
	return fallback
}

// String resolves keys to text. Scalar values (numbers, booleans) are
// formatted; composite values cannot be represented as text and are skipped so
// the next candidate gets a chance.
func String(source map[string]any, keys Keys, fallback string) string {
	if len(source) == 0 {
		return fallback
	}
	for _, key := range keys {
		value, ok := source[key]
		if !ok || isBlank(value) {
			continue
		}
		if text, ok := Text(value); ok && text != "" {
			return text
		}
	}
	return fallback
}

// Text converts a scalar payload value into its string form.
func Text(value any) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case json.Number:
		return typed.String(), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32), true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case int32:
		return strconv.FormatInt(int64(typed), 10), true
	case uint:
		return strconv.FormatUint(uint64(typed), 10), true
	case uint64:
		return strconv.FormatUint(typed, 10), true
	case bool:
		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}

// Variants expands a camelCase stem into the canonical camelCase key followed
// by its hyphenated and snake_case spellings, e.g. "leftBikeName" yields
// leftBikeName, left-bike-name, left_bike_name.
func Variants(stem string) Keys {
	stem = strings.TrimSpace(stem)
	if stem == "" {
		return nil
	}
	words := splitWords(stem)
	if len(words) < 2 {
		return Keys{stem}
	}
	return Keys{
		stem,
		strings.Join(words, "-"),
		strings.Join(words, "_"),
	}
}

// Merge concatenates candidate lists, dropping repeated spellings while
// keeping the first occurrence's position.
func Merge(lists ...Keys) Keys {
	seen := make(map[string]struct{})
	var out Keys
	for _, list := range lists {
		for _, key := range list {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, key)
		}
	}
	return out
}

func splitWords(stem string) []string {
	var (
		words   []string
		current []rune
	)
	for _, r := range stem {
		switch {
		case r == '-' || r == '_' || unicode.IsSpace(r):
			if len(current) > 0 {
				words = append(words, string(current))
				current = current[:0]
			}
		case unicode.IsUpper(r):
			if len(current) > 0 {
				words = append(words, string(current))
				current = current[:0]
			}
			current = append(current, unicode.ToLower(r))
		default:
			current = append(current, r)
		}
	}
	if len(current) > 0 {
		words = append(words, string(current))
	}
	return words
}

func isBlank(value any) bool {
	if value == nil {
		return true
	}
	if text, ok := value.(string); ok {
		return text == ""
	}
	return false
}
