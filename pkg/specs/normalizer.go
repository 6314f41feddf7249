// Package specs converts the authored representations of a comparison's
// specification section into one ordered list of entries.
//
// Representations are tried in a fixed precedence order; the first one that
// yields at least one valid row wins and lower tiers are not merged in:
//
//  1. explicit list of spec objects
//  2. grouped list (wrappers holding inner spec lists), flattened in order
//  3. table rows
//  4. delimited "label - left - right" lines
//  5. fixed flat attributes
package specs

import (
	"encoding/json"
	"reflect"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-compare/pkg/fields"
)

// Shape names the representation that produced a spec list.
type Shape string

const (
	ShapeNone       Shape = ""
	ShapeStructured Shape = "structured"
	ShapeGrouped    Shape = "grouped"
	ShapeTabular    Shape = "tabular"
	ShapeDelimited  Shape = "delimited"
	ShapeFlat       Shape = "flat"
)

type tier struct {
	shape   Shape
	extract func(n *Normalizer, section Section) []Entry
}

var tiers = []tier{
	{shape: ShapeStructured, extract: (*Normalizer).structured},
	{shape: ShapeGrouped, extract: (*Normalizer).grouped},
	{shape: ShapeTabular, extract: (*Normalizer).tabular},
	{shape: ShapeDelimited, extract: (*Normalizer).delimited},
	{shape: ShapeFlat, extract: (*Normalizer).flat},
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLogger attaches a logger for soft conditions such as malformed embedded
// spec documents.
func WithLogger(logger *zap.Logger) Option {
	return func(n *Normalizer) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithAttributes replaces the fixed attribute table used by the flat tier.
func WithAttributes(attributes ...Attribute) Option {
	return func(n *Normalizer) {
		n.attributes = append([]Attribute(nil), attributes...)
	}
}

// Normalizer resolves a Section into entries. It holds no per-call state and
// may be shared.
type Normalizer struct {
	logger     *zap.Logger
	attributes []Attribute
}

// New constructs a Normalizer with the default attribute table.
func New(options ...Option) *Normalizer {
	n := &Normalizer{
		logger:     zap.NewNop(),
		attributes: DefaultAttributes,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(n)
	}
	return n
}

// Normalize returns the entries of the highest-precedence representation that
// yields rows, with IDs assigned. The result is never nil.
func (n *Normalizer) Normalize(section Section) []Entry {
	entries, _ := n.NormalizeShape(section)
	return entries
}

// NormalizeShape is Normalize but also reports which representation won.
func (n *Normalizer) NormalizeShape(section Section) ([]Entry, Shape) {
	if n == nil {
		n = New()
	}
	for _, t := range tiers {
		entries := t.extract(n, section)
		if len(entries) == 0 {
			continue
		}
		n.logger.Debug("spec section resolved",
			zap.String("shape", string(t.shape)),
			zap.Int("entries", len(entries)),
		)
		return AssignIDs(entries), t.shape
	}
	return []Entry{}, ShapeNone
}

func (n *Normalizer) structured(section Section) []Entry {
	var out []Entry
	for _, item := range n.list(section.Items) {
		obj, ok := asObject(item)
		if !ok || isGroup(obj) {
			continue
		}
		if entry := entryFromObject(obj); entry.Valid() {
			out = append(out, entry)
		}
	}
	return out
}

func (n *Normalizer) grouped(section Section) []Entry {
	var out []Entry
	for _, source := range []any{section.Groups, section.Items} {
		for _, item := range n.list(source) {
			group, ok := asObject(item)
			if !ok {
				continue
			}
			inner, ok := fields.Lookup(group, GroupItemKeys)
			if !ok {
				continue
			}
			for _, child := range n.list(inner) {
				obj, ok := asObject(child)
				if !ok {
					continue
				}
				if entry := entryFromObject(obj); entry.Valid() {
					out = append(out, entry)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return out
}

func (n *Normalizer) tabular(section Section) []Entry {
	var out []Entry
	for _, row := range n.list(section.Rows) {
		cells := texts(row)
		var entry Entry
		switch {
		case len(cells) >= 3:
			entry = newEntry(cells[1], cells[0], cells[2])
		case len(cells) == 2:
			entry = newEntry(cells[0], cells[1], "")
		default:
			continue
		}
		if entry.Valid() {
			out = append(out, entry)
		}
	}
	return out
}

var lineSeparator = regexp.MustCompile(`\s*[-–—:]\s*`)

func (n *Normalizer) delimited(section Section) []Entry {
	var lines []string
	if text, ok := section.Lines.(string); ok {
		lines = strings.Split(text, "\n")
	} else {
		lines = texts(section.Lines)
	}

	var out []Entry
	for _, line := range lines {
		parts := lineSeparator.Split(strings.TrimSpace(line), -1)
		if len(parts) < 3 {
			continue
		}
		if entry := newEntry(parts[0], parts[1], parts[2]); entry.Valid() {
			out = append(out, entry)
		}
	}
	return out
}

func (n *Normalizer) flat(section Section) []Entry {
	if len(section.Flat) == 0 {
		return nil
	}
	var out []Entry
	for _, attr := range n.attributes {
		left := fields.String(section.Flat, attr.keys("left"), "")
		right := fields.String(section.Flat, attr.keys("right"), "")
		if strings.TrimSpace(left) == "" && strings.TrimSpace(right) == "" {
			continue
		}
		out = append(out, newEntry(attr.label(), left, right))
	}
	return out
}

// list turns a raw representation into a slice of elements. Strings are
// treated as embedded JSON documents; a document that does not parse is
// logged and contributes nothing.
func (n *Normalizer) list(raw any) []any {
	switch typed := raw.(type) {
	case nil:
		return nil
	case []any:
		return typed
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" || !(strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{")) {
			return nil
		}
		var decoded any
		if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
			n.logger.Debug("malformed structured spec data", zap.Error(err))
			return nil
		}
		if obj, ok := decoded.(map[string]any); ok {
			// A single wrapper document, e.g. {"specs": [...]}.
			if inner, ok := fields.Lookup(obj, ListKeys); ok {
				return n.list(inner)
			}
			return []any{obj}
		}
		return n.list(decoded)
	}

	v := reflect.ValueOf(raw)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil
	}
	out := make([]any, v.Len())
	for i := range out {
		out[i] = v.Index(i).Interface()
	}
	return out
}

func entryFromObject(obj map[string]any) Entry {
	return newEntry(
		fields.String(obj, LabelKeys, ""),
		fields.String(obj, LeftValueKeys, ""),
		fields.String(obj, RightValueKeys, ""),
	)
}

func isGroup(obj map[string]any) bool {
	inner, ok := fields.Lookup(obj, GroupItemKeys)
	if !ok {
		return false
	}
	v := reflect.ValueOf(inner)
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

func asObject(value any) (map[string]any, bool) {
	switch typed := value.(type) {
	case map[string]any:
		return typed, true
	case map[string]string:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[k] = v
		}
		return out, true
	default:
		return nil, false
	}
}

// texts converts a sequence of scalars into strings. Non-sequence input
// yields nil.
func texts(raw any) []string {
	switch typed := raw.(type) {
	case nil:
		return nil
	case []string:
		return typed
	}
	v := reflect.ValueOf(raw)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil
	}
	out := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		text, _ := fields.Text(v.Index(i).Interface())
		out = append(out, strings.TrimSpace(text))
	}
	return out
}
