// Package imageref normalises heterogeneous image references (plain text,
// lists, asset wrappers emitted by different authoring tools) into a single
// reference string.
package imageref

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/goliatone/go-compare/pkg/fields"
)

// maxDepth bounds recursion through nested sequences and asset wrappers.
const maxDepth = 8

// Probe keys for structured references, checked in this order.
var (
	PathKeys   = fields.Keys{"_path", "path"}
	SourceKeys = fields.Keys{"src", "source"}
	AssetKeys  = fields.Keys{"asset"}
	URLKeys    = fields.Keys{"url", "href", "_publishUrl"}
	IDKeys     = fields.Keys{"id", "_id"}
)

// Shape identifies which reference form a value was recognised as.
type Shape string

const (
	ShapeText     Shape = "text"
	ShapeSequence Shape = "sequence"
	ShapeObject   Shape = "object"
	ShapeUnknown  Shape = "unknown"
)

type rule struct {
	shape   Shape
	match   func(reflect.Value) bool
	resolve func(r *Resolver, v reflect.Value, depth int) string
}

// rules is the ordered dispatch table. Supporting another legacy form means
// adding one entry here.
var rules []rule

func init() {
	rules = []rule{
		{
			shape:   ShapeText,
			match:   func(v reflect.Value) bool { return v.Kind() == reflect.String },
			resolve: func(_ *Resolver, v reflect.Value, _ int) string { return v.String() },
		},
		{
			shape: ShapeSequence,
			match: func(v reflect.Value) bool {
				return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
			},
			resolve: func(r *Resolver, v reflect.Value, depth int) string {
				if v.Len() == 0 {
					return ""
				}
				return r.resolve(v.Index(0).Interface(), depth+1)
			},
		},
		{
			shape: ShapeObject,
			match: func(v reflect.Value) bool {
				return v.Kind() == reflect.Map && v.Type().Key().Kind() == reflect.String
			},
			resolve: func(r *Resolver, v reflect.Value, depth int) string {
				return r.resolveObject(toObject(v), depth)
			},
		},
	}
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger attaches a logger used to report references that match no known
// shape.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Resolver turns arbitrary reference values into a reference string. It is
// total: every input yields a string, malformed input yields "".
type Resolver struct {
	logger *zap.Logger
}

// New constructs a Resolver.
func New(options ...Option) *Resolver {
	r := &Resolver{logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

var defaultResolver = New()

// Resolve resolves value with a resolver that does not log.
func Resolve(value any) string {
	return defaultResolver.Resolve(value)
}

// Resolve returns the reference held by value or "" when no known shape
// matches.
func (r *Resolver) Resolve(value any) string {
	if r == nil {
		return defaultResolver.Resolve(value)
	}
	out := r.resolve(value, 0)
	if out == "" && value != nil && Classify(value) != ShapeText {
		r.logger.Debug("unresolvable image reference",
			zap.String("shape", string(Classify(value))),
			zap.String("type", fmt.Sprintf("%T", value)),
		)
	}
	return out
}

// Classify reports the shape value would be resolved as.
func Classify(value any) Shape {
	v, ok := indirect(value)
	if !ok {
		return ShapeUnknown
	}
	for _, entry := range rules {
		if entry.match(v) {
			return entry.shape
		}
	}
	return ShapeUnknown
}

func (r *Resolver) resolve(value any, depth int) string {
	if depth > maxDepth {
		return ""
	}
	v, ok := indirect(value)
	if !ok {
		return ""
	}
	for _, entry := range rules {
		if entry.match(v) {
			return entry.resolve(r, v, depth)
		}
	}
	return ""
}

func (r *Resolver) resolveObject(obj map[string]any, depth int) string {
	if ref := fields.String(obj, PathKeys, ""); ref != "" {
		return ref
	}
	if ref := fields.String(obj, SourceKeys, ""); ref != "" {
		return ref
	}
	if asset, ok := fields.Lookup(obj, AssetKeys); ok {
		if ref := r.resolveAsset(asset, depth); ref != "" {
			return ref
		}
	}
	if ref := fields.String(obj, URLKeys, ""); ref != "" {
		return ref
	}
	return fields.String(obj, IDKeys, "")
}

func (r *Resolver) resolveAsset(asset any, depth int) string {
	v, ok := indirect(asset)
	if !ok {
		return ""
	}
	switch {
	case v.Kind() == reflect.String:
		return r.resolve(v.String(), depth+1)
	case v.Kind() == reflect.Map && v.Type().Key().Kind() == reflect.String:
		return fields.String(toObject(v), PathKeys, "")
	default:
		return ""
	}
}

func indirect(value any) (reflect.Value, bool) {
	if value == nil {
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}

func toObject(v reflect.Value) map[string]any {
	if obj, ok := v.Interface().(map[string]any); ok {
		return obj
	}
	out := make(map[string]any, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out
}
