// Package loader reads authored comparison content from disk or an fs.FS and
// decodes it into the generic object the model builder consumes.
package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat reports a content file whose format cannot be decoded.
var ErrUnsupportedFormat = errors.New("loader: unsupported format")

// Format identifies an authored content encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Option configures a Loader.
type Option func(*Loader)

// WithFileSystem resolves paths against files instead of the operating system.
func WithFileSystem(files fs.FS) Option {
	return func(l *Loader) {
		l.fs = files
	}
}

// Loader reads content and fragment files.
type Loader struct {
	fs fs.FS
}

// New constructs a Loader.
func New(options ...Option) *Loader {
	l := &Loader{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load reads and decodes the content file at path.
func (l *Loader) Load(ctx context.Context, path string) (map[string]any, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := l.read(ctx, path)
	if err != nil {
		return nil, err
	}
	return Decode(data, format)
}

// LoadFragment reads a previously rendered markup fragment.
func (l *Loader) LoadFragment(ctx context.Context, path string) (string, error) {
	data, err := l.read(ctx, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (l *Loader) read(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("loader: path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var (
		data []byte
		err  error
	)
	if l != nil && l.fs != nil {
		data, err = fs.ReadFile(l.fs, path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}
	return data, nil
}

// Decode parses data in the given format. Empty input decodes to an empty
// object; a document whose root is not an object is rejected.
func Decode(data []byte, format Format) (map[string]any, error) {
	out := map[string]any{}
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("loader: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("loader: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}
