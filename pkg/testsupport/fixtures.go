package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-compare/pkg/loader"
	pkgmodel "github.com/goliatone/go-compare/pkg/model"
)

// LoadContent reads an authored content fixture (JSON or YAML). Testing
// helpers fail the test on error to keep contract tests concise.
func LoadContent(t *testing.T, path string) map[string]any {
	t.Helper()

	content, err := LoadContentFromPath(path)
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	return content
}

// LoadContentFromPath returns decoded content without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadContentFromPath(path string) (map[string]any, error) {
	if path == "" {
		return nil, errors.New("testsupport: content path is required")
	}
	content, err := loader.New().Load(context.Background(), path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: load content: %w", err)
	}
	return content, nil
}

// MustLoadComparisonModel loads a JSON golden file into a ComparisonModel.
func MustLoadComparisonModel(t *testing.T, path string) pkgmodel.ComparisonModel {
	t.Helper()

	form, err := LoadComparisonModel(path)
	if err != nil {
		t.Fatalf("load comparison model: %v", err)
	}
	return form
}

// LoadComparisonModel reads a JSON fixture into a ComparisonModel, returning
// an error for callers managing setup outside of *testing.T.
func LoadComparisonModel(path string) (pkgmodel.ComparisonModel, error) {
	if path == "" {
		return pkgmodel.ComparisonModel{}, errors.New("testsupport: comparison model path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pkgmodel.ComparisonModel{}, fmt.Errorf("testsupport: read comparison model: %w", err)
	}
	var out pkgmodel.ComparisonModel
	if err := json.Unmarshal(data, &out); err != nil {
		return pkgmodel.ComparisonModel{}, fmt.Errorf("testsupport: unmarshal comparison model: %w", err)
	}
	if out.Specs == nil {
		out.Specs = []pkgmodel.SpecEntry{}
	}
	return out, nil
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
