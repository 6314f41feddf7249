package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitList(t *testing.T) {
	if diff := cmp.Diff([]string{"vanilla", "json"}, splitList(" vanilla, ,json ")); diff != "" {
		t.Fatalf("split mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{""}, splitList("")); diff != "" {
		t.Fatalf("expected default renderer placeholder (-want +got):\n%s", diff)
	}
}

func TestBuildLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", ""} {
		if _, err := buildLogger(level); err != nil {
			t.Fatalf("level %q: %v", level, err)
		}
	}
	if _, err := buildLogger("loud"); err == nil {
		t.Fatalf("expected unknown level to fail")
	}
}

func writeContent(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "compare.yaml")
	content := "title: Splendor+ vs HF Deluxe\n" +
		"specs:\n" +
		"  - label: Height (mm)\n    leftValue: \"1052\"\n    rightValue: \"1045\"\n" +
		"  - label: Weight\n    leftValue: 112 kg\n    rightValue: 110 kg\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write content: %v", err)
	}
	return path
}

func TestSpecsCommand(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"specs", "--tab", "weight", writeContent(t)})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "Splendor+ vs HF Deluxe (shape: structured)\n" +
		"  height-mm\tHeight (mm)\t1052\t1045\n" +
		"* weight\tWeight\t112 kg\t110 kg\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderCommandWritesEachRenderer(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out", "compare")
	cmd := newRootCommand()
	cmd.SetArgs([]string{"render", "--renderer", "markdown,json", "--output", output, writeContent(t)})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	md, err := os.ReadFile(output + ".markdown")
	if err != nil {
		t.Fatalf("read markdown: %v", err)
	}
	if !strings.HasPrefix(string(md), "# Splendor+ vs HF Deluxe") {
		t.Fatalf("unexpected markdown:\n%s", md)
	}
	if _, err := os.Stat(output + ".json"); err != nil {
		t.Fatalf("expected json output: %v", err)
	}
}

func TestRenderCommandCollectsErrors(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"render", "--renderer", "pdf,vanilla,docx", writeContent(t)})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected unknown renderers to fail")
	}
	for _, name := range []string{"render pdf", "render docx"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("expected %q in %v", name, err)
		}
	}
}

func TestRenderCommandReadsStdin(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(`{"title": "From stdin", "list": ["Colour - Red - Black"]}`))
	cmd.SetArgs([]string{"render", "--renderer", "markdown", "-"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "| **Colour** | Red | Black |") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRenderCommandWithThemeFile(t *testing.T) {
	dir := t.TempDir()
	themePath := filepath.Join(dir, "sunrise.yaml")
	themeYAML := "name: sunrise\n" +
		"tokens:\n  accent: \"#e30613\"\n" +
		"assets:\n  prefix: /static/sunrise\n  files:\n    vanilla.stylesheet: css/compare.css\n" +
		"variants:\n  dark:\n    tokens:\n      accent: \"#ff5a5f\"\n"
	if err := os.WriteFile(themePath, []byte(themeYAML), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"render", "--theme-file", themePath, "--variant", "dark", writeContent(t)})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{`href="/static/sunrise/css/compare.css"`, "--accent: #ff5a5f;"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestSpecsCommandDefaultTitle(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(`{}`))
	cmd.SetArgs([]string{"specs", "--default-title", "Head to head", "-"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if diff := cmp.Diff("Head to head (shape: none)\n", out.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadThemeManifestsRequiresName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("tokens: {accent: red}\n"), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	if _, err := loadThemeManifests([]string{path}); err == nil {
		t.Fatalf("expected unnamed theme to be rejected")
	}
}

func TestErrorMessageHints(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"render", "--renderer", "tui", writeContent(t)})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected tui to be unavailable for render")
	}
	message := errorMessage(err)
	if !strings.Contains(message, "compare-cli browse") {
		t.Fatalf("expected browse hint, got %q", message)
	}
	if strings.Contains(message, "json and tui") {
		t.Fatalf("hint advertises a renderer render cannot use: %q", message)
	}

	if got := errorMessage(errors.New("boom")); got != "boom" {
		t.Fatalf("unexpected plain message %q", got)
	}
}
