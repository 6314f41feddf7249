package fragment

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-compare/pkg/model"
)

const tableFragment = `
<div class="comparison">
  <h2> Splendor+ vs HF Deluxe </h2>
  <p>Two <strong>commuters</strong> compared.</p>
  <p>Ignored second paragraph.</p>
  <img src="/media/splendor.png" alt="Splendor+">
  <img alt="no source">
  <img src="/media/deluxe.png">
  <table>
    <tr><td>1052</td><td>Height (mm)</td><td>1045</td></tr>
    <tr><th>Colour</th><td>Red</td></tr>
  </table>
  <ul><li>Weight - 112 kg - 110 kg</li></ul>
</div>`

func TestParse_ContentFallbacks(t *testing.T) {
	got, err := Parse(tableFragment)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := model.Fallback{
		Heading:         "Splendor+ vs HF Deluxe",
		DescriptionHTML: "Two <strong>commuters</strong> compared.",
		Images: []model.FallbackImage{
			{Src: "/media/splendor.png", Alt: "Splendor+"},
			{Src: "/media/deluxe.png"},
		},
		Rows: [][]string{
			{"1052", "Height (mm)", "1045"},
			{"Colour", "Red"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_ListItemsWithoutTable(t *testing.T) {
	got, err := Parse(`<ol><li> Weight - 112 kg - 110 kg </li><li></li><li>Colour: Red: Black</li></ol>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []string{"Weight - 112 kg - 110 kg", "Colour: Red: Black"}
	if diff := cmp.Diff(want, got.Lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
	if got.Rows != nil {
		t.Fatalf("expected no rows, got %v", got.Rows)
	}
}

func TestParse_DocumentAndFields(t *testing.T) {
	html := `
<div>
  <script type="application/json">{"title": "From JSON", "comparisonItems": [{"label": "Power"}]}</script>
  <div data-model-key="leftTitle"> Splendor+ </div>
  <div data-model-key="leftTitle">Duplicate</div>
  <div data-model-key="leftImage"><picture><img src="/media/left.png"></picture></div>
  <img data-model-key="rightImage" src="/media/right.png">
  <div data-model-key="empty"></div>
</div>`

	got, err := Parse(html)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Document["title"] != "From JSON" {
		t.Fatalf("unexpected document: %#v", got.Document)
	}
	wantFields := map[string]any{
		"leftTitle":  "Splendor+",
		"leftImage":  "/media/left.png",
		"rightImage": "/media/right.png",
	}
	if diff := cmp.Diff(wantFields, got.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_MalformedDocumentIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	parser := New(WithLogger(zap.New(core)))

	got, err := parser.Parse(`<script type="application/json">{"title": </script><h3>Heading</h3>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Document != nil {
		t.Fatalf("expected no document, got %#v", got.Document)
	}
	if got.Heading != "Heading" {
		t.Fatalf("expected heading fallback, got %q", got.Heading)
	}
	if logs.FilterMessage("malformed embedded document").Len() != 1 {
		t.Fatalf("expected malformed document log entry")
	}
}

func TestParse_Empty(t *testing.T) {
	got, err := Parse("")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(model.Fallback{}, got); diff != "" {
		t.Fatalf("expected zero fallback (-want +got):\n%s", diff)
	}
}
