package model_test

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-compare/pkg/model"
	"github.com/goliatone/go-compare/pkg/testsupport"
)

func TestBuilder_LegacyFlatGolden(t *testing.T) {
	source := testsupport.LoadContent(t, filepath.Join("testdata", "legacy_flat.yaml"))
	goldenPath := filepath.Join("testdata", "legacy_flat.model.json")

	got := model.NewBuilder().Build(source, model.Fallback{})
	testsupport.WriteGolden(t, goldenPath, got)

	want := testsupport.MustLoadComparisonModel(t, goldenPath)
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}
