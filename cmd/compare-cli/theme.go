package main

import (
	"fmt"
	"os"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// themeFile is the on-disk shape accepted by --theme-file.
//
//	name: sunrise
//	tokens: {accent: "#e30613"}
//	assets: {prefix: /static/sunrise, files: {vanilla.stylesheet: css/compare.css}}
//	variants:
//	  dark: {tokens: {accent: "#ff5a5f"}}
type themeFile struct {
	Name     string                      `yaml:"name"`
	Version  string                      `yaml:"version"`
	Tokens   map[string]string           `yaml:"tokens"`
	Assets   themeAssets                 `yaml:"assets"`
	Variants map[string]themeVariantFile `yaml:"variants"`
}

type themeAssets struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

type themeVariantFile struct {
	Tokens map[string]string `yaml:"tokens"`
	Assets themeAssets       `yaml:"assets"`
}

func loadThemeManifests(paths []string) ([]*theme.Manifest, error) {
	manifests := make([]*theme.Manifest, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read theme file: %w", err)
		}
		var file themeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("decode theme file %s: %w", path, err)
		}
		if file.Name == "" {
			return nil, fmt.Errorf("theme file %s: name is required", path)
		}
		manifests = append(manifests, file.manifest())
	}
	return manifests, nil
}

func (f themeFile) manifest() *theme.Manifest {
	variants := make(map[string]theme.Variant, len(f.Variants))
	for name, variant := range f.Variants {
		variants[name] = theme.Variant{
			Tokens: variant.Tokens,
			Assets: theme.Assets{Prefix: variant.Assets.Prefix, Files: variant.Assets.Files},
		}
	}
	return &theme.Manifest{
		Name:     f.Name,
		Version:  f.Version,
		Tokens:   f.Tokens,
		Assets:   theme.Assets{Prefix: f.Assets.Prefix, Files: f.Assets.Files},
		Variants: variants,
	}
}
