package vanilla

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-compare/pkg/model"
	"github.com/goliatone/go-compare/pkg/render"
)

type panelView struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	LeftValue  string `json:"leftValue"`
	RightValue string `json:"rightValue"`
	Active     bool   `json:"active"`
}

type themeView struct {
	Name         string `json:"name,omitempty"`
	Variant      string `json:"variant,omitempty"`
	CSSVarsStyle string `json:"cssVarsStyle,omitempty"`
}

type comparisonView struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Left         model.Vehicle     `json:"left"`
	Right        model.Vehicle     `json:"right"`
	Panels       []panelView       `json:"panels"`
	BrochureURL  string            `json:"brochureUrl"`
	Shape        string            `json:"shape"`
	Theme        themeView         `json:"theme"`
	Stylesheets  []string          `json:"stylesheets"`
	InlineStyles string            `json:"inlineStyles"`
	Classes      map[string]string `json:"classes"`
}

func (r *Renderer) view(form model.ComparisonModel, options render.RenderOptions) comparisonView {
	controller := options.Controller(form)
	panels := controller.Panels()

	views := make([]panelView, len(panels))
	for idx, panel := range panels {
		entry, _ := form.Spec(panel.ID)
		views[idx] = panelView{
			ID:         panel.ID,
			Label:      panel.Label,
			LeftValue:  entry.LeftValue,
			RightValue: entry.RightValue,
			Active:     panel.Active,
		}
	}

	stylesheets := append([]string(nil), r.stylesheets...)
	if href := themeStylesheet(options.Theme); href != "" {
		stylesheets = append(stylesheets, href)
	}

	return comparisonView{
		Title:        form.Title,
		Description:  strings.TrimSpace(r.sanitizer.Sanitize(form.Description)),
		Left:         form.Left,
		Right:        form.Right,
		Panels:       views,
		BrochureURL:  form.BrochureURL,
		Shape:        string(form.SpecShape),
		Theme:        buildThemeView(options.Theme),
		Stylesheets:  stylesheets,
		InlineStyles: r.inlineCSS,
		Classes: map[string]string{
			"root":     ClassRoot.String(),
			"tabs":     ClassTabs.String(),
			"tab":      ClassTab.String(),
			"panels":   ClassPanels.String(),
			"panel":    ClassPanel.String(),
			"active":   ClassActive.String(),
			"brochure": ClassBrochure.String(),
		},
	}
}

func buildThemeView(cfg *theme.RendererConfig) themeView {
	if cfg == nil {
		return themeView{}
	}
	return themeView{
		Name:         cfg.Theme,
		Variant:      cfg.Variant,
		CSSVarsStyle: cssVarsStyle(cfg.CSSVars),
	}
}

func themeStylesheet(cfg *theme.RendererConfig) string {
	if cfg == nil || cfg.AssetURL == nil {
		return ""
	}
	return strings.TrimSpace(cfg.AssetURL(StylesheetAsset))
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(".comparison {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
