package vanilla

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// StylesheetAssetKey names the manifest asset holding the editor stylesheet.
const StylesheetAssetKey = "parameditor.stylesheet"

type themeView struct {
	Name       string            `json:"name"`
	Variant    string            `json:"variant"`
	CSSVars    map[string]string `json:"cssVars"`
	Style      string            `json:"style"`
	Stylesheet string            `json:"stylesheet"`
}

func (r *Renderer) resolveTheme() (themeView, error) {
	if r.themeSelector == nil {
		return themeView{}, nil
	}
	selection, err := r.themeSelector.Select(r.themeName, r.themeVariant)
	if err != nil {
		return themeView{}, fmt.Errorf("vanilla renderer: select theme %q: %w", r.themeName, err)
	}
	if selection == nil || selection.Manifest == nil {
		return themeView{}, nil
	}
	return buildThemeView(selection), nil
}

func buildThemeView(selection *theme.Selection) themeView {
	manifest := selection.Manifest

	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	prefix := manifest.Assets.Prefix
	files := make(map[string]string, len(manifest.Assets.Files))
	for key, value := range manifest.Assets.Files {
		files[key] = value
	}

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
		if variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
		for key, value := range variant.Assets.Files {
			files[key] = value
		}
	}

	view := themeView{
		Name:    selection.Theme,
		Variant: selection.Variant,
		CSSVars: make(map[string]string, len(tokens)),
	}
	for key, value := range tokens {
		view.CSSVars["--"+key] = value
	}
	view.Style = cssVarsStyle(view.CSSVars)
	if file := files[StylesheetAssetKey]; file != "" {
		view.Stylesheet = assetURL(prefix, file)
	}
	return view
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

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+vars[key])
	}
	return strings.Join(parts, "; ")
}

func assetURL(prefix, file string) string {
	if prefix == "" || strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
		return file
	}
	return strings.TrimRight(prefix, "/") + "/" + file
}
