package cssbem

import (
	"fmt"
	"strings"

	"github.com/yacobolo/cssbem/internal/bem"
)

// PropertyCategory groups related CSS properties
type PropertyCategory string

// Property categories for organizing CSS properties
const (
	CategoryTokens     PropertyCategory = "Tokens"
	CategoryLayout     PropertyCategory = "Layout"
	CategoryVisual     PropertyCategory = "Visual"
	CategoryTypography PropertyCategory = "Typography"
	CategoryEffects    PropertyCategory = "Effects"
	CategoryInternal   PropertyCategory = "Internal"
)

// categoryOrder is the order categories appear in summaries
var categoryOrder = []PropertyCategory{
	CategoryTokens,
	CategoryLayout,
	CategoryVisual,
	CategoryTypography,
	CategoryEffects,
	CategoryInternal,
}

// categoryPrefixes is checked in order; the first match wins
var categoryPrefixes = []struct {
	prefix   string
	category PropertyCategory
}{
	{"--", CategoryTokens},

	{"-webkit-", CategoryInternal},
	{"-moz-", CategoryInternal},
	{"-ms-", CategoryInternal},
	{"-o-", CategoryInternal},

	{"font", CategoryTypography},
	{"text-", CategoryTypography},
	{"line-height", CategoryTypography},
	{"letter-spacing", CategoryTypography},
	{"white-space", CategoryTypography},
	{"word-", CategoryTypography},
	{"hyphens", CategoryTypography},

	{"background", CategoryVisual},
	{"color", CategoryVisual},
	{"border", CategoryVisual},
	{"box-shadow", CategoryVisual},
	{"opacity", CategoryVisual},
	{"outline", CategoryVisual},
	{"fill", CategoryVisual},
	{"stroke", CategoryVisual},

	{"transition", CategoryEffects},
	{"transform", CategoryEffects},
	{"animation", CategoryEffects},
	{"filter", CategoryEffects},
	{"backdrop-filter", CategoryEffects},
	{"mix-blend-mode", CategoryEffects},
	{"clip-path", CategoryEffects},
	{"mask", CategoryEffects},
}

// categorizeProperty determines the category of a CSS property.
// Unknown properties are treated as layout.
func categorizeProperty(name string) PropertyCategory {
	name = strings.ToLower(name)
	for _, p := range categoryPrefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.category
		}
	}
	return CategoryLayout
}

// summarizeProperties renders the property names of decls grouped by category:
//
//	Layout: display, padding; Visual: color
//
// At most limit names are listed per category (0 means unlimited).
func summarizeProperties(decls []bem.Declaration, limit int) string {
	grouped := make(map[PropertyCategory][]string)
	seen := make(map[string]bool)

	for _, d := range decls {
		if seen[d.Property] {
			continue
		}
		seen[d.Property] = true
		cat := categorizeProperty(d.Property)
		grouped[cat] = append(grouped[cat], d.Property)
	}

	var parts []string
	for _, cat := range categoryOrder {
		names := grouped[cat]
		if len(names) == 0 {
			continue
		}
		text := strings.Join(names, ", ")
		if limit > 0 && len(names) > limit {
			text = fmt.Sprintf("%s, +%d more", strings.Join(names[:limit], ", "), len(names)-limit)
		}
		parts = append(parts, fmt.Sprintf("%s: %s", cat, text))
	}

	return strings.Join(parts, "; ")
}

// classDeclarations collects the declarations of every rule by the class it
// styles, in rule order.
func classDeclarations(sheet *bem.Stylesheet) map[string][]bem.Declaration {
	result := make(map[string][]bem.Declaration)
	for _, rule := range sheet.Rules {
		if len(rule.Declarations) == 0 {
			continue
		}
		for _, class := range rule.Classes() {
			result[class] = append(result[class], rule.Declarations...)
		}
	}
	return result
}
