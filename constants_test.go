package cssbem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssbem/internal/bem"
)

func TestToGoName(t *testing.T) {
	tests := []struct {
		name      string
		className string
		want      string
	}{
		{name: "block", className: "ui-card", want: "UiCard"},
		{name: "element", className: "ui-card__header", want: "UiCardHeader"},
		{name: "modifier", className: "ui-card--large", want: "UiCardLarge"},
		{name: "element and modifier", className: "card__header--sticky", want: "CardHeaderSticky"},
		{name: "leading dot", className: ".btn", want: "Btn"},
		{name: "state", className: "is-open", want: "IsOpen"},
		{name: "leading digit", className: "2col", want: "C2col"},
		{name: "only separators", className: "--", want: "Class"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, toGoName(tt.className))
		})
	}
}

func TestBuildConstantsCollisions(t *testing.T) {
	constants := BuildConstants([]string{"card--large", "card", "card__large", "card-large"})

	require.Len(t, constants, 4)
	assert.Equal(t, ClassConstant{Name: "card--large", GoName: "CardLarge"}, constants[0])
	assert.Equal(t, ClassConstant{Name: "card", GoName: "Card"}, constants[1])
	assert.Equal(t, ClassConstant{Name: "card__large", GoName: "CardLarge2"}, constants[2])
	assert.Equal(t, ClassConstant{Name: "card-large", GoName: "CardLarge3"}, constants[3])
}

func TestBuildConstantsSuffixAvoidsExistingNames(t *testing.T) {
	constants := BuildConstants([]string{"a-b", "a_b", "a-b2"})

	require.Len(t, constants, 3)
	assert.Equal(t, "AB", constants[0].GoName)
	assert.Equal(t, "AB3", constants[1].GoName)
	assert.Equal(t, "AB2", constants[2].GoName)

	_, err := renderGoFile(constants, "ui", "")
	require.NoError(t, err)
}

func TestRenderGoFile(t *testing.T) {
	src, err := renderGoFile(BuildConstants([]string{"ui-card", "ui-btn"}), "ui", "web/components")
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "// Code generated by cssbem. DO NOT EDIT.")
	assert.Contains(t, out, "// Source: web/components")
	assert.Contains(t, out, "package ui")
	assert.Contains(t, out, `UiCard = "ui-card"`)
	assert.Contains(t, out, `UiBtn  = "ui-btn"`)
	// map keys are sorted
	assert.Less(t, strings.Index(out, `"ui-btn": true`), strings.Index(out, `"ui-card": true`))
}

func TestRenderGoFileNoClasses(t *testing.T) {
	src, err := renderGoFile(nil, "ui", "")
	require.NoError(t, err)

	out := string(src)
	assert.NotContains(t, out, "const (")
	assert.NotContains(t, out, "// Source:")
	assert.Contains(t, out, "var AllClasses = map[string]bool{}")
}

func TestWriteGoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "classes.gen.go")
	require.NoError(t, WriteGoFile(path, "ui", "", BuildConstants([]string{"btn"})))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `Btn = "btn"`)
}

func TestDescribeConstants(t *testing.T) {
	constants := BuildConstants([]string{"card", "card__title", "bare"})
	props := map[string][]bem.Declaration{
		"card": {
			{Property: "padding", Value: "1rem"},
			{Property: "color", Value: "red"},
		},
		"card__title": {
			{Property: "font-size", Value: "2rem"},
		},
	}

	describeConstants(constants, props, 5)

	assert.Equal(t, "Layout: padding; Visual: color", constants[0].Comment)
	assert.Equal(t, "Typography: font-size", constants[1].Comment)
	assert.Empty(t, constants[2].Comment)

	src, err := renderGoFile(constants, "ui", "")
	require.NoError(t, err)
	assert.Contains(t, string(src), "// Layout: padding; Visual: color\n\tCard")
}
