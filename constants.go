package cssbem

import (
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/yacobolo/cssbem/internal/bem"
)

// ClassConstant maps a composed class name to its Go identifier
type ClassConstant struct {
	Name    string // "ui-card__header--large"
	GoName  string // "UiCardHeaderLarge"
	Comment string // "Layout: padding; Visual: color"
}

// BuildConstants converts class names to Go constants with 1:1 mapping.
// Colliding identifiers get numeric suffixes in class order.
func BuildConstants(classes []string) []ClassConstant {
	constants := make([]ClassConstant, 0, len(classes))
	for _, class := range classes {
		constants = append(constants, ClassConstant{Name: class, GoName: toGoName(class)})
	}

	// Resolve GoName collisions by adding numeric suffixes
	used := make(map[string]bool)
	for _, c := range constants {
		used[c.GoName] = true
	}
	claimed := make(map[string]bool)
	for i, c := range constants {
		if !claimed[c.GoName] {
			// First one keeps the original name
			claimed[c.GoName] = true
			continue
		}
		// Suffixed names must not shadow another class's own name
		for n := 2; ; n++ {
			candidate := fmt.Sprintf("%s%d", c.GoName, n)
			if !used[candidate] {
				used[candidate] = true
				claimed[candidate] = true
				constants[i].GoName = candidate
				break
			}
		}
	}

	return constants
}

// describeConstants sets each constant's comment to a summary of the
// declarations composed for its class.
func describeConstants(constants []ClassConstant, props map[string][]bem.Declaration, limit int) {
	for i := range constants {
		constants[i].Comment = summarizeProperties(props[constants[i].Name], limit)
	}
}

// toGoName converts a kebab/BEM class name to PascalCase
func toGoName(className string) string {
	name := strings.TrimPrefix(className, ".")

	// Split on every separator character a class may carry
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	for i, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}

	result := strings.Join(parts, "")
	if result == "" {
		return "Class"
	}
	// identifiers cannot start with a digit
	if unicode.IsDigit([]rune(result)[0]) {
		result = "C" + result
	}
	return result
}

// renderGoFile produces the formatted source of the constants file
func renderGoFile(constants []ClassConstant, packageName, source string) ([]byte, error) {
	var b strings.Builder

	b.WriteString("// Code generated by cssbem. DO NOT EDIT.\n")
	if source != "" {
		fmt.Fprintf(&b, "// Source: %s\n", source)
	}
	fmt.Fprintf(&b, "\npackage %s\n\n", packageName)

	if len(constants) > 0 {
		b.WriteString("// CSS class names composed from component manifests.\n")
		b.WriteString("const (\n")
		for _, c := range constants {
			if c.Comment != "" {
				fmt.Fprintf(&b, "\t// %s\n", c.Comment)
			}
			fmt.Fprintf(&b, "\t%s = %q\n", c.GoName, c.Name)
		}
		b.WriteString(")\n\n")
	}

	// Sorted map literal keeps diffs stable
	sorted := make([]ClassConstant, len(constants))
	copy(sorted, constants)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	b.WriteString("// AllClasses lists every generated class name.\n")
	b.WriteString("var AllClasses = map[string]bool{")
	if len(sorted) > 0 {
		b.WriteString("\n")
	}
	for _, c := range sorted {
		fmt.Fprintf(&b, "\t%q: true,\n", c.Name)
	}
	b.WriteString("}\n")

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// WriteGoFile writes the constants file to path, creating parent directories
func WriteGoFile(path, packageName, source string, constants []ClassConstant) error {
	src, err := renderGoFile(constants, packageName, source)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, src, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
