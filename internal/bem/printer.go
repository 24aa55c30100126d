package bem

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Style selects how a stylesheet is rendered.
type Style string

const (
	// StyleExpanded writes one declaration per line with a blank line between rules.
	StyleExpanded Style = "expanded"
	// StyleCompressed writes the whole stylesheet without optional whitespace.
	StyleCompressed Style = "compressed"
)

// ParseStyle converts a style name into a Style.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "", "expanded":
		return StyleExpanded, nil
	case "compressed", "compact", "min":
		return StyleCompressed, nil
	default:
		return "", fmt.Errorf("unknown output style %q", name)
	}
}

// Printer writes stylesheets as CSS text.
type Printer struct {
	Style Style
}

// Print writes sheet to w. Rules without declarations are skipped.
func (p *Printer) Print(w io.Writer, sheet *Stylesheet) error {
	if sheet == nil {
		return nil
	}

	bw := bufio.NewWriter(w)
	written := 0

	for _, rule := range sheet.Rules {
		if len(rule.Declarations) == 0 {
			continue
		}

		if p.Style == StyleCompressed {
			bw.WriteString(rule.Selectors.Compact())
			bw.WriteByte('{')
			for i, decl := range rule.Declarations {
				if i > 0 {
					bw.WriteByte(';')
				}
				bw.WriteString(decl.Property)
				bw.WriteByte(':')
				bw.WriteString(decl.Value)
			}
			bw.WriteByte('}')
			written++
			continue
		}

		if written > 0 {
			bw.WriteString("\n")
		}
		bw.WriteString(rule.Selectors.String())
		bw.WriteString(" {\n")
		for _, decl := range rule.Declarations {
			bw.WriteString("  ")
			bw.WriteString(decl.String())
			bw.WriteByte('\n')
		}
		bw.WriteString("}\n")
		written++
	}

	return bw.Flush()
}

// Render returns sheet as CSS text in the given style.
func Render(sheet *Stylesheet, style Style) string {
	var b strings.Builder
	p := &Printer{Style: style}
	// strings.Builder never fails
	_ = p.Print(&b, sheet)
	return b.String()
}
