package bem

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// SelectorList is a comma separated group of complex selectors.
// Each entry is kept as text so separators can be appended verbatim.
type SelectorList []string

// String joins the list the way it is written in a rule prelude.
func (l SelectorList) String() string {
	return strings.Join(l, ", ")
}

// Compact joins the list without whitespace after commas.
func (l SelectorList) Compact() string {
	return strings.Join(l, ",")
}

// Append concatenates suffix onto every selector of the list.
func (l SelectorList) Append(suffix string) SelectorList {
	result := make(SelectorList, 0, len(l))
	for _, sel := range l {
		result = append(result, sel+suffix)
	}
	return result
}

// ParseSelectorList splits text on top-level commas.
// Commas inside parentheses, brackets or strings do not split.
func ParseSelectorList(text string) SelectorList {
	var result SelectorList
	depth := 0
	var quote byte
	prev := 0

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(' || c == '[':
			depth++
		case c == ')' || c == ']':
			if depth > 0 {
				depth--
			}
		case c == ',' && depth == 0:
			result = append(result, strings.TrimSpace(text[prev:i]))
			prev = i + 1
		}
	}

	return append(result, strings.TrimSpace(text[prev:]))
}

// Compound is the structured form of a compound selector such as
// "button.large:hover::before".
type Compound struct {
	Tag           string   // "button", "*" or ""
	Simples       []string // ".large", "#main", "[type=text]", ":hover" in source order
	PseudoElement string   // "::before"
}

// legacyPseudoElements may be written with a single colon.
var legacyPseudoElements = map[string]bool{
	"before":       true,
	"after":        true,
	"first-line":   true,
	"first-letter": true,
}

// ParseCompound tokenizes a compound selector.
// It reports false for anything it cannot model: combinators, namespaces,
// nesting references or tokens that do not belong in a selector.
func ParseCompound(text string) (Compound, bool) {
	var c Compound
	text = strings.TrimSpace(text)
	if text == "" {
		return c, false
	}

	lexer := css.NewLexer(parse.NewInputString(text))
	first := true

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			// EOF is the only error the lexer reports for selector text
			break
		}
		if c.PseudoElement != "" {
			// nothing may follow a pseudo-element except user-action pseudos,
			// which are not modelled
			return c, false
		}

		switch tt {
		case css.IdentToken:
			if !first {
				return c, false
			}
			c.Tag = string(data)

		case css.HashToken:
			c.Simples = append(c.Simples, string(data))

		case css.DelimToken:
			switch string(data) {
			case "*":
				if !first {
					return c, false
				}
				c.Tag = "*"
			case ".":
				tt2, name := lexer.Next()
				if tt2 != css.IdentToken {
					return c, false
				}
				c.Simples = append(c.Simples, "."+string(name))
			default:
				return c, false
			}

		case css.LeftBracketToken:
			attr, ok := consumeBlock(lexer, "[", css.LeftBracketToken, css.RightBracketToken)
			if !ok {
				return c, false
			}
			c.Simples = append(c.Simples, attr)

		case css.ColonToken:
			pseudo, isElement, ok := consumePseudo(lexer)
			if !ok {
				return c, false
			}
			if isElement {
				c.PseudoElement = pseudo
			} else {
				c.Simples = append(c.Simples, pseudo)
			}

		default:
			return c, false
		}
		first = false
	}

	return c, true
}

// consumePseudo reads the remainder of a pseudo-class or pseudo-element after the first colon.
func consumePseudo(lexer *css.Lexer) (string, bool, bool) {
	tt, data := lexer.Next()
	doubleColon := false
	if tt == css.ColonToken {
		doubleColon = true
		tt, data = lexer.Next()
	}

	var name string
	switch tt {
	case css.IdentToken:
		name = string(data)
	case css.FunctionToken:
		rest, ok := consumeBlock(lexer, "", css.LeftParenthesisToken, css.RightParenthesisToken)
		if !ok {
			return "", false, false
		}
		name = string(data) + rest
	default:
		return "", false, false
	}

	if doubleColon || legacyPseudoElements[strings.ToLower(name)] {
		return "::" + name, true, true
	}
	return ":" + name, false, true
}

// consumeBlock reads tokens until the closing token that balances an already consumed opener.
func consumeBlock(lexer *css.Lexer, opening string, open, closing css.TokenType) (string, bool) {
	var b strings.Builder
	b.WriteString(opening)
	depth := 1

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			return "", false
		}
		// function tokens carry their own opening parenthesis
		if tt == open || (open == css.LeftParenthesisToken && tt == css.FunctionToken) {
			depth++
		} else if tt == closing {
			depth--
		}
		b.Write(data)
		if depth == 0 {
			return b.String(), true
		}
	}
}

// String renders the compound with the type selector first and the
// pseudo-element last.
func (c Compound) String() string {
	var b strings.Builder
	if c.Tag != "" && (c.Tag != "*" || (len(c.Simples) == 0 && c.PseudoElement == "")) {
		b.WriteString(c.Tag)
	}
	for _, s := range c.Simples {
		b.WriteString(s)
	}
	b.WriteString(c.PseudoElement)
	return b.String()
}

// LastClass returns the last class selector of the compound without its dot.
func (c Compound) LastClass() string {
	for i := len(c.Simples) - 1; i >= 0; i-- {
		if strings.HasPrefix(c.Simples[i], ".") {
			return c.Simples[i][1:]
		}
	}
	return ""
}

// splitLastCompound separates a complex selector into everything up to and
// including its last combinator, and its rightmost compound selector.
func splitLastCompound(selector string) (head, last string) {
	lexer := css.NewLexer(parse.NewInputString(selector))
	pos := 0
	cut := 0
	depth := 0

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		pos += len(data)

		switch tt {
		case css.LeftParenthesisToken, css.LeftBracketToken, css.FunctionToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}
		}
		if depth > 0 {
			continue
		}

		isCombinator := tt == css.WhitespaceToken
		if tt == css.DelimToken {
			switch string(data) {
			case ">", "+", "~":
				isCombinator = true
			}
		}

		if isCombinator {
			cut = pos
		}
	}

	if cut >= len(selector) {
		// trailing combinator: nothing to split off
		return selector, ""
	}
	return selector[:cut], selector[cut:]
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
