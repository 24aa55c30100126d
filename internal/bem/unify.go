package bem

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnify is returned when two selectors cannot match the same element.
var ErrUnify = errors.New("selectors cannot be unified")

// Unify merges two compound selectors into one matching elements that
// satisfy both. The type selector comes first, then the simple selectors of
// a followed by those of b that a does not already carry.
func Unify(a, b Compound) (Compound, error) {
	tag, err := unifyTag(a.Tag, b.Tag)
	if err != nil {
		return Compound{}, err
	}

	if idA, idB := firstID(a.Simples), firstID(b.Simples); idA != "" && idB != "" && idA != idB {
		return Compound{}, fmt.Errorf("%w: %s and %s", ErrUnify, idA, idB)
	}

	pseudoElement := a.PseudoElement
	if b.PseudoElement != "" {
		if pseudoElement != "" && pseudoElement != b.PseudoElement {
			return Compound{}, fmt.Errorf("%w: %s and %s", ErrUnify, a.PseudoElement, b.PseudoElement)
		}
		pseudoElement = b.PseudoElement
	}

	simples := make([]string, 0, len(a.Simples)+len(b.Simples))
	simples = append(simples, a.Simples...)
	for _, s := range b.Simples {
		simples = appendUnique(simples, s)
	}

	return Compound{Tag: tag, Simples: simples, PseudoElement: pseudoElement}, nil
}

func unifyTag(a, b string) (string, error) {
	switch {
	case a == "" || a == "*":
		if b == "" {
			return a, nil
		}
		return b, nil
	case b == "" || b == "*":
		return a, nil
	case strings.EqualFold(a, b):
		return a, nil
	default:
		return "", fmt.Errorf("%w: %s and %s", ErrUnify, a, b)
	}
}

func firstID(simples []string) string {
	for _, s := range simples {
		if strings.HasPrefix(s, "#") {
			return s
		}
	}
	return ""
}

// UnifySelector unifies a complex selector with a compound fragment.
// Only the rightmost compound of the selector takes part; the ancestors are
// kept as written. When either side cannot be modelled the fragment is
// appended as text.
func UnifySelector(selector, fragment string) (string, error) {
	frag, ok := ParseCompound(fragment)
	if !ok {
		return selector + fragment, nil
	}

	head, last := splitLastCompound(selector)
	if strings.TrimSpace(last) == "" {
		// document level or trailing combinator: the fragment stands alone
		return head + frag.String(), nil
	}

	base, ok := ParseCompound(last)
	if !ok {
		return selector + fragment, nil
	}

	unified, err := Unify(base, frag)
	if err != nil {
		return "", fmt.Errorf("unify %q with %q: %w", selector, fragment, err)
	}
	return head + unified.String(), nil
}
