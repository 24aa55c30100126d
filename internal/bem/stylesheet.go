package bem

// Declaration is a single property: value pair.
type Declaration struct {
	Property string
	Value    string
}

// String renders the declaration as it appears inside a rule.
func (d Declaration) String() string {
	return d.Property + ": " + d.Value + ";"
}

// Rule is a flat style rule. Rules never nest: every composer emits at the
// top level of the stylesheet.
type Rule struct {
	Selectors    SelectorList
	Declarations []Declaration
}

// Classes returns the rightmost class of each selector, skipping selectors
// that end without one.
func (r *Rule) Classes() []string {
	var result []string
	for _, sel := range r.Selectors {
		_, last := splitLastCompound(sel)
		if c, ok := ParseCompound(last); ok {
			if class := c.LastClass(); class != "" {
				result = appendUnique(result, class)
			}
		}
	}
	return result
}

// Stylesheet collects the rules emitted during one composition.
type Stylesheet struct {
	Rules    []*Rule
	Classes  []string // Class names composed, in first-seen order
	Warnings []string

	seen map[string]bool
}

// NewStylesheet creates an empty stylesheet.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{seen: make(map[string]bool)}
}

func (s *Stylesheet) addRule(selectors SelectorList) *Rule {
	rule := &Rule{Selectors: selectors}
	s.Rules = append(s.Rules, rule)
	return rule
}

func (s *Stylesheet) addClass(name string) {
	if name == "" {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	if s.seen[name] {
		return
	}
	s.seen[name] = true
	s.Classes = append(s.Classes, name)
}

// Find returns the first rule whose selector list renders as selector.
func (s *Stylesheet) Find(selector string) *Rule {
	for _, rule := range s.Rules {
		if rule.Selectors.String() == selector {
			return rule
		}
	}
	return nil
}

// Selectors lists the rendered selector of every rule, including empty ones.
func (s *Stylesheet) Selectors() []string {
	result := make([]string, 0, len(s.Rules))
	for _, rule := range s.Rules {
		result = append(result, rule.Selectors.String())
	}
	return result
}

// String renders the stylesheet in the expanded style.
func (s *Stylesheet) String() string {
	return Render(s, StyleExpanded)
}
