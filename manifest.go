package cssbem

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/yacobolo/cssbem/internal/bem"
)

// Manifest describes the components of one source file.
//
//	settings:
//	  prefix: ui-
//	rules:
//	  - selector: ":root"
//	    vars: [{name: gap, value: 4px}]
//	blocks:
//	  - name: card
//	    declarations: [{property: padding, var: gap}]
//	    elements:
//	      - name: header
//	    states:
//	      - name: open
type Manifest struct {
	Settings *Settings `yaml:"settings"`
	Rules    []Node    `yaml:"rules"`
	Blocks   []Node    `yaml:"blocks"`
}

// Settings overrides the naming configuration for a single manifest.
// Unset fields keep the configured value.
type Settings struct {
	Prefix            *string `yaml:"prefix"`
	ElementSeparator  *string `yaml:"element-separator"`
	ModifierSeparator *string `yaml:"modifier-separator"`
	StatePrefix       *string `yaml:"state-prefix"`
	QualifyState      *bool   `yaml:"qualify-state"`
}

// Node is a block, element, modifier, state, qualifier or plain rule.
// Which fields apply depends on the list the node appears in.
type Node struct {
	Name     string   `yaml:"name"`
	Names    []string `yaml:"names"`    // blocks only
	Selector string   `yaml:"selector"` // qualifiers and rules
	Prefix   *string  `yaml:"prefix"`   // states only
	Qualify  *bool    `yaml:"qualify"`  // states only

	Vars         []Var         `yaml:"vars"`
	Declarations []Declaration `yaml:"declarations"`

	Elements   []Node `yaml:"elements"`
	Modifiers  []Node `yaml:"modifiers"`
	States     []Node `yaml:"states"`
	Qualifiers []Node `yaml:"qualifiers"`
	Blocks     []Node `yaml:"blocks"`
}

// Var is a custom property definition.
type Var struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Declaration is a property with either a literal value or a custom property reference.
type Declaration struct {
	Property string `yaml:"property"`
	Value    string `yaml:"value"`
	Var      string `yaml:"var"` // Rendered as var(--<prefix><var>)
}

// ParseManifest decodes a YAML manifest. Unknown keys are rejected so typos
// in component definitions surface instead of silently producing nothing.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			// empty file
			return &m, nil
		}
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	return &m, nil
}

// Apply overrides the fields of naming that the settings define.
func (s *Settings) Apply(naming *bem.Config) {
	if s == nil {
		return
	}
	if s.Prefix != nil {
		naming.SelectorPrefix = *s.Prefix
	}
	if s.ElementSeparator != nil {
		naming.ElementSeparator = *s.ElementSeparator
	}
	if s.ModifierSeparator != nil {
		naming.ModifierSeparator = *s.ModifierSeparator
	}
	if s.StatePrefix != nil {
		naming.StatePrefix = *s.StatePrefix
	}
	if s.QualifyState != nil {
		naming.QualifyState = *s.QualifyState
	}
}

// Compose runs the manifest at the document level of scope.
func (m *Manifest) Compose(scope *bem.Scope) {
	for _, rule := range m.Rules {
		scope.Root(rule.Selector, rule.body)
	}
	for _, block := range m.Blocks {
		block.composeBlock(scope)
	}
}

func (n Node) composeBlock(s *bem.Scope) {
	names := n.Names
	if len(names) == 0 && n.Name != "" {
		names = []string{n.Name}
	}
	s.Block(names, n.body)
}

// body writes the node's declarations, then its nested composers in a fixed order.
func (n Node) body(s *bem.Scope) {
	for _, v := range n.Vars {
		s.Var(v.Name, v.Value)
	}
	for _, d := range n.Declarations {
		value := d.Value
		if d.Var != "" {
			value = s.UseVar(d.Var)
		}
		s.Decl(d.Property, value)
	}

	for _, e := range n.Elements {
		s.Element(e.Name, e.body)
	}
	for _, m := range n.Modifiers {
		s.Modifier(m.Name, m.body)
	}
	for _, st := range n.States {
		var opts []bem.StateOption
		if st.Prefix != nil {
			opts = append(opts, bem.WithStatePrefix(*st.Prefix))
		}
		if st.Qualify != nil {
			opts = append(opts, bem.WithQualify(*st.Qualify))
		}
		s.State(st.Name, st.body, opts...)
	}
	for _, q := range n.Qualifiers {
		s.Qualify(q.Selector, q.body)
	}
	for _, b := range n.Blocks {
		b.composeBlock(s)
	}
}
