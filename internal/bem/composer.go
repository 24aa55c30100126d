// Package bem composes prefixed custom properties and BEM class selectors.
//
// A Composer reads its Config on every call and emits flat rules into a
// Stylesheet. Nested composers receive a Scope that carries the enclosing
// selector explicitly, so every generated rule is written at the top level
// no matter how deeply the calls are nested:
//
//	sheet := bem.NewComposer(bem.DefaultConfig(), nil).Compose(func(s *bem.Scope) {
//		s.Block([]string{"card"}, func(s *bem.Scope) {
//			s.Decl("padding", "1rem")
//			s.Element("header", func(s *bem.Scope) {
//				s.Decl("font-weight", "bold")
//			})
//			s.State("open", func(s *bem.Scope) {
//				s.Decl("display", "block")
//			})
//		})
//	})
//	// .card { padding: 1rem; }
//	// .card__header { font-weight: bold; }
//	// .card.is-open { display: block; }
package bem

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Composer builds selectors and declarations from a Config.
type Composer struct {
	config *Config
	log    *zap.Logger
}

// NewComposer creates a composer reading config. A nil config uses the
// defaults and a nil logger disables logging.
func NewComposer(config *Config, log *zap.Logger) *Composer {
	if config == nil {
		config = DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Composer{config: config, log: log.Named("composer")}
}

// Config returns the configuration the composer reads. Changes made through
// the returned pointer apply to subsequent calls.
func (c *Composer) Config() *Config {
	return c.config
}

// CreateVar builds the custom property declaration --<prefix><name>: value.
func (c *Composer) CreateVar(name, value string) Declaration {
	return Declaration{Property: "--" + c.config.SelectorPrefix + name, Value: value}
}

// UseVar builds the reference var(--<prefix><name>).
func (c *Composer) UseVar(name string) string {
	return "var(--" + c.config.SelectorPrefix + name + ")"
}

// ClassSelector prefixes each name and returns them as one selector list.
// Order and duplicates are preserved.
func (c *Composer) ClassSelector(names ...string) SelectorList {
	list := make(SelectorList, 0, len(names))
	for _, name := range names {
		list = append(list, "."+c.config.SelectorPrefix+name)
	}
	return list
}

// ElementSelector appends the element separator and name to every selector of parent.
func (c *Composer) ElementSelector(parent SelectorList, name string) SelectorList {
	return parent.Append(c.config.ElementSeparator + name)
}

// ModifierSelector appends the modifier separator and name to every selector of parent.
func (c *Composer) ModifierSelector(parent SelectorList, name string) SelectorList {
	return parent.Append(c.config.ModifierSeparator + name)
}

// StateOption overrides a state default for a single call.
type StateOption func(*stateOptions)

type stateOptions struct {
	prefix  string
	qualify bool
}

// WithStatePrefix replaces Config.StatePrefix for one state.
func WithStatePrefix(prefix string) StateOption {
	return func(o *stateOptions) {
		o.prefix = prefix
	}
}

// WithQualify replaces Config.QualifyState for one state.
func WithQualify(qualify bool) StateOption {
	return func(o *stateOptions) {
		o.qualify = qualify
	}
}

// StateSelector builds the selector for a named state of parent. Qualified
// states add a class to the enclosing compound (html.is-open); unqualified
// states extend the class name (html--is-open).
func (c *Composer) StateSelector(parent SelectorList, name string, opts ...StateOption) SelectorList {
	o := stateOptions{prefix: c.config.StatePrefix, qualify: c.config.QualifyState}
	for _, opt := range opts {
		opt(&o)
	}

	stateName := o.prefix + "-" + name
	if !o.qualify {
		return parent.Append(c.config.ModifierSeparator + stateName)
	}

	list := make(SelectorList, 0, len(parent))
	for _, sel := range parent {
		// a class never conflicts, so only the text fallback can apply here
		unified, err := UnifySelector(sel, "."+stateName)
		if err != nil {
			unified = sel + "." + stateName
		}
		list = append(list, unified)
	}
	return list
}

// QualifySelector unifies every selector of parent with every selector of
// fragment. Pairs that cannot be unified are dropped and reported in the
// returned error; the list holds the pairs that succeeded.
func (c *Composer) QualifySelector(parent SelectorList, fragment string) (SelectorList, error) {
	var list SelectorList
	var errs error

	for _, sel := range parent {
		for _, frag := range ParseSelectorList(fragment) {
			unified, err := UnifySelector(sel, frag)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			list = append(list, unified)
		}
	}

	return list, errs
}

// Compose runs contents against a fresh stylesheet and returns it.
func (c *Composer) Compose(contents func(*Scope)) *Stylesheet {
	sheet := NewStylesheet()
	c.ComposeInto(sheet, contents)
	return sheet
}

// ComposeInto runs contents at the document level of an existing stylesheet.
func (c *Composer) ComposeInto(sheet *Stylesheet, contents func(*Scope)) {
	if contents == nil {
		return
	}
	contents(c.Document(sheet))
}

// Document returns the document-level scope of sheet. It has no enclosing
// selector and no current rule.
func (c *Composer) Document(sheet *Stylesheet) *Scope {
	return &Scope{composer: c, sheet: sheet, selectors: SelectorList{""}}
}
