package bem

import (
	"fmt"

	"go.uber.org/zap"
)

// Scope is the composition context handed to nested contents. It carries
// the enclosing selector list and the rule declarations are added to.
type Scope struct {
	composer  *Composer
	sheet     *Stylesheet
	rule      *Rule
	selectors SelectorList
}

// Selectors returns the enclosing selector list.
func (s *Scope) Selectors() SelectorList {
	return s.selectors
}

// Composer returns the composer the scope belongs to.
func (s *Scope) Composer() *Composer {
	return s.composer
}

// Decl adds a declaration to the current rule.
func (s *Scope) Decl(property, value string) {
	s.add(Declaration{Property: property, Value: value})
}

// Var adds a custom property declaration to the current rule.
func (s *Scope) Var(name, value string) {
	s.add(s.composer.CreateVar(name, value))
}

// UseVar is a shorthand for Composer.UseVar.
func (s *Scope) UseVar(name string) string {
	return s.composer.UseVar(name)
}

func (s *Scope) add(decl Declaration) {
	if s.rule == nil {
		s.warnf("declaration %q outside of a rule dropped", decl.Property)
		return
	}
	s.rule.Declarations = append(s.rule.Declarations, decl)
}

// Block emits a rule for the prefixed class names. The enclosing selector
// is ignored: block rules always start from the document root.
func (s *Scope) Block(names []string, contents func(*Scope)) {
	list := s.composer.ClassSelector(names...)
	for _, name := range names {
		s.sheet.addClass(s.composer.config.SelectorPrefix + name)
	}
	s.emit(list, contents)
}

// B is an alias for Block.
func (s *Scope) B(names []string, contents func(*Scope)) {
	s.Block(names, contents)
}

// Element emits a rule for the enclosing selector extended with an element name.
func (s *Scope) Element(name string, contents func(*Scope)) {
	list := s.composer.ElementSelector(s.selectors, name)
	s.recordClasses(list)
	s.emit(list, contents)
}

// E is an alias for Element.
func (s *Scope) E(name string, contents func(*Scope)) {
	s.Element(name, contents)
}

// Modifier emits a rule for the enclosing selector extended with a modifier name.
func (s *Scope) Modifier(name string, contents func(*Scope)) {
	list := s.composer.ModifierSelector(s.selectors, name)
	s.recordClasses(list)
	s.emit(list, contents)
}

// M is an alias for Modifier.
func (s *Scope) M(name string, contents func(*Scope)) {
	s.Modifier(name, contents)
}

// State emits a rule for a named state of the enclosing selector.
func (s *Scope) State(name string, contents func(*Scope), opts ...StateOption) {
	list := s.composer.StateSelector(s.selectors, name, opts...)
	s.recordClasses(list)
	s.emit(list, contents)
}

// Is is an alias for State.
func (s *Scope) Is(name string, contents func(*Scope), opts ...StateOption) {
	s.State(name, contents, opts...)
}

// Qualify emits a rule for the enclosing selector unified with fragment.
// When no selector of the enclosing list can be unified, nothing is emitted
// and contents is not run.
func (s *Scope) Qualify(fragment string, contents func(*Scope)) {
	list, err := s.composer.QualifySelector(s.selectors, fragment)
	if err != nil {
		s.warnf("%v", err)
	}
	if len(list) == 0 {
		return
	}
	s.recordClasses(list)
	s.emit(list, contents)
}

// And is an alias for Qualify. Contents are forwarded unchanged.
func (s *Scope) And(fragment string, contents func(*Scope)) {
	s.Qualify(fragment, contents)
}

// Root emits a rule for an arbitrary selector at the document level,
// typically ":root" for custom property definitions.
func (s *Scope) Root(selector string, contents func(*Scope)) {
	s.emit(ParseSelectorList(selector), contents)
}

func (s *Scope) emit(list SelectorList, contents func(*Scope)) {
	rule := s.sheet.addRule(list)
	s.composer.log.Debug("Emitting rule", zap.String("selector", list.String()))

	if contents == nil {
		return
	}
	contents(&Scope{
		composer:  s.composer,
		sheet:     s.sheet,
		rule:      rule,
		selectors: list,
	})
}

// recordClasses remembers the rightmost class of every selector in list.
func (s *Scope) recordClasses(list SelectorList) {
	for _, class := range (&Rule{Selectors: list}).Classes() {
		s.sheet.addClass(class)
	}
}

func (s *Scope) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.sheet.Warnings = append(s.sheet.Warnings, msg)
	s.composer.log.Debug("Composition warning", zap.String("warning", msg))
}
