package bem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseVar(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		input  string
		want   string
	}{
		{name: "no prefix", prefix: "", input: "gap", want: "var(--gap)"},
		{name: "with prefix", prefix: "ui-", input: "gap", want: "var(--ui-gap)"},
		{name: "opaque name", prefix: "x", input: "a b", want: "var(--xa b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			config.SelectorPrefix = tt.prefix
			c := NewComposer(config, nil)
			assert.Equal(t, tt.want, c.UseVar(tt.input))
		})
	}
}

func TestCreateVar(t *testing.T) {
	config := DefaultConfig()
	config.SelectorPrefix = "ui-"
	c := NewComposer(config, nil)

	decl := c.CreateVar("card-pad", "1rem")
	assert.Equal(t, "--ui-card-pad", decl.Property)
	assert.Equal(t, "1rem", decl.Value)
	assert.Equal(t, "--ui-card-pad: 1rem;", decl.String())

	sheet := c.Compose(func(s *Scope) {
		s.Root(":root", func(s *Scope) {
			s.Var("card-pad", "1rem")
		})
	})
	rule := sheet.Find(":root")
	require.NotNil(t, rule)
	require.Len(t, rule.Declarations, 1)
	assert.Equal(t, "--ui-card-pad: 1rem;", rule.Declarations[0].String())
}

func TestBlock(t *testing.T) {
	config := DefaultConfig()
	config.SelectorPrefix = "ui-"
	c := NewComposer(config, nil)

	sheet := c.Compose(func(s *Scope) {
		s.Block([]string{"a", "b", "a"}, func(s *Scope) {
			s.Decl("color", "red")
		})
	})

	require.Len(t, sheet.Rules, 1)
	assert.Equal(t, ".ui-a, .ui-b, .ui-a", sheet.Rules[0].Selectors.String())
	assert.Equal(t, []string{"ui-a", "ui-b"}, sheet.Classes)
}

func TestBlockEscapesToRoot(t *testing.T) {
	c := NewComposer(nil, nil)

	sheet := c.Compose(func(s *Scope) {
		s.Block([]string{"outer"}, func(s *Scope) {
			s.Element("inner", func(s *Scope) {
				s.B([]string{"a", "b"}, func(s *Scope) {
					s.Decl("color", "red")
				})
			})
		})
	})

	assert.Equal(t, []string{".outer", ".outer__inner", ".a, .b"}, sheet.Selectors())
}

func TestElementFlattening(t *testing.T) {
	c := NewComposer(nil, nil)

	sheet := c.Compose(func(s *Scope) {
		s.Block([]string{"b"}, func(s *Scope) {
			s.Element("y", func(s *Scope) {
				s.Element("x", func(s *Scope) {
					s.Decl("margin", "0")
				})
			})
			s.Modifier("m", func(s *Scope) {
				s.E("x", func(s *Scope) {
					s.M("n", nil)
				})
			})
		})
	})

	assert.Equal(t, []string{
		".b",
		".b__y",
		".b__y__x",
		".b--m",
		".b--m__x",
		".b--m__x--n",
	}, sheet.Selectors())
	assert.Equal(t, []string{"b", "b__y", "b__y__x", "b--m", "b--m__x", "b--m__x--n"}, sheet.Classes)
}

func TestElementOverSelectorList(t *testing.T) {
	c := NewComposer(nil, nil)

	sheet := c.Compose(func(s *Scope) {
		s.Block([]string{"a", "b"}, func(s *Scope) {
			s.Element("x", nil)
		})
	})

	assert.Equal(t, ".a__x, .b__x", sheet.Rules[1].Selectors.String())
}

func TestCustomSeparators(t *testing.T) {
	config := &Config{
		SelectorPrefix:    "p-",
		ElementSeparator:  "-",
		ModifierSeparator: "_",
		StatePrefix:       "has",
		QualifyState:      false,
	}
	c := NewComposer(config, nil)

	sheet := c.Compose(func(s *Scope) {
		s.Block([]string{"menu"}, func(s *Scope) {
			s.Element("item", func(s *Scope) {
				s.Modifier("active", nil)
				s.State("focus", nil)
			})
		})
	})

	assert.Equal(t, []string{
		".p-menu",
		".p-menu-item",
		".p-menu-item_active",
		".p-menu-item_has-focus",
	}, sheet.Selectors())
}

func TestState(t *testing.T) {
	tests := []struct {
		name      string
		enclosing string
		qualify   bool
		opts      []StateOption
		want      string
	}{
		{name: "qualified", enclosing: "html", qualify: true, want: "html.is-open"},
		{name: "suffixed", enclosing: "html", qualify: false, want: "html--is-open"},
		{name: "option overrides qualify", enclosing: ".nav", qualify: true,
			opts: []StateOption{WithQualify(false)}, want: ".nav--is-open"},
		{name: "option overrides prefix", enclosing: ".nav", qualify: true,
			opts: []StateOption{WithStatePrefix("has")}, want: ".nav.has-open"},
		{name: "qualified keeps pseudo element last", enclosing: ".btn::before", qualify: true,
			want: ".btn.is-open::before"},
		{name: "qualified on descendant", enclosing: ".nav .item", qualify: true,
			want: ".nav .item.is-open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			config.QualifyState = tt.qualify
			c := NewComposer(config, nil)

			sheet := c.Compose(func(s *Scope) {
				s.Root(tt.enclosing, func(s *Scope) {
					s.State("open", func(s *Scope) {
						s.Decl("display", "block")
					}, tt.opts...)
				})
			})

			require.Len(t, sheet.Rules, 2)
			assert.Equal(t, tt.want, sheet.Rules[1].Selectors.String())
		})
	}
}

func TestStateAlias(t *testing.T) {
	c := NewComposer(nil, nil)

	sheet := c.Compose(func(s *Scope) {
		s.Block([]string{"dialog"}, func(s *Scope) {
			s.Is("open", func(s *Scope) {
				s.Decl("display", "block")
			})
		})
	})

	rule := sheet.Find(".dialog.is-open")
	require.NotNil(t, rule)
	assert.Equal(t, []Declaration{{Property: "display", Value: "block"}}, rule.Declarations)
	assert.Contains(t, sheet.Classes, "is-open")
}

func TestQualify(t *testing.T) {
	tests := []struct {
		name      string
		enclosing string
		fragment  string
		want      string
	}{
		{name: "tag with class", enclosing: "button", fragment: ".large", want: "button.large"},
		{name: "class with tag", enclosing: ".button", fragment: "a", want: "a.button"},
		{name: "duplicates removed", enclosing: ".a.b", fragment: ".b.c", want: ".a.b.c"},
		{name: "universal dropped", enclosing: "*", fragment: ".x", want: ".x"},
		{name: "attribute", enclosing: "input", fragment: "[type=\"text\"]", want: "input[type=\"text\"]"},
		{name: "pseudo class", enclosing: ".link", fragment: ":hover", want: ".link:hover"},
		{name: "descendant keeps ancestors", enclosing: ".nav .item", fragment: "li", want: ".nav li.item"},
		{name: "fragment list", enclosing: ".btn", fragment: "a, button", want: "a.btn, button.btn"},
		{name: "unrecognized fragment", enclosing: ".btn", fragment: ":hover span", want: ".btn:hover span"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewComposer(nil, nil)

			sheet := c.Compose(func(s *Scope) {
				s.Root(tt.enclosing, func(s *Scope) {
					s.Qualify(tt.fragment, func(s *Scope) {
						s.Decl("color", "red")
					})
				})
			})

			require.Len(t, sheet.Rules, 2)
			assert.Equal(t, tt.want, sheet.Rules[1].Selectors.String())
			assert.Empty(t, sheet.Warnings)
		})
	}
}

func TestQualifyConflict(t *testing.T) {
	c := NewComposer(nil, nil)
	ran := false

	sheet := c.Compose(func(s *Scope) {
		s.Root("button", func(s *Scope) {
			s.And("a", func(s *Scope) {
				ran = true
			})
		})
	})

	assert.False(t, ran)
	assert.Len(t, sheet.Rules, 1)
	require.Len(t, sheet.Warnings, 1)
	assert.Contains(t, sheet.Warnings[0], ErrUnify.Error())
}

func TestQualifyPartialConflict(t *testing.T) {
	c := NewComposer(nil, nil)

	sheet := c.Compose(func(s *Scope) {
		s.Root("button, .link", func(s *Scope) {
			s.Qualify("a", func(s *Scope) {
				s.Decl("color", "red")
			})
		})
	})

	require.Len(t, sheet.Rules, 2)
	assert.Equal(t, "a.link", sheet.Rules[1].Selectors.String())
	assert.Len(t, sheet.Warnings, 1)
}

func TestQualifyAliasForwardsContents(t *testing.T) {
	c := NewComposer(nil, nil)

	render := func(qualify func(s *Scope, fragment string, contents func(*Scope))) string {
		return c.Compose(func(s *Scope) {
			s.Block([]string{"btn"}, func(s *Scope) {
				qualify(s, "a", func(s *Scope) {
					s.Decl("cursor", "pointer")
					s.Modifier("ghost", func(s *Scope) {
						s.Decl("background", "none")
					})
				})
			})
		}).String()
	}

	primary := render(func(s *Scope, f string, c func(*Scope)) { s.Qualify(f, c) })
	alias := render(func(s *Scope, f string, c func(*Scope)) { s.And(f, c) })
	assert.Equal(t, primary, alias)
	assert.Contains(t, alias, "a.btn--ghost {")
}

func TestConfigChangeBetweenCalls(t *testing.T) {
	c := NewComposer(DefaultConfig(), nil)

	sheet := c.Compose(func(s *Scope) {
		s.Block([]string{"card"}, nil)
		c.Config().SelectorPrefix = "x-"
		s.Block([]string{"card"}, nil)
	})

	assert.Equal(t, []string{".card", ".x-card"}, sheet.Selectors())
	assert.Equal(t, "var(--x-gap)", c.UseVar("gap"))
}

func TestDeclarationOutsideRule(t *testing.T) {
	c := NewComposer(nil, nil)

	sheet := c.Compose(func(s *Scope) {
		s.Decl("color", "red")
	})

	assert.Empty(t, sheet.Rules)
	assert.Len(t, sheet.Warnings, 1)
}

func TestElementAtDocumentLevel(t *testing.T) {
	c := NewComposer(nil, nil)

	sheet := c.Compose(func(s *Scope) {
		s.Element("x", nil)
	})

	// no enclosing selector: the separator is emitted as is
	assert.Equal(t, []string{"__x"}, sheet.Selectors())
}
