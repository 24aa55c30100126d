package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/yacobolo/cssbem/internal/bem"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Print a single composed selector or custom property",
	Long: `Compose one selector from flags using the configured naming, without
reading any manifest. Elements are applied in order, then the modifier,
the state and the qualifier.

  cssbem compose --block card --element header --state open
  .card__header.is-open

  cssbem compose --prefix ui- --var gap=4px
  --ui-gap: 4px;`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCompose,
}

func init() {
	f := composeCmd.Flags()
	f.StringSlice("block", nil, "Block names")
	f.StringArray("element", nil, "Element name (repeat to nest)")
	f.String("modifier", "", "Modifier name")
	f.String("state", "", "State name")
	f.String("qualify", "", "Selector to unify with the result")
	f.String("var", "", "Custom property definition as name=value")
	f.String("use-var", "", "Custom property to reference")
}

func runCompose(cmd *cobra.Command, _ []string) error {
	naming := buildNaming()
	composer := bem.NewComposer(&naming, newLogger(getBool("verbose", false)))
	out := cmd.OutOrStdout()

	if v, _ := cmd.Flags().GetString("var"); v != "" {
		name, value, ok := strings.Cut(v, "=")
		if !ok {
			return fmt.Errorf("--var expects name=value, got %q", v)
		}
		fmt.Fprintln(out, composer.CreateVar(name, value).String())
		return nil
	}

	if v, _ := cmd.Flags().GetString("use-var"); v != "" {
		fmt.Fprintln(out, composer.UseVar(v))
		return nil
	}

	list, err := composeSelector(cmd, composer)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, list.String())
	return nil
}

func composeSelector(cmd *cobra.Command, composer *bem.Composer) (bem.SelectorList, error) {
	flags := cmd.Flags()

	blocks, _ := flags.GetStringSlice("block")
	if len(blocks) == 0 {
		return nil, errors.New("one of --block, --var or --use-var is required")
	}
	list := composer.ClassSelector(blocks...)

	elements, _ := flags.GetStringArray("element")
	for _, e := range elements {
		list = composer.ElementSelector(list, e)
	}
	if m, _ := flags.GetString("modifier"); m != "" {
		list = composer.ModifierSelector(list, m)
	}
	if s, _ := flags.GetString("state"); s != "" {
		list = composer.StateSelector(list, s)
	}
	if q, _ := flags.GetString("qualify"); q != "" {
		qualified, err := composer.QualifySelector(list, q)
		if len(qualified) == 0 {
			return nil, err
		}
		if err != nil {
			// partial failure: report the dropped pairs, keep the rest
			for _, e := range multierr.Errors(err) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", e)
			}
		}
		list = qualified
	}

	return list, nil
}
