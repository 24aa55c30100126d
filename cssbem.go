// Package cssbem generates BEM stylesheets and Go class constants from
// component manifests.
//
// Selectors are composed by the internal bem package: every block, element,
// modifier, state and qualifier becomes a flat top-level rule, and every
// custom property is namespaced by the configured prefix.
//
// # Generation
//
// Compose all manifests under a source directory into one stylesheet:
//
//	config := cssbem.Config{
//		SourceDir:    "web/ui/components",
//		Includes:     []string{"**/*.bem.yaml"},
//		OutputFile:   "web/ui/static/components.css",
//		GoOutputFile: "internal/web/ui/classes.gen.go",
//		PackageName:  "ui",
//		Naming:       *cssbem.DefaultNaming(),
//	}
//	result, err := cssbem.Generate(config)
//
// # Composing in Go
//
// The composer can also be driven directly:
//
//	sheet := cssbem.NewComposer(cssbem.DefaultNaming(), nil).Compose(func(s *cssbem.Scope) {
//		s.Block([]string{"btn"}, func(s *cssbem.Scope) {
//			s.Decl("padding", s.UseVar("gap"))
//		})
//	})
//
// # CLI Tool
//
// Install with:
//
//	go install github.com/yacobolo/cssbem/cmd/cssbem@latest
package cssbem
