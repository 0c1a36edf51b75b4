// Command vhdlfront parses a tree of VHDL-2008 source into a typed CST and
// folds it into a project/library model, printing whichever views the
// caller asked for (spec §6). It never type-checks, resolves names across
// files, elaborates, or simulates — it is a front end, not a compiler.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/robert-at-pretension-io/vhdlfront/internal/config"
	"github.com/robert-at-pretension-io/vhdlfront/internal/driver"
	"github.com/robert-at-pretension-io/vhdlfront/internal/printer"
	"github.com/robert-at-pretension-io/vhdlfront/internal/project"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type flags struct {
	inputs   []string
	excludes []string
	ambig    bool
	dumpCST  bool
	dumpAST  bool
	simple   bool
	std      bool
	noRegex  bool
	debug    bool
	debugLark bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "vhdlfront [paths...]",
		Short: "Parse VHDL-2008 source into a typed CST and project model",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.inputs = append(f.inputs, args...)
			if len(f.inputs) == 0 {
				f.inputs = []string{"."}
			}
			return run(f)
		},
	}
	cmd.Flags().StringArrayVarP(&f.inputs, "input", "i", nil, "file or directory to parse (repeatable, default .)")
	cmd.Flags().StringArrayVarP(&f.excludes, "exclude", "e", nil, "path prefix to skip (repeatable)")
	cmd.Flags().BoolVarP(&f.ambig, "ambig", "a", false, "explicit-ambiguity parsing via the disambiguation shaper")
	cmd.Flags().BoolVar(&f.dumpCST, "cst", false, "dump each file's CST")
	cmd.Flags().BoolVar(&f.dumpAST, "ast", false, "dump the project model")
	cmd.Flags().BoolVar(&f.simple, "simple", false, "print a compact project summary")
	cmd.Flags().BoolVar(&f.std, "std", false, "preload the bundled std/ieee libraries")
	cmd.Flags().BoolVar(&f.noRegex, "no-regex", false, "accepted but ignored: the lexer has no alternative literal matcher")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "developer diagnostics")
	cmd.Flags().BoolVar(&f.debugLark, "debug_lark", false, "grammar-engine developer diagnostics")
	return cmd
}

func run(f *flags) error {
	if f.noRegex {
		fmt.Fprintln(os.Stderr, "warning: --no-regex has no effect; the lexer has a single literal matcher")
	}

	proj := project.New()
	if f.std {
		if err := proj.AddStandardLibraries(); err != nil {
			return fmt.Errorf("preloading standard libraries: %w", err)
		}
	}

	failed := false
	for _, root := range f.inputs {
		if excluded(root, f.excludes) {
			continue
		}
		cfg, err := config.Load(root)
		if err != nil {
			cfg = config.DefaultConfig()
		}

		ctx := context.Background()
		opts := driver.Options{RootPath: root, Ambig: f.ambig, PerFileTimeout: 30 * time.Second}
		p, results := driver.Run(ctx, cfg, opts)

		for _, res := range results {
			if excluded(res.Path, f.excludes) {
				continue
			}
			if res.Err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.Err)
				failed = true
				continue
			}
			for _, w := range res.Warnings {
				fmt.Fprintf(os.Stderr, "%s: warning: %v\n", res.Path, w)
			}
			if f.debug {
				fmt.Fprintln(os.Stderr, printer.FormatSummary(res.Path, res.Design))
			}
			if f.dumpCST && res.Design != nil {
				fmt.Println(printer.Print(res.Design))
			}
		}

		for _, lib := range p.Libraries {
			dst := proj.GetOrAddLibrary(lib.Name)
			dst.Modules = append(dst.Modules, lib.Modules...)
			dst.Packages = append(dst.Packages, lib.Packages...)
			dst.InstancedPackages = append(dst.InstancedPackages, lib.InstancedPackages...)
		}
	}

	if f.dumpAST {
		printProjectModel(proj)
	}
	if f.simple {
		printSimpleSummary(proj)
	}

	if failed {
		return fmt.Errorf("one or more files failed to parse")
	}
	return nil
}

func excluded(path string, excludes []string) bool {
	for _, ex := range excludes {
		if strings.HasPrefix(path, ex) {
			return true
		}
	}
	return false
}

func printProjectModel(proj *project.Project) {
	for _, lib := range proj.Libraries {
		fmt.Printf("library %s\n", lib.Name)
		for _, m := range lib.Modules {
			fmt.Printf("  module %s (architecture %q)\n", m.Name, m.ArchName)
		}
		for _, p := range lib.Packages {
			fmt.Printf("  package %s (body: %v)\n", p.Name, p.HasBody)
		}
		for _, ip := range lib.InstancedPackages {
			fmt.Printf("  instanced package %s (from %s)\n", ip.Name, ip.Declaration.Name)
		}
	}
}

func printSimpleSummary(proj *project.Project) {
	for _, lib := range proj.Libraries {
		fmt.Printf("%s:\n", lib.Name)
		for _, m := range lib.Modules {
			fmt.Printf("  entity %s\n", m.Name)
			for _, g := range m.Parameters {
				fmt.Printf("    generic %s : %s", g.Name, g.Type)
				if g.Default != "" {
					fmt.Printf(" := %s", g.Default)
				}
				fmt.Println()
			}
			for _, p := range m.Ports {
				fmt.Printf("    port %s : %s %s\n", p.Name, p.Direction, p.Type)
			}
		}
		for _, p := range lib.Packages {
			fmt.Printf("  package %s\n", p.Name)
		}
	}
}
