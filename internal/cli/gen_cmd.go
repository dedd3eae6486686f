package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"enumevent-generator/internal/config"
	"enumevent-generator/internal/gen"
	"enumevent-generator/internal/plan"
)

func newGenCmd(a *app) *cobra.Command {
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "gen <declaration.yaml>...",
		Short: "Generate one Go package per enum",
		Long: "Generate writes <output-dir>/<namespace>/<namespace>_gen.go for every valid enum.\n" +
			"An enum with errors is reported and skipped; the other enums are still generated.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0

			for _, path := range args {
				n, err := a.generate(cmd, path, toStdout)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				failed += n
			}

			if failed > 0 {
				return fmt.Errorf("%d enum(s) failed to generate", failed)
			}

			return nil
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "print generated code instead of writing files")

	return cmd
}

// generate generates the enums of one declaration file and returns how
// many of them failed.
func (a *app) generate(cmd *cobra.Command, path string, toStdout bool) (int, error) {
	f, cfg, err := a.load(cmd, path)
	if err != nil {
		return 0, err
	}

	res := plan.BuildFile(f, cfg.Plan())
	a.report(cmd.Context(), res.Diagnostics)

	failed := len(f.Enums) - len(res.Plans)
	g := gen.NewGenerator(cfg.Generator())

	for _, p := range res.Plans {
		log := a.logger.With("enum", p.Enum, "package", p.Namespace)

		file, err := g.Generate(p)
		if err != nil {
			log.Error("generation failed", "error", err)
			failed++

			continue
		}

		if toStdout {
			fmt.Fprintf(cmd.OutOrStdout(), "// file: %s\n%s", filepath.ToSlash(file.Filename), file.Content)
			continue
		}

		if err := gen.WriteFiles([]gen.GeneratedFile{*file}, cfg.OutputDir); err != nil {
			return failed, err
		}

		log.Info("generated", "file", filepath.Join(cfg.OutputDir, file.Filename), "types", len(p.Types))
	}

	return failed, nil
}
