package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"enumevent-generator/internal/analyze"
	"enumevent-generator/internal/config"
	"enumevent-generator/internal/plan"
)

func newCheckCmd(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "check <declaration.yaml>",
		Short: "Type-check generated packages against their declaration",
		Long: "Check loads the package generated for every enum with the go command and\n" +
			"verifies it compiles and exposes the capabilities its plan calls for.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, cfg, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}

			res := plan.BuildFile(f, cfg.Plan())
			a.report(cmd.Context(), res.Diagnostics)

			if len(res.Plans) == 0 {
				return errors.New("no valid enums to check")
			}

			patterns := make([]string, 0, len(res.Plans))
			for _, p := range res.Plans {
				patterns = append(patterns, cfg.PackagePattern(p.Namespace))
			}

			a.logger.Debug("loading packages", "patterns", patterns, "dir", dir)

			reports, err := analyze.NewChecker(cfg.RuntimeImport, dir).LoadPackages(cmd.Context(), patterns...)
			if err != nil {
				return err
			}

			for _, r := range reports {
				status := "ok"
				if !r.OK() {
					status = "FAIL"
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%-4s %s (%d types)\n", status, r.Path, len(r.Types))
			}

			diags := analyze.Verify(res.Plans, reports)
			a.report(cmd.Context(), diags)

			if res.Diagnostics.HasErrors() || diags.HasErrors() {
				return fmt.Errorf("check failed with %d error(s)", len(res.Diagnostics.Errors)+len(diags.Errors))
			}

			return nil
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVar(&dir, "dir", "", "directory the go command runs in")

	return cmd
}
