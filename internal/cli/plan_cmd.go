package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"enumevent-generator/internal/config"
	"enumevent-generator/internal/plan"
)

func newPlanCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "plan <declaration.yaml>",
		Short: "Print the resolved generation plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmtKind, err := plan.ParseFormat(format)
			if err != nil {
				return err
			}

			f, cfg, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}

			res := plan.BuildFile(f, cfg.Plan())

			out, err := plan.Export(res, fmtKind)
			if err != nil {
				return err
			}

			if _, err := cmd.OutOrStdout().Write(out); err != nil {
				return fmt.Errorf("writing plan: %w", err)
			}

			if res.Diagnostics.HasErrors() {
				return errors.New("declaration has errors")
			}

			return nil
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", string(plan.FormatJSON), "output format (json, yaml, text)")

	return cmd
}
