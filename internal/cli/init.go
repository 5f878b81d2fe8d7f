package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eni-rainstop/colorselect/internal/infra/scaffold"
	"github.com/eni-rainstop/colorselect/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create colorselect.yaml and the .colorselect/ directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := resolveStartDir(path)
			if err != nil {
				return err
			}

			uc := usecase.NewInitProject(scaffold.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized colorselect project at %s\n", root)
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", "", "Directory to initialize (default: current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing colorselect.yaml")
	return c
}
