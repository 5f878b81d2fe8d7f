package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/eni-rainstop/colorselect/internal/infra/logger"
	"github.com/eni-rainstop/colorselect/internal/ui/tui"
	"github.com/eni-rainstop/colorselect/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "colorselect",
		Short:        "colorselect: harmony palettes from a single base colour",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := loadProject("")
			if err != nil {
				return err
			}

			stop := startLogging(p.root, debug, nil)
			defer stop()

			deps := tui.Deps{
				Palettes:    usecase.NewGeneratePalette(usecase.WithLogger(logger.L())),
				Base:        p.cfg.Defaults.Base,
				Locale:      p.cfg.Labels.Locale,
				SwatchWidth: p.cfg.Render.SwatchWidth,
				Logger:      logger.L(),
				Debug:       debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .colorselect/logs/colorselect.log")

	cmd.AddCommand(
		paletteCmd(&debug),
		convertCmd(),
		shiftCmd(),
		serveCmd(&debug),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
