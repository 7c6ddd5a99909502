// Package cli implements the cellplate command-line interface: a single
// positional-argument command that generates one STEP plate model per
// packing strategy, plus optional shop-floor artifacts configured in
// ~/.cellplate/config.json.
package cli

import (
	"errors"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/battkit/cellplate/internal/pipeline"
	"github.com/battkit/cellplate/internal/project"
)

// Execute runs the cellplate CLI and returns an error if the build fails.
// A strategy that fits no cells is skipped, not an error; geometry kernel
// and export failures are fatal.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:           "cellplate",
		Short:         "CellPlate generates battery-cell holder plate solids",
		Long:          `CellPlate computes cell layouts for grid, honeycomb, and vertical honeycomb packing, derives and validates BMS sensor holes, and exports one AP214 STEP solid per layout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 8 && len(args) != 9 {
				return errors.New(usageLine)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)

			cfg, err := parseArgs(args)
			if err != nil {
				return err
			}

			configPath := project.DefaultConfigPath()
			app, err := project.LoadAppConfig(configPath)
			if err != nil {
				return err
			}
			if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
				if err := project.SaveAppConfig(configPath, app); err != nil {
					logger.Debugf("could not write default config: %v", err)
				}
			}
			app.ApplyToPlate(&cfg)

			_, err = pipeline.Run(logger, cfg, app)
			return err
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return root.Execute()
}
