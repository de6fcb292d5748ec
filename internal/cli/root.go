package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/infra/browserlink"
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/infra/fsio"
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/infra/logger"
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/infra/settings"
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/infra/statestore"
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/ui/tui"
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
		Use:          "rimsdb-submit",
		Short:        "Submit resonance ionization schemes to the RIMS database",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfgDir, err := settings.ConfigDir()
			if err != nil {
				cfgDir = "."
			}

			cfgPath, _ := settings.DefaultPath()
			cfg, err := settings.Load(cfgPath)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{
				Dir:   cfgDir,
				Debug: debug || cfg.Debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			files := fsio.New()
			deps := tui.Deps{
				Files:    files,
				Saver:    files,
				Opener:   browserlink.New(),
				State:    statestore.New(cfgDir),
				Settings: cfg,
				Logger:   logger.L(),
				Debug:    debug || cfg.Debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to the config-dir log file")

	cmd.AddCommand(validateCmd())
	cmd.AddCommand(inspectCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}
