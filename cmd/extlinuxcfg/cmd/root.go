// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package cmd implements the extlinuxcfg command.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/siderolabs/extlinuxcfg/internal/pkg/configuration"
	"github.com/siderolabs/extlinuxcfg/internal/pkg/installer"
)

var rootCmdFlags struct {
	statePath  string
	configPath string
	localCopy  bool
	debug      bool
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:          "extlinuxcfg",
	Short:        "Write the extlinux bootloader configuration for an installed system",
	Long:         ``,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger, err := newLogger(rootCmdFlags.debug)
		if err != nil {
			return err
		}

		defer logger.Sync() //nolint:errcheck

		state, err := installer.LoadState(rootCmdFlags.statePath)
		if err != nil {
			return fmt.Errorf("error loading installation state: %w", err)
		}

		conf := configuration.Default()

		if rootCmdFlags.configPath != "" {
			conf, err = configuration.Load(rootCmdFlags.configPath)
			if err != nil {
				return fmt.Errorf("error loading configuration: %w", err)
			}
		}

		return installer.Run(cmd.Context(), state, conf,
			installer.WithLogger(logger),
			installer.WithLocalCopy(rootCmdFlags.localCopy),
		)
	},
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addFlags(flags *pflag.FlagSet) {
	flags.StringVar(&rootCmdFlags.statePath, "state", "", "The path to the installation state (YAML)")
	flags.StringVar(&rootCmdFlags.configPath, "config", "", "The path to the job configuration (YAML or TOML)")
	flags.BoolVar(&rootCmdFlags.localCopy, "local-copy", false, "Copy the background image without chroot")
	flags.BoolVar(&rootCmdFlags.debug, "debug", false, "Enable debug logging")
}

func init() {
	addFlags(rootCmd.Flags())

	rootCmd.MarkFlagRequired("state") //nolint:errcheck
}
