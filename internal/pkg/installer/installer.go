// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package installer provides the extlinux installation job entrypoint.
package installer

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/siderolabs/extlinuxcfg/internal/pkg/bootloader/extlinux"
	"github.com/siderolabs/extlinuxcfg/internal/pkg/bootloader/options"
	"github.com/siderolabs/extlinuxcfg/internal/pkg/configuration"
	"github.com/siderolabs/extlinuxcfg/internal/pkg/target"
)

// Option configures Run.
type Option func(*runOptions)

type runOptions struct {
	logger        *zap.Logger
	fileInstaller options.FileInstaller
	localCopy     bool
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *runOptions) {
		o.logger = logger
	}
}

// WithFileInstaller overrides the installer used to copy the background image.
func WithFileInstaller(fileInstaller options.FileInstaller) Option {
	return func(o *runOptions) {
		o.fileInstaller = fileInstaller
	}
}

// WithLocalCopy copies the background image without chroot.
func WithLocalCopy(local bool) Option {
	return func(o *runOptions) {
		o.localCopy = local
	}
}

// Run writes the extlinux configuration for the installed system.
func Run(ctx context.Context, state State, conf configuration.Config, opts ...Option) error {
	o := runOptions{
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if state.RootMountPoint == "" {
		return errors.New("root mount point is not set")
	}

	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := o.logger.With(zap.String("root", state.RootMountPoint))
	printf := logger.Sugar().Infof

	if o.fileInstaller == nil {
		if o.localCopy {
			o.fileInstaller = target.NewLocal(state.RootMountPoint, printf)
		} else {
			o.fileInstaller = target.NewChroot(state.RootMountPoint, printf)
		}
	}

	logger.Debug("bootloader install path", zap.String("install_path", state.BootLoader.InstallPath))

	result, err := extlinux.Install(options.InstallOptions{
		RootMountPoint: state.RootMountPoint,
		InstallPath:    state.BootLoader.InstallPath,
		Partitions:     state.BootPartitions(),
		Distributor:    conf.Distributor,
		Prompt:         conf.Prompt,
		Timeout:        conf.Timeout,
		Menu:           conf.MenuLabel(),
		Background:     conf.BackgroundPath(),
		SingleDefault:  conf.SingleDefault,
		FileInstaller:  o.fileInstaller,
		Printf:         printf,
	})
	if err != nil {
		return fmt.Errorf("failed to install extlinux config: %w", err)
	}

	logger.Info("extlinux config written",
		zap.String("path", result.ConfigPath),
		zap.Strings("labels", result.Labels),
		zap.String("cmdline", result.Cmdline),
	)

	return nil
}
