// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package extlinux

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/siderolabs/gen/xslices"

	"github.com/siderolabs/extlinuxcfg/internal/pkg/bootloader/options"
)

// Install scans the target boot directory and writes extlinux.conf along with the image symlinks.
//
// Nothing is written if the boot directory cannot be read.
//
//nolint:gocyclo
func Install(opts options.InstallOptions) (*options.InstallResult, error) {
	printf := opts.Printf
	if printf == nil {
		printf = func(string, ...any) {}
	}

	bootDir := filepath.Join(opts.RootMountPoint, BootDir)
	confDir := filepath.Join(opts.RootMountPoint, ConfigDir)

	kernels, err := ScanKernels(bootDir)
	if err != nil {
		return nil, err
	}

	printf("found %d kernel(s) in %s: %v", len(kernels), bootDir, xslices.Map(kernels, func(k Kernel) string { return k.Version }))

	cmdline := BuildCmdline(opts.Partitions, PlymouthPresent(opts.RootMountPoint))

	if cmdline.Root() == "" {
		printf("WARNING: no partition mounted at %s, kernel command line has an empty root", RootMountPoint)
	}

	printf("using kernel command line %q", cmdline)

	if err = os.MkdirAll(confDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	conf := NewConfig(opts.Distributor)
	conf.Prompt = opts.Prompt
	conf.Timeout = opts.Timeout
	conf.Default = opts.Menu
	conf.SingleDefault = opts.SingleDefault

	if opts.Background != "" {
		if opts.FileInstaller == nil {
			return nil, errors.New("background is set, but no file installer is configured")
		}

		background := path.Base(opts.Background)

		if err = opts.FileInstaller.Install(opts.Background, path.Join(ConfigDir, background)); err != nil {
			return nil, fmt.Errorf("error installing background %q: %w", opts.Background, err)
		}

		conf.Background = background
	}

	for _, kernel := range kernels {
		entry := conf.Add(kernel, cmdline)

		printf("created entry %s for kernel %s", entry.Name, kernel.Version)

		if err = ReplaceSymlink(confDir, kernel.Filename); err != nil {
			return nil, err
		}

		if kernel.HasInitramfs() {
			if err = ReplaceSymlink(confDir, kernel.Initramfs); err != nil {
				return nil, err
			}
		}
	}

	configPath := filepath.Join(opts.RootMountPoint, ConfigPath)

	if err = conf.Write(configPath, printf); err != nil {
		return nil, fmt.Errorf("error writing %s: %w", ConfigName, err)
	}

	return &options.InstallResult{
		ConfigPath: configPath,
		Labels:     xslices.Map(conf.Entries, func(e Entry) string { return e.Name }),
		Cmdline:    cmdline.String(),
	}, nil
}
