// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package options provides bootloader options.
package options

// FileInstaller copies a file into the target system.
//
// Both paths are interpreted inside the target root.
type FileInstaller interface {
	Install(src, dest string) error
}

// InstallOptions configures the bootloader installation.
type InstallOptions struct {
	// Target root mount point, e.g. /tmp/calamares-root-xyz.
	RootMountPoint string
	// Bootloader install path, kept for reference only.
	InstallPath string

	// Partition layout of the target system.
	Partitions []Partition

	Distributor string
	Prompt      int
	Timeout     int
	// Menu is the default label, empty for none.
	Menu string
	// Background image path inside the target root, empty for none.
	Background string
	// Mark only the first entry as menu default.
	SingleDefault bool

	// Copies the background image, required when Background is set.
	FileInstaller FileInstaller

	// Printf-like logger to use.
	Printf func(string, ...any)
}

// Partition describes a partition of the target system.
type Partition struct {
	MountPoint string
	Device     string
	FS         string
	UUID       string
}

// InstallResult is the result of the installation.
type InstallResult struct {
	// ConfigPath is the host path of the written config.
	ConfigPath string
	// Labels are the written menu entry labels in order.
	Labels []string
	// Cmdline is the kernel command line used for every entry.
	Cmdline string
}
