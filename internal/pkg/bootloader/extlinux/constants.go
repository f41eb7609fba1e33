// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package extlinux

const (
	// BootDir is the boot directory relative to the target root.
	BootDir = "/boot"

	// ConfigDir is the extlinux config directory relative to the target root.
	ConfigDir = BootDir + "/extlinux"

	// ConfigName is the name of the extlinux config file.
	ConfigName = "extlinux.conf"

	// ConfigPath is the path to the extlinux config relative to the target root.
	ConfigPath = ConfigDir + "/" + ConfigName

	// PlymouthPath is the path to the plymouth binary relative to the target root.
	PlymouthPath = "/usr/bin/plymouth"

	// DefaultGenerator is the name written to the config header.
	DefaultGenerator = "Calamares"

	// LabelPrefix prefixes the zero-based index of every menu entry.
	LabelPrefix = "linux"

	// AutobootMessage is shown while the default entry is being started.
	AutobootMessage = "Starting..."
)

// Partition filesystem and mount point markers.
const (
	RootMountPoint = "/"
	SwapFS         = "linuxswap"
)

var kernelPrefixes = []string{"vmlinuz-", "bzImage-"}
