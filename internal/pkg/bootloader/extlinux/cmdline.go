// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package extlinux

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/siderolabs/go-procfs/procfs"

	"github.com/siderolabs/extlinuxcfg/internal/pkg/bootloader/options"
)

// Cmdline is a rendered kernel command line.
type Cmdline string

// String implements fmt.Stringer.
func (c Cmdline) String() string {
	return string(c)
}

// Root returns the value of the root= argument.
func (c Cmdline) Root() string {
	return c.param("root")
}

// Resume returns the value of the resume= argument.
func (c Cmdline) Resume() string {
	return c.param("resume")
}

func (c Cmdline) param(key string) string {
	if v := procfs.NewCmdline(string(c)).Get(key).First(); v != nil {
		return *v
	}

	return ""
}

// PlymouthPresent checks whether plymouth is installed in the target root.
func PlymouthPresent(root string) bool {
	_, err := os.Stat(filepath.Join(root, PlymouthPath))

	return err == nil
}

// BuildCmdline derives the kernel command line from the partition layout.
//
// The first partition mounted at / provides the root device, the first linuxswap
// partition provides the resume UUID. A missing root partition yields an empty root=.
func BuildCmdline(partitions []options.Partition, splash bool) Cmdline {
	var rootDevice, swapUUID string

	rootFound, swapFound := false, false

	for _, partition := range partitions {
		if !rootFound && partition.MountPoint == RootMountPoint {
			rootDevice, rootFound = partition.Device, true
		}

		if !swapFound && partition.FS == SwapFS {
			swapUUID, swapFound = partition.UUID, true
		}
	}

	useSplash := ""
	if splash {
		useSplash = "splash"
	}

	cmdline := fmt.Sprintf("root=%s ro ", rootDevice)

	if swapUUID != "" {
		cmdline += fmt.Sprintf("resume=UUID=%s quiet %s", swapUUID, useSplash)
	} else {
		cmdline += "quiet " + useSplash
	}

	return Cmdline(cmdline)
}
