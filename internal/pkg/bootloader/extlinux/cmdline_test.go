// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package extlinux_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/siderolabs/extlinuxcfg/internal/pkg/bootloader/extlinux"
	"github.com/siderolabs/extlinuxcfg/internal/pkg/bootloader/options"
)

func TestBuildCmdline(t *testing.T) {
	t.Parallel()

	root := options.Partition{MountPoint: "/", Device: "/dev/sda1", FS: "ext4", UUID: "1111"}
	swap := options.Partition{Device: "/dev/sda2", FS: "linuxswap", UUID: "ABCD-1234"}

	for _, test := range []struct {
		name       string
		partitions []options.Partition
		splash     bool
		expected   string
	}{
		{
			name:       "root only",
			partitions: []options.Partition{root},
			expected:   "root=/dev/sda1 ro quiet ",
		},
		{
			name:       "root with splash",
			partitions: []options.Partition{root},
			splash:     true,
			expected:   "root=/dev/sda1 ro quiet splash",
		},
		{
			name:       "swap and splash",
			partitions: []options.Partition{root, swap},
			splash:     true,
			expected:   "root=/dev/sda1 ro resume=UUID=ABCD-1234 quiet splash",
		},
		{
			name:       "swap without splash",
			partitions: []options.Partition{swap, root},
			expected:   "root=/dev/sda1 ro resume=UUID=ABCD-1234 quiet ",
		},
		{
			name:       "no root partition",
			partitions: []options.Partition{{MountPoint: "/home", Device: "/dev/sda3"}},
			expected:   "root= ro quiet ",
		},
		{
			name: "first root and swap win",
			partitions: []options.Partition{
				root,
				swap,
				{MountPoint: "/", Device: "/dev/sdb1"},
				{FS: "linuxswap", UUID: "FFFF-0000"},
			},
			expected: "root=/dev/sda1 ro resume=UUID=ABCD-1234 quiet ",
		},
	} {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.expected, extlinux.BuildCmdline(test.partitions, test.splash).String())
		})
	}
}

func TestCmdlineParams(t *testing.T) {
	t.Parallel()

	cmdline := extlinux.Cmdline("root=/dev/sda1 ro resume=UUID=ABCD-1234 quiet splash")

	assert.Equal(t, "/dev/sda1", cmdline.Root())
	assert.Equal(t, "UUID=ABCD-1234", cmdline.Resume())

	cmdline = extlinux.Cmdline("root= ro quiet ")

	assert.Empty(t, cmdline.Root())
	assert.Empty(t, cmdline.Resume())
}

func TestPlymouthPresent(t *testing.T) {
	root := t.TempDir()

	assert.False(t, extlinux.PlymouthPresent(root))

	touch(t, filepath.Join(root, "usr", "bin", "plymouth"))

	assert.True(t, extlinux.PlymouthPresent(root))
}
