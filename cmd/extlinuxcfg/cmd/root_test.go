// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	root := t.TempDir()
	dir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "boot"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "boot", "vmlinuz-6.1.0"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "boot", "initramfs-6.1.0.img"), nil, 0o644))

	statePath := filepath.Join(dir, "state.yaml")
	require.NoError(t, os.WriteFile(statePath, fmt.Appendf(nil, `rootMountPoint: %q
bootLoader:
  installPath: /dev/vda
partitions:
  - mountPoint: /
    device: /dev/vda1
    fs: ext4
    uuid: ""
`, root), 0o644))

	configPath := filepath.Join(dir, "extlinuxcfg.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("distributor = \"CLI OS\"\ntimeout = 3\n"), 0o644))

	rootCmd.SetArgs([]string{"--state", statePath, "--config", configPath, "--local-copy"})
	require.NoError(t, rootCmd.Execute())

	b, err := os.ReadFile(filepath.Join(root, "boot", "extlinux", "extlinux.conf"))
	require.NoError(t, err)

	assert.Contains(t, string(b), "timeout 3\n")
	assert.Contains(t, string(b), "\tmenu label CLI OS (6.1.0)\n")
	assert.Contains(t, string(b), "\tappend initrd=initramfs-6.1.0.img root=/dev/vda1 ro quiet \n")
}
