// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package target provides file operations executed against the target system root.
package target

import (
	"fmt"
	"path/filepath"

	"github.com/siderolabs/go-cmd/pkg/cmd"

	"github.com/siderolabs/extlinuxcfg/internal/pkg/bootloader/options"
)

var (
	_ options.FileInstaller = (*Chroot)(nil)
	_ options.FileInstaller = (*Local)(nil)
)

// Chroot copies files by running cp inside the target root.
type Chroot struct {
	root   string
	printf func(string, ...any)

	run func(name string, args ...string) (string, error)
}

// NewChroot returns a FileInstaller which runs cp in the target root with chroot.
func NewChroot(root string, printf func(string, ...any)) *Chroot {
	return &Chroot{
		root:   root,
		printf: printf,
		run:    cmd.Run,
	}
}

// Install implements options.FileInstaller.
func (c *Chroot) Install(src, dest string) error {
	args := []string{c.root, "cp", src, dest}

	c.printf("executing: chroot %s cp %s %s", c.root, src, dest)

	if _, err := c.run("chroot", args...); err != nil {
		return fmt.Errorf("failed to copy %s to %s in %s: %w", src, dest, c.root, err)
	}

	return nil
}

// Local copies files with the target root used as a path prefix.
//
// Local does not need elevated privileges beyond write access to the target root.
type Local struct {
	root   string
	printf func(string, ...any)
}

// NewLocal returns a FileInstaller which copies files under root directly.
func NewLocal(root string, printf func(string, ...any)) *Local {
	return &Local{
		root:   root,
		printf: printf,
	}
}

// Install implements options.FileInstaller.
func (l *Local) Install(src, dest string) error {
	return CopyFiles(l.printf, SourceDestination(
		filepath.Join(l.root, src),
		filepath.Join(l.root, dest),
	))
}
