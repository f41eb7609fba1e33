// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package extlinux

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LinkTarget returns the relative target of the config directory link for a boot file.
func LinkTarget(name string) string {
	return "../" + name
}

// ReplaceSymlink points dir/name at ../name.
//
// Whatever exists at dir/name is removed first, dangling symlinks included.
func ReplaceSymlink(dir, name string) error {
	path := filepath.Join(dir, name)

	if _, err := os.Lstat(path); err == nil {
		if err = os.Remove(path); err != nil {
			return fmt.Errorf("error removing %q: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error checking %q: %w", path, err)
	}

	if err := os.Symlink(LinkTarget(name), path); err != nil {
		return fmt.Errorf("error linking %q: %w", path, err)
	}

	return nil
}
