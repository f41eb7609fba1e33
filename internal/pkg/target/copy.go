// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package target

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/siderolabs/gen/pair/ordered"
)

// CopyInstruction is a source and destination path pair.
type CopyInstruction = ordered.Pair[string, string]

// SourceDestination returns a CopyInstruction that copies src to dest.
func SourceDestination(src, dest string) CopyInstruction {
	return ordered.MakePair(src, dest)
}

// CopyFiles copies files according to the given instructions, creating the destination directories.
//
// An existing destination is truncated.
func CopyFiles(printf func(string, ...any), instructions ...CopyInstruction) error {
	for _, instruction := range instructions {
		if err := copyFile(printf, instruction.F1, instruction.F2); err != nil {
			return fmt.Errorf("error copying %s -> %s: %w", instruction.F1, instruction.F2, err)
		}
	}

	return nil
}

func copyFile(printf func(string, ...any), src, dest string) error {
	from, err := os.Open(src)
	if err != nil {
		return err
	}

	defer from.Close() //nolint:errcheck

	if err = os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	printf("copying %s to %s", src, dest)

	to, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err = io.Copy(to, from); err != nil {
		to.Close() //nolint:errcheck

		return err
	}

	return to.Close()
}
