// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package extlinux

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kernel describes a kernel image found in the boot directory.
type Kernel struct {
	// Filename is the kernel image file name, e.g. vmlinuz-6.1.0-13-amd64.
	Filename string
	// Version is everything after the first hyphen of Filename.
	Version string
	// Initramfs is the matching initramfs file name, empty if there is none.
	Initramfs string
}

// HasInitramfs reports whether a matching initramfs image was found.
func (k Kernel) HasInitramfs() bool {
	return k.Initramfs != ""
}

// InitramfsName returns the initramfs file name expected for the kernel version.
func InitramfsName(version string) string {
	return "initramfs-" + version + ".img"
}

// IsKernelImage reports whether the file name looks like a kernel image.
func IsKernelImage(name string) bool {
	for _, prefix := range kernelPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}

	return false
}

// KernelVersion returns the version part of a kernel image file name.
func KernelVersion(name string) string {
	_, version, _ := strings.Cut(name, "-")

	return version
}

// ScanKernels lists the kernel images in bootDir along with their initramfs images.
//
// Entries are returned in file name order, os.ReadDir sorts them.
func ScanKernels(bootDir string) ([]Kernel, error) {
	entries, err := os.ReadDir(bootDir)
	if err != nil {
		return nil, fmt.Errorf("error reading boot directory: %w", err)
	}

	var kernels []Kernel

	for _, entry := range entries {
		if entry.IsDir() || !IsKernelImage(entry.Name()) {
			continue
		}

		kernel := Kernel{
			Filename: entry.Name(),
			Version:  KernelVersion(entry.Name()),
		}

		initramfs := InitramfsName(kernel.Version)

		if _, err := os.Stat(filepath.Join(bootDir, initramfs)); err == nil {
			kernel.Initramfs = initramfs
		}

		kernels = append(kernels, kernel)
	}

	return kernels, nil
}
