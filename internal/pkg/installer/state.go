// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package installer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/siderolabs/gen/xslices"
	"gopkg.in/yaml.v3"

	"github.com/siderolabs/extlinuxcfg/internal/pkg/bootloader/options"
)

// Partition is a partition of the target system as recorded by the partitioning step.
type Partition struct {
	MountPoint string `yaml:"mountPoint"`
	Device     string `yaml:"device"`
	FS         string `yaml:"fs"`
	UUID       string `yaml:"uuid"`
}

// BootLoader is the bootloader location chosen by the user.
type BootLoader struct {
	InstallPath string `yaml:"installPath"`
}

// State is the shared installation state consumed by the job.
type State struct {
	Partitions     []Partition `yaml:"partitions"`
	RootMountPoint string      `yaml:"rootMountPoint"`
	BootLoader     BootLoader  `yaml:"bootLoader"`
}

// LoadState reads the installation state from a YAML file.
func LoadState(path string) (State, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return State{}, err
	}

	return DecodeState(b)
}

// DecodeState decodes the YAML installation state.
//
// The state is shared by all installer jobs, so keys this job does not use are ignored.
func DecodeState(b []byte) (State, error) {
	var state State

	if err := yaml.NewDecoder(bytes.NewReader(b)).Decode(&state); err != nil && !errors.Is(err, io.EOF) {
		return State{}, fmt.Errorf("failed to decode installation state: %w", err)
	}

	return state, nil
}

func (p Partition) options() options.Partition {
	return options.Partition{
		MountPoint: p.MountPoint,
		Device:     p.Device,
		FS:         p.FS,
		UUID:       p.UUID,
	}
}

// BootPartitions converts the partitions for the bootloader.
func (s State) BootPartitions() []options.Partition {
	return xslices.Map(s.Partitions, Partition.options)
}
