// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package configuration provides the extlinux job configuration.
package configuration

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/siderolabs/go-pointer"
)

// Config is the extlinux job configuration.
type Config struct {
	// Distributor name shown in the menu title and entry labels.
	Distributor string `yaml:"distributor" toml:"distributor"`
	// Prompt is 1 to always show the boot prompt, 0 otherwise.
	Prompt int `yaml:"prompt" toml:"prompt"`
	// Timeout before the default entry is booted.
	Timeout int `yaml:"timeout" toml:"timeout"`
	// Menu is the label booted by default.
	Menu *string `yaml:"menu,omitempty" toml:"menu,omitempty"`
	// Background is the menu background image path inside the target root.
	Background *string `yaml:"background,omitempty" toml:"background,omitempty"`
	// SingleDefault marks only the first entry with menu default.
	SingleDefault bool `yaml:"singleDefault,omitempty" toml:"singleDefault,omitempty"`
}

// Default returns the configuration shipped with the job.
func Default() Config {
	return Config{
		Distributor: "Linux",
		Prompt:      1,
		Timeout:     10,
	}
}

// MenuLabel returns the default label, or an empty string.
func (c Config) MenuLabel() string {
	return pointer.SafeDeref(c.Menu)
}

// BackgroundPath returns the background image path, or an empty string.
func (c Config) BackgroundPath() string {
	return pointer.SafeDeref(c.Background)
}

// Validate checks the configuration.
func (c Config) Validate() error {
	var result *multierror.Error

	if strings.TrimSpace(c.Distributor) == "" {
		result = multierror.Append(result, errors.New("distributor is required"))
	}

	if c.Prompt != 0 && c.Prompt != 1 {
		result = multierror.Append(result, fmt.Errorf("prompt must be 0 or 1, got %d", c.Prompt))
	}

	if c.Timeout < 0 {
		result = multierror.Append(result, fmt.Errorf("timeout must not be negative, got %d", c.Timeout))
	}

	if menu := c.MenuLabel(); c.Menu != nil && strings.ContainsAny(menu, " \t\n") {
		result = multierror.Append(result, fmt.Errorf("menu %q must be a single label", menu))
	}

	if c.Background != nil {
		switch background := c.BackgroundPath(); {
		case background == "":
			result = multierror.Append(result, errors.New("background must not be empty"))
		case !path.IsAbs(background):
			result = multierror.Append(result, fmt.Errorf("background %q must be an absolute path", background))
		case strings.ContainsAny(path.Base(background), " \t\n"):
			result = multierror.Append(result, fmt.Errorf("background file name %q must not contain whitespace", path.Base(background)))
		}
	}

	return result.ErrorOrNil()
}
