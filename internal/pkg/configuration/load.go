// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package configuration

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration from a YAML or TOML file, keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	if filepath.Ext(path) == ".toml" {
		return DecodeTOML(b)
	}

	return DecodeYAML(b)
}

// DecodeYAML decodes the YAML configuration, unknown keys are rejected.
func DecodeYAML(b []byte) (Config, error) {
	conf := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(b))
	decoder.KnownFields(true)

	// an empty document keeps the defaults
	if err := decoder.Decode(&conf); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return conf, nil
}

// DecodeTOML decodes the TOML configuration, unknown keys are rejected.
func DecodeTOML(b []byte) (Config, error) {
	conf := Default()

	decoder := toml.NewDecoder(bytes.NewReader(b))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&conf); err != nil {
		return Config{}, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return conf, nil
}
