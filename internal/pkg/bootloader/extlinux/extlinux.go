// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package extlinux provides the extlinux bootloader config generation: kernel discovery,
// kernel command line, config rendering and the symlinks extlinux needs to find the images.
package extlinux

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Line is a single line of extlinux.conf.
//
// A line with an empty Directive is blank.
type Line struct {
	Indent    bool
	Directive string
	Value     string
}

// String renders the line without the trailing newline.
func (l Line) String() string {
	if l.Directive == "" {
		return ""
	}

	s := l.Directive

	if l.Value != "" {
		s += " " + l.Value
	}

	if l.Indent {
		s = "\t" + s
	}

	return s
}

// Entry is a single menu entry (label stanza).
type Entry struct {
	Name      string
	Title     string
	Kernel    string
	Initrd    string
	Append    string
	IsDefault bool
}

// Config describes extlinux.conf.
type Config struct {
	Generator   string
	Distributor string
	Prompt      int
	Timeout     int
	// Default is the label booted by default, omitted when empty.
	Default string
	// Background is the file name of the menu background, relative to the config directory.
	Background string
	// SingleDefault marks only the first entry with menu default.
	SingleDefault bool

	Entries []Entry
}

// NewConfig creates a new config for the distributor.
func NewConfig(distributor string) *Config {
	return &Config{
		Generator:   DefaultGenerator,
		Distributor: distributor,
	}
}

// Add appends a menu entry for the kernel.
func (c *Config) Add(kernel Kernel, cmdline Cmdline) Entry {
	index := len(c.Entries)

	appendArgs := cmdline.String()
	if kernel.HasInitramfs() {
		appendArgs = fmt.Sprintf("initrd=%s %s", kernel.Initramfs, cmdline)
	}

	entry := Entry{
		Name:      LabelPrefix + strconv.Itoa(index),
		Title:     fmt.Sprintf("%s (%s)", c.Distributor, kernel.Version),
		Kernel:    kernel.Filename,
		Initrd:    kernel.Initramfs,
		Append:    appendArgs,
		IsDefault: !c.SingleDefault || index == 0,
	}

	c.Entries = append(c.Entries, entry)

	return entry
}

// Lines builds the ordered list of config lines.
func (c *Config) Lines() []Line {
	generator := c.Generator
	if generator == "" {
		generator = DefaultGenerator
	}

	lines := []Line{
		{Directive: "#", Value: ConfigName + " - Generated by " + generator},
		{},
		{Directive: "prompt", Value: strconv.Itoa(c.Prompt)},
		{Directive: "timeout", Value: strconv.Itoa(c.Timeout)},
	}

	if c.Default != "" {
		lines = append(lines, Line{Directive: "default", Value: c.Default}, Line{})
	}

	lines = append(lines,
		Line{Directive: "menu autoboot", Value: AutobootMessage},
		Line{Directive: "menu hidden"},
	)

	if c.Background != "" {
		lines = append(lines, Line{Directive: "menu background", Value: c.Background})
	}

	lines = append(lines,
		Line{Directive: "menu title", Value: fmt.Sprintf("Welcome to %s!", c.Distributor)},
		Line{},
	)

	for _, entry := range c.Entries {
		lines = append(lines,
			Line{Directive: "label", Value: entry.Name},
			Line{Indent: true, Directive: "menu label", Value: entry.Title},
			Line{Indent: true, Directive: "kernel", Value: entry.Kernel},
			Line{Indent: true, Directive: "append", Value: entry.Append},
		)

		if entry.IsDefault {
			lines = append(lines, Line{Indent: true, Directive: "menu default"})
		}

		lines = append(lines, Line{})
	}

	return lines
}

// Encode writes the config to w.
func (c *Config) Encode(w io.Writer) error {
	for _, line := range c.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// Write renders the config and writes it to path, creating the parent directory if needed.
func (c *Config) Write(path string, printf func(string, ...any)) error {
	var buf bytes.Buffer

	if err := c.Encode(&buf); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	printf("writing %s to disk", path)

	return os.WriteFile(path, buf.Bytes(), 0o644)
}
