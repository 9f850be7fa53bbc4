// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scenetool loads a scene description, combines it into a scene,
// optionally converts it to single-function objects, and prints a summary
// of the result.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/scenedata/scene"
	"cogentcore.org/scenedata/scenefile"
	"cogentcore.org/scenedata/scenetools"
)

// Config contains the configuration of scenetool.
type Config struct {

	// the scene description file (.toml, .yaml or .yml)
	File string `posarg:"0" required:"+"`

	// the mapping type of the combined scene, such as Uint32; the mapping type
	// of the description if empty
	MappingType string

	// comma-separated fields to convert to single-function objects, such as
	// Mesh,Camera; the scene is not converted if empty
	Convert string

	// comma-separated fields to copy onto the objects created by the conversion
	Copy string

	// the first object key for objects created by the conversion; the mapping
	// bound of the scene if 0
	Offset uint32

	// whether to log debug information about each step
	Verbose bool
}

func main() {
	opts := cli.DefaultOptions("scenetool", "Scenetool combines scene descriptions and converts them to single-function objects.")
	cli.Run(opts, &Config{}, Run)
}

// Run runs scenetool with the given configuration, printing to stdout.
func Run(c *Config) error {
	return run(c, os.Stdout)
}

func run(c *Config, w io.Writer) error {
	if c.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	d, err := scenefile.Open(c.File)
	if err != nil {
		return err
	}
	if c.MappingType != "" {
		if err := d.MappingType.SetString(c.MappingType); err != nil {
			return err
		}
	}
	sc, err := d.Scene()
	if err != nil {
		return err
	}

	convert, err := fieldNames(c.Convert)
	if err != nil {
		return err
	}
	copies, err := fieldNames(c.Copy)
	if err != nil {
		return err
	}
	if len(convert) > 0 {
		offset := c.Offset
		if offset == 0 {
			offset = uint32(min(sc.MappingBound(), uint64(^uint32(0))))
		}
		sc, err = scenetools.ConvertToSingleFunctionObjects(sc, convert, copies, offset)
		if err != nil {
			return err
		}
	} else if len(copies) > 0 {
		errors.Log(fmt.Errorf("scenetool: fields to copy %q given without fields to convert, ignoring", c.Copy))
	}
	_, err = fmt.Fprint(w, scenetools.Info(sc))
	return err
}

// fieldNames parses a comma-separated list of field names.
func fieldNames(list string) ([]scene.FieldName, error) {
	var names []scene.FieldName
	for _, s := range strings.Split(list, ",") {
		if strings.TrimSpace(s) == "" {
			continue
		}
		fn, err := scene.ParseFieldName(s)
		if err != nil {
			return nil, err
		}
		names = append(names, fn)
	}
	return names, nil
}
