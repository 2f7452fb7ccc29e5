// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"reflect"

	"github.com/podata/po/base/errors"
	"github.com/podata/po/base/reflectx"
	"github.com/podata/po/cli"
	"github.com/spf13/pflag"
)

// ConfigFile is the name of the config file looked up on [cli.ConfigPaths].
const ConfigFile = "po.toml"

// Config contains the configuration information used by po.
// Values come from the `default:` tags, then any config file,
// then command line flags.
type Config struct {

	// the delimiter of input files: tab, comma, space, or detect
	Delim string `default:"detect"`

	// the maximum number of rows to print, eliding the middle rows (0 = all)
	MaxRows int `default:"20"`

	// the output format: table or csv
	Format string `default:"table"`

	// whether to turn off colored output
	NoColor bool

	// whether to print verbose info messages
	Verbose bool

	// whether to print very verbose debug messages
	VeryVerbose bool

	// whether to only print errors
	Quiet bool
}

// flagFields maps flag names to the [Config] fields they set.
var flagFields = map[string]string{
	"delim":        "Delim",
	"max-rows":     "MaxRows",
	"format":       "Format",
	"no-color":     "NoColor",
	"verbose":      "Verbose",
	"very-verbose": "VeryVerbose",
	"quiet":        "Quiet",
}

// addFlags adds the config flags to the given flag set,
// bound to the fields of cfg.
func addFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.Delim, "delim", "d", cfg.Delim, "delimiter of input files: tab, comma, space, or detect")
	fs.IntVarP(&cfg.MaxRows, "max-rows", "n", cfg.MaxRows, "maximum number of rows to print (0 = all)")
	fs.StringVarP(&cfg.Format, "format", "f", cfg.Format, "output format: table or csv")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "turn off colored output")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "print verbose info messages")
	fs.BoolVar(&cfg.VeryVerbose, "very-verbose", cfg.VeryVerbose, "print very verbose debug messages")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "only print errors")
}

// defaultConfig returns a new [Config] with the `default:` tag values.
// The tags are fixed, so a failure to apply them is only logged.
func defaultConfig() *Config {
	cfg := &Config{}
	errors.Log(reflectx.SetFromDefaultTags(cfg))
	return cfg
}

// loadConfig returns the config from the defaults, overlaid by the
// given config file (or po.toml on the standard paths if file is ""),
// overlaid by the flags that were set on the command line.
func loadConfig(fs *pflag.FlagSet, flagCfg *Config, file string) (*Config, error) {
	cfg := defaultConfig()
	var err error
	if file != "" {
		err = cli.Open(cfg, []string{"."}, file)
	} else {
		err = cli.OpenIfExists(cfg, cli.ConfigPaths("po"), ConfigFile)
	}
	if err != nil {
		return nil, err
	}
	cv := reflect.ValueOf(cfg).Elem()
	fv := reflect.ValueOf(flagCfg).Elem()
	fs.Visit(func(f *pflag.Flag) {
		if field, ok := flagFields[f.Name]; ok {
			cv.FieldByName(field).Set(fv.FieldByName(field))
		}
	})
	return cfg, nil
}
