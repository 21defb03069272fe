package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/depp/mkspritesheet/lib/getpath"
	"github.com/depp/mkspritesheet/lib/rectpack"
)

const defaultOutput = "spritesheet"

// A config holds the tool settings. Settings come from an optional TOML file,
// and flags override the file.
type config struct {
	Output     string `toml:"output"`
	MaxSize    int    `toml:"max_size"`
	InputsFrom string `toml:"inputs_from"`
	Verbose    bool   `toml:"verbose"`
}

func defaultConfig() config {
	return config{
		Output:  defaultOutput,
		MaxSize: rectpack.DefaultMaxSize,
	}
}

// readConfig reads a TOML config file on top of the given settings.
func readConfig(filename string, c *config) error {
	md, err := toml.DecodeFile(filename, c)
	if err != nil {
		return &fileError{filename, err}
	}
	if keys := md.Undecoded(); len(keys) != 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return &fileError{filename, fmt.Errorf("unknown settings: %s", strings.Join(names, ", "))}
	}
	return nil
}

// flagValues are the values of command-line flags, before merging with the
// config file.
type flagValues struct {
	config     string
	output     string
	maxSize    int
	inputsFrom string
	verbose    bool
}

func (v *flagValues) register(fs *pflag.FlagSet) {
	fs.StringVar(&v.config, "config", "", "read settings from TOML `file`")
	fs.StringVarP(&v.output, "output", "o", defaultOutput, "base name of output files")
	fs.IntVar(&v.maxSize, "max-size", rectpack.DefaultMaxSize, "maximum width and height of the output image")
	fs.StringVar(&v.inputsFrom, "inputs-from", "", "read input file names from `file`, one per line")
	fs.BoolVarP(&v.verbose, "verbose", "v", false, "log each packing attempt")
}

// resolve returns the final configuration.
func (v *flagValues) resolve(fs *pflag.FlagSet) (config, error) {
	c := defaultConfig()
	if v.config != "" {
		if err := readConfig(getpath.GetPath(v.config), &c); err != nil {
			return c, err
		}
	}
	if fs.Changed("output") {
		c.Output = v.output
	}
	if fs.Changed("max-size") {
		c.MaxSize = v.maxSize
	}
	if fs.Changed("inputs-from") {
		c.InputsFrom = v.inputsFrom
	}
	if fs.Changed("verbose") {
		c.Verbose = v.verbose
	}
	if c.Output == "" {
		return c, errors.New("empty output name")
	}
	if c.MaxSize < 1 {
		return c, fmt.Errorf("invalid maximum size: %d", c.MaxSize)
	}
	return c, nil
}
