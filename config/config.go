// Package config holds the run configuration shared by the urbanplan
// commands. Values come from three layers, later ones winning: built-in
// defaults, an optional TOML file, and command-line flags.
//
// A config file looks like:
//
//	dataset   = "data/nagpur.json"
//	output    = "json"
//	budget    = 80
//	sensors   = 8
//	threshold = 25.0
//
//	[route]
//	start = "N1"
//	end   = "N9"
package config

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/urbanplan/conflict"
	"github.com/katalvlaran/urbanplan/nqueens"
	"github.com/katalvlaran/urbanplan/planerr"
	"github.com/katalvlaran/urbanplan/planner"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Defaults applied by Default.
const (
	DefaultBudget  = 50
	DefaultSensors = 8
)

// ErrInvalid indicates a configuration value outside its accepted range.
var ErrInvalid = planerr.New(planerr.InvalidInput, "config: invalid value")

// Route names the endpoints of the default shortest-path query.
type Route struct {
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// Config is the merged run configuration.
type Config struct {
	// Dataset is the snapshot path; empty selects the built-in sample.
	Dataset string `toml:"dataset"`

	// Output is OutputText or OutputJSON.
	Output string `toml:"output"`

	Budget    int     `toml:"budget"`
	Sensors   int     `toml:"sensors"`
	Threshold float64 `toml:"threshold"`
	Route     Route   `toml:"route"`
	Verbose   bool    `toml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output:    OutputText,
		Budget:    DefaultBudget,
		Sensors:   DefaultSensors,
		Threshold: conflict.DefaultThreshold,
		Route:     Route{Start: "N1"},
	}
}

// Load overlays the TOML file at path onto Default.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}

	return cfg, nil
}

// BindFlags registers one flag per field on fs, using the current values of
// c as defaults. Parsing fs then writes straight into c.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Dataset, "dataset", c.Dataset, "dataset file (.json, .yaml, .toml); empty uses the built-in sample")
	fs.StringVarP(&c.Output, "output", "o", c.Output, "output format: text or json")
	fs.IntVar(&c.Budget, "budget", c.Budget, "project budget")
	fs.IntVar(&c.Sensors, "sensors", c.Sensors, "number of sensors to place")
	fs.Float64Var(&c.Threshold, "threshold", c.Threshold, "conflict distance threshold")
	fs.StringVar(&c.Route.Start, "from", c.Route.Start, "default route start node")
	fs.StringVar(&c.Route.End, "to", c.Route.End, "default route end node; empty uses the last network node")
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "enable debug logging")
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	switch {
	case c.Output != OutputText && c.Output != OutputJSON:
		return fmt.Errorf("%w: output %q", ErrInvalid, c.Output)
	case c.Budget < 0:
		return fmt.Errorf("%w: budget %d", ErrInvalid, c.Budget)
	case c.Sensors < nqueens.MinN || c.Sensors > nqueens.MaxN:
		return fmt.Errorf("%w: sensors %d not in [%d, %d]", ErrInvalid, c.Sensors, nqueens.MinN, nqueens.MaxN)
	case math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) || c.Threshold <= 0:
		return fmt.Errorf("%w: threshold %v", ErrInvalid, c.Threshold)
	}

	return nil
}

// Params converts the solver-facing fields for planner.RunAll.
func (c Config) Params() planner.Params {
	return planner.Params{
		RouteStart: c.Route.Start,
		RouteEnd:   c.Route.End,
		Budget:     c.Budget,
		Sensors:    c.Sensors,
		Threshold:  c.Threshold,
	}
}

// Overlay returns base with every flag explicitly set on fs applied on top.
// Flags fs does not share with BindFlags are ignored.
func Overlay(base Config, fs *pflag.FlagSet) (Config, error) {
	shadow := pflag.NewFlagSet("overlay", pflag.ContinueOnError)
	base.BindFlags(shadow)

	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil || shadow.Lookup(f.Name) == nil {
			return
		}
		err = shadow.Set(f.Name, f.Value.String())
	})
	if err != nil {
		return Config{}, errors.Wrap(err, "apply flags")
	}

	return base, nil
}
