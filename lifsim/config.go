// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lifsim

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/c2h5oh/datasize"
	"github.com/emer/lif/lif"
	"github.com/emer/lif/prefs"
)

// Config has the overall sim configuration options
type Config struct {

	// Ge is the excitatory conductance input, in [0, 1]
	Ge float64 `toml:"ge"`

	// Gi is the inhibitory conductance input, in [0, 1].
	// It is never persisted in the prefs file.
	Gi float64 `toml:"gi"`

	// Dt is the integration time step, in [0, 1]
	Dt float64 `toml:"dt"`

	// Ticks is the number of ticks to advance in a batch run
	Ticks int `toml:"ticks"`

	// HistoryBudget bounds the memory used by the tick history,
	// e.g. "16MB".  0 = unbounded.
	HistoryBudget datasize.ByteSize `toml:"history_budget"`

	// CSV is the file to save the history log to -- empty = none
	CSV string `toml:"csv"`

	// PNG is the file to save the plot to -- empty = none
	PNG string `toml:"png"`

	// PrefsFile stores Ge and Dt across interactive sessions
	PrefsFile string `toml:"prefs_file"`

	// Interactive runs the terminal shell instead of a batch run
	Interactive bool `toml:"interactive"`

	// names of the flags given explicitly on the command line
	flagSet map[string]bool
}

func (cfg *Config) Defaults() {
	cfg.Ge = 1
	cfg.Gi = 0
	cfg.Dt = 0.1
	cfg.Ticks = 100
	cfg.HistoryBudget = 0
}

// NewConfig returns a config with defaults
func NewConfig() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}

// OpenConfig overlays the values in the given TOML file onto cfg
func (cfg *Config) OpenConfig(path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("lifsim: reading config %s: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return fmt.Errorf("lifsim: unknown keys in config %s: %v", path, und)
	}
	return nil
}

// Validate checks that all inputs are finite and within the ranges
// the host controls allow.
func (cfg *Config) Validate() error {
	var errs []error
	for _, v := range []struct {
		name string
		val  float64
	}{{"ge", cfg.Ge}, {"gi", cfg.Gi}, {"dt", cfg.Dt}} {
		switch {
		case math.IsNaN(v.val) || math.IsInf(v.val, 0):
			errs = append(errs, fmt.Errorf("%s = %v: %w", v.name, v.val, lif.ErrNonFinite))
		case v.val < prefs.InputRange.Min || v.val > prefs.InputRange.Max:
			errs = append(errs, fmt.Errorf("%s = %v: out of range [%v, %v]", v.name, v.val, prefs.InputRange.Min, prefs.InputRange.Max))
		}
	}
	if cfg.Ticks < 0 {
		errs = append(errs, fmt.Errorf("ticks = %d: must not be negative", cfg.Ticks))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("lifsim: invalid config: %w", err)
	}
	return nil
}

// MaxRecs returns the number of history records that fit in HistoryBudget.
// 0 means unbounded; a nonzero budget always retains at least one record.
func (cfg *Config) MaxRecs() int {
	if cfg.HistoryBudget == 0 {
		return 0
	}
	return max(1, int(cfg.HistoryBudget.Bytes()/uint64(lif.RecordSize)))
}

// Prefs returns the persisted subset of the config
func (cfg *Config) Prefs() prefs.Prefs {
	return prefs.Prefs{Ge: cfg.Ge, Dt: cfg.Dt}
}

// IsFlagSet returns true if the named flag was given on the command line
func (cfg *Config) IsFlagSet(name string) bool {
	return cfg.flagSet[name]
}

// ShellPrefs returns the inputs the interactive shell starts from.
// Priority, highest first: flags given on the command line, the stored
// prefs file, then the config file and defaults.
func (cfg *Config) ShellPrefs() prefs.Prefs {
	pf := cfg.Prefs()
	if cfg.PrefsFile != "" {
		if err := pf.Read(cfg.PrefsFile); err != nil {
			log.Println(err)
		}
	}
	if cfg.IsFlagSet("ge") {
		pf.Ge = cfg.Ge
	}
	if cfg.IsFlagSet("dt") {
		pf.Dt = cfg.Dt
	}
	return pf
}
