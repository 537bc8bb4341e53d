// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lifsim runs the point neuron simulation from a Config, either as a
batch run that saves the history log and plot, or through the interactive
terminal shell.
*/
package lifsim

import (
	"fmt"
	"log"

	"github.com/emer/lif/lif"
	"github.com/emer/lif/shell"
	"github.com/emer/lif/vmlog"
	"github.com/emer/lif/vmplot"
	"github.com/goki/gi/gi"
)

// Sim holds the neuron and the config it was built from
type Sim struct {

	// the config
	Config *Config

	// the neuron
	Nrn *lif.Neuron
}

// New builds the neuron from the config
func New(cfg *Config) *Sim {
	ss := &Sim{Config: cfg}
	ss.Nrn = lif.NewNeuron(cfg.Prefs())
	ss.Nrn.Gi = cfg.Gi
	ss.Nrn.Hist.SetMaxRecs(cfg.MaxRecs())
	return ss
}

// RunSim validates the config and runs the sim
func RunSim(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Interactive {
		return RunShell(cfg)
	}
	ss := New(cfg)
	ss.Run()
	return ss.Save()
}

// Run advances the configured number of ticks
func (ss *Sim) Run() {
	ss.Nrn.Run(ss.Config.Ticks)
	log.Printf("lifsim: ge: %v gi: %v dt: %v -- %s\n", ss.Nrn.Ge, ss.Nrn.Gi, ss.Nrn.Dt, ss.Nrn.Counters())
}

// Save writes the history log and plot files named in the config
func (ss *Sim) Save() error {
	if fn := ss.Config.CSV; fn != "" {
		if err := vmlog.SaveCSV(gi.FileName(fn), &ss.Nrn.Hist); err != nil {
			return fmt.Errorf("lifsim: saving %s: %w", fn, err)
		}
		log.Printf("lifsim: saved history log: %s\n", fn)
	}
	if fn := ss.Config.PNG; fn != "" {
		if err := vmplot.NewPlot().SavePNG(fn, &ss.Nrn.Hist); err != nil {
			return fmt.Errorf("lifsim: %w", err)
		}
		log.Printf("lifsim: saved plot: %s\n", fn)
	}
	return nil
}

// RunShell runs the interactive shell, starting from ShellPrefs.
// Ge and Dt are saved back to the prefs file on quit.
func RunShell(cfg *Config) error {
	ss := New(cfg)
	ss.Nrn.SetPrefs(cfg.ShellPrefs())
	return shell.Run(ss.Nrn, shell.Files{Prefs: cfg.PrefsFile, CSV: cfg.CSV, PNG: cfg.PNG})
}
