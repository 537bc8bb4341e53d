// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lifsim

import (
	"flag"
	"log"

	"github.com/emer/lif/prefs"
)

// ParseArgs builds the config from command line args (without the program
// name): defaults, then the -config TOML file, then the flags given
// explicitly. An interactive run with no prefs file uses prefs.DefaultPath.
func ParseArgs(name string, args []string) (*Config, error) {
	cfg := NewConfig()
	fcfg := *cfg
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfgFile := fs.String("config", "", "TOML config file; flags override its values")
	fs.Float64Var(&fcfg.Ge, "ge", fcfg.Ge, "excitatory conductance input [0, 1]")
	fs.Float64Var(&fcfg.Gi, "gi", fcfg.Gi, "inhibitory conductance input [0, 1]")
	fs.Float64Var(&fcfg.Dt, "dt", fcfg.Dt, "integration time step [0, 1]")
	fs.IntVar(&fcfg.Ticks, "ticks", fcfg.Ticks, "number of ticks in a batch run")
	fs.TextVar(&fcfg.HistoryBudget, "history", fcfg.HistoryBudget, "memory budget for the tick history, e.g. 16MB (0 = unbounded)")
	fs.StringVar(&fcfg.CSV, "csv", "", "file to save the history log to")
	fs.StringVar(&fcfg.PNG, "png", "", "file to save the plot to")
	fs.StringVar(&fcfg.PrefsFile, "prefs", "", "preferences file for the interactive shell (default: user config dir)")
	fs.BoolVar(&fcfg.Interactive, "tui", false, "run the interactive terminal shell")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *cfgFile != "" {
		if err := cfg.OpenConfig(*cfgFile); err != nil {
			return nil, err
		}
	}
	set := map[string]func(){
		"ge":      func() { cfg.Ge = fcfg.Ge },
		"gi":      func() { cfg.Gi = fcfg.Gi },
		"dt":      func() { cfg.Dt = fcfg.Dt },
		"ticks":   func() { cfg.Ticks = fcfg.Ticks },
		"history": func() { cfg.HistoryBudget = fcfg.HistoryBudget },
		"csv":     func() { cfg.CSV = fcfg.CSV },
		"png":     func() { cfg.PNG = fcfg.PNG },
		"prefs":   func() { cfg.PrefsFile = fcfg.PrefsFile },
		"tui":     func() { cfg.Interactive = fcfg.Interactive },
	}
	cfg.flagSet = map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		if fn, ok := set[f.Name]; ok {
			fn()
			cfg.flagSet[f.Name] = true
		}
	})

	if cfg.Interactive && cfg.PrefsFile == "" {
		fn, err := prefs.DefaultPath()
		if err != nil {
			log.Println(err)
		} else {
			cfg.PrefsFile = fn
		}
	}
	return cfg, nil
}
