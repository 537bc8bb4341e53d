// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// lifsim simulates a leaky integrate-and-fire point neuron, either
// interactively in the terminal (-tui) or as a batch run saving its
// history log and plot.
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/emer/lif/lifsim"
)

func main() {
	cfg, err := lifsim.ParseArgs(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalln(err)
	}
	if err := lifsim.RunSim(cfg); err != nil {
		log.Fatalln(err)
	}
}
