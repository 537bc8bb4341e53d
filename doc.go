// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lif is the overall repository for a leaky integrate-and-fire point
neuron simulator implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* lif: the neuron itself: channel parameters, the net current and Euler
membrane potential update, the tick-by-tick advance / reset state machine,
and the History of (tick, V_m, I_net) records.

* chans: per-channel (excitatory, inhibitory, leak) values used for reversal
potentials and maximal conductances.

* prefs: the user-edited inputs persisted across sessions.

* vmlog and vmplot: history tables saved as CSV, and PNG plots of the V_m and
I_net series.

* shell and lifsim: the interactive terminal shell and the config-driven
batch runner used by cmd/lifsim.

* examples: examples/eqplot plots the I-V curve and time course of the
neuron equations.
*/
package lif
