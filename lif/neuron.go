// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lif simulates a single-compartment leaky integrate-and-fire point
neuron driven by excitatory and inhibitory synaptic conductances.

The membrane potential is advanced one tick at a time by explicit Euler
integration of the net current:

	Inet = ge * Gbar.E * (Erev.E - Vm) + gi * Gbar.I * (Erev.I - Vm) + Gl * Gbar.L * (Erev.L - Vm)
	Vm  += Dt * Inet

There is no spiking threshold or reset: Vm just relaxes toward the
conductance-weighted equilibrium of the reversal potentials.
Every tick is recorded in a History that exposes the V_m and I_net
series for plotting.
*/
package lif

import (
	"errors"
	"fmt"
	"math"

	"github.com/emer/lif/prefs"
)

// ErrNonFinite is reported by CheckInputs for NaN or infinite state
var ErrNonFinite = errors.New("non-finite value")

// Neuron is the runtime state of the simulated neuron.
// It is owned by a single host loop and is not safe for concurrent use.
type Neuron struct {

	// channel parameters
	Act ActParams `view:"no-inline"`

	// membrane potential
	Vm float64 `inactive:"+"`

	// number of ticks since the last reset -- also the tick of the next record
	Tick int `inactive:"+"`

	// excitatory conductance input, in units of Gbar.E
	Ge float64 `min:"0" max:"1" step:"0.1"`

	// inhibitory conductance input, in units of Gbar.I -- not persisted
	Gi float64 `min:"0" max:"1" step:"0.1"`

	// integration time step
	Dt float64 `min:"0" max:"1" step:"0.1"`

	// records of every tick since the last reset
	Hist History `view:"-"`
}

// NewNeuron returns a neuron at rest with its inputs taken from
// the persisted preferences.
func NewNeuron(pf prefs.Prefs) *Neuron {
	nrn := &Neuron{}
	nrn.Defaults()
	nrn.SetPrefs(pf)
	return nrn
}

// Defaults sets default params and resets all state
func (nrn *Neuron) Defaults() {
	nrn.Act.Defaults()
	nrn.Reset()
}

// Reset restores the neuron to rest: Vm at the leak reversal potential,
// tick zero, empty history, and zero conductance and time step inputs.
func (nrn *Neuron) Reset() {
	nrn.Vm = nrn.Act.Erev.L
	nrn.Tick = 0
	nrn.Ge = 0
	nrn.Gi = 0
	nrn.Dt = 0
	nrn.Hist.Reset()
}

// SetPrefs sets the user-editable inputs from preferences
func (nrn *Neuron) SetPrefs(pf prefs.Prefs) {
	nrn.Ge = pf.Ge
	nrn.Dt = pf.Dt
}

// Prefs returns the persisted subset of the inputs
func (nrn *Neuron) Prefs() prefs.Prefs {
	return prefs.Prefs{Ge: nrn.Ge, Dt: nrn.Dt}
}

// Advance computes the net current at the current Vm, takes one Euler
// step, records the result under the current tick and increments the tick.
func (nrn *Neuron) Advance() Record {
	inet := nrn.Act.InetFmG(nrn.Vm, nrn.Ge, nrn.Gi)
	vm := nrn.Act.VmFmInet(nrn.Vm, nrn.Dt, inet)
	rec := Record{Tick: nrn.Tick, Vm: vm, Inet: inet}
	nrn.Vm = vm
	nrn.Hist.Add(rec)
	nrn.Tick++
	return rec
}

// Run advances n ticks
func (nrn *Neuron) Run(n int) {
	for i := 0; i < n; i++ {
		nrn.Advance()
	}
}

// AtRest returns true if Vm has not been driven above the inhibitory
// reversal potential.
func (nrn *Neuron) AtRest() bool {
	return nrn.Vm <= nrn.Act.Erev.I
}

// CheckInputs returns an error wrapping ErrNonFinite if any input or the
// membrane potential is NaN or infinite. Advance does not check: non-finite
// values propagate into all subsequent records.
func (nrn *Neuron) CheckInputs() error {
	vals := []struct {
		name string
		val  float64
	}{{"Ge", nrn.Ge}, {"Gi", nrn.Gi}, {"Dt", nrn.Dt}, {"Vm", nrn.Vm}}
	var errs []error
	for _, v := range vals {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			errs = append(errs, fmt.Errorf("lif: %s = %v: %w", v.name, v.val, ErrNonFinite))
		}
	}
	return errors.Join(errs...)
}

// Counters returns a string of the current counter state
// use tabs to achieve a reasonable formatting overall
// and add a few tabs at the end to allow for expansion..
func (nrn *Neuron) Counters() string {
	return fmt.Sprintf("Tick:\t%d\tVm:\t%.4g\t\t\t", nrn.Tick, nrn.Vm)
}

// VmLabel is the status line for the membrane potential
func (nrn *Neuron) VmLabel() string {
	if nrn.AtRest() {
		return fmt.Sprintf("Vm at resting potential: %v", nrn.Vm)
	}
	return fmt.Sprintf("Vm: %v", nrn.Vm)
}
