// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import "github.com/emer/lif/chans"

///////////////////////////////////////////////////////////////////////
//  act.go contains the channel params and update functions for the neuron

// Default channel parameters for the point neuron.
const (
	// ErevE is the excitatory reversal potential
	ErevE = 55.0

	// ErevI is the inhibitory reversal potential
	ErevI = -70.0

	// ErevL is the leak reversal potential
	ErevL = -70.0

	// GbarE is the maximal excitatory conductance
	GbarE = 0.5

	// GbarI is the maximal inhibitory conductance
	GbarI = 0.5

	// GbarL is the maximal leak conductance
	GbarL = 1.0

	// Gl is the leak conductance scale
	Gl = 1.0

	// RestVm is the resting membrane potential, where leak drives no current
	RestVm = ErevL
)

// ActParams contains the conductance-based point neuron parameters
// and the functions computing net current and membrane potential from them.
type ActParams struct {
	Gbar chans.Chans `view:"inline" desc:"[Defaults: .5, .5, 1] maximal conductances levels for channels"`
	Erev chans.Chans `view:"inline" desc:"[Defaults: 55, -70, -70] reversal potentials for each channel"`
	Gl   float64     `def:"1" min:"0" desc:"leak conductance scale -- multiplies Gbar.L, as leak is always on"`

	Leak float64 `inactive:"+" view:"-" json:"-" xml:"-" desc:"Gl * Gbar.L -- total leak conductance"`
}

func (ac *ActParams) Defaults() {
	ac.Gbar.SetAll(GbarE, GbarI, GbarL)
	ac.Erev.SetAll(ErevE, ErevI, ErevL)
	ac.Gl = Gl
	ac.Update()
}

// Update must be called after any changes to parameters
func (ac *ActParams) Update() {
	ac.Leak = ac.Gl * ac.Gbar.L
}

// InetFmG computes the net current from excitatory and inhibitory conductance
// inputs ge, gi (in units of the respective Gbar) at membrane potential vm,
// including the always-on leak.
func (ac *ActParams) InetFmG(vm, ge, gi float64) float64 {
	dr := ac.Erev.Drive(vm)
	return ge*ac.Gbar.E*dr.E + gi*ac.Gbar.I*dr.I + ac.Leak*dr.L
}

// VmFmInet takes one explicit Euler step of size dt from vm along inet.
// There is no clipping: large dt can overshoot or oscillate.
func (ac *ActParams) VmFmInet(vm, dt, inet float64) float64 {
	return vm + dt*inet
}

var defAct = func() ActParams {
	ac := ActParams{}
	ac.Defaults()
	return ac
}()

// NetCurrent computes the net synaptic + leak current with the default
// channel parameters.
func NetCurrent(ge, gi, vm float64) float64 {
	return defAct.InetFmG(vm, ge, gi)
}

// NextVm returns the membrane potential after one Euler step.
func NextVm(vmPrev, dt, inet float64) float64 {
	return defAct.VmFmInet(vmPrev, dt, inet)
}
