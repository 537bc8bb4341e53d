// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides the per-channel values for a single-compartment
point neuron based on the standard equivalent RC circuit model
(i.e., basic Ohms law equations).
Includes excitatory, inhibitory, and leak channels.
*/
package chans

// Chans holds one value per ion channel in the point-neuron equation.
// The same type is used for reversal potentials and for maximal conductances.
type Chans struct {

	// excitatory sodium (Na) AMPA channels activated by synaptic glutamate
	E float64

	// inhibitory chloride (Cl-) channels activated by synaptic GABA
	I float64

	// constant leak (potassium, K+) channels -- determines resting potential
	L float64
}

// SetAll sets all the values
func (ch *Chans) SetAll(e, i, l float64) {
	ch.E, ch.I, ch.L = e, i, l
}

// Drive returns the driving potential (value - vm) for each channel,
// where the receiver holds reversal potentials.
func (ch *Chans) Drive(vm float64) Chans {
	return Chans{E: ch.E - vm, I: ch.I - vm, L: ch.L - vm}
}

// Mul returns the per-channel product of the two sets of values.
func (ch *Chans) Mul(oth Chans) Chans {
	return Chans{E: ch.E * oth.E, I: ch.I * oth.I, L: ch.L * oth.L}
}

// Sum returns E + I + L
func (ch *Chans) Sum() float64 {
	return ch.E + ch.I + ch.L
}
