// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifnet

import (
	"github.com/ccnlab/ifnet/dblexp"
	"github.com/goki/mat32"
)

///////////////////////////////////////////////////////////////////////
//  act.go contains the membrane potential params and voltage terms

// AHPParams are the after-hyperpolarization (AHP) parameters: following the
// absolute refractory period, the potential dips below rest by Vahp and
// decays back with a single exponential of time constant Tau.
type AHPParams struct {
	Vahp float32 `def:"-20" desc:"peak hyperpolarization (mV), relative to resting potential"`
	Tau  float32 `def:"30" desc:"decay time constant (ms)"`
}

func (ah *AHPParams) Defaults() {
	ah.Vahp = -20
	ah.Tau = 30
}

func (ah *AHPParams) Update() {
}

// VAHP returns the AHP contribution at gap ms after the last spike.
func (ah *AHPParams) VAHP(gap float32) float32 {
	return ah.Vahp * mat32.Exp(-gap/ah.Tau)
}

// ifnet.ActParams contains the membrane potential computation params for the
// integrate-and-fire neuron.  Potential is always the closed-form sum
// Vrest + VSpike + VAHP + VPSP -- there is no integrated current state.
type ActParams struct {
	Vrest  float32       `def:"-60" desc:"resting membrane potential (mV)"`
	Vact   float32       `def:"-50" desc:"action potential firing threshold (mV)"`
	Vspike float32       `def:"60" desc:"flat depolarization plateau (mV, relative to rest) during the absolute refractory window -- stands in for the spike's own rising edge, which is not modeled as a shape"`
	AbsRef float32       `def:"1" desc:"absolute refractory window (ms) after a spike, during which no threshold spike can be detected"`
	AHP    AHPParams     `view:"inline" desc:"after-hyperpolarization following the refractory window"`
	PSP    dblexp.Params `view:"inline" desc:"dual-exponential postsynaptic potential kernel, shared by all receptors"`
}

func (ac *ActParams) Defaults() {
	ac.Vrest = -60
	ac.Vact = -50
	ac.Vspike = 60
	ac.AbsRef = 1
	ac.AHP.Defaults()
	ac.PSP.Defaults()
	ac.Update()
}

// Update must be called after any changes to parameters
func (ac *ActParams) Update() {
	ac.AHP.Update()
	ac.PSP.Update()
}

// VSpike returns the self-afterpotential term: the fixed depolarizing
// plateau while within absolute refractory, else 0.  The observable effect
// of the spike event itself is confined to this plateau.
func (ac *ActParams) VSpike(se *StepEval) float32 {
	if !se.HasSpiked {
		return 0
	}
	if se.InAbsRef {
		return ac.Vspike
	}
	return 0
}

// VAHP returns the after-hyperpolarization term: 0 if the neuron has never
// spiked or is within absolute refractory, else the exponential decay from
// the AHP peak evaluated at the current since-spike gap.
func (ac *ActParams) VAHP(se *StepEval) float32 {
	if !se.HasSpiked || se.InAbsRef {
		return 0
	}
	return ac.AHP.VAHP(se.SinceSpike)
}
