// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package dblexp provides the dual-exponential response kernel used for
postsynaptic potentials (PSPs) in integrate-and-fire neurons: the difference
of a slow decay exponential and a fast rise exponential, producing a
unimodal rising-then-decaying voltage deflection following a presynaptic
spike.
*/
package dblexp

import "github.com/chewxy/math32"

// DblExp computes the dual-exponential kernel at tdiff time after the
// triggering event: amp * (exp(-tdiff/tauDecay) - exp(-tdiff/tauRise)).
// Returns 0 for tdiff < 0 (no response before the event).
// tauRise must be strictly less than tauDecay for the intended unimodal
// shape -- this is not enforced; a misconfiguration produces a monotonic
// or inverted curve.
func DblExp(amp, tauRise, tauDecay, tdiff float32) float32 {
	if tdiff < 0 {
		return 0
	}
	return amp * (math32.Exp(-tdiff/tauDecay) - math32.Exp(-tdiff/tauRise))
}

// Params are the dual-exponential PSP kernel parameters.
// All receptors on a neuron share one set of these.
type Params struct {
	Amp      float32 `def:"20" desc:"unit PSP amplitude (mV) for a connection weight of 1 -- scaled by the weight of each synaptic edge"`
	TauRise  float32 `def:"5" min:"0" desc:"rise time constant (ms) -- must be < TauDecay"`
	TauDecay float32 `def:"25" min:"0" desc:"decay time constant (ms)"`
}

func (dp *Params) Defaults() {
	dp.Amp = 20
	dp.TauRise = 5
	dp.TauDecay = 25
}

func (dp *Params) Update() {
}

// Resp returns the PSP response at tdiff ms after a presynaptic spike,
// for a synaptic edge of weight wt.  Negative weights produce inhibitory
// (negative-valued) responses.
func (dp *Params) Resp(wt, tdiff float32) float32 {
	return DblExp(wt*dp.Amp, dp.TauRise, dp.TauDecay, tdiff)
}

// PeakTime returns the analytic time of the kernel maximum after a spike:
// rise * decay / (decay - rise) * ln(decay / rise).
// 10.06 ms for the default 5 / 25 time constants.
func (dp *Params) PeakTime() float32 {
	return dp.TauRise * dp.TauDecay / (dp.TauDecay - dp.TauRise) * math32.Log(dp.TauDecay/dp.TauRise)
}

// Peak returns the PSP response at PeakTime for an edge of weight wt.
func (dp *Params) Peak(wt float32) float32 {
	return dp.Resp(wt, dp.PeakTime())
}
