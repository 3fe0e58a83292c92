// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifnet

import (
	"github.com/emer/etable/minmax"
)

// NeverSpiked is the since-spike sentinel for a neuron that has never fired:
// large enough that every voltage kernel evaluates to ~0 at this gap.
const NeverSpiked = float32(99999999.9)

// Receptor is one incoming synaptic edge: the roster index of the sending
// neuron plus a connection weight.  The receiving neuron never owns its
// senders -- it holds only the index into the network registry.
// Multiple edges from the same sender, with different weights, are permitted.
type Receptor struct {
	SendIndex int32   `desc:"index of the sending neuron in the network roster"`
	Wt        float32 `desc:"connection weight -- negative values are inhibitory"`
}

// ifnet.Neuron is a simple integrate-and-fire neuron: membrane potential is
// a closed-form sum of a refractory spike plateau, an after-hyperpolarization
// decay, and dual-exponential postsynaptic potentials from its receptors,
// evaluated once per discrete time step.  Spike times accumulate in
// SpikeTimes from threshold crossings, direct stimulation, and spontaneous
// activity alike.
type Neuron struct {
	Nm    string `desc:"unique name (label) of the neuron"`
	Index int32  `desc:"index of this neuron in the network roster -- -1 until added"`

	Act   ActParams   `view:"inline" desc:"membrane potential parameters: rest, threshold, refractory plateau, AHP, PSP kernel"`
	Spont SpontParams `view:"inline" desc:"spontaneous (stochastic) activity generator -- disabled by default"`

	Receptors  []Receptor `desc:"incoming synaptic edges"`
	DirectStim []float32  `desc:"scheduled direct (forced) stimulation times, ascending, consumed front-first"`

	Vm         float32   `desc:"current membrane potential (mV) -- resting potential until the first Update"`
	SpikeTimes []float32 `desc:"times (ms) of all spikes so far -- non-decreasing, append-only"`
	LastUpdate float32   `desc:"time of the last processed update -- requests at or before this are no-ops"`
	InAbsRef   bool      `desc:"within the absolute refractory window as of the last update"`

	SampleBuf []float32 `desc:"optional fixed-length FIFO owned by the caller -- when non-nil, each update shifts it right and writes Vm - Vrest at the head"`

	TRecorded  []float32  `desc:"times of recorded samples"`
	VmRecorded []float32  `desc:"recorded membrane potentials, parallel to TRecorded"`
	VmRange    minmax.F32 `desc:"range of recorded Vm values"`
}

// NewNeuron returns a new neuron with the given name and default parameters.
func NewNeuron(name string) *Neuron {
	nrn := &Neuron{Nm: name, Index: -1}
	nrn.Defaults()
	return nrn
}

func (nrn *Neuron) Defaults() {
	nrn.Act.Defaults()
	nrn.Spont.Defaults()
	nrn.Vm = nrn.Act.Vrest
	nrn.LastUpdate = -1
	nrn.VmRange.SetInfinity()
}

// HasSpiked returns true if the neuron has at least one recorded spike.
func (nrn *Neuron) HasSpiked() bool {
	return len(nrn.SpikeTimes) > 0
}

// SinceSpike returns t minus the most recent spike time, or NeverSpiked if
// the neuron has never fired.
func (nrn *Neuron) SinceSpike(t float32) float32 {
	n := len(nrn.SpikeTimes)
	if n == 0 {
		return NeverSpiked
	}
	return t - nrn.SpikeTimes[n-1]
}

// SinceSpikeBefore is SinceSpike restricted to spikes strictly earlier than
// t, used by the NextStep synaptic delay policy so that a spike recorded at
// the current step time does not mask an earlier one.
func (nrn *Neuron) SinceSpikeBefore(t float32) float32 {
	for i := len(nrn.SpikeTimes) - 1; i >= 0; i-- {
		if nrn.SpikeTimes[i] < t {
			return t - nrn.SpikeTimes[i]
		}
	}
	return NeverSpiked
}

// StepEval is the per-step evaluation context shared by the voltage term
// computations, the threshold check, and the spontaneous activity step.
// It is computed once per neuron per step and passed explicitly.
type StepEval struct {
	HasSpiked  bool    `desc:"the neuron has at least one recorded spike"`
	SinceSpike float32 `desc:"time since the most recent spike -- NeverSpiked if none"`
	InAbsRef   bool    `desc:"within the absolute refractory window"`
}

// EvalAt computes the step evaluation context at time t.
func (nrn *Neuron) EvalAt(t float32) StepEval {
	se := StepEval{HasSpiked: nrn.HasSpiked(), SinceSpike: nrn.SinceSpike(t)}
	se.InAbsRef = se.HasSpiked && se.SinceSpike <= nrn.Act.AbsRef
	return se
}

// VPSP sums the dual-exponential PSP contributions over all receptor edges
// at time t.  Each edge contributes only if its sender has spiked; sender
// spike recency resolves according to the network delay policy.
func (nrn *Neuron) VPSP(nt *Network, t float32) float32 {
	vpsp := float32(0)
	for _, rc := range nrn.Receptors {
		snd := nt.Neurons[rc.SendIndex]
		if !snd.HasSpiked() {
			continue
		}
		var gap float32
		if nt.Delay == NextStep {
			gap = snd.SinceSpikeBefore(t)
		} else {
			gap = snd.SinceSpike(t)
		}
		vpsp += nrn.Act.PSP.Resp(rc.Wt, gap)
	}
	return vpsp
}

// UpdateVm computes Vm at time t as Vrest + VSpike + VAHP + VPSP, refreshes
// the refractory flag, rolls the sample FIFO if attached, and records the
// sample if requested.  Returns the step evaluation for the remaining
// sub-steps of Update.
func (nrn *Neuron) UpdateVm(nt *Network, t float32, record bool) StepEval {
	se := nrn.EvalAt(t)
	nrn.InAbsRef = se.InAbsRef
	nrn.Vm = nrn.Act.Vrest + nrn.Act.VSpike(&se) + nrn.Act.VAHP(&se) + nrn.VPSP(nt, t)
	if nrn.SampleBuf != nil {
		n := len(nrn.SampleBuf)
		copy(nrn.SampleBuf[1:], nrn.SampleBuf[:n-1])
		nrn.SampleBuf[0] = nrn.Vm - nrn.Act.Vrest
	}
	if record {
		nrn.Record(t)
	}
	return se
}

// DetectThreshold records a spike at t if Vm has reached the firing
// threshold.  No-op during absolute refractory.  This is the only source of
// endogenous (non-forced, non-spontaneous) spikes.
func (nrn *Neuron) DetectThreshold(t float32, se *StepEval) {
	if se.InAbsRef {
		return
	}
	if nrn.Vm >= nrn.Act.Vact {
		nrn.SpikeTimes = append(nrn.SpikeTimes, t)
	}
}

// Update advances the neuron one discrete step to time t, performing in
// order: direct stimulation consumption, membrane potential update (which
// refreshes the refractory flag and optionally records), threshold
// detection, and the spontaneous activity step.  A t at or before the last
// processed update time is a no-op, protecting against out-of-order replay.
func (nrn *Neuron) Update(nt *Network, t float32, record bool) {
	if t <= nrn.LastUpdate {
		return
	}
	nrn.StimStep(t)
	se := nrn.UpdateVm(nt, t, record)
	nrn.DetectThreshold(t, &se)
	nrn.SpontStep(t, &se)
	nrn.LastUpdate = t
}

// Record appends (t, Vm) to the recording buffers.
func (nrn *Neuron) Record(t float32) {
	nrn.TRecorded = append(nrn.TRecorded, t)
	nrn.VmRecorded = append(nrn.VmRecorded, nrn.Vm)
	nrn.VmRange.FitValInRange(nrn.Vm)
}

// GetRecording returns the recorded series under fixed keys for interchange
// with reporting tools.  Currently the membrane potential under "Vm";
// corresponding times are in TRecorded.
func (nrn *Neuron) GetRecording() map[string][]float32 {
	return map[string][]float32{"Vm": nrn.VmRecorded}
}
