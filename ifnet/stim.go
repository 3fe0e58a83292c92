// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifnet

import (
	"fmt"

	"github.com/emer/emergent/erand"
)

///////////////////////////////////////////////////////////////////////
//  stim.go contains direct (forced) stimulation and the spontaneous
//  activity generator

// AttachDirectStim schedules a forced spike at time t, regardless of the
// neuron's dynamics (e.g., as via patch-clamping).  Times must be appended
// in ascending order -- they are consumed front-first as the simulation
// clock reaches them.
func (nrn *Neuron) AttachDirectStim(t float32) {
	nrn.DirectStim = append(nrn.DirectStim, t)
}

// StimStep consumes at most one due entry from the direct stimulation
// schedule, recording it as a spike at its scheduled time.  It bypasses
// potential computation and threshold detection entirely.  If more than one
// entry is due in a single step (step size coarser than the stimulation
// spacing), the extras are consumed one per subsequent step and thus fire
// late -- a known lossy edge of the discrete update, not corrected here.
func (nrn *Neuron) StimStep(t float32) {
	if len(nrn.DirectStim) == 0 || nrn.DirectStim[0] > t {
		return
	}
	tfire := nrn.DirectStim[0]
	nrn.DirectStim = nrn.DirectStim[1:]
	nrn.SpikeTimes = append(nrn.SpikeTimes, tfire)
}

// IntervalDist generates inter-spike intervals for the spontaneous renewal
// process.  Implementations must never return a negative interval.
// Substitutable with a fixed-sequence source for deterministic testing.
type IntervalDist interface {
	// Interval returns the next inter-spike interval (ms)
	Interval() float32
}

// TruncNormal is the default IntervalDist: a Gaussian with the given mean
// and standard deviation, truncated by rejection to non-negative support
// [0, 2*mean].  Draws come from erand's global source -- seed with rand.Seed
// for reproducible runs.
type TruncNormal struct {
	erand.RndParams
}

// NewTruncNormal returns a truncated normal interval distribution with the
// given mean and standard deviation (both ms).
func NewTruncNormal(mean, stdev float32) *TruncNormal {
	tn := &TruncNormal{}
	tn.Dist = erand.Gaussian
	tn.Mean = float64(mean)
	tn.Var = float64(stdev)
	return tn
}

func (tn *TruncNormal) Interval() float32 {
	for {
		x := tn.Gen(-1)
		if x >= 0 && x <= 2*tn.Mean {
			return float32(x)
		}
	}
}

// SpontParams is the spontaneous (stochastic) activity generator: a
// self-renewing renewal process producing real spikes, indistinguishable
// downstream from threshold-crossing spikes.  Disabled when Mean is 0.
type SpontParams struct {
	Mean  float32      `desc:"mean inter-spike interval (ms) -- 0 disables spontaneous activity"`
	Stdev float32      `desc:"standard deviation of the inter-spike interval (ms)"`
	Next  float32      `desc:"absolute time of the next scheduled spontaneous spike -- -1 until first scheduled"`
	Dist  IntervalDist `view:"-" desc:"interval distribution -- TruncNormal by default, substitutable for testing"`
}

func (sp *SpontParams) Defaults() {
	sp.Next = -1
}

func (sp *SpontParams) Update() {
}

// On returns true if spontaneous activity is enabled.
func (sp *SpontParams) On() bool {
	return sp.Mean > 0
}

// SetSpontaneous configures spontaneous activity with the given mean and
// standard deviation for the inter-spike interval.  A mean of 0 disables
// spontaneous activity.  A non-positive stdev (or negative mean) is a
// configuration error, reported here rather than at the first draw.
// Must be called before simulation start.
func (nrn *Neuron) SetSpontaneous(mean, stdev float32) error {
	if mean == 0 {
		nrn.Spont = SpontParams{Next: -1}
		return nil
	}
	if mean < 0 {
		return fmt.Errorf("ifnet.Neuron %s: SetSpontaneous: mean interval must be non-negative, got %g", nrn.Nm, mean)
	}
	if stdev <= 0 {
		return fmt.Errorf("ifnet.Neuron %s: SetSpontaneous: interval stdev must be positive, got %g", nrn.Nm, stdev)
	}
	nrn.Spont.Mean = mean
	nrn.Spont.Stdev = stdev
	nrn.Spont.Next = -1
	nrn.Spont.Dist = NewTruncNormal(mean, stdev)
	return nil
}

// SpontStep advances the renewal process at time t.  The very first due
// check only schedules; thereafter each due event records a spike at t and
// draws the next interval.  No-op during absolute refractory or when
// spontaneous activity is disabled.
func (nrn *Neuron) SpontStep(t float32, se *StepEval) {
	if se.InAbsRef {
		return
	}
	sp := &nrn.Spont
	if !sp.On() || sp.Dist == nil {
		return
	}
	if t < sp.Next {
		return
	}
	if sp.Next >= 0 {
		nrn.SpikeTimes = append(nrn.SpikeTimes, t)
	}
	sp.Next = t + sp.Dist.Interval()
}
