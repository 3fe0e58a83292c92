// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifnet

import (
	"fmt"
	"log"

	"github.com/goki/ki/kit"
)

// ifnet.Network is the neuron registry and update driver: it owns the roster
// of neurons and advances each one, in roster order, by one discrete time
// step per StepTime call.  Receptor edges refer to senders by roster index,
// so neurons carry no aliasing references to each other.
type Network struct {
	Nm      string             `desc:"name of the network"`
	Neurons []*Neuron          `desc:"roster of neurons, updated in order each step"`
	NeurMap map[string]*Neuron `view:"-" desc:"name-to-neuron lookup map"`
	Delay   SynDelays          `desc:"visibility of spikes fired within the current step -- see SynDelays"`
}

// NewNetwork returns a new, empty network with the given name.
func NewNetwork(name string) *Network {
	nt := &Network{Nm: name}
	nt.NeurMap = make(map[string]*Neuron)
	return nt
}

// AddNeuron constructs a neuron with default parameters under the given
// unique name and appends it to the roster.  A duplicate name logs an error
// and returns the existing neuron.
func (nt *Network) AddNeuron(name string) *Neuron {
	if ex, has := nt.NeurMap[name]; has {
		log.Printf("ifnet.Network %s: AddNeuron: name %s already in roster\n", nt.Nm, name)
		return ex
	}
	nrn := NewNeuron(name)
	nrn.Index = int32(len(nt.Neurons))
	nt.Neurons = append(nt.Neurons, nrn)
	nt.NeurMap[name] = nrn
	return nrn
}

// NeuronByName returns the named neuron, or nil if not found.
func (nt *Network) NeuronByName(name string) *Neuron {
	return nt.NeurMap[name]
}

// NeuronByNameTry returns the named neuron, or an error if not found.
func (nt *Network) NeuronByNameTry(name string) (*Neuron, error) {
	nrn, has := nt.NeurMap[name]
	if !has {
		return nil, fmt.Errorf("ifnet.Network %s: neuron named: %s not found", nt.Nm, name)
	}
	return nrn, nil
}

// Connect adds a synaptic edge from send to recv with the given weight,
// appended to recv's receptor list.  There is no bound on fan-in or fan-out;
// self-loops and multiple edges between the same pair are permitted.
// Both neurons must already be in the roster.
func (nt *Network) Connect(send, recv *Neuron, wt float32) {
	recv.Receptors = append(recv.Receptors, Receptor{SendIndex: send.Index, Wt: wt})
}

// StepTime advances every neuron in roster order by one discrete step to
// time t.  record appends a (t, Vm) sample to each neuron's recording
// buffers.  With the SameStep delay policy, a neuron earlier in the roster
// that fires at t is already visible to later neurons evaluated at the same
// t; roster order is therefore part of the model.
func (nt *Network) StepTime(t float32, record bool) {
	for _, nrn := range nt.Neurons {
		nrn.Update(nt, t, record)
	}
}

// Run steps the network from time 0 through dur inclusive, at step dt.
func (nt *Network) Run(dur, dt float32, record bool) {
	for t := float32(0); t <= dur; t += dt {
		nt.StepTime(t, record)
	}
}

//////////////////////////////////////////////////////////////////////////////////////
//  SynDelays

// SynDelays determines when a spike fired within the current time step
// becomes visible to the PSP computations of other neurons in the same step.
// The original roster-order behavior (SameStep) makes same-step transmission
// zero-delay for senders updated earlier in the roster and one-step-delayed
// for senders updated later; NextStep makes the one-step delay uniform and
// roster-order independent.
type SynDelays int32

//go:generate stringer -type=SynDelays

var KiT_SynDelays = kit.Enums.AddEnum(SynDelaysN, kit.NotBitFlag, nil)

func (ev SynDelays) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *SynDelays) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// SameStep resolves sender spike recency against the sender's full spike
	// list, so spikes recorded earlier within the current step are visible
	// immediately to neurons updated later in the roster.
	SameStep SynDelays = iota

	// NextStep resolves sender spike recency against spikes strictly earlier
	// than the current step time: a spike fired at t never masks the PSP of
	// an earlier spike until the following step, regardless of roster order.
	NextStep

	SynDelaysN
)
