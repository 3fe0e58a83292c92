// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ifnet is the repository for a simple discrete-time integrate-and-fire
neuron network simulator, implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* dblexp: the dual-exponential response kernel used for postsynaptic
potentials, as a pure-function leaf package.

* ifnet: the neuron entity (membrane potential terms, spike history,
refractory gating, direct stimulation, spontaneous activity) and the network
registry / update driver that advances a roster of neurons one discrete time
step at a time.

* examples/ifnetsim: a runnable console demo of a five-neuron network with
direct stimulation, reporting spike times and saving recorded membrane
potentials as a TSV table.
*/
package ifnet
