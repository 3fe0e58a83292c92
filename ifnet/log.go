// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifnet

import (
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// ConfigLog appends this neuron's Vm column to the log schema.
func (nrn *Neuron) ConfigLog(sch *etable.Schema) {
	*sch = append(*sch, etable.Column{Name: nrn.Nm + " Vm", Type: etensor.FLOAT32})
}

// Log writes the current Vm into this neuron's column at the given row.
func (nrn *Neuron) Log(dt *etable.Table, row int) {
	dt.SetCellFloat(nrn.Nm+" Vm", row, float64(nrn.Vm))
}

// ConfigLogTable configures dt with a Time column plus one Vm column per
// roster neuron.
func (nt *Network) ConfigLogTable(dt *etable.Table) {
	dt.SetMetaData("name", nt.Nm+"Log")
	dt.SetMetaData("desc", "membrane potential per neuron per time step")
	dt.SetMetaData("read-only", "true")
	sch := etable.Schema{
		{Name: "Time", Type: etensor.FLOAT32},
	}
	for _, nrn := range nt.Neurons {
		nrn.ConfigLog(&sch)
	}
	dt.SetFromSchema(sch, 0)
}

// LogStep appends a row with time t and every neuron's current Vm.
// Call after StepTime.
func (nt *Network) LogStep(dt *etable.Table, t float32) {
	row := dt.Rows
	dt.SetNumRows(row + 1)
	dt.SetCellFloat("Time", row, float64(t))
	for _, nrn := range nt.Neurons {
		nrn.Log(dt, row)
	}
}
