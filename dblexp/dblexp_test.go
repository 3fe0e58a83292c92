// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dblexp

import (
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-3)

func TestDblExp(t *testing.T) {
	dp := Params{}
	dp.Defaults()

	tstx := []float32{-5, -0.001, 0, 1, 2, 5, 10, 20, 50}
	cory := []float32{0, 0, 0, 2.8411737, 5.055926, 9.017026, 10.699695, 8.620267, 2.7057977}

	for i := range tstx {
		y := dp.Resp(1, tstx[i])
		dif := math32.Abs(y - cory[i])
		if dif > difTol {
			t.Errorf("DblExp err: idx: %v, tdiff: %v, y: %v, cor y: %v, dif: %v\n", i, tstx[i], y, cory[i], dif)
		}
	}
}

func TestWeightScaling(t *testing.T) {
	dp := Params{}
	dp.Defaults()

	unit := dp.Resp(1, 10)
	half := dp.Resp(0.5, 10)
	inhib := dp.Resp(-1, 10)

	if math32.Abs(half-0.5*unit) > difTol {
		t.Errorf("weight 0.5 response %v != half of unit response %v\n", half, unit)
	}
	if math32.Abs(inhib+unit) > difTol {
		t.Errorf("weight -1 response %v is not the negation of unit response %v\n", inhib, unit)
	}
}

func TestPeak(t *testing.T) {
	dp := Params{}
	dp.Defaults()

	pt := dp.PeakTime()
	if math32.Abs(pt-10.0590) > 0.01 {
		t.Errorf("PeakTime: %v, expected 10.059\n", pt)
	}
	pk := dp.Peak(1)
	if math32.Abs(pk-10.6998) > 0.01 {
		t.Errorf("Peak: %v, expected 10.70\n", pk)
	}
	// the analytic peak dominates nearby samples
	for _, dt := range []float32{-1, -0.1, 0.1, 1} {
		if dp.Resp(1, pt+dt) > pk {
			t.Errorf("response at %v exceeds peak value %v\n", pt+dt, pk)
		}
	}
}
