// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

import "testing"

func TestSolveSamplerate_DSO2090(t *testing.T) {
	p, ok := LookupModel(ModelDSO2090)
	if !ok {
		t.Fatal("missing DSO2090 profile")
	}

	tests := []struct {
		name       string
		targetHz   float64
		fastRate   bool
		mode       RoundMode
		wantDown   uint64
		wantHz     float64
	}{
		{"S1 round-down exact", 10e6, false, RoundDown, 5, 10e6},
		{"S2 round-up jump", 16.67e6, false, RoundUp, 5, 10e6},
		{"S2 round-down jump", 16.67e6, false, RoundDown, 2, 25e6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			down, hz, err := solveSamplerate(p, tc.targetHz, tc.fastRate, tc.mode, 0)
			if err != nil {
				t.Fatalf("solveSamplerate: %v", err)
			}
			if down != tc.wantDown {
				t.Errorf("downsampler = %d, want %d", down, tc.wantDown)
			}
			if hz != tc.wantHz {
				t.Errorf("realized = %v, want %v", hz, tc.wantHz)
			}
		})
	}
}

func TestQuantize209x(t *testing.T) {
	tests := []struct {
		raw  float64
		mode RoundMode
		want uint64
	}{
		{0.5, RoundDown, 1},
		{1, RoundDown, 1},
		{2, RoundDown, 2},
		{3, RoundUp, 5},
		{3, RoundDown, 2},
		{4, RoundUp, 5},
		{4, RoundDown, 2},
		{5, RoundUp, 5},
		{7, RoundUp, 8},
		{7, RoundDown, 6},
	}
	for _, tc := range tests {
		got := quantize209x(tc.raw, tc.mode)
		if got != tc.want {
			t.Errorf("quantize209x(%v, %v) = %d, want %d", tc.raw, tc.mode, got, tc.want)
		}
	}
}

func TestSolveSamplerate_ParameterErrors(t *testing.T) {
	p, _ := LookupModel(ModelDSO2090)

	if _, _, err := solveSamplerate(p, 0, false, RoundDown, 0); err != ErrParameter {
		t.Errorf("targetHz=0: err = %v, want ErrParameter", err)
	}
	if _, _, err := solveSamplerate(p, 1e6, false, RoundDown, 99); err != ErrParameter {
		t.Errorf("bad recordLengthID: err = %v, want ErrParameter", err)
	}
}

func TestSolveDiscreteRate_DSO6022BE(t *testing.T) {
	p, ok := LookupModel(ModelDSO6022BE)
	if !ok {
		t.Fatal("missing DSO6022BE profile")
	}

	idx, hz, err := solveDiscreteRate(p, 900e3)
	if err != nil {
		t.Fatalf("solveDiscreteRate: %v", err)
	}
	if hz != 1e6 {
		t.Errorf("realized = %v, want 1e6 (nearest to 900e3)", hz)
	}
	if p.SampleSteps[idx] != hz {
		t.Errorf("SampleSteps[%d] = %v, want %v", idx, p.SampleSteps[idx], hz)
	}
}
