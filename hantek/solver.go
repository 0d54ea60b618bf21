// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

import "math"

// RoundMode selects the tie-break direction of the sample-rate solver;
// it rounds the downsampler, not the rate. SetSamplerate uses
// RoundDown: the downsampler is rounded down, so the realized rate is
// never below the target ("min-allowed" never undershoots).
// SetRecordTime uses RoundUp: the realized rate never exceeds
// recordLength/duration.
type RoundMode int

const (
	RoundDown RoundMode = iota
	RoundUp
)

// solveSamplerate solves the downsampler-driven model families
// (2090/2150, 5200, 2250). 6022BE does not go through this path; see
// solveDiscreteRate.
func solveSamplerate(p *ModelProfile, targetHz float64, fastRate bool, mode RoundMode, recordLengthID int) (downsampler uint64, realizedHz float64, err error) {
	if targetHz <= 0 {
		return 0, 0, ErrParameter
	}
	if recordLengthID < 0 || recordLengthID >= len(p.BufferDividers) {
		return 0, 0, ErrParameter
	}

	limits := p.Single
	if fastRate {
		limits = p.Multi
	}
	bufferDivider := float64(p.BufferDividers[recordLengthID])
	maxRealized := limits.MaxHz / bufferDivider

	raw := limits.BaseHz / bufferDivider / targetHz

	if raw < 1 && (targetHz <= maxRealized || mode != RoundUp) {
		return 0, maxRealized, nil
	}

	switch p.ID {
	case ModelDSO2090, ModelDSO2150:
		downsampler = quantize209x(raw, mode)
	case ModelDSO5200, ModelDSO5200A, ModelDSO2250:
		if mode == RoundUp {
			downsampler = uint64(math.Ceil(raw))
		} else {
			downsampler = uint64(math.Floor(raw))
		}
		if downsampler < 1 {
			downsampler = 1
		}
	default:
		return 0, 0, ErrUnsupported
	}

	if downsampler > limits.MaxDownsampler {
		downsampler = limits.MaxDownsampler
	}

	realizedHz = limits.BaseHz / float64(downsampler) / bufferDivider
	return downsampler, realizedHz, nil
}

// quantize209x rounds raw into the DSO-2090/2150 discrete domain:
// {1,2,5} plus even integers ≥ 6. 3 and 4 are not representable and
// jump to 5 (round-up) or 2 (round-down).
func quantize209x(raw float64, mode RoundMode) uint64 {
	var d uint64
	if mode == RoundUp {
		d = uint64(math.Ceil(raw))
	} else {
		d = uint64(math.Floor(raw))
	}

	switch {
	case d <= 1:
		return 1
	case d == 2:
		return 2
	case d == 3 || d == 4:
		if mode == RoundUp {
			return 5
		}
		return 2
	case d == 5:
		return 5
	default:
		if d%2 != 0 {
			if mode == RoundUp {
				d++
			} else {
				d--
			}
		}
		if d < 6 {
			d = 6
		}
		return d
	}
}

// solveDiscreteRate picks the nearest entry from
// ModelProfile.SampleSteps for the 6022BE, which has no downsampler.
func solveDiscreteRate(p *ModelProfile, targetHz float64) (stepIndex int, realizedHz float64, err error) {
	if targetHz <= 0 {
		return 0, 0, ErrParameter
	}
	if len(p.SampleSteps) == 0 {
		return 0, 0, ErrUnsupported
	}

	best := 0
	bestDiff := math.Abs(p.SampleSteps[0] - targetHz)
	for i, step := range p.SampleSteps[1:] {
		diff := math.Abs(step - targetHz)
		if diff < bestDiff {
			bestDiff = diff
			best = i + 1
		}
	}
	return best, p.SampleSteps[best], nil
}
