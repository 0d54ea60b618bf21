// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

import "testing"

func newTestSettings(p *ModelProfile) *Settings {
	var s Settings
	s.Channel[0].used = true
	s.Channel[0].gainIndex = 3
	s.Channel[1].used = true
	s.Channel[1].gainIndex = 3
	s.Samplerate.currentHz = 10e6
	return &s
}

func TestSampleDecoder_NormalMode(t *testing.T) {
	p, _ := LookupModel(ModelDSO2090)
	d := newSampleDecoder(p)
	settings := newTestSettings(p)

	data := make([]byte, 100)
	for i := range data {
		data[i] = byte(i)
	}

	out, hz := d.decode(data, false, false, settings, 0)
	if hz != 10e6 {
		t.Errorf("samplerateHz = %v, want 10e6", hz)
	}
	if len(out[0]) != 50 || len(out[1]) != 50 {
		t.Errorf("channel lengths = %d/%d, want 50/50", len(out[0]), len(out[1]))
	}
}

func TestSampleDecoder_UnusedChannelIsNil(t *testing.T) {
	p, _ := LookupModel(ModelDSO2090)
	d := newSampleDecoder(p)
	settings := newTestSettings(p)
	settings.Channel[1].used = false

	data := make([]byte, 100)
	out, _ := d.decode(data, false, false, settings, 0)
	if out[0] == nil {
		t.Error("channel 0 should be decoded")
	}
	if out[1] != nil {
		t.Error("channel 1 should be nil when unused")
	}
}

func TestSampleDecoder_PreviousSampleCountHysteresis(t *testing.T) {
	p, _ := LookupModel(ModelDSO2090)
	d := newSampleDecoder(p)
	settings := newTestSettings(p)

	first := make([]byte, 100)
	out, _ := d.decode(first, false, false, settings, 0)
	if len(out[0]) != 50 {
		t.Fatalf("first decode: len = %d, want 50", len(out[0]))
	}

	shorter := make([]byte, 40)
	out2, _ := d.decode(shorter, false, false, settings, 0)
	if len(out2[0]) != 50 {
		t.Errorf("second (shorter) decode should hold at previous count: len = %d, want 50", len(out2[0]))
	}
}

func TestSampleDecoder_FastRateSingleChannel(t *testing.T) {
	p, _ := LookupModel(ModelDSO2090)
	d := newSampleDecoder(p)
	settings := newTestSettings(p)

	data := make([]byte, 64)
	out, _ := d.decode(data, true, false, settings, 0)
	if len(out[0]) != 64 {
		t.Errorf("fast-rate channel 0 len = %d, want 64", len(out[0]))
	}
	if out[1] != nil {
		t.Error("fast-rate channel 1 should be nil")
	}
}

func TestSampleDecoder_DSO6022BE_HeadTailDrop(t *testing.T) {
	p, _ := LookupModel(ModelDSO6022BE)
	d := newSampleDecoder(p)
	settings := newTestSettings(p)

	total := 2 * (dso6022HeadDrop + dso6022TailDrop + 100)
	data := make([]byte, total)
	out, _ := d.decode(data, false, false, settings, 0)
	if len(out[0]) != 100 {
		t.Errorf("6022BE decoded len = %d, want 100 (after head/tail drop)", len(out[0]))
	}
}
