// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

import "sync"

// SampleFrame is the published decode output. There is exactly one
// producer — the acquisition loop, which decodes into fresh slices and
// then holds the write lock while installing them — and any number of
// concurrent readers between publications.
type SampleFrame struct {
	mu sync.RWMutex

	samplerateHz float64
	append       bool
	data         [HantekChannels][]float64
}

// SamplerateHz returns the samplerate that was current when this frame
// was published.
func (f *SampleFrame) SamplerateHz() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.samplerateHz
}

// Append reports whether consumers should append this frame's samples
// to a running buffer (roll mode) rather than replace it (standard
// mode) — true iff the frame was captured under RollModeRecordLength.
func (f *SampleFrame) Append() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.append
}

// Channel returns a copy of channel ch's decoded voltages, snapshotted
// under the read lock so a caller can hold onto it after publish.
func (f *SampleFrame) Channel(ch int) []float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if ch < 0 || ch >= HantekChannels {
		return nil
	}
	out := make([]float64, len(f.data[ch]))
	copy(out, f.data[ch])
	return out
}

// publish takes the write lock, installs the decoded data and
// metadata, and releases it. Called only from the acquisition loop,
// after a decode.
func (f *SampleFrame) publish(samplerateHz float64, roll bool, data [HantekChannels][]float64) {
	f.mu.Lock()
	f.samplerateHz = samplerateHz
	f.append = roll
	f.data = data
	f.mu.Unlock()
}
