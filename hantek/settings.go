// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

// TriggerMode is the trigger mode stored by SetTriggerMode. The
// acquisition loop does not read it: it neither arms nor forces the
// trigger according to the mode, and TriggerSingle does not stop
// sampling after a capture.
type TriggerMode int

const (
	TriggerAuto TriggerMode = iota
	TriggerNormal
	TriggerSingle
)

// TriggerSlope selects the edge the hardware trigger fires on.
type TriggerSlope int

const (
	SlopePositive TriggerSlope = iota
	SlopeNegative
)

// HantekChannels is the number of analog channels every supported
// model exposes.
const HantekChannels = 2

// samplerateTarget remembers whichever of "target rate" or "target
// record time" the user set most recently, so a later record-length or
// channel-usage change knows which one to replay.
type samplerateTarget struct {
	hz             float64
	durationS      float64
	samplerateSet  bool // true: hz is authoritative; false: durationS is
}

// samplerateState tracks the solver's current commitment.
type samplerateState struct {
	fastRate    bool
	downsampler uint64
	currentHz   float64
	target      samplerateTarget
}

// triggerState tracks trigger configuration.
type triggerState struct {
	positionS    float64
	pointSamples uint32
	mode         TriggerMode
	slope        TriggerSlope
	special      bool
	source       uint32
	level        [HantekChannels]float64
}

// channelState tracks one channel's gain/offset/usage.
type channelState struct {
	gainIndex   int
	offset      float64 // 0..1
	offsetReal  float64 // 0..1, quantized readback
	used        bool
}

// Settings is the mutable, process-local state mutated by the user API
// under the single-threaded cooperative model.
type Settings struct {
	Samplerate     samplerateState
	RecordLengthID int
	Trigger        triggerState
	Channel        [HantekChannels]channelState
	UsedChannels   uint32
}

// usedChannelsCount recomputes Settings.UsedChannels from the per-channel
// used flags, keeping the invariant used_channels == Σ used.
func (s *Settings) usedChannelsCount() uint32 {
	var n uint32
	for _, ch := range s.Channel {
		if ch.used {
			n++
		}
	}
	return n
}
