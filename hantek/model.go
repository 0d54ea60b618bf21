// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

import "math"

// ModelID identifies a supported Hantek DSO model. It is read once from
// UsbDevice.UniqueModelID at construction time and never changes.
type ModelID uint16

const (
	ModelUnknown ModelID = iota
	ModelDSO2090
	ModelDSO2150
	ModelDSO2250
	ModelDSO5200
	ModelDSO5200A
	ModelDSO6022BE
)

func (id ModelID) String() string {
	switch id {
	case ModelDSO2090:
		return "DSO-2090"
	case ModelDSO2150:
		return "DSO-2150"
	case ModelDSO2250:
		return "DSO-2250"
	case ModelDSO5200:
		return "DSO-5200"
	case ModelDSO5200A:
		return "DSO-5200A"
	case ModelDSO6022BE:
		return "DSO-6022BE"
	default:
		return "unknown"
	}
}

// Operation is an abstract bulk-side capability the core may want to
// invoke; ModelProfile.Bulk maps it to a concrete opcode, or to
// bulkUnsupported when the model has no such command.
type Operation int

const (
	OpSetRecordLength Operation = iota
	OpSetChannels
	OpSetGain
	OpSetSamplerate
	OpSetTrigger
	OpSetPretrigger
)

// ControlOp is the control-transfer analog of Operation.
type ControlOp int

const (
	COpSetOffset ControlOp = iota
	COpSetRelays
	COpSetVoltDivCh1
	COpSetVoltDivCh2
	COpSetTimeDiv
	COpAcquireHardData
)

// bulkCode and controlCode are the model-specific opcode ids ModelProfile
// dispatches to. The zero value of each means "unsupported".
type bulkCode uint8

const (
	bulkUnsupported bulkCode = iota
	bulkSetTriggerAndSamplerate
	bulkSetGain
	bulkBSetChannels
	bulkCSetTriggerOrSamplerate
	bulkESetTriggerOrSamplerate
	bulkFSetBuffer
	bulkGetCaptureState
	bulkStartSampling
	bulkEnableTrigger
	bulkForceTrigger
)

type controlCode uint8

const (
	controlUnsupported controlCode = iota
	controlSetOffset
	controlSetRelays
	controlSetVoltDivCh1
	controlSetVoltDivCh2
	controlSetTimeDiv
	controlAcquireHardData
	controlValue // control read used by the capture-state poll
)

// CaptureState mirrors the device's position in its acquisition state
// machine. The acquisition loop reads it as one byte from a control
// read tagged controlValue (value 0), or synthesizes CaptureReady on
// 6022BE; bulkGetCaptureState is not sent.
type CaptureState uint8

const (
	CaptureWaiting CaptureState = iota
	CaptureSampling
	CaptureReady
	CaptureReady2250
	CaptureReady5200
)

// RollModeRecordLength is the UINT32_MAX sentinel record length that
// selects roll mode instead of a fixed-length capture.
const RollModeRecordLength uint32 = math.MaxUint32

// SamplerateLimits describes one samplerate domain (single-channel or
// multi/fast-rate) for a model.
type SamplerateLimits struct {
	BaseHz         float64
	MaxHz          float64
	MaxDownsampler uint64
	RecordLengths  []uint32
}

// ModelProfile is the immutable, per-model capability descriptor
// populated once at construction from the device's model id.
type ModelProfile struct {
	ID ModelID

	Bulk    map[Operation]bulkCode
	Control map[ControlOp]controlCode

	Single SamplerateLimits
	Multi  SamplerateLimits

	BufferDividers []uint32

	GainSteps [9]float64
	GainIndex [9]uint8
	GainDiv   [9]uint8

	// VoltageLimit[channel][gainIndex] is the raw-count scale used to
	// normalize sample bytes into volts.
	VoltageLimit [2][9]float64

	// SampleSteps/SampleDiv describe the discrete rate domain used by
	// models (6022BE) whose samplerate is not downsampler-driven.
	SampleSteps []float64
	SampleDiv   []uint8

	SampleBits uint8
}

// HasBulk reports whether op is supported and returns its opcode.
func (p *ModelProfile) HasBulk(op Operation) (bulkCode, bool) {
	c, ok := p.Bulk[op]
	if !ok || c == bulkUnsupported {
		return bulkUnsupported, false
	}
	return c, true
}

// HasControl reports whether op is supported and returns its opcode.
func (p *ModelProfile) HasControl(op ControlOp) (controlCode, bool) {
	c, ok := p.Control[op]
	if !ok || c == controlUnsupported {
		return controlUnsupported, false
	}
	return c, true
}

var gainLadder = [9]float64{10, 5, 2, 1, 0.5, 0.2, 0.1, 0.05, 0.02}

func standardGainIndex() [9]uint8 {
	return [9]uint8{0, 1, 2, 0, 1, 2, 0, 1, 2}
}

func standardGainDiv() [9]uint8 {
	return [9]uint8{1, 1, 1, 10, 10, 10, 100, 100, 100}
}

// voltageLimitTable builds a plausible per-gain raw-count scale: models
// with more sample bits get a proportionally larger raw-count range.
func voltageLimitTable(bits uint8) [2][9]float64 {
	max := float64(uint32(1)<<bits) - 1
	var tab [2][9]float64
	for ch := 0; ch < 2; ch++ {
		for g := 0; g < 9; g++ {
			tab[ch][g] = max
		}
	}
	return tab
}

// profiles is the static per-model capability table.
var profiles = map[ModelID]*ModelProfile{
	ModelDSO2090: {
		ID: ModelDSO2090,
		Bulk: map[Operation]bulkCode{
			OpSetRecordLength: bulkSetTriggerAndSamplerate,
			OpSetChannels:     bulkSetTriggerAndSamplerate,
			OpSetGain:         bulkSetGain,
			OpSetSamplerate:   bulkSetTriggerAndSamplerate,
			OpSetTrigger:      bulkSetTriggerAndSamplerate,
			OpSetPretrigger:   bulkSetTriggerAndSamplerate,
		},
		Control: map[ControlOp]controlCode{
			COpSetOffset: controlSetOffset,
			COpSetRelays: controlSetRelays,
		},
		Single:         SamplerateLimits{BaseHz: 50e6, MaxHz: 50e6, MaxDownsampler: 2 * 0x10001, RecordLengths: []uint32{10240, 32768, RollModeRecordLength}},
		Multi:          SamplerateLimits{BaseHz: 100e6, MaxHz: 100e6, MaxDownsampler: 2 * 0x10001, RecordLengths: []uint32{10240, 32768, RollModeRecordLength}},
		BufferDividers: []uint32{1, 1, 1},
		GainSteps:      gainLadder,
		GainIndex:      standardGainIndex(),
		GainDiv:        standardGainDiv(),
		VoltageLimit:   voltageLimitTable(8),
		SampleBits:     8,
	},
	ModelDSO2150: {
		ID: ModelDSO2150,
		Bulk: map[Operation]bulkCode{
			OpSetRecordLength: bulkSetTriggerAndSamplerate,
			OpSetChannels:     bulkSetTriggerAndSamplerate,
			OpSetGain:         bulkSetGain,
			OpSetSamplerate:   bulkSetTriggerAndSamplerate,
			OpSetTrigger:      bulkSetTriggerAndSamplerate,
			OpSetPretrigger:   bulkSetTriggerAndSamplerate,
		},
		Control: map[ControlOp]controlCode{
			COpSetOffset: controlSetOffset,
			COpSetRelays: controlSetRelays,
		},
		Single:         SamplerateLimits{BaseHz: 75e6, MaxHz: 75e6, MaxDownsampler: 2 * 0x10001, RecordLengths: []uint32{10240, 32768, RollModeRecordLength}},
		Multi:          SamplerateLimits{BaseHz: 150e6, MaxHz: 150e6, MaxDownsampler: 2 * 0x10001, RecordLengths: []uint32{10240, 32768, RollModeRecordLength}},
		BufferDividers: []uint32{1, 1, 1},
		GainSteps:      gainLadder,
		GainIndex:      standardGainIndex(),
		GainDiv:        standardGainDiv(),
		VoltageLimit:   voltageLimitTable(8),
		SampleBits:     8,
	},
	ModelDSO2250: {
		ID: ModelDSO2250,
		Bulk: map[Operation]bulkCode{
			OpSetRecordLength: bulkFSetBuffer,
			OpSetChannels:     bulkBSetChannels,
			OpSetGain:         bulkSetGain,
			OpSetSamplerate:   bulkESetTriggerOrSamplerate,
			OpSetTrigger:      bulkESetTriggerOrSamplerate,
			OpSetPretrigger:   bulkFSetBuffer,
		},
		Control: map[ControlOp]controlCode{
			COpSetOffset: controlSetOffset,
			COpSetRelays: controlSetRelays,
		},
		Single:         SamplerateLimits{BaseHz: 100e6, MaxHz: 100e6, MaxDownsampler: 0x10001, RecordLengths: []uint32{10240, 32768, 65536, RollModeRecordLength}},
		Multi:          SamplerateLimits{BaseHz: 200e6, MaxHz: 200e6, MaxDownsampler: 0x10001, RecordLengths: []uint32{10240, 32768, 65536, RollModeRecordLength}},
		BufferDividers: []uint32{1, 1, 1, 1},
		GainSteps:      gainLadder,
		GainIndex:      standardGainIndex(),
		GainDiv:        standardGainDiv(),
		VoltageLimit:   voltageLimitTable(8),
		SampleBits:     8,
	},
	ModelDSO5200: {
		ID: ModelDSO5200,
		Bulk: map[Operation]bulkCode{
			OpSetRecordLength: bulkFSetBuffer,
			OpSetChannels:     bulkESetTriggerOrSamplerate,
			OpSetGain:         bulkSetGain,
			OpSetSamplerate:   bulkCSetTriggerOrSamplerate,
			OpSetTrigger:      bulkESetTriggerOrSamplerate,
			OpSetPretrigger:   bulkFSetBuffer,
		},
		Control: map[ControlOp]controlCode{
			COpSetOffset: controlSetOffset,
			COpSetRelays: controlSetRelays,
		},
		Single:         SamplerateLimits{BaseHz: 100e6, MaxHz: 100e6, MaxDownsampler: 0x10001, RecordLengths: []uint32{14336, 32768, RollModeRecordLength}},
		Multi:          SamplerateLimits{BaseHz: 200e6, MaxHz: 200e6, MaxDownsampler: 0x10001, RecordLengths: []uint32{14336, 32768, RollModeRecordLength}},
		BufferDividers: []uint32{1, 1, 1},
		GainSteps:      gainLadder,
		GainIndex:      standardGainIndex(),
		GainDiv:        standardGainDiv(),
		VoltageLimit:   voltageLimitTable(10),
		SampleBits:     10,
	},
	ModelDSO5200A: {
		ID: ModelDSO5200A,
		Bulk: map[Operation]bulkCode{
			OpSetRecordLength: bulkFSetBuffer,
			OpSetChannels:     bulkESetTriggerOrSamplerate,
			OpSetGain:         bulkSetGain,
			OpSetSamplerate:   bulkCSetTriggerOrSamplerate,
			OpSetTrigger:      bulkESetTriggerOrSamplerate,
			OpSetPretrigger:   bulkFSetBuffer,
		},
		Control: map[ControlOp]controlCode{
			COpSetOffset: controlSetOffset,
			COpSetRelays: controlSetRelays,
		},
		Single:         SamplerateLimits{BaseHz: 100e6, MaxHz: 100e6, MaxDownsampler: 0x10001, RecordLengths: []uint32{14336, 32768, RollModeRecordLength}},
		Multi:          SamplerateLimits{BaseHz: 200e6, MaxHz: 200e6, MaxDownsampler: 0x10001, RecordLengths: []uint32{14336, 32768, RollModeRecordLength}},
		BufferDividers: []uint32{1, 1, 1},
		GainSteps:      gainLadder,
		GainIndex:      standardGainIndex(),
		GainDiv:        standardGainDiv(),
		VoltageLimit:   voltageLimitTable(10),
		SampleBits:     10,
	},
	ModelDSO6022BE: {
		ID:      ModelDSO6022BE,
		Bulk:    map[Operation]bulkCode{ /* implicit channels, no bulk samplerate/pretrigger */ },
		Control: map[ControlOp]controlCode{
			COpSetVoltDivCh1:    controlSetVoltDivCh1,
			COpSetVoltDivCh2:    controlSetVoltDivCh2,
			COpSetTimeDiv:       controlSetTimeDiv,
			COpAcquireHardData:  controlAcquireHardData,
		},
		Single:         SamplerateLimits{BaseHz: 48e6, MaxHz: 48e6, MaxDownsampler: 1, RecordLengths: []uint32{20480}},
		Multi:          SamplerateLimits{BaseHz: 48e6, MaxHz: 48e6, MaxDownsampler: 1, RecordLengths: []uint32{20480}},
		BufferDividers: []uint32{1},
		GainSteps:      gainLadder,
		GainIndex:      standardGainIndex(),
		GainDiv:        standardGainDiv(),
		VoltageLimit:   voltageLimitTable(8),
		SampleSteps:    []float64{100e3, 200e3, 500e3, 1e6, 2e6, 4e6, 8e6, 16e6, 24e6, 30e6, 48e6},
		SampleDiv:      []uint8{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		SampleBits:     8,
	},
}

// LookupModel resolves a raw device model id into a ModelProfile.
// The mapping from raw ids to ModelID is device-specific and owned by
// the UsbDevice implementation; this package only knows the finished
// ModelID.
func LookupModel(id ModelID) (*ModelProfile, bool) {
	p, ok := profiles[id]
	return p, ok
}
