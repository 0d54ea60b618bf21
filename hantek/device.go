// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hwpl/openhantek/hantek/proto"
)

// config holds the options a Device accepts, following the functional-options shape used throughout
// this codebase's device-configuration layer.
type config struct {
	logger             *log.Logger
	calibrationTimeout time.Duration
	triggerSource      byte
}

func newConfig() config {
	return config{
		logger:             log.New(os.Stdout, "hantek: ", 0),
		calibrationTimeout: 2 * time.Second,
	}
}

// Option configures a Device at construction time.
type Option func(*config)

// WithLogger overrides the default stdout logger.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithCalibrationTimeout bounds the one-shot calibration read performed
// at connect time.
func WithCalibrationTimeout(d time.Duration) Option {
	return func(c *config) { c.calibrationTimeout = d }
}

// payloadBuffers owns the fixed-size, reused command payload buffers.
type payloadBuffers struct {
	triggerAndSamplerate []byte
	samplerate5200       []byte
	trigger5200          []byte
	samplerate2250       []byte
	buffer5200           []byte
	buffer2250           []byte
	channels2250         []byte
	gain                 []byte
	offset               []byte
	relays               []byte
	voltDivCh1           []byte
	voltDivCh2           []byte
	timeDiv              []byte
}

func newPayloadBuffers() payloadBuffers {
	return payloadBuffers{
		triggerAndSamplerate: make([]byte, proto.LenTriggerAndSamplerate),
		samplerate5200:       make([]byte, proto.LenSamplerate5200),
		trigger5200:          make([]byte, proto.LenTrigger5200),
		samplerate2250:       make([]byte, proto.LenSamplerate2250),
		buffer5200:           make([]byte, proto.LenBuffer5200),
		buffer2250:           make([]byte, proto.LenBuffer2250),
		channels2250:         make([]byte, proto.LenChannels2250),
		gain:                 make([]byte, proto.LenGain),
		offset:               make([]byte, proto.LenOffset),
		relays:               make([]byte, proto.LenRelays),
		voltDivCh1:           make([]byte, proto.LenVoltDiv),
		voltDivCh2:           make([]byte, proto.LenVoltDiv),
		timeDiv:              make([]byte, proto.LenTimeDiv),
	}
}

// Device is the control object: the one entry point user code calls to
// configure and drive a Hantek DSO. Internally it decomposes into four
// subsystems — Profile, Settings, Payloads+Pending, Acquisition —
// communicating through the Settings and pendingSet values rather than
// a single god-object's fields.
type Device struct {
	cfg config
	msg *log.Logger

	usb  UsbDevice
	sink EventSink

	profile *ModelProfile
	calib   proto.OffsetLimits

	settings Settings
	pending  pendingSet
	payload  payloadBuffers

	decoder *sampleDecoder
	frame   SampleFrame

	samplingStarted bool
}

// NewDevice reads usb.UniqueModelID, populates the ModelProfile, reads
// the calibration block once, and returns a ready-to-use Device.
func NewDevice(usb UsbDevice, sink EventSink, opts ...Option) (*Device, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	id := usb.UniqueModelID()
	profile, ok := LookupModel(id)
	if !ok {
		sink.StatusMessage(fmt.Sprintf("unknown model id %v", id), StatusError)
		_ = usb.Disconnect()
		return nil, ErrUnknownModel
	}

	dev := &Device{
		cfg:     cfg,
		msg:     cfg.logger,
		usb:     usb,
		sink:    sink,
		profile: profile,
		payload: newPayloadBuffers(),
		decoder: newSampleDecoder(profile),
	}
	dev.settings.Samplerate.fastRate = false

	ctx, cancel := context.WithTimeout(context.Background(), cfg.calibrationTimeout)
	defer cancel()

	raw := make([]byte, proto.CalibrationSize)
	_, err := usb.ControlRead(ctx, controlValueCode, valueOffsetLimits, raw)
	if err != nil {
		sink.StatusMessage("Couldn't get channel level data...", StatusError)
		_ = usb.Disconnect()
		return nil, fmt.Errorf("hantek: could not read calibration block: %w", err)
	}

	dev.calib, err = proto.DecodeOffsetLimits(bytes.NewReader(raw))
	if err != nil {
		sink.StatusMessage("Couldn't get channel level data...", StatusError)
		_ = usb.Disconnect()
		return nil, fmt.Errorf("hantek: could not decode calibration block: %w", err)
	}

	sink.AvailableRecordLengthsChanged(dev.recordLengths())
	return dev, nil
}

// control-transfer constants used only for the calibration read; every
// other control code is opaque and model-specific (see ModelProfile).
const (
	controlValueCode = 0xa1
	valueOffsetLimits = 0x08
)

func (dev *Device) requireConnected() error {
	if !dev.usb.IsConnected() {
		return ErrConnection
	}
	return nil
}

func (dev *Device) requireChannel(ch int) error {
	if ch < 0 || ch >= HantekChannels {
		return ErrParameter
	}
	return nil
}

func (dev *Device) recordLengths() []uint32 {
	limits := dev.limits()
	out := make([]uint32, len(limits.RecordLengths))
	copy(out, limits.RecordLengths)
	return out
}

func (dev *Device) limits() SamplerateLimits {
	if dev.settings.Samplerate.fastRate {
		return dev.profile.Multi
	}
	return dev.profile.Single
}

func (dev *Device) isRoll() bool {
	limits := dev.limits()
	id := dev.settings.RecordLengthID
	if id < 0 || id >= len(limits.RecordLengths) {
		return false
	}
	return limits.RecordLengths[id] == RollModeRecordLength
}

// SetRecordLength clamps the index, updates the payload, and if the
// buffer divider changed, recomputes samplerate limits and replays
// whichever target (samplerate or record time) was set most recently.
func (dev *Device) SetRecordLength(index int) (uint32, error) {
	if err := dev.requireConnected(); err != nil {
		return 0, err
	}
	limits := dev.limits()
	if index < 0 {
		index = 0
	}
	if index >= len(limits.RecordLengths) {
		index = len(limits.RecordLengths) - 1
	}

	oldDivider := uint32(1)
	if dev.settings.RecordLengthID < len(dev.profile.BufferDividers) {
		oldDivider = dev.profile.BufferDividers[dev.settings.RecordLengthID]
	}
	dev.settings.RecordLengthID = index
	dev.markRecordLengthPending()
	if err := dev.commitBuffer(); err != nil {
		return 0, err
	}
	if err := dev.recommitSamplerate(); err != nil {
		return 0, err
	}

	newDivider := dev.profile.BufferDividers[index]
	if newDivider != oldDivider {
		dev.emitSamplerateLimits()
		dev.restoreTarget()
	}

	dev.sink.RecordLengthChanged(limits.RecordLengths[index])
	return limits.RecordLengths[index], nil
}

// commitBuffer writes the record-length/pretrigger pair for the models
// that carry it in the F_SET_BUFFER payload (5200, 5200A, 2250) rather
// than folded into their trigger-and-samplerate command, and marks the
// opcode pending. Models that carry pretrigger elsewhere (2090/2150's
// 21-bit trigger position field) are a no-op here.
func (dev *Device) commitBuffer() error {
	limits := dev.limits()
	recordLength := limits.RecordLengths[dev.settings.RecordLengthID]
	positionSamples := dev.settings.Trigger.pointSamples

	switch dev.profile.ID {
	case ModelDSO5200, ModelDSO5200A:
		if err := proto.SetBuffer5200(dev.payload.buffer5200, recordLength, positionSamples, true, true); err != nil {
			return err
		}
	case ModelDSO2250:
		if err := proto.SetBuffer2250(dev.payload.buffer2250, recordLength, positionSamples, true, true); err != nil {
			return err
		}
	default:
		return nil
	}
	dev.pending.markBulk(bulkFSetBuffer)
	return nil
}

// restoreTarget replays whichever of "last samplerate target" or "last
// record-time target" was set more recently.
func (dev *Device) restoreTarget() {
	t := dev.settings.Samplerate.target
	if t.samplerateSet {
		_, _ = dev.SetSamplerate(t.hz)
		return
	}
	if t.durationS > 0 {
		_, _ = dev.SetRecordTime(t.durationS)
	}
}

func (dev *Device) emitSamplerateLimits() {
	limits := dev.limits()
	dev.sink.SamplerateLimitsChanged(limits.BaseHz/float64(limits.MaxDownsampler), limits.MaxHz)
}

// SetSamplerate stores the target, solves it under RoundDown, commits,
// and publishes.
func (dev *Device) SetSamplerate(hz float64) (float64, error) {
	if err := dev.requireConnected(); err != nil {
		return 0, err
	}

	dev.settings.Samplerate.target = samplerateTarget{hz: hz, samplerateSet: true}

	realized, err := dev.solveAndCommit(hz, RoundDown)
	if err != nil {
		return 0, err
	}

	dev.sink.SamplerateChanged(realized)
	return realized, nil
}

// SetRecordTime solves for a samplerate under RoundUp with an implied
// max samplerate of recordLength/duration.
func (dev *Device) SetRecordTime(sec float64) (float64, error) {
	if err := dev.requireConnected(); err != nil {
		return 0, err
	}
	if sec <= 0 {
		return 0, ErrParameter
	}

	dev.settings.Samplerate.target = samplerateTarget{durationS: sec, samplerateSet: false}

	limits := dev.limits()
	id := dev.settings.RecordLengthID
	recordLength := limits.RecordLengths[id]
	if recordLength == RollModeRecordLength {
		return dev.SetSamplerate(limits.MaxHz / float64(dev.profile.BufferDividers[id]))
	}

	target := float64(recordLength) / sec
	realized, err := dev.solveAndCommit(target, RoundUp)
	if err != nil {
		return 0, err
	}

	dev.sink.RecordTimeChanged(sec)
	dev.sink.SamplerateChanged(realized)
	return realized, nil
}

func (dev *Device) solveAndCommit(targetHz float64, mode RoundMode) (float64, error) {
	fastRate := dev.settings.Samplerate.fastRate

	if dev.profile.ID == ModelDSO6022BE {
		idx, realized, err := solveDiscreteRate(dev.profile, targetHz)
		if err != nil {
			return 0, err
		}
		if err := proto.SetTimeDiv(dev.payload.timeDiv, byte(idx)); err != nil {
			return 0, err
		}
		dev.pending.markControl(controlSetTimeDiv)
		dev.settings.Samplerate.currentHz = realized
		dev.settings.Samplerate.downsampler = uint64(idx)
		dev.sink.SamplerateSet(fastRate, len(dev.profile.SampleSteps))
		return realized, nil
	}

	downsampler, realized, err := solveSamplerate(dev.profile, targetHz, fastRate, mode, dev.settings.RecordLengthID)
	if err != nil {
		return 0, err
	}

	if err := dev.commitSamplerate(downsampler, fastRate); err != nil {
		return 0, err
	}

	dev.settings.Samplerate.currentHz = realized
	dev.settings.Samplerate.downsampler = downsampler
	dev.sink.SamplerateSet(fastRate, 0)
	return realized, nil
}

func (dev *Device) commitSamplerate(downsampler uint64, fastRate bool) error {
	switch dev.profile.ID {
	case ModelDSO2090, ModelDSO2150:
		// fast-rate is hard-coded false for this family regardless of
		// channel usage, mirroring the original firmware's apparently
		// intentional (or accidental) choice.
		err := proto.SetTriggerAndSamplerate(
			dev.payload.triggerAndSamplerate,
			byte(dev.settings.RecordLengthID),
			dev.usedChannelsCode(),
			downsampler,
			downsampler != 0,
			false,
			byte(dev.settings.Trigger.source),
			byte(dev.settings.Trigger.slope),
			dev.triggerPositionField(),
		)
		if err != nil {
			return err
		}
		dev.pending.markBulk(bulkSetTriggerAndSamplerate)

	case ModelDSO5200, ModelDSO5200A:
		// the fast field saturates at 4 (or 3) for slow sample rates;
		// anything beyond that is carried in the slow field instead.
		var valueSlow uint64
		if downsampler > 3 {
			valueSlow = (downsampler - 3) / 2
		}
		valueFast := downsampler - valueSlow*2
		fast, slow := proto.SamplerateFields5200(uint16(valueFast), uint16(valueSlow))
		if err := proto.SetSamplerate5200(dev.payload.samplerate5200, fast, slow); err != nil {
			return err
		}
		dev.pending.markBulk(bulkCSetTriggerOrSamplerate)
		if err := proto.SetTrigger5200(dev.payload.trigger5200, fastRate, dev.usedChannelsCode(), byte(dev.settings.Trigger.source), byte(dev.settings.Trigger.slope)); err != nil {
			return err
		}
		dev.pending.markBulk(bulkESetTriggerOrSamplerate)

	case ModelDSO2250:
		if err := proto.SetSamplerate2250(dev.payload.samplerate2250, downsampler != 0, downsampler, fastRate); err != nil {
			return err
		}
		dev.pending.markBulk(bulkESetTriggerOrSamplerate)

	default:
		return ErrUnsupported
	}
	return nil
}

func (dev *Device) usedChannelsCode() byte {
	ch0 := dev.settings.Channel[0].used
	ch1 := dev.settings.Channel[1].used
	switch {
	case ch0 && ch1:
		return proto.UsedCH1CH2
	case ch0:
		return proto.UsedCH1
	case ch1:
		if dev.profile.ID == ModelDSO2250 {
			return proto.BUsedCH2
		}
		return proto.UsedCH2
	default:
		return 0
	}
}

func (dev *Device) triggerPositionField() uint32 {
	if dev.isRoll() {
		return 1
	}
	limits := dev.limits()
	recordLength := limits.RecordLengths[dev.settings.RecordLengthID]
	return uint32(0x7FFFF-int64(recordLength)) + dev.settings.Trigger.pointSamples
}

func (dev *Device) markRecordLengthPending() {
	if c, ok := dev.profile.HasBulk(OpSetRecordLength); ok {
		dev.pending.markBulk(c)
	}
}

// SetGain selects the lowest gain step ≥ voltsPerDiv, updates the gain
// payload and relay control bits, then re-applies offset (offset
// calibration is gain-dependent).
func (dev *Device) SetGain(ch int, voltsPerDiv float64) (float64, error) {
	if err := dev.requireConnected(); err != nil {
		return 0, err
	}
	if err := dev.requireChannel(ch); err != nil {
		return 0, err
	}

	// GainSteps is descending: the last step ≥ voltsPerDiv is the
	// lowest one; above every step, the largest (index 0) is used.
	idx := 0
	for i, step := range dev.profile.GainSteps {
		if step >= voltsPerDiv {
			idx = i
		}
	}
	dev.settings.Channel[ch].gainIndex = idx

	g0 := dev.profile.GainIndex[dev.settings.Channel[0].gainIndex]
	g1 := dev.profile.GainIndex[dev.settings.Channel[1].gainIndex]
	if err := proto.SetGain(dev.payload.gain, g0, g1); err != nil {
		return 0, err
	}
	if c, ok := dev.profile.HasBulk(OpSetGain); ok {
		dev.pending.markBulk(c)
	}

	relays := proto.RelayFlags{Lt1V: idx < 3, Lt100mV: idx < 6}
	other := proto.RelayFlags{Lt1V: dev.settings.Channel[1-ch].gainIndex < 3, Lt100mV: dev.settings.Channel[1-ch].gainIndex < 6}
	var ch0, ch1 proto.RelayFlags
	if ch == 0 {
		ch0, ch1 = relays, other
	} else {
		ch0, ch1 = other, relays
	}
	if err := proto.SetRelays(dev.payload.relays, ch0, ch1, dev.settings.Trigger.special); err != nil {
		return 0, err
	}
	if c, ok := dev.profile.HasControl(COpSetRelays); ok {
		dev.pending.markControl(c)
	}

	if _, err := dev.SetOffset(ch, dev.settings.Channel[ch].offset); err != nil {
		return 0, err
	}

	return dev.profile.GainSteps[idx], nil
}

// SetOffset maps frac ∈ [0,1] linearly into the calibration window
// [min,max], stores the quantized readback, and re-applies trigger
// level afterward since it shares the offset payload.
func (dev *Device) SetOffset(ch int, frac float64) (float64, error) {
	if err := dev.requireConnected(); err != nil {
		return 0, err
	}
	if err := dev.requireChannel(ch); err != nil {
		return 0, err
	}
	if frac < 0 || frac > 1 {
		return 0, ErrParameter
	}

	gainIndex := dev.settings.Channel[ch].gainIndex
	min := float64(dev.calib.Min[ch][gainIndex])
	max := float64(dev.calib.Max[ch][gainIndex])

	value := frac*(max-min) + min + 0.5
	quantized := uint16(value)
	dev.settings.Channel[ch].offset = frac
	dev.settings.Channel[ch].offsetReal = (float64(quantized) - min) / (max - min)

	var triggerLevel byte
	if dev.settings.Trigger.special {
		triggerLevel = dev.triggerLevelByte(ch)
	}

	o0 := dev.offsetValue(0)
	o1 := dev.offsetValue(1)
	if err := proto.SetOffset(dev.payload.offset, o0, o1, triggerLevel); err != nil {
		return 0, err
	}
	if c, ok := dev.profile.HasControl(COpSetOffset); ok {
		dev.pending.markControl(c)
	}

	if _, err := dev.SetTriggerLevel(ch, dev.settings.Trigger.level[ch]); err != nil {
		return 0, err
	}

	return dev.settings.Channel[ch].offsetReal, nil
}

func (dev *Device) offsetValue(ch int) uint16 {
	gainIndex := dev.settings.Channel[ch].gainIndex
	min := float64(dev.calib.Min[ch][gainIndex])
	max := float64(dev.calib.Max[ch][gainIndex])
	frac := dev.settings.Channel[ch].offset
	return uint16(frac*(max-min) + min + 0.5)
}

// SetTriggerLevel's return value preserves the quantization law
// observed in the original firmware rather than converting to a
// voltage-domain value; the raw commit clamps to the per-model range.
func (dev *Device) SetTriggerLevel(ch int, level float64) (float64, error) {
	if err := dev.requireConnected(); err != nil {
		return 0, err
	}
	if err := dev.requireChannel(ch); err != nil {
		return 0, err
	}

	dev.settings.Trigger.level[ch] = level

	var minimum, maximum float64
	if dev.profile.SampleBits == 10 {
		minimum, maximum = 0, 1023
	} else {
		minimum, maximum = 0, 0xfd
	}
	raw := level*(maximum-minimum) + minimum
	if raw < minimum {
		raw = minimum
	}
	if raw > maximum {
		raw = maximum
	}

	o0 := dev.offsetValue(0)
	o1 := dev.offsetValue(1)
	if err := proto.SetOffset(dev.payload.offset, o0, o1, byte(raw)); err != nil {
		return 0, err
	}
	if c, ok := dev.profile.HasControl(COpSetOffset); ok {
		dev.pending.markControl(c)
	}

	return raw / (maximum - minimum), nil
}

func (dev *Device) triggerLevelByte(ch int) byte {
	level := dev.settings.Trigger.level[ch]
	var maximum float64 = 0xfd
	if dev.profile.SampleBits == 10 {
		maximum = 1023
	}
	raw := level * maximum
	if raw < 0 {
		raw = 0
	}
	if raw > maximum {
		raw = maximum
	}
	return byte(raw)
}

// SetTriggerMode stores the trigger mode in Settings; it writes no
// payload and marks nothing pending.
func (dev *Device) SetTriggerMode(mode TriggerMode) error {
	if err := dev.requireConnected(); err != nil {
		return err
	}
	dev.settings.Trigger.mode = mode
	return nil
}

// SetTriggerSlope sets the hardware trigger slope.
func (dev *Device) SetTriggerSlope(slope TriggerSlope) error {
	if err := dev.requireConnected(); err != nil {
		return err
	}
	dev.settings.Trigger.slope = slope
	return dev.recommitSamplerate()
}

// SetTriggerSource sets the hardware trigger source. The external
// relay bit is re-written unconditionally since it depends only on
// special, and the trigger level of the new source is re-applied: the
// fixed 0x7f byte for the special (EXT/EXT10) inputs, or the source
// channel's stored level otherwise.
func (dev *Device) SetTriggerSource(special bool, source uint32) error {
	if err := dev.requireConnected(); err != nil {
		return err
	}
	dev.settings.Trigger.special = special
	dev.settings.Trigger.source = source
	if err := dev.recommitSamplerate(); err != nil {
		return err
	}

	ch0 := proto.RelayFlags{Lt1V: dev.settings.Channel[0].gainIndex < 3, Lt100mV: dev.settings.Channel[0].gainIndex < 6}
	ch1 := proto.RelayFlags{Lt1V: dev.settings.Channel[1].gainIndex < 3, Lt100mV: dev.settings.Channel[1].gainIndex < 6}
	if err := proto.SetRelays(dev.payload.relays, ch0, ch1, special); err != nil {
		return err
	}
	if c, ok := dev.profile.HasControl(COpSetRelays); ok {
		dev.pending.markControl(c)
	}

	if special {
		o0 := dev.offsetValue(0)
		o1 := dev.offsetValue(1)
		if err := proto.SetOffset(dev.payload.offset, o0, o1, 0x7f); err != nil {
			return err
		}
		if c, ok := dev.profile.HasControl(COpSetOffset); ok {
			dev.pending.markControl(c)
		}
		return nil
	}

	if err := dev.requireChannel(int(source)); err != nil {
		return err
	}
	_, err := dev.SetTriggerLevel(int(source), dev.settings.Trigger.level[source])
	return err
}

// SetPretriggerPosition sets the trigger's pretrigger position.
func (dev *Device) SetPretriggerPosition(positionS float64) error {
	if err := dev.requireConnected(); err != nil {
		return err
	}
	dev.settings.Trigger.positionS = positionS
	limits := dev.limits()
	id := dev.settings.RecordLengthID
	recordLength := limits.RecordLengths[id]
	if recordLength != RollModeRecordLength {
		dev.settings.Trigger.pointSamples = uint32(positionS * dev.settings.Samplerate.currentHz)
	}
	if err := dev.commitBuffer(); err != nil {
		return err
	}
	return dev.recommitSamplerate()
}

func (dev *Device) recommitSamplerate() error {
	if dev.profile.ID == ModelDSO6022BE {
		return nil
	}
	return dev.commitSamplerate(dev.settings.Samplerate.downsampler, dev.settings.Samplerate.fastRate)
}

// SetChannelUsed marks a channel used or unused.
func (dev *Device) SetChannelUsed(ch int, used bool) error {
	if err := dev.requireConnected(); err != nil {
		return err
	}
	if err := dev.requireChannel(ch); err != nil {
		return err
	}

	wasFastEligible := dev.usedChannelsCount() <= 1
	dev.settings.Channel[ch].used = used
	dev.settings.UsedChannels = uint32(dev.usedChannelsCount())

	switch dev.profile.ID {
	case ModelDSO2250:
		if err := proto.SetChannels2250(dev.payload.channels2250, dev.usedChannelsCode()); err != nil {
			return err
		}
		if c, ok := dev.profile.HasBulk(OpSetChannels); ok {
			dev.pending.markBulk(c)
		}
	default:
		if err := dev.recommitSamplerate(); err != nil {
			return err
		}
	}

	isFastEligible := dev.usedChannelsCount() <= 1
	if wasFastEligible != isFastEligible {
		dev.settings.Samplerate.fastRate = isFastEligible
		dev.emitSamplerateLimits()
		dev.restoreTarget()
	}

	return nil
}

func (dev *Device) usedChannelsCount() int {
	n := 0
	for _, ch := range dev.settings.Channel {
		if ch.used {
			n++
		}
	}
	return n
}

// ForceTrigger forces an immediate trigger event.
func (dev *Device) ForceTrigger() error {
	if err := dev.requireConnected(); err != nil {
		return err
	}
	dev.pending.markBulk(bulkForceTrigger)
	return nil
}

// StartSampling begins the acquisition cycle.
func (dev *Device) StartSampling() error {
	if err := dev.requireConnected(); err != nil {
		return err
	}
	dev.samplingStarted = true
	dev.sink.SamplingStarted()
	return nil
}

// StopSampling halts the acquisition cycle.
func (dev *Device) StopSampling() error {
	if err := dev.requireConnected(); err != nil {
		return err
	}
	dev.samplingStarted = false
	dev.sink.SamplingStopped()
	return nil
}

// Frame returns the published SampleFrame consumers should read from.
func (dev *Device) Frame() *SampleFrame { return &dev.frame }

// bulkPayload resolves the payload buffer a bulk opcode writes into.
// Shared by the acquisition loop's drain and by stringCommand's raw
// overwrite path.
func (dev *Device) bulkPayload(code bulkCode) ([]byte, bool) {
	switch code {
	case bulkSetTriggerAndSamplerate:
		return dev.payload.triggerAndSamplerate, true
	case bulkCSetTriggerOrSamplerate:
		return dev.payload.samplerate5200, true
	case bulkESetTriggerOrSamplerate:
		if dev.profile.ID == ModelDSO2250 {
			return dev.payload.samplerate2250, true
		}
		return dev.payload.trigger5200, true
	case bulkFSetBuffer:
		if dev.profile.ID == ModelDSO5200 || dev.profile.ID == ModelDSO5200A {
			return dev.payload.buffer5200, true
		}
		return dev.payload.buffer2250, true
	case bulkBSetChannels:
		return dev.payload.channels2250, true
	case bulkSetGain:
		return dev.payload.gain, true
	case bulkForceTrigger:
		return nil, true
	default:
		return nil, false
	}
}

// controlPayload resolves the payload buffer a control opcode writes
// into.
func (dev *Device) controlPayload(code controlCode) (controlCode, []byte, bool) {
	switch code {
	case controlSetOffset:
		return code, dev.payload.offset, true
	case controlSetRelays:
		return code, dev.payload.relays, true
	case controlSetVoltDivCh1:
		return code, dev.payload.voltDivCh1, true
	case controlSetVoltDivCh2:
		return code, dev.payload.voltDivCh2, true
	case controlSetTimeDiv:
		return code, dev.payload.timeDiv, true
	default:
		return code, nil, false
	}
}
