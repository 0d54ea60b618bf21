// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// loopState is the acquisition loop's own position, distinct from the
// device-reported CaptureState. Standard mode walks
// waiting→sampling→ready→waiting; roll mode round-robins the four
// rollXxx states instead.
type loopState int

const (
	stateWaiting loopState = iota
	stateSampling
	stateReady

	stateRollStartSampling
	stateRollEnableTrigger
	stateRollForceTrigger
	stateRollGetData
)

const (
	minCycle = 10 * time.Millisecond
	maxCycle = 1000 * time.Millisecond

	captureBuffer = 1 << 20
)

// Loop drives a Device's acquisition state machine. It owns the
// single goroutine that ever touches the device's bulk/control
// endpoints after construction. Settings and pendingSet carry no
// lock: Device methods and Run share them under the single-threaded
// cooperative model, so Device methods are not safe to call while Run
// is executing on another goroutine.
type Loop struct {
	dev   *Device
	state loopState

	captureBuf []byte
}

// NewLoop creates a Loop bound to dev.
func NewLoop(dev *Device) *Loop {
	return &Loop{
		dev:        dev,
		state:      stateWaiting,
		captureBuf: make([]byte, captureBuffer),
	}
}

// Run executes one tick per iteration until ctx is cancelled, the
// device reports itself disconnected, or a transport call fails with
// ErrNoDevice; any other transport error is logged and the tick is
// retried on the next iteration, with unsent payloads still pending.
// Each tick drains pending
// commands in opcode order, advances the capture-state machine, and
// self-paces by sleeping for a duration derived from the current
// samplerate and record length, clamped to [10ms,1000ms].
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !l.dev.usb.IsConnected() {
			l.dev.sink.CommunicationError()
			return ErrConnection
		}

		if err := l.drainPending(ctx); err != nil {
			if errors.Is(err, ErrNoDevice) {
				l.dev.sink.CommunicationError()
				return fmt.Errorf("hantek: pending command drain failed: %w", err)
			}
			l.dev.msg.Printf("pending command drain failed: %+v", err)
		}

		if !l.dev.samplingStarted {
			time.Sleep(l.cycleTime())
			continue
		}

		if l.dev.isRoll() {
			if err := l.tickRoll(ctx); err != nil {
				if errors.Is(err, ErrNoDevice) {
					l.dev.sink.CommunicationError()
					return fmt.Errorf("hantek: roll-mode tick failed: %w", err)
				}
				l.dev.msg.Printf("roll-mode tick failed: %+v", err)
			}
		} else {
			if err := l.tickStandard(ctx); err != nil {
				if errors.Is(err, ErrNoDevice) {
					l.dev.sink.CommunicationError()
					return fmt.Errorf("hantek: standard-mode tick failed: %w", err)
				}
				l.dev.msg.Printf("standard-mode tick failed: %+v", err)
			}
		}

		time.Sleep(l.cycleTime())
	}
}

// cycleTime is a quarter of the time one capture takes, so the device
// buffer is polled about four times per fill, clamped to the loop's
// pacing window.
func (l *Loop) cycleTime() time.Duration {
	hz := l.dev.settings.Samplerate.currentHz
	if hz <= 0 {
		return minCycle
	}
	limits := l.dev.limits()
	id := l.dev.settings.RecordLengthID
	var recordLength uint32
	if id >= 0 && id < len(limits.RecordLengths) {
		recordLength = limits.RecordLengths[id]
	}
	if recordLength == RollModeRecordLength || recordLength == 0 {
		return minCycle
	}

	d := time.Duration(float64(recordLength)/hz*250) * time.Millisecond
	if d < minCycle {
		return minCycle
	}
	if d > maxCycle {
		return maxCycle
	}
	return d
}

// drainPending transmits every bulk and control payload whose pending
// bit is set, in ascending opcode order, clearing each bit as it is
// sent. It does not consult the model's command map: the Device
// setters mark only opcodes the model supports, while StringCommand
// and ForceTrigger can mark any opcode.
func (l *Loop) drainPending(ctx context.Context) error {
	dev := l.dev

	for _, code := range dev.pending.bulkOpcodes() {
		buf, ok := l.bulkPayload(code)
		if !ok {
			dev.pending.clearBulk(code)
			continue
		}
		if err := dev.usb.BulkCommand(ctx, buf, 0); err != nil {
			return err
		}
		dev.pending.clearBulk(code)
	}

	for _, code := range dev.pending.controlOpcodes() {
		cop, buf, ok := l.controlPayload(code)
		if !ok {
			dev.pending.clearControl(code)
			continue
		}
		if err := dev.usb.ControlWrite(ctx, byte(cop), buf); err != nil {
			return err
		}
		dev.pending.clearControl(code)
	}

	return nil
}

func (l *Loop) bulkPayload(code bulkCode) ([]byte, bool) {
	return l.dev.bulkPayload(code)
}

func (l *Loop) controlPayload(code controlCode) (controlCode, []byte, bool) {
	return l.dev.controlPayload(code)
}

// tickStandard advances the WAITING→SAMPLING→READY→WAITING machine.
func (l *Loop) tickStandard(ctx context.Context) error {
	dev := l.dev

	switch l.state {
	case stateWaiting:
		// bulkStartSampling carries no payload of its own; it is an
		// opcode-only trigger to begin the device's own capture cycle.
		if err := dev.usb.BulkCommand(ctx, nil, 0); err != nil {
			return err
		}
		l.state = stateSampling
		return nil

	case stateSampling:
		state, err := l.readCaptureState(ctx)
		if err != nil {
			return err
		}
		if state == CaptureReady || state == CaptureReady2250 || state == CaptureReady5200 {
			l.state = stateReady
		}
		return nil

	case stateReady:
		n, err := dev.usb.BulkReadMulti(ctx, l.captureBuf)
		if err != nil {
			return err
		}
		l.publish(l.captureBuf[:n], false)
		l.state = stateWaiting
		return nil

	default:
		l.state = stateWaiting
		return nil
	}
}

// tickRoll advances the four-state roll-mode round robin.
func (l *Loop) tickRoll(ctx context.Context) error {
	dev := l.dev

	switch l.state {
	case stateRollStartSampling, stateWaiting:
		l.state = stateRollEnableTrigger
		return nil

	case stateRollEnableTrigger:
		l.state = stateRollForceTrigger
		return nil

	case stateRollForceTrigger:
		if err := dev.ForceTrigger(); err != nil {
			return err
		}
		if err := l.drainPending(ctx); err != nil {
			return err
		}
		l.state = stateRollGetData
		return nil

	case stateRollGetData:
		n, err := dev.usb.BulkRead(ctx, l.captureBuf)
		if err != nil {
			return err
		}
		l.publish(l.captureBuf[:n], true)
		l.state = stateRollStartSampling
		return nil

	default:
		l.state = stateRollStartSampling
		return nil
	}
}

func (l *Loop) readCaptureState(ctx context.Context) (CaptureState, error) {
	dev := l.dev
	if dev.profile.ID == ModelDSO6022BE {
		return CaptureReady, nil
	}
	buf := make([]byte, 1)
	if _, err := dev.usb.ControlRead(ctx, byte(controlValue), 0, buf); err != nil {
		return CaptureWaiting, err
	}
	return CaptureState(buf[0]), nil
}

// publish decodes data and installs the result into the device's
// SampleFrame, then notifies the sink.
func (l *Loop) publish(data []byte, roll bool) {
	dev := l.dev

	triggerPoint := decodeTriggerPoint(dev.settings.Trigger.pointSamples)
	out, samplerateHz := dev.decoder.decode(data, dev.settings.Samplerate.fastRate, roll, &dev.settings, triggerPoint)
	dev.frame.publish(samplerateHz, roll, out)
	dev.sink.SamplesAvailable()
}
