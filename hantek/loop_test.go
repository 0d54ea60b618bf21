// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

import (
	"context"
	"testing"
	"time"
)

func TestLoop_DrainPendingClearsBits(t *testing.T) {
	usb := newFakeUSB(ModelDSO2090)
	sink := &fakeSink{}
	dev, err := NewDevice(usb, sink)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	if _, err := dev.SetGain(0, 1.0); err != nil {
		t.Fatalf("SetGain: %v", err)
	}

	loop := NewLoop(dev)
	if err := loop.drainPending(context.Background()); err != nil {
		t.Fatalf("drainPending: %v", err)
	}

	if dev.pending.isBulkPending(bulkSetGain) {
		t.Error("bulkSetGain should be cleared after drain")
	}
	if len(usb.bulkCommands) == 0 {
		t.Error("expected at least one bulk command to have been sent")
	}
}

func TestLoop_CycleTimeClamped(t *testing.T) {
	usb := newFakeUSB(ModelDSO2090)
	sink := &fakeSink{}
	dev, err := NewDevice(usb, sink)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	loop := NewLoop(dev)

	dev.settings.Samplerate.currentHz = 0
	if got := loop.cycleTime(); got != minCycle {
		t.Errorf("cycleTime with hz=0 = %v, want %v", got, minCycle)
	}

	dev.settings.Samplerate.currentHz = 1
	dev.settings.RecordLengthID = 2 // RollModeRecordLength entry for DSO2090
	if got := loop.cycleTime(); got != minCycle {
		t.Errorf("cycleTime in roll mode = %v, want %v", got, minCycle)
	}
}

func TestLoop_StopsOnContextCancel(t *testing.T) {
	usb := newFakeUSB(ModelDSO2090)
	sink := &fakeSink{}
	dev, err := NewDevice(usb, sink)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	loop := NewLoop(dev)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err = loop.Run(ctx)
	if err != context.DeadlineExceeded {
		t.Errorf("Run returned %v, want context.DeadlineExceeded", err)
	}
}

func TestLoop_StandardModeCycle(t *testing.T) {
	usb := newFakeUSB(ModelDSO2090)
	sink := &fakeSink{}
	dev, err := NewDevice(usb, sink)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	if err := dev.SetChannelUsed(0, true); err != nil {
		t.Fatalf("SetChannelUsed: %v", err)
	}
	if _, err := dev.SetSamplerate(10e6); err != nil {
		t.Fatalf("SetSamplerate: %v", err)
	}
	if err := dev.StartSampling(); err != nil {
		t.Fatalf("StartSampling: %v", err)
	}

	usb.bulkReadData = make([]byte, 256)
	usb.controlReads = [][]byte{{byte(CaptureReady)}}

	loop := NewLoop(dev)
	ctx := context.Background()

	if err := loop.tickStandard(ctx); err != nil {
		t.Fatalf("tickStandard (waiting): %v", err)
	}
	if loop.state != stateSampling {
		t.Fatalf("state = %v, want stateSampling", loop.state)
	}

	if err := loop.tickStandard(ctx); err != nil {
		t.Fatalf("tickStandard (sampling): %v", err)
	}
	if loop.state != stateReady {
		t.Fatalf("state = %v, want stateReady", loop.state)
	}

	if err := loop.tickStandard(ctx); err != nil {
		t.Fatalf("tickStandard (ready): %v", err)
	}
	if loop.state != stateWaiting {
		t.Fatalf("state = %v, want stateWaiting", loop.state)
	}
	if sink.samplesReady == 0 {
		t.Error("expected SamplesAvailable to have been called")
	}
}
