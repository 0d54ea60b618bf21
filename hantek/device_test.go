// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

import "testing"

func TestNewDevice_UnknownModel(t *testing.T) {
	usb := newFakeUSB(ModelID(0xdead))
	sink := &fakeSink{}

	_, err := NewDevice(usb, sink)
	if err != ErrUnknownModel {
		t.Fatalf("err = %v, want ErrUnknownModel", err)
	}
	if usb.connected {
		t.Error("usb should be disconnected after an unknown model")
	}
}

func TestNewDevice_ReadsCalibration(t *testing.T) {
	usb := newFakeUSB(ModelDSO2090)
	sink := &fakeSink{}

	dev, err := NewDevice(usb, sink)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	if dev.profile.ID != ModelDSO2090 {
		t.Errorf("profile.ID = %v, want DSO2090", dev.profile.ID)
	}
}

func TestDevice_RequiresConnection(t *testing.T) {
	usb := newFakeUSB(ModelDSO2090)
	sink := &fakeSink{}
	dev, err := NewDevice(usb, sink)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}

	usb.connected = false
	if _, err := dev.SetSamplerate(1e6); err != ErrConnection {
		t.Errorf("SetSamplerate after disconnect: err = %v, want ErrConnection", err)
	}
	if err := dev.ForceTrigger(); err != ErrConnection {
		t.Errorf("ForceTrigger after disconnect: err = %v, want ErrConnection", err)
	}
}

func TestDevice_RejectsBadChannel(t *testing.T) {
	usb := newFakeUSB(ModelDSO2090)
	sink := &fakeSink{}
	dev, err := NewDevice(usb, sink)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}

	if _, err := dev.SetGain(2, 1.0); err != ErrParameter {
		t.Errorf("SetGain(ch=2): err = %v, want ErrParameter", err)
	}
	if _, err := dev.SetOffset(-1, 0.5); err != ErrParameter {
		t.Errorf("SetOffset(ch=-1): err = %v, want ErrParameter", err)
	}
}

func TestDevice_SetRecordLength_MarksPending(t *testing.T) {
	usb := newFakeUSB(ModelDSO2090)
	sink := &fakeSink{}
	dev, err := NewDevice(usb, sink)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}

	length, err := dev.SetRecordLength(1)
	if err != nil {
		t.Fatalf("SetRecordLength: %v", err)
	}
	if length != 32768 {
		t.Errorf("length = %d, want 32768", length)
	}
	if !dev.pending.isBulkPending(bulkSetTriggerAndSamplerate) {
		t.Error("bulkSetTriggerAndSamplerate should be pending after SetRecordLength")
	}
}

func TestDevice_SetSamplerate_Commits(t *testing.T) {
	usb := newFakeUSB(ModelDSO2090)
	sink := &fakeSink{}
	dev, err := NewDevice(usb, sink)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}

	realized, err := dev.SetSamplerate(10e6)
	if err != nil {
		t.Fatalf("SetSamplerate: %v", err)
	}
	if realized != 10e6 {
		t.Errorf("realized = %v, want 10e6", realized)
	}
	if !dev.pending.isBulkPending(bulkSetTriggerAndSamplerate) {
		t.Error("bulkSetTriggerAndSamplerate should be pending after SetSamplerate")
	}
}

func TestDevice_StartStopSampling(t *testing.T) {
	usb := newFakeUSB(ModelDSO2090)
	sink := &fakeSink{}
	dev, err := NewDevice(usb, sink)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}

	if err := dev.StartSampling(); err != nil {
		t.Fatalf("StartSampling: %v", err)
	}
	if !dev.samplingStarted {
		t.Error("samplingStarted should be true")
	}
	if err := dev.StopSampling(); err != nil {
		t.Fatalf("StopSampling: %v", err)
	}
	if dev.samplingStarted {
		t.Error("samplingStarted should be false")
	}
}
