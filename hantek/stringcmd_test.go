// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

import (
	"fmt"
	"testing"
)

func TestStringCommand_SymbolicBulk(t *testing.T) {
	usb := newFakeUSB(ModelDSO2090)
	sink := &fakeSink{}
	dev, err := NewDevice(usb, sink)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}

	if err := dev.StringCommand("send bulk SetGain 12"); err != nil {
		t.Fatalf("StringCommand: %v", err)
	}
	if !dev.pending.isBulkPending(bulkSetGain) {
		t.Error("bulkSetGain should be pending")
	}
	buf, _ := dev.bulkPayload(bulkSetGain)
	if buf[0] != 0x12 {
		t.Errorf("payload[0] = 0x%x, want 0x12", buf[0])
	}
}

func TestStringCommand_RawHexOpcode(t *testing.T) {
	usb := newFakeUSB(ModelDSO2090)
	sink := &fakeSink{}
	dev, err := NewDevice(usb, sink)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}

	cmd := fmt.Sprintf("send bulk 0x%x ab", uint8(bulkSetGain))
	if err := dev.StringCommand(cmd); err != nil {
		t.Fatalf("StringCommand with raw hex opcode: %v", err)
	}
	if !dev.pending.isBulkPending(bulkSetGain) {
		t.Error("bulkSetGain should be pending")
	}
}

func TestStringCommand_RequiresConnection(t *testing.T) {
	usb := newFakeUSB(ModelDSO2090)
	sink := &fakeSink{}
	dev, err := NewDevice(usb, sink)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	usb.connected = false

	if err := dev.StringCommand("send bulk SetGain 12"); err != ErrConnection {
		t.Errorf("err = %v, want ErrConnection", err)
	}
}

func TestStringCommand_UnknownVerb(t *testing.T) {
	usb := newFakeUSB(ModelDSO2090)
	sink := &fakeSink{}
	dev, err := NewDevice(usb, sink)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}

	if err := dev.StringCommand("poke bulk SetGain 12"); err != ErrUnsupported {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
}
