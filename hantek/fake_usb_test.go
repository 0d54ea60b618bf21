// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

import "context"

// fakeUSB is a scripted UsbDevice: it records every call it receives
// and returns canned data, mirroring this codebase's scripted fake
// transport style.
type fakeUSB struct {
	model     ModelID
	connected bool

	bulkCommands  [][]byte
	controlWrites []struct {
		code byte
		buf  []byte
	}

	calibration  []byte
	controlReads [][]byte

	bulkReadData []byte
}

func newFakeUSB(model ModelID) *fakeUSB {
	calib := make([]byte, 72)
	for i := range calib {
		if i%4 == 2 || i%4 == 3 {
			calib[i] = 0xff // max halves default to all-ones
		}
	}
	return &fakeUSB{model: model, connected: true, calibration: calib}
}

func (f *fakeUSB) BulkCommand(ctx context.Context, payload []byte, count int) error {
	cp := make([]byte, len(payload))
	copy(cp, payload)
	f.bulkCommands = append(f.bulkCommands, cp)
	return nil
}

func (f *fakeUSB) BulkRead(ctx context.Context, buf []byte) (int, error) {
	n := copy(buf, f.bulkReadData)
	return n, nil
}

func (f *fakeUSB) BulkReadMulti(ctx context.Context, buf []byte) (int, error) {
	n := copy(buf, f.bulkReadData)
	return n, nil
}

func (f *fakeUSB) ControlWrite(ctx context.Context, code uint8, buf []byte) error {
	cp := make([]byte, len(buf))
	copy(cp, buf)
	f.controlWrites = append(f.controlWrites, struct {
		code byte
		buf  []byte
	}{code, cp})
	return nil
}

func (f *fakeUSB) ControlRead(ctx context.Context, code uint8, value uint16, buf []byte) (int, error) {
	if value == valueOffsetLimits {
		n := copy(buf, f.calibration)
		return n, nil
	}
	if len(f.controlReads) > 0 {
		n := copy(buf, f.controlReads[0])
		f.controlReads = f.controlReads[1:]
		return n, nil
	}
	return 0, nil
}

func (f *fakeUSB) UniqueModelID() ModelID { return f.model }
func (f *fakeUSB) PacketSize() int        { return 512 }
func (f *fakeUSB) IsConnected() bool      { return f.connected }
func (f *fakeUSB) Disconnect() error {
	f.connected = false
	return nil
}

// fakeSink records every EventSink notification it receives.
type fakeSink struct {
	NopEventSink
	statusMessages []string
	commErrors     int
	samplesReady   int
}

func (f *fakeSink) StatusMessage(text string, level StatusLevel) {
	f.statusMessages = append(f.statusMessages, text)
}

func (f *fakeSink) CommunicationError() { f.commErrors++ }
func (f *fakeSink) SamplesAvailable()   { f.samplesReady++ }

var _ UsbDevice = (*fakeUSB)(nil)
var _ EventSink = (*fakeSink)(nil)
