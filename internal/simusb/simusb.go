// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simusb stands in for a real libusb transport, which is
// outside this module's scope. It answers every bulk read with a
// synthetic sine wave plus noise and every control read with all-0xff
// bytes, the same role rpi's random ADC generator plays for mim-rpi — good
// enough to exercise the acquisition loop and the command-line tools
// without real hardware attached.
package simusb // import "github.com/hwpl/openhantek/internal/simusb"

import (
	"context"
	"math"
	"math/rand"

	"github.com/hwpl/openhantek/hantek"
)

// Device implements hantek.UsbDevice.
type Device struct {
	model hantek.ModelID
	rnd   *rand.Rand
}

// New creates a simulated transport reporting model as its
// UniqueModelID.
func New(model hantek.ModelID) *Device {
	return &Device{model: model, rnd: rand.New(rand.NewSource(1))}
}

func (d *Device) BulkCommand(ctx context.Context, payload []byte, count int) error { return nil }

func (d *Device) BulkRead(ctx context.Context, buf []byte) (int, error) {
	d.fill(buf)
	return len(buf), nil
}

func (d *Device) BulkReadMulti(ctx context.Context, buf []byte) (int, error) {
	d.fill(buf)
	return len(buf), nil
}

func (d *Device) fill(buf []byte) {
	for i := range buf {
		phase := float64(i) / 32 * 2 * math.Pi
		v := 128 + 96*math.Sin(phase) + (d.rnd.Float64()-0.5)*4
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		buf[i] = byte(v)
	}
}

func (d *Device) ControlWrite(ctx context.Context, code uint8, buf []byte) error { return nil }

func (d *Device) ControlRead(ctx context.Context, code uint8, value uint16, buf []byte) (int, error) {
	for i := range buf {
		buf[i] = 0xff
	}
	return len(buf), nil
}

func (d *Device) UniqueModelID() hantek.ModelID { return d.model }
func (d *Device) PacketSize() int               { return 512 }
func (d *Device) IsConnected() bool             { return true }
func (d *Device) Disconnect() error             { return nil }

var _ hantek.UsbDevice = (*Device)(nil)
