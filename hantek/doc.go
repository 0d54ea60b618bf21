// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hantek implements the device control core for the Hantek DSO
// family of USB oscilloscopes (2090, 2150, 2250, 5200, 5200A, 6022BE).
//
// The core translates user intent into model-specific USB bulk and
// control payloads, runs a periodic acquisition state machine against
// an abstract UsbDevice, and decodes raw sample buffers into calibrated
// per-channel voltages. It never touches a real USB stack: callers
// supply a UsbDevice implementation and receive notifications through
// an EventSink.
package hantek // import "github.com/hwpl/openhantek/hantek"
