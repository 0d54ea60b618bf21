// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

import "errors"

// Sentinel error kinds returned by the user API.
var (
	// ErrConnection is returned when an operation requires a connected
	// device and none is attached.
	ErrConnection = errors.New("hantek: device not connected")

	// ErrParameter is returned when an argument is out of range for the
	// current model (e.g. a channel index ≥ HANTEK_CHANNELS).
	ErrParameter = errors.New("hantek: parameter out of range")

	// ErrUnsupported is returned when the current model's ModelProfile
	// does not map the requested abstract operation to any opcode.
	ErrUnsupported = errors.New("hantek: operation unsupported on this model")

	// ErrUnknownModel is returned by NewDevice, after a status message
	// to the event sink and a disconnect, when device.UniqueModelID
	// returns an id this package does not recognize.
	ErrUnknownModel = errors.New("hantek: unknown model id")

	// ErrNoDevice mirrors the transport-level "device disappeared"
	// condition. Any UsbDevice method may return it wrapped; the
	// acquisition loop treats it as fatal.
	ErrNoDevice = errors.New("hantek: no device")
)
