// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

import "context"

// UsbDevice is the only transport capability this package depends on.
// Implementations live outside this module — enumerating and opening
// a real USB device is explicitly out of scope.
type UsbDevice interface {
	// BulkCommand sends a bulk command payload. count, when > 0,
	// requests that many bytes of bulk response.
	BulkCommand(ctx context.Context, payload []byte, count int) error

	// BulkRead reads up to len(buf) bytes from the bulk endpoint,
	// returning the number of bytes actually read.
	BulkRead(ctx context.Context, buf []byte) (int, error)

	// BulkReadMulti reads a (possibly multi-transfer) buffer of
	// exactly len(buf) bytes, returning bytes read or a negative count
	// is never used in Go — errors are reported through err instead.
	BulkReadMulti(ctx context.Context, buf []byte) (int, error)

	// ControlWrite sends a control-transfer payload tagged with code.
	ControlWrite(ctx context.Context, code uint8, buf []byte) error

	// ControlRead reads a control-transfer response tagged with code
	// and value into buf.
	ControlRead(ctx context.Context, code uint8, value uint16, buf []byte) (int, error)

	// UniqueModelID identifies which ModelProfile to load.
	UniqueModelID() ModelID

	// PacketSize reports the transport's maximum bulk packet size.
	PacketSize() int

	// IsConnected reports whether the transport believes the device is
	// still attached.
	IsConnected() bool

	// Disconnect tears down the transport. NewDevice calls it after
	// UnknownModel or a failed calibration read; the acquisition loop
	// does not call it.
	Disconnect() error
}

// StatusLevel classifies a StatusMessage notification.
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusWarning
	StatusError
)

// EventSink receives every asynchronous notification the core
// produces. Implementations must not block for long — the acquisition
// loop calls these synchronously from its own tick.
type EventSink interface {
	SamplingStarted()
	SamplingStopped()
	StatusMessage(text string, level StatusLevel)
	AvailableRecordLengthsChanged(lengths []uint32)
	RecordLengthChanged(length uint32)
	RecordTimeChanged(seconds float64)
	SamplerateChanged(hz float64)
	SamplerateLimitsChanged(minHz, maxHz float64)
	SamplerateSet(fastRate bool, steps int)
	SamplesAvailable()
	CommunicationError()
}

// NopEventSink implements EventSink with no-ops; embed it to implement
// only the notifications a caller cares about.
type NopEventSink struct{}

func (NopEventSink) SamplingStarted()                                  {}
func (NopEventSink) SamplingStopped()                                  {}
func (NopEventSink) StatusMessage(string, StatusLevel)                 {}
func (NopEventSink) AvailableRecordLengthsChanged(lengths []uint32)    {}
func (NopEventSink) RecordLengthChanged(length uint32)                 {}
func (NopEventSink) RecordTimeChanged(seconds float64)                 {}
func (NopEventSink) SamplerateChanged(hz float64)                      {}
func (NopEventSink) SamplerateLimitsChanged(minHz, maxHz float64)      {}
func (NopEventSink) SamplerateSet(fastRate bool, steps int)            {}
func (NopEventSink) SamplesAvailable()                                 {}
func (NopEventSink) CommunicationError()                               {}

var _ EventSink = NopEventSink{}
