// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import "github.com/hwpl/openhantek/hantek"

// msgLogger is the subset of tdaq.Context.Msg this package depends on.
type msgLogger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// sinkAdapter routes hantek.EventSink notifications to the tdaq
// message stream of whichever command last ran.
type sinkAdapter struct {
	hantek.NopEventSink
	logger msgLogger
}

func newSinkAdapter() *sinkAdapter { return &sinkAdapter{} }

func (s *sinkAdapter) StatusMessage(text string, level hantek.StatusLevel) {
	if s.logger == nil {
		return
	}
	switch level {
	case hantek.StatusError:
		s.logger.Errorf("%s", text)
	case hantek.StatusWarning:
		s.logger.Warnf("%s", text)
	default:
		s.logger.Infof("%s", text)
	}
}

func (s *sinkAdapter) CommunicationError() {
	if s.logger != nil {
		s.logger.Errorf("communication error")
	}
}

var _ hantek.EventSink = (*sinkAdapter)(nil)
