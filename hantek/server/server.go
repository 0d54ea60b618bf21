// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server exposes a Hantek DSO core as a tdaq run-control node:
// /config opens the transport, resolves the model and performs the
// calibration read, /init checks that /config has run, /start and
// /stop drive the acquisition loop,
// and an output stream publishes decoded sample frames.
package server // import "github.com/hwpl/openhantek/hantek/server"

import (
	"context"
	"sync"

	"github.com/go-daq/tdaq"
	"golang.org/x/xerrors"

	"github.com/hwpl/openhantek/hantek"
)

// Opener constructs the transport for one physical device. Enumerating
// and opening a real USB device is outside this module's scope; the
// caller supplies this factory instead.
type Opener func() (hantek.UsbDevice, error)

// Server is the tdaq.Context handler set for one Hantek DSO.
type Server struct {
	open Opener

	mu     sync.Mutex
	dev    *hantek.Device
	loop   *hantek.Loop
	cancel context.CancelFunc

	sink *sinkAdapter
}

// New creates a Server that opens its transport via open on /config.
func New(open Opener) *Server {
	return &Server{open: open, sink: newSinkAdapter()}
}

func (srv *Server) OnConfig(ctx tdaq.Context, resp *tdaq.Frame, req tdaq.Frame) error {
	ctx.Msg.Debugf("received /config command...")

	usb, err := srv.open()
	if err != nil {
		ctx.Msg.Errorf("could not open transport: %+v", err)
		return xerrors.Errorf("hantek: could not open transport: %w", err)
	}

	srv.sink.logger = ctx.Msg

	dev, err := hantek.NewDevice(usb, srv.sink)
	if err != nil {
		ctx.Msg.Errorf("could not create device: %+v", err)
		return xerrors.Errorf("hantek: could not create device: %w", err)
	}

	srv.mu.Lock()
	srv.dev = dev
	srv.loop = hantek.NewLoop(dev)
	srv.mu.Unlock()

	return nil
}

func (srv *Server) OnInit(ctx tdaq.Context, resp *tdaq.Frame, req tdaq.Frame) error {
	ctx.Msg.Debugf("received /init command...")
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if srv.dev == nil {
		return xerrors.Errorf("hantek: /init received before /config")
	}
	return nil
}

func (srv *Server) OnReset(ctx tdaq.Context, resp *tdaq.Frame, req tdaq.Frame) error {
	ctx.Msg.Debugf("received /reset command...")
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if srv.dev != nil {
		_ = srv.dev.StopSampling()
	}
	return nil
}

func (srv *Server) OnStart(ctx tdaq.Context, resp *tdaq.Frame, req tdaq.Frame) error {
	ctx.Msg.Debugf("received /start command...")
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.dev == nil {
		return xerrors.Errorf("hantek: /start received before /config")
	}
	if err := srv.dev.StartSampling(); err != nil {
		return xerrors.Errorf("hantek: could not start sampling: %w", err)
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	srv.cancel = cancel
	loop := srv.loop
	go func() {
		if err := loop.Run(loopCtx); err != nil && loopCtx.Err() == nil {
			ctx.Msg.Errorf("acquisition loop stopped: %+v", err)
		}
	}()

	return nil
}

func (srv *Server) OnStop(ctx tdaq.Context, resp *tdaq.Frame, req tdaq.Frame) error {
	ctx.Msg.Debugf("received /stop command...")
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.cancel != nil {
		srv.cancel()
		srv.cancel = nil
	}
	if srv.dev != nil {
		_ = srv.dev.StopSampling()
	}
	return nil
}

func (srv *Server) OnQuit(ctx tdaq.Context, resp *tdaq.Frame, req tdaq.Frame) error {
	ctx.Msg.Debugf("received /quit command...")
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if srv.cancel != nil {
		srv.cancel()
		srv.cancel = nil
	}
	return nil
}

// Frames streams the most recently published sample frame on every
// poll, to be wired with tdaq.Server.OutputHandle("/frames", ...).
func (srv *Server) Frames(ctx tdaq.Context, dst *tdaq.Frame) error {
	srv.mu.Lock()
	dev := srv.dev
	srv.mu.Unlock()
	if dev == nil {
		dst.Body = nil
		return nil
	}

	frame := dev.Frame()
	ch0 := frame.Channel(0)
	ch1 := frame.Channel(1)
	dst.Body = encodeFrame(frame.SamplerateHz(), frame.Append(), ch0, ch1)
	return nil
}
