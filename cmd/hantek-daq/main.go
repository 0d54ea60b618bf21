// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hantek-daq starts a TDAQ server fronting a Hantek DSO core.
package main // import "github.com/hwpl/openhantek/cmd/hantek-daq"

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-daq/tdaq"
	"github.com/go-daq/tdaq/flags"

	"github.com/hwpl/openhantek"
	"github.com/hwpl/openhantek/hantek"
	"github.com/hwpl/openhantek/hantek/server"
	"github.com/hwpl/openhantek/internal/simusb"
)

var (
	modelFlag   = flag.String("model", "DSO2090", "Hantek model to simulate (real USB transports are out of scope for this module)")
	versionFlag = flag.Bool("version", false, "print the module version and exit")
)

func main() {
	cmd := flags.New()

	if *versionFlag {
		version, sum := openhantek.Version()
		fmt.Printf("hantek-daq %s (%s)\n", version, sum)
		return
	}

	model, err := parseModel(*modelFlag)
	if err != nil {
		log.Fatalf("error: %+v", err)
	}

	srv := tdaq.New(cmd, os.Stdout)

	hsrv := server.New(func() (hantek.UsbDevice, error) {
		return simusb.New(model), nil
	})

	srv.CmdHandle("/config", hsrv.OnConfig)
	srv.CmdHandle("/init", hsrv.OnInit)
	srv.CmdHandle("/reset", hsrv.OnReset)
	srv.CmdHandle("/start", hsrv.OnStart)
	srv.CmdHandle("/stop", hsrv.OnStop)
	srv.CmdHandle("/quit", hsrv.OnQuit)

	srv.OutputHandle("/frames", hsrv.Frames)

	if err := srv.Run(context.Background()); err != nil {
		log.Panicf("error: %+v", err)
	}
}

func parseModel(name string) (hantek.ModelID, error) {
	switch name {
	case "DSO2090":
		return hantek.ModelDSO2090, nil
	case "DSO2150":
		return hantek.ModelDSO2150, nil
	case "DSO2250":
		return hantek.ModelDSO2250, nil
	case "DSO5200":
		return hantek.ModelDSO5200, nil
	case "DSO5200A":
		return hantek.ModelDSO5200A, nil
	case "DSO6022BE":
		return hantek.ModelDSO6022BE, nil
	default:
		return hantek.ModelUnknown, hantek.ErrUnknownModel
	}
}
