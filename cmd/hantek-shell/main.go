// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hantek-shell is an interactive REPL over a Hantek DSO core,
// for exercising stringCommand and a handful of convenience commands
// without a run-control server in front.
package main // import "github.com/hwpl/openhantek/cmd/hantek-shell"

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/hwpl/openhantek/hantek"
	"github.com/hwpl/openhantek/internal/simusb"
)

var modelFlag = flag.String("model", "DSO2090", "Hantek model to simulate")

const historyFile = ".hantek-shell-history"

func main() {
	flag.Parse()

	model, err := parseModel(*modelFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %+v\n", err)
		os.Exit(1)
	}

	dev, err := hantek.NewDevice(simusb.New(model), hantek.NopEventSink{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not create device: %+v\n", err)
		os.Exit(1)
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("hantek-shell: connected to %v\n", model)
	for {
		input, err := line.Prompt("hantek> ")
		if err != nil {
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if input == "quit" || input == "exit" {
			break
		}

		if err := dispatch(dev, input); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}

	if f, err := os.Create(historyFile); err == nil {
		line.WriteHistory(f)
		f.Close()
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

// dispatch handles "send bulk|control ..." (passed straight through to
// stringCommand) plus a few typed shortcuts a human would rather not
// spell out in hex every time.
func dispatch(dev *hantek.Device, input string) error {
	fields := strings.Fields(input)
	switch fields[0] {
	case "send":
		return dev.StringCommand(input)

	case "samplerate":
		if len(fields) != 2 {
			return hantek.ErrParameter
		}
		hz, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return err
		}
		realized, err := dev.SetSamplerate(hz)
		if err != nil {
			return err
		}
		fmt.Printf("realized samplerate: %v Hz\n", realized)
		return nil

	case "gain":
		if len(fields) != 3 {
			return hantek.ErrParameter
		}
		ch, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		volts, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return err
		}
		applied, err := dev.SetGain(ch, volts)
		if err != nil {
			return err
		}
		fmt.Printf("applied gain: %v V/div\n", applied)
		return nil

	case "start":
		return dev.StartSampling()

	case "stop":
		return dev.StopSampling()

	case "trigger":
		return dev.ForceTrigger()

	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}
