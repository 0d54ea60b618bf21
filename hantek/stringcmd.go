// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

import (
	"fmt"
	"strconv"
	"strings"
)

// bulkNames and controlNames let StringCommand accept either the
// symbolic opcode name or a raw hex/decimal code: a diagnostic session
// pasted from a capture log uses raw codes, while one typed by hand
// uses names.
var bulkNames = map[string]bulkCode{
	"SetTriggerAndSamplerate": bulkSetTriggerAndSamplerate,
	"SetGain":                 bulkSetGain,
	"BSetChannels":            bulkBSetChannels,
	"CSetTriggerOrSamplerate": bulkCSetTriggerOrSamplerate,
	"ESetTriggerOrSamplerate": bulkESetTriggerOrSamplerate,
	"FSetBuffer":              bulkFSetBuffer,
	"GetCaptureState":         bulkGetCaptureState,
	"StartSampling":           bulkStartSampling,
	"EnableTrigger":           bulkEnableTrigger,
	"ForceTrigger":            bulkForceTrigger,
}

var controlNames = map[string]controlCode{
	"SetOffset":        controlSetOffset,
	"SetRelays":        controlSetRelays,
	"SetVoltDivCh1":    controlSetVoltDivCh1,
	"SetVoltDivCh2":    controlSetVoltDivCh2,
	"SetTimeDiv":       controlSetTimeDiv,
	"AcquireHardData":  controlAcquireHardData,
	"Value":            controlValue,
}

// StringCommand parses "send bulk <opcode> [hex bytes...]" or
// "send control <opcode> [hex bytes...]", where
// <opcode> is either a symbolic name (bulkNames/controlNames) or a raw
// hex/decimal code. A bare send with no data bytes simply marks the
// opcode pending with whatever payload buffer already holds, mirroring
// a manually triggered retransmit.
func (dev *Device) StringCommand(cmd string) error {
	if err := dev.requireConnected(); err != nil {
		return err
	}

	fields := strings.Fields(cmd)
	if len(fields) < 3 {
		return ErrParameter
	}
	if fields[0] != "send" {
		return ErrUnsupported
	}

	switch fields[1] {
	case "bulk":
		code, err := parseBulkCode(fields[2])
		if err != nil {
			return err
		}
		buf, ok := dev.bulkPayload(code)
		if !ok {
			return ErrUnsupported
		}
		if err := hexParse(fields[3:], buf); err != nil {
			return err
		}
		dev.pending.markBulk(code)
		return nil

	case "control":
		code, err := parseControlCode(fields[2])
		if err != nil {
			return err
		}
		_, buf, ok := dev.controlPayload(code)
		if !ok {
			return ErrUnsupported
		}
		if err := hexParse(fields[3:], buf); err != nil {
			return err
		}
		dev.pending.markControl(code)
		return nil

	default:
		return ErrUnsupported
	}
}

func parseBulkCode(token string) (bulkCode, error) {
	if c, ok := bulkNames[token]; ok {
		return c, nil
	}
	n, err := strconv.ParseUint(token, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("hantek: invalid bulk opcode %q: %w", token, ErrParameter)
	}
	return bulkCode(n), nil
}

func parseControlCode(token string) (controlCode, error) {
	if c, ok := controlNames[token]; ok {
		return c, nil
	}
	n, err := strconv.ParseUint(token, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("hantek: invalid control opcode %q: %w", token, ErrParameter)
	}
	return controlCode(n), nil
}

// hexParse overwrites buf's leading bytes with hex tokens, leaving any
// remaining bytes untouched. More tokens than len(buf) is a parameter
// error; fewer is allowed, matching a partial patch.
func hexParse(tokens []string, buf []byte) error {
	if len(tokens) > len(buf) {
		return ErrParameter
	}
	for i, tok := range tokens {
		n, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return fmt.Errorf("hantek: invalid hex byte %q: %w", tok, ErrParameter)
		}
		buf[i] = byte(n)
	}
	return nil
}
