// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"encoding/binary"
	"io"

	"golang.org/x/xerrors"
)

const (
	calibChannels = 2
	calibGains    = 9

	// CalibrationSize is the byte length of the raw offset-limit block
	// read once from the device via CONTROL_VALUE/VALUE_OFFSETLIMITS.
	CalibrationSize = calibChannels * calibGains * 2 * 2
)

// OffsetLimits is the opaque, big-endian 16-bit [channel][gain][start|end]
// calibration table. It is read once from the device, kept verbatim,
// and consulted only by setOffset — never parsed any further.
type OffsetLimits struct {
	Min [calibChannels][calibGains]uint16
	Max [calibChannels][calibGains]uint16
}

// DecodeOffsetLimits parses a raw calibration block read from the
// device, mirroring the incremental-reader shape of this codebase's
// own framed decoders (read fixed-size fields, accumulate the first
// error, report it wrapped at the end) minus any checksum — the
// Hantek calibration block carries none.
func DecodeOffsetLimits(r io.Reader) (OffsetLimits, error) {
	var (
		limits OffsetLimits
		buf    = make([]byte, CalibrationSize)
	)

	_, err := io.ReadFull(r, buf)
	if err != nil {
		return limits, xerrors.Errorf("proto: could not read calibration block: %w", err)
	}

	pos := 0
	readU16 := func() uint16 {
		v := binary.BigEndian.Uint16(buf[pos : pos+2])
		pos += 2
		return v
	}

	for ch := 0; ch < calibChannels; ch++ {
		for g := 0; g < calibGains; g++ {
			limits.Min[ch][g] = readU16()
			limits.Max[ch][g] = readU16()
		}
	}

	return limits, nil
}
