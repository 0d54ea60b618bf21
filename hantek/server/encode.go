// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"encoding/binary"
	"math"
)

// encodeFrame serializes one decoded sample frame for the /frames
// output stream: samplerate (float64), an append flag, then each
// channel as a length-prefixed array of float64 voltages, all
// big-endian — the same fixed-field style this codebase's framed
// encoders use, minus any checksum (there is no wire-level corruption
// risk on an in-process tdaq output handle).
func encodeFrame(samplerateHz float64, roll bool, ch0, ch1 []float64) []byte {
	size := 8 + 1 + 4 + 8*len(ch0) + 4 + 8*len(ch1)
	buf := make([]byte, size)

	pos := 0
	binary.BigEndian.PutUint64(buf[pos:], math.Float64bits(samplerateHz))
	pos += 8

	if roll {
		buf[pos] = 1
	}
	pos++

	pos = encodeChannel(buf, pos, ch0)
	pos = encodeChannel(buf, pos, ch1)

	return buf[:pos]
}

func encodeChannel(buf []byte, pos int, data []float64) int {
	binary.BigEndian.PutUint32(buf[pos:], uint32(len(data)))
	pos += 4
	for _, v := range data {
		binary.BigEndian.PutUint64(buf[pos:], math.Float64bits(v))
		pos += 8
	}
	return pos
}
