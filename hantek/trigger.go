// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

// decodeTriggerPoint recovers the sample-buffer position of the
// hardware trigger from the device's bit-inverted encoding: for every
// bit position from the LSB up, if that bit is set in the
// raw value, the result is XORed with (bit_value - 1), inverting every
// lower bit.
func decodeTriggerPoint(raw uint32) uint32 {
	result := raw
	for bit := uint32(1); bit != 0; bit <<= 1 {
		if raw&bit != 0 {
			result ^= bit - 1
		}
	}
	return result
}
