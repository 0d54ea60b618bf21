// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"bytes"
	"testing"
)

func TestDecodeOffsetLimits(t *testing.T) {
	buf := make([]byte, CalibrationSize)
	// channel 0, gain 0: min=0x0010, max=0x0fff
	buf[0], buf[1] = 0x00, 0x10
	buf[2], buf[3] = 0x0f, 0xff

	limits, err := DecodeOffsetLimits(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("DecodeOffsetLimits: %v", err)
	}
	if limits.Min[0][0] != 0x0010 {
		t.Errorf("Min[0][0] = 0x%x, want 0x0010", limits.Min[0][0])
	}
	if limits.Max[0][0] != 0x0fff {
		t.Errorf("Max[0][0] = 0x%x, want 0x0fff", limits.Max[0][0])
	}
}

func TestDecodeOffsetLimits_ShortRead(t *testing.T) {
	buf := make([]byte, CalibrationSize-1)
	_, err := DecodeOffsetLimits(bytes.NewReader(buf))
	if err == nil {
		t.Fatal("expected an error for a truncated calibration block")
	}
}
