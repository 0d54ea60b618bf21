// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

import "testing"

func TestDecodeTriggerPoint(t *testing.T) {
	tests := []struct {
		raw  uint32
		want uint32
	}{
		{0x0, 0x0},
		{0x3, 0x2},
		{0x5, 0x6},
	}
	for _, tc := range tests {
		got := decodeTriggerPoint(tc.raw)
		if got != tc.want {
			t.Errorf("decodeTriggerPoint(0x%x) = 0x%x, want 0x%x", tc.raw, got, tc.want)
		}
	}
}
