// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

import "testing"

func TestSettings_UsedChannelsCount(t *testing.T) {
	var s Settings
	if n := s.usedChannelsCount(); n != 0 {
		t.Errorf("usedChannelsCount = %d, want 0", n)
	}
	s.Channel[0].used = true
	if n := s.usedChannelsCount(); n != 1 {
		t.Errorf("usedChannelsCount = %d, want 1", n)
	}
	s.Channel[1].used = true
	if n := s.usedChannelsCount(); n != 2 {
		t.Errorf("usedChannelsCount = %d, want 2", n)
	}
}
