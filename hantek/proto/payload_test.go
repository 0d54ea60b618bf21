// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import "testing"

func TestSetTriggerAndSamplerate_WrongLength(t *testing.T) {
	buf := make([]byte, 3)
	err := SetTriggerAndSamplerate(buf, 0, UsedCH1, 5, true, false, 0, 0, 0)
	if err == nil {
		t.Fatal("expected an error for a too-short buffer")
	}
}

func TestSetTriggerAndSamplerate_EncodesDownsampler(t *testing.T) {
	buf := make([]byte, LenTriggerAndSamplerate)
	err := SetTriggerAndSamplerate(buf, 1, UsedCH1CH2, 4, true, false, 2, 1, 0x1234)
	if err != nil {
		t.Fatalf("SetTriggerAndSamplerate: %v", err)
	}
	if buf[0] != 1 || buf[1] != UsedCH1CH2 {
		t.Errorf("record length / used channels not packed correctly: %v", buf[:2])
	}
	value := uint16(buf[3])<<8 | uint16(buf[4])
	want := uint16(0x10001 - (4 >> 1))
	if value != want {
		t.Errorf("downsampler field = 0x%x, want 0x%x", value, want)
	}
}

func TestSamplerateFields5200(t *testing.T) {
	fast, slow := SamplerateFields5200(1, 0)
	if fast != 3 {
		t.Errorf("fast = %d, want 3", fast)
	}
	if slow != 0 {
		t.Errorf("slow = %d, want 0", slow)
	}

	_, slow2 := SamplerateFields5200(1, 10)
	if slow2 != 0xFFFF-10 {
		t.Errorf("slow = 0x%x, want 0x%x", slow2, 0xFFFF-10)
	}
}

func TestSetSamplerate2250_SmallDownsamplerIsZero(t *testing.T) {
	buf := make([]byte, LenSamplerate2250)
	if err := SetSamplerate2250(buf, false, 1, false); err != nil {
		t.Fatalf("SetSamplerate2250: %v", err)
	}
	value := uint16(buf[1])<<8 | uint16(buf[2])
	if value != 0 {
		t.Errorf("value = 0x%x, want 0 (downsampler<=1)", value)
	}
}

func TestSetGain_PacksBothChannels(t *testing.T) {
	buf := make([]byte, LenGain)
	if err := SetGain(buf, 3, 5); err != nil {
		t.Fatalf("SetGain: %v", err)
	}
	if buf[0] != (3 | (5 << 3)) {
		t.Errorf("buf[0] = 0x%x, want 0x%x", buf[0], 3|(5<<3))
	}
}

func TestSetRelays_PacksFlags(t *testing.T) {
	buf := make([]byte, LenRelays)
	ch0 := RelayFlags{ACCoupling: true, Lt1V: true}
	ch1 := RelayFlags{Lt100mV: true}
	if err := SetRelays(buf, ch0, ch1, true); err != nil {
		t.Fatalf("SetRelays: %v", err)
	}
	if buf[0] != 0x3 {
		t.Errorf("buf[0] = 0x%x, want 0x3", buf[0])
	}
	if buf[1] != 0x4 {
		t.Errorf("buf[1] = 0x%x, want 0x4", buf[1])
	}
	if buf[2] != 1 {
		t.Errorf("buf[2] = 0x%x, want 1", buf[2])
	}
}
