// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"encoding/binary"

	"golang.org/x/xerrors"
)

// Used-channel codes. BUsedCH2 is deliberately distinct from UsedCH2: the 2250's
// B_SET_CHANNELS opcode encodes "channel 2 only" differently than
// every other command that carries a used-channels field.
const (
	UsedCH1     byte = 1
	UsedCH2     byte = 2
	UsedCH1CH2  byte = 3
	BUsedCH2    byte = 4
)

// Buffer lengths, one per opcode variant.
const (
	LenTriggerAndSamplerate = 11
	LenSamplerate5200       = 4
	LenTrigger5200          = 4
	LenSamplerate2250       = 3
	LenBuffer5200           = 5
	LenBuffer2250           = 7
	LenChannels2250         = 1
	LenGain                 = 1
	LenOffset               = 5
	LenRelays               = 3
	LenVoltDiv              = 1
	LenTimeDiv              = 1
)

func checkLen(buf []byte, want int) error {
	if len(buf) != want {
		return xerrors.Errorf("proto: payload buffer has wrong length (got=%d, want=%d)", len(buf), want)
	}
	return nil
}

// SetTriggerAndSamplerate packs the 2090/2150 BULK_SETTRIGGERANDSAMPLERATE
// fields: record length index, used channels, explicit downsampler
// (stored as 0x10001 - downsampler/2), trigger source/slope, and the 21-bit
// trigger position.
func SetTriggerAndSamplerate(buf []byte, recordLengthIndex, usedChannels byte, downsampler uint64, downsamplingMode, fastRate bool, triggerSource, triggerSlope byte, triggerPosition uint32) error {
	if err := checkLen(buf, LenTriggerAndSamplerate); err != nil {
		return err
	}

	buf[0] = recordLengthIndex
	buf[1] = usedChannels

	var flags byte
	if downsamplingMode {
		flags |= 1 << 0
	}
	if fastRate {
		flags |= 1 << 1
	}
	buf[2] = flags

	value := uint16(0x10001 - (downsampler >> 1))
	binary.BigEndian.PutUint16(buf[3:5], value)

	buf[5] = triggerSource
	buf[6] = triggerSlope

	pos := triggerPosition & 0x1FFFFF
	buf[7] = byte(pos >> 16)
	buf[8] = byte(pos >> 8)
	buf[9] = byte(pos)
	return nil
}

// SamplerateFields5200 computes the fast/slow split used by the 5200
// family's C_SET_TRIG_OR_RATE opcode: fast = 4 - valueFast; slow is
// stored in two's-complement form, zero iff valueSlow is zero.
func SamplerateFields5200(valueFast, valueSlow uint16) (fast, slow uint16) {
	fast = uint16(4 - valueFast)
	if valueSlow == 0 {
		slow = 0
	} else {
		slow = 0xFFFF - valueSlow
	}
	return fast, slow
}

// SetSamplerate5200 writes the fast/slow fields computed by
// SamplerateFields5200.
func SetSamplerate5200(buf []byte, fast, slow uint16) error {
	if err := checkLen(buf, LenSamplerate5200); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(buf[0:2], fast)
	binary.BigEndian.PutUint16(buf[2:4], slow)
	return nil
}

// SetTrigger5200 writes the partnered BULK_ESETTRIGGERORSAMPLERATE
// fields for the 5200 family: fast-rate flag, used channels, trigger
// source and slope.
func SetTrigger5200(buf []byte, fastRate bool, usedChannels, triggerSource, triggerSlope byte) error {
	if err := checkLen(buf, LenTrigger5200); err != nil {
		return err
	}
	var flags byte
	if fastRate {
		flags |= 1
	}
	buf[0] = flags
	buf[1] = usedChannels
	buf[2] = triggerSource
	buf[3] = triggerSlope
	return nil
}

// SetSamplerate2250 writes the 2250's E_SET_TRIG_OR_RATE samplerate
// field: 0x10001 - downsampler when downsampler > 1, else 0.
func SetSamplerate2250(buf []byte, downsampling bool, downsampler uint64, fastRate bool) error {
	if err := checkLen(buf, LenSamplerate2250); err != nil {
		return err
	}
	var flags byte
	if downsampling {
		flags |= 1 << 0
	}
	if fastRate {
		flags |= 1 << 1
	}
	buf[0] = flags

	var value uint16
	if downsampler > 1 {
		value = uint16(0x10001 - downsampler)
	}
	binary.BigEndian.PutUint16(buf[1:3], value)
	return nil
}

// SetBuffer5200 writes the F_SET_BUFFER pretrigger pair for the 5200
// family under its 16-bit mask: positionPre = 0xFFFF - recordLength +
// positionSamples, positionPost = 0xFFFF - positionSamples.
func SetBuffer5200(buf []byte, recordLength, positionSamples uint32, usedPre, usedPost bool) error {
	if err := checkLen(buf, LenBuffer5200); err != nil {
		return err
	}
	var flags byte
	if usedPre {
		flags |= 1 << 0
	}
	if usedPost {
		flags |= 1 << 1
	}
	buf[0] = flags

	positionPre := uint16(0xFFFF - recordLength + positionSamples)
	positionPost := uint16(0xFFFF - positionSamples)
	binary.BigEndian.PutUint16(buf[1:3], positionPre)
	binary.BigEndian.PutUint16(buf[3:5], positionPost)
	return nil
}

// SetBuffer2250 writes the 2250's own F_SET_BUFFER pretrigger pair
// under its own named 19-bit mask, separate from the 21-bit 0x1FFFFF
// mask SetTriggerAndSamplerate applies to the 2090/2150 trigger
// position.
func SetBuffer2250(buf []byte, recordLength, positionSamples uint32, usedPre, usedPost bool) error {
	if err := checkLen(buf, LenBuffer2250); err != nil {
		return err
	}
	const pretrigger2250Mask = 0x7FFFF

	var flags byte
	if usedPre {
		flags |= 1 << 0
	}
	if usedPost {
		flags |= 1 << 1
	}
	buf[0] = flags

	positionPre := (0x7FFFF - recordLength + positionSamples) & pretrigger2250Mask
	positionPost := (0x7FFFF - positionSamples) & pretrigger2250Mask
	buf[1] = byte(positionPre >> 16)
	buf[2] = byte(positionPre >> 8)
	buf[3] = byte(positionPre)
	buf[4] = byte(positionPost >> 16)
	buf[5] = byte(positionPost >> 8)
	buf[6] = byte(positionPost)
	return nil
}

// SetChannels2250 writes the 2250's B_SET_CHANNELS used-channels code.
func SetChannels2250(buf []byte, code byte) error {
	if err := checkLen(buf, LenChannels2250); err != nil {
		return err
	}
	buf[0] = code
	return nil
}

// SetGain packs both channels' 3-bit gain index into a single byte.
func SetGain(buf []byte, ch0GainIndex, ch1GainIndex byte) error {
	if err := checkLen(buf, LenGain); err != nil {
		return err
	}
	buf[0] = (ch0GainIndex & 0x7) | ((ch1GainIndex & 0x7) << 3)
	return nil
}

// SetOffset writes the control-transfer per-channel 16-bit offset and
// the trigger-level byte carried alongside it for "special" trigger
// sources.
func SetOffset(buf []byte, ch0Offset, ch1Offset uint16, triggerLevel byte) error {
	if err := checkLen(buf, LenOffset); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(buf[0:2], ch0Offset)
	binary.BigEndian.PutUint16(buf[2:4], ch1Offset)
	buf[4] = triggerLevel
	return nil
}

// RelayFlags packs one channel's coupling/attenuation relay bits.
type RelayFlags struct {
	ACCoupling bool
	Lt1V       bool
	Lt100mV    bool
}

func (f RelayFlags) pack() byte {
	var b byte
	if f.ACCoupling {
		b |= 1 << 0
	}
	if f.Lt1V {
		b |= 1 << 1
	}
	if f.Lt100mV {
		b |= 1 << 2
	}
	return b
}

// SetRelays writes the control-transfer coupling/attenuation relay
// byte per channel plus the external-trigger relay bit.
func SetRelays(buf []byte, ch0, ch1 RelayFlags, extTrigger bool) error {
	if err := checkLen(buf, LenRelays); err != nil {
		return err
	}
	buf[0] = ch0.pack()
	buf[1] = ch1.pack()
	var ext byte
	if extTrigger {
		ext = 1
	}
	buf[2] = ext
	return nil
}

// SetVoltDiv writes the 6022BE-only SET_VOLTDIV_CH{1,2} control code.
func SetVoltDiv(buf []byte, code byte) error {
	if err := checkLen(buf, LenVoltDiv); err != nil {
		return err
	}
	buf[0] = code
	return nil
}

// SetTimeDiv writes the 6022BE-only SET_TIMEDIV control code, a
// discrete table index rather than a downsampler value.
func SetTimeDiv(buf []byte, stepIndex byte) error {
	if err := checkLen(buf, LenTimeDiv); err != nil {
		return err
	}
	buf[0] = stepIndex
	return nil
}
