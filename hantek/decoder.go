// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

const (
	dso6022HeadDrop = 0x410
	dso6022TailDrop = 0x3F0

	offset6022Recenter = 0x83
)

// sampleDecoder converts raw USB sample buffers into calibrated
// per-channel voltages. It is owned by the acquisition loop and
// carries the previous-sample-count hysteresis across ticks.
type sampleDecoder struct {
	profile             *ModelProfile
	previousSampleCount int
}

func newSampleDecoder(p *ModelProfile) *sampleDecoder {
	return &sampleDecoder{profile: p}
}

// transferFunction8 applies the 8-bit per-sample transfer function,
// including the 6022BE re-centering quirk.
func (d *sampleDecoder) transferFunction8(raw byte, ch int, gainIndex int, offsetReal float64) float64 {
	p := d.profile
	limit := p.VoltageLimit[ch][gainIndex]
	gain := p.GainSteps[gainIndex]

	if p.ID == ModelDSO6022BE {
		rawCentered := float64(int(raw) - offset6022Recenter)
		return (rawCentered / limit) * gain
	}
	return (float64(raw)/limit - offsetReal) * gain
}

// reconstruct10Bit combines an 8-bit primary sample with its 2 extra
// bits from the second half of the buffer (5200 family only). The
// shift formula is fragile and unverified against a hardware-captured
// golden file; treat it as authoritative until one exists.
func reconstruct10Bit(low, extra byte, fastRate bool, channel int, bufferPosition int) uint16 {
	var shift uint
	if fastRate {
		pos := bufferPosition % 2
		shift = uint(8 - (2-1-pos)*2)
	} else {
		shift = uint(8 - 2*channel)
	}
	v := uint16(low) | ((uint16(extra) << shift) & 0xFF00)
	return v
}

// decode performs buffer layout selection (normal vs fast-rate),
// 8/10-bit extraction, the transfer function, and the
// previous-sample-count hysteresis. triggerPoint is the already-decoded
// (decodeTriggerPoint) sample index. roll is true iff the current
// record length is RollModeRecordLength.
func (d *sampleDecoder) decode(data []byte, fastRate, roll bool, settings *Settings, triggerPoint uint32) (out [HantekChannels][]float64, samplerateHz float64) {
	p := d.profile

	total := len(data)
	if p.SampleBits == 10 {
		total = len(data) / 2
	}

	if d.previousSampleCount != 0 && total < d.previousSampleCount {
		current := total
		total = d.previousSampleCount
		d.previousSampleCount = current
	} else {
		d.previousSampleCount = total
	}

	var sampleCount int
	if fastRate {
		sampleCount = total
	} else {
		sampleCount = total / 2
	}

	if p.ID == ModelDSO6022BE {
		sampleCount -= dso6022HeadDrop + dso6022TailDrop
		if sampleCount < 0 {
			sampleCount = 0
		}
	}

	// only one channel is active in fast-rate mode: the first used
	// channel receives the whole buffer.
	fastCh := -1
	if fastRate {
		for ch := 0; ch < HantekChannels; ch++ {
			if settings.Channel[ch].used {
				fastCh = ch
				break
			}
		}
	}

	for ch := 0; ch < HantekChannels; ch++ {
		if !settings.Channel[ch].used {
			out[ch] = nil
			continue
		}
		if fastRate && ch != fastCh {
			out[ch] = nil
			continue
		}

		values := make([]float64, sampleCount)

		var start, stride int
		if fastRate {
			start = int(triggerPoint) * 2
			stride = 1
		} else {
			var offset int
			if p.ID == ModelDSO6022BE {
				offset = ch + 0x820
			} else {
				offset = HantekChannels - 1 - ch
			}
			start = int(triggerPoint)*2 + offset
			stride = 2
		}

		wrap := sampleCount
		if !fastRate {
			wrap = total
		}
		if wrap == 0 {
			out[ch] = values
			continue
		}

		gainIndex := settings.Channel[ch].gainIndex
		offsetReal := settings.Channel[ch].offsetReal

		for i := 0; i < sampleCount; i++ {
			bufferPosition := (start + i*stride) % wrap
			if bufferPosition < 0 {
				bufferPosition += wrap
			}

			var raw byte
			if bufferPosition < len(data) {
				raw = data[bufferPosition]
			}

			extraIndex := total + bufferPosition
			if fastRate {
				extraIndex -= bufferPosition % 2
			}
			if p.SampleBits == 10 && extraIndex >= 0 && extraIndex < len(data) {
				extra := data[extraIndex]
				v10 := reconstruct10Bit(raw, extra, fastRate, ch, bufferPosition)
				values[i] = (float64(v10)/p.VoltageLimit[ch][gainIndex] - offsetReal) * p.GainSteps[gainIndex]
				continue
			}

			values[i] = d.transferFunction8(raw, ch, gainIndex, offsetReal)
		}

		out[ch] = values
	}

	samplerateHz = settings.Samplerate.currentHz
	return out, samplerateHz
}
