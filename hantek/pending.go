// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

// pendingSet is a bitset-indexed queue of which bulk/control command
// buffers need transmission on the next acquisition-loop tick.
// It never grows past 64 opcodes per side, which comfortably covers
// every model's command map.
type pendingSet struct {
	bulk    uint64
	control uint64
}

func (p *pendingSet) markBulk(c bulkCode)       { p.bulk |= 1 << uint(c) }
func (p *pendingSet) markControl(c controlCode) { p.control |= 1 << uint(c) }

func (p *pendingSet) clearBulk(c bulkCode)       { p.bulk &^= 1 << uint(c) }
func (p *pendingSet) clearControl(c controlCode) { p.control &^= 1 << uint(c) }

func (p *pendingSet) isBulkPending(c bulkCode) bool       { return p.bulk&(1<<uint(c)) != 0 }
func (p *pendingSet) isControlPending(c controlCode) bool { return p.control&(1<<uint(c)) != 0 }

// bulkOpcodes returns every bulk opcode with the pending bit set, in
// ascending opcode order, the drain order the acquisition loop relies on.
func (p *pendingSet) bulkOpcodes() []bulkCode {
	var out []bulkCode
	for c := bulkCode(1); c != 0; c++ {
		if p.isBulkPending(c) {
			out = append(out, c)
		}
		if c == bulkForceTrigger {
			break
		}
	}
	return out
}

// controlOpcodes returns every control opcode with the pending bit set,
// in ascending index order.
func (p *pendingSet) controlOpcodes() []controlCode {
	var out []controlCode
	for c := controlCode(1); c != 0; c++ {
		if p.isControlPending(c) {
			out = append(out, c)
		}
		if c == controlValue {
			break
		}
	}
	return out
}
