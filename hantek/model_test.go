// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hantek

import "testing"

func TestLookupModel_Unknown(t *testing.T) {
	if _, ok := LookupModel(ModelUnknown); ok {
		t.Error("LookupModel(ModelUnknown) should fail")
	}
	if _, ok := LookupModel(ModelID(0xffff)); ok {
		t.Error("LookupModel of an unmapped id should fail")
	}
}

func TestLookupModel_AllSupported(t *testing.T) {
	ids := []ModelID{ModelDSO2090, ModelDSO2150, ModelDSO2250, ModelDSO5200, ModelDSO5200A, ModelDSO6022BE}
	for _, id := range ids {
		p, ok := LookupModel(id)
		if !ok {
			t.Fatalf("LookupModel(%v) missing", id)
		}
		if p.ID != id {
			t.Errorf("profile.ID = %v, want %v", p.ID, id)
		}
		if len(p.Single.RecordLengths) == 0 {
			t.Errorf("%v: no record lengths", id)
		}
		if p.GainSteps[0] <= p.GainSteps[len(p.GainSteps)-1] {
			t.Errorf("%v: GainSteps should be strictly descending", id)
		}
	}
}

func TestModelID_String(t *testing.T) {
	if ModelDSO2090.String() != "DSO-2090" {
		t.Errorf("String() = %q, want DSO-2090", ModelDSO2090.String())
	}
	if ModelUnknown.String() != "unknown" {
		t.Errorf("String() = %q, want unknown", ModelUnknown.String())
	}
}

func TestHasBulkHasControl(t *testing.T) {
	p, _ := LookupModel(ModelDSO2090)
	if _, ok := p.HasBulk(OpSetRecordLength); !ok {
		t.Error("DSO2090 should support OpSetRecordLength")
	}
	if _, ok := p.HasBulk(OpSetPretrigger); !ok {
		t.Error("DSO2090 should support OpSetPretrigger")
	}

	p6022, _ := LookupModel(ModelDSO6022BE)
	if _, ok := p6022.HasBulk(OpSetSamplerate); ok {
		t.Error("DSO6022BE has no bulk samplerate opcode")
	}
	if _, ok := p6022.HasControl(COpSetTimeDiv); !ok {
		t.Error("DSO6022BE should support COpSetTimeDiv")
	}
}
