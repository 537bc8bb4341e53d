// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"encoding/json"
	"testing"
)

func fillHist(hs *History, n int) {
	for i := 0; i < n; i++ {
		hs.Add(Record{Tick: i, Vm: float64(i) * 10, Inet: -float64(i)})
	}
}

func TestHistoryUnbounded(t *testing.T) {
	hs := History{}
	fillHist(&hs, 50)
	if hs.Len() != 50 {
		t.Fatalf("Len: %v", hs.Len())
	}
	for i := 0; i < hs.Len(); i++ {
		if hs.At(i).Tick != i {
			t.Errorf("tick at %v: %v", i, hs.At(i).Tick)
		}
	}
	last, ok := hs.Last()
	if !ok || last.Tick != 49 {
		t.Errorf("Last: %+v %v", last, ok)
	}
}

func TestHistoryRing(t *testing.T) {
	hs := History{}
	hs.SetMaxRecs(8)
	fillHist(&hs, 21)
	if hs.Len() != 8 {
		t.Fatalf("Len: %v", hs.Len())
	}
	recs := hs.Records()
	for i, rec := range recs {
		if rec.Tick != 13+i {
			t.Errorf("ring order: idx: %v, tick: %v, cor: %v", i, rec.Tick, 13+i)
		}
	}
	hs.SetMaxRecs(3)
	recs = hs.Records()
	if len(recs) != 3 || recs[0].Tick != 18 || recs[2].Tick != 20 {
		t.Errorf("SetMaxRecs kept wrong records: %+v", recs)
	}
	hs.Add(Record{Tick: 21})
	if first := hs.At(0); first.Tick != 19 {
		t.Errorf("after shrink, first tick: %v", first.Tick)
	}
	hs.Reset()
	if hs.Len() != 0 || hs.MaxRecs() != 3 {
		t.Errorf("Reset: len %v, max %v", hs.Len(), hs.MaxRecs())
	}
	if _, ok := hs.Last(); ok {
		t.Errorf("Last on empty history should be false")
	}
}

func checkTicks(t *testing.T, lbl string, hs *History, first, n int) {
	t.Helper()
	if hs.Len() != n {
		t.Fatalf("%s: Len: %v, cor: %v", lbl, hs.Len(), n)
	}
	for i, rec := range hs.Records() {
		if rec.Tick != first+i {
			t.Errorf("%s: idx: %v, tick: %v, cor: %v", lbl, i, rec.Tick, first+i)
		}
		if at := hs.At(i); at != rec {
			t.Errorf("%s: At(%v) %+v != Records %+v", lbl, i, at, rec)
		}
	}
}

func TestHistoryResizeFullRing(t *testing.T) {
	hs := History{}
	hs.SetMaxRecs(5)
	fillHist(&hs, 7) // wrapped: ticks 2..6
	checkTicks(t, "wrapped", &hs, 2, 5)

	hs.SetMaxRecs(8)
	for i := 7; i < 10; i++ {
		hs.Add(Record{Tick: i})
	}
	checkTicks(t, "grown", &hs, 2, 8)
	hs.Add(Record{Tick: 10})
	checkTicks(t, "grown wrap", &hs, 3, 8)

	hs.SetMaxRecs(4)
	checkTicks(t, "shrunk", &hs, 7, 4)
	for i := 11; i < 20; i++ {
		hs.Add(Record{Tick: i})
		if hs.Len() > hs.MaxRecs() {
			t.Fatalf("len %v exceeds max %v", hs.Len(), hs.MaxRecs())
		}
	}
	checkTicks(t, "shrunk wrap", &hs, 16, 4)

	hs.SetMaxRecs(0)
	hs.Add(Record{Tick: 20})
	checkTicks(t, "unbounded", &hs, 16, 5)
}

func TestHistoryAtOutOfRange(t *testing.T) {
	hs := History{}
	if rec := hs.At(0); rec != (Record{}) {
		t.Errorf("At on empty history: %+v", rec)
	}
	hs.SetMaxRecs(2)
	fillHist(&hs, 3)
	for _, i := range []int{-1, 2, 10} {
		if rec := hs.At(i); rec != (Record{}) {
			t.Errorf("At(%v): %+v", i, rec)
		}
	}
}

func TestHistorySeries(t *testing.T) {
	hs := History{}
	fillHist(&hs, 4)
	vm := hs.Series(SeriesVm)
	inet := hs.Series(SeriesInet)
	if len(vm) != 4 || len(inet) != 4 {
		t.Fatalf("series lengths: %v %v", len(vm), len(inet))
	}
	for i := range vm {
		if vm[i].X != inet[i].X || vm[i].X != float64(i) {
			t.Errorf("series x out of lockstep at %v: %v %v", i, vm[i].X, inet[i].X)
		}
		if vm[i].Y != float64(i)*10 || inet[i].Y != -float64(i) {
			t.Errorf("series y at %v: %v %v", i, vm[i].Y, inet[i].Y)
		}
	}
	// mutating a returned series does not touch the history
	vm[0].Y = 1234
	if hs.At(0).Vm != 0 {
		t.Errorf("history mutated through series")
	}
}

func TestSeriesType(t *testing.T) {
	if SeriesVm.Label() != "V_m" || SeriesInet.Label() != "I_net" {
		t.Errorf("labels: %v %v", SeriesVm.Label(), SeriesInet.Label())
	}
	b, err := json.Marshal(SeriesInet)
	if err != nil {
		t.Fatal(err)
	}
	var st SeriesType
	if err := json.Unmarshal(b, &st); err != nil {
		t.Fatal(err)
	}
	if st != SeriesInet {
		t.Errorf("json round trip: %v from %s", st, b)
	}
	if err := st.FromString("SeriesVm"); err != nil || st != SeriesVm {
		t.Errorf("FromString: %v %v", st, err)
	}
	if err := st.FromString("Spike"); err == nil {
		t.Errorf("FromString should reject unknown names")
	}
}
