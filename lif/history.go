// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"unsafe"

	"github.com/emer/emergent/ringidx"
)

// Record is the state of the neuron produced by one tick: the membrane
// potential after the update and the net current that drove it.
// Keeping both values in one record keeps the plotted series in lockstep.
type Record struct {
	Tick int
	Vm   float64
	Inet float64
}

// RecordSize is the in-memory size of one Record, in bytes
const RecordSize = int(unsafe.Sizeof(Record{}))

// History is the append-only sequence of Records since the last reset.
// By default it is unbounded.  With SetMaxRecs(n > 0) it only retains the
// most recent n records, overwriting the oldest in a ring buffer; ticks of
// the retained records are still contiguous and increasing.
type History struct {
	maxRecs int
	recs    []Record
	ring    ringidx.Idx
}

// MaxRecs returns the retention limit -- 0 = unbounded
func (hs *History) MaxRecs() int {
	return hs.maxRecs
}

// SetMaxRecs changes the retention limit (0 = unbounded), dropping the
// oldest records if more than n are currently held.
func (hs *History) SetMaxRecs(n int) {
	if n < 0 {
		n = 0
	}
	recs := hs.Records()
	if n > 0 && len(recs) > n {
		recs = recs[len(recs)-n:]
	}
	hs.maxRecs = n
	hs.recs = recs
	hs.ring = ringidx.Idx{Len: len(recs), Max: n}
}

// Add appends a record
func (hs *History) Add(rec Record) {
	if hs.maxRecs <= 0 {
		hs.ring.Max = hs.ring.Len + 1
	}
	hs.ring.Add(1)
	li := hs.ring.LastIdx()
	if li == len(hs.recs) {
		hs.recs = append(hs.recs, rec)
	} else {
		hs.recs[li] = rec
	}
}

// Len returns the number of retained records
func (hs *History) Len() int {
	return hs.ring.Len
}

// At returns the i-th retained record, oldest first.
// An index outside [0, Len) returns the zero Record.
func (hs *History) At(i int) Record {
	if !hs.ring.IdxIsValid(i) {
		return Record{}
	}
	return hs.recs[hs.ring.Idx(i)]
}

// Last returns the most recent record, false if empty
func (hs *History) Last() (Record, bool) {
	if hs.ring.Len == 0 {
		return Record{}, false
	}
	return hs.recs[hs.ring.LastIdx()], true
}

// Records returns a copy of the retained records, oldest first
func (hs *History) Records() []Record {
	n := hs.ring.Len
	recs := make([]Record, n)
	for i := 0; i < n; i++ {
		recs[i] = hs.recs[hs.ring.Idx(i)]
	}
	return recs
}

// Reset removes all records, keeping the retention limit
func (hs *History) Reset() {
	hs.recs = hs.recs[:0]
	hs.ring.Reset()
}

// Series returns the (tick, value) points of the given series, oldest first.
// The returned slice is freshly allocated, so plotting code can keep it.
func (hs *History) Series(st SeriesType) []Point {
	n := hs.ring.Len
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		rec := hs.recs[hs.ring.Idx(i)]
		pts[i].X = float64(rec.Tick)
		switch st {
		case SeriesVm:
			pts[i].Y = rec.Vm
		case SeriesInet:
			pts[i].Y = rec.Inet
		}
	}
	return pts
}
