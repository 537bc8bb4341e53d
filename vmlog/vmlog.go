// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package vmlog converts neuron histories into etable.Table logs, for saving
as CSV and for viewing in any etable-aware plot. It also computes the
I-V curve of the neuron over a range of membrane potentials.
*/
package vmlog

import (
	"io"
	"strconv"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/emer/lif/lif"
	"github.com/goki/gi/gi"
)

// LogPrec is precision for saving float values in logs
const LogPrec = 4

// Column names
const (
	TickCol = "Tick"
	VCol    = "V"
)

// ConfigTable sets the schema of a history log table: the tick and one
// column per plotted series, named by the series labels.
func ConfigTable(dt *etable.Table) {
	dt.SetMetaData("name", "NeuronHistory")
	dt.SetMetaData("desc", "membrane potential and net current at each tick")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := etable.Schema{
		{TickCol, etensor.INT64, nil, nil},
	}
	for st := lif.SeriesVm; st < lif.SeriesTypeN; st++ {
		sch = append(sch, etable.Column{Name: st.Label(), Type: etensor.FLOAT64})
	}
	dt.SetFromSchema(sch, 0)
}

// FromHistory fills the table with one row per retained history record.
// The table must have been configured with ConfigTable.
func FromHistory(dt *etable.Table, hs *lif.History) {
	recs := hs.Records()
	dt.SetNumRows(len(recs))
	for row, rec := range recs {
		dt.SetCellFloat(TickCol, row, float64(rec.Tick))
		dt.SetCellFloat(lif.SeriesVm.Label(), row, rec.Vm)
		dt.SetCellFloat(lif.SeriesInet.Label(), row, rec.Inet)
	}
}

// NewTable returns a configured table holding the given history
func NewTable(hs *lif.History) *etable.Table {
	dt := &etable.Table{}
	ConfigTable(dt)
	FromHistory(dt, hs)
	return dt
}

// WriteCSV writes the history as a table with headers to w
func WriteCSV(w io.Writer, hs *lif.History, delim etable.Delims) error {
	return NewTable(hs).WriteCSV(w, delim, etable.Headers)
}

// SaveCSV saves the history as a comma-separated table file
func SaveCSV(fn gi.FileName, hs *lif.History) error {
	return NewTable(hs).SaveCSV(fn, etable.Comma, etable.Headers)
}

//////////////////////////////////////////////////////////////////
//  I-V curve

// ConfigIVTable sets the schema of an I-V curve table
func ConfigIVTable(dt *etable.Table) {
	dt.SetMetaData("name", "IVTable")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := etable.Schema{
		{VCol, etensor.FLOAT64, nil, nil},
		{lif.SeriesInet.Label(), etensor.FLOAT64, nil, nil},
	}
	dt.SetFromSchema(sch, 0)
}

// IVSweep fills the table with the net current at membrane potentials
// from vstart up to (not including) vend in vstep increments, for fixed
// conductance inputs ge and gi.
func IVSweep(dt *etable.Table, ac *lif.ActParams, ge, gi, vstart, vend, vstep float64) {
	nv := 0
	if vstep > 0 && vend > vstart {
		nv = int((vend - vstart) / vstep)
	}
	dt.SetNumRows(nv)
	for vi := 0; vi < nv; vi++ {
		v := vstart + float64(vi)*vstep
		dt.SetCellFloat(VCol, vi, v)
		dt.SetCellFloat(lif.SeriesInet.Label(), vi, ac.InetFmG(v, ge, gi))
	}
}
