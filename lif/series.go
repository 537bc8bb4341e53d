// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import "github.com/goki/ki/kit"

// SeriesType names the plotted series exposed by History
type SeriesType int32

//go:generate stringer -type=SeriesType

var KiT_SeriesType = kit.Enums.AddEnum(SeriesTypeN, kit.NotBitFlag, nil)

func (ev SeriesType) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *SeriesType) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The plotted series
const (
	// SeriesVm is the membrane potential after each tick
	SeriesVm SeriesType = iota

	// SeriesInet is the net current that produced each tick's update
	SeriesInet

	SeriesTypeN
)

var seriesLabels = [SeriesTypeN]string{"V_m", "I_net"}

// Label returns the display name of the series, as shown in plot legends
func (ev SeriesType) Label() string {
	if ev < 0 || ev >= SeriesTypeN {
		return ev.String()
	}
	return seriesLabels[ev]
}

// Point is one (x, y) sample of a plotted series
type Point struct {
	X float64
	Y float64
}
