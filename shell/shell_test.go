// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/emer/lif/lif"
	"github.com/emer/lif/prefs"
)

const difTol = 1.0e-9

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(key(k))
	}
	return cmd
}

func TestKeysEditInputs(t *testing.T) {
	m := New(lif.NewNeuron(prefs.Prefs{}), Files{})
	press(m, "e", "e", "e", "d")
	if math.Abs(m.Nrn.Ge-0.3) > difTol || math.Abs(m.Nrn.Dt-0.1) > difTol {
		t.Errorf("inputs: ge %v dt %v", m.Nrn.Ge, m.Nrn.Dt)
	}
	for i := 0; i < 15; i++ {
		press(m, "e", "D")
	}
	if m.Nrn.Ge != 1 || m.Nrn.Dt != 0 {
		t.Errorf("inputs not clamped: ge %v dt %v", m.Nrn.Ge, m.Nrn.Dt)
	}
}

func TestKeysAdvanceReset(t *testing.T) {
	m := New(lif.NewNeuron(prefs.Prefs{Ge: 1, Dt: 0.1}), Files{})
	press(m, "n", " ", "n")
	if m.Nrn.Tick != 3 || m.Nrn.Hist.Len() != 3 {
		t.Errorf("tick %v len %v", m.Nrn.Tick, m.Nrn.Hist.Len())
	}
	if rec := m.Nrn.Hist.At(0); math.Abs(rec.Vm - -63.75) > difTol {
		t.Errorf("first Vm: %v", rec.Vm)
	}
	v := m.View()
	if !strings.Contains(v, "V_m") || !strings.Contains(v, "Tick: 3") {
		t.Errorf("view missing state:\n%s", v)
	}
	press(m, "r")
	if m.Nrn.Tick != 0 || m.Nrn.Vm != lif.RestVm || m.Nrn.Ge != 0 {
		t.Errorf("reset: %+v", m.Nrn)
	}
	if !strings.Contains(m.View(), "resting potential") {
		t.Errorf("view should show resting potential after reset")
	}
}

func TestQuitSavesPrefs(t *testing.T) {
	dir := t.TempDir()
	fs := Files{Prefs: filepath.Join(dir, "prefs.ini"), CSV: filepath.Join(dir, "h.csv"), PNG: filepath.Join(dir, "h.png")}
	m := New(lif.NewNeuron(prefs.Prefs{Ge: 0.5, Dt: 0.2}), fs)
	press(m, "n", "n", "c", "p")
	for _, fn := range []string{fs.CSV, fs.PNG} {
		if _, err := os.Stat(fn); err != nil {
			t.Errorf("not saved: %v", err)
		}
	}
	if cmd := press(m, "q"); cmd == nil {
		t.Errorf("quit should return a command")
	}
	pf, err := prefs.Load(fs.Prefs)
	if err != nil {
		t.Fatal(err)
	}
	if pf.Ge != 0.5 || pf.Dt != 0.2 {
		t.Errorf("saved prefs: %+v", pf)
	}
}

func TestSparkline(t *testing.T) {
	if s := Sparkline(nil, 10); s != "" {
		t.Errorf("empty: %q", s)
	}
	pts := make([]lif.Point, 100)
	for i := range pts {
		pts[i] = lif.Point{X: float64(i), Y: float64(i)}
	}
	s := Sparkline(pts, 20)
	if utf8.RuneCountInString(s) != 20 {
		t.Errorf("width: %v", utf8.RuneCountInString(s))
	}
	rs := []rune(s)
	if rs[0] != '▁' || rs[len(rs)-1] != '█' {
		t.Errorf("scaling: %q", s)
	}
	flat := Sparkline([]lif.Point{{Y: 3}, {Y: 3}}, 10)
	if flat != "▁▁" {
		t.Errorf("flat: %q", flat)
	}
}

func TestSavePNGNonFinite(t *testing.T) {
	fs := Files{PNG: filepath.Join(t.TempDir(), "h.png")}
	m := New(lif.NewNeuron(prefs.Prefs{Ge: 0.5, Dt: 0.2}), fs)
	press(m, "n")
	m.Nrn.Hist.Add(lif.Record{Tick: 1, Vm: math.NaN()})
	press(m, "p")
	if _, err := os.Stat(fs.PNG); !os.IsNotExist(err) {
		t.Errorf("failed render left a file: %v", err)
	}
	if !strings.Contains(m.Status, "non-finite") {
		t.Errorf("status: %q", m.Status)
	}
}
