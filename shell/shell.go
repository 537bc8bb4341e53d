// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package shell is an interactive terminal front end for a single neuron.
It shows the channel constants and current inputs, lets the user edit the
excitatory conductance and time step, and advances or resets the neuron on
key presses. All neuron state is mutated inside the bubbletea Update loop,
one key event at a time.
*/
package shell

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/emer/lif/lif"
	"github.com/emer/lif/prefs"
	"github.com/emer/lif/vmlog"
	"github.com/emer/lif/vmplot"
	"github.com/goki/gi/gi"
)

var (
	title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	dim   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	vmCol = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	inCol = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
	warn  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// Step is the increment applied to an input per key press
const Step = 0.1

// SparkWidth is the number of most recent ticks shown in the sparklines
const SparkWidth = 60

// Files are the output locations used by the save keys
type Files struct {

	// prefs file written on quit -- empty = do not save
	Prefs string

	// CSV history file
	CSV string

	// PNG plot file
	PNG string
}

// Model is the bubbletea model wrapping the neuron
type Model struct {
	Nrn    *lif.Neuron
	Files  Files
	Status string
	width  int
}

// New returns a shell model for the neuron
func New(nrn *lif.Neuron, fs Files) *Model {
	return &Model{Nrn: nrn, Files: fs, width: 80}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	}
	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	nrn := m.Nrn
	m.Status = ""
	switch key {
	case "q", "ctrl+c":
		m.savePrefs()
		return tea.Quit
	case "n", " ":
		if err := nrn.CheckInputs(); err != nil {
			log.Println(err)
			m.Status = err.Error()
		}
		nrn.Advance()
	case "r":
		nrn.Reset()
	case "e":
		nrn.Ge = prefs.InputRange.ClipVal(nrn.Ge + Step)
	case "E":
		nrn.Ge = prefs.InputRange.ClipVal(nrn.Ge - Step)
	case "d":
		nrn.Dt = prefs.InputRange.ClipVal(nrn.Dt + Step)
	case "D":
		nrn.Dt = prefs.InputRange.ClipVal(nrn.Dt - Step)
	case "c":
		m.saveCSV()
	case "p":
		m.savePNG()
	}
	return nil
}

func (m *Model) savePrefs() {
	if m.Files.Prefs == "" {
		return
	}
	pf := m.Nrn.Prefs()
	if err := pf.Save(m.Files.Prefs); err != nil {
		log.Println(err)
	}
}

func (m *Model) saveCSV() {
	if m.Files.CSV == "" {
		m.Status = "no CSV file configured"
		return
	}
	if err := vmlog.SaveCSV(gi.FileName(m.Files.CSV), &m.Nrn.Hist); err != nil {
		log.Println(err)
		m.Status = err.Error()
		return
	}
	m.Status = "saved " + m.Files.CSV
}

func (m *Model) savePNG() {
	if m.Files.PNG == "" {
		m.Status = "no PNG file configured"
		return
	}
	if err := vmplot.NewPlot().SavePNG(m.Files.PNG, &m.Nrn.Hist); err != nil {
		log.Println(err)
		m.Status = err.Error()
		return
	}
	m.Status = "saved " + m.Files.PNG
}

func (m *Model) View() string {
	nrn := m.Nrn
	var b strings.Builder
	b.WriteString(title.Render("Constants") + "\n")
	fmt.Fprintf(&b, "Excitatory channel E_e: %v\n", nrn.Act.Erev.E)
	fmt.Fprintf(&b, "Inhibitory channel E_i: %v\n", nrn.Act.Erev.I)
	fmt.Fprintf(&b, "Leak channel E_l: %v\n", nrn.Act.Erev.L)
	b.WriteString(dim.Render(strings.Repeat("─", 30)) + "\n")
	fmt.Fprintf(&b, "g_e: %.1f\n", nrn.Ge)
	fmt.Fprintf(&b, "Delta time: %.1f\n", nrn.Dt)
	b.WriteString(dim.Render(strings.Repeat("─", 30)) + "\n")
	b.WriteString(nrn.VmLabel() + "\n")
	fmt.Fprintf(&b, "Tick: %d\n\n", nrn.Tick)

	w := SparkWidth
	if m.width > 20 && m.width-10 < w {
		w = m.width - 10
	}
	b.WriteString(vmCol.Render(fmt.Sprintf("%-6s", lif.SeriesVm.Label())) + Sparkline(nrn.Hist.Series(lif.SeriesVm), w) + "\n")
	b.WriteString(inCol.Render(fmt.Sprintf("%-6s", lif.SeriesInet.Label())) + Sparkline(nrn.Hist.Series(lif.SeriesInet), w) + "\n\n")

	if m.Status != "" {
		b.WriteString(warn.Render(m.Status) + "\n")
	}
	b.WriteString(dim.Render("n/space: next tick  r: reset  e/E: g_e ±0.1  d/D: dt ±0.1  c: csv  p: png  q: quit"))
	return b.String()
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws the last w points as a one-line bar chart scaled to
// their own range.
func Sparkline(pts []lif.Point, w int) string {
	if len(pts) > w {
		pts = pts[len(pts)-w:]
	}
	if len(pts) == 0 {
		return ""
	}
	mn, mx := pts[0].Y, pts[0].Y
	for _, pt := range pts {
		mn = min(mn, pt.Y)
		mx = max(mx, pt.Y)
	}
	rs := make([]rune, len(pts))
	top := len(sparkRunes) - 1
	for i, pt := range pts {
		idx := 0
		if mx > mn {
			idx = int((pt.Y - mn) / (mx - mn) * float64(top))
		}
		rs[i] = sparkRunes[max(0, min(top, idx))]
	}
	return string(rs)
}

// Run runs the shell until the user quits
func Run(nrn *lif.Neuron, fs Files) error {
	_, err := tea.NewProgram(New(nrn, fs)).Run()
	return err
}
