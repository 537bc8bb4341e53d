// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package prefs holds the user-edited neuron inputs that survive restarts.
Only the excitatory conductance and the time step are persisted: the
membrane potential, tick counter, history and inhibitory conductance
always start fresh.
*/
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/emer/etable/minmax"
	"gopkg.in/ini.v1"
)

// Section is the ini section holding the preferences
const Section = "neuron"

// InputRange is the range the host controls allow for each input
var InputRange = minmax.F64{Min: 0, Max: 1}

// Prefs are the persisted neuron inputs
type Prefs struct {

	// excitatory conductance input
	Ge float64 `ini:"excitation"`

	// integration time step
	Dt float64 `ini:"delta_time"`
}

// Clamp confines each input to InputRange
func (pf *Prefs) Clamp() {
	pf.Ge = InputRange.ClipVal(pf.Ge)
	pf.Dt = InputRange.ClipVal(pf.Dt)
}

// DefaultPath returns the standard location of the prefs file
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lifsim", "prefs.ini"), nil
}

// Load reads prefs from the given ini file. A missing file is not an
// error and returns zero prefs. Loaded values are clamped.
func Load(path string) (Prefs, error) {
	pf := Prefs{}
	if err := pf.Read(path); err != nil {
		return Prefs{}, err
	}
	return pf, nil
}

// Read overlays the prefs stored in the given ini file onto pf, then
// clamps. Keys absent from the file, or a missing file, leave the
// current values in place. On error pf is unchanged.
func (pf *Prefs) Read(path string) error {
	cfg, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("prefs: loading %s: %w", path, err)
	}
	rd := *pf
	if err := cfg.Section(Section).StrictMapTo(&rd); err != nil {
		return fmt.Errorf("prefs: mapping section [%s]: %w", Section, err)
	}
	rd.Clamp()
	*pf = rd
	return nil
}

// Save writes the prefs to the given ini file, creating its directory
func (pf *Prefs) Save(path string) error {
	cfg := ini.Empty()
	if err := cfg.Section(Section).ReflectFrom(pf); err != nil {
		return fmt.Errorf("prefs: reflecting section [%s]: %w", Section, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("prefs: saving %s: %w", path, err)
	}
	return nil
}
