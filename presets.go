package chaosgame

import "strings"

// Preset is a named built-in fractal description.
type Preset struct {
	Name string

	// New returns a fresh description of the fractal. Descriptions are
	// mutable through their window setters, so each caller gets its own.
	New func() *Description
}

var presets []Preset

// RegisterPreset adds a preset to the registry.
func RegisterPreset(p Preset) {
	presets = append(presets, p)
}

// Presets returns all registered presets in registration order.
func Presets() []Preset {
	return presets
}

// LookupPreset returns the preset with the given name, matched
// case-insensitively.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// mustDescription builds a preset description; presets are known valid.
func mustDescription(d *Description, err error) *Description {
	if err != nil {
		panic(err)
	}
	return d
}
