package coefgen

// Preset is a built-in table together with the conversion it serves.
type Preset struct {
	Spec

	// InputRate and OutputRate are the endpoints of the sample rate
	// conversion the table was designed for, in Hz.
	InputRate  float64
	OutputRate float64
}

// Presets returns the built-in tables:
//
//   - UP4832: 160 taps, cutoff 16000/48000/2, for 48 kHz to 32 kHz
//   - UP3224: 160 taps, cutoff 12000/32000/2, for 32 kHz to 24 kHz
func Presets() []Preset {
	return []Preset{
		{
			Spec: Spec{
				Taps:       presetTaps,
				Cutoff:     CutoffFor(edge16k, rate48k),
				Name:       "UP4832",
				SampleRate: rate48k,
			},
			InputRate:  rate48k,
			OutputRate: rate32k,
		},
		{
			Spec: Spec{
				Taps:       presetTaps,
				Cutoff:     CutoffFor(edge12k, rate32k),
				Name:       "UP3224",
				SampleRate: rate32k,
			},
			InputRate:  rate32k,
			OutputRate: rate24k,
		},
	}
}

// PresetSpecs returns the Spec of every built-in preset.
func PresetSpecs() []Spec {
	presets := Presets()
	specs := make([]Spec, len(presets))
	for i, p := range presets {
		specs[i] = p.Spec
	}
	return specs
}

// LookupPreset finds a built-in preset by name.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
