package config

var Presets = map[string]*Scenario{
	"hold": {
		Name: "hold", Dt: 0.002, Duration: 5.0,
		Joints: []JointSpec{
			{
				Name: "hip", Inertia: 1.0, Damping: 0.2, Gravity: 4.9,
				Reference: RefSpec{Type: "constant", Value: 0.6},
				Attrs:     map[string]string{"kp": "80", "kd": "6"},
			},
		},
	},
	"track": {
		Name: "track", Dt: 0.002, Duration: 10.0,
		Joints: []JointSpec{
			{
				Name: "hip", Inertia: 1.0, Damping: 0.1, Gravity: 4.9,
				Reference: RefSpec{Type: "sine", Amplitude: 0.5, Frequency: 0.5},
				Attrs:     map[string]string{"kp": "60", "kd": "4"},
			},
			{
				Name: "knee", Inertia: 0.5, Damping: 0.1, Gravity: 2.0,
				Reference: RefSpec{Type: "sine", Amplitude: 0.3, Frequency: 1.0},
				Attrs:     map[string]string{"law": "pidff", "kp": "40", "ki": "5", "kd": "2", "tf": "0.01"},
			},
		},
	},
	"spring": {
		Name: "spring", Dt: 0.002, Duration: 8.0,
		Joints: []JointSpec{
			{
				Name: "boom", Inertia: 2.0, Damping: 0.05, InitAngle: 0.8,
				Reference: RefSpec{Type: "constant"},
				Attrs: map[string]string{
					"law": "spring", "stiffness": "30", "damping": "3", "restlength": "0",
				},
			},
		},
	},
}

func GetPreset(name string) *Scenario {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
