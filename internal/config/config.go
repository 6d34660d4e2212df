package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.002
	DefaultDuration = 5.0
	DefaultInertia  = 1.0
	DefaultRate     = 10.0
)

// Scenario describes the demo world the CLI builds for the engine: a
// set of hinge joints, the reference program each one tracks, and the
// raw attribute map for each control-law instance.
type Scenario struct {
	Name     string       `yaml:"name"`
	Dt       float64      `yaml:"dt"`
	Duration float64      `yaml:"duration"`
	Joints   []JointSpec  `yaml:"joints"`
	Inspect  *InspectSpec `yaml:"inspect,omitempty"`
}

type JointSpec struct {
	Name      string            `yaml:"name"`
	Inertia   float64           `yaml:"inertia"`
	Damping   float64           `yaml:"damping"`
	Gravity   float64           `yaml:"gravity"`
	InitAngle float64           `yaml:"init_angle"`
	Reference RefSpec           `yaml:"reference"`
	Attrs     map[string]string `yaml:"attrs"`
}

// RefSpec is the setpoint program for one joint: a constant reference
// or a sine sweep. Velocity references are derived analytically.
type RefSpec struct {
	Type      string  `yaml:"type"` // "constant" or "sine"
	Value     float64 `yaml:"value"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Effort    float64 `yaml:"effort"` // constant feed-forward term
}

// InspectSpec enables the telemetry inspector during a run.
type InspectSpec struct {
	Rate float64 `yaml:"rate"`
	File string  `yaml:"file,omitempty"`
}

func Default() *Scenario {
	return &Scenario{
		Name:     "hip",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Joints: []JointSpec{
			{
				Name:      "hip",
				Inertia:   DefaultInertia,
				Damping:   0.1,
				Gravity:   4.9,
				Reference: RefSpec{Type: "sine", Amplitude: 0.5, Frequency: 0.5},
				Attrs:     map[string]string{"kp": "60", "kd": "4"},
			},
		},
	}
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := Default()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func Save(path string, sc *Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
