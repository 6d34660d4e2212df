package control

import "strconv"

// Inputs carries the per-tick values a law sees: the three setpoints
// pulled from the command buffer and the measured feedback of the
// target channel.
type Inputs struct {
	RefPos      float64
	RefVel      float64
	FeedForward float64
	MeasPos     float64
	MeasVel     float64
}

// Law computes one output effort from the tick inputs. t is the host's
// simulation time; stateful laws derive their timestep from it.
type Law interface {
	Compute(in Inputs, t float64) float64
	Reset()
}

// Configurable laws expose their parameters for live adjustment.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64)
}

// Attrs is the raw per-instance attribute map from the model
// description.
type Attrs map[string]string

// Float parses a numeric attribute, falling back to def when the key
// is absent or malformed. Unconfigured gains therefore default to zero
// at the call sites that pass 0.
func (a Attrs) Float(key string, def float64) float64 {
	s, ok := a[key]
	if !ok || s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// Str returns a string attribute, "" when absent.
func (a Attrs) Str(key string) string {
	return a[key]
}
