package control

// SpringDamper emulates a passive spring-damper on the target channel:
// a restoring force toward Rest plus viscous damping. The reference
// inputs are ignored; feed-forward still passes through so a bias
// effort can ride on top.
type SpringDamper struct {
	Stiffness float64
	Damping   float64
	Rest      float64
}

func NewSpringDamper(stiffness, damping, rest float64) *SpringDamper {
	return &SpringDamper{Stiffness: stiffness, Damping: damping, Rest: rest}
}

func (s *SpringDamper) Compute(in Inputs, t float64) float64 {
	return -s.Stiffness*(in.MeasPos-s.Rest) - s.Damping*in.MeasVel + in.FeedForward
}

func (s *SpringDamper) Reset() {}

func (s *SpringDamper) GetParams() map[string]float64 {
	return map[string]float64{
		"stiffness":  s.Stiffness,
		"damping":    s.Damping,
		"restlength": s.Rest,
	}
}

func (s *SpringDamper) SetParam(name string, value float64) {
	switch name {
	case "stiffness":
		s.Stiffness = value
	case "damping":
		s.Damping = value
	case "restlength":
		s.Rest = value
	}
}
