package control

// PDFF is the canonical proportional-derivative-plus-feed-forward law.
// It is stateless: two ticks with identical inputs produce identical
// output.
type PDFF struct {
	Kp float64
	Kd float64
}

func NewPDFF(kp, kd float64) *PDFF {
	return &PDFF{Kp: kp, Kd: kd}
}

func (p *PDFF) Compute(in Inputs, t float64) float64 {
	err := in.RefPos - in.MeasPos
	errDot := in.RefVel - in.MeasVel
	return p.Kp*err + p.Kd*errDot + in.FeedForward
}

func (p *PDFF) Reset() {}

func (p *PDFF) GetParams() map[string]float64 {
	return map[string]float64{"kp": p.Kp, "kd": p.Kd}
}

func (p *PDFF) SetParam(name string, value float64) {
	switch name {
	case "kp":
		p.Kp = value
	case "kd":
		p.Kd = value
	}
}
