package control

// PIDFF extends the canonical law with an integral term and a
// first-order filtered derivative of the position error. The filter
// time constant Tf damps derivative kick; Tf = 0 uses the raw velocity
// error. State carries across ticks until Reset.
type PIDFF struct {
	Kp float64
	Ki float64
	Kd float64
	Tf float64

	integral float64
	filtered float64
	prevErr  float64
	prevT    float64
	first    bool
}

func NewPIDFF(kp, ki, kd, tf float64) *PIDFF {
	return &PIDFF{Kp: kp, Ki: ki, Kd: kd, Tf: tf, first: true}
}

func (p *PIDFF) Compute(in Inputs, t float64) float64 {
	err := in.RefPos - in.MeasPos
	errDot := in.RefVel - in.MeasVel

	if p.first {
		p.prevErr = err
		p.prevT = t
		p.filtered = errDot
		p.first = false
		return p.Kp*err + p.Kd*errDot + in.FeedForward
	}

	dt := t - p.prevT
	if dt > 0 {
		p.integral += err * dt

		raw := (err - p.prevErr) / dt
		if p.Tf > 0 {
			alpha := dt / (p.Tf + dt)
			p.filtered += alpha * (raw - p.filtered)
		} else {
			p.filtered = errDot
		}

		p.prevErr = err
		p.prevT = t
	}

	return p.Kp*err + p.Ki*p.integral + p.Kd*p.filtered + in.FeedForward
}

func (p *PIDFF) Reset() {
	p.integral = 0
	p.filtered = 0
	p.prevErr = 0
	p.first = true
}

func (p *PIDFF) GetParams() map[string]float64 {
	return map[string]float64{"kp": p.Kp, "ki": p.Ki, "kd": p.Kd, "tf": p.Tf}
}

func (p *PIDFF) SetParam(name string, value float64) {
	switch name {
	case "kp":
		p.Kp = value
	case "ki":
		p.Ki = value
	case "kd":
		p.Kd = value
	case "tf":
		p.Tf = value
	}
}
