// Package hostsim is the demo simulation host: it owns the model
// description and the per-tick buffers, advances simple hinge-joint
// physics, and hands the buffers to the engine once per tick. It plays
// the role the full simulator plays in production; the engine itself
// never integrates anything.
package hostsim

import (
	"math"

	"github.com/ming751/servokit/internal/config"
	"github.com/ming751/servokit/internal/host"
)

// World wraps one scenario's model and data with minimal hinge
// dynamics. Each joint gets the canonical channel triple
// (name_qref, name_qdref, name_tau), one instance per joint, plus a
// position and a velocity sensor.
type World struct {
	Model *host.Model
	Data  *host.Data

	specs []config.JointSpec
	q     []float64
	qd    []float64
}

func NewWorld(sc *config.Scenario) *World {
	m := &host.Model{}
	for i, js := range sc.Joints {
		m.Joints = append(m.Joints, host.Joint{
			Name: js.Name, Type: host.JointHinge, DOFAdr: i,
		})
		m.Channels = append(m.Channels,
			host.Channel{Name: js.Name + "_qref", Instance: i, Joint: -1},
			host.Channel{Name: js.Name + "_qdref", Instance: i, Joint: -1},
			host.Channel{Name: js.Name + "_tau", Instance: i, Joint: i},
		)
		m.Sensors = append(m.Sensors,
			host.SensorDescriptor{
				Kind: host.SensorJointPos, Entity: host.EntityJoint,
				EntityID: int32(i), Adr: 2 * i, Dim: 1,
			},
			host.SensorDescriptor{
				Kind: host.SensorJointVel, Entity: host.EntityJoint,
				EntityID: int32(i), Adr: 2*i + 1, Dim: 1,
			},
		)
		m.Attrs = append(m.Attrs, js.Attrs)
	}

	w := &World{
		Model: m,
		Data:  host.NewData(m),
		specs: sc.Joints,
		q:     make([]float64, len(sc.Joints)),
		qd:    make([]float64, len(sc.Joints)),
	}
	for i, js := range sc.Joints {
		w.q[i] = js.InitAngle
	}
	return w
}

// Reference evaluates a joint's setpoint program at time t, returning
// reference position and velocity.
func Reference(r config.RefSpec, t float64) (float64, float64) {
	switch r.Type {
	case "sine":
		omega := 2 * math.Pi * r.Frequency
		return r.Value + r.Amplitude*math.Sin(omega*t),
			r.Amplitude * omega * math.Cos(omega*t)
	default:
		return r.Value, 0
	}
}

// Step runs one full host tick: write the command setpoints, refresh
// sensor and feedback buffers, clear the force accumulator, invoke the
// engine through tick, then integrate the joints with the forces the
// engine produced.
func (w *World) Step(dt float64, tick func(*host.Model, *host.Data)) {
	d := w.Data

	for i, js := range w.specs {
		qref, qdref := Reference(js.Reference, d.Time)
		d.Ctrl[3*i] = qref
		d.Ctrl[3*i+1] = qdref
		d.Ctrl[3*i+2] = js.Reference.Effort

		d.SensorData[2*i] = w.q[i]
		d.SensorData[2*i+1] = w.qd[i]

		// only the tau channel has a transmission; the pure-input
		// channels see no feedback
		d.ChannelLength[3*i+2] = w.q[i]
		d.ChannelVelocity[3*i+2] = w.qd[i]
		d.ChannelLength[3*i] = 0
		d.ChannelVelocity[3*i] = 0
		d.ChannelLength[3*i+1] = 0
		d.ChannelVelocity[3*i+1] = 0
	}
	for i := range d.ChannelForce {
		d.ChannelForce[i] = 0
	}

	if tick != nil {
		tick(w.Model, d)
	}

	// semi-implicit Euler over the engine's forces
	for i, js := range w.specs {
		tau := d.ChannelForce[3*i+2]
		inertia := js.Inertia
		if inertia <= 0 {
			inertia = config.DefaultInertia
		}
		qdd := (tau - js.Damping*w.qd[i] - js.Gravity*math.Sin(w.q[i])) / inertia
		w.qd[i] += qdd * dt
		w.q[i] += w.qd[i] * dt
	}
	d.Time += dt
}

// Joint returns the current angle and velocity of joint i.
func (w *World) Joint(i int) (float64, float64) {
	return w.q[i], w.qd[i]
}
