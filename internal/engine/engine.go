// Package engine owns the per-tick control dispatch: it classifies the
// model's telemetry once, resolves per-instance actuation bindings, and
// on every host tick evaluates each instance's control law into the
// host's force buffer.
//
// The engine is single-threaded and host-driven. Nothing here blocks
// or spawns goroutines; the host guarantees that Step runs exactly once
// per simulation step on the thread owning the buffers.
package engine

import (
	"github.com/ming751/servokit/internal/control"
	"github.com/ming751/servokit/internal/host"
	"github.com/ming751/servokit/internal/telemetry"
)

// Phase tracks an instance's lifecycle. There is no way back from
// Active to Bound: bindings are immutable for the instance's lifetime.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseBound
	PhaseActive
	PhaseDestroyed
)

// Instance pairs one resolved binding with its control law.
type Instance struct {
	Binding Binding
	Law     control.Law
	Phase   Phase
}

// Engine dispatches control laws over host buffers. Instances are
// addressed by the integer handle returned from CreateInstance; slots
// are never reordered, so handles stay valid until Destroy.
type Engine struct {
	registry  *control.Registry
	atlas     *telemetry.Atlas
	instances []*Instance
}

func New(registry *control.Registry) *Engine {
	if registry == nil {
		registry = control.NewRegistry()
	}
	return &Engine{registry: registry}
}

// Classify builds the typed telemetry atlas for the model. Call once
// per model load, before the first Step. It never fails; sensors of
// unrecognized kinds are simply absent from the atlas.
func (e *Engine) Classify(m *host.Model) *telemetry.Atlas {
	e.atlas = telemetry.Classify(m)
	return e.atlas
}

// Atlas returns the classified telemetry view, nil before Classify.
func (e *Engine) Atlas() *telemetry.Atlas {
	return e.atlas
}

// CreateInstance resolves the binding and law for one configured
// instance. On success the instance is Bound and its handle returned.
// A resolution or law-configuration failure leaves the engine without
// an entry for the instance; the error is informational and non-fatal
// to the host.
func (e *Engine) CreateInstance(m *host.Model, instance int) (int, error) {
	var attrs control.Attrs
	if instance >= 0 && instance < len(m.Attrs) {
		attrs = control.Attrs(m.Attrs[instance])
	}

	binding, err := Resolve(m, instance, attrs.Str("target"))
	if err != nil {
		return -1, err
	}

	law, err := e.registry.Make(attrs)
	if err != nil {
		return -1, err
	}

	e.instances = append(e.instances, &Instance{
		Binding: binding,
		Law:     law,
		Phase:   PhaseBound,
	})
	return len(e.instances) - 1, nil
}

// Instance returns the entry for a handle, nil for destroyed or
// out-of-range handles.
func (e *Engine) Instance(handle int) *Instance {
	if handle < 0 || handle >= len(e.instances) {
		return nil
	}
	return e.instances[handle]
}

// Tick evaluates one instance into the host buffers: setpoints from
// the command buffer at the binding's input indices, feedback from the
// target channel's length/velocity, the law's output added into the
// force slot of the target. The two pure-input slots (qref, qdref) are
// zeroed so they never actuate on their own.
func (e *Engine) Tick(m *host.Model, d *host.Data, handle int) {
	inst := e.Instance(handle)
	if inst == nil {
		return
	}
	inst.Phase = PhaseActive
	b := inst.Binding

	out := inst.Law.Compute(control.Inputs{
		RefPos:      d.Ctrl[b.QRef],
		RefVel:      d.Ctrl[b.QdRef],
		FeedForward: d.Ctrl[b.Tau],
		MeasPos:     d.ChannelLength[b.Target],
		MeasVel:     d.ChannelVelocity[b.Target],
	}, d.Time)

	d.ChannelForce[b.Target] += out
	d.ChannelForce[b.QRef] = 0
	d.ChannelForce[b.QdRef] = 0
}

// Step is the per-tick entry point the host invokes: the telemetry
// store pass runs to completion first, then every live instance is
// dispatched in handle order.
func (e *Engine) Step(m *host.Model, d *host.Data) {
	if e.atlas != nil {
		e.atlas.Update(m, d.SensorData)
	}
	for h := range e.instances {
		e.Tick(m, d, h)
	}
}

// Destroy releases the instance's state. Destroying an already
// destroyed or unknown handle is a no-op; surviving handles keep their
// indices.
func (e *Engine) Destroy(handle int) {
	if handle < 0 || handle >= len(e.instances) {
		return
	}
	if inst := e.instances[handle]; inst != nil {
		inst.Phase = PhaseDestroyed
	}
	e.instances[handle] = nil
}
