// Package inspect dumps the engine's telemetry view at a bounded rate.
// It is a host-side observer: the engine never calls it, the host wires
// it into the tick loop after dispatch when a scenario asks for it.
package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/ming751/servokit/internal/host"
	"github.com/ming751/servokit/internal/telemetry"
)

// Inspector writes one block of joint and sensor lines per emission.
// Rate limits emissions by simulation time; rate <= 0 emits every call.
type Inspector struct {
	w    io.Writer
	rate float64

	headerDone bool
	lastEmit   float64
	first      bool
}

func New(w io.Writer, rateHz float64) *Inspector {
	return &Inspector{w: w, rate: rateHz, first: true}
}

// Emit writes the current telemetry snapshot unless the rate limiter
// suppresses it.
func (ins *Inspector) Emit(m *host.Model, d *host.Data, atlas *telemetry.Atlas) {
	if ins.rate > 0 && !ins.first && d.Time < ins.lastEmit+1.0/ins.rate {
		return
	}
	ins.first = false
	ins.lastEmit = d.Time

	if !ins.headerDone {
		fmt.Fprintln(ins.w, "# inspector: joints and sensors")
		fmt.Fprintln(ins.w, "# joints: name qpos qvel")
		fmt.Fprintln(ins.w, "# sensors: kind dim data...")
		ins.headerDone = true
	}

	fmt.Fprintf(ins.w, "t=%.4f\n", d.Time)
	ins.emitJoints(m, atlas)
	ins.emitSensors(m, d)
}

func (ins *Inspector) emitJoints(m *host.Model, atlas *telemetry.Atlas) {
	if atlas == nil {
		return
	}
	for _, key := range atlas.JointKeys {
		rec := atlas.Joints[key]
		name := "(noname)"
		if id := int(key.ID()); id >= 0 && id < len(m.Joints) {
			name = m.Joints[id].Name
		}
		fmt.Fprintf(ins.w, "J %s qpos=%.6f qvel=%.6f\n",
			name, rec.Position, rec.Velocity)
	}
}

func (ins *Inspector) emitSensors(m *host.Model, d *host.Data) {
	for _, s := range m.Sensors {
		vals := make([]string, 0, s.Dim)
		for k := 0; k < s.Dim; k++ {
			vals = append(vals, fmt.Sprintf("%.6f", d.SensorData[s.Adr+k]))
		}
		fmt.Fprintf(ins.w, "S kind=%d dim=%d data=%s\n",
			s.Kind, s.Dim, strings.Join(vals, ","))
	}
}
