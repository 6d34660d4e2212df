// Package control provides the control-law strategies the dispatcher
// evaluates once per tick per instance.
//
// Every law maps the same inputs (reference position, reference
// velocity, feed-forward effort, measured position, measured velocity)
// to one output effort:
//
//   - [PDFF]: kp*(qref-qmeas) + kd*(qdref-qdmeas) + tau_ff (stateless)
//   - [PIDFF]: PDFF plus integral and filtered derivative state
//   - [SpringDamper]: passive spring force toward a rest position
//
// Laws carrying cross-tick state implement Reset. No clamping or
// saturation happens here; output limiting belongs to the host's
// actuation model. Laws implementing [Configurable] support live
// tuning from the TUI.
package control
