package telemetry

import "github.com/ming751/servokit/internal/host"

// Atlas is the typed view over the host's sensor table. Classify builds
// it once per model load; Update refreshes it every tick. Records are
// keyed by the packed entity key and never reallocated, and the
// per-family key slices preserve first-encounter order so iteration is
// deterministic.
type Atlas struct {
	Joints   map[Key]*JointRecord
	Imus     map[Key]*ImuRecord
	Frames   map[Key]*FrameRecord
	Wrenches map[Key]*WrenchRecord

	JointKeys  []Key
	ImuKeys    []Key
	FrameKeys  []Key
	WrenchKeys []Key
}

// Classify makes a single pass over the model's sensor descriptors and
// buckets each recognized descriptor into its telemetry family. Two
// descriptors touching the same entity (say a position and a velocity
// sensor on one joint) share a single record. Unrecognized sensor kinds
// are skipped; classification never fails.
func Classify(m *host.Model) *Atlas {
	a := &Atlas{
		Joints:   make(map[Key]*JointRecord),
		Imus:     make(map[Key]*ImuRecord),
		Frames:   make(map[Key]*FrameRecord),
		Wrenches: make(map[Key]*WrenchRecord),
	}

	for _, s := range m.Sensors {
		key := MakeKey(s.Entity, s.EntityID)
		switch s.Kind {
		case host.SensorJointPos, host.SensorJointVel, host.SensorJointEffort:
			if _, ok := a.Joints[key]; !ok {
				a.Joints[key] = &JointRecord{}
				a.JointKeys = append(a.JointKeys, key)
			}
		case host.SensorAccelerometer, host.SensorGyro, host.SensorMagnetometer:
			if _, ok := a.Imus[key]; !ok {
				a.Imus[key] = &ImuRecord{}
				a.ImuKeys = append(a.ImuKeys, key)
			}
		case host.SensorFramePos, host.SensorFrameQuat,
			host.SensorFrameLinVel, host.SensorFrameAngVel:
			if _, ok := a.Frames[key]; !ok {
				a.Frames[key] = &FrameRecord{}
				a.FrameKeys = append(a.FrameKeys, key)
			}
		case host.SensorForce, host.SensorTorque:
			if _, ok := a.Wrenches[key]; !ok {
				a.Wrenches[key] = &WrenchRecord{}
				a.WrenchKeys = append(a.WrenchKeys, key)
			}
		}
	}

	return a
}
