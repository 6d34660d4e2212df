package telemetry

import "github.com/ming751/servokit/internal/host"

// Update copies the current raw sensor values into the typed records.
// It walks the same descriptor table Classify saw, so every recognized
// descriptor lands on a record that already exists. The host must call
// Update before any control dispatch reads the atlas for that tick.
//
// Offsets and dimensions come from the descriptors; an out-of-range
// address is a host contract violation and is not checked here.
func (a *Atlas) Update(m *host.Model, sensordata []float64) {
	for _, s := range m.Sensors {
		key := MakeKey(s.Entity, s.EntityID)
		d := sensordata[s.Adr:]

		switch s.Kind {
		case host.SensorJointPos:
			a.Joints[key].Position = d[0]
		case host.SensorJointVel:
			a.Joints[key].Velocity = d[0]
		case host.SensorJointEffort:
			a.Joints[key].Effort = d[0]

		case host.SensorAccelerometer:
			copyVec3(&a.Imus[key].Accel, d)
		case host.SensorGyro:
			copyVec3(&a.Imus[key].Gyro, d)
		case host.SensorMagnetometer:
			copyVec3(&a.Imus[key].Magnet, d)

		case host.SensorFramePos:
			copyVec3(&a.Frames[key].Position, d)
		case host.SensorFrameQuat:
			q := &a.Frames[key].Quat
			q[0], q[1], q[2], q[3] = d[0], d[1], d[2], d[3]
		case host.SensorFrameLinVel:
			copyVec3(&a.Frames[key].LinVel, d)
		case host.SensorFrameAngVel:
			copyVec3(&a.Frames[key].AngVel, d)

		case host.SensorForce:
			copyVec3(&a.Wrenches[key].Force, d)
		case host.SensorTorque:
			copyVec3(&a.Wrenches[key].Torque, d)
		}
	}
}

func copyVec3(dst *[3]float64, src []float64) {
	dst[0], dst[1], dst[2] = src[0], src[1], src[2]
}
