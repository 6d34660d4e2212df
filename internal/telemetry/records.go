package telemetry

// Typed records, one shape per telemetry family. Records are allocated
// once at classification time and mutated in place every tick, so a
// pointer handed out by the atlas stays valid for the model's lifetime.

// JointRecord holds the scalar state of one joint.
type JointRecord struct {
	Position float64
	Velocity float64
	Effort   float64
}

// ImuRecord holds the readings of one inertial unit.
type ImuRecord struct {
	Accel  [3]float64
	Gyro   [3]float64
	Magnet [3]float64
}

// FrameRecord holds the pose and twist of one tracked frame.
// Quat is stored w, x, y, z.
type FrameRecord struct {
	Position [3]float64
	Quat     [4]float64
	LinVel   [3]float64
	AngVel   [3]float64
}

// WrenchRecord holds one force/torque sensor pair.
type WrenchRecord struct {
	Force  [3]float64
	Torque [3]float64
}
