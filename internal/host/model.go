package host

// EntityKind identifies the class of model object a sensor or channel
// is attached to. Ids are only unique within a kind.
type EntityKind int32

const (
	EntityJoint EntityKind = iota
	EntityBody
	EntitySite
	EntityChannel
)

// JointType determines how many degrees of freedom a joint owns.
type JointType int

const (
	JointHinge JointType = iota
	JointSlide
	JointBall
	JointFree
)

// DOF returns the degree-of-freedom width of the joint type.
func (t JointType) DOF() int {
	switch t {
	case JointHinge, JointSlide:
		return 1
	case JointBall:
		return 3
	case JointFree:
		return 6
	}
	return 0
}

// SensorKind is the measurement vocabulary the engine recognizes.
// Hosts may declare sensors of other kinds; the engine skips them.
type SensorKind int

const (
	SensorUnknown SensorKind = iota

	// joint state, scalar
	SensorJointPos
	SensorJointVel
	SensorJointEffort

	// inertial unit, 3-vector each
	SensorAccelerometer
	SensorGyro
	SensorMagnetometer

	// frame pose and twist
	SensorFramePos    // 3-vector
	SensorFrameQuat   // 4-vector, w x y z
	SensorFrameLinVel // 3-vector
	SensorFrameAngVel // 3-vector

	// contact wrench, 3-vector each
	SensorForce
	SensorTorque
)

// SensorDescriptor describes one sensor in the model: what it measures,
// which entity it is attached to, and where its values live in the raw
// sensor buffer.
type SensorDescriptor struct {
	Kind     SensorKind
	Entity   EntityKind
	EntityID int32
	Adr      int // starting offset in Data.SensorData
	Dim      int // number of scalars
}

// Joint is one articulated joint in the model.
type Joint struct {
	Name   string
	Type   JointType
	DOFAdr int
}

// Channel is one actuation slot. Instance is the control-law instance
// that owns the channel, or -1 for channels the engine must ignore.
// Joint is the index of the joint the channel drives, or -1.
type Channel struct {
	Name     string
	Instance int
	Joint    int
}

// Model is the host-owned, immutable description of the loaded scene.
// Attrs holds the per-instance configuration attributes (the raw
// key/value strings from the model description).
type Model struct {
	Joints   []Joint
	Channels []Channel
	Sensors  []SensorDescriptor
	Attrs    []map[string]string
}

// Attr returns the raw attribute string for an instance, or "" when the
// key is absent or the instance has no attribute map.
func (m *Model) Attr(instance int, key string) string {
	if instance < 0 || instance >= len(m.Attrs) || m.Attrs[instance] == nil {
		return ""
	}
	return m.Attrs[instance][key]
}

// SensorDataSize returns the required length of the raw sensor buffer.
func (m *Model) SensorDataSize() int {
	n := 0
	for _, s := range m.Sensors {
		if end := s.Adr + s.Dim; end > n {
			n = end
		}
	}
	return n
}
