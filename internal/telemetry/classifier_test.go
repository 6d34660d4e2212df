package telemetry

import (
	"testing"

	"github.com/ming751/servokit/internal/host"
)

func testModel() *host.Model {
	return &host.Model{
		Sensors: []host.SensorDescriptor{
			{Kind: host.SensorJointPos, Entity: host.EntityJoint, EntityID: 0, Adr: 0, Dim: 1},
			{Kind: host.SensorJointVel, Entity: host.EntityJoint, EntityID: 0, Adr: 1, Dim: 1},
			{Kind: host.SensorGyro, Entity: host.EntitySite, EntityID: 2, Adr: 2, Dim: 3},
			{Kind: host.SensorAccelerometer, Entity: host.EntitySite, EntityID: 2, Adr: 5, Dim: 3},
			{Kind: host.SensorFramePos, Entity: host.EntityBody, EntityID: 1, Adr: 8, Dim: 3},
			{Kind: host.SensorFrameQuat, Entity: host.EntityBody, EntityID: 1, Adr: 11, Dim: 4},
			{Kind: host.SensorForce, Entity: host.EntitySite, EntityID: 3, Adr: 15, Dim: 3},
			{Kind: host.SensorUnknown, Entity: host.EntityBody, EntityID: 9, Adr: 18, Dim: 1},
		},
	}
}

func TestClassifySharesRecordPerEntity(t *testing.T) {
	a := Classify(testModel())

	if len(a.Joints) != 1 {
		t.Fatalf("expected 1 joint record, got %d", len(a.Joints))
	}
	if len(a.JointKeys) != 1 {
		t.Fatalf("expected 1 joint key, got %d", len(a.JointKeys))
	}

	key := MakeKey(host.EntityJoint, 0)
	if _, ok := a.Joints[key]; !ok {
		t.Error("joint record not keyed by (EntityJoint, 0)")
	}
}

func TestClassifyFamilies(t *testing.T) {
	a := Classify(testModel())

	if len(a.Imus) != 1 {
		t.Errorf("expected 1 imu record, got %d", len(a.Imus))
	}
	if len(a.Frames) != 1 {
		t.Errorf("expected 1 frame record, got %d", len(a.Frames))
	}
	if len(a.Wrenches) != 1 {
		t.Errorf("expected 1 wrench record, got %d", len(a.Wrenches))
	}
}

func TestClassifySkipsUnknown(t *testing.T) {
	a := Classify(testModel())

	total := len(a.Joints) + len(a.Imus) + len(a.Frames) + len(a.Wrenches)
	if total != 4 {
		t.Errorf("unknown sensor kind should be skipped, got %d records", total)
	}
}

func TestClassifyKeyOrderIsInsertionOrder(t *testing.T) {
	m := &host.Model{
		Sensors: []host.SensorDescriptor{
			{Kind: host.SensorJointPos, Entity: host.EntityJoint, EntityID: 5, Adr: 0, Dim: 1},
			{Kind: host.SensorJointPos, Entity: host.EntityJoint, EntityID: 2, Adr: 1, Dim: 1},
			{Kind: host.SensorJointVel, Entity: host.EntityJoint, EntityID: 5, Adr: 2, Dim: 1},
			{Kind: host.SensorJointPos, Entity: host.EntityJoint, EntityID: 9, Adr: 3, Dim: 1},
		},
	}
	a := Classify(m)

	want := []Key{
		MakeKey(host.EntityJoint, 5),
		MakeKey(host.EntityJoint, 2),
		MakeKey(host.EntityJoint, 9),
	}
	if len(a.JointKeys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(a.JointKeys))
	}
	for i, k := range want {
		if a.JointKeys[i] != k {
			t.Errorf("key[%d] = %v, want %v", i, a.JointKeys[i], k)
		}
	}
}

func TestUpdatePopulatesRecords(t *testing.T) {
	m := testModel()
	a := Classify(m)

	data := []float64{
		0.5, -0.25, // joint pos, vel
		0.1, 0.2, 0.3, // gyro
		1.1, 1.2, 1.3, // accel
		2.0, 2.1, 2.2, // frame pos
		1.0, 0.0, 0.0, 0.0, // frame quat
		9.0, 9.1, 9.2, // force
		77.0, // unknown, must be ignored
	}
	a.Update(m, data)

	j := a.Joints[MakeKey(host.EntityJoint, 0)]
	if j.Position != 0.5 || j.Velocity != -0.25 {
		t.Errorf("joint record = %+v", j)
	}

	imu := a.Imus[MakeKey(host.EntitySite, 2)]
	if imu.Gyro != [3]float64{0.1, 0.2, 0.3} {
		t.Errorf("gyro = %v", imu.Gyro)
	}
	if imu.Accel != [3]float64{1.1, 1.2, 1.3} {
		t.Errorf("accel = %v", imu.Accel)
	}

	f := a.Frames[MakeKey(host.EntityBody, 1)]
	if f.Position != [3]float64{2.0, 2.1, 2.2} {
		t.Errorf("frame pos = %v", f.Position)
	}
	if f.Quat != [4]float64{1.0, 0.0, 0.0, 0.0} {
		t.Errorf("frame quat = %v", f.Quat)
	}

	w := a.Wrenches[MakeKey(host.EntitySite, 3)]
	if w.Force != [3]float64{9.0, 9.1, 9.2} {
		t.Errorf("force = %v", w.Force)
	}
}

func TestUpdateRecordAddressesStable(t *testing.T) {
	m := testModel()
	a := Classify(m)

	j := a.Joints[MakeKey(host.EntityJoint, 0)]

	data := make([]float64, 19)
	data[0] = 1.0
	a.Update(m, data)
	data[0] = 2.0
	a.Update(m, data)

	// the pointer grabbed before the updates must see the new value
	if j.Position != 2.0 {
		t.Errorf("cached record pointer stale: position = %f", j.Position)
	}
}
