package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ming751/servokit/internal/engine"
	"github.com/ming751/servokit/internal/host"
)

// hipModel builds the standard three-channel instance used across the
// resolver specs: hip_qref, hip_qdref, hip_tau, all owned by instance
// 0, with hip_tau driving a hinge joint.
func hipModel() *host.Model {
	return &host.Model{
		Joints: []host.Joint{
			{Name: "hip", Type: host.JointHinge, DOFAdr: 0},
		},
		Channels: []host.Channel{
			{Name: "hip_qref", Instance: 0, Joint: -1},
			{Name: "hip_qdref", Instance: 0, Joint: -1},
			{Name: "hip_tau", Instance: 0, Joint: 0},
		},
	}
}

var _ = Describe("Resolve", func() {
	It("wires the three suffix channels and targets the tau channel", func() {
		b, err := engine.Resolve(hipModel(), 0, "")
		Expect(err).NotTo(HaveOccurred())

		Expect(b.QRef).To(Equal(0))
		Expect(b.QdRef).To(Equal(1))
		Expect(b.Tau).To(Equal(2))
		Expect(b.Target).To(Equal(2))
	})

	It("resolves the target joint's DOF address and width", func() {
		b, err := engine.Resolve(hipModel(), 0, "")
		Expect(err).NotTo(HaveOccurred())

		Expect(b.TargetJoint).To(Equal(0))
		Expect(b.DOFAdr).To(Equal(0))
		Expect(b.DOFWidth).To(Equal(1))
	})

	It("matches suffixes case-insensitively and accepts the colon form", func() {
		m := &host.Model{Channels: []host.Channel{
			{Name: "Arm:QREF", Instance: 0, Joint: -1},
			{Name: "arm:qdref", Instance: 0, Joint: -1},
			{Name: "ARM:Tau", Instance: 0, Joint: -1},
		}}
		b, err := engine.Resolve(m, 0, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Target).To(Equal(2))
	})

	It("produces the same binding with an explicit target naming the tau channel", func() {
		implicit, err := engine.Resolve(hipModel(), 0, "")
		Expect(err).NotTo(HaveOccurred())

		explicit, err := engine.Resolve(hipModel(), 0, "hip_tau")
		Expect(err).NotTo(HaveOccurred())

		Expect(explicit).To(Equal(implicit))
	})

	It("lets an explicit target override the tau channel", func() {
		b, err := engine.Resolve(hipModel(), 0, "hip_qref")
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Target).To(Equal(0))
	})

	It("ignores channels owned by other instances", func() {
		m := hipModel()
		m.Channels = append([]host.Channel{
			{Name: "knee_qref", Instance: 1, Joint: -1},
			{Name: "knee_tau", Instance: 1, Joint: -1},
		}, m.Channels...)

		b, err := engine.Resolve(m, 0, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Channels[b.Target].Name).To(Equal("hip_tau"))
	})

	It("breaks suffix ties by first encounter in enumeration order", func() {
		m := hipModel()
		m.Channels = append(m.Channels,
			host.Channel{Name: "hip_spare_qref", Instance: 0, Joint: -1})

		b, err := engine.Resolve(m, 0, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Channels[b.QRef].Name).To(Equal("hip_qref"))
	})

	It("fails when an input channel is missing", func() {
		m := &host.Model{Channels: []host.Channel{
			{Name: "hip_qref", Instance: 0, Joint: -1},
			{Name: "hip_tau", Instance: 0, Joint: -1},
		}}
		_, err := engine.Resolve(m, 0, "")
		Expect(err).To(HaveOccurred())
	})

	It("fails when the explicit target matches no owned channel", func() {
		_, err := engine.Resolve(hipModel(), 0, "elbow_tau")
		Expect(err).To(HaveOccurred())
	})

	It("reports no joint when the target channel drives none", func() {
		m := hipModel()
		m.Channels[2].Joint = -1

		b, err := engine.Resolve(m, 0, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(b.TargetJoint).To(Equal(-1))
	})
})
