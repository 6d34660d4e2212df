package engine

import (
	"fmt"
	"strings"

	"github.com/ming751/servokit/internal/host"
)

// Channel-name suffixes that mark the three input roles of an instance.
// Both separator forms are accepted, matched case-insensitively.
var (
	qrefSuffixes  = []string{"_qref", ":qref"}
	qdrefSuffixes = []string{"_qdref", ":qdref"}
	tauSuffixes   = []string{"_tau", ":tau"}
)

// Binding is the immutable wiring of one instance: the three input
// channel indices, the output target index, and, when the target drives
// a joint, that joint's degree-of-freedom address and width. Resolved
// once at instance creation, never re-matched per tick.
type Binding struct {
	QRef   int
	QdRef  int
	Tau    int
	Target int

	TargetJoint int // -1 when the target channel drives no joint
	DOFAdr      int
	DOFWidth    int
}

// Resolve scans the channels owned by instance and builds its binding.
//
// Input channels are found by suffix; when several channels match one
// suffix family the first in enumeration order wins. The target is
// chosen by priority: the explicit targetName (exact match among the
// instance's channels), otherwise the tau channel, otherwise the first
// owned channel. Resolution fails when no target could be selected or
// any of the three inputs is missing; the caller simply does not
// activate the instance.
func Resolve(m *host.Model, instance int, targetName string) (Binding, error) {
	b := Binding{QRef: -1, QdRef: -1, Tau: -1, Target: -1, TargetJoint: -1}

	for i, ch := range m.Channels {
		if ch.Instance != instance {
			continue
		}
		name := ch.Name
		switch {
		case b.QRef < 0 && hasAnySuffix(name, qrefSuffixes):
			b.QRef = i
		case b.QdRef < 0 && hasAnySuffix(name, qdrefSuffixes):
			b.QdRef = i
		case b.Tau < 0 && hasAnySuffix(name, tauSuffixes):
			b.Tau = i
		}
	}

	switch {
	case targetName != "":
		for i, ch := range m.Channels {
			if ch.Instance == instance && ch.Name == targetName {
				b.Target = i
				break
			}
		}
	case b.Tau >= 0:
		b.Target = b.Tau
	default:
		for i, ch := range m.Channels {
			if ch.Instance == instance {
				b.Target = i
				break
			}
		}
	}

	if b.Target < 0 {
		return Binding{}, fmt.Errorf("instance %d: target channel not found", instance)
	}
	if b.QRef < 0 || b.QdRef < 0 || b.Tau < 0 {
		return Binding{}, fmt.Errorf(
			"instance %d: need three channels with suffixes {_qref,_qdref,_tau}", instance)
	}

	if j := m.Channels[b.Target].Joint; j >= 0 && j < len(m.Joints) {
		b.TargetJoint = j
		b.DOFAdr = m.Joints[j].DOFAdr
		b.DOFWidth = m.Joints[j].Type.DOF()
	}

	return b, nil
}

func hasAnySuffix(name string, suffixes []string) bool {
	lower := strings.ToLower(name)
	for _, s := range suffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}
