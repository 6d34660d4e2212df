package telemetry

import "github.com/ming751/servokit/internal/host"

// Key addresses one entity across all telemetry families: the entity
// kind packed into the high 32 bits, the entity id in the low 32.
// Distinct (kind, id) pairs never collide for any non-negative id.
type Key uint64

// MakeKey packs an entity kind and id into a Key. The id must be
// non-negative and within the host's table sizes; the host guarantees
// this, so it is not checked here.
func MakeKey(kind host.EntityKind, id int32) Key {
	return Key(uint64(uint32(kind))<<32 | uint64(uint32(id)))
}

// Kind returns the entity kind encoded in the key.
func (k Key) Kind() host.EntityKind {
	return host.EntityKind(k >> 32)
}

// ID returns the entity id encoded in the key.
func (k Key) ID() int32 {
	return int32(uint32(k))
}
