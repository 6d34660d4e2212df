// Package host defines the contract between the simulation host and the
// servokit engine: the immutable model description the host builds at
// load time and the flat per-tick buffers it owns.
//
// The host advances physics, fills the sensor and feedback buffers, and
// calls the engine once per tick. The engine only ever reads the model
// and writes into [Data.ChannelForce]. Indices into the buffers come
// from the descriptors; the host guarantees they are in range.
package host
