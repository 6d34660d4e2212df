package host

// Data is the mutable per-tick state the host owns. The slices are flat
// arrays indexed by sensor address or channel index.
//
//   - SensorData: raw sensor values, laid out per the descriptors
//   - Ctrl: command setpoints, one slot per channel
//   - ChannelLength, ChannelVelocity: measured feedback per channel
//   - ChannelForce: additive effort accumulator per channel
type Data struct {
	Time float64

	SensorData []float64

	Ctrl            []float64
	ChannelLength   []float64
	ChannelVelocity []float64
	ChannelForce    []float64
}

// NewData allocates per-tick buffers sized for the model.
func NewData(m *Model) *Data {
	nu := len(m.Channels)
	return &Data{
		SensorData:      make([]float64, m.SensorDataSize()),
		Ctrl:            make([]float64, nu),
		ChannelLength:   make([]float64, nu),
		ChannelVelocity: make([]float64, nu),
		ChannelForce:    make([]float64, nu),
	}
}
