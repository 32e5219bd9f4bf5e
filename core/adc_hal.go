package core

// ADCChannelID identifies a logical converter input channel. The
// driver maps it to a concrete pin or mux setting; the core passes it
// through without validation.
type ADCChannelID uint8

// ADCValue is a raw converter code in [0, full scale).
type ADCValue uint16

// ADCDriver is the converter abstraction the Sampler consumes.
// Hardware implementations live under targets/; host tools and tests
// supply mocks.
type ADCDriver interface {
	// Init powers up and configures the converter peripheral.
	Init() error

	// ConfigureChannel prepares a channel for analog input. For
	// pin-muxed channels this sets the pin to analog mode.
	ConfigureChannel(ch ADCChannelID) error

	// ReadRaw starts one conversion on the given channel and blocks
	// until it completes. There is no timeout: an unresponsive
	// converter hangs the calling task and, with it, the whole
	// cooperative scheduler.
	ReadRaw(ch ADCChannelID) (ADCValue, error)
}
