//go:build rp2040 || rp2350

package main

import (
	"errors"
	"machine"

	"github.com/Dystopia0910/734429-Embebidos2/core"
)

var errUnknownChannel = errors.New("unknown ADC channel")

// adcPin maps logical sampler channels onto the chip's ADC-capable
// pins (GPIO26..29).
func adcPin(ch core.ADCChannelID) (machine.Pin, bool) {
	switch ch {
	case 0:
		return machine.ADC0, true
	case 1:
		return machine.ADC1, true
	case 2:
		return machine.ADC2, true
	case 3:
		return machine.ADC3, true
	}
	return machine.NoPin, false
}

// rpADCDriver implements core.ADCDriver on the on-chip converter.
type rpADCDriver struct {
	channels map[core.ADCChannelID]machine.ADC
}

func newRPADCDriver() *rpADCDriver {
	return &rpADCDriver{channels: make(map[core.ADCChannelID]machine.ADC)}
}

func (d *rpADCDriver) Init() error {
	machine.InitADC()
	return nil
}

func (d *rpADCDriver) ConfigureChannel(ch core.ADCChannelID) error {
	pin, ok := adcPin(ch)
	if !ok {
		return errUnknownChannel
	}
	a := machine.ADC{Pin: pin}
	a.Configure(machine.ADCConfig{})
	d.channels[ch] = a
	return nil
}

// ReadRaw blocks in machine.ADC.Get until the conversion completes,
// then scales the 16-bit reading down to the 12-bit code the sampler
// maps. Unconfigured channels are configured lazily, mirroring the
// reference hardware's per-conversion channel-config write.
func (d *rpADCDriver) ReadRaw(ch core.ADCChannelID) (core.ADCValue, error) {
	a, ok := d.channels[ch]
	if !ok {
		if err := d.ConfigureChannel(ch); err != nil {
			return 0, err
		}
		a = d.channels[ch]
	}
	return core.ADCValue(a.Get() >> 4), nil
}
