// Package serial wraps the PC-side serial port used to talk to the
// controller board.
package serial

import (
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// Port is the serial port interface host tools consume. Keeping it an
// interface lets tests substitute an in-memory implementation.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g. "/dev/ttyACM0", "COM3").
	Device string

	// Baud rate. USB CDC boards ignore it.
	Baud int

	// Read timeout in milliseconds. 0 blocks indefinitely; a positive
	// value makes Read return with no data after the timeout, so a
	// silent board never wedges the caller.
	ReadTimeout int
}

// DefaultConfig returns the configuration matching the board's serial
// report output.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 500,
	}
}

// nativePort wraps the tarm/serial implementation.
type nativePort struct {
	port *serial.Port
}

// Open opens the configured serial device.
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}
	return &nativePort{port: port}, nil
}

func (p *nativePort) Read(b []byte) (int, error) {
	return p.port.Read(b)
}

func (p *nativePort) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

func (p *nativePort) Close() error {
	if p.port != nil {
		return p.port.Close()
	}
	return nil
}
