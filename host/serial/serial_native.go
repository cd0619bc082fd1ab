//go:build !wasm

package serial

import (
	"errors"
	"fmt"

	"github.com/tarm/serial"
)

var errNoConfig = errors.New("serial: nil config")

// consolePort is a tarm/serial port. The device only writes to the host,
// so there is never anything queued to flush.
type consolePort struct {
	*serial.Port
}

func (consolePort) Flush() error { return nil }

// Open opens cfg.Device. A read that times out returns io.EOF.
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, errNoConfig
	}

	p, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open console %s: %w", cfg.Device, err)
	}
	return consolePort{p}, nil
}
