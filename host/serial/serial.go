// Package serial opens the device's USB console on the host.
package serial

import (
	"io"
	"time"
)

// Port is the byte stream the monitor reads diagnostic lines from. Tests
// substitute pipes for it.
type Port interface {
	io.ReadWriteCloser
	Flush() error
}

// Config selects the console device.
type Config struct {
	Device      string        // e.g. /dev/ttyACM0 or COM3
	Baud        int           // ignored by USB CDC, kept for UART adapters
	ReadTimeout time.Duration // 0 blocks until a byte arrives
}

// DefaultConfig matches the firmware's USB console. The read timeout keeps
// Run responsive to cancellation while the device is quiet.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 500 * time.Millisecond,
	}
}
