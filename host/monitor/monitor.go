package monitor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"segmeter/host/serial"
)

// Monitor reads the device console and decodes it line by line.
type Monitor struct {
	port      serial.Port
	closeOnce sync.Once
	closeErr  error

	// Stats, updated as lines arrive.
	Lines   int
	Unknown int
	Clips   int
}

// New wraps an already-open port.
func New(port serial.Port) *Monitor {
	return &Monitor{port: port}
}

// Open opens the device console with cfg.
func Open(cfg *serial.Config) (*Monitor, error) {
	port, err := serial.Open(cfg)
	if err != nil {
		return nil, err
	}
	return New(port), nil
}

// Close closes the underlying port. Later calls return the first result.
func (m *Monitor) Close() error {
	m.closeOnce.Do(func() {
		m.closeErr = m.port.Close()
	})
	return m.closeErr
}

// Run reads until ctx is done or the port fails, calling fn for every
// complete line. Read timeouts are not errors. Cancelling ctx closes the
// port to unblock the read.
func (m *Monitor) Run(ctx context.Context, fn func(Event)) error {
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			m.Close()
		case <-done:
		}
	}()
	defer func() {
		close(done)
		<-stopped
	}()

	r := bufio.NewReader(m.port)
	var partial []byte
	for {
		chunk, err := r.ReadBytes('\n')
		partial = append(partial, chunk...)
		if err == nil {
			m.dispatch(string(partial), fn)
			partial = partial[:0]
			continue
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, os.ErrDeadlineExceeded):
			// tarm/serial reports a read timeout as EOF; keep the partial line.
			time.Sleep(10 * time.Millisecond)
		default:
			return fmt.Errorf("console read failed: %w", err)
		}
	}
}

func (m *Monitor) dispatch(line string, fn func(Event)) {
	ev := Parse(line)
	if ev.Raw == "" {
		return
	}
	m.Lines++
	switch ev.Kind {
	case Unknown:
		m.Unknown++
	case Clip:
		m.Clips++
	}
	fn(ev)
}
