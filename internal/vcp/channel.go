package vcp

import (
	"errors"
	"time"

	"github.com/frudas24/ddcswitch/internal/monitor"
)

var (
	// ErrUnavailable indicates the monitor does not expose the DDC/CI control channel.
	ErrUnavailable = errors.New("control channel unavailable")

	// ErrTimeout indicates the monitor stalled past the per-call bound.
	ErrTimeout = errors.New("control channel timeout")

	// ErrWriteRejected indicates the channel acknowledged the command but refused the value.
	ErrWriteRejected = errors.New("input source write rejected")
)

// Channel issues input-source reads and writes against one display. A nil
// error from SetInputSource means the command was accepted by the channel;
// the physical switch completes asynchronously on the monitor side.
type Channel interface {
	GetInputSource(m monitor.Monitor) (Source, error)
	SetInputSource(m monitor.Monitor, src Source) error
	GetCapabilities(m monitor.Monitor) (Capabilities, error)
}

// runBounded runs fn under a timeout; zero disables the bound. On expiry the
// call's goroutine is abandoned but keeps ownership of its resources: cleanup
// tied to fn runs only after fn returns, never under a still-live call.
func runBounded(timeout time.Duration, fn func() error) error {
	if timeout <= 0 {
		return fn()
	}
	done := make(chan error, 1)
	go func() { done <- fn() }()
	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return ErrTimeout
	}
}
