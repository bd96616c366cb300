//go:build !windows

package vcp

import (
	"fmt"
	"time"

	"github.com/frudas24/ddcswitch/internal/monitor"
)

// DDCChannel is a placeholder channel for non-Windows builds.
type DDCChannel struct{}

var _ Channel = (*DDCChannel)(nil)

// NewChannel returns a non-functional channel on non-Windows platforms.
func NewChannel(timeout time.Duration) *DDCChannel {
	_ = timeout
	return &DDCChannel{}
}

// GetInputSource returns ErrUnavailable.
func (c *DDCChannel) GetInputSource(m monitor.Monitor) (Source, error) {
	return 0, fmt.Errorf("monitor %d: DDC/CI is only supported on Windows: %w", m.Index, ErrUnavailable)
}

// SetInputSource returns ErrUnavailable.
func (c *DDCChannel) SetInputSource(m monitor.Monitor, src Source) error {
	return fmt.Errorf("monitor %d: DDC/CI is only supported on Windows: %w", m.Index, ErrUnavailable)
}

// GetCapabilities returns ErrUnavailable.
func (c *DDCChannel) GetCapabilities(m monitor.Monitor) (Capabilities, error) {
	return Capabilities{}, fmt.Errorf("monitor %d: DDC/CI is only supported on Windows: %w", m.Index, ErrUnavailable)
}
