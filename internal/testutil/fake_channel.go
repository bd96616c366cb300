// Package testutil provides fakes for the hardware boundary.
package testutil

import (
	"github.com/frudas24/ddcswitch/internal/monitor"
	"github.com/frudas24/ddcswitch/internal/vcp"
)

// Call records a single channel operation.
type Call struct {
	Name    string
	Monitor int
	Source  vcp.Source
}

// FakeChannel implements vcp.Channel and records calls for tests.
type FakeChannel struct {
	Calls   []Call
	Current map[int]vcp.Source
	Caps    map[int]vcp.Capabilities
	GetErr  map[int]error
	SetErr  map[int]error
	CapsErr map[int]error
}

// Ensure FakeChannel implements the interface.
var _ vcp.Channel = (*FakeChannel)(nil)

// GetInputSource records the read and returns the configured source or error.
func (f *FakeChannel) GetInputSource(m monitor.Monitor) (vcp.Source, error) {
	f.Calls = append(f.Calls, Call{Name: "Get", Monitor: m.Index})
	if err := f.GetErr[m.Index]; err != nil {
		return 0, err
	}
	return f.Current[m.Index], nil
}

// SetInputSource records the write and returns the configured error, updating
// the fake's register on success.
func (f *FakeChannel) SetInputSource(m monitor.Monitor, src vcp.Source) error {
	f.Calls = append(f.Calls, Call{Name: "Set", Monitor: m.Index, Source: src})
	if err := f.SetErr[m.Index]; err != nil {
		return err
	}
	if f.Current == nil {
		f.Current = make(map[int]vcp.Source)
	}
	f.Current[m.Index] = src
	return nil
}

// GetCapabilities records the read and returns the configured capabilities.
func (f *FakeChannel) GetCapabilities(m monitor.Monitor) (vcp.Capabilities, error) {
	f.Calls = append(f.Calls, Call{Name: "Caps", Monitor: m.Index})
	if err := f.CapsErr[m.Index]; err != nil {
		return vcp.Capabilities{}, err
	}
	return f.Caps[m.Index], nil
}
