// Package profile applies named input-source assignments across monitors.
package profile

import (
	"github.com/frudas24/ddcswitch/internal/monitor"
	"github.com/frudas24/ddcswitch/internal/vcp"
)

// Assignment pairs a logical monitor index with a desired input source.
type Assignment struct {
	Monitor int
	Source  vcp.Source
}

// Profile is an ordered set of assignments applied together under one name.
type Profile struct {
	Name        string
	Assignments []Assignment
}

// Result records the outcome of one assignment.
type Result struct {
	Assignment
	Err error
}

// ApplyResult holds one Result per assignment, in profile order.
type ApplyResult []Result

// Failed reports whether any assignment failed.
func (r ApplyResult) Failed() bool {
	for _, res := range r {
		if res.Err != nil {
			return true
		}
	}
	return false
}

// Status is one monitor's current input source, or the error reading it,
// plus whatever the capabilities reply advertised.
type Status struct {
	Monitor int
	Source  vcp.Source
	Err     error
	Caps    vcp.Capabilities
	CapsErr error
}

// Engine issues input-source changes against an enumerated monitor set.
type Engine struct {
	monitors []monitor.Monitor
	channel  vcp.Channel
}

// NewEngine returns an engine bound to the given monitors and channel.
func NewEngine(monitors []monitor.Monitor, channel vcp.Channel) *Engine {
	return &Engine{monitors: monitors, channel: channel}
}

// Apply issues one set-operation per assignment in declared order. Assignments
// are attempted independently; a failure never aborts the rest, since a
// display switch has no rollback. The result carries the specific error per
// assignment so callers can report which monitors did not switch.
func (e *Engine) Apply(p Profile) ApplyResult {
	results := make(ApplyResult, 0, len(p.Assignments))
	for _, a := range p.Assignments {
		results = append(results, Result{Assignment: a, Err: e.applyOne(a)})
	}
	return results
}

func (e *Engine) applyOne(a Assignment) error {
	m, err := monitor.Resolve(e.monitors, a.Monitor)
	if err != nil {
		return err
	}
	return e.channel.SetInputSource(m, a.Source)
}

// Toggle applies whichever of a/b is not current and returns the new state
// name with the apply result. There is no hardware oracle for the active
// profile, so an undefined current counts as slot A being active and the
// first toggle applies slot B.
func (e *Engine) Toggle(a, b Profile, current string) (string, ApplyResult) {
	next := b
	if current == b.Name {
		next = a
	}
	return next.Name, e.Apply(next)
}

// List reads the current input source and advertised capabilities of every
// enumerated monitor. It never mutates monitor state.
func (e *Engine) List() []Status {
	statuses := make([]Status, 0, len(e.monitors))
	for _, m := range e.monitors {
		src, err := e.channel.GetInputSource(m)
		caps, capsErr := e.channel.GetCapabilities(m)
		statuses = append(statuses, Status{Monitor: m.Index, Source: src, Err: err, Caps: caps, CapsErr: capsErr})
	}
	return statuses
}
