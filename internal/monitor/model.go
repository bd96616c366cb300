// Package monitor enumerates physical displays and assigns stable logical indexes.
package monitor

import (
	"errors"
	"fmt"
)

// ErrUnknownIndex indicates a logical monitor index outside the enumerated range.
var ErrUnknownIndex = errors.New("unknown monitor index")

// Monitor describes one physical display for the duration of an invocation.
// Index is 1-based and follows OS enumeration order; Handle is the OS display
// handle and is consumed only by the VCP channel.
type Monitor struct {
	Index   int
	Handle  uintptr
	X       int
	Y       int
	W       int
	H       int
	Primary bool
}

// Resolve returns the monitor matching the 1-based logical index.
func Resolve(list []Monitor, idx int) (Monitor, error) {
	for _, m := range list {
		if m.Index == idx {
			return m, nil
		}
	}
	return Monitor{}, fmt.Errorf("monitor %d: %w", idx, ErrUnknownIndex)
}
