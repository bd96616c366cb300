//go:build !windows

// Package monitor enumerates physical displays and assigns stable logical indexes.
package monitor

import "fmt"

// ListMonitors returns an error on non-Windows platforms.
func ListMonitors() ([]Monitor, error) {
	return nil, fmt.Errorf("ListMonitors is only supported on Windows")
}
