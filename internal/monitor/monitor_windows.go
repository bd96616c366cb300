//go:build windows

// Package monitor enumerates physical displays and assigns stable logical indexes.
package monitor

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

// ListMonitors returns connected displays in OS enumeration order using WinAPI.
// Index assignment is deterministic for a given topology within one boot
// session. An empty result is not an error; only a failed topology query is.
func ListMonitors() ([]Monitor, error) {
	state := &enumState{}
	callback := syscall.NewCallback(state.enumProc)

	if ok := win.EnumDisplayMonitors(0, nil, callback, 0); !ok {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", syscall.GetLastError())
	}
	return state.list, nil
}

type enumState struct {
	list  []Monitor
	index int
}

func (s *enumState) enumProc(hMonitor win.HMONITOR, hdc win.HDC, rect *win.RECT, lparam uintptr) uintptr {
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(hMonitor, &info) {
		return 1
	}

	bounds := info.RcMonitor
	s.index++
	m := Monitor{
		Index:   s.index,
		Handle:  uintptr(hMonitor),
		X:       int(bounds.Left),
		Y:       int(bounds.Top),
		W:       int(bounds.Right - bounds.Left),
		H:       int(bounds.Bottom - bounds.Top),
		Primary: info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	}
	s.list = append(s.list, m)
	return 1
}
