//go:build windows

package vcp

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
	"time"
	"unsafe"

	"github.com/frudas24/ddcswitch/internal/monitor"
)

// vcpInputSelect is the MCCS feature code for the input-source register.
const vcpInputSelect = 0x60

var (
	dxva2 = syscall.NewLazyDLL("dxva2.dll")

	procGetNumberOfPhysicalMonitors = dxva2.NewProc("GetNumberOfPhysicalMonitorsFromHMONITOR")
	procGetPhysicalMonitors         = dxva2.NewProc("GetPhysicalMonitorsFromHMONITOR")
	procDestroyPhysicalMonitors     = dxva2.NewProc("DestroyPhysicalMonitors")
	procGetVCPFeatureAndReply       = dxva2.NewProc("GetVCPFeatureAndVCPFeatureReply")
	procSetVCPFeature               = dxva2.NewProc("SetVCPFeature")
	procGetCapabilitiesLength       = dxva2.NewProc("GetCapabilitiesStringLength")
	procCapabilitiesRequestAndReply = dxva2.NewProc("CapabilitiesRequestAndCapabilitiesReply")
)

// physicalMonitor mirrors PHYSICAL_MONITOR from lowlevelmonitorconfigurationapi.h.
type physicalMonitor struct {
	handle      syscall.Handle
	description [128]uint16
}

// DDCChannel talks to monitors through the dxva2 physical-monitor API.
type DDCChannel struct {
	timeout time.Duration
}

var _ Channel = (*DDCChannel)(nil)

// NewChannel returns a channel with the given per-call timeout. A timeout of
// zero disables the bound.
func NewChannel(timeout time.Duration) *DDCChannel {
	return &DDCChannel{timeout: timeout}
}

// GetInputSource reads the monitor's current input-source register.
func (c *DDCChannel) GetInputSource(m monitor.Monitor) (Source, error) {
	var code uint32
	err := c.withPhysical(m, func(h syscall.Handle) error {
		var current, maximum uint32
		ret, _, _ := procGetVCPFeatureAndReply.Call(
			uintptr(h),
			uintptr(vcpInputSelect),
			0,
			uintptr(unsafe.Pointer(&current)),
			uintptr(unsafe.Pointer(&maximum)),
		)
		if ret == 0 {
			return fmt.Errorf("monitor %d: read VCP 0x%02x: %w", m.Index, vcpInputSelect, ErrUnavailable)
		}
		// The low byte carries the source; some firmwares set reserved high bytes.
		code = current & 0xff
		return nil
	})
	if err != nil {
		return 0, err
	}
	src, err := FromCode(code)
	if err != nil {
		return 0, fmt.Errorf("monitor %d: %w", m.Index, err)
	}
	return src, nil
}

// SetInputSource writes the source's code to the input-source register. Win32
// reports only a boolean outcome here, so any refusal after the physical
// handle opened is surfaced as ErrWriteRejected, including a channel that
// died mid-command.
func (c *DDCChannel) SetInputSource(m monitor.Monitor, src Source) error {
	return c.withPhysical(m, func(h syscall.Handle) error {
		ret, _, _ := procSetVCPFeature.Call(uintptr(h), uintptr(vcpInputSelect), uintptr(src))
		if ret == 0 {
			return fmt.Errorf("monitor %d: set input %s: %w", m.Index, src, ErrWriteRejected)
		}
		return nil
	})
}

// GetCapabilities requests the monitor's capabilities string and extracts the
// model and advertised input sources.
func (c *DDCChannel) GetCapabilities(m monitor.Monitor) (Capabilities, error) {
	var raw string
	err := c.withPhysical(m, func(h syscall.Handle) error {
		var length uint32
		ret, _, _ := procGetCapabilitiesLength.Call(uintptr(h), uintptr(unsafe.Pointer(&length)))
		if ret == 0 || length == 0 {
			return fmt.Errorf("monitor %d: capabilities length: %w", m.Index, ErrUnavailable)
		}
		buf := make([]byte, length)
		ret, _, _ = procCapabilitiesRequestAndReply.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(length))
		if ret == 0 {
			return fmt.Errorf("monitor %d: capabilities request: %w", m.Index, ErrUnavailable)
		}
		raw = strings.TrimRight(string(buf), "\x00")
		return nil
	})
	if err != nil {
		return Capabilities{}, err
	}
	return ParseCapabilities(raw), nil
}

// withPhysical opens the physical monitor behind the display handle, runs fn
// against it under the per-call bound, and releases it. Handles are opened
// per call; nothing is cached across calls.
func (c *DDCChannel) withPhysical(m monitor.Monitor, fn func(syscall.Handle) error) error {
	var count uint32
	ret, _, _ := procGetNumberOfPhysicalMonitors.Call(m.Handle, uintptr(unsafe.Pointer(&count)))
	if ret == 0 || count == 0 {
		return fmt.Errorf("monitor %d: no physical monitor: %w", m.Index, ErrUnavailable)
	}

	phys := make([]physicalMonitor, count)
	ret, _, _ = procGetPhysicalMonitors.Call(m.Handle, uintptr(count), uintptr(unsafe.Pointer(&phys[0])))
	if ret == 0 {
		return fmt.Errorf("monitor %d: open physical monitor: %w", m.Index, ErrUnavailable)
	}

	// The finishing goroutine destroys the handle, so a timed-out call never
	// has its handle destroyed while the stalled VCP call still uses it; an
	// abandoned call releases it when it finally returns, or at process exit.
	call := func() error {
		defer procDestroyPhysicalMonitors.Call(uintptr(count), uintptr(unsafe.Pointer(&phys[0])))
		return fn(phys[0].handle)
	}
	if err := runBounded(c.timeout, call); err != nil {
		if errors.Is(err, ErrTimeout) {
			return fmt.Errorf("monitor %d: no reply after %s: %w", m.Index, c.timeout, err)
		}
		return err
	}
	return nil
}
