// Package vcp reads and writes the input-source register of a display over
// DDC/CI (VCP feature 0x60).
package vcp

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnmappedCode indicates a VCP code outside the known input-source set.
var ErrUnmappedCode = errors.New("unmapped input source code")

// Source is a VCP input-source code from the fixed MCCS table. The name/code
// mapping is closed and bijective; vendor-specific codes are never guessed.
type Source byte

// Input source codes for VCP feature 0x60.
const (
	SourceVGA1       Source = 0x01
	SourceVGA2       Source = 0x02
	SourceDVI1       Source = 0x03
	SourceDVI2       Source = 0x04
	SourceComponent1 Source = 0x0C
	SourceDP1        Source = 0x0F
	SourceDP2        Source = 0x10
	SourceHDMI1      Source = 0x11
	SourceHDMI2      Source = 0x12
	SourceUSBC       Source = 0x1F
)

var sourceNames = map[Source]string{
	SourceVGA1:       "VGA1",
	SourceVGA2:       "VGA2",
	SourceDVI1:       "DVI1",
	SourceDVI2:       "DVI2",
	SourceComponent1: "COMPONENT1",
	SourceDP1:        "DP1",
	SourceDP2:        "DP2",
	SourceHDMI1:      "HDMI1",
	SourceHDMI2:      "HDMI2",
	SourceUSBC:       "USBC",
}

var sourceCodes = make(map[string]Source, len(sourceNames))

func init() {
	for code, name := range sourceNames {
		sourceCodes[name] = code
	}
}

// Known reports whether the source is in the closed set.
func (s Source) Known() bool {
	_, ok := sourceNames[s]
	return ok
}

// String returns the canonical name for the source.
func (s Source) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown(0x%02x)", byte(s))
}

// ParseSource returns the source for a case-insensitive name. Unknown names
// fail here, before any hardware call is issued.
func ParseSource(name string) (Source, error) {
	src, ok := sourceCodes[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown input source %q (known: %s)", name, strings.Join(SourceNames(), ", "))
	}
	return src, nil
}

// FromCode returns the source for a raw VCP code. Codes outside the closed
// set are surfaced as ErrUnmappedCode, never coerced to a nearby source.
func FromCode(code uint32) (Source, error) {
	src := Source(code)
	if uint32(byte(code)) != code {
		return 0, fmt.Errorf("code 0x%x: %w", code, ErrUnmappedCode)
	}
	if _, ok := sourceNames[src]; !ok {
		return 0, fmt.Errorf("code 0x%02x: %w", byte(code), ErrUnmappedCode)
	}
	return src, nil
}

// SourceNames returns the closed set of source names in code order.
func SourceNames() []string {
	codes := make([]int, 0, len(sourceNames))
	for code := range sourceNames {
		codes = append(codes, int(code))
	}
	sort.Ints(codes)
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, sourceNames[Source(code)])
	}
	return names
}
