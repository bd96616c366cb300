package vcp

import (
	"regexp"
	"strconv"
	"strings"
)

// Capabilities is the input-switching subset of an MCCS capabilities reply.
type Capabilities struct {
	Model  string
	Inputs []Source
}

var (
	capsModelRe  = regexp.MustCompile(`(?i)model\(([^)]+)\)`)
	capsInputsRe = regexp.MustCompile(`60\(\s*([0-9A-Fa-f\s]+)\)`)
)

// ParseCapabilities extracts the model and the advertised input-source codes
// from a raw capabilities string. Advertised codes outside the closed set are
// kept as-is so callers can show them; they are never folded into a known
// source. Fields absent from the reply stay empty.
func ParseCapabilities(raw string) Capabilities {
	var caps Capabilities
	if m := capsModelRe.FindStringSubmatch(raw); m != nil {
		caps.Model = strings.TrimSpace(m[1])
	}
	if m := capsInputsRe.FindStringSubmatch(raw); m != nil {
		for _, tok := range strings.Fields(m[1]) {
			code, err := strconv.ParseUint(tok, 16, 8)
			if err != nil {
				continue
			}
			caps.Inputs = append(caps.Inputs, Source(code))
		}
	}
	return caps
}
