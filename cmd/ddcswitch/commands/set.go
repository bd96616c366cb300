package commands

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/frudas24/ddcswitch/internal/config"
	"github.com/frudas24/ddcswitch/internal/profile"
	"github.com/frudas24/ddcswitch/internal/vcp"
)

// runSet applies an ad-hoc profile built from <idx>=<SOURCE> arguments.
func runSet(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("--set requires assignments like 1=HDMI1 2=DP1")
	}
	p, err := parseAssignments(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	engine, _, err := newEngine(cfg)
	if err != nil {
		return err
	}

	result := engine.Apply(p)
	printResult(result)
	if result.Failed() {
		return errApplyFailed
	}
	return nil
}

// parseAssignments validates arguments before any hardware call.
func parseAssignments(args []string) (profile.Profile, error) {
	p := profile.Profile{Name: "adhoc"}
	for _, arg := range args {
		idxStr, name, ok := strings.Cut(arg, "=")
		if !ok {
			return profile.Profile{}, fmt.Errorf("invalid assignment %q, want <idx>=<SOURCE>", arg)
		}
		idx, err := strconv.Atoi(strings.TrimSpace(idxStr))
		if err != nil || idx < 1 {
			return profile.Profile{}, fmt.Errorf("invalid monitor index %q in %q", idxStr, arg)
		}
		src, err := vcp.ParseSource(name)
		if err != nil {
			return profile.Profile{}, err
		}
		p.Assignments = append(p.Assignments, profile.Assignment{Monitor: idx, Source: src})
	}
	return p, nil
}

// printResult logs each assignment outcome with its monitor index.
func printResult(result profile.ApplyResult) {
	for _, r := range result {
		if r.Err != nil {
			log.Printf("monitor %d -> %s: %v", r.Monitor, r.Source, r.Err)
			continue
		}
		log.Printf("monitor %d -> %s: ok", r.Monitor, r.Source)
	}
}
