package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/frudas24/ddcswitch/internal/profile"
	"github.com/frudas24/ddcswitch/internal/vcp"
)

const sampleProfiles = `profiles:
  work:
    2: HDMI2
    1: HDMI1
  personal:
    1: DP1
toggle:
  a: work
  b: personal
`

func writeProfiles(t *testing.T, contents string) *Store {
	t.Helper()
	dir := t.TempDir()
	profilesPath := filepath.Join(dir, "profiles.yaml")
	if err := os.WriteFile(profilesPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write profiles: %v", err)
	}
	return New(profilesPath, filepath.Join(dir, "state.json"))
}

// TestLoadProfile_OrderedByIndex verifies assignments come back sorted by
// monitor index regardless of YAML key order.
func TestLoadProfile_OrderedByIndex(t *testing.T) {
	s := writeProfiles(t, sampleProfiles)
	p, err := s.LoadProfile("work")
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	want := []profile.Assignment{
		{Monitor: 1, Source: vcp.SourceHDMI1},
		{Monitor: 2, Source: vcp.SourceHDMI2},
	}
	if len(p.Assignments) != len(want) {
		t.Fatalf("expected %d assignments, got %d", len(want), len(p.Assignments))
	}
	for i, a := range want {
		if p.Assignments[i] != a {
			t.Fatalf("assignment %d: expected %+v, got %+v", i, a, p.Assignments[i])
		}
	}
}

// TestLoadProfile_NotFound verifies unknown names fail with ErrProfileNotFound.
func TestLoadProfile_NotFound(t *testing.T) {
	s := writeProfiles(t, sampleProfiles)
	_, err := s.LoadProfile("gaming")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

// TestLoadProfile_MissingFile verifies a missing store maps to ErrProfileNotFound.
func TestLoadProfile_MissingFile(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "state.json"))
	_, err := s.LoadProfile("work")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

// TestLoadProfile_CorruptYAML verifies unparseable contents are fatal.
func TestLoadProfile_CorruptYAML(t *testing.T) {
	s := writeProfiles(t, "profiles: [not a map")
	_, err := s.LoadProfile("work")
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

// TestLoadProfile_UnknownSource verifies bad source names are caught at load.
func TestLoadProfile_UnknownSource(t *testing.T) {
	s := writeProfiles(t, "profiles:\n  work:\n    1: SCART1\n")
	_, err := s.LoadProfile("work")
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

// TestLoadProfile_BadIndex verifies non-positive monitor indexes are rejected.
func TestLoadProfile_BadIndex(t *testing.T) {
	s := writeProfiles(t, "profiles:\n  work:\n    0: HDMI1\n")
	_, err := s.LoadProfile("work")
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

// TestToggleSlots verifies both slot profiles load from the toggle block.
func TestToggleSlots(t *testing.T) {
	s := writeProfiles(t, sampleProfiles)
	a, b, err := s.ToggleSlots()
	if err != nil {
		t.Fatalf("ToggleSlots failed: %v", err)
	}
	if a.Name != "work" || b.Name != "personal" {
		t.Fatalf("expected work/personal, got %q/%q", a.Name, b.Name)
	}
	if len(b.Assignments) != 1 || b.Assignments[0].Source != vcp.SourceDP1 {
		t.Fatalf("unexpected slot B: %+v", b)
	}
}

// TestToggleSlots_Unconfigured verifies a missing toggle block is corrupt.
func TestToggleSlots_Unconfigured(t *testing.T) {
	s := writeProfiles(t, "profiles:\n  work:\n    1: HDMI1\n")
	_, _, err := s.ToggleSlots()
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

// TestToggleSlots_DanglingName verifies a slot naming a missing profile fails.
func TestToggleSlots_DanglingName(t *testing.T) {
	s := writeProfiles(t, "profiles:\n  work:\n    1: HDMI1\ntoggle:\n  a: work\n  b: gaming\n")
	_, _, err := s.ToggleSlots()
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

// TestState_UndefinedWhenMissing verifies a fresh store has no active slot.
func TestState_UndefinedWhenMissing(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "profiles.yaml"), filepath.Join(dir, "state.json"))
	active, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if active != "" {
		t.Fatalf("expected undefined state, got %q", active)
	}
}

// TestState_SaveLoadRoundTrip verifies the active slot persists.
func TestState_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "profiles.yaml"), filepath.Join(dir, "state.json"))
	if err := s.SaveState("personal"); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
	active, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if active != "personal" {
		t.Fatalf("expected personal, got %q", active)
	}
}

// TestState_CorruptJSON verifies bad state contents surface ErrCorrupt.
func TestState_CorruptJSON(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "state.json")
	if err := os.WriteFile(statePath, []byte("{"), 0o644); err != nil {
		t.Fatalf("write state: %v", err)
	}
	s := New(filepath.Join(dir, "profiles.yaml"), statePath)
	_, err := s.LoadState()
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

// TestSaveState_ReplacesExisting verifies replace-on-write leaves no temp file.
func TestSaveState_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "state.json")
	s := New(filepath.Join(dir, "profiles.yaml"), statePath)
	if err := s.SaveState("work"); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
	if err := s.SaveState("personal"); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
	if _, err := os.Stat(statePath + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("temp file left behind: %v", err)
	}
	active, err := s.LoadState()
	if err != nil || active != "personal" {
		t.Fatalf("expected personal, got %q err=%v", active, err)
	}
}

// TestSaveProfile_RoundTrip verifies a saved profile loads back and keeps the
// existing profiles and toggle block intact.
func TestSaveProfile_RoundTrip(t *testing.T) {
	s := writeProfiles(t, sampleProfiles)
	p := profile.Profile{Name: "gaming", Assignments: []profile.Assignment{
		{Monitor: 1, Source: vcp.SourceDP2},
		{Monitor: 2, Source: vcp.SourceUSBC},
	}}
	if err := s.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	got, err := s.LoadProfile("gaming")
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if len(got.Assignments) != 2 || got.Assignments[1].Source != vcp.SourceUSBC {
		t.Fatalf("unexpected profile: %+v", got)
	}

	if _, err := s.LoadProfile("work"); err != nil {
		t.Fatalf("existing profile lost: %v", err)
	}
	a, b, err := s.ToggleSlots()
	if err != nil || a.Name != "work" || b.Name != "personal" {
		t.Fatalf("toggle block lost: %q/%q err=%v", a.Name, b.Name, err)
	}
}

// TestSaveProfile_FreshStore verifies saving into a missing store creates it.
func TestSaveProfile_FreshStore(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "nested", "profiles.yaml"), filepath.Join(dir, "state.json"))
	p := profile.Profile{Name: "work", Assignments: []profile.Assignment{
		{Monitor: 1, Source: vcp.SourceHDMI1},
	}}
	if err := s.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	got, err := s.LoadProfile("work")
	if err != nil || got.Assignments[0].Source != vcp.SourceHDMI1 {
		t.Fatalf("unexpected profile %+v err=%v", got, err)
	}
}
