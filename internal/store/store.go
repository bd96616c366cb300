// Package store persists named profiles and the toggle state as flat files.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/frudas24/ddcswitch/internal/profile"
	"github.com/frudas24/ddcswitch/internal/vcp"
)

var (
	// ErrProfileNotFound indicates the named profile is not in the store.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrCorrupt indicates the store contents cannot be interpreted. Fatal for
	// the whole command; a corrupt profile has no safe partial reading.
	ErrCorrupt = errors.New("profile store corrupt")
)

// profilesFile mirrors profiles.yaml.
type profilesFile struct {
	Profiles map[string]map[int]string `yaml:"profiles"`
	Toggle   struct {
		A string `yaml:"a"`
		B string `yaml:"b"`
	} `yaml:"toggle"`
}

// stateFile mirrors state.json.
type stateFile struct {
	Active string `json:"active"`
}

// Store reads and writes profiles and toggle state. Contents are read fresh
// per call; nothing is cached across invocations.
type Store struct {
	profilesPath string
	statePath    string
}

// New returns a store over the given file paths.
func New(profilesPath, statePath string) *Store {
	return &Store{profilesPath: profilesPath, statePath: statePath}
}

// LoadProfile returns the named profile with assignments ordered by monitor
// index. Source names are validated here, before any hardware call.
func (s *Store) LoadProfile(name string) (profile.Profile, error) {
	file, err := s.readProfiles()
	if err != nil {
		return profile.Profile{}, err
	}
	raw, ok := file.Profiles[name]
	if !ok {
		return profile.Profile{}, fmt.Errorf("profile %q: %w", name, ErrProfileNotFound)
	}
	return buildProfile(name, raw)
}

// ToggleSlots returns the two profiles configured for --toggle.
func (s *Store) ToggleSlots() (profile.Profile, profile.Profile, error) {
	file, err := s.readProfiles()
	if err != nil {
		return profile.Profile{}, profile.Profile{}, err
	}
	if file.Toggle.A == "" || file.Toggle.B == "" {
		return profile.Profile{}, profile.Profile{}, fmt.Errorf("toggle slots not configured: %w", ErrCorrupt)
	}

	a, err := s.slotProfile(file, file.Toggle.A)
	if err != nil {
		return profile.Profile{}, profile.Profile{}, err
	}
	b, err := s.slotProfile(file, file.Toggle.B)
	if err != nil {
		return profile.Profile{}, profile.Profile{}, err
	}
	return a, b, nil
}

// SaveProfile writes the named profile back to the store via a temp file and
// rename, preserving the other profiles and the toggle block.
func (s *Store) SaveProfile(p profile.Profile) error {
	file, err := s.readProfiles()
	if err != nil && !errors.Is(err, ErrProfileNotFound) {
		return err
	}
	if file.Profiles == nil {
		file.Profiles = make(map[string]map[int]string)
	}

	raw := make(map[int]string, len(p.Assignments))
	for _, a := range p.Assignments {
		raw[a.Monitor] = a.Source.String()
	}
	file.Profiles[p.Name] = raw

	data, err := yaml.Marshal(file)
	if err != nil {
		return err
	}
	return writeAtomic(s.profilesPath, data, 0o644)
}

// LoadState returns the active toggle slot name. A missing state file means
// the toggle state is undefined and returns "".
func (s *Store) LoadState() (string, error) {
	data, err := os.ReadFile(s.statePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	var st stateFile
	if err := json.Unmarshal(data, &st); err != nil {
		return "", fmt.Errorf("%s: %v: %w", s.statePath, err, ErrCorrupt)
	}
	return st.Active, nil
}

// SaveState records the active toggle slot via a temp file and rename so an
// interrupted write never corrupts the previous state.
func (s *Store) SaveState(name string) error {
	data, err := json.MarshalIndent(stateFile{Active: name}, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(s.statePath, data, 0o644)
}

// slotProfile builds one toggle slot, mapping a dangling slot name to
// ErrProfileNotFound.
func (s *Store) slotProfile(file profilesFile, name string) (profile.Profile, error) {
	raw, ok := file.Profiles[name]
	if !ok {
		return profile.Profile{}, fmt.Errorf("toggle slot %q: %w", name, ErrProfileNotFound)
	}
	return buildProfile(name, raw)
}

// readProfiles loads profiles.yaml. A missing file maps to ErrProfileNotFound,
// unparseable contents to ErrCorrupt.
func (s *Store) readProfiles() (profilesFile, error) {
	var file profilesFile
	data, err := os.ReadFile(s.profilesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return file, fmt.Errorf("%s: %w", s.profilesPath, ErrProfileNotFound)
		}
		return file, err
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("%s: %v: %w", s.profilesPath, err, ErrCorrupt)
	}
	return file, nil
}

// buildProfile validates and orders raw assignments by monitor index. YAML
// mappings carry no order; index order is the profile's declared order.
func buildProfile(name string, raw map[int]string) (profile.Profile, error) {
	indexes := make([]int, 0, len(raw))
	for idx := range raw {
		if idx < 1 {
			return profile.Profile{}, fmt.Errorf("profile %q: monitor index %d: %w", name, idx, ErrCorrupt)
		}
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	p := profile.Profile{Name: name}
	for _, idx := range indexes {
		src, err := vcp.ParseSource(raw[idx])
		if err != nil {
			return profile.Profile{}, fmt.Errorf("profile %q: %v: %w", name, err, ErrCorrupt)
		}
		p.Assignments = append(p.Assignments, profile.Assignment{Monitor: idx, Source: src})
	}
	return p, nil
}

// writeAtomic writes data via a temp file then rename, creating parent
// directories as needed.
func writeAtomic(path string, data []byte, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
