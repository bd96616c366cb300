package commands

import (
	"log"

	"github.com/frudas24/ddcswitch/internal/config"
	"github.com/frudas24/ddcswitch/internal/store"
)

// runToggle applies the inactive toggle slot and persists the new state. The
// state flips even on partial failure; assignments already issued stay in
// place and there is no undo.
func runToggle() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	st := store.New(cfg.ProfilesPath, cfg.StatePath)

	slotA, slotB, err := st.ToggleSlots()
	if err != nil {
		return err
	}
	current, err := st.LoadState()
	if err != nil {
		return err
	}

	engine, _, err := newEngine(cfg)
	if err != nil {
		return err
	}

	next, result := engine.Toggle(slotA, slotB, current)
	log.Printf("toggling to profile %q", next)
	printResult(result)

	if err := st.SaveState(next); err != nil {
		return err
	}
	if result.Failed() {
		return errApplyFailed
	}
	return nil
}
