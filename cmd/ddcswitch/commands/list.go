package commands

import (
	"fmt"
	"log"
	"strings"

	"github.com/frudas24/ddcswitch/internal/config"
	"github.com/frudas24/ddcswitch/internal/vcp"
)

// runList prints every enumerated monitor with its current input source,
// model, and advertised inputs. Per-monitor read failures are reported but do
// not fail the command; neither does an empty display list.
func runList() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	engine, monitors, err := newEngine(cfg)
	if err != nil {
		return err
	}
	if len(monitors) == 0 {
		log.Printf("no DDC/CI monitors detected")
		return nil
	}

	log.Printf("found %d monitor(s)", len(monitors))
	for i, st := range engine.List() {
		m := monitors[i]
		label := fmt.Sprintf("monitor %d [%dx%d]", st.Monitor, m.W, m.H)
		if m.Primary {
			label += " (primary)"
		}
		if st.Err != nil {
			log.Printf("%s: %v", label, st.Err)
		} else {
			log.Printf("%s: %s (0x%02x)", label, st.Source, byte(st.Source))
		}
		if st.CapsErr != nil {
			log.Printf("%s: capabilities: %v", label, st.CapsErr)
			continue
		}
		if st.Caps.Model != "" {
			log.Printf("%s: model %s", label, st.Caps.Model)
		}
		if len(st.Caps.Inputs) > 0 {
			log.Printf("%s: available inputs: %s", label, formatInputs(st.Caps.Inputs))
		}
	}
	return nil
}

// formatInputs renders advertised inputs as "HDMI1 (0x11), ...". Codes outside
// the closed set keep their raw rendering.
func formatInputs(inputs []vcp.Source) string {
	parts := make([]string, 0, len(inputs))
	for _, src := range inputs {
		if src.Known() {
			parts = append(parts, fmt.Sprintf("%s (0x%02x)", src, byte(src)))
			continue
		}
		parts = append(parts, src.String())
	}
	return strings.Join(parts, ", ")
}
