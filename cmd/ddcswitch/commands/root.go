// Package commands wires the CLI surface onto the profile engine.
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frudas24/ddcswitch/internal/config"
	"github.com/frudas24/ddcswitch/internal/monitor"
	"github.com/frudas24/ddcswitch/internal/profile"
	"github.com/frudas24/ddcswitch/internal/vcp"
)

var (
	listFlag   bool
	setFlag    bool
	toggleFlag bool
)

var (
	// errApplyFailed marks a run where at least one assignment failed.
	errApplyFailed = errors.New("one or more assignments failed")

	// errTopology marks a failure to query the OS display topology.
	errTopology = errors.New("cannot query display topology")
)

// Execute runs the root command.
func Execute() error {
	root := &cobra.Command{
		Use:           "ddcswitch [--list | --set <idx>=<SOURCE> ... | --toggle]",
		Short:         "Switch monitor inputs over DDC/CI without a hardware KVM",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case listFlag:
				return runList()
			case setFlag:
				return runSet(args)
			case toggleFlag:
				return runToggle()
			default:
				return cmd.Help()
			}
		},
	}

	root.Flags().BoolVar(&listFlag, "list", false, "list monitors and their current input source")
	root.Flags().BoolVar(&setFlag, "set", false, "set monitor inputs, e.g. --set 1=HDMI1 2=DP1")
	root.Flags().BoolVar(&toggleFlag, "toggle", false, "toggle between the two configured profiles")
	root.MarkFlagsMutuallyExclusive("list", "set", "toggle")

	return root.Execute()
}

// ExitCode maps an Execute error to the process exit code: 2 when the display
// topology cannot be queried, 1 otherwise.
func ExitCode(err error) int {
	if errors.Is(err, errTopology) {
		return 2
	}
	return 1
}

// newEngine enumerates monitors and wires the VCP channel.
func newEngine(cfg config.Config) (*profile.Engine, []monitor.Monitor, error) {
	monitors, err := monitor.ListMonitors()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errTopology, err)
	}
	return profile.NewEngine(monitors, vcp.NewChannel(cfg.VCPTimeout)), monitors, nil
}
