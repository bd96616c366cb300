// Package main starts the ddcswitch CLI.
package main

import (
	"log"
	"os"

	"github.com/frudas24/ddcswitch/cmd/ddcswitch/commands"
)

// main is the entrypoint for the ddcswitch CLI.
func main() {
	if err := commands.Execute(); err != nil {
		log.Printf("error: %v", err)
		os.Exit(commands.ExitCode(err))
	}
}
