package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// targetPath is the one file this tool exists to migrate. The rewrite
// core takes the path as a parameter; only the command pins it.
const targetPath = "/home/cklose/ruv-fann-mcp1/swarm/src/agent.rs"

var (
	// Flags
	debug bool
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures the global zerolog logger
func setupLogging() {
	log.Logger = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// applyLogLevel raises the log level once flags are parsed
func applyLogLevel() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}
