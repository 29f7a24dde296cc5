// Command winaudio lists and controls Windows audio playback endpoints from
// the console. Results go to stdout (JSON for list/format, booleans for the
// control operations); diagnostics go to stderr.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/sameerbk201/winaudio/cmd/winaudio/cli"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := cli.RootCommand(&log).Execute(); err != nil {
		// cobra already printed usage errors; anything else is an
		// environment failure worth a diagnostic line.
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
