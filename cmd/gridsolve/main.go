// Command gridsolve trains value iteration on a grid world, prints the
// resulting policy and utilities, and optionally persists them.
//
//	gridsolve --preset seek-far-safe --iterations 100 --out utilities.json
//	GRIDSOLVE_NOISE=0 gridsolve --layout maze.txt --path
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Error().Err(err).Msg("gridsolve-failed")
		os.Exit(1)
	}
}
