// main is the entry point for the mlbscore CLI.
package main

import (
	"os"

	"github.com/joycemanzada/mlbscore/cmd"
	"github.com/joycemanzada/mlbscore/internal/contract"
	"github.com/joycemanzada/mlbscore/internal/iocache"
)

func main() {
	err := cmd.Execute()

	iocache.CloseStores()
	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Failed to stop profiling", perr)
	}

	if err != nil {
		os.Exit(1)
	}
}
