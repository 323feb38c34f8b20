package main

import (
	"os"

	"flightlens/cmd/lens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
