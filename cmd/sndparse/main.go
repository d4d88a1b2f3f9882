package main

import (
	"os"

	"github.com/msto63/geosnd/cmd/sndparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
