package main

import (
	"os"

	"github.com/npillmayer/wgmask/cmd/wgmask/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
