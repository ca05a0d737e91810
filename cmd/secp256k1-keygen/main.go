package main

import (
	"os"

	"github.com/rafaelescrich/secp256k1-keygen/internal/cli"
)

func main() {
	// On failure Cobra prints the error, so we only need a non-zero status.
	if cli.NewCommand().Execute() != nil {
		os.Exit(1)
	}
}
