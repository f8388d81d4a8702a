package main

import (
	"os"

	"github.com/lostective/lostective/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
