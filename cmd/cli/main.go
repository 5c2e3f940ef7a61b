package main

import (
	"os"

	"github.com/campusd-dev/campusd/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
