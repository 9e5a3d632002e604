package main

import (
	"os"

	"github.com/primebench/primebench/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
