package main

import (
	"os"

	"github.com/cogniquest/cogniquest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
