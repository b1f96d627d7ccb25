package main

import (
	"os"

	"github.com/recrutaml/recruta/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
