package main

import (
	"os"

	"github.com/go-drift/flow/cmd/flow/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
