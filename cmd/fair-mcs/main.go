package main

import (
	"fmt"
	"os"

	"fair-mcs/cmd/fair-mcs/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
