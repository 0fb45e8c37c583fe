package main

import (
	"fmt"
	"os"

	"retirement-calc/internal/cli"
)

func main() {
	c := cli.NewCLI(cli.Options{
		Output:    os.Stdout,
		LogOutput: os.Stderr,
	})

	if err := c.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
