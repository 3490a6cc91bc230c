package main

import (
	"fmt"
	"os"

	"github.com/toffee-lang/toffee/cmd/toffee/command"
)

func main() {
	err := command.App().Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
