package main

import (
	"fmt"
	"os"

	"github.com/devin-lang/devin/cmd/devin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
