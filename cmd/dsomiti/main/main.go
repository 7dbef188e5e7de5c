package main

import (
	"fmt"
	"os"

	"github.com/Nexriel/DsoMiti/cmd/dsomiti"
	"github.com/Nexriel/DsoMiti/pkg/style"
)

func main() {
	rootCmd := dsomiti.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := style.ErrorStyle
		fmt.Fprintln(os.Stderr, renderer.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
