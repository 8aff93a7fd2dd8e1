// The headless command plays interaction scenarios against the widget
// runtime and hosts a small interactive terminal demo.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/headless/cmd/headless/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
