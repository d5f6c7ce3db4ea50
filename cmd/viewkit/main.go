// Command viewkit replays scripted view lifecycles.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/viewkit/cmd/viewkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
