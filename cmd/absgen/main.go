// Command absgen generates random ABS programs for benchmarking static
// nullability analyzers.
package main

import (
	"os"

	"github.com/derdrodt/absgen/cmd/absgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
