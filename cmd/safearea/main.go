// Command safearea previews and checks safe area plugin setups.
package main

import (
	"os"

	"github.com/go-drift/safearea/cmd/safearea/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
