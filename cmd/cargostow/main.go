// Command cargostow is the CLI front end for the cargo stowage engine:
// it drives packing, search, rearrangement, and waste-management jobs
// from the shell, and can launch the HTTP façade for other consumers.
package main

import (
	"fmt"
	"os"

	"github.com/piwi3910/cargostow/cmd/cargostow/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
