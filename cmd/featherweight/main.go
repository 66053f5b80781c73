// Command featherweight mounts hook-based demo apps into an in-memory DOM.
package main

import (
	"os"

	"github.com/joshuaharry/featherweight-react/cmd/featherweight/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
