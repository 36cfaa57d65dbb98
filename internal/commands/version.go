package commands

import "fmt"

// RunVersion prints build information.
func RunVersion() {
	fmt.Printf("revu version %s (commit %s, built %s)\n", Version, Commit, Date)
}
