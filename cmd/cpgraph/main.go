// Command cpgraph builds, solves, and explains critical-path graphs from
// accelerator performance traces.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
