// Command apikit exercises the dispatch surface from a shell: send a
// request through the client pipeline and print the classified outcome.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
