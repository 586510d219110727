// Command shoeclean runs the shoe-cleaning orders API.
package main

import (
	"io"
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stderr))
}

// execute runs the root command and returns the process exit code.
// Cobra is told to stay quiet, so usage and flag errors are printed here;
// runtime failures are also logged by the command that hit them.
func execute(args []string, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		return 1
	}
	return 0
}
