package main

import "os"

func main() {
	// Commands register themselves in init; the help template can only
	// be installed once they are all attached.
	styleHelp(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		outputError(os.Stderr, err)
		os.Exit(1)
	}
}
