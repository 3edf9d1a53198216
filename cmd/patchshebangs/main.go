package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "patchshebangs [flags] <path>...",
	Short: "Patch script interpreter paths against a search path",
	Long: "patchshebangs rewrites the #! line of executable scripts so the interpreter\n" +
		"resolves against a search path instead of a hard-coded location.",
	Version:      Version,
	Args:         cobra.MinimumNArgs(1),
	RunE:         runPatch,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
