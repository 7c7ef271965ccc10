package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:           "prepctl",
	Short:         "Interview preparation from the command line",
	Long:          "prepctl runs the interview preparation pipeline without the web UI and manages accounts.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(registerCmd)
}
