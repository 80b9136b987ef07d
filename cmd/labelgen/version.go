package main

import "github.com/spf13/cobra"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("labelgen version %s\n", version)
			cmd.Printf("  commit: %s\n", commit)
			cmd.Printf("  built:  %s\n", date)
		},
	}
}
