package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the absgen version",
	Long:  "Print version, commit, and build date information for absgen.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("absgen version %s\n", Version)
		fmt.Printf("  commit:     %s\n", GitCommit)
		fmt.Printf("  built:      %s\n", BuildDate)
		fmt.Printf("  project:    https://github.com/derdrodt/absgen\n")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
