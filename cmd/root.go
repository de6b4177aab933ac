package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:     "ghapi",
	Short:   "ghapi command-line client for hosted repositories",
	Long:    `Command-line client for pull requests, references and releases on a hosted source-control service.`,
	Version: fmt.Sprintf("%v, commit %v, built at %v", version, commit, date),
	Run:     func(cmd *cobra.Command, args []string) {},
}

func Execute() error {
	return rootCmd.Execute()
}
