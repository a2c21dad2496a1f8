package main

import (
	"os"

	"github.com/g-m-twostay/bst/cmd/bst/config"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln(err)
		os.Exit(1)
	}
}

// NewRootCommand returns the bst command with its subcommands. Every subcommand shares one
// config, parsed from the persistent flags before it runs.
func NewRootCommand() *cobra.Command {
	cfg := config.NewConfig()
	rootCmd := &cobra.Command{
		Use:           "bst",
		Short:         "build and inspect binary search trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cfg.Parse(cmd.Flags())
		},
	}
	cfg.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(
		NewBuildCommand(cfg),
		NewDisplayCommand(cfg),
		NewBenchCommand(cfg),
	)
	return rootCmd
}
