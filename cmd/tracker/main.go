package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/cli/hospitals"
	"github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/cli/importer"
	"github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/cli/seed"
	"github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/cli/server"
	"github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/cli/users"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "Internal issue tracker for hospital operations",
		Long:  `Issue tracker with a flat-file data store, serving the operations team's task board, dashboard and admin panel.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		seed.NewCommand(),
		users.NewCommand(),
		hospitals.NewCommand(),
		importer.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
