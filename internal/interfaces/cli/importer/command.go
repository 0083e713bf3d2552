// Package importer implements the `tracker import` command, which loads a
// JSON export dump into the data directory.
package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/config"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/flatfile"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/repository"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

var (
	env  string
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import collections from a JSON export dump",
		Long:  "Replace the collections present in the dump file. Collections the dump omits are left as they are.",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON dump file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read dump file: %w", err)
	}

	var dump repository.Dump
	if err := json.Unmarshal(raw, &dump); err != nil {
		return fmt.Errorf("failed to parse dump file: %w", err)
	}

	store := flatfile.NewStore(cfg.Data.Dir)
	if err := repository.InitCollections(store); err != nil {
		return fmt.Errorf("failed to initialize collections: %w", err)
	}
	if err := repository.ImportDump(store, &dump); err != nil {
		return fmt.Errorf("failed to import dump: %w", err)
	}

	logger.Info("import complete",
		"issues", len(dump.Issues),
		"users", len(dump.Users),
		"hospitals", len(dump.Hospitals),
		"team", len(dump.Team),
	)
	return nil
}
