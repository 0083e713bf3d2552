// Package seed implements the `tracker seed` command, which initializes the
// flat-file data directory for a fresh install.
package seed

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/hospital"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/config"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/flatfile"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/repository"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

var (
	env      string
	seedFile string
)

// seedData is the optional YAML payload: a category catalog and a hospital
// list to preload alongside the empty collections.
type seedData struct {
	Categories map[string][]string `yaml:"categories"`
	Hospitals  []struct {
		Name string `yaml:"name"`
		Zone string `yaml:"zone"`
	} `yaml:"hospitals"`
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Initialize the data directory",
		Long:  "Create empty collection files with headers, and optionally preload categories and hospitals from a YAML seed file.",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML seed file with categories and hospitals")

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

	store := flatfile.NewStore(cfg.Data.Dir)
	if err := repository.InitCollections(store); err != nil {
		return fmt.Errorf("failed to initialize collections: %w", err)
	}
	logger.Info("data directory initialized", "dir", cfg.Data.Dir)

	if seedFile == "" {
		return nil
	}

	raw, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}
	var data seedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	ctx := cmd.Context()
	log := logger.NewLogger()

	categoryRepo := repository.NewCategoryRepository(cfg.Data.Dir)
	for name, subs := range data.Categories {
		if err := categoryRepo.Add(ctx, name); err != nil && !errors.IsConflictError(err) {
			return fmt.Errorf("failed to seed category %q: %w", name, err)
		}
		for _, sub := range subs {
			if err := categoryRepo.AddSub(ctx, name, sub); err != nil && !errors.IsConflictError(err) {
				return fmt.Errorf("failed to seed subcategory %q of %q: %w", sub, name, err)
			}
		}
	}

	entries := make([]*hospital.Hospital, 0, len(data.Hospitals))
	for _, h := range data.Hospitals {
		entry, err := hospital.NewHospital(h.Name, h.Zone)
		if err != nil {
			log.Warnw("skipping invalid seed hospital", "name", h.Name, "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	if len(entries) > 0 {
		hospitalRepo := repository.NewHospitalRepository(store)
		result, err := hospitalRepo.BulkAdd(ctx, entries)
		if err != nil {
			return fmt.Errorf("failed to seed hospitals: %w", err)
		}
		logger.Info("hospitals seeded", "added", result.Added, "skipped", result.Skipped)
	}

	logger.Info("seed complete", "categories", len(data.Categories), "hospitals", len(entries))
	return nil
}
