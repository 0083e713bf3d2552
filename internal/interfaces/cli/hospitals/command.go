// Package hospitals implements the `tracker hospitals` maintenance commands.
package hospitals

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/config"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/flatfile"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/repository"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/storage"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hospitals",
		Short: "Hospital registry maintenance",
	}

	syncCmd := &cobra.Command{
		Use:   "sync-zones",
		Short: "Rewrite issue zones from the hospital registry",
		Long:  "Every issue whose hospital appears in the registry gets that hospital's current zone. Issues logged against unknown hospitals keep their zone.",
		RunE:  runSyncZones,
	}
	syncCmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(syncCmd)
	return cmd
}

func runSyncZones(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	store := flatfile.NewStore(cfg.Data.Dir)
	files := storage.NewAttachmentFiles(cfg.Data.Dir)
	hospitalRepo := repository.NewHospitalRepository(store)
	issueRepo := repository.NewIssueRepository(store, files)

	ctx := cmd.Context()
	hospitals, err := hospitalRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load hospitals: %w", err)
	}

	zoneByHospital := make(map[string]string, len(hospitals))
	for _, h := range hospitals {
		zoneByHospital[h.Name] = h.Zone
	}

	changed, err := issueRepo.SyncZones(ctx, zoneByHospital)
	if err != nil {
		return fmt.Errorf("failed to sync zones: %w", err)
	}

	logger.Info("zone sync complete", "hospitals", len(hospitals), "issues_updated", changed)
	return nil
}
