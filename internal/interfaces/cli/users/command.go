// Package users implements the `tracker users` maintenance commands.
package users

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/user"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/config"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/flatfile"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/repository"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/authorization"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

var (
	env  string
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User roster maintenance",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Bulk add users from a CSV file",
		Long:  "Read a CSV file with email, name and optional role columns and add every user not already on the roster.",
		RunE:  runAdd,
	}
	addCmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	addCmd.Flags().StringVarP(&file, "file", "f", "", "CSV file with email,name,role columns")
	_ = addCmd.MarkFlagRequired("file")

	cmd.AddCommand(addCmd)
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open user file: %w", err)
	}
	defer f.Close()

	records, err := flatfile.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to parse user file: %w", err)
	}

	store := flatfile.NewStore(cfg.Data.Dir)
	userRepo := repository.NewUserRepository(store)

	ctx := cmd.Context()
	added, skipped := 0, 0
	for _, rec := range records {
		email := rec["email"]
		if email == "" {
			skipped++
			continue
		}

		if _, err := userRepo.GetByEmail(ctx, email); err == nil {
			skipped++
			continue
		} else if !errors.IsNotFoundError(err) {
			return err
		}

		u, err := user.NewUser(email, rec["name"], authorization.ParseUserRole(rec["role"]))
		if err != nil {
			logger.Warn("skipping invalid user entry", "email", email, "error", err)
			skipped++
			continue
		}
		if err := userRepo.Upsert(ctx, u); err != nil {
			return fmt.Errorf("failed to add user %s: %w", email, err)
		}
		added++
	}

	logger.Info("user import complete", "added", added, "skipped", skipped)
	return nil
}
