package usecases

import (
	"context"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

type ExportIssuesUseCase struct {
	issueRepo issue.Repository
	logger    logger.Interface
}

func NewExportIssuesUseCase(issueRepo issue.Repository, logger logger.Interface) *ExportIssuesUseCase {
	return &ExportIssuesUseCase{issueRepo: issueRepo, logger: logger}
}

// Execute dumps the whole issue collection in the storage schema.
func (uc *ExportIssuesUseCase) Execute(ctx context.Context) ([]byte, error) {
	data, err := uc.issueRepo.ExportCSV(ctx)
	if err != nil {
		uc.logger.Errorw("failed to export issues", "error", err)
		return nil, err
	}
	return data, nil
}
