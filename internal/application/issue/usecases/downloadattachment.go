package usecases

import (
	"context"
	"io"

	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/storage"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

type DownloadAttachmentQuery struct {
	IssueID  string
	FileName string
}

type DownloadAttachmentUseCase struct {
	files  *storage.AttachmentFiles
	logger logger.Interface
}

func NewDownloadAttachmentUseCase(files *storage.AttachmentFiles, logger logger.Interface) *DownloadAttachmentUseCase {
	return &DownloadAttachmentUseCase{files: files, logger: logger}
}

// Execute returns the stored bytes; the caller closes the reader.
func (uc *DownloadAttachmentUseCase) Execute(ctx context.Context, query DownloadAttachmentQuery) (io.ReadCloser, error) {
	rc, err := uc.files.Open(query.IssueID, query.FileName)
	if err != nil {
		uc.logger.Errorw("failed to open attachment", "issue_id", query.IssueID, "file", query.FileName, "error", err)
		return nil, err
	}
	return rc, nil
}
