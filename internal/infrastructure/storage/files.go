// Package storage keeps uploaded attachment bytes on disk, one directory per
// issue under the data directory.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/constants"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
)

// allowedExtensions is the upload allow-list, matched case-insensitively.
var allowedExtensions = map[string]bool{
	"txt": true, "pdf": true, "png": true, "jpg": true, "jpeg": true,
	"gif": true, "doc": true, "docx": true, "xls": true, "xlsx": true,
}

// AllowedFile reports whether the filename carries an allowed extension.
// A name without a dot is rejected.
func AllowedFile(name string) bool {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(name[i+1:])]
}

// SanitizeFilename strips directory components and characters that could
// escape the issue's directory. The result may be empty for degenerate input.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return -1
		}
		return r
	}, name)
	if name == "." || name == ".." {
		return ""
	}
	return name
}

type AttachmentFiles struct {
	root string
}

func NewAttachmentFiles(dataDir string) *AttachmentFiles {
	return &AttachmentFiles{root: filepath.Join(dataDir, constants.AttachmentFilesDir)}
}

func (s *AttachmentFiles) issueDir(issueID string) string {
	return filepath.Join(s.root, issueID)
}

// Save writes the upload under the issue's directory and returns the stored
// filename. The name is sanitized and checked against the extension
// allow-list before anything touches disk.
func (s *AttachmentFiles) Save(issueID, filename string, content io.Reader) (string, error) {
	name := SanitizeFilename(filename)
	if name == "" {
		return "", errors.NewValidationError("invalid file name")
	}
	if !AllowedFile(name) {
		return "", errors.NewValidationError("file type not allowed", fmt.Sprintf("file %s", name))
	}
	dir := s.issueDir(issueID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create attachment dir: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create attachment file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, content); err != nil {
		return "", fmt.Errorf("write attachment file: %w", err)
	}
	return name, nil
}

// Open returns a reader over a stored attachment. The caller closes it.
func (s *AttachmentFiles) Open(issueID, filename string) (io.ReadCloser, error) {
	name := SanitizeFilename(filename)
	if name == "" {
		return nil, errors.NewValidationError("invalid file name")
	}
	f, err := os.Open(filepath.Join(s.issueDir(issueID), name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("attachment file not found", fmt.Sprintf("file %s", name))
		}
		return nil, fmt.Errorf("open attachment file: %w", err)
	}
	return f, nil
}

// Remove deletes a single stored attachment. A missing file is not an error.
func (s *AttachmentFiles) Remove(issueID, filename string) error {
	name := SanitizeFilename(filename)
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.issueDir(issueID), name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove attachment file: %w", err)
	}
	return nil
}

// RemoveAll deletes the issue's whole attachment directory.
func (s *AttachmentFiles) RemoveAll(issueID string) error {
	if err := os.RemoveAll(s.issueDir(issueID)); err != nil {
		return fmt.Errorf("remove attachment dir: %w", err)
	}
	return nil
}
