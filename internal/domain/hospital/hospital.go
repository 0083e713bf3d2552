// Package hospital holds the hospital taxonomy entity. Hospitals carry no
// numeric id; the case-insensitively unique name is the natural key.
package hospital

import (
	"context"
	"strings"

	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
)

type Hospital struct {
	Name string
	Zone string
}

func NewHospital(name, zone string) (*Hospital, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("hospital name is required")
	}
	return &Hospital{Name: name, Zone: strings.TrimSpace(zone)}, nil
}

// BulkAddResult reports the outcome of a batch insert. Per-line failures
// are counted, never fatal to the batch.
type BulkAddResult struct {
	Added   int
	Skipped int
}

// Repository is the hospital collection contract. The list is kept sorted
// by lower-cased name.
type Repository interface {
	List(ctx context.Context) ([]*Hospital, error)

	// Add rejects a duplicate name (case-insensitive) with a Conflict.
	Add(ctx context.Context, h *Hospital) error

	// Update renames or rezones the hospital identified by name. NotFound
	// when absent.
	Update(ctx context.Context, name string, updated *Hospital) error

	Delete(ctx context.Context, name string) error

	// BulkAdd inserts every non-duplicate entry in one rewrite and counts
	// duplicates as skipped.
	BulkAdd(ctx context.Context, entries []*Hospital) (*BulkAddResult, error)
}
