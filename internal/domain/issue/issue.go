// Package issue holds the issue aggregate, its child collections and the
// repository contracts over the flat-file store.
package issue

import (
	"time"

	vo "github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue/valueobjects"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/utils"
)

// Issue is one tracked task. Timestamp fields keep their stored string
// representation: existing data sets carry several timestamp generations and
// unparseable values must round-trip untouched.
type Issue struct {
	ID             string
	HospitalUnit   string
	Zone           string
	Priority       vo.Priority
	Category       string
	TaskName       string
	Description    string
	MainOwner      string
	CoOwners       []string
	DueDate        string
	Status         vo.Status
	DateLogged     string
	DateClosed     string
	CreatedBy      string
	LastModified   string
	LastModifiedBy string
	ResolvedBy     string
	StepsTaken     string
	ReviewNotes    string
}

// NewIssue creates an open issue logged at now.
func NewIssue(hospitalUnit, zone, category, taskName, description, mainOwner string,
	coOwners []string, priority vo.Priority, dueDate, createdBy string, now time.Time) (*Issue, error) {

	if taskName == "" {
		return nil, errors.NewValidationError("task name is required")
	}
	if hospitalUnit == "" {
		return nil, errors.NewValidationError("hospital unit is required")
	}
	if category == "" {
		return nil, errors.NewValidationError("category is required")
	}

	ts := utils.FormatTimestamp(now)
	return &Issue{
		HospitalUnit:   hospitalUnit,
		Zone:           zone,
		Priority:       priority,
		Category:       category,
		TaskName:       taskName,
		Description:    description,
		MainOwner:      mainOwner,
		CoOwners:       coOwners,
		DueDate:        dueDate,
		Status:         vo.StatusOpen,
		DateLogged:     ts,
		DateClosed:     "",
		CreatedBy:      createdBy,
		LastModified:   ts,
		LastModifiedBy: createdBy,
	}, nil
}

// IsClosed reports the authoritative closed state: a populated dateClosed.
// The status field is redundant and may lag; listings reconcile it.
func (i *Issue) IsClosed() bool {
	return i.DateClosed != ""
}

// Close stamps the issue closed. Closing an already closed issue is a no-op
// reported to the caller as informational.
func (i *Issue) Close(by string, now time.Time) bool {
	if i.IsClosed() {
		return false
	}
	i.DateClosed = utils.FormatTimestamp(now)
	i.Status = vo.StatusClosed
	i.ResolvedBy = by
	i.Touch(by, now)
	return true
}

// NeedsStatusSync reports a violated status/dateClosed invariant.
func (i *Issue) NeedsStatusSync() bool {
	return i.IsClosed() && i.Status != vo.StatusClosed
}

// Touch records a modification.
func (i *Issue) Touch(by string, now time.Time) {
	i.LastModified = utils.FormatTimestamp(now)
	i.LastModifiedBy = by
}

// LoggedAt parses the creation timestamp; ok is false for malformed values.
func (i *Issue) LoggedAt() (time.Time, bool) {
	return utils.ParseTimestamp(i.DateLogged)
}

// ClosedAt parses the close timestamp; ok is false when open or malformed.
func (i *Issue) ClosedAt() (time.Time, bool) {
	return utils.ParseTimestamp(i.DateClosed)
}

// IsOwnedBy reports whether name is the main owner or a co-owner.
func (i *Issue) IsOwnedBy(name string) bool {
	if name == "" {
		return false
	}
	if i.MainOwner == name {
		return true
	}
	for _, co := range i.CoOwners {
		if co == name {
			return true
		}
	}
	return false
}
