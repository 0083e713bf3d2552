package repository

import (
	"context"
	"fmt"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/team"
	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/user"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/flatfile"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/constants"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
)

var teamSchema = flatfile.Schema{"uid", "name", "email"}

type TeamRepository struct {
	store *flatfile.Store
}

func NewTeamRepository(store *flatfile.Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) List(ctx context.Context) ([]*team.Member, error) {
	records, err := r.store.ReadAll(constants.CollectionTeamMembers)
	if err != nil {
		return nil, err
	}
	members := make([]*team.Member, 0, len(records))
	for _, rec := range records {
		members = append(members, &team.Member{UID: rec["uid"], Name: rec["name"], Email: rec["email"]})
	}
	return members, nil
}

func (r *TeamRepository) Add(ctx context.Context, m *team.Member) error {
	email := user.NormalizeEmail(m.Email)
	return r.store.Mutate(constants.CollectionTeamMembers, teamSchema, func(records []flatfile.Record) ([]flatfile.Record, error) {
		for _, rec := range records {
			if user.NormalizeEmail(rec["email"]) == email {
				return nil, errors.NewConflictError("team member already exists", fmt.Sprintf("email %s", email))
			}
		}
		return append(records, flatfile.Record{"uid": m.UID, "name": m.Name, "email": m.Email}), nil
	})
}

func (r *TeamRepository) RemoveByUID(ctx context.Context, uid string) error {
	return r.store.Mutate(constants.CollectionTeamMembers, teamSchema, func(records []flatfile.Record) ([]flatfile.Record, error) {
		kept := records[:0]
		found := false
		for _, rec := range records {
			if rec["uid"] == uid {
				found = true
				continue
			}
			kept = append(kept, rec)
		}
		if !found {
			return nil, errors.NewNotFoundError("team member not found", fmt.Sprintf("uid %s", uid))
		}
		return kept, nil
	})
}
