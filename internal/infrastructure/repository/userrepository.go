package repository

import (
	"context"
	"fmt"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/user"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/flatfile"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/authorization"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/constants"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
)

var userSchema = flatfile.Schema{"id", "email", "name", "role", "googleChatWebhookUrl"}

type UserRepository struct {
	store *flatfile.Store
}

func NewUserRepository(store *flatfile.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	records, err := r.store.ReadAll(constants.CollectionUsers)
	if err != nil {
		return nil, err
	}
	users := make([]*user.User, 0, len(records))
	for _, rec := range records {
		users = append(users, userFromRecord(rec))
	}
	return users, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	email = user.NormalizeEmail(email)
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if user.NormalizeEmail(u.Email) == email {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found", fmt.Sprintf("email %s", email))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found", fmt.Sprintf("id %s", id))
}

// Upsert keys on the normalized email. A user already on file keeps its id;
// otherwise a new id is assigned and written back to the entity.
func (r *UserRepository) Upsert(ctx context.Context, u *user.User) error {
	u.Email = user.NormalizeEmail(u.Email)
	if u.Email == "" {
		return errors.NewValidationError("email is required")
	}
	if existing, err := r.GetByEmail(ctx, u.Email); err == nil {
		u.ID = existing.ID
	} else if !errors.IsNotFoundError(err) {
		return err
	}
	id, err := r.store.Upsert(constants.CollectionUsers, userToRecord(u), "id", userSchema)
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

func userFromRecord(rec flatfile.Record) *user.User {
	return &user.User{
		ID:                   rec["id"],
		Email:                rec["email"],
		Name:                 rec["name"],
		Role:                 authorization.ParseUserRole(rec["role"]),
		GoogleChatWebhookURL: rec["googleChatWebhookUrl"],
	}
}

func userToRecord(u *user.User) flatfile.Record {
	return flatfile.Record{
		"id":                   u.ID,
		"email":                u.Email,
		"name":                 u.Name,
		"role":                 u.Role.String(),
		"googleChatWebhookUrl": u.GoogleChatWebhookURL,
	}
}
