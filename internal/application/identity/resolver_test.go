package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/user"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/authorization"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

type mockUserRepo struct {
	users map[string]*user.User
}

func newMockUserRepo(users ...*user.User) *mockUserRepo {
	m := &mockUserRepo{users: map[string]*user.User{}}
	for _, u := range users {
		m.users[u.Email] = u
	}
	return m
}

func (m *mockUserRepo) List(ctx context.Context) ([]*user.User, error) {
	var out []*user.User
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if u, ok := m.users[user.NormalizeEmail(email)]; ok {
		return u, nil
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepo) Upsert(ctx context.Context, u *user.User) error {
	if u.ID == "" {
		u.ID = "1"
	}
	m.users[user.NormalizeEmail(u.Email)] = u
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func TestResolver_PromotesOnAllowList(t *testing.T) {
	repo := newMockUserRepo(&user.User{ID: "5", Email: "asha@cloudphysician.net", Name: "Asha", Role: authorization.RoleMember})
	r := NewResolver(repo, []string{"ASHA@cloudphysician.net"}, &mockLogger{})

	p, err := r.Resolve(context.Background(), "asha@cloudphysician.net")
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleAdmin, p.Role)

	stored, err := repo.GetByEmail(context.Background(), "asha@cloudphysician.net")
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleAdmin, stored.Role)
}

func TestResolver_DemotesOffAllowList(t *testing.T) {
	repo := newMockUserRepo(&user.User{ID: "5", Email: "asha@cloudphysician.net", Name: "Asha", Role: authorization.RoleAdmin})
	r := NewResolver(repo, nil, &mockLogger{})

	p, err := r.Resolve(context.Background(), "asha@cloudphysician.net")
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleMember, p.Role)

	stored, err := repo.GetByEmail(context.Background(), "asha@cloudphysician.net")
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleMember, stored.Role)
}

func TestResolver_UnknownUserAborts(t *testing.T) {
	r := NewResolver(newMockUserRepo(), nil, &mockLogger{})

	_, err := r.Resolve(context.Background(), "ghost@cloudphysician.net")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestResolver_ResolveOrCreate_LazyCreate(t *testing.T) {
	repo := newMockUserRepo()
	r := NewResolver(repo, []string{"boss@cloudphysician.net"}, &mockLogger{})

	p, err := r.ResolveOrCreate(context.Background(), "Boss@cloudphysician.net", "")
	require.NoError(t, err)
	assert.Equal(t, "boss@cloudphysician.net", p.Email)
	assert.Equal(t, "boss", p.Name)
	assert.Equal(t, authorization.RoleAdmin, p.Role)
	assert.NotEmpty(t, p.UserID)
}

func TestResolver_ResolveOrCreate_RefreshesName(t *testing.T) {
	repo := newMockUserRepo(&user.User{ID: "5", Email: "asha@cloudphysician.net", Name: "asha", Role: authorization.RoleMember})
	r := NewResolver(repo, nil, &mockLogger{})

	p, err := r.ResolveOrCreate(context.Background(), "asha@cloudphysician.net", "Asha K")
	require.NoError(t, err)
	assert.Equal(t, "Asha K", p.Name)
	assert.Equal(t, "5", p.UserID)
}
