package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	token, err := svc.Generate("7", "asha@cloudphysician.net", "Asha", authorization.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.UserID)
	assert.Equal(t, "asha@cloudphysician.net", claims.Email)
	assert.Equal(t, "Asha", claims.Name)
	assert.Equal(t, authorization.RoleAdmin, claims.Role)
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", 60).Generate("7", "a@b.c", "A", authorization.RoleMember)
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 60).Verify(token)
	assert.Error(t, err)
}

func TestJWTService_VerifyExpired(t *testing.T) {
	svc := NewJWTService("test-secret", -1)

	token, err := svc.Generate("7", "a@b.c", "A", authorization.RoleMember)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_VerifyGarbage(t *testing.T) {
	_, err := NewJWTService("test-secret", 60).Verify("not.a.token")
	assert.Error(t, err)
}
