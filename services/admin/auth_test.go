package admin

import (
	"testing"

	"expertbook/models"
	"expertbook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	byEmail map[string]models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{byEmail: map[string]models.Admin{}}
}

func (f *fakeAdminRepo) Create(a *models.Admin) (*models.Admin, error) {
	stored := *a
	stored.ID = primitive.NewObjectID()
	f.byEmail[stored.Email] = stored
	return &stored, nil
}

func (f *fakeAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	if a, ok := f.byEmail[email]; ok {
		return &a, nil
	}
	return nil, nil
}

func (f *fakeAdminRepo) GetByID(id primitive.ObjectID) (*models.Admin, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, nil
}

func newAuthService() (*DefaultAdminService, *fakeAdminRepo) {
	repo := newFakeAdminRepo()
	return &DefaultAdminService{
		Repo:      repo,
		JWTSecret: []byte("test-secret"),
	}, repo
}

func TestSignUpHashesPassword(t *testing.T) {
	svc, repo := newAuthService()

	created, err := svc.SignUp("Root Admin", "root@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())

	stored := repo.byEmail["root@example.com"]
	assert.NotEqual(t, "hunter2hunter2", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2hunter2")))
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.SignUp("Root Admin", "root@example.com", "hunter2hunter2")
	require.NoError(t, err)

	_, err = svc.SignUp("Other Admin", "root@example.com", "different-pass")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestSignInIssuesUsableToken(t *testing.T) {
	svc, _ := newAuthService()

	created, err := svc.SignUp("Root Admin", "root@example.com", "hunter2hunter2")
	require.NoError(t, err)

	resp, err := svc.SignIn("root@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, created.ID.Hex(), resp.ID)

	sub, err := utils.ExtractIDFromToken(svc.JWTSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID.Hex(), sub)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.SignUp("Root Admin", "root@example.com", "hunter2hunter2")
	require.NoError(t, err)

	_, err = svc.SignIn("root@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn("nobody@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRevokeTokenWithoutCacheIsNoop(t *testing.T) {
	svc, _ := newAuthService()
	assert.NoError(t, svc.RevokeToken(primitive.NewObjectID().Hex()))
}
