package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"panelrecut/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	u.ID = "user-1"
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct{}

func (f *fakePasswordHasher) GenerateSalt() (string, error) { return "salt", nil }
func (f *fakePasswordHasher) Hash(salt, password string) (string, error) {
	return "hash-" + salt + "-" + password, nil
}
func (f *fakePasswordHasher) Compare(hash, salt, password string) error {
	if hash != "hash-"+salt+"-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct{}

func (f *fakeTokenIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	return "token-" + userID, nil
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo(), &fakePasswordHasher{}, &fakeTokenIssuer{}, time.Hour)
		user, err := svc.SignUp(ctx, "Jane@AquaDynamics.example", "supersecret", "Jane")
		require.NoError(t, err)
		assert.Equal(t, "jane@aquadynamics.example", user.Email)
		assert.Equal(t, "hash-salt-supersecret", user.PasswordHash)
		assert.NotEmpty(t, user.ID)
	})

	t.Run("invalid email", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo(), &fakePasswordHasher{}, &fakeTokenIssuer{}, time.Hour)
		_, err := svc.SignUp(ctx, "nope", "supersecret", "Jane")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("short password", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo(), &fakePasswordHasher{}, &fakeTokenIssuer{}, time.Hour)
		_, err := svc.SignUp(ctx, "jane@aquadynamics.example", "short", "Jane")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAuthService(repo, &fakePasswordHasher{}, &fakeTokenIssuer{}, time.Hour)
		_, err := svc.SignUp(ctx, "jane@aquadynamics.example", "supersecret", "Jane")
		require.NoError(t, err)
		_, err = svc.SignUp(ctx, "jane@aquadynamics.example", "supersecret", "Jane")
		require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, &fakePasswordHasher{}, &fakeTokenIssuer{}, time.Hour)
	_, err := svc.SignUp(ctx, "jane@aquadynamics.example", "supersecret", "Jane")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		token, err := svc.Login(ctx, "jane@aquadynamics.example", "supersecret")
		require.NoError(t, err)
		assert.Equal(t, "token-user-1", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "jane@aquadynamics.example", "wrong")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@aquadynamics.example", "supersecret")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
