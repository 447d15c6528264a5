package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	byEmail map[string]*User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: make(map[string]*User)}
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) Create(ctx context.Context, u *User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return ErrEmailAlreadyUsed
	}
	u.ID = "user-" + u.Email
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return nil
}

// fakeHasher prefixes instead of hashing; good enough to verify wiring.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (fakeHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

func register(t *testing.T, svc Service, email, role string) *User {
	t.Helper()
	u, err := svc.Register(context.Background(), RegisterRequest{
		Email:    email,
		Password: "s3cret-password",
		FullName: "Jane Roe",
		Role:     role,
	})
	require.NoError(t, err)
	return u
}

func TestRegister(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeHasher{})

	u := register(t, svc, "Jane@Example.com", RoleGuest)

	assert.Equal(t, "jane@example.com", u.Email)
	assert.Equal(t, "hashed:s3cret-password", u.PasswordHash)
	assert.False(t, u.IsTenant())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeHasher{})
	register(t, svc, "jane@example.com", RoleGuest)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "JANE@example.com",
		Password: "s3cret-password",
		FullName: "Impostor",
		Role:     RoleGuest,
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestRegister_InvalidRole(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeHasher{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "jane@example.com",
		Password: "s3cret-password",
		FullName: "Jane Roe",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeHasher{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "jane@example.com",
		Password: "short",
		FullName: "Jane Roe",
		Role:     RoleGuest,
	})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeHasher{})
	register(t, svc, "jane@example.com", RoleTenant)

	u, err := svc.Login(context.Background(), "jane@example.com", "s3cret-password")
	require.NoError(t, err)
	assert.True(t, u.IsTenant())

	_, err = svc.Login(context.Background(), "jane@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "s3cret-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
