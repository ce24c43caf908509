package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/daniel/interview-coach/internal/config"
	"github.com/daniel/interview-coach/internal/db"
	"github.com/daniel/interview-coach/internal/types"
)

// fakeDBClient is an in-memory DBClient for unit tests.
type fakeDBClient struct {
	users map[uuid.UUID]*db.User
}

func newFakeDBClient() *fakeDBClient {
	return &fakeDBClient{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeDBClient) CheckEmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDBClient) CreateUser(_ context.Context, name, email string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	f.users[id] = &db.User{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id, nil
}

func (f *fakeDBClient) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeDBClient) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeDBClient) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	u, ok := f.users[userID]
	if !ok {
		return nil
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	return nil
}

// fastPasswordConfig uses the minimum bcrypt cost to keep tests quick.
func fastPasswordConfig() *config.PasswordConfig {
	return &config.PasswordConfig{BcryptCost: bcrypt.MinCost}
}

func TestToAPIUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		now := time.Now()
		dbUser := &db.User{
			ID:           uuid.New(),
			Name:         "Jordan Lee",
			Email:        "jordan@example.com",
			PasswordHash: "hashed-password",
			PasswordSet:  true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		typesUser := toAPIUser(dbUser)
		require.NotNil(t, typesUser)
		assert.Equal(t, dbUser.ID, typesUser.ID)
		assert.Equal(t, dbUser.Name, typesUser.Name)
		assert.Equal(t, dbUser.Email, typesUser.Email)
		assert.Equal(t, dbUser.PasswordSet, typesUser.PasswordSet)
		assert.Equal(t, dbUser.CreatedAt, typesUser.CreatedAt)
		assert.Equal(t, dbUser.UpdatedAt, typesUser.UpdatedAt)
	})

	t.Run("nil user", func(t *testing.T) {
		assert.Nil(t, toAPIUser(nil))
	})
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := NewUserService(newFakeDBClient(), fastPasswordConfig())

		user, err := svc.Register(ctx, &types.CreateUserRequest{
			Name:     "Jordan Lee",
			Email:    "jordan@example.com",
			Password: "secure-password-123",
		})
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Jordan Lee", user.Name)
		assert.Equal(t, "jordan@example.com", user.Email)
		assert.True(t, user.PasswordSet)
		assert.NotEqual(t, uuid.Nil, user.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := NewUserService(newFakeDBClient(), fastPasswordConfig())

		req := &types.CreateUserRequest{
			Name:     "Jordan Lee",
			Email:    "jordan@example.com",
			Password: "secure-password-123",
		}
		_, err := svc.Register(ctx, req)
		require.NoError(t, err)

		_, err = svc.Register(ctx, req)
		require.Error(t, err)
		var dupErr *ErrEmailAlreadyExists
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "jordan@example.com", dupErr.Email)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T, svc *UserService) *types.User {
		t.Helper()
		user, err := svc.Register(ctx, &types.CreateUserRequest{
			Name:     "Jordan Lee",
			Email:    "jordan@example.com",
			Password: "secure-password-123",
		})
		require.NoError(t, err)
		return user
	}

	t.Run("success", func(t *testing.T) {
		svc := NewUserService(newFakeDBClient(), fastPasswordConfig())
		registered := register(t, svc)

		user, err := svc.Login(ctx, &types.LoginRequest{
			Email:    "jordan@example.com",
			Password: "secure-password-123",
		})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := NewUserService(newFakeDBClient(), fastPasswordConfig())
		register(t, svc)

		user, err := svc.Login(ctx, &types.LoginRequest{
			Email:    "jordan@example.com",
			Password: "wrong-password",
		})
		assert.Nil(t, user)
		var credErr *ErrInvalidCredentials
		assert.ErrorAs(t, err, &credErr)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := NewUserService(newFakeDBClient(), fastPasswordConfig())

		user, err := svc.Login(ctx, &types.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secure-password-123",
		})
		assert.Nil(t, user)
		var credErr *ErrInvalidCredentials
		assert.ErrorAs(t, err, &credErr)
	})

	t.Run("password not set", func(t *testing.T) {
		fake := newFakeDBClient()
		svc := NewUserService(fake, fastPasswordConfig())

		// A user row without a password must not be able to log in.
		id, err := fake.CreateUser(ctx, "No Password", "nopass@example.com")
		require.NoError(t, err)
		require.False(t, fake.users[id].PasswordSet)

		user, err := svc.Login(ctx, &types.LoginRequest{
			Email:    "nopass@example.com",
			Password: "anything",
		})
		assert.Nil(t, user)
		var credErr *ErrInvalidCredentials
		assert.ErrorAs(t, err, &credErr)
	})
}

func TestUserService_GetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := NewUserService(newFakeDBClient(), fastPasswordConfig())
		registered, err := svc.Register(ctx, &types.CreateUserRequest{
			Name:     "Jordan Lee",
			Email:    "jordan@example.com",
			Password: "secure-password-123",
		})
		require.NoError(t, err)

		user, err := svc.GetUser(ctx, registered.ID)
		require.NoError(t, err)
		assert.Equal(t, registered.Email, user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewUserService(newFakeDBClient(), fastPasswordConfig())

		user, err := svc.GetUser(ctx, uuid.New())
		assert.Nil(t, user)
		var notFound *ErrUserNotFound
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestUserService_UpdatePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := NewUserService(newFakeDBClient(), fastPasswordConfig())
		registered, err := svc.Register(ctx, &types.CreateUserRequest{
			Name:     "Jordan Lee",
			Email:    "jordan@example.com",
			Password: "old-password-123",
		})
		require.NoError(t, err)

		err = svc.UpdatePassword(ctx, registered.ID, "old-password-123", "new-password-456")
		require.NoError(t, err)

		// Old password no longer works, new password does.
		_, err = svc.Login(ctx, &types.LoginRequest{Email: "jordan@example.com", Password: "old-password-123"})
		assert.Error(t, err)

		_, err = svc.Login(ctx, &types.LoginRequest{Email: "jordan@example.com", Password: "new-password-456"})
		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc := NewUserService(newFakeDBClient(), fastPasswordConfig())
		registered, err := svc.Register(ctx, &types.CreateUserRequest{
			Name:     "Jordan Lee",
			Email:    "jordan@example.com",
			Password: "old-password-123",
		})
		require.NoError(t, err)

		err = svc.UpdatePassword(ctx, registered.ID, "not-the-password", "new-password-456")
		var mismatch *ErrPasswordMismatch
		assert.ErrorAs(t, err, &mismatch)
	})

	t.Run("user not found", func(t *testing.T) {
		svc := NewUserService(newFakeDBClient(), fastPasswordConfig())

		err := svc.UpdatePassword(ctx, uuid.New(), "anything", "new-password-456")
		var notFound *ErrUserNotFound
		assert.ErrorAs(t, err, &notFound)
	})
}
