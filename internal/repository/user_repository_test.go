package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petstore-samples/service-petstore/internal/domain"
	"github.com/petstore-samples/service-petstore/internal/domain/user"
	"github.com/petstore-samples/service-petstore/internal/store"
)

func newSeededUserRepository() *InMemoryUserRepository {
	table := store.New[int64, user.User]()
	SeedUsers(table)
	return NewInMemoryUserRepository(table)
}

func newTestUser(id int64, username string) user.User {
	return user.User{
		ID:        id,
		Username:  username,
		FirstName: "Maria",
		LastName:  "Ionescu",
		Email:     "maria@email.com",
		Password:  "#Secret99x",
		Phone:     "+40700 123 456",
		Status:    1,
	}
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	repo := newSeededUserRepository()

	_, err := repo.FindByID(context.Background(), 999)

	var notFound *domain.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.EqualError(t, err, "User with id 999 not found")
}

func TestUserRepository_SaveRoundTrip(t *testing.T) {
	repo := newSeededUserRepository()
	u := newTestUser(4, "maria.io")

	stored := repo.Save(context.Background(), u)
	require.Equal(t, u, *stored)

	found, err := repo.FindByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, u, *found)
}

func TestUserRepository_SaveAll(t *testing.T) {
	repo := newSeededUserRepository()
	batch := []user.User{newTestUser(4, "maria.io"), newTestUser(5, "ana.pop")}

	stored := repo.SaveAll(context.Background(), batch)

	require.Len(t, stored, 2)
	assert.Len(t, repo.FindAll(context.Background()), 5)
}

func TestUserRepository_FindByUsername(t *testing.T) {
	repo := newSeededUserRepository()

	found, err := repo.FindByUsername(context.Background(), "Username2")

	require.NoError(t, err)
	assert.Equal(t, int64(2), found.ID)
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	repo := newSeededUserRepository()

	_, err := repo.FindByUsername(context.Background(), "ghost")

	assert.EqualError(t, err, "User with username ghost not found")
}

func TestUserRepository_Update_PreservesSessionFlag(t *testing.T) {
	repo := newSeededUserRepository()
	ctx := context.Background()

	_, err := repo.Login(ctx, "Username1", "#Password1")
	require.NoError(t, err)

	u := newTestUser(1, "Username1")
	updated, err := repo.Update(ctx, u)
	require.NoError(t, err)

	assert.Equal(t, "Maria", updated.FirstName)
	assert.True(t, updated.LoggedIn, "generic update must not touch the session flag")
}

func TestUserRepository_UpdateByUsername(t *testing.T) {
	repo := newSeededUserRepository()

	u := newTestUser(0, "maria.io")
	updated, err := repo.UpdateByUsername(context.Background(), u, "Username3")

	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.ID, "id is resolved from the stored record")
	assert.Equal(t, "maria.io", updated.Username)
	assert.Equal(t, "Maria", updated.FirstName)
	assert.False(t, updated.LoggedIn)
}

func TestUserRepository_UpdateByUsername_NotFound(t *testing.T) {
	repo := newSeededUserRepository()

	_, err := repo.UpdateByUsername(context.Background(), newTestUser(0, "x"), "ghost")

	assert.EqualError(t, err, "User with username ghost not found")
}

func TestUserRepository_DeleteByUsername(t *testing.T) {
	repo := newSeededUserRepository()

	require.NoError(t, repo.DeleteByUsername(context.Background(), "Username2"))

	assert.Len(t, repo.FindAll(context.Background()), 2)
	_, err := repo.FindByUsername(context.Background(), "Username2")
	assert.EqualError(t, err, "User with username Username2 not found")
}

func TestUserRepository_Login(t *testing.T) {
	repo := newSeededUserRepository()
	ctx := context.Background()

	before := time.Now()
	session, err := repo.Login(ctx, "Username1", "#Password1")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(session.Message, "Logged in user session: "))
	nanos, err := strconv.ParseInt(strings.TrimPrefix(session.Message, "Logged in user session: "), 10, 64)
	require.NoError(t, err)
	stamp := time.Unix(0, nanos)
	assert.WithinDuration(t, before, stamp, 5*time.Second)
	assert.WithinDuration(t, session.At, stamp, time.Millisecond)

	found, err := repo.FindByUsername(ctx, "Username1")
	require.NoError(t, err)
	assert.True(t, found.LoggedIn)
}

func TestUserRepository_Login_AlreadyLoggedIn(t *testing.T) {
	repo := newSeededUserRepository()
	ctx := context.Background()

	_, err := repo.Login(ctx, "Username1", "#Password1")
	require.NoError(t, err)

	// A second login fails with or without the right password.
	for _, password := range []string{"#Password1", "wrong"} {
		_, err = repo.Login(ctx, "Username1", password)
		var invalid *domain.InvalidRequestError
		require.True(t, errors.As(err, &invalid))
		assert.EqualError(t, err, "User with username Username1 already logged in")
	}
}

func TestUserRepository_Login_BadCredentials(t *testing.T) {
	repo := newSeededUserRepository()
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "Username1", "nope"},
		{"unknown username", "ghost", "#Password1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Login(ctx, tt.username, tt.password)
			var invalid *domain.InvalidRequestError
			require.True(t, errors.As(err, &invalid))
			assert.EqualError(t, err, fmt.Sprintf("User with username %s and password %s not found", tt.username, tt.password))
		})
	}
}

func TestUserRepository_Logout(t *testing.T) {
	repo := newSeededUserRepository()
	ctx := context.Background()

	_, err := repo.Login(ctx, "Username2", "#Password2")
	require.NoError(t, err)

	session, err := repo.Logout(ctx, "Username2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(session.Message, "Logged out: "))

	found, err := repo.FindByUsername(ctx, "Username2")
	require.NoError(t, err)
	assert.False(t, found.LoggedIn)
}

func TestUserRepository_Logout_AlreadyLoggedOut(t *testing.T) {
	repo := newSeededUserRepository()
	ctx := context.Background()

	// Same message whether the user never logged in or does not exist.
	_, err := repo.Logout(ctx, "Username1")
	assert.EqualError(t, err, "User with username Username1 already logged out")

	_, err = repo.Logout(ctx, "ghost")
	assert.EqualError(t, err, "User with username ghost already logged out")
}

func TestUserRepository_LoginLogoutCycle(t *testing.T) {
	repo := newSeededUserRepository()
	ctx := context.Background()

	_, err := repo.Login(ctx, "Username3", "#Password3")
	require.NoError(t, err)
	_, err = repo.Logout(ctx, "Username3")
	require.NoError(t, err)
	_, err = repo.Login(ctx, "Username3", "#Password3")
	require.NoError(t, err)

	// Double logout after the cycle fails again.
	_, err = repo.Logout(ctx, "Username3")
	require.NoError(t, err)
	_, err = repo.Logout(ctx, "Username3")
	assert.EqualError(t, err, "User with username Username3 already logged out")
}

func TestUserRepository_DeleteAll(t *testing.T) {
	repo := newSeededUserRepository()

	repo.DeleteAll(context.Background())

	assert.Empty(t, repo.FindAll(context.Background()))
}
