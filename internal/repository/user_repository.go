package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/petstore-samples/service-petstore/internal/domain"
	"github.com/petstore-samples/service-petstore/internal/domain/user"
	"github.com/petstore-samples/service-petstore/internal/store"
)

// InMemoryUserRepository owns the user table and the login/logout session
// state machine. Username lookups are linear scans; usernames are unique in
// practice but not enforced by a separate index.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users *store.EntityStore[int64, user.User]
}

// NewInMemoryUserRepository creates a user repository over the given table.
func NewInMemoryUserRepository(users *store.EntityStore[int64, user.User]) *InMemoryUserRepository {
	return &InMemoryUserRepository{users: users}
}

// FindAll returns a snapshot of every user in ascending id order.
func (r *InMemoryUserRepository) FindAll(_ context.Context) []user.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.users.All()
}

// FindByID returns the user with the given id.
func (r *InMemoryUserRepository) FindByID(_ context.Context, id int64) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findByID(id)
}

// Save stores or fully replaces the user keyed by its id.
func (r *InMemoryUserRepository) Save(_ context.Context, u user.User) *user.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.users.Put(u.ID, u)
	return &stored
}

// Update resolves the existing user by id and overwrites every profile
// field. The id and the session flag stay untouched.
func (r *InMemoryUserRepository) Update(_ context.Context, u user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, err := r.findByID(u.ID)
	if err != nil {
		return nil, err
	}
	return r.overwriteProfile(u, existing), nil
}

// DeleteByID resolves the user by id and removes it.
func (r *InMemoryUserRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, err := r.findByID(id)
	if err != nil {
		return err
	}
	r.users.Remove(existing.ID)
	return nil
}

// SaveAll stores every given user and returns the stored records.
func (r *InMemoryUserRepository) SaveAll(_ context.Context, users []user.User) []user.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]user.User, len(users))
	for i, u := range users {
		stored[i] = r.users.Put(u.ID, u)
	}
	return stored
}

// FindByUsername scans for the user with the given username.
func (r *InMemoryUserRepository) FindByUsername(_ context.Context, username string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findByUsername(username)
}

// UpdateByUsername resolves the existing user by username and overwrites
// every profile field, including the username itself. The session flag stays
// untouched.
func (r *InMemoryUserRepository) UpdateByUsername(_ context.Context, u user.User, username string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, err := r.findByUsername(username)
	if err != nil {
		return nil, err
	}
	return r.overwriteProfile(u, existing), nil
}

// DeleteByUsername resolves the user by username and removes it.
func (r *InMemoryUserRepository) DeleteByUsername(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, err := r.findByUsername(username)
	if err != nil {
		return err
	}
	r.users.Remove(existing.ID)
	return nil
}

// Login transitions the user's session flag from logged-out to logged-in.
// A user already logged in fails regardless of password correctness; an
// unknown username or wrong password fails with the credentials message.
func (r *InMemoryUserRepository) Login(_ context.Context, username, password string) (*user.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, err := r.findByUsername(username)
	if err == nil && existing.LoggedIn {
		return nil, domain.NewInvalidRequestError(domain.UserAlreadyLoggedInMsg, username)
	}
	if err != nil || existing.Password != password {
		return nil, domain.NewInvalidRequestError(domain.UserBadCredentialsMsg, username, password)
	}
	existing.LoggedIn = true
	r.users.Put(existing.ID, *existing)
	now := time.Now().UTC()
	return &user.Session{
		Message: fmt.Sprintf(domain.LoggedInSessionMsg, now.UnixNano()),
		At:      now,
	}, nil
}

// Logout transitions the user's session flag from logged-in to logged-out.
// A missing user and a user already logged out fail with the same message;
// the API does not distinguish the two.
func (r *InMemoryUserRepository) Logout(_ context.Context, username string) (*user.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, err := r.findByUsername(username)
	if err != nil || !existing.LoggedIn {
		return nil, domain.NewInvalidRequestError(domain.UserAlreadyLoggedOutMsg, username)
	}
	existing.LoggedIn = false
	r.users.Put(existing.ID, *existing)
	now := time.Now().UTC()
	return &user.Session{
		Message: fmt.Sprintf(domain.LoggedOutMsg, now.UnixNano()),
		At:      now,
	}, nil
}

// DeleteAll clears the user table.
func (r *InMemoryUserRepository) DeleteAll(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users.Clear()
}

func (r *InMemoryUserRepository) findByID(id int64) (*user.User, error) {
	u, ok := r.users.Get(id)
	if !ok {
		return nil, domain.NewNotFoundError(domain.UserNotFoundMsg, id)
	}
	return &u, nil
}

func (r *InMemoryUserRepository) findByUsername(username string) (*user.User, error) {
	for _, u := range r.users.All() {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.NewNotFoundError(domain.UsernameNotFoundMsg, username)
}

func (r *InMemoryUserRepository) overwriteProfile(src user.User, dst *user.User) *user.User {
	dst.Username = src.Username
	dst.FirstName = src.FirstName
	dst.LastName = src.LastName
	dst.Email = src.Email
	dst.Password = src.Password
	dst.Phone = src.Phone
	dst.Status = src.Status
	updated := r.users.Put(dst.ID, *dst)
	return &updated
}
