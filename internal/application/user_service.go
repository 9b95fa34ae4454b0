package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/petstore-samples/service-petstore/internal/domain/user"
)

// UserService orchestrates user use cases, delegating to the repository for
// everything including the login/logout state machine.
type UserService struct {
	repo   user.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(repo user.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// FindAll returns every user.
func (s *UserService) FindAll(ctx context.Context) []user.User {
	return s.repo.FindAll(ctx)
}

// FindByID returns the user with the given id.
func (s *UserService) FindByID(ctx context.Context, id int64) (*user.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Save stores or replaces the given user.
func (s *UserService) Save(ctx context.Context, u user.User) *user.User {
	stored := s.repo.Save(ctx, u)
	s.logger.Info("user saved", zap.Int64("user_id", stored.ID))
	return stored
}

// Update overwrites the profile fields of an existing user.
func (s *UserService) Update(ctx context.Context, u user.User) (*user.User, error) {
	updated, err := s.repo.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user updated", zap.Int64("user_id", updated.ID))
	return updated, nil
}

// DeleteByID removes the user with the given id.
func (s *UserService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.Int64("user_id", id))
	return nil
}

// SaveAll stores every given user.
func (s *UserService) SaveAll(ctx context.Context, users []user.User) []user.User {
	stored := s.repo.SaveAll(ctx, users)
	s.logger.Info("users saved", zap.Int("count", len(stored)))
	return stored
}

// FindByUsername returns the user with the given username.
func (s *UserService) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

// UpdateByUsername overwrites the profile fields of the user resolved by
// username.
func (s *UserService) UpdateByUsername(ctx context.Context, u user.User, username string) (*user.User, error) {
	updated, err := s.repo.UpdateByUsername(ctx, u, username)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user updated", zap.String("username", username))
	return updated, nil
}

// DeleteByUsername removes the user resolved by username.
func (s *UserService) DeleteByUsername(ctx context.Context, username string) error {
	if err := s.repo.DeleteByUsername(ctx, username); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("username", username))
	return nil
}

// Login runs the logged-out to logged-in transition.
func (s *UserService) Login(ctx context.Context, username, password string) (*user.Session, error) {
	session, err := s.repo.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user logged in", zap.String("username", username))
	return session, nil
}

// Logout runs the logged-in to logged-out transition.
func (s *UserService) Logout(ctx context.Context, username string) (*user.Session, error) {
	session, err := s.repo.Logout(ctx, username)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user logged out", zap.String("username", username))
	return session, nil
}

// DeleteAll clears the user table.
func (s *UserService) DeleteAll(ctx context.Context) {
	s.repo.DeleteAll(ctx)
	s.logger.Info("all users deleted")
}
