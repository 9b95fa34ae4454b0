package user

import "context"

// UserRepository defines the operations of the user table's exclusive owner,
// including the login/logout session state machine.
type UserRepository interface {
	FindAll(ctx context.Context) []User
	FindByID(ctx context.Context, id int64) (*User, error)
	Save(ctx context.Context, u User) *User
	Update(ctx context.Context, u User) (*User, error)
	DeleteByID(ctx context.Context, id int64) error
	SaveAll(ctx context.Context, users []User) []User

	FindByUsername(ctx context.Context, username string) (*User, error)
	UpdateByUsername(ctx context.Context, u User, username string) (*User, error)
	DeleteByUsername(ctx context.Context, username string) error

	Login(ctx context.Context, username, password string) (*Session, error)
	Logout(ctx context.Context, username string) (*Session, error)

	// DeleteAll clears the user table. Exposed for state reset only.
	DeleteAll(ctx context.Context)
}
