package user

import "time"

// User is a store account. LoggedIn is the session flag governed exclusively
// by Login/Logout; generic updates never touch it.
type User struct {
	ID        int64  `json:"id" binding:"required,gt=0"`
	Username  string `json:"username" binding:"required,min=3,max=30"`
	FirstName string `json:"firstName" binding:"required,min=3,max=30"`
	LastName  string `json:"lastName" binding:"required,min=3,max=30"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,password"`
	Phone     string `json:"phone" binding:"required,rophone"`
	Status    int32  `json:"userStatus"`
	LoggedIn  bool   `json:"loggedIn"`
}

// Session is the payload returned by a successful login or logout. Message
// embeds the same timestamp carried in At; it has no meaning beyond
// uniqueness and ordering for observability.
type Session struct {
	Message string    `json:"message"`
	At      time.Time `json:"timestamp"`
}
