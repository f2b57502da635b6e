package users

import "time"

// User is an account record. The identity subsystem itself (login, sessions)
// lives elsewhere; this package only resolves numeric IDs to accounts.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
