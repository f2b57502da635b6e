package users

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "user not found" }

// Repo defines the account lookup contract.
type Repo interface {
	GetByID(ctx context.Context, userID int64) (User, error)
}
