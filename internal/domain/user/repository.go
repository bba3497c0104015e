package user

import "context"

type UserRepository interface {
	// GetByLoginID retrieves an active user by login ID.
	GetByLoginID(ctx context.Context, loginID string) (User, error)
}
