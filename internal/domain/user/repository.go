package user

import "context"

type UserRepository interface {
	// Create inserts a new user and returns it with ID and CreatedAt set.
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (User, error)

	// ExistsByEmailOrUsername is the duplicate-registration pre-check
	ExistsByEmailOrUsername(ctx context.Context, email string, username string) (bool, error)
}
