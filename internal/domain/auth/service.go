package auth

import "context"

type AuthService interface {
	// Register creates a user and its linked employee record atomically.
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Me returns the current principal's user record.
	Me(ctx context.Context, principal Principal) (MeResponse, error)
}
