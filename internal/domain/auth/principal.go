package auth

import (
	"context"

	"github.com/Marshmallowc/hrms-backend/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// Principal is the authenticated caller's identity, extracted from the
// verified access token.
type Principal struct {
	UserID   string
	Username string
	Email    string
	Role     user.Role
}

// PrincipalFromContext builds the principal from the jwtauth claims placed in
// the request context by the token verifier.
func PrincipalFromContext(ctx context.Context) (Principal, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Principal{}, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Principal{}, ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok || !user.ValidRole(roleStr) {
		return Principal{}, ErrInvalidToken
	}

	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)

	return Principal{
		UserID:   userID,
		Username: username,
		Email:    email,
		Role:     user.Role(roleStr),
	}, nil
}
