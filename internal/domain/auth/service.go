package auth

import "context"

type AuthService interface {
	// Login verifies credentials and issues an access token carrying the
	// employee identity and role claims.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// GetProfile returns the identity profile for an employee ID.
	GetProfile(ctx context.Context, employeeID string) (Profile, error)
}
