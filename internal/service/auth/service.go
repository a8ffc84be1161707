package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employees employee.EmployeeRepository
	tokens    jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		employees: employeeRepo,
		tokens:    jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.employees.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			// Same error as a wrong password so the response does not
			// reveal which accounts exist.
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Profile:     profileOf(emp),
	}, nil
}

// GetProfile implements auth.AuthService.
func (s *AuthServiceImpl) GetProfile(ctx context.Context, employeeID string) (auth.Profile, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.Profile{}, employee.ErrEmployeeNotFound
		}
		return auth.Profile{}, fmt.Errorf("failed to look up employee: %w", err)
	}
	return profileOf(emp), nil
}

func profileOf(emp employee.Employee) auth.Profile {
	return auth.Profile{
		ID:           emp.ID,
		FullName:     emp.FullName,
		Email:        emp.Email,
		EmployeeCode: emp.EmployeeCode,
		Department:   emp.Department,
		Role:         string(emp.Role),
	}
}
