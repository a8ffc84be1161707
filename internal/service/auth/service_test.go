package auth

import (
	"context"
	"testing"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.employees = append(r.employees, emp)
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByCode(_ context.Context, code string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.EmployeeCode == code {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) ListByRole(_ context.Context, _ *employee.Role) ([]employee.Employee, error) {
	return r.employees, nil
}

func testService(t *testing.T) (auth.AuthService, *fakeEmployeeRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeEmployeeRepo{employees: []employee.Employee{{
		ID:           "e1",
		EmployeeCode: "EMP001",
		FullName:     "Arif Pratama",
		Email:        "arif@attendly.dev",
		PasswordHash: string(hash),
		Department:   "Engineering",
		Role:         employee.RoleEmployee,
	}}}

	jwtService := jwt.NewJWTService("test-secret", "1h")
	return NewAuthService(repo, jwtService), repo
}

func TestLogin(t *testing.T) {
	svc, _ := testService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "arif@attendly.dev",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, int64(0))
	assert.Equal(t, "EMP001", resp.Profile.EmployeeCode)
	assert.Equal(t, "employee", resp.Profile.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "arif@attendly.dev",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@attendly.dev",
		Password: "whatever",
	})

	// Indistinguishable from a wrong password.
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginValidation(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	svc, _ := testService(t)

	profile, err := svc.GetProfile(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, "Arif Pratama", profile.FullName)
}

func TestGetProfileUnknownEmployee(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
