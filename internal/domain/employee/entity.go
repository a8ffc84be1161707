package employee

import "time"

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        string
	PasswordHash string
	Department   string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)
