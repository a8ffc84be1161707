package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/attendly/attendance-backend-go/internal/config"
	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

const schema = `
CREATE TABLE IF NOT EXISTS employees (
	id UUID PRIMARY KEY,
	employee_code VARCHAR(16) NOT NULL UNIQUE,
	full_name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	department VARCHAR(100) NOT NULL,
	role VARCHAR(20) NOT NULL DEFAULT 'employee',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS attendance_records (
	id UUID PRIMARY KEY,
	employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
	day TIMESTAMPTZ NOT NULL,
	check_in_time TIMESTAMPTZ,
	check_out_time TIMESTAMPTZ,
	status VARCHAR(20) NOT NULL,
	total_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (employee_id, day)
);
`

type seedEmployee struct {
	code       string
	name       string
	email      string
	department string
	role       employee.Role
}

var roster = []seedEmployee{
	{"MGR001", "Maya Manager", "manager@attendly.dev", "Management", employee.RoleManager},
	{"EMP001", "Arif Pratama", "arif@attendly.dev", "Engineering", employee.RoleEmployee},
	{"EMP002", "Budi Santoso", "budi@attendly.dev", "Engineering", employee.RoleEmployee},
	{"EMP003", "Citra Lestari", "citra@attendly.dev", "Sales", employee.RoleEmployee},
	{"EMP004", "Dewi Anggraini", "dewi@attendly.dev", "Marketing", employee.RoleEmployee},
	{"EMP005", "Eko Wijaya", "eko@attendly.dev", "HR", employee.RoleEmployee},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	ctx := context.Background()

	if _, err := db.Exec(ctx, schema); err != nil {
		fmt.Println("Error creating schema:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Println("Error hashing password:", err)
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	created := 0

	// One transaction for the whole seed: either the database ends up fully
	// populated or untouched.
	err = postgresql.WithTransaction(ctx, db, func(txCtx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(txCtx, `TRUNCATE attendance_records, employees`); err != nil {
			return fmt.Errorf("truncate tables: %w", err)
		}

		for _, s := range roster {
			emp, err := employeeRepo.Create(txCtx, employee.Employee{
				EmployeeCode: s.code,
				FullName:     s.name,
				Email:        s.email,
				PasswordHash: string(hash),
				Department:   s.department,
				Role:         s.role,
			})
			if err != nil {
				return fmt.Errorf("create employee %s: %w", s.code, err)
			}

			if emp.Role == employee.RoleManager {
				continue
			}
			for offset := 30; offset >= 1; offset-- {
				day := time.Now().AddDate(0, 0, -offset)
				day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

				// Weekends: only a 30% chance of any record at all.
				if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
					if rng.Float64() > 0.3 {
						continue
					}
				}

				if _, err := recordRepo.Create(txCtx, buildRecord(rng, emp.ID, day)); err != nil {
					return fmt.Errorf("create attendance record: %w", err)
				}
				created++
			}
		}
		return nil
	})
	if err != nil {
		fmt.Println("Error seeding database:", err)
		return
	}

	fmt.Printf("Seeded %d employees and %d attendance records\n", len(roster), created)
	fmt.Println("Login with any seeded email and password \"password123\"")
}

func buildRecord(rng *rand.Rand, employeeID string, day time.Time) attendance.Record {
	roll := rng.Float64()

	// 10% of seeded days are explicit absences with no check-in; they stay
	// claimable by a real check-in on that day.
	if roll < 0.10 {
		return attendance.Record{
			EmployeeID: employeeID,
			Day:        day,
			Status:     attendance.StatusAbsent,
		}
	}

	var checkIn time.Time
	status := attendance.StatusPresent
	if roll < 0.15 {
		// Late arrivals land between 10:00 and 10:29.
		checkIn = day.Add(10*time.Hour + time.Duration(rng.Intn(30))*time.Minute)
		status = attendance.StatusLate
	} else {
		// On-time arrivals land between 09:00 and 09:29.
		checkIn = day.Add(9*time.Hour + time.Duration(rng.Intn(30))*time.Minute)
	}

	checkOut := day.Add(17*time.Hour + time.Duration(rng.Intn(60))*time.Minute)
	status, hours := attendance.ClassifyCheckOut(checkIn, checkOut, status)

	return attendance.Record{
		EmployeeID:   employeeID,
		Day:          day,
		CheckInTime:  &checkIn,
		CheckOutTime: &checkOut,
		Status:       status,
		TotalHours:   hours,
	}
}
