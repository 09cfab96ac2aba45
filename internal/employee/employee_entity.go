package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "Admin"
	RoleHR       = "HR"
	RoleEmployee = "Employee"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode  string    `gorm:"column:employee_code"`
	Name          string
	Email         string
	Phone         string
	PasswordHash  string `gorm:"column:password_hash"`
	Role          string
	Status        string
	DateOfJoining *time.Time `gorm:"type:date"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string { return "employees" }

func (e Employee) IsActive() bool { return e.Status == StatusActive }
