package models

import "time"

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleCompany UserRole = "company"
	RoleAdmin   UserRole = "admin"
)

// User mirrors the account subsystem's view of a user. Accounts, sessions
// and password flows live outside this service; only the identity and role
// are needed here.
type User struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	Role      UserRole  `gorm:"column:role;type:text" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (User) TableName() string { return "users" }
