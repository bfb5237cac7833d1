package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         string         `gorm:"type:varchar(20);default:'client'" json:"role"`
	BirthDate    *string        `gorm:"type:varchar(10)" json:"birthDate"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Favorites []Favorite `gorm:"foreignKey:UserID" json:"-"`
	Progress  []Progress `gorm:"foreignKey:UserID" json:"-"`
}

type UserRegister struct {
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	BirthDate *string `json:"birthDate"`
}

type UserLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ProfileUpdate struct {
	BirthDate *string `json:"birthDate"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AdminUser is the shape returned by the admin user listing. The
// "_count" key is what the dashboard frontend consumes.
type AdminUser struct {
	ID        uint           `json:"id"`
	Email     string         `json:"email"`
	Role      string         `json:"role"`
	BirthDate *string        `json:"birthDate"`
	Count     AdminUserCount `json:"_count"`
}

type AdminUserCount struct {
	Favorites int64 `json:"favorites"`
	Progress  int64 `json:"progress"`
}
