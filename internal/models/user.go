package models

import (
	"strings"
	"time"
)

// User represents a registered user
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;not null" json:"username"`
	Nametag      string    `gorm:"uniqueIndex;size:50;not null" json:"nametag"`
	Email        string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Avatar       string    `gorm:"size:255" json:"avatar"`
	Cargo        string    `gorm:"size:50" json:"cargo,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// Nametag derives the lookup tag for a username: lowercase with spaces removed.
// It is recomputed whenever the username changes.
func Nametag(username string) string {
	return strings.ReplaceAll(strings.ToLower(username), " ", "")
}
