// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// DefaultBio is the placeholder bio assigned to freshly provisioned profiles.
const DefaultBio = "This user prefers to keep an air of mystery about them."

// User represents a registered account. Every user owns exactly one Profile,
// provisioned in the same transaction as the user row.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:254;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FullName  string    `gorm:"size:100" json:"full_name"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	Profile   *Profile  `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile holds the public-facing details of a user.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Image     string    `gorm:"size:500;default:default/default-user.webp" json:"image"`
	FullName  string    `gorm:"size:100" json:"full_name"`
	Bio       string    `gorm:"size:160" json:"bio"`
	Country   string    `gorm:"size:100" json:"country"`
	Facebook  string    `gorm:"size:100" json:"facebook"`
	Twitter   string    `gorm:"size:100" json:"twitter"`
	Instagram string    `gorm:"size:100" json:"instagram"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
