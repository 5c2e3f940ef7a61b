package models

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/campusd-dev/campusd/internal/roles"
)

// BaseModel provides common fields and auto-generated ULID for all models
type BaseModel struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(26)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate generates a ULID for the ID field if it's empty
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = ulid.Make().String()
	}
	return nil
}

// User represents a platform account. Role is stored in its canonical
// upper-case spelling; EnrollmentID doubles as the staff ID for faculty.
type User struct {
	BaseModel
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	FullName     string     `json:"full_name" gorm:"not null"`
	Role         roles.Role `json:"role" gorm:"type:varchar(16);not null;index"`
	EnrollmentID string     `json:"enrollment_id" gorm:"uniqueIndex"`
	Department   string     `json:"department"`
}

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
	)
}
