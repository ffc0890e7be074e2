package models

import (
	"database/sql"
	"time"
)

// User represents a user in the system.
type User struct {
	ID                    string         `db:"ID"` // ULID
	GoogleID              string         `db:"GOOGLE_ID"`
	Email                 string         `db:"EMAIL"`
	Name                  sql.NullString `db:"NAME"`
	ProfilePictureURL     sql.NullString `db:"PROFILE_PICTURE_URL"`
	EncryptedAccessToken  sql.NullString `db:"ENCRYPTED_ACCESS_TOKEN"`
	EncryptedRefreshToken sql.NullString `db:"ENCRYPTED_REFRESH_TOKEN"`
	TokenExpiresAt        sql.NullTime   `db:"TOKEN_EXPIRES_AT"`
	CreatedAt             time.Time      `db:"CREATED_AT"`
	UpdatedAt             time.Time      `db:"UPDATED_AT"`
	DeletedAt             sql.NullTime   `db:"DELETED_AT"`
}

func (User) TableName() string {
	return "users"
}
