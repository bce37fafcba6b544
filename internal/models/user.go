package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Goals is a list of skincare goals stored as JSONB.
type Goals []string

// Value implements driver.Valuer for JSONB storage.
func (g Goals) Value() (driver.Value, error) {
	if g == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(g)
}

// Scan implements sql.Scanner.
func (g *Goals) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, g)
	case string:
		return json.Unmarshal([]byte(v), g)
	case nil:
		*g = nil
		return nil
	}
	return fmt.Errorf("unsupported type for Goals: %T", src)
}

// UserDB represents a user record in the database
type UserDB struct {
	UserID       string     `json:"user_id" db:"user_id"`       // External identifier, primary key
	Name         string     `json:"name" db:"name"`             // Display name
	Email        string     `json:"email" db:"email"`           // Unique email
	PasswordHash string     `json:"-" db:"password_hash"`       // Hashed password
	SkinType     string     `json:"skin_type" db:"skin_type"`   // oily / dry / combination / normal
	Goals        Goals      `json:"goals" db:"goals"`           // Skincare goals
	DOB          *time.Time `json:"dob,omitempty" db:"dob"`     // Date of birth
	CreatedAt    time.Time  `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"` // Last update timestamp
}
