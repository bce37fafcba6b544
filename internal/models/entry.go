package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// HabitValues maps a habit category to the value recorded for one day,
// e.g. {"sleep_hours": 7, "stress": 3}. Stored as JSONB.
type HabitValues map[string]float64

// Value implements driver.Valuer for JSONB storage.
func (h HabitValues) Value() (driver.Value, error) {
	if h == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(h)
}

// Scan implements sql.Scanner.
func (h *HabitValues) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	case nil:
		*h = nil
		return nil
	}
	return fmt.Errorf("unsupported type for HabitValues: %T", src)
}

// DailyEntryDB represents one day's lifestyle questionnaire record for a user.
// At most one entry exists per (user_id, entry_date); saves replace the whole row.
type DailyEntryDB struct {
	UserID    string      `json:"user_id" db:"user_id"`
	EntryDate time.Time   `json:"date" db:"entry_date"`
	Habits    HabitValues `json:"habits" db:"habits"`
	Notes     string      `json:"notes" db:"notes"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}
