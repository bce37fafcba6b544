package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Condition is one skin condition label detected on a photo.
type Condition struct {
	Label      string  `json:"label"`      // e.g. "papule", "pustule"
	Confidence float64 `json:"confidence"` // model confidence in [0,1]
}

// ConditionList is the detected conditions stored as JSONB.
type ConditionList []Condition

// Value implements driver.Valuer for JSONB storage.
func (c ConditionList) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner.
func (c *ConditionList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	case nil:
		*c = nil
		return nil
	}
	return fmt.Errorf("unsupported type for ConditionList: %T", src)
}

// AssessmentDB represents the structured result of analyzing one uploaded
// skin photo. Assessments are immutable facts; a new photo produces a new row.
type AssessmentDB struct {
	AssessmentID uuid.UUID     `json:"assessment_id" db:"assessment_id"`
	UserID       string        `json:"user_id" db:"user_id"`
	TakenAt      time.Time     `json:"taken_at" db:"taken_at"`
	PhotoKey     string        `json:"photo_key" db:"photo_key"`       // Opaque object-store handle
	Severity     float64       `json:"severity" db:"severity"`         // Score in [0,10]
	Confidence   float64       `json:"confidence" db:"confidence"`
	LesionCount  int           `json:"lesion_count" db:"lesion_count"` // Conditions retained above the confidence cutoff
	Conditions   ConditionList `json:"conditions" db:"conditions"`
	Summary      string        `json:"summary" db:"summary"`
}
