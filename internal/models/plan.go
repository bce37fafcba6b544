package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Product is a shoppable product listing sourced from the recommendation
// upstream at plan-generation time. Products are not persisted on their own;
// they live denormalized inside the plan that referenced them.
type Product struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	URL      string  `json:"url"`
	Category string  `json:"category"`
}

// ProductList is the ordered product sequence stored as JSONB.
// Order reflects upstream relevance rank.
type ProductList []Product

// Value implements driver.Valuer for JSONB storage.
func (p ProductList) Value() (driver.Value, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner.
func (p *ProductList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = nil
		return nil
	}
	return fmt.Errorf("unsupported type for ProductList: %T", src)
}

// SkinPlanDB represents a generated bundle of advice plus recommended
// products for a user at a point in time. Prior plans are kept as history.
type SkinPlanDB struct {
	PlanID      uuid.UUID   `json:"plan_id" db:"plan_id"`
	UserID      string      `json:"user_id" db:"user_id"`
	GeneratedAt time.Time   `json:"generated_at" db:"generated_at"`
	Advice      string      `json:"advice" db:"advice"`
	Products    ProductList `json:"products" db:"products"`
}
