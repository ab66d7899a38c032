package domain

import (
	"math"
	"time"
)

// Sale is a single sold line under a client's job. Total is always computed
// server-side as quantity × unit price, rounded to cents.
type Sale struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"client_id"`
	ClientName  string    `json:"client_name,omitempty"`
	JobName     string    `json:"job_name"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Total       float64   `json:"total"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// RoundCents rounds v to two decimal places, half away from zero,
// so 2 × 12.505 yields 25.01.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
