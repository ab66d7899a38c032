package domain

import "time"

// QuoteStatusDraft is the initial and, for now, only quote state.
// There is no transition logic; quotes are append-only snapshots.
const QuoteStatusDraft = "draft"

// QuoteItem is one sale row captured into a quote's line-item snapshot at
// creation time. Later edits to the source sale never touch the snapshot.
type QuoteItem struct {
	SaleID      int64     `json:"sale_id"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Total       float64   `json:"total"`
	CreatedAt   time.Time `json:"created_at"`
}

// Quote aggregates the sales matching a (client, job) pair at creation time.
type Quote struct {
	ID          int64       `json:"id"`
	ClientID    int64       `json:"client_id"`
	ClientName  string      `json:"client_name,omitempty"`
	JobName     string      `json:"job_name"`
	Status      string      `json:"status"`
	TotalAmount float64     `json:"total_amount"`
	Notes       string      `json:"notes,omitempty"`
	Items       []QuoteItem `json:"items"`
	CreatedBy   string      `json:"created_by,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
