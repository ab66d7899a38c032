package domain

import "time"

// Client is a customer a sale or quote belongs to. Clients are immutable once
// referenced by sales or quotes; there is no update or delete operation.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ClientJobSummary aggregates the sales recorded under one (client, job) pair.
type ClientJobSummary struct {
	JobName     string  `json:"job_name"`
	SaleCount   int64   `json:"sale_count"`
	TotalAmount float64 `json:"total_amount"`
}

// ClientSummary is a client together with its per-job sales aggregates,
// as returned by the clients listing.
type ClientSummary struct {
	Client
	Jobs []ClientJobSummary `json:"jobs"`
}
