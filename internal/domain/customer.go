package domain

import "time"

// Customer represents a registered customer
type Customer struct {
	ID    int64
	Name  string
	Email string // unique
	Phone string

	CreatedAt time.Time
	UpdatedAt time.Time
}
