package models

import "time"

// Product represents a catalog item.
// Fields are tagged for both DB scanning and JSON serialization.
type Product struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Price       int       `db:"price" json:"price"` // smallest currency unit
	Description string    `db:"description" json:"description"`
	Image       string    `db:"image" json:"image"` // server-relative path under the upload mount
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
