package models

import "time"

// Enquiry represents a contact-form submission. Rows are immutable after
// insert; there is no update or delete path.
type Enquiry struct {
	ID         int       `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Email      string    `db:"email" json:"email"`
	Phone      string    `db:"phone" json:"phone"`
	Message    string    `db:"message" json:"message"`
	SourcePage string    `db:"source_page" json:"sourcePage"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
