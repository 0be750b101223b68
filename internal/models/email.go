package models

import "time"

// Email is a single contact address owned by exactly one Person.
type Email struct {
	ID        int64     `json:"id"`
	Address   string    `json:"address"`
	PersonID  int64     `json:"person_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewEmail creates a new Email owned by the given person. The ID is
// assigned by the store on insert.
func NewEmail(personID int64, address string) *Email {
	return &Email{
		Address:  address,
		PersonID: personID,
	}
}
