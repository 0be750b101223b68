package models

import "time"

// Person represents an individual identified by name and birth date.
// It owns zero or more Email records; the emails cannot outlive the person.
type Person struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	BirthDate Date      `json:"birth_date"`
	Emails    []*Email  `json:"emails,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPerson creates a new Person. The ID is assigned by the store on insert.
func NewPerson(name string, birthDate Date) *Person {
	return &Person{
		Name:      name,
		BirthDate: birthDate,
	}
}
