package models

// PersonCreateRequest is the payload for creating a person. The email
// set is optional; duplicates within it are collapsed.
type PersonCreateRequest struct {
	Name      string               `json:"name" binding:"required,min=2,max=100"`
	BirthDate Date                 `json:"birth_date" binding:"required,pastdate"`
	Emails    []EmailCreateRequest `json:"emails" binding:"omitempty,dive"`
}

// PersonUpdateRequest is the payload for updating a person. The email
// set replaces the person's current one; absent means zero emails.
type PersonUpdateRequest struct {
	Name      string               `json:"name" binding:"required,min=2,max=100"`
	BirthDate Date                 `json:"birth_date" binding:"required,pastdate"`
	Emails    []EmailCreateRequest `json:"emails" binding:"omitempty,dive"`
}

// EmailCreateRequest is the payload for adding or updating a single email.
type EmailCreateRequest struct {
	Address string `json:"address" binding:"required,email,max=100"`
}

// Addresses flattens a request email set into a plain string slice.
func Addresses(emails []EmailCreateRequest) []string {
	if len(emails) == 0 {
		return nil
	}
	addresses := make([]string, 0, len(emails))
	for _, e := range emails {
		addresses = append(addresses, e.Address)
	}
	return addresses
}

// PersonResponse is the outbound shape of a person record.
type PersonResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	BirthDate Date            `json:"birth_date"`
	Emails    []EmailResponse `json:"emails,omitempty"`
}

// EmailResponse is the outbound shape of an email record.
type EmailResponse struct {
	ID       int64  `json:"id"`
	Address  string `json:"address"`
	PersonID int64  `json:"person_id"`
}

// NewPersonResponse converts a Person into its outbound shape. The email
// set is included only when it was loaded.
func NewPersonResponse(person *Person) PersonResponse {
	var emails []EmailResponse
	for _, email := range person.Emails {
		emails = append(emails, NewEmailResponse(email))
	}
	return PersonResponse{
		ID:        person.ID,
		Name:      person.Name,
		BirthDate: person.BirthDate,
		Emails:    emails,
	}
}

// NewEmailResponse converts an Email into its outbound shape.
func NewEmailResponse(email *Email) EmailResponse {
	return EmailResponse{
		ID:       email.ID,
		Address:  email.Address,
		PersonID: email.PersonID,
	}
}
