package repositories

import (
	"database/sql"

	"peoplebook/internal/models"
)

type EmailRepository struct {
	db DBTX
}

func NewEmailRepository(db DBTX) *EmailRepository {
	return &EmailRepository{db: db}
}

// Create inserts a new email and fills in the store-assigned ID.
func (r *EmailRepository) Create(email *models.Email) error {
	query := `
		INSERT INTO emails (
			address, person_id
		) VALUES (?, ?)
	`

	result, err := r.db.Exec(query, email.Address, email.PersonID)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	email.ID = id

	return nil
}

// GetByID retrieves an email by ID
func (r *EmailRepository) GetByID(id int64) (*models.Email, error) {
	query := `
		SELECT id, address, person_id, created_at
		FROM emails WHERE id = ?
	`

	email := &models.Email{}
	err := r.db.QueryRow(query, id).Scan(
		&email.ID, &email.Address, &email.PersonID, &email.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return email, nil
}

// GetByPersonID retrieves all emails owned by a person in creation (id) order
func (r *EmailRepository) GetByPersonID(personID int64) ([]*models.Email, error) {
	query := `
		SELECT id, address, person_id, created_at
		FROM emails WHERE person_id = ? ORDER BY id
	`

	rows, err := r.db.Query(query, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []*models.Email
	for rows.Next() {
		email := &models.Email{}
		err := rows.Scan(
			&email.ID, &email.Address, &email.PersonID, &email.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}

	return emails, rows.Err()
}

// ExistsByID checks if an email exists by ID
func (r *EmailRepository) ExistsByID(id int64) (bool, error) {
	query := `SELECT COUNT(*) FROM emails WHERE id = ?`
	var count int
	err := r.db.QueryRow(query, id).Scan(&count)
	return count > 0, err
}

// Update updates an existing email's address
func (r *EmailRepository) Update(email *models.Email) error {
	query := `UPDATE emails SET address = ? WHERE id = ?`
	_, err := r.db.Exec(query, email.Address, email.ID)
	return err
}

// Delete deletes an email by ID
func (r *EmailRepository) Delete(id int64) error {
	query := `DELETE FROM emails WHERE id = ?`
	_, err := r.db.Exec(query, id)
	return err
}

// DeleteByPersonID deletes every email owned by a person
func (r *EmailRepository) DeleteByPersonID(personID int64) error {
	query := `DELETE FROM emails WHERE person_id = ?`
	_, err := r.db.Exec(query, personID)
	return err
}
