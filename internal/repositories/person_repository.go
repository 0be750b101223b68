package repositories

import (
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"

	"peoplebook/internal/models"
)

type PersonRepository struct {
	db DBTX
}

func NewPersonRepository(db DBTX) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create inserts a new person and fills in the store-assigned ID.
func (r *PersonRepository) Create(person *models.Person) error {
	query := `
		INSERT INTO people (
			name, birth_date
		) VALUES (?, ?)
	`

	result, err := r.db.Exec(query, person.Name, person.BirthDate.String())
	if isUniqueConstraint(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	person.ID = id

	return nil
}

// GetByID retrieves a person by ID
func (r *PersonRepository) GetByID(id int64) (*models.Person, error) {
	query := `
		SELECT id, name, birth_date, created_at, updated_at
		FROM people WHERE id = ?
	`

	return r.scanPerson(r.db.QueryRow(query, id))
}

// GetAll retrieves all people in creation (id) order
func (r *PersonRepository) GetAll() ([]*models.Person, error) {
	query := `
		SELECT id, name, birth_date, created_at, updated_at
		FROM people ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPeople(rows)
}

// SearchByName retrieves people whose name contains the given substring,
// case-insensitively, in name order. ulower() folds the full Unicode
// range; plain LIKE would only fold ASCII and miss accented names.
func (r *PersonRepository) SearchByName(name string) ([]*models.Person, error) {
	query := `
		SELECT id, name, birth_date, created_at, updated_at
		FROM people WHERE instr(ulower(name), ulower(?)) > 0 ORDER BY name
	`

	rows, err := r.db.Query(query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPeople(rows)
}

// FindByNameAndBirthDate retrieves the person with the exact (name, birth date)
// pair, or ErrNotFound. Name matching is case-sensitive.
func (r *PersonRepository) FindByNameAndBirthDate(name string, birthDate models.Date) (*models.Person, error) {
	query := `
		SELECT id, name, birth_date, created_at, updated_at
		FROM people WHERE name = ? AND birth_date = ?
	`

	return r.scanPerson(r.db.QueryRow(query, name, birthDate.String()))
}

// ExistsByNameAndBirthDate checks whether the exact (name, birth date) pair exists
func (r *PersonRepository) ExistsByNameAndBirthDate(name string, birthDate models.Date) (bool, error) {
	query := `SELECT COUNT(*) FROM people WHERE name = ? AND birth_date = ?`
	var count int
	err := r.db.QueryRow(query, name, birthDate.String()).Scan(&count)
	return count > 0, err
}

// ExistsByID checks if a person exists by ID
func (r *PersonRepository) ExistsByID(id int64) (bool, error) {
	query := `SELECT COUNT(*) FROM people WHERE id = ?`
	var count int
	err := r.db.QueryRow(query, id).Scan(&count)
	return count > 0, err
}

// Update updates an existing person's name and birth date
func (r *PersonRepository) Update(person *models.Person) error {
	query := `
		UPDATE people SET
			name = ?, birth_date = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	_, err := r.db.Exec(query, person.Name, person.BirthDate.String(), person.ID)
	if isUniqueConstraint(err) {
		return ErrDuplicate
	}
	return err
}

// Delete deletes a person by ID
func (r *PersonRepository) Delete(id int64) error {
	query := `DELETE FROM people WHERE id = ?`
	_, err := r.db.Exec(query, id)
	return err
}

func (r *PersonRepository) scanPerson(row *sql.Row) (*models.Person, error) {
	person := &models.Person{}
	var birthDate string
	err := row.Scan(
		&person.ID, &person.Name, &birthDate, &person.CreatedAt, &person.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	person.BirthDate, err = models.ParseDate(birthDate)
	if err != nil {
		return nil, err
	}

	return person, nil
}

func isUniqueConstraint(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

func scanPeople(rows *sql.Rows) ([]*models.Person, error) {
	var people []*models.Person
	for rows.Next() {
		person := &models.Person{}
		var birthDate string
		err := rows.Scan(
			&person.ID, &person.Name, &birthDate, &person.CreatedAt, &person.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		person.BirthDate, err = models.ParseDate(birthDate)
		if err != nil {
			return nil, err
		}

		people = append(people, person)
	}

	return people, rows.Err()
}
