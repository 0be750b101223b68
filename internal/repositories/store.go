package repositories

import (
	"database/sql"
	"errors"

	"peoplebook/internal/models"
)

// ErrNotFound keeps store-specific lookup misses consistent across the
// sqlite and in-memory implementations.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate reports a write rejected by the store's unique
// (name, birth date) constraint. It surfaces when two concurrent creates
// race past the service-side duplicate check and one loses.
var ErrDuplicate = errors.New("duplicate record")

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx,
// letting the same repository code run inside or outside a transaction.
type DBTX interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// PersonStore is the person half of the record store contract.
type PersonStore interface {
	Create(person *models.Person) error
	GetByID(id int64) (*models.Person, error)
	GetAll() ([]*models.Person, error)
	SearchByName(name string) ([]*models.Person, error)
	FindByNameAndBirthDate(name string, birthDate models.Date) (*models.Person, error)
	ExistsByNameAndBirthDate(name string, birthDate models.Date) (bool, error)
	ExistsByID(id int64) (bool, error)
	Update(person *models.Person) error
	Delete(id int64) error
}

// EmailStore is the email half of the record store contract.
type EmailStore interface {
	Create(email *models.Email) error
	GetByID(id int64) (*models.Email, error)
	GetByPersonID(personID int64) ([]*models.Email, error)
	ExistsByID(id int64) (bool, error)
	Update(email *models.Email) error
	Delete(id int64) error
	DeleteByPersonID(personID int64) error
}

// Store bundles both record kinds with transactional execution. Every
// mutating service operation runs as a single InTx unit of work.
type Store interface {
	People() PersonStore
	Emails() EmailStore
	InTx(fn func(Store) error) error
}
