package repositories

import (
	"database/sql"

	"peoplebook/pkg/logger"
)

// SQLiteStore is the sqlite-backed Store implementation.
type SQLiteStore struct {
	// db is nil when the store is already bound to a transaction.
	db     *sql.DB
	people *PersonRepository
	emails *EmailRepository
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{
		db:     db,
		people: NewPersonRepository(db),
		emails: NewEmailRepository(db),
	}
}

func (s *SQLiteStore) People() PersonStore {
	return s.people
}

func (s *SQLiteStore) Emails() EmailStore {
	return s.emails
}

// InTx runs fn against a transaction-bound store. The transaction commits
// only if fn returns nil; any error rolls back every write. A store that
// is already transaction-bound reuses the open transaction.
func (s *SQLiteStore) InTx(fn func(Store) error) error {
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	txStore := &SQLiteStore{
		people: NewPersonRepository(tx),
		emails: NewEmailRepository(tx),
	}

	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.WithError(rbErr).Error("Failed to roll back transaction")
		}
		return err
	}

	return tx.Commit()
}
