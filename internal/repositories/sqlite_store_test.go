package repositories

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peoplebook/internal/models"
	"peoplebook/pkg/database"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	// A second pool connection would see its own empty in-memory database.
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { db.Close() })
	return db
}

func seedPerson(t *testing.T, store Store, name string, birthDate models.Date) *models.Person {
	t.Helper()

	person := models.NewPerson(name, birthDate)
	require.NoError(t, store.People().Create(person))
	return person
}

func TestPersonRepositorySQLite(t *testing.T) {
	store := NewSQLiteStore(newTestDB(t))

	joao := seedPerson(t, store, "João Silva", models.NewDate(1990, time.May, 15))
	maria := seedPerson(t, store, "Maria João", models.NewDate(1985, time.March, 2))
	seedPerson(t, store, "Pedro Santos", models.NewDate(1992, time.July, 1))

	t.Run("create assigns increasing ids", func(t *testing.T) {
		assert.Greater(t, maria.ID, joao.ID)
	})

	t.Run("get by id round-trips the birth date", func(t *testing.T) {
		person, err := store.People().GetByID(joao.ID)
		require.NoError(t, err)

		assert.Equal(t, "João Silva", person.Name)
		assert.Equal(t, "1990-05-15", person.BirthDate.String())
		assert.False(t, person.CreatedAt.IsZero())
	})

	t.Run("get by missing id", func(t *testing.T) {
		_, err := store.People().GetByID(99999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("get all in id order", func(t *testing.T) {
		people, err := store.People().GetAll()
		require.NoError(t, err)

		require.Len(t, people, 3)
		assert.Equal(t, "João Silva", people[0].Name)
		assert.Equal(t, "Maria João", people[1].Name)
		assert.Equal(t, "Pedro Santos", people[2].Name)
	})

	t.Run("search is a case-insensitive substring in name order", func(t *testing.T) {
		people, err := store.People().SearchByName("joão silva")
		require.NoError(t, err)

		require.Len(t, people, 1)
		assert.Equal(t, "João Silva", people[0].Name)

		people, err = store.People().SearchByName("Nobody")
		require.NoError(t, err)
		assert.Empty(t, people)
	})

	t.Run("find by exact pair", func(t *testing.T) {
		person, err := store.People().FindByNameAndBirthDate("João Silva", models.NewDate(1990, time.May, 15))
		require.NoError(t, err)
		assert.Equal(t, joao.ID, person.ID)

		_, err = store.People().FindByNameAndBirthDate("João Silva", models.NewDate(1991, time.May, 15))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("exists checks", func(t *testing.T) {
		exists, err := store.People().ExistsByNameAndBirthDate("Maria João", models.NewDate(1985, time.March, 2))
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = store.People().ExistsByID(99999)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("update overwrites name and birth date", func(t *testing.T) {
		maria.Name = "Maria João Souza"
		maria.BirthDate = models.NewDate(1985, time.March, 3)
		require.NoError(t, store.People().Update(maria))

		stored, err := store.People().GetByID(maria.ID)
		require.NoError(t, err)
		assert.Equal(t, "Maria João Souza", stored.Name)
		assert.Equal(t, "1985-03-03", stored.BirthDate.String())
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, store.People().Delete(maria.ID))

		_, err := store.People().GetByID(maria.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unique pair constraint rejects a duplicate insert", func(t *testing.T) {
		err := store.People().Create(models.NewPerson("João Silva", models.NewDate(1990, time.May, 15)))
		assert.ErrorIs(t, err, ErrDuplicate)
	})
}

func TestEmailRepositorySQLite(t *testing.T) {
	store := NewSQLiteStore(newTestDB(t))
	person := seedPerson(t, store, "João Silva", models.NewDate(1990, time.May, 15))

	first := models.NewEmail(person.ID, "joao@email.com")
	require.NoError(t, store.Emails().Create(first))
	second := models.NewEmail(person.ID, "work@email.com")
	require.NoError(t, store.Emails().Create(second))

	t.Run("get by id", func(t *testing.T) {
		email, err := store.Emails().GetByID(first.ID)
		require.NoError(t, err)
		assert.Equal(t, "joao@email.com", email.Address)
		assert.Equal(t, person.ID, email.PersonID)
	})

	t.Run("list by person in creation order", func(t *testing.T) {
		emails, err := store.Emails().GetByPersonID(person.ID)
		require.NoError(t, err)

		require.Len(t, emails, 2)
		assert.Equal(t, first.ID, emails[0].ID)
		assert.Equal(t, second.ID, emails[1].ID)
	})

	t.Run("update overwrites the address", func(t *testing.T) {
		first.Address = "novo@email.com"
		require.NoError(t, store.Emails().Update(first))

		stored, err := store.Emails().GetByID(first.ID)
		require.NoError(t, err)
		assert.Equal(t, "novo@email.com", stored.Address)
	})

	t.Run("delete removes a single row", func(t *testing.T) {
		require.NoError(t, store.Emails().Delete(second.ID))

		_, err := store.Emails().GetByID(second.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		exists, err := store.Emails().ExistsByID(first.ID)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("delete by person removes the whole set", func(t *testing.T) {
		require.NoError(t, store.Emails().DeleteByPersonID(person.ID))

		emails, err := store.Emails().GetByPersonID(person.ID)
		require.NoError(t, err)
		assert.Empty(t, emails)
	})
}

func TestSearchByNameCaseFolding(t *testing.T) {
	// Both backends must fold case beyond ASCII; an uppercase accented
	// needle still has to match its lowercase accented name.
	stores := map[string]Store{
		"sqlite": NewSQLiteStore(newTestDB(t)),
		"memory": NewMemoryStore(),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			seedPerson(t, store, "João Silva", models.NewDate(1990, time.May, 15))
			seedPerson(t, store, "Pedro Santos", models.NewDate(1992, time.July, 1))

			people, err := store.People().SearchByName("JOÃO")
			require.NoError(t, err)
			require.Len(t, people, 1)
			assert.Equal(t, "João Silva", people[0].Name)

			people, err = store.People().SearchByName("pedro santos")
			require.NoError(t, err)
			require.Len(t, people, 1)
			assert.Equal(t, "Pedro Santos", people[0].Name)
		})
	}
}

func TestSQLiteStoreInTx(t *testing.T) {
	t.Run("commits when the closure succeeds", func(t *testing.T) {
		store := NewSQLiteStore(newTestDB(t))

		err := store.InTx(func(tx Store) error {
			return tx.People().Create(models.NewPerson("João Silva", models.NewDate(1990, time.May, 15)))
		})
		require.NoError(t, err)

		people, err := store.People().GetAll()
		require.NoError(t, err)
		assert.Len(t, people, 1)
	})

	t.Run("rolls back every write when the closure fails", func(t *testing.T) {
		store := NewSQLiteStore(newTestDB(t))
		boom := errors.New("boom")

		err := store.InTx(func(tx Store) error {
			person := models.NewPerson("João Silva", models.NewDate(1990, time.May, 15))
			if err := tx.People().Create(person); err != nil {
				return err
			}
			if err := tx.Emails().Create(models.NewEmail(person.ID, "joao@email.com")); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		people, err := store.People().GetAll()
		require.NoError(t, err)
		assert.Empty(t, people)

		emails, err := store.Emails().GetByPersonID(1)
		require.NoError(t, err)
		assert.Empty(t, emails)
	})
}
