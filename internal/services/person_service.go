package services

import (
	"errors"

	"github.com/sirupsen/logrus"

	"peoplebook/internal/apperrors"
	"peoplebook/internal/models"
	"peoplebook/internal/repositories"
	"peoplebook/pkg/logger"
)

type PersonService struct {
	store repositories.Store
}

func NewPersonService(store repositories.Store) *PersonService {
	return &PersonService{store: store}
}

// Create persists a new person together with its email set in one
// transaction. Fails with a conflict if the (name, birth date) pair is
// already taken.
func (s *PersonService) Create(name string, birthDate models.Date, addresses []string) (*models.Person, error) {
	var person *models.Person

	err := s.store.InTx(func(tx repositories.Store) error {
		if err := checkNotDuplicate(tx.People(), name, birthDate); err != nil {
			return err
		}

		person = models.NewPerson(name, birthDate)
		if err := tx.People().Create(person); err != nil {
			// A concurrent create can win between the duplicate check and
			// the insert; the constraint violation is still a conflict.
			if errors.Is(err, repositories.ErrDuplicate) {
				return apperrors.Conflict(duplicatePersonMessage)
			}
			return err
		}

		for _, address := range dedupeAddresses(addresses) {
			email := models.NewEmail(person.ID, address)
			if err := tx.Emails().Create(email); err != nil {
				return err
			}
			person.Emails = append(person.Emails, email)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"person_id": person.ID,
		"name":      person.Name,
	}).Info("Person created")

	return person, nil
}

// GetByID retrieves a person with its email set
func (s *PersonService) GetByID(id int64) (*models.Person, error) {
	person, err := s.store.People().GetByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound("Person", id)
	}
	if err != nil {
		return nil, err
	}

	person.Emails, err = s.store.Emails().GetByPersonID(id)
	if err != nil {
		return nil, err
	}

	return person, nil
}

// List retrieves all people in creation order, without email sets
func (s *PersonService) List() ([]*models.Person, error) {
	return s.store.People().GetAll()
}

// SearchByName retrieves people whose name contains the substring,
// case-insensitively, in name order. No match is an empty list, not an error.
func (s *PersonService) SearchByName(name string) ([]*models.Person, error) {
	return s.store.People().SearchByName(name)
}

// Update overwrites a person's name and birth date and replaces its whole
// email set, all in one transaction. An absent set leaves the person with
// zero emails.
func (s *PersonService) Update(id int64, name string, birthDate models.Date, addresses []string) (*models.Person, error) {
	var person *models.Person

	err := s.store.InTx(func(tx repositories.Store) error {
		var err error
		person, err = tx.People().GetByID(id)
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Person", id)
		}
		if err != nil {
			return err
		}

		if err := checkNotDuplicateForUpdate(tx.People(), person, name, birthDate); err != nil {
			return err
		}

		person.Name = name
		person.BirthDate = birthDate
		if err := tx.People().Update(person); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return apperrors.Conflict(duplicatePersonMessage)
			}
			return err
		}

		person.Emails, err = replaceEmails(tx.Emails(), id, addresses)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"person_id": person.ID,
		"name":      person.Name,
	}).Info("Person updated")

	return person, nil
}

// Delete removes a person and every email it owns in one transaction.
// The email bulk delete is explicit rather than left to the foreign key.
func (s *PersonService) Delete(id int64) error {
	err := s.store.InTx(func(tx repositories.Store) error {
		exists, err := tx.People().ExistsByID(id)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NotFound("Person", id)
		}

		if err := tx.Emails().DeleteByPersonID(id); err != nil {
			return err
		}
		return tx.People().Delete(id)
	})
	if err != nil {
		return err
	}

	logger.WithField("person_id", id).Info("Person deleted")
	return nil
}

// replaceEmails discards the person's current email rows and inserts a
// fresh row per deduplicated address. Surviving addresses get new ids;
// this is a replacement, not a merge.
func replaceEmails(emails repositories.EmailStore, personID int64, addresses []string) ([]*models.Email, error) {
	if err := emails.DeleteByPersonID(personID); err != nil {
		return nil, err
	}

	var replaced []*models.Email
	for _, address := range dedupeAddresses(addresses) {
		email := models.NewEmail(personID, address)
		if err := emails.Create(email); err != nil {
			return nil, err
		}
		replaced = append(replaced, email)
	}

	return replaced, nil
}

// dedupeAddresses collapses exact duplicates, keeping first-occurrence order
func dedupeAddresses(addresses []string) []string {
	if len(addresses) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(addresses))
	deduped := make([]string, 0, len(addresses))
	for _, address := range addresses {
		if seen[address] {
			continue
		}
		seen[address] = true
		deduped = append(deduped, address)
	}

	return deduped
}
