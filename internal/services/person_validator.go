package services

import (
	"errors"

	"peoplebook/internal/apperrors"
	"peoplebook/internal/models"
	"peoplebook/internal/repositories"
)

const duplicatePersonMessage = "person with this name and birth date already exists"

// checkNotDuplicate fails with a conflict if a person with the exact
// (name, birth date) pair already exists. Used on create.
func checkNotDuplicate(people repositories.PersonStore, name string, birthDate models.Date) error {
	exists, err := people.ExistsByNameAndBirthDate(name, birthDate)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.Conflict(duplicatePersonMessage)
	}
	return nil
}

// checkNotDuplicateForUpdate fails with a conflict only when the matching
// (name, birth date) row belongs to a different person. Comparing ids, not
// just field values, keeps a same-value self-update from being rejected.
func checkNotDuplicateForUpdate(people repositories.PersonStore, person *models.Person, name string, birthDate models.Date) error {
	match, err := people.FindByNameAndBirthDate(name, birthDate)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if match.ID != person.ID {
		return apperrors.Conflict(duplicatePersonMessage)
	}
	return nil
}
