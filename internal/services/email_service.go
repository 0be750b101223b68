package services

import (
	"errors"

	"github.com/sirupsen/logrus"

	"peoplebook/internal/apperrors"
	"peoplebook/internal/models"
	"peoplebook/internal/repositories"
	"peoplebook/pkg/logger"
)

type EmailService struct {
	store repositories.Store
}

func NewEmailService(store repositories.Store) *EmailService {
	return &EmailService{store: store}
}

// Add attaches a new email to an existing person
func (s *EmailService) Add(personID int64, address string) (*models.Email, error) {
	var email *models.Email

	err := s.store.InTx(func(tx repositories.Store) error {
		exists, err := tx.People().ExistsByID(personID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NotFound("Person", personID)
		}

		email = models.NewEmail(personID, address)
		return tx.Emails().Create(email)
	})
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"email_id":  email.ID,
		"person_id": personID,
	}).Info("Email added")

	return email, nil
}

// ListByPerson retrieves all emails owned by an existing person
func (s *EmailService) ListByPerson(personID int64) ([]*models.Email, error) {
	exists, err := s.store.People().ExistsByID(personID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("Person", personID)
	}

	return s.store.Emails().GetByPersonID(personID)
}

// GetByID retrieves an email by ID
func (s *EmailService) GetByID(id int64) (*models.Email, error) {
	email, err := s.store.Emails().GetByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound("Email", id)
	}
	if err != nil {
		return nil, err
	}
	return email, nil
}

// Update overwrites an existing email's address
func (s *EmailService) Update(id int64, address string) (*models.Email, error) {
	var email *models.Email

	err := s.store.InTx(func(tx repositories.Store) error {
		var err error
		email, err = tx.Emails().GetByID(id)
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Email", id)
		}
		if err != nil {
			return err
		}

		email.Address = address
		return tx.Emails().Update(email)
	})
	if err != nil {
		return nil, err
	}

	logger.WithField("email_id", id).Info("Email updated")
	return email, nil
}

// Remove deletes an existing email
func (s *EmailService) Remove(id int64) error {
	err := s.store.InTx(func(tx repositories.Store) error {
		exists, err := tx.Emails().ExistsByID(id)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NotFound("Email", id)
		}
		return tx.Emails().Delete(id)
	})
	if err != nil {
		return err
	}

	logger.WithField("email_id", id).Info("Email removed")
	return nil
}
