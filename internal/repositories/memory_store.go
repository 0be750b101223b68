package repositories

import (
	"sort"
	"strings"
	"sync"
	"time"

	"peoplebook/internal/models"
)

// MemoryStore is an in-memory Store implementation with the same lookup
// and ordering semantics as the sqlite store. It backs service and
// handler tests; it is not meant for production use.
type MemoryStore struct {
	mu           sync.RWMutex
	people       map[int64]*models.Person
	emails       map[int64]*models.Email
	nextPersonID int64
	nextEmailID  int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		people:       make(map[int64]*models.Person),
		emails:       make(map[int64]*models.Email),
		nextPersonID: 1,
		nextEmailID:  1,
	}
}

func (m *MemoryStore) People() PersonStore {
	return (*memoryPersonStore)(m)
}

func (m *MemoryStore) Emails() EmailStore {
	return (*memoryEmailStore)(m)
}

// InTx runs fn directly. The in-memory store offers no rollback; tests
// that need real atomicity run against the sqlite store.
func (m *MemoryStore) InTx(fn func(Store) error) error {
	return fn(m)
}

type memoryPersonStore MemoryStore

func (m *memoryPersonStore) Create(person *models.Person) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	person.ID = m.nextPersonID
	m.nextPersonID++
	person.CreatedAt = time.Now().UTC()
	person.UpdatedAt = person.CreatedAt

	m.people[person.ID] = copyPerson(person)
	return nil
}

func (m *memoryPersonStore) GetByID(id int64) (*models.Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	person, ok := m.people[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyPerson(person), nil
}

func (m *memoryPersonStore) GetAll() ([]*models.Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	people := make([]*models.Person, 0, len(m.people))
	for _, person := range m.people {
		people = append(people, copyPerson(person))
	}
	sort.Slice(people, func(i, j int) bool { return people[i].ID < people[j].ID })
	return people, nil
}

func (m *memoryPersonStore) SearchByName(name string) ([]*models.Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToLower(name)
	var people []*models.Person
	for _, person := range m.people {
		if strings.Contains(strings.ToLower(person.Name), needle) {
			people = append(people, copyPerson(person))
		}
	}
	sort.Slice(people, func(i, j int) bool { return people[i].Name < people[j].Name })
	return people, nil
}

func (m *memoryPersonStore) FindByNameAndBirthDate(name string, birthDate models.Date) (*models.Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, person := range m.people {
		if person.Name == name && person.BirthDate.Equal(birthDate) {
			return copyPerson(person), nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryPersonStore) ExistsByNameAndBirthDate(name string, birthDate models.Date) (bool, error) {
	_, err := m.FindByNameAndBirthDate(name, birthDate)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (m *memoryPersonStore) ExistsByID(id int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.people[id]
	return ok, nil
}

func (m *memoryPersonStore) Update(person *models.Person) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.people[person.ID]
	if !ok {
		return ErrNotFound
	}

	existing.Name = person.Name
	existing.BirthDate = person.BirthDate
	existing.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *memoryPersonStore) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.people, id)
	return nil
}

type memoryEmailStore MemoryStore

func (m *memoryEmailStore) Create(email *models.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	email.ID = m.nextEmailID
	m.nextEmailID++
	email.CreatedAt = time.Now().UTC()

	m.emails[email.ID] = copyEmail(email)
	return nil
}

func (m *memoryEmailStore) GetByID(id int64) (*models.Email, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	email, ok := m.emails[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyEmail(email), nil
}

func (m *memoryEmailStore) GetByPersonID(personID int64) ([]*models.Email, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var emails []*models.Email
	for _, email := range m.emails {
		if email.PersonID == personID {
			emails = append(emails, copyEmail(email))
		}
	}
	sort.Slice(emails, func(i, j int) bool { return emails[i].ID < emails[j].ID })
	return emails, nil
}

func (m *memoryEmailStore) ExistsByID(id int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.emails[id]
	return ok, nil
}

func (m *memoryEmailStore) Update(email *models.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.emails[email.ID]
	if !ok {
		return ErrNotFound
	}

	existing.Address = email.Address
	return nil
}

func (m *memoryEmailStore) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.emails, id)
	return nil
}

func (m *memoryEmailStore) DeleteByPersonID(personID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, email := range m.emails {
		if email.PersonID == personID {
			delete(m.emails, id)
		}
	}
	return nil
}

func copyPerson(person *models.Person) *models.Person {
	clone := *person
	clone.Emails = nil
	return &clone
}

func copyEmail(email *models.Email) *models.Email {
	clone := *email
	return &clone
}
