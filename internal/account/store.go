package account

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Store holds members and their login flags, both keyed by EmailKey.
// A login flag may exist without a member and vice versa.
type Store struct {
	mu      sync.RWMutex
	nextID  uint64
	members map[string]Member
	logins  map[string]bool
}

func NewStore() *Store {
	return &Store{
		members: map[string]Member{},
		logins:  map[string]bool{},
	}
}

func (s *Store) Register(name, email, password string) (Member, error) {
	key := EmailKey(email)
	name = strings.TrimSpace(name)
	if key == "" || name == "" || password == "" {
		return Member{}, ErrInvalidInput
	}

	hash, err := HashPassword(password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return Member{}, ErrInvalidInput
		}
		return Member{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[key]; ok {
		return Member{}, ErrEmailTaken
	}
	m := s.insert(name, key, hash)
	s.logins[key] = false
	return m, nil
}

// Authenticate checks a local password and marks the member logged in.
func (s *Store) Authenticate(email, password string) (Member, error) {
	key := EmailKey(email)
	if key == "" || password == "" {
		return Member{}, ErrInvalidInput
	}

	s.mu.RLock()
	m, ok := s.members[key]
	s.mu.RUnlock()
	if !ok || !ComparePassword(m.PasswordHash, password) {
		return Member{}, ErrInvalidCredentials
	}

	s.mu.Lock()
	s.logins[key] = true
	s.mu.Unlock()
	return m, nil
}

// AuthenticateExternal logs in an identity already verified by an outside provider.
// Unknown emails get a member without a password; a missing name is backfilled.
func (s *Store) AuthenticateExternal(email, displayName string) (Member, error) {
	key := EmailKey(email)
	if key == "" {
		return Member{}, ErrInvalidInput
	}
	displayName = strings.TrimSpace(displayName)

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.members[key]
	switch {
	case !ok:
		m = s.insert(displayName, key, "")
	case m.Name == "" && displayName != "":
		m.Name = displayName
		s.members[key] = m
	}
	s.logins[key] = true
	return m, nil
}

// EndSession clears the login flag if one exists. It always reports logged out.
func (s *Store) EndSession(email string) bool {
	key := EmailKey(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	_, member := s.members[key]
	if _, flagged := s.logins[key]; member || flagged {
		s.logins[key] = false
	}
	return false
}

func (s *Store) LoggedIn(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logins[EmailKey(email)]
}

func (s *Store) Lookup(email string) (Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.members[EmailKey(email)]
	return m, ok
}

// insert must be called with mu held.
func (s *Store) insert(name, key, hash string) Member {
	s.nextID++
	m := Member{
		ID:           s.nextID,
		Name:         name,
		Email:        key,
		PasswordHash: hash,
	}
	s.members[key] = m
	return m
}
