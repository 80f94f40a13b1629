package store

import "github.com/fullsco/core/internal/models"

func (s *Store) GetUser(id int) (models.User, bool) {
	return s.users.get(id)
}

func (s *Store) GetUserByUsername(username string) (models.User, bool) {
	return s.users.first(func(u models.User) bool { return u.Username == username })
}

func (s *Store) GetUserByEmail(email string) (models.User, bool) {
	return s.users.first(func(u models.User) bool { return u.Email == email })
}

// CreateUser stores u with the next id and a creation timestamp. Username
// and email are unique across all users.
func (s *Store) CreateUser(u models.User) (models.User, error) {
	return s.users.insert(
		func(candidate, other models.User) bool {
			return other.Username == candidate.Username || other.Email == candidate.Email
		},
		func(id int) models.User {
			u.ID = id
			u.CreatedAt = s.now()
			return u
		})
}

func (s *Store) ListUsers() []models.User {
	return s.users.list(nil)
}
