package store

import "github.com/fullsco/core/internal/models"

func (s *Store) GetSubscriber(id int) (models.Subscriber, bool) {
	return s.subscribers.get(id)
}

func (s *Store) GetSubscriberByEmail(email string) (models.Subscriber, bool) {
	return s.subscribers.first(func(sub models.Subscriber) bool { return sub.Email == email })
}

// CreateSubscriber rejects duplicate emails with ErrDuplicate.
func (s *Store) CreateSubscriber(sub models.Subscriber) (models.Subscriber, error) {
	return s.subscribers.insert(
		func(candidate, other models.Subscriber) bool { return other.Email == candidate.Email },
		func(id int) models.Subscriber {
			sub.ID = id
			sub.CreatedAt = s.now()
			return sub
		})
}

func (s *Store) ListSubscribers() []models.Subscriber {
	return s.subscribers.list(nil)
}
