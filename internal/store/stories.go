package store

import "github.com/fullsco/core/internal/models"

func (s *Store) GetSuccessStory(id int) (models.SuccessStory, bool) {
	return s.stories.get(id)
}

func (s *Store) GetSuccessStoryBySlug(slug string) (models.SuccessStory, bool) {
	return s.stories.first(func(st models.SuccessStory) bool { return st.Slug == slug })
}

func (s *Store) CreateSuccessStory(st models.SuccessStory) (models.SuccessStory, error) {
	return s.stories.insert(
		func(candidate, other models.SuccessStory) bool { return other.Slug == candidate.Slug },
		func(id int) models.SuccessStory {
			st.ID = id
			st.CreatedAt = s.now()
			return st
		})
}

func (s *Store) UpdateSuccessStory(id int, mutate func(models.SuccessStory) models.SuccessStory) (models.SuccessStory, bool, error) {
	return s.stories.update(id,
		func(candidate, other models.SuccessStory) bool { return other.Slug == candidate.Slug },
		mutate)
}

func (s *Store) DeleteSuccessStory(id int) bool {
	return s.stories.remove(id)
}

func (s *Store) ListSuccessStories() []models.SuccessStory {
	return s.stories.list(nil)
}
