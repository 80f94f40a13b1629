package store

import "github.com/fullsco/core/internal/models"

// Categories

func (s *Store) GetCategory(id int) (models.Category, bool) {
	return s.categories.get(id)
}

func (s *Store) GetCategoryBySlug(slug string) (models.Category, bool) {
	return s.categories.first(func(c models.Category) bool { return c.Slug == slug })
}

func (s *Store) CreateCategory(c models.Category) (models.Category, error) {
	return s.categories.insert(
		func(candidate, other models.Category) bool { return other.Slug == candidate.Slug },
		func(id int) models.Category {
			c.ID = id
			return c
		})
}

// UpdateCategory applies mutate to the stored row; the slug must stay unique.
func (s *Store) UpdateCategory(id int, mutate func(models.Category) models.Category) (models.Category, bool, error) {
	return s.categories.update(id,
		func(candidate, other models.Category) bool { return other.Slug == candidate.Slug },
		mutate)
}

// DeleteCategory removes the row only. Scholarships referencing the id keep
// their dangling categoryId.
func (s *Store) DeleteCategory(id int) bool {
	return s.categories.remove(id)
}

func (s *Store) ListCategories() []models.Category {
	return s.categories.list(nil)
}

// Levels

func (s *Store) GetLevel(id int) (models.Level, bool) {
	return s.levels.get(id)
}

func (s *Store) GetLevelBySlug(slug string) (models.Level, bool) {
	return s.levels.first(func(l models.Level) bool { return l.Slug == slug })
}

func (s *Store) CreateLevel(l models.Level) (models.Level, error) {
	return s.levels.insert(
		func(candidate, other models.Level) bool { return other.Slug == candidate.Slug },
		func(id int) models.Level {
			l.ID = id
			return l
		})
}

func (s *Store) ListLevels() []models.Level {
	return s.levels.list(nil)
}

// Countries

func (s *Store) GetCountry(id int) (models.Country, bool) {
	return s.countries.get(id)
}

func (s *Store) GetCountryBySlug(slug string) (models.Country, bool) {
	return s.countries.first(func(c models.Country) bool { return c.Slug == slug })
}

func (s *Store) CreateCountry(c models.Country) (models.Country, error) {
	return s.countries.insert(
		func(candidate, other models.Country) bool { return other.Slug == candidate.Slug },
		func(id int) models.Country {
			c.ID = id
			return c
		})
}

func (s *Store) ListCountries() []models.Country {
	return s.countries.list(nil)
}
