package store

import "github.com/fullsco/core/internal/models"

// ScholarshipFilter narrows ListScholarships. All set fields must match
// (AND semantics).
type ScholarshipFilter struct {
	IsFeatured *bool
	CountryID  *int
	LevelID    *int
	CategoryID *int
}

func (f ScholarshipFilter) matches(sc models.Scholarship) bool {
	if f.IsFeatured != nil && sc.IsFeatured != *f.IsFeatured {
		return false
	}
	if f.CountryID != nil && (sc.CountryID == nil || *sc.CountryID != *f.CountryID) {
		return false
	}
	if f.LevelID != nil && (sc.LevelID == nil || *sc.LevelID != *f.LevelID) {
		return false
	}
	if f.CategoryID != nil && (sc.CategoryID == nil || *sc.CategoryID != *f.CategoryID) {
		return false
	}
	return true
}

func (s *Store) GetScholarship(id int) (models.Scholarship, bool) {
	return s.scholarships.get(id)
}

func (s *Store) GetScholarshipBySlug(slug string) (models.Scholarship, bool) {
	return s.scholarships.first(func(sc models.Scholarship) bool { return sc.Slug == slug })
}

func (s *Store) CreateScholarship(sc models.Scholarship) (models.Scholarship, error) {
	return s.scholarships.insert(
		func(candidate, other models.Scholarship) bool { return other.Slug == candidate.Slug },
		func(id int) models.Scholarship {
			sc.ID = id
			sc.CreatedAt = s.now()
			sc.UpdatedAt = sc.CreatedAt
			return sc
		})
}

// UpdateScholarship applies mutate and re-stamps UpdatedAt.
func (s *Store) UpdateScholarship(id int, mutate func(models.Scholarship) models.Scholarship) (models.Scholarship, bool, error) {
	return s.scholarships.update(id,
		func(candidate, other models.Scholarship) bool { return other.Slug == candidate.Slug },
		func(sc models.Scholarship) models.Scholarship {
			next := mutate(sc)
			next.UpdatedAt = s.now()
			return next
		})
}

func (s *Store) DeleteScholarship(id int) bool {
	return s.scholarships.remove(id)
}

func (s *Store) ListScholarships(filter ScholarshipFilter) []models.Scholarship {
	return s.scholarships.list(filter.matches)
}
