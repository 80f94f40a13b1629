package store

import "github.com/fullsco/core/internal/models"

func (s *Store) GetSeoSetting(id int) (models.SeoSetting, bool) {
	return s.seoSettings.get(id)
}

func (s *Store) GetSeoSettingByPath(pagePath string) (models.SeoSetting, bool) {
	return s.seoSettings.first(func(st models.SeoSetting) bool { return st.PagePath == pagePath })
}

// UpsertSeoSetting creates the setting for its page path, or overwrites the
// meta fields of the existing one, in a single atomic step. The bool reports
// whether a row was created.
func (s *Store) UpsertSeoSetting(in models.SeoSetting) (models.SeoSetting, bool) {
	return s.seoSettings.upsert(
		func(st models.SeoSetting) bool { return st.PagePath == in.PagePath },
		func(id int) models.SeoSetting {
			in.ID = id
			return in
		},
		func(st models.SeoSetting) models.SeoSetting {
			st.MetaTitle = in.MetaTitle
			st.MetaDescription = in.MetaDescription
			st.OgImage = in.OgImage
			st.Keywords = in.Keywords
			return st
		})
}

// UpdateSeoSetting applies mutate; the page path must stay unique.
func (s *Store) UpdateSeoSetting(id int, mutate func(models.SeoSetting) models.SeoSetting) (models.SeoSetting, bool, error) {
	return s.seoSettings.update(id,
		func(candidate, other models.SeoSetting) bool { return other.PagePath == candidate.PagePath },
		mutate)
}

func (s *Store) ListSeoSettings() []models.SeoSetting {
	return s.seoSettings.list(nil)
}
