// Package store is the in-memory data layer: one map of rows per entity,
// integer surrogate keys, linear-scan lookups. Nothing is persisted; a
// process restart starts from the seed data again.
package store

import (
	"errors"
	"time"

	"github.com/fullsco/core/internal/models"
)

// ErrDuplicate is returned when an insert or update would violate a
// uniqueness constraint (slug, username, email, page path).
var ErrDuplicate = errors.New("duplicate unique field")

// Store owns every record in the system. It is safe for concurrent use;
// each operation is atomic with respect to its table.
type Store struct {
	users        table[models.User]
	categories   table[models.Category]
	levels       table[models.Level]
	countries    table[models.Country]
	scholarships table[models.Scholarship]
	posts        table[models.Post]
	tags         table[models.Tag]
	postTags     table[models.PostTag]
	stories      table[models.SuccessStory]
	subscribers  table[models.Subscriber]
	seoSettings  table[models.SeoSetting]

	now func() time.Time
}

// New returns an empty store. Call Seed to load the demo dataset.
func New() *Store {
	return &Store{
		users:        newTable[models.User](),
		categories:   newTable[models.Category](),
		levels:       newTable[models.Level](),
		countries:    newTable[models.Country](),
		scholarships: newTable[models.Scholarship](),
		posts:        newTable[models.Post](),
		tags:         newTable[models.Tag](),
		postTags:     newTable[models.PostTag](),
		stories:      newTable[models.SuccessStory](),
		subscribers:  newTable[models.Subscriber](),
		seoSettings:  newTable[models.SeoSetting](),
		now:          time.Now,
	}
}
