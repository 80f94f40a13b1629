package store

import "github.com/fullsco/core/internal/models"

// PostFilter narrows ListPosts. All set fields must match.
type PostFilter struct {
	IsFeatured *bool
	AuthorID   *int
}

func (f PostFilter) matches(p models.Post) bool {
	if f.IsFeatured != nil && p.IsFeatured != *f.IsFeatured {
		return false
	}
	if f.AuthorID != nil && (p.AuthorID == nil || *p.AuthorID != *f.AuthorID) {
		return false
	}
	return true
}

func (s *Store) GetPost(id int) (models.Post, bool) {
	return s.posts.get(id)
}

func (s *Store) GetPostBySlug(slug string) (models.Post, bool) {
	return s.posts.first(func(p models.Post) bool { return p.Slug == slug })
}

func (s *Store) CreatePost(p models.Post) (models.Post, error) {
	return s.posts.insert(
		func(candidate, other models.Post) bool { return other.Slug == candidate.Slug },
		func(id int) models.Post {
			p.ID = id
			p.Views = 0
			p.CreatedAt = s.now()
			p.UpdatedAt = p.CreatedAt
			return p
		})
}

// UpdatePost applies mutate and re-stamps UpdatedAt. Views cannot be set
// through here; it only moves via IncrementPostViews.
func (s *Store) UpdatePost(id int, mutate func(models.Post) models.Post) (models.Post, bool, error) {
	return s.posts.update(id,
		func(candidate, other models.Post) bool { return other.Slug == candidate.Slug },
		func(p models.Post) models.Post {
			views := p.Views
			next := mutate(p)
			next.Views = views
			next.UpdatedAt = s.now()
			return next
		})
}

func (s *Store) DeletePost(id int) bool {
	return s.posts.remove(id)
}

// IncrementPostViews bumps the view counter atomically and returns the
// updated post. UpdatedAt is left alone; a read is not an edit.
func (s *Store) IncrementPostViews(id int) (models.Post, bool) {
	p, ok, _ := s.posts.update(id, nil, func(p models.Post) models.Post {
		p.Views++
		return p
	})
	return p, ok
}

func (s *Store) ListPosts(filter PostFilter) []models.Post {
	return s.posts.list(filter.matches)
}

// Tags

func (s *Store) GetTag(id int) (models.Tag, bool) {
	return s.tags.get(id)
}

func (s *Store) GetTagBySlug(slug string) (models.Tag, bool) {
	return s.tags.first(func(t models.Tag) bool { return t.Slug == slug })
}

func (s *Store) CreateTag(t models.Tag) (models.Tag, error) {
	return s.tags.insert(
		func(candidate, other models.Tag) bool { return other.Slug == candidate.Slug },
		func(id int) models.Tag {
			t.ID = id
			return t
		})
}

func (s *Store) ListTags() []models.Tag {
	return s.tags.list(nil)
}

// Post/tag join rows

// AddTagToPost links a tag to a post. Adding an existing pair is a no-op
// that returns the existing row.
func (s *Store) AddTagToPost(postID, tagID int) (models.PostTag, error) {
	row, err := s.postTags.insert(
		func(candidate, other models.PostTag) bool {
			return other.PostID == candidate.PostID && other.TagID == candidate.TagID
		},
		func(id int) models.PostTag {
			return models.PostTag{ID: id, PostID: postID, TagID: tagID}
		})
	if err == ErrDuplicate {
		existing, _ := s.postTags.first(func(pt models.PostTag) bool {
			return pt.PostID == postID && pt.TagID == tagID
		})
		return existing, nil
	}
	return row, err
}

func (s *Store) RemoveTagFromPost(postID, tagID int) bool {
	return s.postTags.removeFirst(func(pt models.PostTag) bool {
		return pt.PostID == postID && pt.TagID == tagID
	})
}

// GetPostTags resolves the tags linked to a post. Join rows pointing at
// deleted tags are skipped.
func (s *Store) GetPostTags(postID int) []models.Tag {
	rows := s.postTags.list(func(pt models.PostTag) bool { return pt.PostID == postID })
	tags := make([]models.Tag, 0, len(rows))
	for _, row := range rows {
		if tag, ok := s.tags.get(row.TagID); ok {
			tags = append(tags, tag)
		}
	}
	return tags
}

// GetTagPosts resolves the posts carrying a tag.
func (s *Store) GetTagPosts(tagID int) []models.Post {
	rows := s.postTags.list(func(pt models.PostTag) bool { return pt.TagID == tagID })
	posts := make([]models.Post, 0, len(rows))
	for _, row := range rows {
		if post, ok := s.posts.get(row.PostID); ok {
			posts = append(posts, post)
		}
	}
	return posts
}
