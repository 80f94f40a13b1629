package models

import "time"

// Post is a blog article. Views is bumped as a side effect of single-post
// reads and never decreases.
type Post struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Content         string    `json:"content"`
	Excerpt         string    `json:"excerpt"`
	AuthorID        *int      `json:"authorId"`
	ImageURL        string    `json:"imageUrl"`
	IsFeatured      bool      `json:"isFeatured"`
	Views           int       `json:"views"`
	MetaTitle       string    `json:"metaTitle"`
	MetaDescription string    `json:"metaDescription"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Tag labels posts; linked through PostTag.
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PostTag is the post/tag join row. At most one row exists per pair.
type PostTag struct {
	ID     int `json:"id"`
	PostID int `json:"postId"`
	TagID  int `json:"tagId"`
}
