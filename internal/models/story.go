package models

import "time"

// SuccessStory is a testimonial from a scholarship winner.
type SuccessStory struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Content         string    `json:"content"`
	ScholarshipName string    `json:"scholarshipName"`
	ImageURL        string    `json:"imageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
}
