package models

import "time"

// Subscriber is a newsletter signup. Email is unique.
type Subscriber struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
