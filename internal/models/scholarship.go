package models

import "time"

// Scholarship is a listed scholarship opportunity.
//
// Deadline and Amount are free text, matching what editors enter in the
// back-office ("June 30, 2026", "Full tuition + stipend"). The taxonomy
// references are optional and not integrity-checked: deleting a country
// leaves scholarships pointing at the dead id.
type Scholarship struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	Deadline        string    `json:"deadline"`
	Amount          string    `json:"amount"`
	IsFeatured      bool      `json:"isFeatured"`
	IsFullyFunded   bool      `json:"isFullyFunded"`
	CountryID       *int      `json:"countryId"`
	LevelID         *int      `json:"levelId"`
	CategoryID      *int      `json:"categoryId"`
	Requirements    string    `json:"requirements"`
	ApplicationLink string    `json:"applicationLink"`
	ImageURL        string    `json:"imageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
