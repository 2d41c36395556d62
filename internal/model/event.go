package model

import "time"

// Event is a community event shown in the list and calendar views.
type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	URL         string     `json:"url"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	Visible     bool       `json:"visible"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type EventInput struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=4000"`
	Location    string     `json:"location" validate:"max=200"`
	URL         string     `json:"url" validate:"omitempty,url"`
	StartsAt    time.Time  `json:"starts_at" validate:"required"`
	EndsAt      *time.Time `json:"ends_at"`
	Visible     *bool      `json:"visible"`
}

// Apply copies the input onto e. Visible defaults to true for new events.
func (in EventInput) Apply(e *Event) {
	e.Title = in.Title
	e.Description = in.Description
	e.Location = in.Location
	e.URL = in.URL
	e.StartsAt = in.StartsAt
	e.EndsAt = in.EndsAt
	if in.Visible != nil {
		e.Visible = *in.Visible
	}
}
