package model

import "time"

// Startup is a company started by one or more founders.
type Startup struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	Industry    string    `json:"industry"`
	Stage       string    `json:"stage"`
	FoundedYear int       `json:"founded_year"`
	LogoURL     string    `json:"logo_url"`
	Visible     bool      `json:"visible"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StartupInput is the writable part of a startup.
type StartupInput struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=4000"`
	Website     string `json:"website" validate:"omitempty,url"`
	Industry    string `json:"industry" validate:"max=100"`
	Stage       string `json:"stage" validate:"omitempty,oneof=idea pre-seed seed series-a series-b growth"`
	FoundedYear int    `json:"founded_year" validate:"omitempty,min=1900,max=2100"`
	LogoURL     string `json:"logo_url" validate:"omitempty,max=2048"`
	Visible     *bool  `json:"visible"`
}

// Apply copies the input onto s. Visible is only touched when the input sets it.
func (in StartupInput) Apply(s *Startup) {
	s.Name = in.Name
	s.Description = in.Description
	s.Website = in.Website
	s.Industry = in.Industry
	s.Stage = in.Stage
	s.FoundedYear = in.FoundedYear
	s.LogoURL = in.LogoURL
	if in.Visible != nil {
		s.Visible = *in.Visible
	}
}
