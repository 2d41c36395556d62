package model

import "time"

// Founder is a member of the community directory.
type Founder struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Bio         string    `json:"bio"`
	Location    string    `json:"location"`
	LinkedInURL string    `json:"linkedin_url"`
	ImageURL    string    `json:"image_url"`
	StartupID   *string   `json:"startup_id"`
	SkillIDs    []string  `json:"skill_ids"`
	HobbyIDs    []string  `json:"hobby_ids"`
	Visible     bool      `json:"visible"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FounderInput is the writable part of a founder, as sent by clients.
type FounderInput struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Email       string   `json:"email" validate:"required,email"`
	Bio         string   `json:"bio" validate:"max=4000"`
	Location    string   `json:"location" validate:"max=200"`
	LinkedInURL string   `json:"linkedin_url" validate:"omitempty,url"`
	ImageURL    string   `json:"image_url" validate:"omitempty,max=2048"`
	StartupID   *string  `json:"startup_id" validate:"omitempty,uuid"`
	SkillIDs    []string `json:"skill_ids" validate:"dive,uuid"`
	HobbyIDs    []string `json:"hobby_ids" validate:"dive,uuid"`
	Visible     *bool    `json:"visible"`
}

// Apply copies the input onto f. Visible is only touched when the input sets it.
func (in FounderInput) Apply(f *Founder) {
	f.Name = in.Name
	f.Email = in.Email
	f.Bio = in.Bio
	f.Location = in.Location
	f.LinkedInURL = in.LinkedInURL
	f.ImageURL = in.ImageURL
	f.StartupID = in.StartupID
	f.SkillIDs = in.SkillIDs
	f.HobbyIDs = in.HobbyIDs
	if in.Visible != nil {
		f.Visible = *in.Visible
	}
}
