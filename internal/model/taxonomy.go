package model

import "time"

// Skill is something a founder can offer or ask help for.
type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Hobby is a free-time interest shown on founder profiles.
type Hobby struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SkillInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Category string `json:"category" validate:"max=100"`
}

type HobbyInput struct {
	Name string `json:"name" validate:"required,max=100"`
}
