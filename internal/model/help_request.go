package model

import "time"

// HelpRequestStatus is the lifecycle state of a help request.
type HelpRequestStatus string

const (
	StatusOpen       HelpRequestStatus = "open"
	StatusInProgress HelpRequestStatus = "in_progress"
	StatusResolved   HelpRequestStatus = "resolved"
)

// Valid reports whether s is a known status.
func (s HelpRequestStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// CanTransition reports whether a request may move from s to next.
// open -> in_progress -> resolved, with open -> resolved and reopening allowed.
func (s HelpRequestStatus) CanTransition(next HelpRequestStatus) bool {
	switch s {
	case StatusOpen:
		return next == StatusInProgress || next == StatusResolved
	case StatusInProgress:
		return next == StatusResolved || next == StatusOpen
	case StatusResolved:
		return next == StatusOpen
	}
	return false
}

// HelpRequest is a founder asking the community for help.
type HelpRequest struct {
	ID          string            `json:"id"`
	FounderID   string            `json:"founder_id"`
	SkillID     *string           `json:"skill_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      HelpRequestStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type HelpRequestInput struct {
	FounderID   string  `json:"founder_id" validate:"required,uuid"`
	SkillID     *string `json:"skill_id" validate:"omitempty,uuid"`
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=4000"`
}

type StatusInput struct {
	Status HelpRequestStatus `json:"status" validate:"required,oneof=open in_progress resolved"`
}
