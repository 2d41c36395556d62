package repository

import (
	"context"
	"errors"
	"time"

	"founderhub/internal/model"
)

var (
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("record conflicts with an existing one")
	// ErrInvalidReference is returned when a write points at a row that does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// Lookups that find nothing return sql.ErrNoRows, mirroring database/sql.

// Visibility filters founders, startups and events by their visible flag.
// For help requests it applies to the owning founder.
type Visibility string

const (
	VisibilityAll     Visibility = "all"
	VisibilityVisible Visibility = "visible"
	VisibilityHidden  Visibility = "hidden"
)

// ListQuery holds pagination, search, sort and filter parameters shared by all list endpoints.
// Filters that do not apply to an entity are ignored by its repository.
type ListQuery struct {
	Limit  int
	Offset int

	// Search is a case-insensitive substring matched against the entity's text columns.
	Search string
	// Sort is an API field name; repositories map it through a whitelist and fall back to their default.
	Sort string
	Desc bool

	Visibility Visibility
	// OwnerEmail keeps help requests of the founder with this email listed even
	// when that founder is hidden.
	OwnerEmail string

	SkillID   string
	HobbyID   string
	StartupID string
	FounderID string
	Status    model.HelpRequestStatus
	From      *time.Time
	To        *time.Time
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}

// FounderRepository is the data access contract for founders and their skill/hobby links.
type FounderRepository interface {
	Create(ctx context.Context, f *model.Founder) (*model.Founder, error)
	FindByID(ctx context.Context, id string) (*model.Founder, error)
	// FindByEmail matches case-insensitively.
	FindByEmail(ctx context.Context, email string) (*model.Founder, error)
	List(ctx context.Context, q ListQuery) (*PageResult[model.Founder], error)
	// Update replaces the row and its skill/hobby links.
	Update(ctx context.Context, f *model.Founder) (*model.Founder, error)
	SetVisibility(ctx context.Context, id string, visible bool) error
	Delete(ctx context.Context, id string) error
}

// StartupRepository is the data access contract for startups.
type StartupRepository interface {
	Create(ctx context.Context, s *model.Startup) (*model.Startup, error)
	FindByID(ctx context.Context, id string) (*model.Startup, error)
	// FindByName matches case-insensitively.
	FindByName(ctx context.Context, name string) (*model.Startup, error)
	List(ctx context.Context, q ListQuery) (*PageResult[model.Startup], error)
	Update(ctx context.Context, s *model.Startup) (*model.Startup, error)
	SetVisibility(ctx context.Context, id string, visible bool) error
	Delete(ctx context.Context, id string) error
}

// SkillRepository is the data access contract for skills.
type SkillRepository interface {
	Create(ctx context.Context, s *model.Skill) (*model.Skill, error)
	FindByID(ctx context.Context, id string) (*model.Skill, error)
	FindByName(ctx context.Context, name string) (*model.Skill, error)
	List(ctx context.Context, q ListQuery) (*PageResult[model.Skill], error)
	Update(ctx context.Context, s *model.Skill) (*model.Skill, error)
	Delete(ctx context.Context, id string) error
}

// HobbyRepository is the data access contract for hobbies.
type HobbyRepository interface {
	Create(ctx context.Context, h *model.Hobby) (*model.Hobby, error)
	FindByID(ctx context.Context, id string) (*model.Hobby, error)
	List(ctx context.Context, q ListQuery) (*PageResult[model.Hobby], error)
	Update(ctx context.Context, h *model.Hobby) (*model.Hobby, error)
	Delete(ctx context.Context, id string) error
}

// HelpRequestRepository is the data access contract for help requests.
type HelpRequestRepository interface {
	Create(ctx context.Context, hr *model.HelpRequest) (*model.HelpRequest, error)
	FindByID(ctx context.Context, id string) (*model.HelpRequest, error)
	List(ctx context.Context, q ListQuery) (*PageResult[model.HelpRequest], error)
	Update(ctx context.Context, hr *model.HelpRequest) (*model.HelpRequest, error)
	Delete(ctx context.Context, id string) error
}

// EventRepository is the data access contract for events.
type EventRepository interface {
	Create(ctx context.Context, e *model.Event) (*model.Event, error)
	FindByID(ctx context.Context, id string) (*model.Event, error)
	// List applies From/To as an overlap window: an event matches when it has not
	// ended before From and starts before To.
	List(ctx context.Context, q ListQuery) (*PageResult[model.Event], error)
	Update(ctx context.Context, e *model.Event) (*model.Event, error)
	Delete(ctx context.Context, id string) error
}
