package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"founderhub/internal/auth"
	"founderhub/internal/model"
	"founderhub/internal/repository"
)

// HelpRequestService defines the use cases for help requests.
type HelpRequestService interface {
	// List and Get hide requests of hidden founders from non-admins other than that founder.
	List(ctx context.Context, who auth.Identity, q repository.ListQuery) (*ListResult[model.HelpRequest], error)
	Get(ctx context.Context, who auth.Identity, id string) (*model.HelpRequest, error)
	// Create files a request. Non-admins may only file for their own founder record.
	Create(ctx context.Context, who auth.Identity, in model.HelpRequestInput) (*model.HelpRequest, error)
	// Update edits title, description and skill. Only the owner or an admin may do so,
	// and only admins may move a request to another founder.
	Update(ctx context.Context, who auth.Identity, id string, in model.HelpRequestInput) (*model.HelpRequest, error)
	// SetStatus moves a request along its lifecycle; see model.HelpRequestStatus.CanTransition.
	SetStatus(ctx context.Context, who auth.Identity, id string, status model.HelpRequestStatus) (*model.HelpRequest, error)
	Delete(ctx context.Context, id string) error
}

type helpRequestService struct {
	repo     repository.HelpRequestRepository
	founders repository.FounderRepository
	log      *zap.Logger
}

func NewHelpRequestService(repo repository.HelpRequestRepository, founders repository.FounderRepository, log *zap.Logger) HelpRequestService {
	return &helpRequestService{repo: repo, founders: founders, log: log}
}

func (s *helpRequestService) List(ctx context.Context, who auth.Identity, q repository.ListQuery) (*ListResult[model.HelpRequest], error) {
	q = scopeVisibility(who, normalize(q))
	q.OwnerEmail = ""
	if !who.Admin {
		q.OwnerEmail = strings.TrimSpace(who.Email)
	}
	if q.Status != "" && !q.Status.Valid() {
		return nil, invalidField("status", "must be one of: open in_progress resolved")
	}
	page, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return newListResult(page, q), nil
}

func (s *helpRequestService) Get(ctx context.Context, who auth.Identity, id string) (*model.HelpRequest, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	hr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	if who.Admin {
		return hr, nil
	}
	f, err := s.founders.FindByID(ctx, hr.FounderID)
	if err != nil {
		return nil, translate(err)
	}
	if !f.Visible && !auth.SameEmail(f.Email, who.Email) {
		return nil, ErrNotFound
	}
	return hr, nil
}

func (s *helpRequestService) Create(ctx context.Context, who auth.Identity, in model.HelpRequestInput) (*model.HelpRequest, error) {
	in = cleanHelpRequestInput(in)
	if err := Validate(in); err != nil {
		return nil, err
	}
	if !who.Admin {
		if err := s.requireOwner(ctx, who, in.FounderID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	hr := &model.HelpRequest{
		ID:          uuid.New().String(),
		FounderID:   in.FounderID,
		SkillID:     in.SkillID,
		Title:       in.Title,
		Description: in.Description,
		Status:      model.StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	stored, err := s.repo.Create(ctx, hr)
	if err != nil {
		return nil, translate(err)
	}
	return stored, nil
}

func (s *helpRequestService) Update(ctx context.Context, who auth.Identity, id string, in model.HelpRequestInput) (*model.HelpRequest, error) {
	existing, err := s.editable(ctx, who, id)
	if err != nil {
		return nil, err
	}
	if !who.Admin {
		in.FounderID = existing.FounderID
	}
	in = cleanHelpRequestInput(in)
	if err := Validate(in); err != nil {
		return nil, err
	}

	hr := *existing
	hr.FounderID = in.FounderID
	hr.SkillID = in.SkillID
	hr.Title = in.Title
	hr.Description = in.Description
	hr.UpdatedAt = time.Now().UTC()

	stored, err := s.repo.Update(ctx, &hr)
	if err != nil {
		return nil, translate(err)
	}
	return stored, nil
}

func (s *helpRequestService) SetStatus(ctx context.Context, who auth.Identity, id string, status model.HelpRequestStatus) (*model.HelpRequest, error) {
	if err := Validate(model.StatusInput{Status: status}); err != nil {
		return nil, err
	}
	existing, err := s.editable(ctx, who, id)
	if err != nil {
		return nil, err
	}
	if !existing.Status.CanTransition(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, existing.Status, status)
	}

	hr := *existing
	hr.Status = status
	hr.UpdatedAt = time.Now().UTC()
	stored, err := s.repo.Update(ctx, &hr)
	if err != nil {
		return nil, translate(err)
	}
	s.log.Info("help request status changed",
		zap.String("help_request_id", id),
		zap.String("from", string(existing.Status)),
		zap.String("to", string(status)),
	)
	return stored, nil
}

func (s *helpRequestService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return translate(s.repo.Delete(ctx, id))
}

// editable loads a request and checks that who may change it.
func (s *helpRequestService) editable(ctx context.Context, who auth.Identity, id string) (*model.HelpRequest, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	hr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	if !who.Admin {
		if err := s.requireOwner(ctx, who, hr.FounderID); err != nil {
			return nil, err
		}
	}
	return hr, nil
}

// requireOwner passes when founderID belongs to the caller's email.
func (s *helpRequestService) requireOwner(ctx context.Context, who auth.Identity, founderID string) error {
	f, err := s.founders.FindByID(ctx, founderID)
	if err != nil {
		if errors.Is(translate(err), ErrNotFound) {
			return ErrForbidden
		}
		return err
	}
	if !auth.SameEmail(f.Email, who.Email) {
		return ErrForbidden
	}
	return nil
}

func cleanHelpRequestInput(in model.HelpRequestInput) model.HelpRequestInput {
	in.Title = strings.TrimSpace(in.Title)
	in.FounderID = strings.TrimSpace(in.FounderID)
	if in.SkillID != nil && strings.TrimSpace(*in.SkillID) == "" {
		in.SkillID = nil
	}
	return in
}
