// Package service holds the use cases behind the REST API: validation, role rules,
// visibility filtering and the translation of repository errors.
package service

import (
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"founderhub/internal/auth"
	"founderhub/internal/repository"
)

var (
	ErrIDRequired        = errors.New("id is required")
	ErrNotFound          = errors.New("resource not found")
	ErrForbidden         = errors.New("not allowed for this user")
	ErrConflict          = errors.New("resource already exists")
	ErrInvalidReference  = errors.New("referenced resource does not exist")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrReaderNil         = errors.New("reader is nil")
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListResult is the service-level DTO for a page of T.
type ListResult[T any] struct {
	Items  []T `json:"data"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func newListResult[T any](page *repository.PageResult[T], q repository.ListQuery) *ListResult[T] {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	return &ListResult[T]{Items: items, Total: page.Total, Limit: q.Limit, Offset: q.Offset}
}

// normalize clamps pagination into range.
func normalize(q repository.ListQuery) repository.ListQuery {
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.Visibility == "" {
		q.Visibility = repository.VisibilityAll
	}
	return q
}

// scopeVisibility forces non-admin callers onto visible rows only.
func scopeVisibility(who auth.Identity, q repository.ListQuery) repository.ListQuery {
	if !who.Admin {
		q.Visibility = repository.VisibilityVisible
	}
	return q
}

// translate maps repository errors onto service sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case errors.Is(err, repository.ErrConflict):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, repository.ErrInvalidReference):
		return fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	return err
}

// FieldError is one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when input fails validation. Handlers render it as 400 with details.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func invalidField(field, msg string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: msg}}}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks struct tags on v and converts failures into a *ValidationError.
func Validate(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fieldPath(fe), Message: message(fe)})
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace, keeping slice indexes.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a UUID"
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return "is invalid (" + fe.Tag() + ")"
}
