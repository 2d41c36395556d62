package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"founderhub/internal/http/middleware"
	"founderhub/internal/model"
	"founderhub/internal/service"
)

type visibilityRequest struct {
	Visible *bool `json:"visible"`
}

func (r visibilityRequest) value() (bool, error) {
	if r.Visible == nil {
		return false, badRequest("BAD_REQUEST", "visible is required")
	}
	return *r.Visible, nil
}

// ListFounders godoc
// @Summary  List founders
// @Tags     founders
// @Param    limit query int false "page size (1-100)"
// @Param    offset query int false "rows to skip"
// @Param    q query string false "search text"
// @Param    skill query string false "skill id"
// @Param    startup query string false "startup id"
// @Param    visibility query string false "all|visible|hidden (admins only)"
// @Success  200 {object} service.ListResult[model.Founder]
// @Security BearerAuth
// @Router   /api/v1/founders [get]
func ListFounders(svc service.FounderService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := listQuery(c, loc)
		if err != nil {
			return respondError(c, err)
		}
		res, err := svc.List(c.UserContext(), middleware.Identity(c), q)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

func GetFounder(svc service.FounderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return respondError(c, err)
		}
		f, err := svc.Get(c.UserContext(), middleware.Identity(c), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(f)
	}
}

func CreateFounder(svc service.FounderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.FounderInput
		if err := parseBody(c, &in); err != nil {
			return respondError(c, err)
		}
		f, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(f)
	}
}

func UpdateFounder(svc service.FounderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return respondError(c, err)
		}
		var in model.FounderInput
		if err := parseBody(c, &in); err != nil {
			return respondError(c, err)
		}
		f, err := svc.Update(c.UserContext(), middleware.Identity(c), id, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(f)
	}
}

// SetFounderVisibility godoc
// @Summary  Show or hide a founder
// @Tags     founders
// @Param    id path string true "founder id"
// @Success  204
// @Security BearerAuth
// @Router   /api/v1/founders/{id}/visibility [patch]
func SetFounderVisibility(svc service.FounderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return respondError(c, err)
		}
		var req visibilityRequest
		if err := parseBody(c, &req); err != nil {
			return respondError(c, err)
		}
		visible, err := req.value()
		if err != nil {
			return respondError(c, err)
		}
		if err := svc.SetVisibility(c.UserContext(), id, visible); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func DeleteFounder(svc service.FounderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return respondError(c, err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

type meResponse struct {
	Subject string         `json:"sub"`
	Email   string         `json:"email"`
	Admin   bool           `json:"is_admin"`
	Founder *model.Founder `json:"founder"`
}

// Me returns the caller's identity, admin flag and founder record if one matches their email.
func Me(svc service.FounderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		who := middleware.Identity(c)
		res := meResponse{Subject: who.Subject, Email: who.Email, Admin: who.Admin}

		f, err := svc.Self(c.UserContext(), who)
		switch {
		case err == nil:
			res.Founder = f
		case !isNotFound(err):
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}
