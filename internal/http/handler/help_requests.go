package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"founderhub/internal/http/middleware"
	"founderhub/internal/model"
	"founderhub/internal/service"
)

func ListHelpRequests(svc service.HelpRequestService, loc *time.Location) fiber.Handler {
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

func GetHelpRequest(svc service.HelpRequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return respondError(c, err)
		}
		hr, err := svc.Get(c.UserContext(), middleware.Identity(c), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(hr)
	}
}

func CreateHelpRequest(svc service.HelpRequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.HelpRequestInput
		if err := parseBody(c, &in); err != nil {
			return respondError(c, err)
		}
		hr, err := svc.Create(c.UserContext(), middleware.Identity(c), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(hr)
	}
}

func UpdateHelpRequest(svc service.HelpRequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return respondError(c, err)
		}
		var in model.HelpRequestInput
		if err := parseBody(c, &in); err != nil {
			return respondError(c, err)
		}
		hr, err := svc.Update(c.UserContext(), middleware.Identity(c), id, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(hr)
	}
}

// SetHelpRequestStatus godoc
// @Summary  Move a help request along open -> in_progress -> resolved
// @Tags     help-requests
// @Param    id path string true "help request id"
// @Success  200 {object} model.HelpRequest
// @Failure  409 {object} errorPayload
// @Security BearerAuth
// @Router   /api/v1/help-requests/{id}/status [patch]
func SetHelpRequestStatus(svc service.HelpRequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return respondError(c, err)
		}
		var in model.StatusInput
		if err := parseBody(c, &in); err != nil {
			return respondError(c, err)
		}
		hr, err := svc.SetStatus(c.UserContext(), middleware.Identity(c), id, in.Status)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(hr)
	}
}

func DeleteHelpRequest(svc service.HelpRequestService) fiber.Handler {
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
