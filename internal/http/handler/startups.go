package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"founderhub/internal/http/middleware"
	"founderhub/internal/model"
	"founderhub/internal/service"
)

func ListStartups(svc service.StartupService, loc *time.Location) fiber.Handler {
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

func GetStartup(svc service.StartupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return respondError(c, err)
		}
		s, err := svc.Get(c.UserContext(), middleware.Identity(c), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(s)
	}
}

func CreateStartup(svc service.StartupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.StartupInput
		if err := parseBody(c, &in); err != nil {
			return respondError(c, err)
		}
		s, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(s)
	}
}

func UpdateStartup(svc service.StartupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return respondError(c, err)
		}
		var in model.StartupInput
		if err := parseBody(c, &in); err != nil {
			return respondError(c, err)
		}
		s, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(s)
	}
}

func SetStartupVisibility(svc service.StartupService) fiber.Handler {
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

func DeleteStartup(svc service.StartupService) fiber.Handler {
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
