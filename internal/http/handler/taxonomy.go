package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"founderhub/internal/repository"
	"founderhub/internal/service"
)

// catalogue is the shape shared by the skill and hobby services.
type catalogue[T, In any] interface {
	List(ctx context.Context, q repository.ListQuery) (*service.ListResult[T], error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, in In) (*T, error)
	Update(ctx context.Context, id string, in In) (*T, error)
	Delete(ctx context.Context, id string) error
}

func listCatalogue[T, In any](svc catalogue[T, In], loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := listQuery(c, loc)
		if err != nil {
			return respondError(c, err)
		}
		res, err := svc.List(c.UserContext(), q)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

func getCatalogue[T, In any](svc catalogue[T, In]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return respondError(c, err)
		}
		v, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(v)
	}
}

func createCatalogue[T, In any](svc catalogue[T, In]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in In
		if err := parseBody(c, &in); err != nil {
			return respondError(c, err)
		}
		v, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(v)
	}
}

func updateCatalogue[T, In any](svc catalogue[T, In]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return respondError(c, err)
		}
		var in In
		if err := parseBody(c, &in); err != nil {
			return respondError(c, err)
		}
		v, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(v)
	}
}

func deleteCatalogue[T, In any](svc catalogue[T, In]) fiber.Handler {
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

// registerCatalogue mounts list/get for members and create/update/delete for admins under r.
func registerCatalogue[T, In any](r fiber.Router, svc catalogue[T, In], loc *time.Location, admin fiber.Handler) {
	r.Get("/", listCatalogue(svc, loc))
	r.Get("/:id", getCatalogue(svc))
	r.Post("/", admin, createCatalogue(svc))
	r.Put("/:id", admin, updateCatalogue(svc))
	r.Delete("/:id", admin, deleteCatalogue(svc))
}
