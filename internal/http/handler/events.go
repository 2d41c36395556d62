package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"founderhub/internal/calendar"
	"founderhub/internal/http/middleware"
	"founderhub/internal/model"
	"founderhub/internal/service"
)

func ListEvents(svc service.EventService, loc *time.Location) fiber.Handler {
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

func GetEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return respondError(c, err)
		}
		e, err := svc.Get(c.UserContext(), middleware.Identity(c), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(e)
	}
}

func CreateEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.EventInput
		if err := parseBody(c, &in); err != nil {
			return respondError(c, err)
		}
		e, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(e)
	}
}

func UpdateEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return respondError(c, err)
		}
		var in model.EventInput
		if err := parseBody(c, &in); err != nil {
			return respondError(c, err)
		}
		e, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(e)
	}
}

func DeleteEvent(svc service.EventService) fiber.Handler {
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

// EventCalendar godoc
// @Summary  Month grid of events
// @Tags     events
// @Param    year query int false "defaults to the current year"
// @Param    month query int false "1-12, defaults to the current month"
// @Param    week_start query string false "sunday (default) or monday"
// @Param    tz query string false "IANA time zone"
// @Success  200 {object} calendar.Month
// @Security BearerAuth
// @Router   /api/v1/events/calendar [get]
func EventCalendar(svc service.EventService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tz, err := locationParam(c, loc)
		if err != nil {
			return respondError(c, err)
		}
		now := time.Now().In(tz)

		year, err := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
		if err != nil {
			return respondError(c, badRequest("BAD_REQUEST", "year must be a number"))
		}
		month, err := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
		if err != nil {
			return respondError(c, badRequest("BAD_REQUEST", "month must be a number"))
		}
		weekStart, err := calendar.ParseWeekStart(c.Query("week_start"))
		if err != nil {
			return respondError(c, err)
		}

		m, err := svc.Calendar(c.UserContext(), middleware.Identity(c), year, time.Month(month), weekStart, tz)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(m)
	}
}

// EventAgenda groups events between from and to (default: the next 30 days) by local day.
func EventAgenda(svc service.EventService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tz, err := locationParam(c, loc)
		if err != nil {
			return respondError(c, err)
		}
		from, err := timeParam(c, "from", tz)
		if err != nil {
			return respondError(c, err)
		}
		to, err := timeParam(c, "to", tz)
		if err != nil {
			return respondError(c, err)
		}
		if from == nil {
			now := time.Now().In(tz)
			start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, tz)
			from = &start
		}
		if to == nil {
			end := from.AddDate(0, 0, 30)
			to = &end
		}

		days, err := svc.Agenda(c.UserContext(), middleware.Identity(c), *from, *to, tz)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": days})
	}
}
