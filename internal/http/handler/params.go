package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"founderhub/internal/model"
	"founderhub/internal/repository"
	"founderhub/internal/service"
)

const dateOnly = "2006-01-02"

// pathID returns the :id parameter when it is a UUID.
func pathID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", badRequest("INVALID_ID", "invalid id format")
	}
	return id, nil
}

// listQuery reads the shared list parameters:
// limit, offset, q, sort, order, visibility, skill, startup, hobby, founder, status, from, to.
func listQuery(c *fiber.Ctx, loc *time.Location) (repository.ListQuery, error) {
	var q repository.ListQuery

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(service.DefaultLimit)))
	if err != nil || limit < 1 || limit > service.MaxLimit {
		return q, badRequest("INVALID_LIMIT", "limit must be between 1 and "+strconv.Itoa(service.MaxLimit))
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil || offset < 0 {
		return q, badRequest("INVALID_OFFSET", "offset must be a non-negative integer")
	}
	q.Limit, q.Offset = limit, offset
	q.Search = strings.TrimSpace(c.Query("q"))
	q.Sort = c.Query("sort")

	switch strings.ToLower(c.Query("order", "asc")) {
	case "asc":
	case "desc":
		q.Desc = true
	default:
		return q, badRequest("BAD_REQUEST", "order must be asc or desc")
	}

	switch v := repository.Visibility(c.Query("visibility", string(repository.VisibilityAll))); v {
	case repository.VisibilityAll, repository.VisibilityVisible, repository.VisibilityHidden:
		q.Visibility = v
	default:
		return q, badRequest("BAD_REQUEST", "visibility must be all, visible or hidden")
	}

	for param, dst := range map[string]*string{
		"skill":   &q.SkillID,
		"startup": &q.StartupID,
		"hobby":   &q.HobbyID,
		"founder": &q.FounderID,
	} {
		v := c.Query(param)
		if v == "" {
			continue
		}
		if _, err := uuid.Parse(v); err != nil {
			return q, badRequest("INVALID_ID", param+" must be a UUID")
		}
		*dst = v
	}

	if s := c.Query("status"); s != "" {
		st := model.HelpRequestStatus(s)
		if !st.Valid() {
			return q, badRequest("BAD_REQUEST", "status must be open, in_progress or resolved")
		}
		q.Status = st
	}

	if q.From, err = timeParam(c, "from", loc); err != nil {
		return q, err
	}
	if q.To, err = timeParam(c, "to", loc); err != nil {
		return q, err
	}
	return q, nil
}

// timeParam accepts RFC 3339 timestamps or bare dates, which start at local midnight.
func timeParam(c *fiber.Ctx, name string, loc *time.Location) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	if t, err := time.ParseInLocation(dateOnly, raw, loc); err == nil {
		return &t, nil
	}
	return nil, badRequest("BAD_REQUEST", name+" must be an RFC 3339 timestamp or YYYY-MM-DD date")
}

// locationParam resolves the optional tz query parameter.
func locationParam(c *fiber.Ctx, fallback *time.Location) (*time.Location, error) {
	tz := c.Query("tz")
	if tz == "" {
		return fallback, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, badRequest("BAD_REQUEST", "unknown time zone")
	}
	return loc, nil
}

func boolParam(c *fiber.Ctx, name string) (bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, badRequest("BAD_REQUEST", name+" must be true or false")
	}
	return b, nil
}

// parseBody decodes a JSON body into v.
func parseBody(c *fiber.Ctx, v any) error {
	if err := c.BodyParser(v); err != nil {
		return badRequest("BAD_REQUEST", "invalid JSON body")
	}
	return nil
}
