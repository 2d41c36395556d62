// Package client is a typed client for the founderhub REST API together with
// the in-memory admin view the dirctl tool works on.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"founderhub/internal/calendar"
	"founderhub/internal/importer"
	"founderhub/internal/model"
	"founderhub/internal/service"
)

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx answer decoded from the server's error payload.
type APIError struct {
	Status    int
	Code      string
	Message   string
	RequestID string
	Details   []service.FieldError
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
	if e.RequestID != "" {
		msg += " (request " + e.RequestID + ")"
	}
	return msg
}

// IsStatus reports whether err is an *APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == status
}

// Client talks to one API base URL with one bearer token.
type Client struct {
	base  *url.URL
	token string
	http  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default traced client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New returns a client for baseURL, e.g. "http://localhost:8080".
func New(baseURL, token string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api url %q must include scheme and host", baseURL)
	}

	c := &Client{
		base:  u,
		token: token,
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Query holds the list parameters shared by every collection endpoint.
// Zero values are left out of the request.
type Query struct {
	Limit      int
	Offset     int
	Search     string
	Sort       string
	Desc       bool
	Visibility string
	Status     string
}

func (q Query) values() url.Values {
	v := url.Values{}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Desc {
		v.Set("order", "desc")
	}
	if q.Visibility != "" {
		v.Set("visibility", q.Visibility)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	return v
}

// Resource names a collection that supports visibility and deletion from the CLI.
type Resource string

const (
	Founders Resource = "founders"
	Startups Resource = "startups"
)

// ParseResource accepts "founders" or "startups".
func ParseResource(s string) (Resource, error) {
	switch r := Resource(strings.ToLower(s)); r {
	case Founders, Startups:
		return r, nil
	}
	return "", fmt.Errorf("unknown resource %q", s)
}

func (c *Client) ListFounders(ctx context.Context, q Query) (*service.ListResult[model.Founder], error) {
	return list[model.Founder](ctx, c, "/api/v1/founders", q)
}

func (c *Client) ListStartups(ctx context.Context, q Query) (*service.ListResult[model.Startup], error) {
	return list[model.Startup](ctx, c, "/api/v1/startups", q)
}

func (c *Client) ListSkills(ctx context.Context, q Query) (*service.ListResult[model.Skill], error) {
	return list[model.Skill](ctx, c, "/api/v1/skills", q)
}

func (c *Client) ListHelpRequests(ctx context.Context, q Query) (*service.ListResult[model.HelpRequest], error) {
	return list[model.HelpRequest](ctx, c, "/api/v1/help-requests", q)
}

func (c *Client) ListEvents(ctx context.Context, q Query) (*service.ListResult[model.Event], error) {
	return list[model.Event](ctx, c, "/api/v1/events", q)
}

// SetVisibility shows or hides a founder or startup.
func (c *Client) SetVisibility(ctx context.Context, r Resource, id string, visible bool) error {
	body, err := json.Marshal(map[string]bool{"visible": visible})
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPatch, "/api/v1/"+string(r)+"/"+url.PathEscape(id)+"/visibility", nil,
		bytes.NewReader(body), "application/json", nil)
}

func (c *Client) Delete(ctx context.Context, r Resource, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/"+string(r)+"/"+url.PathEscape(id), nil, nil, "", nil)
}

// ImportCSV uploads a CSV file of founders or startups.
func (c *Client) ImportCSV(ctx context.Context, kind importer.Kind, filename string, r io.Reader, dryRun bool) (*importer.Summary, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	q := url.Values{}
	if dryRun {
		q.Set("dry_run", "true")
	}
	var sum importer.Summary
	if err := c.do(ctx, http.MethodPost, "/api/v1/admin/import/"+string(kind), q, &buf, w.FormDataContentType(), &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

// CalendarRequest selects a month grid. Zero fields use the server defaults.
type CalendarRequest struct {
	Year      int
	Month     int
	WeekStart string
	TZ        string
}

func (c *Client) Calendar(ctx context.Context, req CalendarRequest) (*calendar.Month, error) {
	q := url.Values{}
	if req.Year != 0 {
		q.Set("year", strconv.Itoa(req.Year))
	}
	if req.Month != 0 {
		q.Set("month", strconv.Itoa(req.Month))
	}
	if req.WeekStart != "" {
		q.Set("week_start", req.WeekStart)
	}
	if req.TZ != "" {
		q.Set("tz", req.TZ)
	}
	var m calendar.Month
	if err := c.do(ctx, http.MethodGet, "/api/v1/events/calendar", q, nil, "", &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) Dashboard(ctx context.Context) (*service.Dashboard, error) {
	var d service.Dashboard
	if err := c.do(ctx, http.MethodGet, "/api/v1/admin/dashboard", nil, nil, "", &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func list[T any](ctx context.Context, c *Client, path string, q Query) (*service.ListResult[T], error) {
	var res service.ListResult[T]
	if err := c.do(ctx, http.MethodGet, path, q.values(), nil, "", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// listAll follows offsets until every row of the collection has been read.
func listAll[T any](ctx context.Context, c *Client, path string, q Query) ([]T, error) {
	q.Limit = service.MaxLimit
	q.Offset = 0
	var out []T
	for {
		page, err := list[T](ctx, c, path, q)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Items...)
		if len(page.Items) == 0 || len(out) >= page.Total {
			return out, nil
		}
		q.Offset = len(out)
	}
}

type errorPayload struct {
	RequestID string `json:"request_id"`
	Error     struct {
		Code    string               `json:"code"`
		Message string               `json:"message"`
		Details []service.FieldError `json:"details"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, body io.Reader, contentType string, out any) error {
	u := *c.base
	u.Path += path
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	ae := &APIError{Status: resp.StatusCode, RequestID: resp.Header.Get("X-Request-ID")}

	var p errorPayload
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&p); err == nil && p.Error.Code != "" {
		ae.Code = p.Error.Code
		ae.Message = p.Error.Message
		ae.Details = p.Error.Details
		if p.RequestID != "" {
			ae.RequestID = p.RequestID
		}
		return ae
	}
	ae.Code = strings.ToUpper(strings.ReplaceAll(http.StatusText(resp.StatusCode), " ", "_"))
	ae.Message = http.StatusText(resp.StatusCode)
	return ae
}
