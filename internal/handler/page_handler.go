package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/souvikjs01/unkey/internal/service"
	"github.com/souvikjs01/unkey/internal/view"
)

const (
	DefaultOnboardingPath = "/new"
	RatelimitsPath        = "/ratelimits"
)

// Outcome is what the overview page decided for a request: exactly one of
// Redirect or Render is set.
type Outcome struct {
	Redirect string
	Render   *view.RatelimitsPage
}

type PageHandler struct {
	service        service.RatelimitService
	onboardingPath string
}

func NewPageHandler(service service.RatelimitService, onboardingPath string) *PageHandler {
	if onboardingPath == "" {
		onboardingPath = DefaultOnboardingPath
	}
	return &PageHandler{service: service, onboardingPath: onboardingPath}
}

// RegisterRoutes attaches m to each page route rather than to g, so the
// group does not swallow unmatched paths.
func (h *PageHandler) RegisterRoutes(g *echo.Group, m ...echo.MiddlewareFunc) {
	g.GET(RatelimitsPath, h.Overview, m...)
	g.POST(RatelimitsPath, h.CreateNamespace, m...)
	g.GET(h.onboardingPath, h.NewWorkspace, m...)
	g.POST(h.onboardingPath, h.CreateWorkspace, m...)
}

// Resolve loads the live workspace of orgID. Without one the caller is sent
// to onboarding and nothing is rendered.
func (h *PageHandler) Resolve(ctx context.Context, orgID string) (Outcome, error) {
	overview, err := h.service.Overview(ctx, orgID)
	if errors.Is(err, service.ErrNotFound) {
		return Outcome{Redirect: h.onboardingPath}, nil
	}
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Render: &view.RatelimitsPage{
		Title:       "Ratelimits",
		WorkspaceID: overview.WorkspaceID,
		Namespaces:  overview.Namespaces,
	}}, nil
}

func (h *PageHandler) Overview(c echo.Context) error {
	orgID, ok := orgIDFrom(c)
	if !ok {
		return echo.ErrUnauthorized
	}
	outcome, err := h.Resolve(c.Request().Context(), orgID)
	if err != nil {
		return err
	}
	return h.apply(c, http.StatusOK, outcome)
}

// CreateNamespace handles the navigation form. Validation failures render the
// overview again with the message.
func (h *PageHandler) CreateNamespace(c echo.Context) error {
	orgID, ok := orgIDFrom(c)
	if !ok {
		return echo.ErrUnauthorized
	}
	ctx := c.Request().Context()

	_, err := h.service.CreateNamespace(ctx, orgID, c.FormValue("name"))
	switch {
	case err == nil:
		return c.Redirect(http.StatusSeeOther, RatelimitsPath)
	case errors.Is(err, service.ErrNotFound):
		return c.Redirect(http.StatusSeeOther, h.onboardingPath)
	case errors.Is(err, service.ErrInvalid), errors.Is(err, service.ErrConflict):
		outcome, resolveErr := h.Resolve(ctx, orgID)
		if resolveErr != nil {
			return resolveErr
		}
		status := http.StatusBadRequest
		message := "Namespace names are 1 to 50 letters, digits, dots, dashes or underscores."
		if errors.Is(err, service.ErrConflict) {
			status = http.StatusConflict
			message = "A namespace with this name already exists."
		}
		if outcome.Render != nil {
			outcome.Render.Error = message
		}
		return h.apply(c, status, outcome)
	default:
		return err
	}
}

func (h *PageHandler) NewWorkspace(c echo.Context) error {
	return c.Render(http.StatusOK, view.PageNewWorkspace, view.NewWorkspacePage{
		Title:  "New workspace",
		Action: h.onboardingPath,
	})
}

func (h *PageHandler) CreateWorkspace(c echo.Context) error {
	orgID, ok := orgIDFrom(c)
	if !ok {
		return echo.ErrUnauthorized
	}
	name := strings.TrimSpace(c.FormValue("name"))

	_, err := h.service.CreateWorkspace(c.Request().Context(), orgID, name)
	switch {
	case err == nil, errors.Is(err, service.ErrConflict):
		return c.Redirect(http.StatusSeeOther, RatelimitsPath)
	case errors.Is(err, service.ErrInvalid):
		return c.Render(http.StatusBadRequest, view.PageNewWorkspace, view.NewWorkspacePage{
			Title:  "New workspace",
			Action: h.onboardingPath,
			Name:   name,
			Error:  "Workspace names must be between 3 and 50 characters.",
		})
	default:
		return err
	}
}

func (h *PageHandler) apply(c echo.Context, status int, outcome Outcome) error {
	if outcome.Redirect != "" {
		return c.Redirect(http.StatusFound, outcome.Redirect)
	}
	return c.Render(status, view.PageRatelimits, outcome.Render)
}
