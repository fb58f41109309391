package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/souvikjs01/unkey/internal/model"
	"github.com/souvikjs01/unkey/internal/service"
)

type RatelimitHandler struct {
	service service.RatelimitService
}

type namespaceRequest struct {
	Name string `json:"name"`
}

type namespaceResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type namespaceListResponse struct {
	WorkspaceID string              `json:"workspaceId"`
	Items       []namespaceResponse `json:"items"`
}

func NewRatelimitHandler(service service.RatelimitService) *RatelimitHandler {
	return &RatelimitHandler{service: service}
}

func (h *RatelimitHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/ratelimits", h.List)
	g.POST("/ratelimits", h.Create)
	g.DELETE("/ratelimits/:id", h.Delete)
}

// List godoc
// @Summary      List rate limit namespaces
// @Description  Live namespaces of the caller's workspace.
// @Tags         ratelimits
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  handler.namespaceListResponse
// @Failure      401  {object}  handler.errorResponse
// @Failure      404  {object}  handler.errorResponse
// @Router       /ratelimits [get]
func (h *RatelimitHandler) List(c echo.Context) error {
	orgID, ok := orgIDFrom(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "unauthorized")
	}
	overview, err := h.service.Overview(c.Request().Context(), orgID)
	if err != nil {
		return writeServiceError(c, err)
	}
	items := make([]namespaceResponse, 0, len(overview.Namespaces))
	for _, ns := range overview.Namespaces {
		items = append(items, toNamespaceResponse(ns))
	}
	return c.JSON(http.StatusOK, namespaceListResponse{WorkspaceID: overview.WorkspaceID, Items: items})
}

// Create godoc
// @Summary      Create a rate limit namespace
// @Tags         ratelimits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      handler.namespaceRequest  true  "Namespace"
// @Success      201   {object}  handler.namespaceResponse
// @Failure      400   {object}  handler.errorResponse
// @Failure      404   {object}  handler.errorResponse
// @Failure      409   {object}  handler.errorResponse
// @Router       /ratelimits [post]
func (h *RatelimitHandler) Create(c echo.Context) error {
	orgID, ok := orgIDFrom(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "unauthorized")
	}
	var req namespaceRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	ns, err := h.service.CreateNamespace(c.Request().Context(), orgID, req.Name)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toNamespaceResponse(ns.Summary()))
}

// Delete godoc
// @Summary      Delete a rate limit namespace
// @Tags         ratelimits
// @Security     BearerAuth
// @Param        id   path  string  true  "Namespace ID"
// @Success      204
// @Failure      404  {object}  handler.errorResponse
// @Router       /ratelimits/{id} [delete]
func (h *RatelimitHandler) Delete(c echo.Context) error {
	orgID, ok := orgIDFrom(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	if err := h.service.DeleteNamespace(c.Request().Context(), orgID, id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toNamespaceResponse(ns model.NamespaceSummary) namespaceResponse {
	return namespaceResponse{ID: ns.ID, Name: ns.Name}
}
