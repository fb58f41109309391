package handler

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/souvikjs01/unkey/internal/auth"
)

var errMissingParam = errors.New("missing path parameter")

func parseIDParam(c echo.Context, name string) (string, error) {
	id := strings.TrimSpace(c.Param(name))
	if id == "" {
		return "", errMissingParam
	}
	return id, nil
}

// orgIDFrom returns the organization the auth middleware attached to the request.
func orgIDFrom(c echo.Context) (string, bool) {
	id, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return "", false
	}
	return id.OrgID, true
}
