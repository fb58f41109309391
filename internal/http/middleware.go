package http

import (
	nethttp "net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/souvikjs01/unkey/internal/auth"
	"github.com/souvikjs01/unkey/internal/service"
	"github.com/souvikjs01/unkey/pkg/logger"
)

// AuthCookieName is the session cookie set by the identity provider.
const AuthCookieName = "unkey_session"

// JWTAuthMiddleware guards JSON routes: callers without a valid session get 401.
func JWTAuthMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := authenticate(c, authService)
			if !ok {
				return c.JSON(nethttp.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			attachIdentity(c, id)
			return next(c)
		}
	}
}

// PageAuthMiddleware guards HTML routes: callers without a valid session are
// sent to signInPath.
func PageAuthMiddleware(authService service.AuthService, signInPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := authenticate(c, authService)
			if !ok {
				return c.Redirect(nethttp.StatusFound, signInPath)
			}
			attachIdentity(c, id)
			return next(c)
		}
	}
}

// NoStoreMiddleware marks responses as uncacheable.
func NoStoreMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
			return next(c)
		}
	}
}

func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			args := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"latency", time.Since(start),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
			}
			switch {
			case res.Status >= nethttp.StatusInternalServerError:
				logger.Error("request failed", args...)
			case res.Status >= nethttp.StatusBadRequest:
				logger.Warn("request rejected", args...)
			default:
				logger.Info("request", args...)
			}
			return nil
		}
	}
}

func authenticate(c echo.Context, authService service.AuthService) (auth.Identity, bool) {
	token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if token == "" {
		if cookie, err := c.Cookie(AuthCookieName); err == nil {
			token = cookie.Value
		}
	}
	if token == "" {
		return auth.Identity{}, false
	}

	id, err := authService.ValidateToken(token)
	if err != nil {
		logger.Debug("session rejected", "error", err)
		return auth.Identity{}, false
	}
	if id.OrgID == "" {
		return auth.Identity{}, false
	}
	return id, true
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func attachIdentity(c echo.Context, id auth.Identity) {
	req := c.Request()
	c.SetRequest(req.WithContext(auth.WithIdentity(req.Context(), id)))
}
