package http

import (
	"io/fs"
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/souvikjs01/unkey/docs"
	"github.com/souvikjs01/unkey/internal/auth"
	"github.com/souvikjs01/unkey/internal/handler"
	"github.com/souvikjs01/unkey/internal/service"
)

const DefaultSignInPath = "/auth/sign-in"

// Options carries the router settings that come from configuration.
type Options struct {
	SignInPath    string
	APIRateLimit  float64
	EnableSwagger bool
	Assets        fs.FS
}

func NewRouter(
	pageHandler *handler.PageHandler,
	ratelimitHandler *handler.RatelimitHandler,
	authService service.AuthService,
	renderer echo.Renderer,
	opts Options,
) *echo.Echo {
	if opts.SignInPath == "" {
		opts.SignInPath = DefaultSignInPath
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(RequestLoggerMiddleware())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(nethttp.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(nethttp.StatusFound, handler.RatelimitsPath)
	})
	registerAssets(e, opts.Assets)

	if opts.EnableSwagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	pageHandler.RegisterRoutes(e.Group(""), PageAuthMiddleware(authService, opts.SignInPath), NoStoreMiddleware())

	api := e.Group("/api/v1", JWTAuthMiddleware(authService))
	if opts.APIRateLimit > 0 {
		api.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
				Rate:  rate.Limit(opts.APIRateLimit),
				Burst: max(1, int(opts.APIRateLimit)),
			}),
			IdentifierExtractor: orgIdentifier,
			DenyHandler: func(c echo.Context, _ string, _ error) error {
				return c.JSON(nethttp.StatusTooManyRequests, map[string]string{"error": "rate limited"})
			},
		}))
	}
	ratelimitHandler.RegisterRoutes(api)

	return e
}

// orgIdentifier keys the API rate limiter by organization, falling back to
// the client address.
func orgIdentifier(c echo.Context) (string, error) {
	if id, ok := auth.FromContext(c.Request().Context()); ok {
		return "org:" + id.OrgID, nil
	}
	return "ip:" + c.RealIP(), nil
}
