package http_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/souvikjs01/unkey/internal/auth"
	"github.com/souvikjs01/unkey/internal/handler"
	gh "github.com/souvikjs01/unkey/internal/http"
	"github.com/souvikjs01/unkey/internal/model"
	"github.com/souvikjs01/unkey/internal/repository"
	"github.com/souvikjs01/unkey/internal/repository/testutil"
	"github.com/souvikjs01/unkey/internal/service"
	"github.com/souvikjs01/unkey/internal/service/mock"
	"github.com/souvikjs01/unkey/internal/view"
)

func newRouter(t *testing.T, svc service.RatelimitService, authService service.AuthService, opts gh.Options) *echo.Echo {
	t.Helper()
	return newRouterWithOnboarding(t, svc, authService, "/new", opts)
}

func newRouterWithOnboarding(t *testing.T, svc service.RatelimitService, authService service.AuthService, onboardingPath string, opts gh.Options) *echo.Echo {
	t.Helper()
	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	return gh.NewRouter(
		handler.NewPageHandler(svc, onboardingPath),
		handler.NewRatelimitHandler(svc),
		authService,
		renderer,
		opts,
	)
}

func TestNewRouter_RegistersRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := newRouter(t, mock.NewMockRatelimitService(ctrl), mock.NewMockAuthService(ctrl), gh.Options{
		EnableSwagger: true,
		APIRateLimit:  10,
		Assets:        view.Assets(),
	})

	require.NotNil(t, e)
	require.True(t, hasRoute(e, http.MethodGet, "/swagger/*"))
	require.True(t, hasRoute(e, http.MethodGet, "/healthz"))
	require.True(t, hasRoute(e, http.MethodGet, "/assets/*"))
	require.True(t, hasRoute(e, http.MethodGet, "/ratelimits"))
	require.True(t, hasRoute(e, http.MethodPost, "/ratelimits"))
	require.True(t, hasRoute(e, http.MethodGet, "/new"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/v1/ratelimits"))
	require.True(t, hasRoute(e, http.MethodDelete, "/api/v1/ratelimits/:id"))
}

func TestNewRouter_SwaggerDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := newRouter(t, mock.NewMockRatelimitService(ctrl), mock.NewMockAuthService(ctrl), gh.Options{})

	require.NotNil(t, e)
	require.False(t, hasRoute(e, http.MethodGet, "/swagger/*"))
	require.True(t, hasRoute(e, http.MethodGet, "/ratelimits"))
}

func TestNewRouter_Healthz(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := newRouter(t, mock.NewMockRatelimitService(ctrl), mock.NewMockAuthService(ctrl), gh.Options{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestNewRouter_PageRequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := newRouter(t, mock.NewMockRatelimitService(ctrl), mock.NewMockAuthService(ctrl), gh.Options{SignInPath: "/login"})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ratelimits", nil))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ratelimits", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewRouter_RateLimitsAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockRatelimitService(ctrl)
	authService := mock.NewMockAuthService(ctrl)
	e := newRouter(t, svc, authService, gh.Options{APIRateLimit: 1})

	authService.EXPECT().ValidateToken("tok").Return(auth.Identity{OrgID: "org_A"}, nil).AnyTimes()
	svc.EXPECT().Overview(gomock.Any(), "org_A").Return(&service.RatelimitOverview{WorkspaceID: "ws_1"}, nil).AnyTimes()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ratelimits", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	require.Equal(t, http.StatusOK, codes[0])
	require.Contains(t, codes, http.StatusTooManyRequests)
}

func TestNewRouter_OverviewEndToEnd(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewRatelimitService(repository.NewWorkspaceRepository(db), repository.NewRatelimitNamespaceRepository(db))
	authService := service.NewAuthService("test-secret")
	e := newRouter(t, svc, authService, gh.Options{})

	wsID := testutil.SeedWorkspace(t, db, model.Workspace{ID: "w1", OrgID: "A"})
	testutil.SeedNamespace(t, db, model.RatelimitNamespace{ID: "ns1", WorkspaceID: wsID, Name: "alpha", CreatedAtM: 1})
	testutil.SeedNamespace(t, db, model.RatelimitNamespace{ID: "ns2", WorkspaceID: wsID, Name: "beta", CreatedAtM: 2, DeletedAtM: testutil.Millis(5)})
	testutil.SeedNamespace(t, db, model.RatelimitNamespace{ID: "ns3", WorkspaceID: wsID, Name: "gamma", CreatedAtM: 3})

	get := func(orgID string) *httptest.ResponseRecorder {
		token, err := authService.IssueToken(auth.Identity{UserID: "user_1", OrgID: orgID}, time.Hour)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/ratelimits", nil)
		req.AddCookie(&http.Cookie{Name: gh.AuthCookieName, Value: token})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	rec := get("A")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get(echo.HeaderCacheControl))
	body := rec.Body.String()
	require.Contains(t, body, "alpha")
	require.Contains(t, body, "gamma")
	require.NotContains(t, body, "beta")
	require.Equal(t, 2, strings.Count(body, `class="namespace"`))

	rec = get("B")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/new", rec.Header().Get("Location"))
	require.NotContains(t, rec.Body.String(), "ratelimit-client")
}

func TestNewRouter_CustomOnboardingPathEndToEnd(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewRatelimitService(repository.NewWorkspaceRepository(db), repository.NewRatelimitNamespaceRepository(db))
	authService := service.NewAuthService("test-secret")
	e := newRouterWithOnboarding(t, svc, authService, "/onboarding", gh.Options{})

	token, err := authService.IssueToken(auth.Identity{UserID: "user_1", OrgID: "B"}, time.Hour)
	require.NoError(t, err)
	do := func(req *http.Request) *httptest.ResponseRecorder {
		req.AddCookie(&http.Cookie{Name: gh.AuthCookieName, Value: token})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	rec := do(httptest.NewRequest(http.MethodGet, "/ratelimits", nil))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/onboarding", rec.Header().Get("Location"))

	rec = do(httptest.NewRequest(http.MethodGet, "/onboarding", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `action="/onboarding"`)
	require.NotContains(t, rec.Body.String(), `action="/new"`)

	form := httptest.NewRequest(http.MethodPost, "/onboarding", strings.NewReader(url.Values{"name": {"Acme"}}.Encode()))
	form.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec = do(form)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/ratelimits", rec.Header().Get("Location"))

	rec = do(httptest.NewRequest(http.MethodGet, "/ratelimits", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "No namespaces found")
}

func hasRoute(e *echo.Echo, method, path string) bool {
	for _, r := range e.Routes() {
		if r.Method == method && r.Path == path {
			return true
		}
	}
	return false
}
