package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/souvikjs01/unkey/internal/handler"
	"github.com/souvikjs01/unkey/internal/model"
	"github.com/souvikjs01/unkey/internal/service"
	"github.com/souvikjs01/unkey/internal/service/mock"
)

func TestRatelimitHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockRatelimitService(ctrl)
	h := handler.NewRatelimitHandlerHelper(mockService)
	e := newTestEcho()

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().Overview(gomock.Any(), "org_A").Return(&service.RatelimitOverview{
			WorkspaceID: "ws_1",
			Namespaces:  []model.NamespaceSummary{{ID: "ns1", Name: "alpha"}, {ID: "ns3", Name: "gamma"}},
		}, nil)

		c, rec := newTestContext(e, withOrg(newJSONRequest(http.MethodGet, "/api/v1/ratelimits", nil), "org_A"))
		require.NoError(t, h.List(c))

		var resp handler.NamespaceListResponse
		assertJSONResponse(t, rec, http.StatusOK, &resp)
		require.Equal(t, "ws_1", resp.WorkspaceID)
		require.Equal(t, []handler.NamespaceResponse{{ID: "ns1", Name: "alpha"}, {ID: "ns3", Name: "gamma"}}, resp.Items)
	})

	t.Run("empty_items_not_null", func(t *testing.T) {
		mockService.EXPECT().Overview(gomock.Any(), "org_A").
			Return(&service.RatelimitOverview{WorkspaceID: "ws_1"}, nil)

		c, rec := newTestContext(e, withOrg(newJSONRequest(http.MethodGet, "/api/v1/ratelimits", nil), "org_A"))
		require.NoError(t, h.List(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"items":[]`)
	})

	t.Run("no_workspace", func(t *testing.T) {
		mockService.EXPECT().Overview(gomock.Any(), "org_B").Return(nil, service.ErrNotFound)

		c, rec := newTestContext(e, withOrg(newJSONRequest(http.MethodGet, "/api/v1/ratelimits", nil), "org_B"))
		require.NoError(t, h.List(c))

		var resp map[string]string
		assertJSONResponse(t, rec, http.StatusNotFound, &resp)
		require.Equal(t, "resource not found", resp["error"])
	})

	t.Run("missing_identity", func(t *testing.T) {
		c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/api/v1/ratelimits", nil))
		require.NoError(t, h.List(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRatelimitHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockRatelimitService(ctrl)
	h := handler.NewRatelimitHandlerHelper(mockService)
	e := newTestEcho()

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().CreateNamespace(gomock.Any(), "org_A", "email.outbound").
			Return(&model.RatelimitNamespace{ID: "rlns_1", WorkspaceID: "ws_1", Name: "email.outbound"}, nil)

		req := withOrg(newJSONRequest(http.MethodPost, "/api/v1/ratelimits", map[string]string{"name": "email.outbound"}), "org_A")
		c, rec := newTestContext(e, req)
		require.NoError(t, h.Create(c))

		var resp handler.NamespaceResponse
		assertJSONResponse(t, rec, http.StatusCreated, &resp)
		require.Equal(t, handler.NamespaceResponse{ID: "rlns_1", Name: "email.outbound"}, resp)
	})

	t.Run("bad_json", func(t *testing.T) {
		req := withOrg(newJSONRequestRaw(http.MethodPost, "/api/v1/ratelimits", "{"), "org_A")
		c, rec := newTestContext(e, req)
		require.NoError(t, h.Create(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid", err: service.ErrInvalid, status: http.StatusBadRequest},
		{name: "conflict", err: service.ErrConflict, status: http.StatusConflict},
		{name: "no_workspace", err: service.ErrNotFound, status: http.StatusNotFound},
		{name: "store", err: errors.New("boom"), status: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService.EXPECT().CreateNamespace(gomock.Any(), "org_A", "alpha").Return(nil, tc.err)

			req := withOrg(newJSONRequest(http.MethodPost, "/api/v1/ratelimits", map[string]string{"name": "alpha"}), "org_A")
			c, rec := newTestContext(e, req)
			require.NoError(t, h.Create(c))
			require.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestRatelimitHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockRatelimitService(ctrl)
	h := handler.NewRatelimitHandlerHelper(mockService)
	e := newTestEcho()

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().DeleteNamespace(gomock.Any(), "org_A", "rlns_1").Return(nil)

		c, rec := newTestContext(e, withOrg(newJSONRequest(http.MethodDelete, "/api/v1/ratelimits/rlns_1", nil), "org_A"))
		setPathParams(c, map[string]string{"id": "rlns_1"})
		require.NoError(t, h.Delete(c))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("not_found", func(t *testing.T) {
		mockService.EXPECT().DeleteNamespace(gomock.Any(), "org_A", "rlns_x").Return(service.ErrNotFound)

		c, rec := newTestContext(e, withOrg(newJSONRequest(http.MethodDelete, "/api/v1/ratelimits/rlns_x", nil), "org_A"))
		setPathParams(c, map[string]string{"id": "rlns_x"})
		require.NoError(t, h.Delete(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("blank_id", func(t *testing.T) {
		c, rec := newTestContext(e, withOrg(newJSONRequest(http.MethodDelete, "/api/v1/ratelimits/", nil), "org_A"))
		setPathParams(c, map[string]string{"id": " "})
		require.NoError(t, h.Delete(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
