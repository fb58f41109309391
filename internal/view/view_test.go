package view_test

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/souvikjs01/unkey/internal/model"
	"github.com/souvikjs01/unkey/internal/view"
)

func render(t *testing.T, name string, data any) string {
	t.Helper()
	r, err := view.NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, name, data, nil))
	return buf.String()
}

func TestRender_RatelimitsList(t *testing.T) {
	out := render(t, view.PageRatelimits, view.RatelimitsPage{
		Title: "Ratelimits",
		Namespaces: []model.NamespaceSummary{
			{ID: "ns1", Name: "alpha"},
			{ID: "ns3", Name: "gamma"},
		},
	})

	require.Contains(t, out, `class="navbar"`)
	require.Contains(t, out, `href="/ratelimits/ns1"`)
	require.Contains(t, out, "alpha")
	require.Contains(t, out, "gamma")
	require.Equal(t, 2, strings.Count(out, `class="namespace"`))
	require.NotContains(t, out, "No namespaces found")
}

func TestRender_RatelimitsEmpty(t *testing.T) {
	out := render(t, view.PageRatelimits, view.RatelimitsPage{Title: "Ratelimits"})

	require.Contains(t, out, "No namespaces found")
	require.NotContains(t, out, `class="namespace"`)
}

func TestRender_EscapesNames(t *testing.T) {
	out := render(t, view.PageRatelimits, view.RatelimitsPage{
		Namespaces: []model.NamespaceSummary{{ID: "ns1", Name: "<script>alert(1)</script>"}},
	})

	require.NotContains(t, out, "<script>alert(1)</script>")
	require.Contains(t, out, "&lt;script&gt;")
}

func TestRender_NewWorkspace(t *testing.T) {
	out := render(t, view.PageNewWorkspace, view.NewWorkspacePage{Title: "New workspace", Action: "/onboarding", Name: "ac", Error: "invalid name"})

	require.Contains(t, out, `action="/onboarding"`)
	require.Contains(t, out, `value="ac"`)
	require.Contains(t, out, "invalid name")
}

func TestRender_UnknownPage(t *testing.T) {
	r, err := view.NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.Error(t, r.Render(&buf, "missing", nil, nil))
}

func TestAssets(t *testing.T) {
	data, err := fs.ReadFile(view.Assets(), "app.css")
	require.NoError(t, err)
	require.NotEmpty(t, data)
}
