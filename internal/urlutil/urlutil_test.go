package urlutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/souvikjs01/unkey/internal/urlutil"
)

func TestLocalPath(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{raw: "/new", want: "/new", ok: true},
		{raw: " /onboarding/ ", want: "/onboarding", ok: true},
		{raw: "/a/../b", want: "/b", ok: true},
		{raw: "", ok: false},
		{raw: "new", ok: false},
		{raw: "//evil.example", ok: false},
		{raw: "https://evil.example/new", ok: false},
		{raw: "/new?next=/x", ok: false},
		{raw: "/new#top", ok: false},
	}

	for _, tc := range tests {
		got, ok := urlutil.LocalPath(tc.raw)
		require.Equal(t, tc.ok, ok, tc.raw)
		require.Equal(t, tc.want, got, tc.raw)
	}
}
