package urlutil

import (
	"net/url"
	"path"
	"strings"
)

// LocalPath cleans raw into an absolute same-origin path. Values carrying a
// scheme, host, query or fragment are rejected.
func LocalPath(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !strings.HasPrefix(trimmed, "/") || strings.HasPrefix(trimmed, "//") {
		return "", false
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" || parsed.RawQuery != "" || parsed.Fragment != "" {
		return "", false
	}
	return path.Clean(parsed.Path), true
}
