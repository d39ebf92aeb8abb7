package browser

import (
	"fmt"
	"strings"

	"opencartqa/internal/fwerr"
)

// Kind is the closed set of browsers the factory knows how to start.
type Kind string

const (
	Chrome  Kind = "chrome"
	Firefox Kind = "firefox"
	Edge    Kind = "edge"
)

var kinds = []Kind{Chrome, Firefox, Edge}

// ParseKind maps a user-supplied browser name onto a Kind. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(Chrome):
		return Chrome, nil
	case string(Firefox):
		return Firefox, nil
	case string(Edge):
		return Edge, nil
	}
	return "", fwerr.New(fwerr.UnsupportedBrowser, "browser.ParseKind",
		fmt.Sprintf("unsupported browser type: %q, supported browsers are: %s", name, kindList()))
}

func kindList() string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// NormalizeVersion collapses the "unspecified" version spellings to the
// empty string. Anything else is an explicit version request.
func NormalizeVersion(version string) string {
	switch strings.ToLower(strings.TrimSpace(version)) {
	case "", "latest", "default", "auto":
		return ""
	}
	return strings.TrimSpace(version)
}
