package remote

import (
	"fmt"
	"strings"

	"github.com/penwyp/xtask/internal/config"
	"github.com/penwyp/xtask/internal/errors"
)

// Namer derives canonical remote names from repository URIs.
//
// The name is the lower-cased owner segment (second-to-last path segment)
// followed by Suffix, so two repositories of the same owner map to the same
// remote name.
type Namer struct {
	Host   string
	Suffix string
}

// DefaultNamer accepts github.com URIs and appends "-xtask".
var DefaultNamer = Namer{Host: config.DefaultHost, Suffix: config.DefaultSuffix}

// Parse returns the canonical remote name for uri. Both SSH style
// (git@github.com:owner/repo) and URL style (https://github.com/owner/repo)
// are accepted.
func (n Namer) Parse(uri string) (string, error) {
	if !strings.Contains(uri, n.Host) {
		return "", fmt.Errorf("%w: %q", errors.ErrInvalidSource, uri)
	}

	segments := strings.Split(strings.ReplaceAll(uri, ":", "/"), "/")
	if len(segments) < 2 {
		return "", fmt.Errorf("%w: %q", errors.ErrMalformedURI, uri)
	}

	return strings.ToLower(segments[len(segments)-2]) + n.Suffix, nil
}

// ParseRemoteName parses uri with DefaultNamer.
func ParseRemoteName(uri string) (string, error) {
	return DefaultNamer.Parse(uri)
}
