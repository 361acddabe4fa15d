// Package repourl extracts the owner/name identity from user-supplied
// repository URLs.
package repourl

import (
	"fmt"
	"regexp"
)

// Identity names a repository on the host. Produced only by Parse; both
// fields are non-empty on success.
type Identity struct {
	Owner string
	Name  string
}

// The accepted URL shapes, tried in order. The first covers HTTPS and SSH
// remotes with an optional .git suffix; the second covers plain web URLs
// with an optional trailing slash. Capture groups are taken verbatim, with
// no case folding or percent-decoding.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`github\.com[:/]([^/]+)/([^/.]+)(?:\.git)?$`),
	regexp.MustCompile(`github\.com/([^/]+)/([^/]+)/?$`),
}

// InvalidURLError is returned when a string matches none of the accepted
// repository URL shapes.
type InvalidURLError struct {
	Raw string
}

// Error implements the error interface.
func (e InvalidURLError) Error() string {
	return fmt.Sprintf("invalid repository URL %q: expected https://github.com/owner/repo or git@github.com:owner/repo.git", e.Raw)
}

// Parse resolves a repository URL to its owner/name identity. The first
// pattern that matches wins; no normalization is applied to the captures.
func Parse(raw string) (Identity, error) {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(raw); m != nil {
			return Identity{Owner: m[1], Name: m[2]}, nil
		}
	}
	return Identity{}, InvalidURLError{Raw: raw}
}
