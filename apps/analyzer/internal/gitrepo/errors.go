package gitrepo

import "fmt"

// RemoteError is returned when the repository host answers a request with a
// non-success HTTP status. The status is preserved so callers can tell a
// missing path from an auth or rate-limit failure.
type RemoteError struct {
	Status int
	Path   string // repository-relative path or locator URL the request was for
}

// Error implements the error interface.
func (e RemoteError) Error() string {
	return fmt.Sprintf("remote returned %d for %q", e.Status, e.Path)
}
