// Package gitrepo defines the domain types and the client port the analyzer
// uses to read a remote repository, plus the caching wrapper that memoizes
// file fetches for the duration of one walk.
package gitrepo

import "context"

// DirEntry is a file or directory returned by a repository host directory listing.
type DirEntry struct {
	Name string `json:"name"`
	Type string `json:"type"` // "dir" for directories; anything else is treated as a file
	URL  string `json:"url"`  // opaque locator the host serves the entry's content at
}

// IsDir reports whether the entry is a directory.
func (e DirEntry) IsDir() bool { return e.Type == "dir" }

// FileKind classifies the outcome of fetching one file.
type FileKind int

const (
	// FileOK means content was fetched and decoded to valid UTF-8 text.
	FileOK FileKind = iota
	// FileNonText means the host returned no inline content for the entry,
	// which happens for oversized files and submodules.
	FileNonText
	// FileDecodeFailed means inline content was present but was not valid
	// base64 or did not decode to UTF-8 text.
	FileDecodeFailed
	// FileReadFailed means the fetch itself failed and the walker recorded
	// the error instead of content.
	FileReadFailed
)

// Texts rendered in the final document in place of content when a fetch
// soft-fails. Downstream tooling matches on them, so they are fixed.
const (
	NonTextMarker   = "Non-text content or unexpected format."
	DecodeErrMarker = "Error decoding content (possibly binary file)."
	ReadErrPrefix   = "Error reading file: "
)

// FileResult is the outcome of fetching one file. Text always holds exactly
// what the final document shows for the file: decoded content for FileOK, a
// fixed marker or error description otherwise.
type FileResult struct {
	Kind FileKind
	Text string
}

// OK reports whether the result carries real file content.
func (r FileResult) OK() bool { return r.Kind == FileOK }

// Client is the port the walker depends on to read a remote repository.
type Client interface {
	// ListDir returns the immediate children of dirPath ("" means the
	// repository root) in whatever order the host reports them.
	ListDir(ctx context.Context, owner, repo, dirPath string) ([]DirEntry, error)

	// FetchFile retrieves one file by the locator URL from its listing
	// entry. Missing or undecodable content is a valid FileResult, not an
	// error; transport and HTTP failures are returned as errors.
	FetchFile(ctx context.Context, url string) (FileResult, error)
}
