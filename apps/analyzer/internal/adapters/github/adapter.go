// Package github implements the gitrepo.Client port using the official
// go-github library. Wire it up with an authenticated *github.Client from
// apps/analyzer/internal/platform/github.
package github

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	gogithub "github.com/google/go-github/v68/github"

	"github.com/tilsley/repolens/apps/analyzer/internal/gitrepo"
)

// Adapter wraps a go-github client and implicitly satisfies gitrepo.Client.
type Adapter struct {
	gh *gogithub.Client
}

// New creates an Adapter from an authenticated *github.Client.
func New(gh *gogithub.Client) *Adapter {
	return &Adapter{gh: gh}
}

// ListDir returns the immediate children of dirPath from the contents API,
// in the order the host reported them. Every entry must carry a name, a
// type, and a locator URL; a listing with anything else is malformed.
func (a *Adapter) ListDir(ctx context.Context, owner, repo, dirPath string) ([]gitrepo.DirEntry, error) {
	fc, dir, _, err := a.gh.Repositories.GetContents(ctx, owner, repo, dirPath, nil)
	if err != nil {
		return nil, remoteErr(err, dirPath, fmt.Sprintf("list contents %s/%s/%s", owner, repo, dirPath))
	}
	if fc != nil {
		return nil, fmt.Errorf("path %q is a file, not a directory", dirPath)
	}

	entries := make([]gitrepo.DirEntry, 0, len(dir))
	for _, rc := range dir {
		if rc.GetName() == "" || rc.GetType() == "" || rc.GetURL() == "" {
			return nil, fmt.Errorf("listing %s/%s/%s: entry missing name, type, or url", owner, repo, dirPath)
		}
		entries = append(entries, gitrepo.DirEntry{
			Name: rc.GetName(),
			Type: rc.GetType(),
			URL:  rc.GetURL(),
		})
	}
	return entries, nil
}

// FetchFile retrieves one file object by the locator URL from its listing
// entry and decodes it.
//
// The encoding field is not consulted: content is always treated as base64,
// so a host serving an empty payload yields an empty document body rather
// than a failure. Responses without a content field (submodules, dangling
// symlinks, oversized blobs) and payloads that do not decode to UTF-8 text
// produce the fixed marker results instead of errors.
func (a *Adapter) FetchFile(ctx context.Context, url string) (gitrepo.FileResult, error) {
	req, err := a.gh.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return gitrepo.FileResult{}, fmt.Errorf("build content request for %s: %w", url, err)
	}

	var rc gogithub.RepositoryContent
	if _, err := a.gh.Do(ctx, req, &rc); err != nil {
		return gitrepo.FileResult{}, remoteErr(err, url, "fetch "+url)
	}

	if rc.Content == nil {
		return gitrepo.FileResult{Kind: gitrepo.FileNonText, Text: gitrepo.NonTextMarker}, nil
	}
	raw, err := base64.StdEncoding.DecodeString(*rc.Content)
	if err != nil || !utf8.Valid(raw) {
		return gitrepo.FileResult{Kind: gitrepo.FileDecodeFailed, Text: gitrepo.DecodeErrMarker}, nil
	}
	return gitrepo.FileResult{Kind: gitrepo.FileOK, Text: string(raw)}, nil
}

// remoteErr maps a go-github error to the domain error taxonomy: HTTP error
// responses become gitrepo.RemoteError with the status preserved, everything
// else is wrapped with the request context. go-github reports rate-limited
// requests as distinct error types rather than plain ErrorResponses, so those
// are mapped too.
func remoteErr(err error, path, reqContext string) error {
	var ghErr *gogithub.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return gitrepo.RemoteError{Status: ghErr.Response.StatusCode, Path: path}
	}
	var rateErr *gogithub.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return gitrepo.RemoteError{Status: rateErr.Response.StatusCode, Path: path}
	}
	var abuseErr *gogithub.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return gitrepo.RemoteError{Status: abuseErr.Response.StatusCode, Path: path}
	}
	return fmt.Errorf("%s: %w", reqContext, err)
}
