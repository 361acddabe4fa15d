package gitrepo_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilsley/repolens/apps/analyzer/internal/gitrepo"
)

// ─── Stub ─────────────────────────────────────────────────────────────────────

type stubClient struct {
	listDirFn   func(ctx context.Context, owner, repo, dirPath string) ([]gitrepo.DirEntry, error)
	fetchFileFn func(ctx context.Context, url string) (gitrepo.FileResult, error)

	listCalls  int
	fetchCalls int
}

func (s *stubClient) ListDir(ctx context.Context, owner, repo, dirPath string) ([]gitrepo.DirEntry, error) {
	s.listCalls++
	if s.listDirFn != nil {
		return s.listDirFn(ctx, owner, repo, dirPath)
	}
	return nil, nil
}

func (s *stubClient) FetchFile(ctx context.Context, url string) (gitrepo.FileResult, error) {
	s.fetchCalls++
	if s.fetchFileFn != nil {
		return s.fetchFileFn(ctx, url)
	}
	return gitrepo.FileResult{Kind: gitrepo.FileOK, Text: "content of " + url}, nil
}

func newCaching(t *testing.T, real *stubClient) *gitrepo.CachingClient {
	t.Helper()
	c, err := gitrepo.NewCachingClient(real)
	require.NoError(t, err)
	return c
}

// ─── Fetch memoization ────────────────────────────────────────────────────────

func TestFetchFile_SecondFetchServedFromCache(t *testing.T) {
	real := &stubClient{}
	c := newCaching(t, real)

	first, err := c.FetchFile(context.Background(), "mem://acme/demo/a.txt")
	require.NoError(t, err)
	second, err := c.FetchFile(context.Background(), "mem://acme/demo/a.txt")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, real.fetchCalls, "repeat fetch of the same locator should not hit the client")
}

func TestFetchFile_DistinctLocatorsFetchedSeparately(t *testing.T) {
	real := &stubClient{}
	c := newCaching(t, real)

	a, err := c.FetchFile(context.Background(), "mem://acme/demo/a.txt")
	require.NoError(t, err)
	b, err := c.FetchFile(context.Background(), "mem://acme/demo/b.txt")
	require.NoError(t, err)

	assert.NotEqual(t, a.Text, b.Text)
	assert.Equal(t, 2, real.fetchCalls)
}

// TestFetchFile_ManyLocators_FirstStillCached verifies that the cache holds
// every locator a large walk can see: a file fetched early is still served
// from the cache when referenced again at the end of the run.
func TestFetchFile_ManyLocators_FirstStillCached(t *testing.T) {
	real := &stubClient{}
	c := newCaching(t, real)

	for i := 0; i < 10000; i++ {
		_, err := c.FetchFile(context.Background(), fmt.Sprintf("mem://acme/demo/file-%d.txt", i))
		require.NoError(t, err)
	}
	fetched := real.fetchCalls

	res, err := c.FetchFile(context.Background(), "mem://acme/demo/file-0.txt")

	require.NoError(t, err)
	assert.Equal(t, "content of mem://acme/demo/file-0.txt", res.Text)
	assert.Equal(t, fetched, real.fetchCalls, "an early locator should not be evicted by later ones")
}

// TestFetchFile_MarkerResultsAreCached verifies that a soft failure is a
// cacheable outcome like any content: re-reading a binary file should not
// refetch it.
func TestFetchFile_MarkerResultsAreCached(t *testing.T) {
	real := &stubClient{
		fetchFileFn: func(_ context.Context, _ string) (gitrepo.FileResult, error) {
			return gitrepo.FileResult{Kind: gitrepo.FileNonText, Text: gitrepo.NonTextMarker}, nil
		},
	}
	c := newCaching(t, real)

	_, err := c.FetchFile(context.Background(), "mem://acme/demo/logo.png")
	require.NoError(t, err)
	res, err := c.FetchFile(context.Background(), "mem://acme/demo/logo.png")
	require.NoError(t, err)

	assert.Equal(t, gitrepo.FileNonText, res.Kind)
	assert.Equal(t, 1, real.fetchCalls)
}

// TestFetchFile_ErrorsAreNotCached verifies that a failed fetch leaves no
// cache entry, so a retry goes back to the client and can succeed.
func TestFetchFile_ErrorsAreNotCached(t *testing.T) {
	calls := 0
	real := &stubClient{}
	real.fetchFileFn = func(_ context.Context, url string) (gitrepo.FileResult, error) {
		calls++
		if calls == 1 {
			return gitrepo.FileResult{}, gitrepo.RemoteError{Status: 500, Path: url}
		}
		return gitrepo.FileResult{Kind: gitrepo.FileOK, Text: "recovered"}, nil
	}
	c := newCaching(t, real)

	_, err := c.FetchFile(context.Background(), "mem://acme/demo/flaky.txt")
	var remoteErr gitrepo.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, 500, remoteErr.Status)

	res, err := c.FetchFile(context.Background(), "mem://acme/demo/flaky.txt")
	require.NoError(t, err)
	assert.Equal(t, "recovered", res.Text)
	assert.Equal(t, 2, calls)
}

// ─── Listing passthrough ──────────────────────────────────────────────────────

func TestListDir_ForwardsWithoutCaching(t *testing.T) {
	entries := []gitrepo.DirEntry{
		{Name: "b.txt", Type: "file", URL: "mem://acme/demo/b.txt"},
		{Name: "a", Type: "dir", URL: "mem://acme/demo/a"},
	}
	real := &stubClient{
		listDirFn: func(_ context.Context, _, _, _ string) ([]gitrepo.DirEntry, error) {
			return entries, nil
		},
	}
	c := newCaching(t, real)

	got, err := c.ListDir(context.Background(), "acme", "demo", "")
	require.NoError(t, err)
	assert.Equal(t, entries, got, "listings should pass through in the client's order")

	_, err = c.ListDir(context.Background(), "acme", "demo", "")
	require.NoError(t, err)
	assert.Equal(t, 2, real.listCalls)
}

func TestListDir_ForwardsErrors(t *testing.T) {
	real := &stubClient{
		listDirFn: func(_ context.Context, _, _, dirPath string) ([]gitrepo.DirEntry, error) {
			return nil, gitrepo.RemoteError{Status: 404, Path: dirPath}
		},
	}
	c := newCaching(t, real)

	_, err := c.ListDir(context.Background(), "acme", "demo", "missing")

	var remoteErr gitrepo.RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, 404, remoteErr.Status)
}
