package github

import (
	"context"
	"strings"
	"sync"

	"github.com/tilsley/repolens/apps/analyzer/internal/gitrepo"
)

// InMem is an in-memory gitrepo.Client for unit tests. Listings are derived
// from the seeded paths and returned in seeding order, deliberately unsorted,
// so tests catch callers that rely on the host for ordering. Locators have
// the form "mem://owner/repo/path".
type InMem struct {
	mu       sync.Mutex
	order    []string            // "owner/repo/path" keys in seeding order
	files    map[string]fakeFile // keyed like order
	dirFails map[string]int      // "owner/repo/dirPath" -> HTTP status for a failing listing
	fetches  map[string]int      // "owner/repo/path" -> FetchFile call count
}

type fakeFile struct {
	res    gitrepo.FileResult
	status int // non-zero: FetchFile fails with this HTTP status
}

// NewInMem creates an empty InMem client.
func NewInMem() *InMem {
	return &InMem{
		files:    make(map[string]fakeFile),
		dirFails: make(map[string]int),
		fetches:  make(map[string]int),
	}
}

// SetFile seeds a file whose fetch succeeds with the given content.
func (m *InMem) SetFile(owner, repo, path, content string) {
	m.seed(owner, repo, path, fakeFile{res: gitrepo.FileResult{Kind: gitrepo.FileOK, Text: content}})
}

// SetResult seeds a file whose fetch yields the given result, for marker
// outcomes a plain content seed cannot produce.
func (m *InMem) SetResult(owner, repo, path string, res gitrepo.FileResult) {
	m.seed(owner, repo, path, fakeFile{res: res})
}

// FailFile seeds a file whose fetch fails with the given HTTP status.
func (m *InMem) FailFile(owner, repo, path string, status int) {
	m.seed(owner, repo, path, fakeFile{status: status})
}

// FailDir makes listing the given directory fail with the given HTTP status.
// The directory must also be seeded with at least one file for a parent
// listing to show it.
func (m *InMem) FailDir(owner, repo, dirPath string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirFails[owner+"/"+repo+"/"+dirPath] = status
}

// FetchCalls reports how many times the file's locator was fetched.
func (m *InMem) FetchCalls(owner, repo, path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetches[owner+"/"+repo+"/"+path]
}

func (m *InMem) seed(owner, repo, path string, f fakeFile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := owner + "/" + repo + "/" + path
	if _, seen := m.files[key]; !seen {
		m.order = append(m.order, key)
	}
	m.files[key] = f
}

// ListDir returns the immediate children of dirPath in seeding order.
func (m *InMem) ListDir(_ context.Context, owner, repo, dirPath string) ([]gitrepo.DirEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dirKey := owner + "/" + repo + "/" + dirPath
	if status, ok := m.dirFails[dirKey]; ok {
		return nil, gitrepo.RemoteError{Status: status, Path: dirPath}
	}

	prefix := owner + "/" + repo + "/"
	if dirPath != "" {
		prefix += dirPath + "/"
	}

	seen := make(map[string]bool)
	var entries []gitrepo.DirEntry
	for _, key := range m.order {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		rest := key[len(prefix):]
		parts := strings.SplitN(rest, "/", 2)
		name := parts[0]
		if seen[name] {
			continue
		}
		seen[name] = true
		entType := "file"
		if len(parts) > 1 {
			entType = "dir"
		}
		entries = append(entries, gitrepo.DirEntry{
			Name: name,
			Type: entType,
			URL:  "mem://" + prefix + name,
		})
	}
	return entries, nil
}

// FetchFile resolves a "mem://" locator against the seeded files. Every call
// is counted, including failing ones.
func (m *InMem) FetchFile(_ context.Context, url string) (gitrepo.FileResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.TrimPrefix(url, "mem://")
	m.fetches[key]++

	f, ok := m.files[key]
	if !ok {
		return gitrepo.FileResult{}, gitrepo.RemoteError{Status: 404, Path: url}
	}
	if f.status != 0 {
		return gitrepo.FileResult{}, gitrepo.RemoteError{Status: f.status, Path: url}
	}
	return f.res, nil
}
