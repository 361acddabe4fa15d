// Command mock-github emulates the slice of the GitHub REST API the analyzer
// talks to: directory listings and file objects under the contents endpoint.
// Run it locally and point the analyzer at it with GITHUB_API_URL.
package main

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/tilsley/repolens/pkg/logging"
)

// fileSpec is one seeded file and how the contents endpoint serves it. The
// zero value is a plain text file served as base64.
type fileSpec struct {
	data      []byte // payload, base64-encoded when served
	rawB64    string // overrides data with a pre-encoded payload, possibly invalid base64
	encoding  string // served encoding label; empty means "base64"
	noContent bool   // serve the file object without a content field
	entryType string // listing type; empty means "file"
}

func (spec fileSpec) listingType() string {
	if spec.entryType != "" {
		return spec.entryType
	}
	return "file"
}

// DirEntry is one item in a contents directory listing.
type DirEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// store holds seeded file content keyed by "owner/repo".
type store struct {
	mu    sync.RWMutex
	files map[string]map[string]fileSpec // repo key → path → spec
}

func newStore() *store {
	return &store{files: make(map[string]map[string]fileSpec)}
}

func (s *store) seed(repoKey, path string, spec fileSpec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.files[repoKey] == nil {
		s.files[repoKey] = make(map[string]fileSpec)
	}
	s.files[repoKey][path] = spec
}

func (s *store) seedText(repoKey, path, content string) {
	s.seed(repoKey, path, fileSpec{data: []byte(content)})
}

func (s *store) getFile(owner, repo, path string) (fileSpec, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	spec, ok := s.files[owner+"/"+repo][path]
	return spec, ok
}

// listDir returns the immediate children of dirPath, mirroring GitHub's
// GET /repos/:owner/:repo/contents/:path for directories. base is the
// scheme://host locator URLs are built against.
func (s *store) listDir(owner, repo, dirPath, base string) []DirEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := owner + "/" + repo
	files := s.files[key]
	if files == nil {
		return nil
	}

	prefix := dirPath
	if prefix != "" {
		prefix += "/"
	}

	seen := map[string]bool{}
	var entries []DirEntry
	for filePath, spec := range files {
		if !strings.HasPrefix(filePath, prefix) {
			continue
		}
		rest := filePath[len(prefix):]
		idx := strings.Index(rest, "/")
		var name, entryType string
		if idx == -1 {
			name, entryType = rest, spec.listingType()
		} else {
			name, entryType = rest[:idx], "dir"
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		childPath := name
		if dirPath != "" {
			childPath = dirPath + "/" + name
		}
		entries = append(entries, DirEntry{
			Name: name,
			Path: childPath,
			Type: entryType,
			URL:  fmt.Sprintf("%s/repos/%s/contents/%s", base, key, childPath),
		})
	}
	// Plain name sort, files and directories interleaved, like the real API.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// repoSummaries returns "owner/repo" keys with their file counts, sorted.
func (s *store) repoSummaries() []repoSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]repoSummary, 0, len(s.files))
	for key, files := range s.files {
		summaries = append(summaries, repoSummary{Key: key, Files: len(files)})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Key < summaries[j].Key })
	return summaries
}

type repoSummary struct {
	Key   string
	Files int
}

func main() {
	log := logging.New()
	s := newStore()

	// Seed repos with initial file content before the server accepts requests.
	seedRepos(s)
	log.Info("seeded repos", "repos", len(s.files))

	r := gin.Default()
	registerRoutes(r, s)

	port := os.Getenv("PORT")
	if port == "" {
		port = "9090"
	}

	log.Info("mock-github starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func registerRoutes(r *gin.Engine, s *store) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, renderIndex(s.repoSummaries()))
	})

	// Contents endpoint (GitHub-compatible shape). Returns a single file
	// object for exact path matches, or a directory listing array when the
	// path is a directory prefix, 404 otherwise.
	r.GET("/repos/:owner/:repo/contents/*path", func(c *gin.Context) {
		owner := c.Param("owner")
		repo := c.Param("repo")
		path := strings.TrimPrefix(c.Param("path"), "/")
		base := "http://" + c.Request.Host

		if spec, ok := s.getFile(owner, repo, path); ok {
			c.JSON(http.StatusOK, fileObject(owner, repo, path, base, spec))
			return
		}
		if entries := s.listDir(owner, repo, path, base); len(entries) > 0 {
			c.JSON(http.StatusOK, entries)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{
			"message": fmt.Sprintf("path %q not found in %s/%s", path, owner, repo),
		})
	})
}

// fileObject renders a single file response, honoring the seeded serving
// quirks (missing content field, alternate encoding label, broken base64).
func fileObject(owner, repo, path, base string, spec fileSpec) gin.H {
	name := path
	if i := strings.LastIndex(path, "/"); i != -1 {
		name = path[i+1:]
	}
	obj := gin.H{
		"name": name,
		"path": path,
		"type": spec.listingType(),
		"url":  fmt.Sprintf("%s/repos/%s/%s/contents/%s", base, owner, repo, path),
	}
	if spec.noContent {
		return obj
	}

	content := spec.rawB64
	if content == "" {
		content = base64.StdEncoding.EncodeToString(spec.data)
	}
	encoding := spec.encoding
	if encoding == "" {
		encoding = "base64"
	}
	obj["content"] = content
	obj["encoding"] = encoding
	return obj
}

// renderIndex lists the seeded repositories on a minimal dashboard page.
func renderIndex(summaries []repoSummary) string {
	var rows strings.Builder
	for _, sum := range summaries {
		rows.WriteString(fmt.Sprintf(`
        <tr>
          <td style="padding:12px 16px;border-bottom:1px solid #21262d;">
            <a href="/repos/%s/contents/" style="color:#58a6ff;text-decoration:none;font-weight:600;">%s</a>
          </td>
          <td style="padding:12px 16px;border-bottom:1px solid #21262d;color:#8b949e;">%d files</td>
        </tr>`, sum.Key, sum.Key, sum.Files))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <title>Mock GitHub</title>
  <style>
    * { margin:0; padding:0; box-sizing:border-box; }
    body { background:#0d1117; color:#c9d1d9; font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Helvetica,Arial,sans-serif; }
  </style>
</head>
<body>
  <div style="max-width:860px;margin:0 auto;padding:32px 16px;">
    <h1 style="font-size:20px;font-weight:600;margin-bottom:24px;">Seeded Repositories</h1>
    <table style="width:100%%;border-collapse:collapse;background:#161b22;border:1px solid #30363d;border-radius:6px;overflow:hidden;">
      <tbody>%s</tbody>
    </table>
  </div>
</body>
</html>`, rows.String())
}
