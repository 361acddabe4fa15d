package traverse

import "github.com/tilsley/repolens/apps/analyzer/internal/gitrepo"

// ContentIndex is an insertion-ordered map from repository path to fetch
// result. Iteration order is the walk's first-visit order, which the document
// assembler relies on for deterministic output.
type ContentIndex struct {
	paths   []string
	results map[string]gitrepo.FileResult
}

// NewContentIndex creates an empty index.
func NewContentIndex() *ContentIndex {
	return &ContentIndex{results: make(map[string]gitrepo.FileResult)}
}

// Add records the result for path. A path added twice keeps its original
// position and takes the newer result.
func (ci *ContentIndex) Add(path string, res gitrepo.FileResult) {
	if _, ok := ci.results[path]; !ok {
		ci.paths = append(ci.paths, path)
	}
	ci.results[path] = res
}

// Get returns the result recorded for path.
func (ci *ContentIndex) Get(path string) (gitrepo.FileResult, bool) {
	res, ok := ci.results[path]
	return res, ok
}

// Paths returns the recorded paths in insertion order.
func (ci *ContentIndex) Paths() []string {
	out := make([]string, len(ci.paths))
	copy(out, ci.paths)
	return out
}

// Len returns the number of recorded paths.
func (ci *ContentIndex) Len() int { return len(ci.paths) }
