// Package traverse implements the depth-first repository walk that produces
// the ASCII tree and the ordered per-file contents behind the final document.
package traverse

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/tilsley/repolens/apps/analyzer/internal/gitrepo"
)

// Branch drawing pieces. A connector sits in front of every entry name; an
// extension is appended to the prefix handed to a subdirectory's own entries.
const (
	connectorMid  = "├── "
	connectorLast = "└── "
	extensionMid  = "│   "
	extensionLast = "    "
)

// Walker walks a remote repository tree one directory listing at a time,
// strictly sequentially, accumulating tree lines and file contents.
type Walker struct {
	client gitrepo.Client
	log    *slog.Logger
}

// NewWalker creates a Walker that reads through client.
func NewWalker(client gitrepo.Client, log *slog.Logger) *Walker {
	return &Walker{client: client, log: log}
}

// Report is the outcome of one walk: rendered tree lines in display order,
// and per-file results keyed by repository path in first-visit order.
type Report struct {
	Lines    []string
	Contents *ContentIndex
}

// Walk traverses the repository from its root. A directory listing failure
// aborts the whole walk; a file fetch failure is recorded against the file's
// path and the walk continues with the next entry.
func (w *Walker) Walk(ctx context.Context, owner, repo string) (*Report, error) {
	rep := &Report{Contents: NewContentIndex()}
	if err := w.walkDir(ctx, owner, repo, "", "", rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (w *Walker) walkDir(ctx context.Context, owner, repo, path, prefix string, rep *Report) error {
	entries, err := w.client.ListDir(ctx, owner, repo, path)
	if err != nil {
		return fmt.Errorf("list directory %q: %w", path, err)
	}
	w.log.Debug("listed directory", "path", path, "entries", len(entries))

	// Directories first, then ascending by name.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name < entries[j].Name
	})

	for i, entry := range entries {
		last := i == len(entries)-1
		connector := connectorMid
		if last {
			connector = connectorLast
		}
		rep.Lines = append(rep.Lines, prefix+connector+entry.Name)

		fullPath := entry.Name
		if path != "" {
			fullPath = path + "/" + entry.Name
		}

		if entry.IsDir() {
			extension := extensionMid
			if last {
				extension = extensionLast
			}
			if err := w.walkDir(ctx, owner, repo, fullPath, prefix+extension, rep); err != nil {
				return err
			}
			continue
		}

		res, err := w.client.FetchFile(ctx, entry.URL)
		if err != nil {
			w.log.Warn("file read failed", "path", fullPath, "error", err)
			res = gitrepo.FileResult{Kind: gitrepo.FileReadFailed, Text: gitrepo.ReadErrPrefix + err.Error()}
		}
		rep.Contents.Add(fullPath, res)
	}
	return nil
}
