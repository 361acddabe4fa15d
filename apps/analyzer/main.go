// Command analyzer fetches a remote GitHub repository's directory tree and
// file contents and writes them into a single Markdown document. Previously
// analyzed repository URLs are kept in a JSON history and offered as a pick
// list on the next run.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	githubadapter "github.com/tilsley/repolens/apps/analyzer/internal/adapters/github"
	"github.com/tilsley/repolens/apps/analyzer/internal/config"
	"github.com/tilsley/repolens/apps/analyzer/internal/gitrepo"
	"github.com/tilsley/repolens/apps/analyzer/internal/history"
	platformgithub "github.com/tilsley/repolens/apps/analyzer/internal/platform/github"
	"github.com/tilsley/repolens/apps/analyzer/internal/render"
	"github.com/tilsley/repolens/apps/analyzer/internal/repourl"
	"github.com/tilsley/repolens/apps/analyzer/internal/session"
	"github.com/tilsley/repolens/apps/analyzer/internal/traverse"
	"github.com/tilsley/repolens/pkg/logging"
)

func main() {
	// Credentials may live in a local .env during development.
	_ = godotenv.Load()

	log := logging.New()

	cfg, err := config.Load(os.Getenv("REPOLENS_CONFIG"))
	if err != nil {
		log.Error("config load failed", "error", err)
		os.Exit(1)
	}

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		log.Error("GITHUB_TOKEN environment variable is not set")
		os.Exit(1)
	}

	if err := run(cfg, token, log); err != nil {
		log.Error("analysis failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, token string, log *slog.Logger) error {
	for _, dir := range []string{cfg.MarkdownDir(), filepath.Dir(cfg.HistoryPath())} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}

	store := history.NewStore(cfg.HistoryPath())
	sess := session.New(os.Stdin, os.Stdout)
	repoURL, err := sess.ChooseRepoURL(store.Load())
	if err != nil {
		return err
	}

	// The URL is remembered before the analysis runs, so a repo that fails
	// halfway is still offered next time.
	if added, err := store.Add(repoURL); err != nil {
		return err
	} else if added {
		log.Debug("saved new repository URL", "url", repoURL)
	}

	id, err := repourl.Parse(repoURL)
	if err != nil {
		return err
	}

	apiURL := cfg.APIBaseURL
	if apiURL == "" {
		apiURL = "https://api.github.com"
	}
	gh := platformgithub.NewTokenClient(token, apiURL, cfg.HTTPTimeout())
	client, err := gitrepo.NewCachingClient(githubadapter.New(gh))
	if err != nil {
		return err
	}
	log.Info("github: using token auth", "url", apiURL)

	log.Info("analyzing repository", "owner", id.Owner, "repo", id.Name)
	walker := traverse.NewWalker(client, log)
	rep, err := walker.Walk(context.Background(), id.Owner, id.Name)
	if err != nil {
		return err
	}

	doc := render.Document(rep.Lines, rep.Contents)
	outPath := filepath.Join(cfg.MarkdownDir(), id.Name+".md")
	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write document %s: %w", outPath, err)
	}

	absPath, err := filepath.Abs(outPath)
	if err != nil {
		absPath = outPath
	}
	fmt.Printf("\nAnalysis completed successfully. Results saved to:\n%s\n", absPath)
	return nil
}
