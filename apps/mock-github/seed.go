package main

// seedRepos populates the file store with repositories for local analyzer
// runs. acme/sample-service covers every fetch outcome the analyzer knows:
// plain text, an empty oversized blob, a binary payload, broken base64, and
// a submodule without inline content. acme/dotfiles is a flat repo for
// quick smoke tests.
func seedRepos(s *store) {
	seedSampleService(s)
	seedDotfiles(s)
}

func seedSampleService(s *store) {
	const repo = "acme/sample-service"

	s.seedText(repo, "README.md", sampleReadme())
	s.seedText(repo, "go.mod", sampleGoMod())
	s.seedText(repo, "Makefile", sampleMakefile())
	s.seedText(repo, "cmd/sample/main.go", sampleMain())
	s.seedText(repo, "internal/server/server.go", sampleServer())
	s.seedText(repo, "internal/server/server_test.go", sampleServerTest())
	s.seedText(repo, "docs/architecture.md", sampleArchitecture())

	// A binary asset: valid base64, not valid UTF-8 once decoded.
	s.seed(repo, "assets/logo.png", fileSpec{
		data: []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x01, 0xFF, 0xFE},
	})

	// An oversized blob, served the way GitHub serves 1-100 MB files:
	// empty content with encoding "none".
	s.seed(repo, "data/events.parquet", fileSpec{encoding: "none"})

	// A payload that is not decodable base64 at all.
	s.seed(repo, "legacy/blob.dat", fileSpec{rawB64: "%%%not-base64%%%"})

	// A submodule: listed like a file but served without a content field.
	s.seed(repo, "libs/tokenizer", fileSpec{entryType: "submodule", noContent: true})
}

func seedDotfiles(s *store) {
	const repo = "acme/dotfiles"

	s.seedText(repo, "install.sh", dotfilesInstall())
	s.seedText(repo, ".bashrc", dotfilesBashrc())
	s.seedText(repo, ".vimrc", dotfilesVimrc())
}

func sampleReadme() string {
	return `# sample-service

A small HTTP service used as seed data for mock-github.

## Running

    make run

The server listens on :8080 and exposes /healthz and /items.
`
}

func sampleGoMod() string {
	return `module github.com/acme/sample-service

go 1.25
`
}

func sampleMakefile() string {
	return `.PHONY: run test

run:
	go run ./cmd/sample

test:
	go test ./...
`
}

func sampleMain() string {
	return `package main

import (
	"log"
	"net/http"

	"github.com/acme/sample-service/internal/server"
)

func main() {
	srv := server.New()
	log.Println("listening on :8080")
	if err := http.ListenAndServe(":8080", srv); err != nil {
		log.Fatal(err)
	}
}
`
}

func sampleServer() string {
	return `package server

import (
	"encoding/json"
	"net/http"
	"sync"
)

// Server serves the item API. Items live in memory only.
type Server struct {
	mu    sync.Mutex
	items []string
	mux   *http.ServeMux
}

// New creates a Server with its routes registered.
func New() *Server {
	s := &Server{mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /healthz", s.health)
	s.mux.HandleFunc("GET /items", s.list)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) list(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = json.NewEncoder(w).Encode(s.items)
}
`
}

func sampleServerTest() string {
	return `package server

import (
	"net/http/httptest"
	"testing"
)

func TestHealth(t *testing.T) {
	srv := New()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
	if rec.Code != 200 {
		t.Fatalf("got %d, want 200", rec.Code)
	}
}
`
}

func sampleArchitecture() string {
	return `# Architecture

One process, one package. The server holds items in memory; restarting it
clears them. There is no persistence layer on purpose: this repository
exists to be read, not to run in production.
`
}

func dotfilesInstall() string {
	return `#!/bin/sh
set -e
ln -sf "$PWD/.bashrc" "$HOME/.bashrc"
ln -sf "$PWD/.vimrc" "$HOME/.vimrc"
echo "dotfiles installed"
`
}

func dotfilesBashrc() string {
	return `export EDITOR=vim
alias ll='ls -la'
alias gs='git status'
`
}

func dotfilesVimrc() string {
	return `set number
set expandtab
set shiftwidth=4
syntax on
`
}
