// Package github provides factory functions for creating authenticated GitHub
// API clients. Callers should use the returned *github.Client with the adapter
// in apps/analyzer/internal/adapters/github to read repositories.
package github

import (
	"context"
	"net/http"
	"net/url"
	"time"

	gogithub "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

const defaultAPIURL = "https://api.github.com"

// NewTokenClient creates a *github.Client authenticated with a personal access
// token. Pass baseURL="" to use the real GitHub API, or a custom URL
// (e.g. "http://localhost:9090" for apps/mock-github). timeout bounds each
// request end to end; zero means no limit.
func NewTokenClient(token, baseURL string, timeout time.Duration) *gogithub.Client {
	httpClient := &http.Client{Timeout: timeout}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = timeout
	}
	c := gogithub.NewClient(httpClient)
	applyBaseURL(c, baseURL)
	return c
}

func applyBaseURL(c *gogithub.Client, baseURL string) {
	if baseURL == "" || baseURL == defaultAPIURL {
		return
	}
	u, err := url.Parse(baseURL + "/")
	if err != nil {
		return
	}
	c.BaseURL = u
}
