package session_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilsley/repolens/apps/analyzer/internal/session"
)

var savedURLs = []string{
	"https://github.com/acme/sample-service",
	"https://github.com/acme/dotfiles",
}

// choose runs ChooseRepoURL with scripted input and returns the chosen URL
// and everything printed along the way.
func choose(t *testing.T, input string, saved []string) (string, string, error) {
	t.Helper()
	var out bytes.Buffer
	s := session.New(strings.NewReader(input), &out)
	url, err := s.ChooseRepoURL(saved)
	return url, out.String(), err
}

// ─── No saved history ─────────────────────────────────────────────────────────

func TestChooseRepoURL_NoHistory_PromptsDirectly(t *testing.T) {
	url, out, err := choose(t, "https://github.com/acme/demo\n", nil)

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/demo", url)
	assert.Contains(t, out, "Enter GitHub repository URL: ")
	assert.NotContains(t, out, "Please select a number", "no menu should be shown without history")
}

func TestChooseRepoURL_NoHistory_TrimsInput(t *testing.T) {
	url, _, err := choose(t, "  https://github.com/acme/demo  \n", nil)

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/demo", url)
}

func TestChooseRepoURL_NoHistory_BlankIsError(t *testing.T) {
	_, _, err := choose(t, "\n", nil)

	assert.ErrorIs(t, err, session.ErrEmptyURL)
}

// TestChooseRepoURL_LastLineWithoutNewline verifies that input ending at EOF
// without a final newline still counts as an answer.
func TestChooseRepoURL_LastLineWithoutNewline(t *testing.T) {
	url, _, err := choose(t, "https://github.com/acme/demo", nil)

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/demo", url)
}

// ─── Menu ─────────────────────────────────────────────────────────────────────

func TestChooseRepoURL_MenuListsSavedURLs(t *testing.T) {
	_, out, err := choose(t, "1\n", savedURLs)

	require.NoError(t, err)
	assert.Contains(t, out, "Saved GitHub repository URLs:")
	assert.Contains(t, out, "1. https://github.com/acme/sample-service")
	assert.Contains(t, out, "2. https://github.com/acme/dotfiles")
	assert.Contains(t, out, "0. Enter a new repository URL")
	assert.Contains(t, out, "Please select a number: ")
}

func TestChooseRepoURL_PicksNumberedEntry(t *testing.T) {
	url, _, err := choose(t, "2\n", savedURLs)

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/dotfiles", url)
}

func TestChooseRepoURL_ZeroPromptsForNewURL(t *testing.T) {
	url, out, err := choose(t, "0\nhttps://github.com/acme/new\n", savedURLs)

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/new", url)
	assert.Contains(t, out, "Enter a new GitHub repository URL: ")
}

func TestChooseRepoURL_ZeroThenBlank_IsError(t *testing.T) {
	_, _, err := choose(t, "0\n\n", savedURLs)

	assert.ErrorIs(t, err, session.ErrEmptyURL)
}

// TestChooseRepoURL_NonNumericInputUsedAsURL verifies the shortcut: pasting a
// URL straight at the menu skips the extra prompt.
func TestChooseRepoURL_NonNumericInputUsedAsURL(t *testing.T) {
	url, _, err := choose(t, "https://github.com/acme/typed\n", savedURLs)

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/typed", url)
}

func TestChooseRepoURL_OutOfRange_InvalidSelection(t *testing.T) {
	_, _, err := choose(t, "7\n", savedURLs)

	var selErr session.InvalidSelectionError
	require.ErrorAs(t, err, &selErr)
	assert.Equal(t, 7, selErr.Choice)
}

func TestChooseRepoURL_NegativeNumber_InvalidSelection(t *testing.T) {
	_, _, err := choose(t, "-3\n", savedURLs)

	var selErr session.InvalidSelectionError
	require.ErrorAs(t, err, &selErr)
	assert.Equal(t, -3, selErr.Choice)
}
