// Package session implements the interactive prompt that resolves which
// repository URL the analyzer should run against.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrEmptyURL is returned when the user submits a blank repository URL.
var ErrEmptyURL = errors.New("repository URL was not entered")

// InvalidSelectionError is returned when a numeric menu choice is outside the
// offered range.
type InvalidSelectionError struct {
	Choice int
}

// Error implements the error interface.
func (e InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid number selected: %d", e.Choice)
}

// Session prompts on out and reads line-oriented answers from in.
type Session struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Session reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Session {
	return &Session{in: bufio.NewReader(in), out: out}
}

// ChooseRepoURL resolves the repository URL for this run. With saved URLs a
// numbered menu is offered: an in-range number picks that entry, 0 prompts
// for a new URL, and non-numeric input is taken as the URL itself. With no
// saved URLs the URL is prompted for directly. A blank result is ErrEmptyURL.
func (s *Session) ChooseRepoURL(saved []string) (string, error) {
	if len(saved) == 0 {
		repoURL, err := s.prompt("Enter GitHub repository URL: ")
		if err != nil {
			return "", err
		}
		return nonEmpty(repoURL)
	}

	fmt.Fprintln(s.out, "Saved GitHub repository URLs:")
	for i, url := range saved {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, url)
	}
	fmt.Fprintln(s.out, "0. Enter a new repository URL")

	choice, err := s.prompt("Please select a number: ")
	if err != nil {
		return "", err
	}

	n, convErr := strconv.Atoi(choice)
	switch {
	case convErr != nil:
		// Non-numeric input is taken as a fresh URL.
		return nonEmpty(choice)
	case n == 0:
		repoURL, err := s.prompt("Enter a new GitHub repository URL: ")
		if err != nil {
			return "", err
		}
		return nonEmpty(repoURL)
	case n >= 1 && n <= len(saved):
		return saved[n-1], nil
	default:
		return "", InvalidSelectionError{Choice: n}
	}
}

// prompt prints msg without a trailing newline and returns the next input
// line, trimmed. A final line without a newline before EOF still counts.
func (s *Session) prompt(msg string) (string, error) {
	fmt.Fprint(s.out, msg)
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func nonEmpty(url string) (string, error) {
	if url == "" {
		return "", ErrEmptyURL
	}
	return url, nil
}
