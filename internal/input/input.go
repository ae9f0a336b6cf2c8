// Package input acquires source text for the frontend to parse, either all
// at once (DirectReader) or one blank-line-terminated block at a time
// (InteractiveReader). A parse unit here is a whole block of text rather
// than a single line, since source code isn't line-oriented the way a
// command stream is.
package input

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// SourceReader produces one parseable unit of source text per ReadUnit
// call, until it returns io.EOF.
type SourceReader interface {
	ReadUnit() (string, error)
	Close() error
}

// DirectReader reads its entire underlying stream exactly once and returns
// it as a single unit. Used for piped stdin and file input, where the whole
// input is one Items program rather than a command stream.
//
// DirectReader should not be constructed directly; instead, create one with
// [NewDirectReader].
type DirectReader struct {
	r    io.Reader
	done bool
}

// NewDirectReader wraps r. The returned DirectReader has no resources that
// require teardown, but implements Close to satisfy SourceReader.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{r: r}
}

func (d *DirectReader) Close() error {
	return nil
}

// ReadUnit returns the entirety of the underlying stream the first time it
// is called, and io.EOF on every call after that.
func (d *DirectReader) ReadUnit() (string, error) {
	if d.done {
		return "", io.EOF
	}
	d.done = true

	data, err := io.ReadAll(d.r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// InteractiveReader reads source from a terminal through GNU readline,
// keeping input clear of editing escape sequences and enabling history.
// One ReadUnit call accumulates lines until a blank line is entered and
// returns them as one Items block.
//
// InteractiveReader should not be constructed directly; instead, create one
// with [NewInteractiveReader].
type InteractiveReader struct {
	rl *readline.Instance
}

// NewInteractiveReader initializes readline. The returned InteractiveReader
// must have Close called on it before disposal.
func NewInteractiveReader() (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "earleycst> ",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveReader{rl: rl}, nil
}

func (i *InteractiveReader) Close() error {
	return i.rl.Close()
}

// ReadUnit reads lines until a blank line terminates the block, returning
// the accumulated block joined by newlines. If end-of-input is reached
// after at least one non-blank line has been entered, that partial block is
// returned with a nil error; only a clean EOF with nothing yet entered
// propagates io.EOF to the caller.
func (i *InteractiveReader) ReadUnit() (string, error) {
	const initialPrompt = "earleycst> "
	const continuationPrompt = "......... "

	var lines []string
	i.rl.SetPrompt(initialPrompt)

	for {
		line, err := i.rl.Readline()
		if err != nil {
			if len(lines) > 0 {
				return strings.Join(lines, "\n"), nil
			}
			return "", err
		}

		if strings.TrimSpace(line) == "" {
			if len(lines) > 0 {
				break
			}
			continue
		}

		lines = append(lines, line)
		i.rl.SetPrompt(continuationPrompt)
	}

	return strings.Join(lines, "\n"), nil
}
