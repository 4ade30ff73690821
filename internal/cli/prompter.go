// Package cli provides interactive terminal prompting.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads interactive answers from a terminal or any reader.
type Prompter struct {
	in     io.Reader
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompter creates a prompter with the given reader and writer.
// Nil arguments fall back to stdin and stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Prompter{
		in:     reader,
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// Confirm asks a yes/no question. Anything other than y/Y declines,
// including a read failure.
func (p *Prompter) Confirm(prompt string) bool {
	fmt.Fprintf(p.writer, "%s [y/N]: ", prompt)

	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.TrimSpace(line)
	return answer == "y" || answer == "Y"
}

// Line prints a label and reads a single trimmed line.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.writer, "%s: ", label)

	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Password reads a secret without echoing when the input is a terminal.
// Piped input (tests, scripts) is read as a plain line.
func (p *Prompter) Password(label string) (string, error) {
	fmt.Fprintf(p.writer, "%s: ", label)

	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.writer)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
