// Package dialog provides blocking prompt collaborators that talk to the user
// over a text stream.
package dialog

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Terminal prompts on an output stream and reads answers line by line.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal returns a Terminal reading from r and writing prompts to w.
func NewTerminal(r io.Reader, w io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(r), out: w}
}

// Confirm prints message and reports whether the answer starts with 'y'.
// End of input counts as no.
func (t *Terminal) Confirm(message string) bool {
	fmt.Fprintf(t.out, "%s [y/N]: ", message)
	answer, ok := t.readLine()
	if !ok {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// SelectFile asks for a pattern path. An empty answer cancels.
func (t *Terminal) SelectFile() (string, bool) {
	fmt.Fprint(t.out, "RLE file to open (empty to cancel): ")
	path, ok := t.readLine()
	if !ok || path == "" {
		return "", false
	}
	return path, true
}

// Notify prints a titled message.
func (t *Terminal) Notify(title, message string) {
	fmt.Fprintf(t.out, "== %s ==\n%s\n", title, message)
}

func (t *Terminal) readLine() (string, bool) {
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}
