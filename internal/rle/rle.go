// Package rle decodes Game of Life patterns in the Run Length Encoded format.
//
// A file consists of optional '#' comment lines, one header line of the form
//
//	x = <width>, y = <height>[, rule = <rule>]
//
// and a body over the alphabet {0-9, b, o, $, !}. Digits prefix a run count,
// 'b' is a run of dead cells, 'o' a run of live cells, '$' ends one or more
// rows and '!' terminates the pattern. Unknown body characters are skipped.
package rle

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"lifegrid/internal/core"
)

// maxRun caps run counts and cursor positions. Half of MaxInt32 keeps
// cursor+run inside int32 so a 32-bit int cannot wrap negative.
const maxRun = math.MaxInt32 / 2

// FormatError reports a missing or malformed header.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("rle: line %d: %s", e.Line, e.Msg)
	}
	return "rle: " + e.Msg
}

// FileReadError reports a pattern file that could not be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("rle: read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// ReadFile loads and decodes the pattern stored at path.
func ReadFile(path string) (core.Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Pattern{}, &FileReadError{Path: path, Err: err}
	}
	p, err := Decode(string(data))
	if err != nil {
		return core.Pattern{}, errors.Wrapf(err, "[ReadFile] failed to decode pattern file: %+v", path)
	}
	return p, nil
}

// Decode parses RLE text. It fails with *FormatError when no valid header is
// present; the body is decoded best effort and cells outside the declared
// bounds are dropped.
func Decode(text string) (core.Pattern, error) {
	var (
		p         core.Pattern
		body      strings.Builder
		hasHeader bool
	)
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "", strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "x"):
			if hasHeader {
				return core.Pattern{}, &FormatError{Line: i + 1, Msg: "duplicate header"}
			}
			w, h, rule, err := parseHeader(line)
			if err != nil {
				return core.Pattern{}, &FormatError{Line: i + 1, Msg: err.Error()}
			}
			p.W, p.H, p.Rule = w, h, rule
			hasHeader = true
		default:
			body.WriteString(line)
		}
	}
	if !hasHeader {
		return core.Pattern{}, &FormatError{Msg: "missing header line"}
	}
	p.Cells = decodeBody(body.String(), p.W, p.H)
	return p, nil
}

func parseHeader(line string) (w, h int, rule string, err error) {
	var seenX, seenY bool
	for _, part := range strings.Split(line, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		switch key {
		case "x":
			if w, err = strconv.Atoi(value); err != nil {
				return 0, 0, "", fmt.Errorf("invalid width %q", value)
			}
			seenX = true
		case "y":
			if h, err = strconv.Atoi(value); err != nil {
				return 0, 0, "", fmt.Errorf("invalid height %q", value)
			}
			seenY = true
		case "rule":
			rule = value
		}
	}
	switch {
	case !seenX:
		return 0, 0, "", fmt.Errorf("header has no x value")
	case !seenY:
		return 0, 0, "", fmt.Errorf("header has no y value")
	case w <= 0 || h <= 0:
		return 0, 0, "", fmt.Errorf("declared size %dx%d must be positive", w, h)
	}
	return w, h, rule, nil
}

func decodeBody(body string, w, h int) []core.Point {
	var (
		cells   []core.Point
		seen    = map[core.Point]struct{}{}
		x, y    int
		count   int
		pending bool
	)
	run := func() int {
		n := 1
		if pending {
			n = count
		}
		count, pending = 0, false
		return n
	}
	for _, ch := range body {
		switch {
		case ch >= '0' && ch <= '9':
			if count > (maxRun-9)/10 {
				count = maxRun
			} else {
				count = min(count*10+int(ch-'0'), maxRun)
			}
			pending = true
		case ch == 'b':
			x = min(x+run(), maxRun)
		case ch == 'o':
			n := run()
			if y >= 0 && y < h {
				for cx := max(x, 0); cx < min(x+n, w); cx++ {
					pt := core.Point{X: cx, Y: y}
					if _, dup := seen[pt]; dup {
						continue
					}
					seen[pt] = struct{}{}
					cells = append(cells, pt)
				}
			}
			x = min(x+n, maxRun)
		case ch == '$':
			y = min(y+run(), maxRun)
			x = 0
		case ch == '!':
			return cells
		}
	}
	return cells
}
