// Package brickio reads and writes bricks in the line format
//
//	x1,y1,z1~x2,y2,z2
//
// with an optional trailing "<- label" annotation, e.g. "1,0,1~1,2,1   <- A".
// Endpoints may appear in either order; parsed bricks are normalized so that
// Lower.Z <= Upper.Z. Malformed lines are reported as *ParseError carrying the
// 1-based line number and the offending text.
package brickio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/brickstack/geom"
)

// Sentinel errors for malformed input.
var (
	// ErrMissingSeparator indicates a line without the '~' endpoint separator.
	ErrMissingSeparator = errors.New("brickio: expected '~' between endpoints")

	// ErrBadPoint indicates an endpoint without exactly three fields.
	ErrBadPoint = errors.New("brickio: not a valid 3D point")

	// ErrBadCoordinate indicates a field that is not an integer.
	ErrBadCoordinate = errors.New("brickio: coordinate is not an integer")
)

// labelMarker separates the brick from its optional annotation.
const labelMarker = "<-"

// ParseError describes a malformed input line.
type ParseError struct {
	Line int    // 1-based line number; 0 when parsing a single line
	Text string // offending line
	Err  error  // underlying sentinel
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
	}

	return fmt.Sprintf("%q: %v", e.Text, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

// ParseLine parses one brick. Surrounding whitespace is ignored.
func ParseLine(s string) (geom.Brick, error) {
	text := strings.TrimSpace(s)
	left, right, ok := strings.Cut(text, "~")
	if !ok {
		return geom.Brick{}, &ParseError{Text: s, Err: ErrMissingSeparator}
	}
	var label string
	if r, l, found := strings.Cut(right, labelMarker); found {
		right, label = r, strings.TrimSpace(l)
	}
	a, err := parsePoint(left)
	if err != nil {
		return geom.Brick{}, &ParseError{Text: s, Err: err}
	}
	b, err := parsePoint(right)
	if err != nil {
		return geom.Brick{}, &ParseError{Text: s, Err: err}
	}

	return geom.NewBrick(a, b, label), nil
}

// parsePoint parses "x,y,z".
func parsePoint(s string) (geom.Point3, error) {
	fields := strings.Split(strings.TrimSpace(s), ",")
	if len(fields) != 3 {
		return geom.Point3{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	var xyz [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return geom.Point3{}, fmt.Errorf("%w: %q", ErrBadCoordinate, f)
		}
		xyz[i] = v
	}

	return geom.Point3{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

// Parse reads one brick per line from r. Blank lines are skipped.
// The first malformed line aborts parsing with a *ParseError.
func Parse(r io.Reader) ([]geom.Brick, error) {
	var bricks []geom.Brick
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		b, err := ParseLine(text)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = line
			}
			return nil, err
		}
		bricks = append(bricks, b)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("brickio: read: %w", err)
	}

	return bricks, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([]geom.Brick, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("brickio: %w", err)
	}
	defer f.Close()

	bricks, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return bricks, nil
}

// WriteBricks writes one brick per line in the format Parse reads.
func WriteBricks(w io.Writer, bricks []geom.Brick) error {
	bw := bufio.NewWriter(w)
	for _, b := range bricks {
		if _, err := fmt.Fprintln(bw, b); err != nil {
			return err
		}
	}

	return bw.Flush()
}
