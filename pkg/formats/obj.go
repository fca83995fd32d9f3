package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
)

// OBJ format errors.
var (
	ErrNotFound          = errors.New("mesh file not found")
	ErrMalformedOBJ      = errors.New("malformed OBJ data")
	ErrTooFewFaceIndices = errors.New("face needs at least 3 vertices")
	ErrZeroIndex         = errors.New("OBJ indices are 1-based, got 0")
)

// NotFoundError reports a mesh path that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, ErrNotFound)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ParseError reports a malformed statement.
type ParseError struct {
	Line int    // 1-based line number
	Text string // offending statement, trimmed
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrMalformedOBJ) match every parse failure.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedOBJ
}

// OBJ holds the geometry statements of a Wavefront OBJ file.
// Texture coordinates, normals, groups and materials are skipped.
type OBJ struct {
	Vertices [][3]float32
	// Faces holds 0-based vertex indices. Relative (negative) indices are
	// already resolved. Positive indices are not range-checked here because
	// the mesh builder validates them against the final vertex count.
	Faces [][]int
	// Lines is the number of lines read, including comments and blanks.
	Lines int
}

// ParseOBJ parses OBJ text from raw bytes.
func ParseOBJ(data []byte) (*OBJ, error) {
	obj := &OBJ{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		// Strip trailing comments.
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = strings.TrimSpace(text[:i])
		}

		fields := strings.Fields(text)
		var err error
		switch fields[0] {
		case "v":
			err = obj.parseVertex(fields[1:])
		case "f":
			err = obj.parseFace(fields[1:])
		}
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Line: line + 1, Err: err}
	}

	obj.Lines = line
	return obj, nil
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data)
}

// parseVertex handles "v x y z [w]". The optional w is ignored.
func (o *OBJ) parseVertex(args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return fmt.Errorf("vertex needs 3 coordinates, got %d", len(args))
	}
	var v [3]float32
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return fmt.Errorf("bad coordinate %q", args[i])
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("non-finite coordinate %q", args[i])
		}
		v[i] = float32(f)
	}
	o.Vertices = append(o.Vertices, v)
	return nil
}

// parseFace handles "f a b c ..." where each token is v, v/vt, v//vn or v/vt/vn.
func (o *OBJ) parseFace(args []string) error {
	if len(args) < 3 {
		return ErrTooFewFaceIndices
	}
	face := make([]int, 0, len(args))
	for _, tok := range args {
		ref, _, _ := strings.Cut(tok, "/")
		n, err := strconv.Atoi(ref)
		if err != nil {
			return fmt.Errorf("bad vertex reference %q", tok)
		}
		switch {
		case n == 0:
			return ErrZeroIndex
		case n < 0:
			idx := len(o.Vertices) + n
			if idx < 0 {
				return fmt.Errorf("relative index %d reaches before the first vertex", n)
			}
			face = append(face, idx)
		default:
			face = append(face, n-1)
		}
	}
	o.Faces = append(o.Faces, face)
	return nil
}
