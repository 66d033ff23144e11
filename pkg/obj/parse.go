package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseFile parses the OBJ file at path.
func ParseFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.File = path
			return nil, fe
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return m, nil
}

// Parse reads OBJ records from r. Lines with unknown tags, comments and
// blank lines are ignored.
func Parse(r io.Reader) (*Mesh, error) {
	m := NewMesh()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "v":
			if len(fields) <= 3 {
				m.SkippedVertices++
				continue
			}
			var pos []float64
			pos, err = parseFloats(fields[1:])
			if err == nil {
				m.Positions = append(m.Positions, pos)
			}

		case "vt":
			var vals []float64
			vals, err = parseFloats(fields[1:])
			if err == nil {
				var uv UV
				if len(vals) > 0 {
					uv.U = vals[0]
				}
				if len(vals) > 1 {
					uv.V = vals[1]
				}
				m.UVs = append(m.UVs, uv)
			}

		case "vn":
			var n []float64
			n, err = parseFloats(fields[1:])
			if err == nil {
				m.Normals = append(m.Normals, n)
			}

		case "f":
			var face Face
			face, err = parseFace(fields[1:])
			if err == nil {
				m.Faces = append(m.Faces, face)
			}
		}

		if err != nil {
			return nil, &FormatError{Line: lineNum, Content: line, Err: err}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return m, nil
}

func parseFloats(tokens []string) ([]float64, error) {
	out := make([]float64, len(tokens))
	for i, tok := range tokens {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q", ErrInvalidNumber, tok)
		}
		out[i] = f
	}
	return out, nil
}

func parseFace(tokens []string) (Face, error) {
	if len(tokens) == 0 {
		return Face{}, fmt.Errorf("%w: no corners", ErrMalformedFace)
	}

	corners := make([]Corner, len(tokens))
	for i, tok := range tokens {
		c, err := parseCorner(tok)
		if err != nil {
			return Face{}, err
		}
		corners[i] = c
	}
	return Face{Corners: corners}, nil
}

// parseCorner parses "p/t" or "p/t/n". The texture index is checked but not
// kept; texture coordinates are always regenerated.
func parseCorner(tok string) (Corner, error) {
	parts := strings.Split(tok, "/")
	if len(parts) < 2 || len(parts) > 3 {
		return Corner{}, fmt.Errorf("%w: corner %q needs position/uv[/normal]", ErrMalformedFace, tok)
	}

	pos, err := parseIndex(parts[0])
	if err != nil {
		return Corner{}, err
	}
	if pos == NoIndex {
		return Corner{}, fmt.Errorf("%w: corner %q has no position", ErrMalformedFace, tok)
	}

	if _, err := parseIndex(parts[1]); err != nil {
		return Corner{}, err
	}

	normal := NoIndex
	if len(parts) == 3 {
		if normal, err = parseIndex(parts[2]); err != nil {
			return Corner{}, err
		}
	}

	return Corner{Position: pos, UV: NoIndex, Normal: normal}, nil
}

// parseIndex converts a 1-based file index to a 0-based one. An empty
// component yields NoIndex.
func parseIndex(s string) (int, error) {
	if s == "" {
		return NoIndex, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidNumber, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: index %d, relative and zero indices are not supported", ErrMalformedFace, n)
	}
	return n - 1, nil
}
