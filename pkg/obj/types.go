// Package obj reads and writes the subset of the Wavefront OBJ text format
// used by sphereuv: positions, texture coordinates, normals and faces.
package obj

import "fmt"

// NoIndex marks a corner index that is absent from the file or not yet resolved.
const NoIndex = -1

// UV is a 2D texture coordinate. Two UVs are the same coordinate when they
// compare equal with ==.
type UV struct {
	U, V float64
}

// Corner references one vertex of one face. Indices are zero-based.
type Corner struct {
	Position int // Index into Mesh.Positions
	UV       int // Index into the texture coordinate list, or NoIndex
	Normal   int // Index into Mesh.Normals, or NoIndex
}

// String returns the corner in 1-based file notation.
func (c Corner) String() string {
	s := fmt.Sprintf("%d/", c.Position+1)
	if c.UV != NoIndex {
		s += fmt.Sprintf("%d", c.UV+1)
	}
	if c.Normal != NoIndex {
		s += fmt.Sprintf("/%d", c.Normal+1)
	}
	return s
}

// Face is a polygon in file winding order. Faces are never triangulated.
type Face struct {
	Corners []Corner
}

// Mesh holds the records parsed from an OBJ file.
type Mesh struct {
	Positions [][]float64 // Vertex positions, 3 or more components each
	UVs       []UV        // Texture coordinates found in the input
	Normals   [][]float64 // Normal vectors, written back unchanged
	Faces     []Face

	// SkippedVertices counts "v" lines with fewer than three coordinates.
	// Skipped lines do not take a position index.
	SkippedVertices int
}

// NewMesh returns an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{
		Positions: make([][]float64, 0),
		UVs:       make([]UV, 0),
		Normals:   make([][]float64, 0),
		Faces:     make([]Face, 0),
	}
}

// CornerCount returns the total number of corners over all faces.
func (m *Mesh) CornerCount() int {
	n := 0
	for _, f := range m.Faces {
		n += len(f.Corners)
	}
	return n
}

// Validate checks that every face corner points at an existing position and,
// when present, an existing normal.
func (m *Mesh) Validate() error {
	for fi, f := range m.Faces {
		for ci, c := range f.Corners {
			if c.Position < 0 || c.Position >= len(m.Positions) {
				return fmt.Errorf("face %d corner %d: position %d of %d: %w",
					fi, ci, c.Position+1, len(m.Positions), ErrIndexOutOfRange)
			}
			if c.Normal != NoIndex && (c.Normal < 0 || c.Normal >= len(m.Normals)) {
				return fmt.Errorf("face %d corner %d: normal %d of %d: %w",
					fi, ci, c.Normal+1, len(m.Normals), ErrIndexOutOfRange)
			}
		}
	}
	return nil
}
