// Package sphereuv generates longitude/latitude texture coordinates for the
// corners of a mesh.
//
// Each corner is projected from the origin onto the unit sphere: U is the
// longitude atan2(y, x) scaled to [0, 1] and V is the polar angle from +Z
// scaled to [0, 1]. U reaches 1 only when a longitude just below zero rounds
// up to a full turn. Within a face, corners whose longitude is more than half
// a turn away from the first corner are moved by whole turns so the face does
// not stretch across the texture at the U=0/U=1 seam.
//
// Only the first corner is used as the reference. A face that straddles the
// seam relative to another corner, but not relative to the first, is left
// as is.
package sphereuv

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/sphereuv/pkg/obj"
)

// SeamThreshold is the longitude gap, in turns, above which a corner is
// considered to be on the far side of the seam.
const SeamThreshold = 0.5

// Result is the output of Generate.
type Result struct {
	Faces     []obj.Face // Copies of the input faces with UV indices resolved
	UVIndices [][]int    // Per face, the UV slot of each corner
	UVs       []obj.UV   // Distinct coordinates, indexed by slot

	Corrections int // Corners moved across the seam
	Degenerate  int // Corners at the origin, projected to a NaN latitude
}

// Project maps p to spherical texture coordinates.
//
// The origin has no direction: U is 0 and V is NaN. The NaN is returned as
// is so callers can detect and report it.
func Project(p r3.Vec) obj.UV {
	lon := math.Atan2(p.Y, p.X)
	if lon < 0 {
		lon += 2 * math.Pi
	}
	if lon == 0 {
		// atan2 may return -0
		lon = 0
	}
	return obj.UV{
		U: lon / (2 * math.Pi),
		V: math.Acos(p.Z/r3.Norm(p)) / math.Pi,
	}
}

// CorrectSeam returns u shifted by whole turns to the value nearest ref when
// the two are more than SeamThreshold apart. The second result reports
// whether u was changed.
func CorrectSeam(ref, u float64) (float64, bool) {
	if math.Abs(ref-u) > SeamThreshold {
		f := u - ref
		return f - math.Floor(f-0.5) - 1 + ref, true
	}
	return u, false
}

// Generate computes texture coordinates for every corner of faces. Faces are
// not modified; the returned faces carry the resolved UV indices.
func Generate(faces []obj.Face, positions [][]float64) (*Result, error) {
	buf := NewBuffer()
	res := &Result{
		Faces:     make([]obj.Face, len(faces)),
		UVIndices: make([][]int, len(faces)),
	}

	uvs := make([]obj.UV, 0, 4)
	for fi, face := range faces {
		uvs = uvs[:0]
		for ci, c := range face.Corners {
			p, err := position(positions, c.Position)
			if err != nil {
				return nil, fmt.Errorf("face %d corner %d: %w", fi, ci, err)
			}
			uv := Project(p)
			if math.IsNaN(uv.V) {
				res.Degenerate++
			}
			uvs = append(uvs, uv)
		}

		for j := 1; j < len(uvs); j++ {
			if u, moved := CorrectSeam(uvs[0].U, uvs[j].U); moved {
				uvs[j].U = u
				res.Corrections++
			}
		}

		corners := make([]obj.Corner, len(face.Corners))
		idx := make([]int, len(face.Corners))
		for ci, c := range face.Corners {
			slot := buf.Add(uvs[ci])
			c.UV = slot
			corners[ci] = c
			idx[ci] = slot
		}
		res.Faces[fi] = obj.Face{Corners: corners}
		res.UVIndices[fi] = idx
	}

	res.UVs = buf.UVs()
	return res, nil
}

func position(positions [][]float64, i int) (r3.Vec, error) {
	if i < 0 || i >= len(positions) {
		return r3.Vec{}, fmt.Errorf("position %d of %d: %w", i+1, len(positions), obj.ErrIndexOutOfRange)
	}
	p := positions[i]
	if len(p) < 3 {
		return r3.Vec{}, fmt.Errorf("position %d has %d components, need 3", i+1, len(p))
	}
	return r3.Vec{X: p[0], Y: p[1], Z: p[2]}, nil
}
