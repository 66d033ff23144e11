package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Header holds the fixed material and object directives written around the
// vertex data.
type Header struct {
	MaterialLib string // mtllib, first line
	Object      string // o, second line
	Material    string // usemtl, before the faces
	Smoothing   string // s, before the faces
}

// DefaultHeader returns the directives written when none are configured.
func DefaultHeader() Header {
	return Header{
		MaterialLib: "phobos_t.mtl",
		Object:      "phobos",
		Material:    "Default_OBJ",
		Smoothing:   "1",
	}
}

// WriteFile creates path and writes the mesh to it. The file is not removed
// if writing fails part way.
func WriteFile(path string, h Header, m *Mesh, uvs []UV, faces []Face) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := Write(f, h, m, uvs, faces); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// Write serializes the mesh positions and normals, the given texture
// coordinates, and faces. Face corners are written 1-based as
// position/uv/normal; uvs[i] is written as the (i+1)th vt record.
// The texture coordinates parsed into m.UVs are not written.
func Write(w io.Writer, h Header, m *Mesh, uvs []UV, faces []Face) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "mtllib %s\n", h.MaterialLib)
	fmt.Fprintf(bw, "o %s\n", h.Object)

	for _, p := range m.Positions {
		fmt.Fprintf(bw, "v %s\n", joinFloats(p))
	}
	for _, uv := range uvs {
		fmt.Fprintf(bw, "vt %s %s\n", FormatFloat(uv.U), FormatFloat(uv.V))
	}
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %s\n", joinFloats(n))
	}

	fmt.Fprintf(bw, "usemtl %s\n", h.Material)
	fmt.Fprintf(bw, "s %s\n", h.Smoothing)

	var sb strings.Builder
	for _, face := range faces {
		sb.Reset()
		sb.WriteString("f")
		for _, c := range face.Corners {
			sb.WriteByte(' ')
			sb.WriteString(c.String())
		}
		sb.WriteByte('\n')
		if _, err := bw.WriteString(sb.String()); err != nil {
			return err
		}
	}

	return bw.Flush()
}
