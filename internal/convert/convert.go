// Package convert runs the parse, generate and write steps for one mesh.
package convert

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/sphereuv/internal/logger"
	"github.com/Faultbox/sphereuv/pkg/obj"
	"github.com/Faultbox/sphereuv/pkg/sphereuv"
)

// Stats summarizes a conversion.
type Stats struct {
	Positions   int
	Normals     int
	Faces       int
	Corners     int
	UVs         int
	Corrections int
	Degenerate  int
}

// File reads the mesh at inPath, regenerates its texture coordinates and
// writes the result to outPath.
func File(inPath, outPath string, h obj.Header) (Stats, error) {
	start := time.Now()

	mesh, err := obj.ParseFile(inPath)
	if err != nil {
		return Stats{}, err
	}
	logger.Log.Debug("parsed mesh",
		zap.String("path", inPath),
		zap.Int("positions", len(mesh.Positions)),
		zap.Int("uvs", len(mesh.UVs)),
		zap.Int("normals", len(mesh.Normals)),
		zap.Int("faces", len(mesh.Faces)))
	if mesh.SkippedVertices > 0 {
		logger.Log.Warn("skipped vertex lines with fewer than 3 coordinates",
			zap.Int("count", mesh.SkippedVertices))
	}

	res, stats, err := Mesh(mesh)
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", inPath, err)
	}

	logger.Log.Debug("writing normals", zap.Int("count", len(mesh.Normals)))
	if err := obj.WriteFile(outPath, h, mesh, res.UVs, res.Faces); err != nil {
		return Stats{}, err
	}

	logger.Log.Info("wrote mesh",
		zap.String("output", outPath),
		zap.Int("faces", stats.Faces),
		zap.Int("uvs", stats.UVs),
		zap.Int("seam_corrections", stats.Corrections),
		zap.Duration("elapsed", time.Since(start)))
	return stats, nil
}

// Mesh validates m and generates its texture coordinates. m is not modified.
func Mesh(m *obj.Mesh) (*sphereuv.Result, Stats, error) {
	if err := m.Validate(); err != nil {
		return nil, Stats{}, err
	}

	res, err := sphereuv.Generate(m.Faces, m.Positions)
	if err != nil {
		return nil, Stats{}, err
	}
	if res.Degenerate > 0 {
		logger.Log.Warn("corners at the origin have no latitude, writing NaN",
			zap.Int("count", res.Degenerate))
	}

	stats := Stats{
		Positions:   len(m.Positions),
		Normals:     len(m.Normals),
		Faces:       len(m.Faces),
		Corners:     m.CornerCount(),
		UVs:         len(res.UVs),
		Corrections: res.Corrections,
		Degenerate:  res.Degenerate,
	}
	logger.Log.Debug("generated uvs",
		zap.Int("corners", stats.Corners),
		zap.Int("uvs", stats.UVs),
		zap.Int("seam_corrections", stats.Corrections))
	return res, stats, nil
}
