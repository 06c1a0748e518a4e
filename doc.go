// Package tess provides CPU-side tessellation of 2D vector paths into
// GPU-ready triangle meshes for the GoGPU ecosystem.
//
// # Overview
//
// tess turns paths built from lines, quadratic and cubic Bézier curves into
// indexed triangle lists that a renderer can upload directly:
//
//   - Path: event-encoded path storage (points + verbs) with a fluent
//     PathBuilder and per-subpath Contour handles.
//   - PathFlattener: adaptive curve flattening into polyline contours.
//   - Earcut: ear-clipping triangulation with hole support.
//   - StrokeTessellator: polyline stroking with caps and joins.
//   - DrawList: mesh assembly with optional antialias feathering.
//   - InstructionBatcher: groups draw instructions by texture and clip rect.
//
// # Quick Start
//
//	import "github.com/gogpu/tess"
//
//	var b tess.PathBuilder
//	b.Begin(tess.Pt(10, 10))
//	b.LineTo(tess.Pt(90, 10))
//	b.LineTo(tess.Pt(50, 80))
//	b.Close()
//
//	dl := tess.NewDrawList(tess.WithFeathering(1.0))
//	dl.AddPath(b.Path(), tess.NewPathBrush(tess.Filled(tess.ColorWhite)), tess.Identity())
//	mesh := dl.Mesh()
//
// The resulting Mesh carries positions, UVs and colors in the vertex layout
// described by VertexBufferLayout, ready for a TriangleList pipeline.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Determinism
//
// All tessellation is deterministic: the same input path, style and options
// always produce the same vertex and index streams. Stroke index counts depend
// only on point count, closedness, and the cap/join styles.
package tess

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
