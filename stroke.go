package tess

import "math"

// strokeMiterLimit caps the miter length at joins, in multiples of the
// half line width. Longer miters are clamped in place rather than
// falling back to bevel, keeping the emitted topology independent of
// the join angles.
const strokeMiterLimit = 4.0

// strokeRoundSegments is the fixed fan resolution for round joins and
// caps.
const strokeRoundSegments = 8

// StrokeTessellator expands flattened polylines into stroke triangles:
// one quad per edge, join geometry at interior vertices, caps on open
// ends.
//
// The emitted index count is a deterministic function of the point
// count, closedness, and the cap/join styles; it never depends on the
// coordinates. Reuse one instance to amortize scratch allocations.
type StrokeTessellator struct {
	normals []Point
}

// Tessellate appends the stroke geometry for the polyline to mesh.
// A polyline whose first and last points coincide is treated as closed:
// it gets a join at the seam and no caps. Zero width, a transparent
// color or fewer than two distinct points produce nothing.
func (st *StrokeTessellator) Tessellate(mesh *Mesh, points []Point, style StrokeStyle) {
	if !style.IsVisible() || len(points) < 2 {
		return
	}

	closed := len(points) > 2 && points[0].approxEq(points[len(points)-1])
	if closed {
		points = points[:len(points)-1]
	}
	n := len(points)
	if n < 2 {
		return
	}

	halfW := float32(style.LineWidth) / 2
	color := style.Color.array()

	// Edge normals, scaled to the half width. normals[i] is the left
	// normal of the edge points[i] -> points[i+1] (wrapping when closed).
	st.normals = st.normals[:0]
	edges := n - 1
	if closed {
		edges = n
	}
	for i := range edges {
		j := (i + 1) % n
		dir := points[j].Sub(points[i]).Normalize()
		if dir.IsZero() {
			dir = Point{1, 0}
		}
		st.normals = append(st.normals, dir.Perp().Mul(halfW))
	}

	vtx := func(p Point) uint32 {
		return mesh.AddVertex(Vertex{
			Position: [2]float32{p.X, p.Y},
			UV:       WhiteUV,
			Color:    color,
		})
	}

	// Edge quads.
	for i := range edges {
		j := (i + 1) % n
		nrm := st.normals[i]
		a := vtx(points[i].Add(nrm))
		b := vtx(points[i].Sub(nrm))
		c := vtx(points[j].Add(nrm))
		d := vtx(points[j].Sub(nrm))
		mesh.AddTriangle(a, c, d)
		mesh.AddTriangle(a, d, b)
	}

	// Joins. Interior vertices only when open; every vertex when closed.
	if closed {
		for i := range n {
			prev := (i + n - 1) % n
			st.addJoin(mesh, vtx, points[i], st.normals[prev], st.normals[i], halfW, style.LineJoin)
		}
	} else {
		for i := 1; i < n-1; i++ {
			st.addJoin(mesh, vtx, points[i], st.normals[i-1], st.normals[i], halfW, style.LineJoin)
		}

		st.addCap(mesh, vtx, points[0], st.normals[0], true, halfW, style.LineCap)
		st.addCap(mesh, vtx, points[n-1], st.normals[edges-1], false, halfW, style.LineCap)
	}
}

// addJoin fills the gap between the edge quads meeting at p. n0 and n1
// are the half-width normals of the incoming and outgoing edges. Both
// sides of the line get gap geometry, so the topology stays fixed
// whichever way the polyline turns.
func (st *StrokeTessellator) addJoin(mesh *Mesh, vtx func(Point) uint32, p Point, n0, n1 Point, halfW float32, join LineJoin) {
	switch join {
	case JoinBevel:
		c := vtx(p)
		mesh.AddTriangle(c, vtx(p.Add(n0)), vtx(p.Add(n1)))
		mesh.AddTriangle(c, vtx(p.Sub(n0)), vtx(p.Sub(n1)))

	case JoinMiter:
		miterDir := n0.Add(n1).Normalize()
		if miterDir.IsZero() {
			// 180 degree turn; no miter direction. Fall back to the
			// edge normal so the apex degenerates onto the quad edge.
			miterDir = n0.Normalize()
		}
		// halfW / cos(theta/2), clamped to the miter limit.
		cosHalf := miterDir.Dot(n0) / halfW
		miterLen := halfW * strokeMiterLimit
		if cosHalf > 1.0/strokeMiterLimit {
			miterLen = halfW / cosHalf
		}
		outer := p.Add(miterDir.Mul(miterLen))
		inner := p.Sub(miterDir.Mul(miterLen))

		c := vtx(p)
		a0 := vtx(p.Add(n0))
		a1 := vtx(p.Add(n1))
		mesh.AddTriangle(a0, vtx(outer), a1)
		mesh.AddTriangle(c, a0, a1)

		b0 := vtx(p.Sub(n0))
		b1 := vtx(p.Sub(n1))
		mesh.AddTriangle(b0, vtx(inner), b1)
		mesh.AddTriangle(c, b0, b1)

	case JoinRound:
		delta := signedAngle(n0, n1) / strokeRoundSegments
		for _, side := range [2]float32{1, -1} {
			c := vtx(p)
			prev := n0.Mul(side)
			for s := 1; s <= strokeRoundSegments; s++ {
				cur := rotate(n0, delta*float32(s)).Mul(side)
				mesh.AddTriangle(c, vtx(p.Add(prev)), vtx(p.Add(cur)))
				prev = cur
			}
		}
	}
}

// addCap closes an open end of the stroke. nrm is the half-width normal
// of the terminal edge; start selects which end of that edge p is.
func (st *StrokeTessellator) addCap(mesh *Mesh, vtx func(Point) uint32, p Point, nrm Point, start bool, halfW float32, capStyle LineCap) {
	// Outward direction, away from the polyline.
	out := nrm.Perp().Normalize()
	if !start {
		out = out.Mul(-1)
	}

	switch capStyle {
	case CapButt:
		// Flat end; the edge quad already covers it.

	case CapSquare:
		q := p.Add(out.Mul(halfW))
		a := vtx(p.Add(nrm))
		b := vtx(p.Sub(nrm))
		c := vtx(q.Add(nrm))
		d := vtx(q.Sub(nrm))
		mesh.AddTriangle(a, c, d)
		mesh.AddTriangle(a, d, b)

	case CapRound:
		// Half disc from +nrm to -nrm, sweeping through the outward
		// direction.
		sweep := signedAngle(nrm, out.Mul(halfW)) * 2
		delta := sweep / strokeRoundSegments
		c := vtx(p)
		prev := nrm
		for s := 1; s <= strokeRoundSegments; s++ {
			cur := rotate(nrm, delta*float32(s))
			mesh.AddTriangle(c, vtx(p.Add(prev)), vtx(p.Add(cur)))
			prev = cur
		}
	}
}

// signedAngle returns the angle rotating a onto b, in (-pi, pi].
func signedAngle(a, b Point) float32 {
	return float32(math.Atan2(float64(a.Cross(b)), float64(a.Dot(b))))
}

// rotate returns v rotated by the angle in radians.
func rotate(v Point, angle float32) Point {
	s := float32(math.Sin(float64(angle)))
	c := float32(math.Cos(float64(angle)))
	return Point{v.X*c - v.Y*s, v.X*s + v.Y*c}
}
