package tess

import (
	"math"
	"slices"
)

// Earcut is an ear-clipping polygon triangulator with hole support,
// following the mapbox earcut algorithm.
//
// Nodes live in a flat arena addressed by 1-based uint32 indices; slot 0
// holds a sentinel and is never a valid node, so the zero index can mean
// "none" in the z-order links. Reuse a single instance across
// triangulations to amortize allocations.
type Earcut struct {
	data  []Point
	nodes []earNode
	queue []holeQueueItem
	out   []uint32
}

// earNode is one polygon vertex in the arena. prev/next form a circular
// doubly linked ring; prevZ/nextZ order the nodes along the z-order curve
// (0 = none).
type earNode struct {
	i            uint32 // vertex index in the input data
	z            int32  // z-order curve value
	x, y         float32
	prev, next   uint32
	prevZ, nextZ uint32
	steiner      bool
}

type holeQueueItem struct {
	node uint32
	x    float32
}

type earLinks struct {
	prev, next   uint32
	prevZ, nextZ uint32
}

func (n *earNode) links() earLinks {
	return earLinks{prev: n.prev, next: n.next, prevZ: n.prevZ, nextZ: n.nextZ}
}

// zOrderThreshold is the input size above which the z-order curve hash
// accelerates point-in-triangle queries.
const zOrderThreshold = 80

// Triangulate performs ear-clipping triangulation of a polygon.
//
// data holds the outer ring followed by the hole rings; holeIndices marks
// the start of each hole within data. Triangle vertex indices into data
// are appended to out, three per triangle. Returns the grown slice and
// false when data has fewer than 3 points.
func (e *Earcut) Triangulate(data []Point, holeIndices []uint32, out []uint32) ([]uint32, bool) {
	e.data = e.data[:0]
	e.data = append(e.data, data...)
	if len(e.data) < 3 {
		return out, false
	}

	e.out = slices.Grow(out, len(e.data)+1)
	e.triangulateImpl(holeIndices)
	out = e.out
	e.out = nil
	return out, true
}

func (e *Earcut) triangulateImpl(holeIndices []uint32) {
	e.nodes = e.nodes[:0]
	e.nodes = slices.Grow(e.nodes, (len(e.data)/2)*3)
	inf := float32(math.Inf(1))
	e.nodes = append(e.nodes, earNode{x: inf, y: inf}) // sentinel at slot 0

	hasHoles := len(holeIndices) > 0
	outerLen := len(e.data)
	if hasHoles {
		outerLen = int(holeIndices[0])
	}

	outerNodeI := e.linkedList(0, outerLen, true)
	if outerNodeI == 0 {
		return
	}
	if outer := &e.nodes[outerNodeI]; outer.next == outer.prev {
		return
	}
	if hasHoles {
		outerNodeI = e.eliminateHoles(holeIndices, outerNodeI)
	}

	var minX, minY, invSize float32

	// if the shape is not too simple, use a z-order curve hash later;
	// calculate the polygon bbox
	if len(e.data) > zOrderThreshold {
		maxX, maxY := e.data[0].X, e.data[0].Y
		minX, minY = maxX, maxY
		for _, p := range e.data[1:outerLen] {
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
		// minX, minY and invSize transform coords into integers for
		// the z-order calculation
		invSize = max(maxX-minX, maxY-minY)
		if invSize != 0 {
			invSize = 32767.0 / invSize
		}
	}

	e.earcutLinked(outerNodeI, minX, minY, invSize, passInitial)
}

// linkedList creates a circular doubly linked list from polygon points in
// the specified winding order. Returns 0 for an empty range.
func (e *Earcut) linkedList(start, end int, clockwise bool) uint32 {
	var lastI uint32

	if clockwise == (e.signedArea(start, end) > 0) {
		for idx := start; idx < end; idx++ {
			lastI = e.insertNode(uint32(idx), e.data[idx], lastI)
		}
	} else {
		for idx := end - 1; idx >= start; idx-- {
			lastI = e.insertNode(uint32(idx), e.data[idx], lastI)
		}
	}

	if lastI != 0 {
		last := &e.nodes[lastI]
		if nodesEqual(last, &e.nodes[last.next]) {
			_, nextI := e.removeNode(last.links())
			lastI = nextI
		}
	}
	return lastI
}

// eliminateHoles links every hole into the outer loop, producing a
// single-ring polygon without holes.
func (e *Earcut) eliminateHoles(holeIndices []uint32, outerNodeI uint32) uint32 {
	e.queue = e.queue[:0]
	for i, hi := range holeIndices {
		start := int(hi)
		end := len(e.data)
		if i < len(holeIndices)-1 {
			end = int(holeIndices[i+1])
		}
		listI := e.linkedList(start, end, false)
		if listI == 0 {
			continue
		}
		list := &e.nodes[listI]
		if listI == list.next {
			list.steiner = true
		}
		leftmostI := e.getLeftmost(listI)
		e.queue = append(e.queue, holeQueueItem{node: leftmostI, x: e.nodes[leftmostI].x})
	}

	slices.SortFunc(e.queue, func(a, b holeQueueItem) int {
		switch {
		case a.x < b.x:
			return -1
		case a.x > b.x:
			return 1
		}
		return 0
	})

	// process holes from left to right
	for _, q := range e.queue {
		outerNodeI = e.eliminateHole(q.node, outerNodeI)
	}
	return outerNodeI
}

// Triangulation passes. When no more ears can be clipped the algorithm
// escalates: filter points, then cure local self-intersections, then split
// the polygon in two and recurse. Each step strictly reduces the node
// count, so the algorithm always terminates.
const (
	passInitial = iota
	passFiltered
	passCured
)

// earcutLinked is the main ear slicing loop which triangulates a polygon
// given as a linked list.
func (e *Earcut) earcutLinked(earI uint32, minX, minY, invSize float32, pass int) {
	if earI == 0 {
		return
	}

	// interlink polygon nodes in z-order
	if pass == passInitial && invSize != 0 {
		e.indexCurve(earI, minX, minY, invSize)
	}

	stopI := earI

	// iterate through ears, slicing them one by one
	for {
		ear := &e.nodes[earI]
		if ear.prev == ear.next {
			break
		}
		ni := ear.next

		var isEar bool
		if invSize != 0 {
			isEar = e.isEarHashed(earI, minX, minY, invSize)
		} else {
			isEar = e.isEar(earI)
		}
		if isEar {
			nextI := ear.next
			nextNextI := e.nodes[nextI].next

			// cut off the triangle
			e.out = append(e.out, e.nodes[ear.prev].i, ear.i, e.nodes[nextI].i)

			e.removeNode(ear.links())

			// skipping the next vertex leads to fewer sliver triangles
			earI, stopI = nextNextI, nextNextI
			continue
		}

		earI = ni

		// looped through the whole remaining polygon without finding an ear
		if earI == stopI {
			switch pass {
			case passInitial:
				// try filtering points and slicing again
				earI = e.filterPoints(earI, 0)
				e.earcutLinked(earI, minX, minY, invSize, passFiltered)
			case passFiltered:
				// if that didn't work, try curing all small
				// self-intersections locally
				filtered := e.filterPoints(earI, 0)
				earI = e.cureLocalIntersections(filtered)
				e.earcutLinked(earI, minX, minY, invSize, passCured)
			case passCured:
				// as a last resort, try splitting the remaining
				// polygon into two
				e.splitEarcut(earI, minX, minY, invSize)
			}
			return
		}
	}
}

// isEar checks whether a polygon node forms a valid ear with its adjacent
// nodes.
func (e *Earcut) isEar(earI uint32) bool {
	b := &e.nodes[earI]
	a := &e.nodes[b.prev]
	c := &e.nodes[b.next]

	if nodeArea(a, b, c) >= 0 {
		return false // reflex, can't be an ear
	}

	// make sure there are no other points inside the potential ear

	// triangle bbox
	x0 := min(a.x, b.x, c.x)
	y0 := min(a.y, b.y, c.y)
	x1 := max(a.x, b.x, c.x)
	y1 := max(a.y, b.y, c.y)

	pI := c.next
	pPrev := &e.nodes[e.nodes[pI].prev]
	for pI != b.prev {
		p := &e.nodes[pI]
		pNext := &e.nodes[p.next]
		if p.x >= x0 && p.x <= x1 && p.y >= y0 && p.y <= y1 &&
			pointInTriangle(a.x, a.y, b.x, b.y, c.x, c.y, p.x, p.y) &&
			nodeArea(pPrev, p, pNext) >= 0 {
			return false
		}
		pPrev = p
		pI = p.next
	}
	return true
}

// isEarHashed is isEar accelerated by the z-order curve: only nodes whose
// z value falls in the triangle bbox's z range are candidates.
func (e *Earcut) isEarHashed(earI uint32, minX, minY, invSize float32) bool {
	b := &e.nodes[earI]
	a := &e.nodes[b.prev]
	c := &e.nodes[b.next]

	if nodeArea(a, b, c) >= 0 {
		return false // reflex, can't be an ear
	}

	// triangle bbox
	x0 := min(a.x, b.x, c.x)
	y0 := min(a.y, b.y, c.y)
	x1 := max(a.x, b.x, c.x)
	y1 := max(a.y, b.y, c.y)

	// z-order range for the triangle bbox
	minZ := zOrder(x0, y0, minX, minY, invSize)
	maxZ := zOrder(x1, y1, minX, minY, invSize)

	inside := func(nI uint32) bool {
		n := &e.nodes[nI]
		return n.x >= x0 && n.x <= x1 && n.y >= y0 && n.y <= y1 &&
			nI != b.prev && nI != b.next &&
			pointInTriangle(a.x, a.y, b.x, b.y, c.x, c.y, n.x, n.y) &&
			nodeArea(&e.nodes[n.prev], n, &e.nodes[n.next]) >= 0
	}

	oP := b.prevZ
	oN := b.nextZ

	// look for points inside the triangle in both directions
	for oP != 0 && e.nodes[oP].z >= minZ && oN != 0 && e.nodes[oN].z <= maxZ {
		if inside(oP) {
			return false
		}
		oP = e.nodes[oP].prevZ

		if inside(oN) {
			return false
		}
		oN = e.nodes[oN].nextZ
	}

	// look for remaining points in decreasing z-order
	for oP != 0 && e.nodes[oP].z >= minZ {
		if inside(oP) {
			return false
		}
		oP = e.nodes[oP].prevZ
	}

	// look for remaining points in increasing z-order
	for oN != 0 && e.nodes[oN].z <= maxZ {
		if inside(oN) {
			return false
		}
		oN = e.nodes[oN].nextZ
	}

	return true
}

// cureLocalIntersections goes through all polygon nodes and cures small
// local self-intersections.
func (e *Earcut) cureLocalIntersections(startI uint32) uint32 {
	pI := startI
	for {
		p := &e.nodes[pI]
		pNextI := p.next
		pNext := &e.nodes[pNextI]
		bI := pNext.next
		a := &e.nodes[p.prev]
		b := &e.nodes[bI]

		if !nodesEqual(a, b) && e.segIntersects(a, p, pNext, b) &&
			e.locallyInside(a, b) && e.locallyInside(b, a) {
			e.out = append(e.out, a.i, p.i, b.i)

			bNextI := b.next
			e.removeNode(p.links())
			e.removeNode(e.nodes[pNextI].links())

			pI, startI = bNextI, bI
		} else {
			pI = p.next
		}

		if pI == startI {
			return e.filterPoints(pI, 0)
		}
	}
}

// splitEarcut tries splitting the polygon into two and triangulates them
// independently.
func (e *Earcut) splitEarcut(startI uint32, minX, minY, invSize float32) {
	// look for a valid diagonal that divides the polygon into two
	aI := startI
	for {
		a := e.nodes[aI]
		aNextI := a.next
		aPrevI := a.prev
		bI := e.nodes[aNextI].next

		for bI != aPrevI {
			b := &e.nodes[bI]
			if a.i != b.i && e.isValidDiagonal(aI, bI) {
				// split the polygon in two by the diagonal
				cI := e.splitPolygon(aI, bI)

				// filter collinear points around the cuts
				aI = e.filterPoints(aI, e.nodes[aI].next)
				cI = e.filterPoints(cI, e.nodes[cI].next)

				// run earcut on each half
				e.earcutLinked(aI, minX, minY, invSize, passInitial)
				e.earcutLinked(cI, minX, minY, invSize, passInitial)
				return
			}
			bI = b.next
		}

		aI = aNextI
		if aI == startI {
			return
		}
	}
}

// indexCurve interlinks polygon nodes in z-order.
func (e *Earcut) indexCurve(startI uint32, minX, minY, invSize float32) {
	pI := startI
	for {
		p := &e.nodes[pI]
		if p.z == 0 {
			p.z = zOrder(p.x, p.y, minX, minY, invSize)
		}
		p.prevZ = p.prev
		p.nextZ = p.next
		pI = p.next
		if pI == startI {
			break
		}
	}

	p := &e.nodes[pI]
	prevZ := p.prevZ
	p.prevZ = 0
	e.nodes[prevZ].nextZ = 0
	e.sortLinked(pI)
}

// sortLinked sorts the z-order linked list with Simon Tatham's linked
// list merge sort.
// http://www.chiark.greenend.org.uk/~sgtatham/algorithms/listsort.html
func (e *Earcut) sortLinked(listI uint32) {
	inSize := 1

	for {
		pI := listI
		listI = 0
		var tailI uint32
		numMerges := 0

		for pI != 0 {
			numMerges++
			qI := e.nodes[pI].nextZ
			pSize := 1
			for range inSize - 1 {
				if qI == 0 {
					break
				}
				pSize++
				qI = e.nodes[qI].nextZ
			}
			qSize := inSize

			for pSize > 0 || (qSize > 0 && qI != 0) {
				var eI uint32
				if pSize == 0 {
					eI = qI
					qSize--
					qI = e.nodes[qI].nextZ
				} else if qSize == 0 || qI == 0 {
					eI = pI
					pSize--
					pI = e.nodes[pI].nextZ
				} else if e.nodes[pI].z <= e.nodes[qI].z {
					eI = pI
					pSize--
					pI = e.nodes[pI].nextZ
				} else {
					eI = qI
					qSize--
					qI = e.nodes[qI].nextZ
				}

				if tailI != 0 {
					e.nodes[tailI].nextZ = eI
				} else {
					listI = eI
				}
				e.nodes[eI].prevZ = tailI
				tailI = eI
			}

			pI = qI
		}

		e.nodes[tailI].nextZ = 0
		if numMerges <= 1 {
			return
		}
		inSize *= 2
	}
}

// getLeftmost finds the leftmost node of a polygon ring.
func (e *Earcut) getLeftmost(startI uint32) uint32 {
	pI := startI
	leftmostI := startI
	for {
		p := &e.nodes[pI]
		leftmost := &e.nodes[leftmostI]
		if p.x < leftmost.x || (p.x == leftmost.x && p.y < leftmost.y) {
			leftmostI = pI
		}
		pI = p.next
		if pI == startI {
			return leftmostI
		}
	}
}

// isValidDiagonal checks whether a diagonal between two polygon nodes
// lies in the polygon interior.
func (e *Earcut) isValidDiagonal(aI, bI uint32) bool {
	a := &e.nodes[aI]
	b := &e.nodes[bI]
	aNext := &e.nodes[a.next]
	aPrev := &e.nodes[a.prev]
	bNext := &e.nodes[b.next]
	bPrev := &e.nodes[b.prev]

	// doesn't intersect other edges
	return aNext.i != b.i && aPrev.i != b.i && !e.intersectsPolygon(aI, bI) &&
		// locally visible
		((e.locallyInside(a, b) && e.locallyInside(b, a) && e.middleInside(aI, bI) &&
			// does not create opposite-facing sectors
			(nodeArea(aPrev, a, bPrev) != 0 || nodeArea(a, bPrev, b) != 0)) ||
			// special zero-length case
			(nodesEqual(a, b) &&
				nodeArea(aPrev, a, aNext) > 0 &&
				nodeArea(bPrev, b, bNext) > 0))
}

// segIntersects checks whether segments p1-q1 and p2-q2 intersect.
func (e *Earcut) segIntersects(p1, q1, p2, q2 *earNode) bool {
	o1 := sign32(nodeArea(p1, q1, p2))
	o2 := sign32(nodeArea(p1, q1, q2))
	o3 := sign32(nodeArea(p2, q2, p1))
	o4 := sign32(nodeArea(p2, q2, q1))

	return (o1 != o2 && o3 != o4) || // general case
		(o3 == 0 && onSegment(p2, p1, q2)) || // p1 collinear with and on p2q2
		(o4 == 0 && onSegment(p2, q1, q2)) || // q1 collinear with and on p2q2
		(o2 == 0 && onSegment(p1, q2, q1)) || // q2 collinear with and on p1q1
		(o1 == 0 && onSegment(p1, p2, q1)) // p2 collinear with and on p1q1
}

// intersectsPolygon checks whether a polygon diagonal intersects any
// polygon segments.
func (e *Earcut) intersectsPolygon(aI, bI uint32) bool {
	a := &e.nodes[aI]
	b := &e.nodes[bI]
	pI := aI
	for {
		p := &e.nodes[pI]
		pNext := &e.nodes[p.next]
		if p.i != a.i && p.i != b.i && pNext.i != a.i && pNext.i != b.i &&
			e.segIntersects(p, pNext, a, b) {
			return true
		}
		pI = p.next
		if pI == aI {
			return false
		}
	}
}

// middleInside checks whether the middle point of a polygon diagonal is
// inside the polygon (even-odd ray cast).
func (e *Earcut) middleInside(aI, bI uint32) bool {
	a := &e.nodes[aI]
	b := &e.nodes[bI]
	px := (a.x + b.x) / 2
	py := (a.y + b.y) / 2

	inside := false
	pI := aI
	for {
		p := &e.nodes[pI]
		pNext := &e.nodes[p.next]
		if (p.y > py) != (pNext.y > py) && pNext.y != p.y &&
			px < (pNext.x-p.x)*(py-p.y)/(pNext.y-p.y)+p.x {
			inside = !inside
		}
		pI = p.next
		if pI == aI {
			return inside
		}
	}
}

// eliminateHole finds a bridge between a hole's leftmost vertex and the
// outer ring and links them into a single ring.
func (e *Earcut) eliminateHole(holeI, outerNodeI uint32) uint32 {
	bridgeI := e.findHoleBridge(holeI, outerNodeI)
	if bridgeI == 0 {
		return outerNodeI
	}
	bridgeReverseI := e.splitPolygon(bridgeI, holeI)

	// filter collinear points around the cuts
	e.filterPoints(bridgeReverseI, e.nodes[bridgeReverseI].next)
	return e.filterPoints(bridgeI, e.nodes[bridgeI].next)
}

// locallyInside checks whether a polygon diagonal is locally inside the
// polygon at vertex a.
func (e *Earcut) locallyInside(a, b *earNode) bool {
	aPrev := &e.nodes[a.prev]
	aNext := &e.nodes[a.next]
	if nodeArea(aPrev, a, aNext) < 0 {
		return nodeArea(a, b, aNext) >= 0 && nodeArea(a, aPrev, b) >= 0
	}
	return nodeArea(a, b, aPrev) < 0 || nodeArea(a, aNext, b) < 0
}

// findHoleBridge finds a bridge between the hole's leftmost point and the
// outer polygon using David Eberly's algorithm. Returns 0 when no bridge
// exists.
func (e *Earcut) findHoleBridge(holeI, outerNodeI uint32) uint32 {
	hole := &e.nodes[holeI]
	pI := outerNodeI
	qx := float32(math.Inf(-1))
	var mI uint32

	// find a segment intersected by a ray from the hole's leftmost point
	// to the left; the segment endpoint with lesser x is the potential
	// connection point
	for {
		p := &e.nodes[pI]
		pNext := &e.nodes[p.next]
		if hole.y <= p.y && hole.y >= pNext.y && pNext.y != p.y {
			x := p.x + (hole.y-p.y)*(pNext.x-p.x)/(pNext.y-p.y)
			if x <= hole.x && x > qx {
				qx = x
				if p.x < pNext.x {
					mI = pI
				} else {
					mI = p.next
				}
				if x == hole.x {
					// hole touches outer segment; pick leftmost endpoint
					return mI
				}
			}
		}
		pI = p.next
		if pI == outerNodeI {
			break
		}
	}

	if mI == 0 {
		return 0
	}

	// look for points inside the triangle of the hole point, segment
	// intersection and endpoint; if none, we have a valid connection;
	// otherwise choose the point of minimum angle with the ray as the
	// connection point
	stopI := mI
	m := &e.nodes[mI]
	mx, my := m.x, m.y
	tanMin := float32(math.Inf(1))

	pI = mI
	for {
		p := &e.nodes[pI]
		var ax, cx float32
		if hole.y < my {
			ax, cx = hole.x, qx
		} else {
			ax, cx = qx, hole.x
		}
		if hole.x >= p.x && p.x >= mx && hole.x != p.x &&
			pointInTriangle(ax, hole.y, mx, my, cx, hole.y, p.x, p.y) {
			tan := abs32(hole.y-p.y) / (hole.x - p.x)
			m = &e.nodes[mI]
			if e.locallyInside(p, hole) &&
				(tan < tanMin ||
					(tan == tanMin &&
						(p.x > m.x || (p.x == m.x && e.sectorContainsSector(mI, pI))))) {
				mI = pI
				tanMin = tan
			}
		}

		pI = p.next
		if pI == stopI {
			return mI
		}
	}
}

// sectorContainsSector reports whether the sector at vertex m contains
// the sector at vertex p in the same coordinates.
func (e *Earcut) sectorContainsSector(mI, pI uint32) bool {
	m := &e.nodes[mI]
	p := &e.nodes[pI]
	return nodeArea(&e.nodes[m.prev], m, &e.nodes[p.prev]) < 0 &&
		nodeArea(&e.nodes[p.next], m, &e.nodes[m.next]) < 0
}

// filterPoints eliminates collinear or duplicate points.
// endI of 0 means "stop where we started".
func (e *Earcut) filterPoints(startI, endI uint32) uint32 {
	if endI == 0 {
		endI = startI
	}

	pI := startI
	for {
		p := &e.nodes[pI]
		pNext := &e.nodes[p.next]
		if !p.steiner && (nodesEqual(p, pNext) || nodeArea(&e.nodes[p.prev], p, pNext) == 0) {
			prevI, nextI := e.removeNode(p.links())
			pI, endI = prevI, prevI
			if pI == nextI {
				return endI
			}
		} else {
			pI = p.next
			if pI == endI {
				return endI
			}
		}
	}
}

// splitPolygon links two polygon vertices with a bridge. If the vertices
// belong to the same ring it splits the polygon into two; if one belongs
// to the outer ring and the other to a hole it merges them into a single
// ring. Returns the index of the new node at b's position.
func (e *Earcut) splitPolygon(aI, bI uint32) uint32 {
	a2I := uint32(len(e.nodes))
	b2I := a2I + 1

	a := &e.nodes[aI]
	a2 := earNode{i: a.i, x: a.x, y: a.y, prev: 1, next: 1}
	anI := a.next
	a.next = bI
	a2.prev = b2I
	a2.next = anI

	b := &e.nodes[bI]
	b2 := earNode{i: b.i, x: b.x, y: b.y, prev: 1, next: 1}
	bpI := b.prev
	b.prev = aI
	b2.next = a2I
	b2.prev = bpI

	e.nodes[anI].prev = a2I
	e.nodes[bpI].next = b2I

	e.nodes = append(e.nodes, a2, b2)
	return b2I
}

// insertNode creates a node and links it after last in the circular
// doubly linked list (or self-links it when last is 0).
func (e *Earcut) insertNode(i uint32, p Point, last uint32) uint32 {
	pI := uint32(len(e.nodes))
	n := earNode{i: i, x: p.X, y: p.Y, prev: 1, next: 1}
	if last != 0 {
		lastNode := &e.nodes[last]
		lastNextI := lastNode.next
		n.next = lastNextI
		n.prev = last
		lastNode.next = pI
		e.nodes[lastNextI].prev = pI
	} else {
		n.prev = pI
		n.next = pI
	}
	e.nodes = append(e.nodes, n)
	return pI
}

// removeNode unlinks a node from both the ring and the z-order list.
func (e *Earcut) removeNode(pl earLinks) (prevI, nextI uint32) {
	prev := &e.nodes[pl.prev]
	prev.next = pl.next
	if pl.prevZ != 0 {
		if pl.prevZ == pl.prev {
			prev.nextZ = pl.nextZ
		} else {
			e.nodes[pl.prevZ].nextZ = pl.nextZ
		}
	}

	next := &e.nodes[pl.next]
	next.prev = pl.prev
	if pl.nextZ != 0 {
		if pl.nextZ == pl.next {
			next.prevZ = pl.prevZ
		} else {
			e.nodes[pl.nextZ].prevZ = pl.prevZ
		}
	}

	return pl.prev, pl.next
}

// signedArea is the shoelace sum over data[start:end]; positive for
// clockwise rings in a y-down coordinate system.
func (e *Earcut) signedArea(start, end int) float32 {
	return signedArea(e.data, start, end)
}

func signedArea(data []Point, start, end int) float32 {
	b := data[end-1]
	var sum float32
	for _, a := range data[start:end] {
		sum += (b.X - a.X) * (a.Y + b.Y)
		b = a
	}
	return sum
}

// Deviation returns the relative difference between the polygon area
// (outer ring minus holes) and the summed triangle areas; a measure of
// triangulation correctness. Zero means the triangulation covers the
// polygon exactly.
func Deviation(data []Point, holeIndices []uint32, triangles []uint32) float32 {
	hasHoles := len(holeIndices) > 0
	outerLen := len(data)
	if hasHoles {
		outerLen = int(holeIndices[0])
	}

	var polygonArea float32
	if len(data) >= 3 {
		polygonArea = abs32(signedArea(data, 0, outerLen))
		if hasHoles {
			for i, hi := range holeIndices {
				start := int(hi)
				end := len(data)
				if i < len(holeIndices)-1 {
					end = int(holeIndices[i+1])
				}
				if end-start >= 3 {
					polygonArea -= abs32(signedArea(data, start, end))
				}
			}
		}
	}

	var trianglesArea float32
	for t := 0; t+2 < len(triangles); t += 3 {
		a := data[triangles[t]]
		b := data[triangles[t+1]]
		c := data[triangles[t+2]]
		trianglesArea += abs32((a.X-c.X)*(b.Y-a.Y) - (a.X-b.X)*(c.Y-a.Y))
	}

	if polygonArea == 0 && trianglesArea == 0 {
		return 0
	}
	return abs32((polygonArea - trianglesArea) / polygonArea)
}

// zOrder computes the z-order curve value of a point, with coords
// transformed into the non-negative 15-bit integer range.
func zOrder(px, py, minX, minY, invSize float32) int32 {
	x := int64(uint32((px - minX) * invSize))
	y := int64(uint32((py - minY) * invSize))
	v := (x << 32) | y
	v = (v | (v << 8)) & 0x00ff00ff00ff00ff
	v = (v | (v << 4)) & 0x0f0f0f0f0f0f0f0f
	v = (v | (v << 2)) & 0x3333333333333333
	v = (v | (v << 1)) & 0x5555555555555555
	return int32((v >> 32) | (v << 1))
}

// pointInTriangle checks whether point p lies within triangle abc.
func pointInTriangle(ax, ay, bx, by, cx, cy, px, py float32) bool {
	return (cx-px)*(ay-py) >= (ax-px)*(cy-py) &&
		(ax-px)*(by-py) >= (bx-px)*(ay-py) &&
		(bx-px)*(cy-py) >= (cx-px)*(by-py)
}

// nodeArea is the signed area of the triangle pqr.
func nodeArea(p, q, r *earNode) float32 {
	return (q.y-p.y)*(r.x-q.x) - (q.x-p.x)*(r.y-q.y)
}

func nodesEqual(p1, p2 *earNode) bool {
	return p1.x == p2.x && p1.y == p2.y
}

// onSegment checks, for collinear points p, q, r, whether q lies on
// segment pr.
func onSegment(p, q, r *earNode) bool {
	return q.x <= max(p.x, r.x) && q.y <= max(p.y, r.y) &&
		q.x >= min(p.x, r.x) && q.y >= min(p.y, r.y)
}

func sign32(v float32) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
