package wad

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vertex is a 2D map coordinate. Vertexes are identified by their index in
// the VERTEXES lump and referenced by that index from linedef records.
type Vertex struct {
	X, Y int16
}

// LineSegment is a wall or boundary edge with both endpoints resolved.
type LineSegment struct {
	Start, End Vertex
}

// Length returns the Euclidean length of the segment.
func (s LineSegment) Length() float64 {
	dx := float64(s.End.X) - float64(s.Start.X)
	dy := float64(s.End.Y) - float64(s.Start.Y)
	return math.Hypot(dx, dy)
}

// decodeVertex reads one VERTEXES record: int16 x, int16 y.
func decodeVertex(c *Cursor) (Vertex, bool) {
	x, ok := c.I16()
	if !ok {
		return Vertex{}, false
	}
	y, ok := c.I16()
	if !ok {
		return Vertex{}, false
	}
	return Vertex{X: x, Y: y}, true
}

// decodeVertexes decodes the full vertex table of a VERTEXES lump. A
// trailing partial record ends the table without error.
func decodeVertexes(c *Cursor, lump Lump) []Vertex {
	c.Seek(int(lump.Offset))
	end := int(lump.Offset) + int(lump.Size)
	var vertexes []Vertex
	for c.Pos() < end {
		v, ok := decodeVertex(c)
		if !ok {
			break
		}
		vertexes = append(vertexes, v)
	}
	logger.Debug("decoded vertexes", "count", len(vertexes))
	return vertexes
}

// decodeSegment reads one LINEDEFS record and resolves its endpoints
// against the vertex table. Only the geometry is retained here; callers
// that need the remaining fields use Linedefs. ok is false on a short read
// or an out-of-range vertex index.
func decodeSegment(c *Cursor, vertexes []Vertex) (LineSegment, bool) {
	line, ok := decodeBinLine(c)
	if !ok {
		return LineSegment{}, false
	}
	v1, v2 := int(line.VertexStart), int(line.VertexEnd)
	if v1 < 0 || v1 >= len(vertexes) || v2 < 0 || v2 >= len(vertexes) {
		return LineSegment{}, false
	}
	return LineSegment{Start: vertexes[v1], End: vertexes[v2]}, true
}

// LineSegments decodes the selected map's wall geometry: the VERTEXES
// table, then every LINEDEFS record resolved against it. A missing map or
// missing required lump yields an empty result; decoding stops silently at
// the first truncated record or dangling vertex reference.
func (a *Archive) LineSegments(sel MapSelector) []LineSegment {
	group := a.mapLumps(sel)
	vertexLump, ok := findLump(group, lumpVertexes)
	if !ok {
		return nil
	}
	lineLump, ok := findLump(group, lumpLinedefs)
	if !ok {
		return nil
	}

	c := NewCursor(a.data)
	vertexes := decodeVertexes(c, vertexLump)

	c.Seek(int(lineLump.Offset))
	end := int(lineLump.Offset) + int(lineLump.Size)
	var segments []LineSegment
	for c.Pos() < end {
		s, ok := decodeSegment(c, vertexes)
		if !ok {
			break
		}
		segments = append(segments, s)
	}
	logger.Debug("decoded line segments", "map", sel.MarkerName(), "count", len(segments))
	return segments
}

// degreesToRadians converts a Doom angle, stored in degrees, to radians.
func degreesToRadians[T constraints.Integer | constraints.Float](n T) float64 {
	return float64(n) * (math.Pi / 180)
}
