package wad_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stuarthighley/wadmap"
)

func TestLineSegmentsResolvesGeometry(t *testing.T) {
	t.Parallel()

	a := mustArchive(t,
		lumpSpec{name: "E1M1"},
		lumpSpec{name: "VERTEXES", data: le16(0, 0, 10, 0)},
		// start 0, end 1, arbitrary flags/type/tag, no sidedefs.
		lumpSpec{name: "LINEDEFS", data: le16(0, 1, 0x24, 7, 3, -1, -1)},
	)

	segments := a.LineSegments(wad.EpisodicMap(1, 1))
	require.Len(t, segments, 1)
	assert.Equal(t, wad.Vertex{X: 0, Y: 0}, segments[0].Start)
	assert.Equal(t, wad.Vertex{X: 10, Y: 0}, segments[0].End)
	assert.InDelta(t, 10.0, segments[0].Length(), 1e-9)
}

func TestLineSegmentLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		seg  wad.LineSegment
		want float64
	}{
		{"axis aligned", wad.LineSegment{Start: wad.Vertex{X: 0, Y: 0}, End: wad.Vertex{X: 10, Y: 0}}, 10},
		{"diagonal", wad.LineSegment{Start: wad.Vertex{X: 0, Y: 0}, End: wad.Vertex{X: 3, Y: 4}}, 5},
		{"negative coordinates", wad.LineSegment{Start: wad.Vertex{X: -3, Y: -4}, End: wad.Vertex{X: 0, Y: 0}}, 5},
		{"extreme span", wad.LineSegment{Start: wad.Vertex{X: -32768, Y: 0}, End: wad.Vertex{X: 32767, Y: 0}}, 65535},
		{"degenerate", wad.LineSegment{Start: wad.Vertex{X: 5, Y: 5}, End: wad.Vertex{X: 5, Y: 5}}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tc.want, tc.seg.Length(), 1e-9)
		})
	}
}

func TestLineSegmentsMissingRequiredLump(t *testing.T) {
	t.Parallel()

	t.Run("no LINEDEFS", func(t *testing.T) {
		t.Parallel()

		a := mustArchive(t,
			lumpSpec{name: "E1M1"},
			lumpSpec{name: "VERTEXES", data: le16(0, 0, 10, 0)},
		)
		assert.Empty(t, a.LineSegments(wad.EpisodicMap(1, 1)))
	})

	t.Run("no VERTEXES", func(t *testing.T) {
		t.Parallel()

		a := mustArchive(t,
			lumpSpec{name: "E1M1"},
			lumpSpec{name: "LINEDEFS", data: le16(0, 1, 0, 0, 0, -1, -1)},
		)
		assert.Empty(t, a.LineSegments(wad.EpisodicMap(1, 1)))
	})
}

func TestLineSegmentsStopsAtDanglingVertex(t *testing.T) {
	t.Parallel()

	a := mustArchive(t,
		lumpSpec{name: "E1M1"},
		lumpSpec{name: "VERTEXES", data: le16(0, 0, 10, 0)},
		lumpSpec{name: "LINEDEFS", data: le16(
			0, 1, 0, 0, 0, -1, -1, // valid
			0, 99, 0, 0, 0, -1, -1, // vertex 99 does not exist
			1, 0, 0, 0, 0, -1, -1, // valid but never reached
		)},
	)

	assert.Len(t, a.LineSegments(wad.EpisodicMap(1, 1)), 1)
}

func TestLineSegmentsToleratesPartialTrailingRecord(t *testing.T) {
	t.Parallel()

	linedefs := le16(0, 1, 0, 0, 0, -1, -1)
	linedefs = append(linedefs, le16(1, 0, 0)...) // truncated second record

	a := mustArchive(t,
		lumpSpec{name: "MAP01"},
		lumpSpec{name: "VERTEXES", data: le16(0, 0, 10, 0)},
		lumpSpec{name: "LINEDEFS", data: linedefs},
	)

	assert.Len(t, a.LineSegments(wad.SequentialMap(1)), 1)
}

func TestLineSegmentsLumpPastEndOfArchive(t *testing.T) {
	t.Parallel()

	data := buildArchive(t,
		"IWAD",
		lumpSpec{name: "E1M1"},
		lumpSpec{name: "VERTEXES", data: le16(0, 0, 10, 0)},
		lumpSpec{name: "LINEDEFS", data: le16(0, 1, 0, 0, 0, -1, -1)},
	)
	// Point the VERTEXES directory entry past the end of the buffer. The
	// seek clamps, every vertex read comes up short, and the decode
	// degrades to empty instead of erroring.
	dirOffset := binary.LittleEndian.Uint32(data[8:])
	binary.LittleEndian.PutUint32(data[dirOffset+16:], uint32(len(data)+50))

	a, err := wad.New(data)
	require.NoError(t, err)
	assert.Empty(t, a.LineSegments(wad.EpisodicMap(1, 1)))
}

func TestLinedefsRetainsFullRecord(t *testing.T) {
	t.Parallel()

	a := mustArchive(t,
		lumpSpec{name: "MAP01"},
		lumpSpec{name: "VERTEXES", data: le16(0, 0, 10, 0)},
		lumpSpec{name: "LINEDEFS", data: le16(0, 1, 0x24, 7, 3, 0, -1)},
	)

	linedefs := a.Linedefs(wad.SequentialMap(1))
	require.Len(t, linedefs, 1)

	ld := linedefs[0]
	assert.Equal(t, 0, ld.V1Num)
	assert.Equal(t, 1, ld.V2Num)
	assert.True(t, ld.TwoSided)
	assert.True(t, ld.Secret)
	assert.False(t, ld.BlockMonsters)
	assert.Equal(t, 7, ld.Type)
	assert.Equal(t, 3, ld.SectorTagNum)
	assert.Equal(t, 0, ld.SideRNum)
	assert.Equal(t, -1, ld.SideLNum)
}

func TestLinedefsDoesNotRequireVertexes(t *testing.T) {
	t.Parallel()

	// Unlike LineSegments, the raw records decode without a vertex table.
	a := mustArchive(t,
		lumpSpec{name: "MAP01"},
		lumpSpec{name: "LINEDEFS", data: le16(0, 99, 0, 0, 0, -1, -1)},
	)

	assert.Len(t, a.Linedefs(wad.SequentialMap(1)), 1)
}
