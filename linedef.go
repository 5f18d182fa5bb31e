package wad

// binLine is the LINEDEFS wire record: seven little-endian int16 fields.
type binLine struct {
	VertexStart, VertexEnd int16
	Flags                  int16
	Type                   int16
	SectorTag              int16
	SideR, SideL           int16
}

// Linedef is the full LINEDEFS record with the flag word broken out into
// named booleans. LineSegments keeps only the resolved geometry; viewers
// that need behavior flags or sector wiring decode Linedefs instead.
type Linedef struct {
	V1Num int
	V2Num int

	BlockPlayerAndMonsters bool
	BlockMonsters          bool
	TwoSided               bool
	UpperTextureUnpegged   bool
	LowerTextureUnpegged   bool
	Secret                 bool
	BlocksSound            bool
	NeverMap               bool
	AlwaysMap              bool

	Type               int
	SectorTagNum       int
	SideRNum, SideLNum int // -1 means no side
}

// decodeBinLine reads one LINEDEFS wire record. ok is false if any field
// is truncated.
func decodeBinLine(c *Cursor) (binLine, bool) {
	var fields [7]int16
	for i := range fields {
		v, ok := c.I16()
		if !ok {
			return binLine{}, false
		}
		fields[i] = v
	}
	return binLine{
		VertexStart: fields[0],
		VertexEnd:   fields[1],
		Flags:       fields[2],
		Type:        fields[3],
		SectorTag:   fields[4],
		SideR:       fields[5],
		SideL:       fields[6],
	}, true
}

// newLinedef translates a wire record to the canonical form.
func newLinedef(line binLine) Linedef {
	return Linedef{
		V1Num:                  int(line.VertexStart),
		V2Num:                  int(line.VertexEnd),
		BlockPlayerAndMonsters: line.Flags&1 != 0,
		BlockMonsters:          line.Flags&2 != 0,
		TwoSided:               line.Flags&4 != 0,
		UpperTextureUnpegged:   line.Flags&8 != 0,
		LowerTextureUnpegged:   line.Flags&0x10 != 0,
		Secret:                 line.Flags&0x20 != 0,
		BlocksSound:            line.Flags&0x40 != 0,
		NeverMap:               line.Flags&0x80 != 0,
		AlwaysMap:              line.Flags&0x100 != 0,
		Type:                   int(line.Type),
		SectorTagNum:           int(line.SectorTag),
		SideRNum:               int(line.SideR),
		SideLNum:               int(line.SideL),
	}
}

// Linedefs decodes the selected map's LINEDEFS lump in full, without
// resolving vertex references. A missing map or lump yields an empty
// result; a trailing partial record ends the list without error.
func (a *Archive) Linedefs(sel MapSelector) []Linedef {
	group := a.mapLumps(sel)
	lump, ok := findLump(group, lumpLinedefs)
	if !ok {
		return nil
	}

	c := NewCursor(a.data)
	c.Seek(int(lump.Offset))
	end := int(lump.Offset) + int(lump.Size)
	var linedefs []Linedef
	for c.Pos() < end {
		line, ok := decodeBinLine(c)
		if !ok {
			break
		}
		linedefs = append(linedefs, newLinedef(line))
	}
	logger.Debug("decoded linedefs", "map", sel.MarkerName(), "count", len(linedefs))
	return linedefs
}
