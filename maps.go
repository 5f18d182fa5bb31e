package wad

import (
	"fmt"
	"sort"
	"strings"
)

// Lump names that make up a map's geometry and entity data.
const (
	lumpThings   = "THINGS"
	lumpLinedefs = "LINEDEFS"
	lumpVertexes = "VERTEXES"
)

// Convention selects the map marker naming scheme.
type Convention int

const (
	// Episodic markers are named E<episode>M<map>, e.g. E1M1 (Doom).
	Episodic Convention = iota
	// Sequential markers are named MAP<NN>, e.g. MAP01 (Doom II).
	Sequential
)

// MapSelector identifies one map within an archive.
type MapSelector struct {
	Convention Convention
	Episode    int // unused for Sequential
	Map        int
}

// EpisodicMap selects map m of episode e (marker E<e>M<m>).
func EpisodicMap(e, m int) MapSelector {
	return MapSelector{Convention: Episodic, Episode: e, Map: m}
}

// SequentialMap selects map m (marker MAP<mm>, zero-padded).
func SequentialMap(m int) MapSelector {
	return MapSelector{Convention: Sequential, Map: m}
}

// MarkerName returns the name of the zero-size lump that starts the
// selected map's lump group.
func (s MapSelector) MarkerName() string {
	if s.Convention == Sequential {
		return fmt.Sprintf("MAP%02d", s.Map)
	}
	return fmt.Sprintf("E%dM%d", s.Episode, s.Map)
}

// isTerminator reports whether name begins another map's lump group under
// the selector's convention, ending the current group.
func (s MapSelector) isTerminator(name string) bool {
	if s.Convention == Sequential {
		return strings.HasPrefix(name, "MAP")
	}
	return len(name) >= 2 && name[0] == 'E' && name[1] >= '0' && name[1] <= '9'
}

// ParseMapName converts a marker name like "E1M1" or "MAP01" back into a
// selector. ok is false if the name matches neither convention.
func ParseMapName(name string) (sel MapSelector, ok bool) {
	switch {
	case len(name) == 4 && name[0] == 'E' && name[2] == 'M' &&
		isDigit(name[1]) && isDigit(name[3]):
		return EpisodicMap(int(name[1]-'0'), int(name[3]-'0')), true
	case len(name) == 5 && strings.HasPrefix(name, "MAP") &&
		isDigit(name[3]) && isDigit(name[4]):
		return SequentialMap(int(name[3]-'0')*10 + int(name[4]-'0')), true
	default:
		return MapSelector{}, false
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// mapLumps isolates the contiguous run of lumps belonging to the selected
// map: everything after the marker up to, but not including, the next
// marker-like lump. A missing marker yields an empty group. Directory
// order is preserved.
func (a *Archive) mapLumps(sel MapSelector) []Lump {
	marker := sel.MarkerName()
	var group []Lump
	found := false
	for lump := range a.Lumps() {
		if !found {
			found = lump.Name == marker
			continue
		}
		if sel.isTerminator(lump.Name) {
			break
		}
		group = append(group, lump)
	}
	logger.Debug("grouped map lumps", "marker", marker, "count", len(group))
	return group
}

// findLump returns the first lump in group whose name matches name,
// case-insensitively and ignoring surrounding whitespace.
func findLump(group []Lump, name string) (Lump, bool) {
	for _, l := range group {
		if strings.EqualFold(strings.TrimSpace(l.Name), name) {
			return l, true
		}
	}
	return Lump{}, false
}

// MapNames returns the sorted marker names of every map in the archive,
// regardless of naming convention.
func (a *Archive) MapNames() []string {
	var names []string
	for lump := range a.Lumps() {
		if _, ok := ParseMapName(lump.Name); ok {
			names = append(names, lump.Name)
		}
	}
	sort.Strings(names)
	return names
}
