package wad

// Thing is a placed entity record: a monster, item, decoration or player
// start. Type and Flags hold the raw wire values; TypeName and FlagNames
// provide the symbolic views.
type Thing struct {
	X, Y  int16
	Angle int16 // degrees, 0 is east
	Type  uint16
	Flags uint16
}

// Thing flag bits. The low five are vanilla Doom; the rest are the Boom
// and MBF extensions carried in the same word.
const (
	ThingSkill1and2      uint16 = 1 << 0
	ThingSkill3          uint16 = 1 << 1
	ThingSkill4and5      uint16 = 1 << 2
	ThingAmbush          uint16 = 1 << 3 // "deaf": waits until it sees the player
	ThingMultiplayerOnly uint16 = 1 << 4
	ThingNotDeathmatch   uint16 = 1 << 5
	ThingNotCoop         uint16 = 1 << 6
	ThingFriendly        uint16 = 1 << 7
)

// thingFlagNames maps each flag bit to its canonical name, in bit order.
var thingFlagNames = []struct {
	bit  uint16
	name string
}{
	{ThingSkill1and2, "Skill_1_and_2"},
	{ThingSkill3, "Skill_3"},
	{ThingSkill4and5, "Skill_4_and_5"},
	{ThingAmbush, "Deaf"},
	{ThingMultiplayerOnly, "Multiplayer_Only"},
	{ThingNotDeathmatch, "Not_In_Deathmatch"},
	{ThingNotCoop, "Not_In_Coop"},
	{ThingFriendly, "Friendly"},
}

// AngleRadians returns the thing's facing angle in radians.
func (t Thing) AngleRadians() float64 {
	return degreesToRadians(t.Angle)
}

// TypeName returns the canonical name for the thing's type code. ok is
// false if the code is unrecognized.
func (t Thing) TypeName() (name string, ok bool) {
	name, ok = thingTypeNames[t.Type]
	return name, ok
}

// FlagNames returns the canonical name of every flag bit set on the thing,
// in bit order, without duplicates.
func (t Thing) FlagNames() []string {
	var names []string
	for _, f := range thingFlagNames {
		if t.Flags&f.bit != 0 {
			names = append(names, f.name)
		}
	}
	return names
}

// FlagBits returns the value of every flag bit set on the thing, in bit
// order. It parallels FlagNames.
func (t Thing) FlagBits() []uint16 {
	var bits []uint16
	for _, f := range thingFlagNames {
		if t.Flags&f.bit != 0 {
			bits = append(bits, f.bit)
		}
	}
	return bits
}

// decodeThing reads one THINGS record: int16 x, y, angle, then the type
// and flag words.
func decodeThing(c *Cursor) (Thing, bool) {
	x, ok := c.I16()
	if !ok {
		return Thing{}, false
	}
	y, ok := c.I16()
	if !ok {
		return Thing{}, false
	}
	angle, ok := c.I16()
	if !ok {
		return Thing{}, false
	}
	typ, ok := c.U16()
	if !ok {
		return Thing{}, false
	}
	flags, ok := c.U16()
	if !ok {
		return Thing{}, false
	}
	return Thing{X: x, Y: y, Angle: angle, Type: typ, Flags: flags}, true
}

// Things decodes the selected map's THINGS lump. A missing map or lump
// yields an empty result; a trailing partial record ends the list without
// error.
func (a *Archive) Things(sel MapSelector) []Thing {
	group := a.mapLumps(sel)
	lump, ok := findLump(group, lumpThings)
	if !ok {
		return nil
	}

	c := NewCursor(a.data)
	c.Seek(int(lump.Offset))
	end := int(lump.Offset) + int(lump.Size)
	var things []Thing
	for c.Pos() < end {
		t, ok := decodeThing(c)
		if !ok {
			break
		}
		things = append(things, t)
	}
	logger.Debug("decoded things", "map", sel.MarkerName(), "count", len(things))
	return things
}

// thingTypeNames maps Doom thing type codes to canonical names.
var thingTypeNames = map[uint16]string{
	// Player starts and spots
	1:  "Player_1_Start",
	2:  "Player_2_Start",
	3:  "Player_3_Start",
	4:  "Player_4_Start",
	11: "Deathmatch_Start",
	14: "Teleport_Destination",

	// Weapons
	82:   "Super_Shotgun",
	2001: "Shotgun",
	2002: "Chaingun",
	2003: "Rocket_Launcher",
	2004: "Plasma_Gun",
	2005: "Chainsaw",
	2006: "BFG9000",

	// Ammunition
	8:    "Backpack",
	17:   "Energy_Cell_Pack",
	2007: "Ammo_Clip",
	2008: "Shotgun_Shells",
	2010: "Rocket",
	2046: "Box_Of_Rockets",
	2047: "Energy_Cell",
	2048: "Box_Of_Bullets",
	2049: "Box_Of_Shells",

	// Monsters
	7:    "Spider_Mastermind",
	9:    "Former_Human_Sergeant",
	16:   "Cyberdemon",
	58:   "Spectre",
	64:   "Arch_Vile",
	65:   "Chaingunner",
	66:   "Revenant",
	67:   "Mancubus",
	68:   "Arachnotron",
	69:   "Hell_Knight",
	71:   "Pain_Elemental",
	72:   "Commander_Keen",
	84:   "Wolfenstein_SS",
	88:   "Boss_Brain",
	89:   "Monster_Spawner",
	3001: "Imp",
	3002: "Demon",
	3003: "Baron_Of_Hell",
	3004: "Former_Human_Trooper",
	3005: "Cacodemon",
	3006: "Lost_Soul",

	// Keys
	5:  "Blue_Keycard",
	6:  "Yellow_Keycard",
	13: "Red_Keycard",
	38: "Red_Skull_Key",
	39: "Yellow_Skull_Key",
	40: "Blue_Skull_Key",

	// Health and armor
	83:   "Megasphere",
	2011: "Stimpack",
	2012: "Medikit",
	2013: "Soulsphere",
	2014: "Health_Bonus",
	2015: "Armor_Bonus",
	2018: "Green_Armor",
	2019: "Blue_Armor",

	// Powerups
	2022: "Invulnerability",
	2023: "Berserk",
	2024: "Partial_Invisibility",
	2025: "Radiation_Suit",
	2026: "Computer_Area_Map",
	2045: "Light_Amplification_Visor",

	// Obstacles
	25:   "Impaled_Human",
	26:   "Twitching_Impaled_Human",
	27:   "Skull_On_Pole",
	28:   "Five_Skulls_Shish_Kebab",
	29:   "Pile_Of_Skulls_And_Candles",
	30:   "Tall_Green_Pillar",
	31:   "Short_Green_Pillar",
	32:   "Tall_Red_Pillar",
	33:   "Short_Red_Pillar",
	35:   "Candelabra",
	36:   "Short_Green_Pillar_With_Heart",
	37:   "Short_Red_Pillar_With_Skull",
	41:   "Evil_Eye",
	42:   "Floating_Skull",
	43:   "Burnt_Tree",
	44:   "Tall_Blue_Firestick",
	45:   "Tall_Green_Firestick",
	46:   "Tall_Red_Firestick",
	47:   "Stalagmite",
	48:   "Tall_Techno_Column",
	54:   "Large_Brown_Tree",
	70:   "Burning_Barrel",
	85:   "Tall_Techno_Floor_Lamp",
	86:   "Short_Techno_Floor_Lamp",
	2028: "Floor_Lamp",
	2035: "Exploding_Barrel",

	// Decorations
	10: "Bloody_Mess",
	12: "Bloody_Mess_2",
	15: "Dead_Player",
	18: "Dead_Former_Human_Trooper",
	19: "Dead_Former_Human_Sergeant",
	20: "Dead_Imp",
	21: "Dead_Demon",
	22: "Dead_Cacodemon",
	23: "Dead_Lost_Soul",
	24: "Pool_Of_Blood_And_Flesh",
	34: "Candle",
	49: "Hanging_Victim_Twitching_Blocking",
	50: "Hanging_Victim_Arms_Out_Blocking",
	51: "Hanging_Victim_One_Legged_Blocking",
	52: "Hanging_Pair_Of_Legs_Blocking",
	53: "Hanging_Leg_Blocking",
	55: "Short_Blue_Firestick",
	56: "Short_Green_Firestick",
	57: "Short_Red_Firestick",
	59: "Hanging_Victim_Arms_Out",
	60: "Hanging_Pair_Of_Legs",
	61: "Hanging_Victim_One_Legged",
	62: "Hanging_Leg",
	63: "Hanging_Victim_Twitching",
	73: "Hanging_No_Guts",
	74: "Hanging_No_Brain",
	75: "Hanging_Torso_Looking_Down",
	76: "Hanging_Torso_Open_Skull",
	77: "Hanging_Torso_Looking_Up",
	78: "Hanging_Torso_Brain_Removed",
	79: "Pool_Of_Blood",
	80: "Pool_Of_Blood_2",
	81: "Pool_Of_Brains",
}
