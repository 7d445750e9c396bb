package tiledata

import "strings"

// Flags is the 32-bit property mask carried by every land and static tile.
// Bits combine freely; use Has/Any or the named predicates instead of raw masks.
type Flags uint32

const (
	Background  Flags = 1 << 0  // 0x00000001
	Weapon      Flags = 1 << 1  // 0x00000002
	Transparent Flags = 1 << 2  // 0x00000004
	Translucent Flags = 1 << 3  // 0x00000008
	Wall        Flags = 1 << 4  // 0x00000010
	Damaging    Flags = 1 << 5  // 0x00000020
	Impassable  Flags = 1 << 6  // 0x00000040
	Wet         Flags = 1 << 7  // 0x00000080
	Unknown1    Flags = 1 << 8  // 0x00000100
	Surface     Flags = 1 << 9  // 0x00000200
	Bridge      Flags = 1 << 10 // 0x00000400
	Generic     Flags = 1 << 11 // 0x00000800, stackable
	Window      Flags = 1 << 12 // 0x00001000
	NoShoot     Flags = 1 << 13 // 0x00002000
	PrefixA     Flags = 1 << 14 // 0x00004000
	PrefixAn    Flags = 1 << 15 // 0x00008000
	Internal    Flags = 1 << 16 // 0x00010000
	Foliage     Flags = 1 << 17 // 0x00020000
	PartialHue  Flags = 1 << 18 // 0x00040000
	Unknown2    Flags = 1 << 19 // 0x00080000
	Map         Flags = 1 << 20 // 0x00100000
	Container   Flags = 1 << 21 // 0x00200000
	Wearable    Flags = 1 << 22 // 0x00400000
	LightSource Flags = 1 << 23 // 0x00800000
	Animated    Flags = 1 << 24 // 0x01000000
	NoDiagonal  Flags = 1 << 25 // 0x02000000
	Unknown3    Flags = 1 << 26 // 0x04000000
	Armor       Flags = 1 << 27 // 0x08000000
	Roof        Flags = 1 << 28 // 0x10000000
	Door        Flags = 1 << 29 // 0x20000000
	StairBack   Flags = 1 << 30 // 0x40000000
	StairRight  Flags = 1 << 31 // 0x80000000
)

// flagNames is indexed by bit position.
var flagNames = [32]string{
	"Background", "Weapon", "Transparent", "Translucent",
	"Wall", "Damaging", "Impassable", "Wet",
	"Unknown1", "Surface", "Bridge", "Generic",
	"Window", "NoShoot", "PrefixA", "PrefixAn",
	"Internal", "Foliage", "PartialHue", "Unknown2",
	"Map", "Container", "Wearable", "LightSource",
	"Animated", "NoDiagonal", "Unknown3", "Armor",
	"Roof", "Door", "StairBack", "StairRight",
}

// Has reports whether every bit of mask is set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// Any reports whether at least one bit of mask is set.
func (f Flags) Any(mask Flags) bool {
	return f&mask != 0
}

func (f Flags) Impassable() bool { return f&Impassable != 0 }
func (f Flags) Wet() bool        { return f&Wet != 0 }
func (f Flags) Surface() bool    { return f&Surface != 0 }
func (f Flags) Bridge() bool     { return f&Bridge != 0 }
func (f Flags) Wall() bool       { return f&Wall != 0 }
func (f Flags) Door() bool       { return f&Door != 0 }
func (f Flags) Roof() bool       { return f&Roof != 0 }
func (f Flags) Foliage() bool    { return f&Foliage != 0 }

// String lists the set flags joined by "|", or "0" when none are set.
func (f Flags) String() string {
	if f == 0 {
		return "0"
	}
	var sb strings.Builder
	for bit := range 32 {
		if f&(1<<bit) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(flagNames[bit])
	}
	return sb.String()
}
