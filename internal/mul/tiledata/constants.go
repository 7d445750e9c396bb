package tiledata

// Group layout shared by both regions.
const (
	GroupTiles      = 32
	groupHeaderSize = 4
	nameSize        = 20
)

// Land region: fixed number of groups at the start of the file.
const (
	LandGroups     = 512
	LandTiles      = LandGroups * GroupTiles // 16384
	LandRecordSize = 4 + 2 + nameSize        // 26: flags, texture, name
	LandGroupSize  = groupHeaderSize + GroupTiles*LandRecordSize // 836
	LandRegionSize = LandGroups * LandGroupSize                 // 428032
)

// Static region: group count derived from the remaining file length.
// Record: flags(4) weight(1) quality(1) unk1(2) unk2(1) quantity(1)
// anim(2) unk3(1) hue(1) unk4(2) height(1) name(20).
const (
	StaticRecordSize   = 4 + 1 + 1 + 2 + 1 + 1 + 2 + 1 + 1 + 2 + 1 + nameSize // 37
	StaticGroupSize    = groupHeaderSize + GroupTiles*StaticRecordSize       // 1188
	staticHeightOffset = 16
)
