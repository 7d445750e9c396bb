package testutil

import (
	"encoding/binary"
	"fmt"
)

// On-disk sizes of the tiledata.mul format, spelled out independently of
// the decoder so fixtures double as a layout check.
const (
	TileGroupRecords = 32
	TileLandGroups   = 512

	tileHeaderSize = 4
	tileNameSize   = 20

	LandRecordLen   = 26
	LandGroupLen    = tileHeaderSize + TileGroupRecords*LandRecordLen
	LandRegionLen   = TileLandGroups * LandGroupLen
	StaticRecordLen = 37
	StaticGroupLen  = tileHeaderSize + TileGroupRecords*StaticRecordLen
)

// GroupHeader is written in front of every fixture group. Decoders must skip it.
const GroupHeader uint32 = 0xA5A5F00D

// LandRecord is a fixture land record.
type LandRecord struct {
	Flags     uint32
	TextureID uint16
	Name      string
}

// Encode returns the 26-byte wire form.
func (r LandRecord) Encode() []byte {
	b := make([]byte, 0, LandRecordLen)
	b = binary.LittleEndian.AppendUint32(b, r.Flags)
	b = binary.LittleEndian.AppendUint16(b, r.TextureID)
	return appendName(b, r.Name)
}

// StaticRecord is a fixture static record with every wire field.
type StaticRecord struct {
	Flags    uint32
	Weight   uint8
	Quality  uint8
	Unknown1 uint16
	Unknown2 uint8
	Quantity uint8
	AnimID   uint16
	Unknown3 uint8
	Hue      uint8
	Unknown4 uint16
	Height   uint8
	Name     string
}

// Encode returns the 37-byte wire form.
func (r StaticRecord) Encode() []byte {
	b := make([]byte, 0, StaticRecordLen)
	b = binary.LittleEndian.AppendUint32(b, r.Flags)
	b = append(b, r.Weight, r.Quality)
	b = binary.LittleEndian.AppendUint16(b, r.Unknown1)
	b = append(b, r.Unknown2, r.Quantity)
	b = binary.LittleEndian.AppendUint16(b, r.AnimID)
	b = append(b, r.Unknown3, r.Hue)
	b = binary.LittleEndian.AppendUint16(b, r.Unknown4)
	b = append(b, r.Height)
	return appendName(b, r.Name)
}

// appendName writes name into a 20-byte zero-padded field, truncating longer names.
func appendName(b []byte, name string) []byte {
	var field [tileNameSize]byte
	copy(field[:], name)
	return append(b, field[:]...)
}

// LandGroup builds one land group: header followed by 32 records.
// Missing records are zero-filled.
func LandGroup(records map[int]LandRecord) []byte {
	b := binary.LittleEndian.AppendUint32(make([]byte, 0, LandGroupLen), GroupHeader)
	for i := range TileGroupRecords {
		b = append(b, records[i].Encode()...)
	}
	return b
}

// StaticGroup builds one static group: header followed by 32 records.
func StaticGroup(records map[int]StaticRecord) []byte {
	b := binary.LittleEndian.AppendUint32(make([]byte, 0, StaticGroupLen), GroupHeader)
	for i := range TileGroupRecords {
		b = append(b, records[i].Encode()...)
	}
	return b
}

// TileDataBuilder assembles a complete tiledata.mul image with zeroed
// records and non-zero group headers.
type TileDataBuilder struct {
	data         []byte
	staticGroups int
}

// NewTileDataBuilder creates an image with the full land region and the
// given number of static groups.
func NewTileDataBuilder(staticGroups int) *TileDataBuilder {
	b := &TileDataBuilder{
		data:         make([]byte, LandRegionLen+staticGroups*StaticGroupLen),
		staticGroups: staticGroups,
	}
	for g := range TileLandGroups {
		binary.LittleEndian.PutUint32(b.data[g*LandGroupLen:], GroupHeader)
	}
	for g := range staticGroups {
		binary.LittleEndian.PutUint32(b.data[LandRegionLen+g*StaticGroupLen:], GroupHeader)
	}
	return b
}

// LandOffset returns the byte offset of land record id.
func LandOffset(id int) int {
	return id/TileGroupRecords*LandGroupLen + tileHeaderSize + id%TileGroupRecords*LandRecordLen
}

// StaticOffset returns the byte offset of static record id.
func StaticOffset(id int) int {
	return LandRegionLen + id/TileGroupRecords*StaticGroupLen + tileHeaderSize + id%TileGroupRecords*StaticRecordLen
}

// SetLand overwrites land record id.
func (b *TileDataBuilder) SetLand(id int, rec LandRecord) *TileDataBuilder {
	if id < 0 || id >= TileLandGroups*TileGroupRecords {
		panic(fmt.Sprintf("testutil: land id %d out of range", id))
	}
	copy(b.data[LandOffset(id):], rec.Encode())
	return b
}

// SetStatic overwrites static record id.
func (b *TileDataBuilder) SetStatic(id int, rec StaticRecord) *TileDataBuilder {
	if id < 0 || id >= b.staticGroups*TileGroupRecords {
		panic(fmt.Sprintf("testutil: static id %d out of range", id))
	}
	copy(b.data[StaticOffset(id):], rec.Encode())
	return b
}

// Bytes returns a copy of the assembled image.
func (b *TileDataBuilder) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}
