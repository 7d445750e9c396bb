// Package tiledata decodes tiledata.mul, the legacy table of land (terrain)
// and static (placeable object) tile properties.
//
// The file is a land region of 512 groups followed by a static region whose
// group count follows from the file length. Every group is a 4-byte header
// and 32 packed little-endian records. Only the flag mask, and for statics
// the height, are kept in the decoded tables; Walk exposes the full records.
package tiledata

import (
	"io"
	"iter"
	"slices"
)

// LandTile is the decoded view of a terrain tile.
type LandTile struct {
	Flags
}

// StaticTile is the decoded view of a placeable object tile.
type StaticTile struct {
	Flags
	Height uint8
}

// TileData holds both lookup tables indexed by tile id.
// It is never modified after Read returns and is safe for concurrent use.
type TileData struct {
	land   []LandTile
	static []StaticTile
}

// Read decodes a complete tiledata stream whose total length is size.
// Either a fully populated TileData or an error is returned, never both.
func Read(r io.Reader, size int64) (*TileData, error) {
	staticGroups, err := StaticGroupCount(size)
	if err != nil {
		return nil, err
	}

	b := &tableBuilder{
		land:   make([]LandTile, 0, LandTiles),
		static: make([]StaticTile, 0, staticGroups*GroupTiles),
	}
	if err := Walk(r, size, b); err != nil {
		return nil, err
	}

	return &TileData{land: b.land, static: b.static}, nil
}

// tableBuilder keeps the consumed fields and drops the rest of each record.
type tableBuilder struct {
	land   []LandTile
	static []StaticTile
}

func (b *tableBuilder) VisitLand(_ int, rec LandRecord) error {
	b.land = append(b.land, LandTile{Flags: rec.Flags})
	return nil
}

func (b *tableBuilder) VisitStatic(_ int, rec StaticRecord) error {
	b.static = append(b.static, StaticTile{Flags: rec.Flags, Height: rec.Height})
	return nil
}

// LandTile returns the land tile with the given id.
// It panics if id is out of range.
func (t *TileData) LandTile(id int) LandTile {
	return t.land[id]
}

// StaticTile returns the static tile with the given id.
// It panics if id is out of range.
func (t *TileData) StaticTile(id int) StaticTile {
	return t.static[id]
}

func (t *TileData) LandTileCount() int   { return len(t.land) }
func (t *TileData) StaticTileCount() int { return len(t.static) }

// LandTiles iterates land tiles as (id, tile) pairs in id order.
func (t *TileData) LandTiles() iter.Seq2[int, LandTile] {
	return slices.All(t.land)
}

// StaticTiles iterates static tiles as (id, tile) pairs in id order.
func (t *TileData) StaticTiles() iter.Seq2[int, StaticTile] {
	return slices.All(t.static)
}
