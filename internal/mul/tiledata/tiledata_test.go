package tiledata

import (
	"bytes"
	"fmt"
	"io"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/uomul/internal/testutil"
)

// readBytes decodes an in-memory tiledata image.
func readBytes(data []byte) (*TileData, error) {
	return Read(bytes.NewReader(data), int64(len(data)))
}

func TestReadTableLengths(t *testing.T) {
	for _, groups := range []int{0, 1, 3} {
		t.Run(fmt.Sprintf("static_groups=%d", groups), func(t *testing.T) {
			data := testutil.NewTileDataBuilder(groups).Bytes()
			require.Len(t, data, LandRegionSize+groups*StaticGroupSize)

			td, err := readBytes(data)
			require.NoError(t, err)

			assert.Equal(t, LandTiles, td.LandTileCount())
			assert.Equal(t, groups*GroupTiles, td.StaticTileCount())
		})
	}
}

func TestReadLookupByID(t *testing.T) {
	data := testutil.NewTileDataBuilder(2).
		SetLand(0, testutil.LandRecord{Flags: uint32(Background), TextureID: 3, Name: "void"}).
		SetLand(5, testutil.LandRecord{Flags: uint32(Impassable)}).
		SetLand(33, testutil.LandRecord{Flags: uint32(Impassable | Wet), Name: "water"}).
		SetLand(LandTiles-1, testutil.LandRecord{Flags: uint32(StairRight)}).
		SetStatic(0, testutil.StaticRecord{Flags: uint32(Surface), Height: 5}).
		SetStatic(40, testutil.StaticRecord{Flags: uint32(Impassable | Wall), Height: 20, Quantity: 7, AnimID: 99}).
		SetStatic(63, testutil.StaticRecord{Flags: uint32(Roof), Height: 255}).
		Bytes()

	td, err := readBytes(data)
	require.NoError(t, err)

	wantLand := map[int]Flags{
		0:             Background,
		5:             Impassable,
		33:            Impassable | Wet,
		LandTiles - 1: StairRight,
	}
	for id, tile := range td.LandTiles() {
		assert.Equal(t, wantLand[id], tile.Flags, "land %d", id)
	}

	wantStatic := map[int]StaticTile{
		0:  {Flags: Surface, Height: 5},
		40: {Flags: Impassable | Wall, Height: 20},
		63: {Flags: Roof, Height: 255},
	}
	for id, tile := range td.StaticTiles() {
		assert.Equal(t, wantStatic[id], tile, "static %d", id)
	}

	assert.Equal(t, Impassable, td.LandTile(5).Flags)
	assert.True(t, td.LandTile(33).Wet())
	assert.Equal(t, uint8(20), td.StaticTile(40).Height)
	assert.True(t, td.StaticTile(40).Impassable())
}

func TestReadImpassableInFirstGroup(t *testing.T) {
	data := testutil.NewTileDataBuilder(0).
		SetLand(5, testutil.LandRecord{Flags: 0x00000040}).
		Bytes()

	td, err := readBytes(data)
	require.NoError(t, err)

	for id, tile := range td.LandTiles() {
		if id == 5 {
			assert.Equal(t, Flags(0x00000040), tile.Flags)
			continue
		}
		if tile.Flags != 0 {
			t.Fatalf("land %d: flags = %v, want 0", id, tile.Flags)
		}
	}
}

func TestReadMalformedLayout(t *testing.T) {
	base := testutil.NewTileDataBuilder(1).Bytes()

	for _, extra := range []int{1, 100, StaticGroupSize - 1} {
		t.Run(fmt.Sprintf("extra=%d", extra), func(t *testing.T) {
			data := append(bytes.Clone(base), make([]byte, extra)...)

			td, err := readBytes(data)
			require.ErrorIs(t, err, ErrMalformedLayout)
			assert.Nil(t, td)
		})
	}
}

func TestReadShortFile(t *testing.T) {
	data := testutil.NewTileDataBuilder(0).Bytes()

	for _, size := range []int{0, LandGroupSize, LandRegionSize - 1} {
		t.Run(fmt.Sprintf("size=%d", size), func(t *testing.T) {
			td, err := readBytes(data[:size])
			require.ErrorIs(t, err, ErrTruncated)
			assert.Nil(t, td)
		})
	}
}

func TestReadStreamShorterThanSize(t *testing.T) {
	data := testutil.NewTileDataBuilder(2).Bytes()

	t.Run("static region", func(t *testing.T) {
		td, err := Read(bytes.NewReader(data[:len(data)-10]), int64(len(data)))
		require.ErrorIs(t, err, ErrTruncated)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		assert.Contains(t, err.Error(), "static group 1")
		assert.Nil(t, td)
	})

	t.Run("land region", func(t *testing.T) {
		cut := 3*LandGroupSize + groupHeaderSize + 2*LandRecordSize + 1
		td, err := Read(bytes.NewReader(data[:cut]), int64(len(data)))
		require.ErrorIs(t, err, ErrTruncated)
		assert.Contains(t, err.Error(), "land group 3")
		assert.Contains(t, err.Error(), "record 2")
		assert.Nil(t, td)
	})
}

func TestReadReaderErrorPassThrough(t *testing.T) {
	data := testutil.NewTileDataBuilder(1).Bytes()
	r := io.MultiReader(
		bytes.NewReader(data[:LandRegionSize+10]),
		iotest.ErrReader(testutil.ErrSimulated),
	)

	td, err := Read(r, int64(len(data)))
	require.ErrorIs(t, err, testutil.ErrSimulated)
	assert.NotErrorIs(t, err, ErrTruncated)
	assert.Nil(t, td)
}

func TestReadShortReads(t *testing.T) {
	data := testutil.NewTileDataBuilder(1).
		SetLand(100, testutil.LandRecord{Flags: uint32(Wet)}).
		SetStatic(31, testutil.StaticRecord{Flags: uint32(Door), Height: 12}).
		Bytes()

	want, err := readBytes(data)
	require.NoError(t, err)

	got, err := Read(iotest.OneByteReader(bytes.NewReader(data)), int64(len(data)))
	require.NoError(t, err)

	if diff := cmp.Diff(want, got, cmp.AllowUnexported(TileData{})); diff != "" {
		t.Errorf("one-byte reader mismatch (-want +got):\n%s", diff)
	}
}

func TestReadIdempotent(t *testing.T) {
	b := testutil.NewTileDataBuilder(2)
	for id := 0; id < LandTiles; id += 97 {
		b.SetLand(id, testutil.LandRecord{Flags: uint32(id) * 0x01010101})
	}
	for id := range 2 * GroupTiles {
		b.SetStatic(id, testutil.StaticRecord{Flags: uint32(id) << 8, Height: uint8(id * 3)})
	}
	data := b.Bytes()

	first, err := readBytes(data)
	require.NoError(t, err)
	second, err := readBytes(data)
	require.NoError(t, err)

	assert.True(t, cmp.Equal(first, second, cmp.AllowUnexported(TileData{})))
	assert.NotSame(t, first, second)
}

func TestLookupOutOfRange(t *testing.T) {
	td, err := readBytes(testutil.NewTileDataBuilder(1).Bytes())
	require.NoError(t, err)

	assert.NotPanics(t, func() { td.LandTile(LandTiles - 1) })
	assert.NotPanics(t, func() { td.StaticTile(GroupTiles - 1) })

	assert.Panics(t, func() { td.LandTile(LandTiles) })
	assert.Panics(t, func() { td.LandTile(-1) })
	assert.Panics(t, func() { td.StaticTile(GroupTiles) })
}

func TestTileIteratorsStopEarly(t *testing.T) {
	td, err := readBytes(testutil.NewTileDataBuilder(1).Bytes())
	require.NoError(t, err)

	var ids []int
	for id := range td.LandTiles() {
		if id == 3 {
			break
		}
		ids = append(ids, id)
	}
	assert.Equal(t, []int{0, 1, 2}, ids)

	count := 0
	for range td.StaticTiles() {
		count++
	}
	assert.Equal(t, GroupTiles, count)
}
