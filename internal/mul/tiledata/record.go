package tiledata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
)

// LandRecord is one 26-byte land entry exactly as stored on disk.
type LandRecord struct {
	Flags     Flags
	TextureID uint16
	TileName  [nameSize]byte
}

// Name decodes the raw name buffer.
func (r LandRecord) Name() string {
	return decodeName(r.TileName)
}

// StaticRecord is one 37-byte static entry. Fields are declared in wire
// order, which is also decode order: quantity precedes anim id.
type StaticRecord struct {
	Flags    Flags
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
	TileName [nameSize]byte
}

// Name decodes the raw name buffer.
func (r StaticRecord) Name() string {
	return decodeName(r.TileName)
}

// decodeName trims at the first NUL and maps the legacy single-byte
// codepage to UTF-8. The buffer is not guaranteed to be terminated.
func decodeName(raw [nameSize]byte) string {
	b := raw[:]
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	s, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

// cursor reads fixed-width little-endian fields from a fully buffered group.
// Bounds are guaranteed by the caller filling the whole group first.
type cursor struct {
	buf []byte
	off int
}

func (c *cursor) u8() uint8 {
	v := c.buf[c.off]
	c.off++
	return v
}

func (c *cursor) u16() uint16 {
	v := binary.LittleEndian.Uint16(c.buf[c.off:])
	c.off += 2
	return v
}

func (c *cursor) u32() uint32 {
	v := binary.LittleEndian.Uint32(c.buf[c.off:])
	c.off += 4
	return v
}

func (c *cursor) name(dst *[nameSize]byte) {
	c.off += copy(dst[:], c.buf[c.off:c.off+nameSize])
}

func (c *cursor) landRecord() LandRecord {
	var r LandRecord
	r.Flags = Flags(c.u32())
	r.TextureID = c.u16()
	c.name(&r.TileName)
	return r
}

func (c *cursor) staticRecord() StaticRecord {
	var r StaticRecord
	r.Flags = Flags(c.u32())
	r.Weight = c.u8()
	r.Quality = c.u8()
	r.Unknown1 = c.u16()
	r.Unknown2 = c.u8()
	r.Quantity = c.u8()
	r.AnimID = c.u16()
	r.Unknown3 = c.u8()
	r.Hue = c.u8()
	r.Unknown4 = c.u16()
	r.Height = c.u8()
	c.name(&r.TileName)
	return r
}

// readGroup fills buf completely. A short read is reported as ErrTruncated
// with the index of the first incomplete record; other reader errors are
// returned unchanged.
func readGroup(r io.Reader, buf []byte, recordSize int) error {
	n, err := io.ReadFull(r, buf)
	if err == nil {
		return nil
	}
	if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}
	if n < groupHeaderSize {
		return fmt.Errorf("%w: group header: %w", ErrTruncated, io.ErrUnexpectedEOF)
	}
	return fmt.Errorf("%w: record %d: %w", ErrTruncated, (n-groupHeaderSize)/recordSize, io.ErrUnexpectedEOF)
}

// ReadLandGroup reads one land group (header discarded) and returns its
// records in stream order. Exactly LandGroupSize bytes are consumed on success.
func ReadLandGroup(r io.Reader) ([GroupTiles]LandRecord, error) {
	var (
		buf     [LandGroupSize]byte
		records [GroupTiles]LandRecord
	)
	if err := readGroup(r, buf[:], LandRecordSize); err != nil {
		return records, err
	}

	c := cursor{buf: buf[:], off: groupHeaderSize}
	for i := range records {
		records[i] = c.landRecord()
	}
	return records, nil
}

// ReadStaticGroup reads one static group (header discarded) and returns its
// records in stream order. Exactly StaticGroupSize bytes are consumed on success.
func ReadStaticGroup(r io.Reader) ([GroupTiles]StaticRecord, error) {
	var (
		buf     [StaticGroupSize]byte
		records [GroupTiles]StaticRecord
	)
	if err := readGroup(r, buf[:], StaticRecordSize); err != nil {
		return records, err
	}

	c := cursor{buf: buf[:], off: groupHeaderSize}
	for i := range records {
		records[i] = c.staticRecord()
	}
	return records, nil
}
