package testutil

import (
	"encoding/binary"
	"testing"
)

// AssertUint32LE checks the little-endian uint32 stored at offset.
func AssertUint32LE(t testing.TB, expected uint32, data []byte, offset int) {
	t.Helper()

	if len(data) < offset+4 {
		t.Fatalf("data too short: need %d bytes for uint32 at offset %d, got %d",
			offset+4, offset, len(data))
	}

	actual := binary.LittleEndian.Uint32(data[offset:])
	if actual != expected {
		t.Fatalf("uint32 mismatch at offset %d: expected 0x%08X, got 0x%08X", offset, expected, actual)
	}
}

// AssertByteAtOffset checks a single byte of data.
func AssertByteAtOffset(t testing.TB, expected byte, data []byte, offset int) {
	t.Helper()

	if len(data) <= offset {
		t.Fatalf("data too short: need %d bytes, got %d", offset+1, len(data))
	}

	if data[offset] != expected {
		t.Fatalf("byte mismatch at offset %d: expected 0x%02X, got 0x%02X", offset, expected, data[offset])
	}
}

// AssertLength checks the total length of data.
func AssertLength(t testing.TB, expected int, data []byte) {
	t.Helper()

	if len(data) != expected {
		t.Fatalf("length mismatch: expected %d bytes, got %d", expected, len(data))
	}
}
