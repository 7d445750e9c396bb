package tiledata

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// DefaultFileName is the conventional name of the tile data file.
const DefaultFileName = "tiledata.mul"

// Load reads and decodes the tiledata file at path.
func Load(path string) (*TileData, error) {
	td, err := withFile(path, Read)
	if err != nil {
		return nil, err
	}

	slog.Info("tiledata loaded",
		"file", path,
		"land", td.LandTileCount(),
		"static", td.StaticTileCount())
	return td, nil
}

// WalkFile streams every record of the tiledata file at path to v.
func WalkFile(path string, v Visitor) error {
	_, err := withFile(path, func(r io.Reader, size int64) (struct{}, error) {
		return struct{}{}, Walk(r, size, v)
	})
	return err
}

// withFile opens path, hands a buffered reader and the file length to fn,
// and closes the file on every return path.
func withFile[T any](path string, fn func(r io.Reader, size int64) (T, error)) (T, error) {
	var zero T

	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("opening tiledata %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return zero, fmt.Errorf("stat tiledata %s: %w", path, err)
	}

	v, err := fn(bufio.NewReader(f), info.Size())
	if err != nil {
		return zero, fmt.Errorf("parsing tiledata %s: %w", path, err)
	}
	return v, nil
}
