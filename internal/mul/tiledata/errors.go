package tiledata

import "errors"

var (
	// ErrTruncated is returned when the source ends before a group or
	// record is complete, or is too short to hold the land region.
	ErrTruncated = errors.New("tiledata: truncated data")

	// ErrMalformedLayout is returned when the bytes following the land
	// region are not a whole number of static groups.
	ErrMalformedLayout = errors.New("tiledata: malformed layout")
)
