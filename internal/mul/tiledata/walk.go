package tiledata

import (
	"fmt"
	"io"
)

// Visitor receives every record of a tiledata file in id order: all land
// records first, then all static records. Returning an error stops the walk.
type Visitor interface {
	VisitLand(id int, rec LandRecord) error
	VisitStatic(id int, rec StaticRecord) error
}

// VisitorFuncs adapts plain functions to Visitor. Nil funcs skip the region.
type VisitorFuncs struct {
	Land   func(id int, rec LandRecord) error
	Static func(id int, rec StaticRecord) error
}

func (v VisitorFuncs) VisitLand(id int, rec LandRecord) error {
	if v.Land == nil {
		return nil
	}
	return v.Land(id, rec)
}

func (v VisitorFuncs) VisitStatic(id int, rec StaticRecord) error {
	if v.Static == nil {
		return nil
	}
	return v.Static(id, rec)
}

// StaticGroupCount derives the number of static groups from the total file
// length. The length must cover the land region and leave a whole number
// of static groups.
func StaticGroupCount(size int64) (int, error) {
	if size < LandRegionSize {
		return 0, fmt.Errorf("%w: %d bytes, land region needs %d", ErrTruncated, size, LandRegionSize)
	}
	rest := size - LandRegionSize
	if rest%StaticGroupSize != 0 {
		return 0, fmt.Errorf("%w: %d bytes after land region is not a multiple of %d",
			ErrMalformedLayout, rest, StaticGroupSize)
	}
	return int(rest / StaticGroupSize), nil
}

// Walk decodes a tiledata stream of the given total length and hands each
// record to v. The stream is consumed sequentially and never read past size.
func Walk(r io.Reader, size int64, v Visitor) error {
	staticGroups, err := StaticGroupCount(size)
	if err != nil {
		return err
	}

	id := 0
	for g := range LandGroups {
		records, err := ReadLandGroup(r)
		if err != nil {
			return fmt.Errorf("land group %d: %w", g, err)
		}
		for _, rec := range records {
			if err := v.VisitLand(id, rec); err != nil {
				return err
			}
			id++
		}
	}

	id = 0
	for g := range staticGroups {
		records, err := ReadStaticGroup(r)
		if err != nil {
			return fmt.Errorf("static group %d: %w", g, err)
		}
		for _, rec := range records {
			if err := v.VisitStatic(id, rec); err != nil {
				return err
			}
			id++
		}
	}

	return nil
}
