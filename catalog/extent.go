package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// BoundingBox is a WGS84 rectangle limiting the geographic query.
type BoundingBox struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// ParseExtent parses "xmin,ymin,xmax,ymax" into a validated BoundingBox.
func ParseExtent(value string) (BoundingBox, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return BoundingBox{}, fmt.Errorf("%s not in expected format of xmin,ymin,xmax,ymax", value)
	}

	coords := make([]float64, 4)
	for i, p := range parts {
		c, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return BoundingBox{}, fmt.Errorf("encountered non-numeric value in %s", value)
		}
		coords[i] = c
	}

	bbox := BoundingBox{XMin: coords[0], YMin: coords[1], XMax: coords[2], YMax: coords[3]}
	if err := bbox.Validate(); err != nil {
		return BoundingBox{}, err
	}
	return bbox, nil
}

// Validate checks coordinate ranges and ordering.
func (b BoundingBox) Validate() error {
	if b.XMin < -180 || b.XMin > 180 {
		return fmt.Errorf("xmin %v must be between -180 and 180", b.XMin)
	}
	if b.XMax < -180 || b.XMax > 180 {
		return fmt.Errorf("xmax %v must be between -180 and 180", b.XMax)
	}
	if b.YMin < -90 || b.YMin > 90 {
		return fmt.Errorf("ymin %v must be between -90 and 90", b.YMin)
	}
	if b.YMax < -90 || b.YMax > 90 {
		return fmt.Errorf("ymax %v must be between -90 and 90", b.YMax)
	}
	if b.XMin > b.XMax {
		return fmt.Errorf("xmin (%v) can't be greater than xmax (%v)", b.XMin, b.XMax)
	}
	if b.YMin > b.YMax {
		return fmt.Errorf("ymin (%v) can't be greater than ymax (%v)", b.YMin, b.YMax)
	}
	return nil
}

// String renders the box in the comma-separated form the products API expects.
func (b BoundingBox) String() string {
	return fmt.Sprintf("%s,%s,%s,%s",
		strconv.FormatFloat(b.XMin, 'f', -1, 64),
		strconv.FormatFloat(b.YMin, 'f', -1, 64),
		strconv.FormatFloat(b.XMax, 'f', -1, 64),
		strconv.FormatFloat(b.YMax, 'f', -1, 64))
}
