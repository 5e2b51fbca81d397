package enums

import "fmt"

// FieldSurface identifies the playing surface of a bookable field.
type FieldSurface string

const (
	FieldSurfaceGrass     FieldSurface = "grass"
	FieldSurfaceAstroturf FieldSurface = "astroturf"
	FieldSurfaceIndoor    FieldSurface = "indoor"
)

var validFieldSurfaces = []FieldSurface{
	FieldSurfaceGrass,
	FieldSurfaceAstroturf,
	FieldSurfaceIndoor,
}

// String implements fmt.Stringer.
func (f FieldSurface) String() string {
	return string(f)
}

// IsValid reports whether the value is a known FieldSurface.
func (f FieldSurface) IsValid() bool {
	for _, candidate := range validFieldSurfaces {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFieldSurface converts raw input into a FieldSurface.
func ParseFieldSurface(value string) (FieldSurface, error) {
	for _, candidate := range validFieldSurfaces {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid field surface %q", value)
}
