package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coordinate bounds in decimal degrees.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

const decimalChars = "0123456789.+-eE"

// GeoCoordinate is a WGS 84 point.
type GeoCoordinate struct {
	Lat float64
	Lng float64
}

// ParseCoordinate parses a "<lat>,<lng>" pair such as "39.958823,-75.158553".
func ParseCoordinate(s string) (GeoCoordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return GeoCoordinate{}, fmt.Errorf("%w: %q is not a valid lat long string (e.g. 39.958823,-75.158553)", ErrInvalidArgument, s)
	}

	lat, err := parseDegrees(parts[0])
	if err != nil {
		return GeoCoordinate{}, fmt.Errorf("%w: %q is not a valid latitude", ErrInvalidArgument, strings.TrimSpace(parts[0]))
	}
	lng, err := parseDegrees(parts[1])
	if err != nil {
		return GeoCoordinate{}, fmt.Errorf("%w: %q is not a valid longitude", ErrInvalidArgument, strings.TrimSpace(parts[1]))
	}

	if lat < MinLatitude || lat > MaxLatitude {
		return GeoCoordinate{}, fmt.Errorf("%w: %s is not a valid latitude (must be between -90 and 90)", ErrInvalidArgument, formatDegrees(lat))
	}
	if lng < MinLongitude || lng > MaxLongitude {
		return GeoCoordinate{}, fmt.Errorf("%w: %s is not a valid longitude (must be between -180 and 180)", ErrInvalidArgument, formatDegrees(lng))
	}

	return GeoCoordinate{Lat: lat, Lng: lng}, nil
}

// parseDegrees accepts plain decimal or exponent notation only.
func parseDegrees(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexFunc(s, func(r rune) bool { return !strings.ContainsRune(decimalChars, r) }); i >= 0 {
		return 0, fmt.Errorf("unexpected character %q", s[i])
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	return v, nil
}

// formatDegrees renders v in the shortest decimal form that round-trips.
func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Tokens returns the latitude and longitude as engine arguments.
func (c GeoCoordinate) Tokens() []string {
	return []string{formatDegrees(c.Lat), formatDegrees(c.Lng)}
}

// String returns the coordinate in its input form.
func (c GeoCoordinate) String() string {
	return formatDegrees(c.Lat) + "," + formatDegrees(c.Lng)
}
