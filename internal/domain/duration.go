package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Duration is a positive trip window in whole seconds.
type Duration struct {
	seconds int64
}

// durationUnits lists the accepted components in the order they must appear.
var durationUnits = []struct {
	suffix byte
	factor int64
}{
	{'h', 3600},
	{'m', 60},
	{'s', 1},
}

// ParseDuration parses a compound duration such as "1h30m", "45s" or "2h5s".
// Components are optional but must appear in h, m, s order, at most once each,
// and at least one must be present. A zero total is rejected.
func ParseDuration(s string) (Duration, error) {
	invalid := fmt.Errorf("%w: %q is not a valid duration string (e.g. 15m)", ErrInvalidArgument, s)

	rest := s
	var total int64
	found := 0
	for _, unit := range durationUnits {
		n := 0
		for n < len(rest) && isDigit(rest[n]) {
			n++
		}
		if n == 0 || n == len(rest) || rest[n] != unit.suffix {
			// Component absent; the digits (if any) belong to a later unit.
			continue
		}
		v, err := strconv.ParseInt(rest[:n], 10, 64)
		if err != nil || v > (math.MaxInt64-total)/unit.factor {
			return Duration{}, invalid
		}
		total += v * unit.factor
		found++
		rest = rest[n+1:]
	}

	if found == 0 || rest != "" {
		return Duration{}, invalid
	}
	if total == 0 {
		return Duration{}, fmt.Errorf("%w: %q is a zero-length duration", ErrInvalidArgument, s)
	}
	return Duration{seconds: total}, nil
}

// Seconds returns the total length of d in seconds.
func (d Duration) Seconds() int64 {
	return d.seconds
}

// Tokens returns the total seconds as the single engine argument.
func (d Duration) Tokens() []string {
	return []string{strconv.FormatInt(d.seconds, 10)}
}

// String returns d in canonical compound form, e.g. "1h30m".
func (d Duration) String() string {
	var b strings.Builder
	rem := d.seconds
	for _, unit := range durationUnits {
		if v := rem / unit.factor; v > 0 {
			b.WriteString(strconv.FormatInt(v, 10))
			b.WriteByte(unit.suffix)
			rem -= v * unit.factor
		}
	}
	if b.Len() == 0 {
		return "0s"
	}
	return b.String()
}
