package domain

import "fmt"

// ArgKind selects the validator applied to a positional argument.
type ArgKind int

// Argument kinds.
const (
	ArgRaw ArgKind = iota // Opaque text passed through unvalidated
	ArgCoordinate
	ArgTimeOfDay
	ArgDuration
)

// String returns the kind name used in help output.
func (k ArgKind) String() string {
	switch k {
	case ArgCoordinate:
		return "coordinate"
	case ArgTimeOfDay:
		return "time"
	case ArgDuration:
		return "duration"
	default:
		return "text"
	}
}

// ArgSpec declares one positional argument slot of a command.
type ArgSpec struct {
	Name    string  // Metavar shown in usage (e.g. "LATLONG")
	Help    string  // One-line description
	Kind    ArgKind // Validator selector
	Example string  // Sample value shown in help
}

// Value is a validated positional argument. Exactly one of the typed fields
// is meaningful, selected by Kind.
// Fields are ordered to minimize memory padding.
type Value struct {
	Raw        string
	Coordinate GeoCoordinate
	Duration   Duration
	Time       TimeOfDay
	Kind       ArgKind
}

// Parse validates raw against the slot's kind.
func (a ArgSpec) Parse(raw string) (Value, error) {
	v := Value{Kind: a.Kind, Raw: raw}
	var err error
	switch a.Kind {
	case ArgCoordinate:
		v.Coordinate, err = ParseCoordinate(raw)
	case ArgTimeOfDay:
		v.Time, err = ParseTimeOfDay(raw)
	case ArgDuration:
		v.Duration, err = ParseDuration(raw)
	case ArgRaw:
		if raw == "" {
			err = fmt.Errorf("%w: value cannot be empty", ErrInvalidArgument)
		}
	}
	if err != nil {
		return Value{}, fmt.Errorf("argument %s: %w", a.Name, err)
	}
	return v, nil
}

// Tokens renders the value as engine arguments.
func (v Value) Tokens() []string {
	switch v.Kind {
	case ArgCoordinate:
		return v.Coordinate.Tokens()
	case ArgTimeOfDay:
		return v.Time.Tokens()
	case ArgDuration:
		return v.Duration.Tokens()
	default:
		return []string{v.Raw}
	}
}
