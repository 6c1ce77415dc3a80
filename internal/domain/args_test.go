package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgSpec_Parse(t *testing.T) {
	tests := []struct {
		name   string
		kind   ArgKind
		raw    string
		tokens []string
	}{
		{"coordinate", ArgCoordinate, "39.958823,-75.158553", []string{"39.958823", "-75.158553"}},
		{"time of day", ArgTimeOfDay, "15:02", []string{"54120"}},
		{"duration", ArgDuration, "1h30m", []string{"5400"}},
		{"raw", ArgRaw, "./config.json", []string{"./config.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := ArgSpec{Name: "ARG", Kind: tt.kind}

			v, err := spec.Parse(tt.raw)

			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind)
			assert.Equal(t, tt.raw, v.Raw)
			assert.Equal(t, tt.tokens, v.Tokens())
		})
	}
}

func TestArgSpec_Parse_Errors(t *testing.T) {
	tests := []struct {
		name string
		kind ArgKind
		raw  string
	}{
		{"coordinate", ArgCoordinate, "39.9"},
		{"time of day", ArgTimeOfDay, "3:02"},
		{"duration", ArgDuration, "0s"},
		{"empty raw", ArgRaw, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := ArgSpec{Name: "SLOT", Kind: tt.kind}

			v, err := spec.Parse(tt.raw)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Contains(t, err.Error(), "argument SLOT: ")
			assert.Equal(t, Value{}, v)
		})
	}
}

func TestArgKind_String(t *testing.T) {
	assert.Equal(t, "coordinate", ArgCoordinate.String())
	assert.Equal(t, "time", ArgTimeOfDay.String())
	assert.Equal(t, "duration", ArgDuration.String())
	assert.Equal(t, "text", ArgRaw.String())
}
