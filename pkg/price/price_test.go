package price

import (
	"testing"

	"github.com/DRSN-tech/terranova/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "45", "45"},
		{"decimal", "35.50", "35.5"},
		{"thousands separator", "1,299.00", "1299"},
		{"surrounding whitespace", "  12.75 ", "12.75"},
		{"inner whitespace", "2 499", "2499"},
		{"zero", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "12.3.4", "-5", "₹100"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, e.ErrInvalidPrice)
		})
	}
}

func TestFormat(t *testing.T) {
	d, err := Parse("80.5")
	require.NoError(t, err)
	assert.Equal(t, "80.50", Format(d))
}
