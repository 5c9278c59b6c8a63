package domain

import (
	"testing"

	"github.com/DRSN-tech/terranova/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOption(t *testing.T) {
	o, err := ParseOption("Moss Mat|5.00")
	require.NoError(t, err)
	assert.Equal(t, "Moss Mat", o.Name)
	assert.Equal(t, "5.00", o.Price.StringFixed(2))

	o, err = ParseOption("Rock| 2 ")
	require.NoError(t, err)
	assert.Equal(t, "2.00", o.Price.StringFixed(2))
}

func TestParseOption_Malformed(t *testing.T) {
	for _, token := range []string{
		"",
		"Moss Mat",
		"Moss|Mat|5.00",
		"Moss Mat|five",
		"Moss Mat|",
		"Moss Mat|-1",
	} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseOption(token)
			assert.ErrorIs(t, err, e.ErrMalformedOption)
		})
	}
}

func TestOptionToken_RoundTrip(t *testing.T) {
	for _, o := range DefaultOptionTables().Plants {
		parsed, err := ParseOption(o.Token())
		require.NoError(t, err)
		assert.Equal(t, o.Name, parsed.Name)
		assert.True(t, o.Price.Equal(parsed.Price))
	}
}

func TestDefaultOptionTables_Copies(t *testing.T) {
	a := DefaultOptionTables()
	a.Vessels[0].Name = "changed"

	b := DefaultOptionTables()
	assert.Equal(t, "Classic Jar (Small)", b.Vessels[0].Name)
	assert.Len(t, b.Vessels, 3)
	assert.Len(t, b.Plants, 3)
	assert.Len(t, b.Substrates, 2)
}
