package catalog

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/DRSN-tech/terranova/pkg/e"
	"github.com/DRSN-tech/terranova/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	data string
	err  error
}

func (s stubSource) Open(context.Context) (io.ReadCloser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return io.NopCloser(strings.NewReader(s.data)), nil
}

func (s stubSource) String() string { return "stub" }

const sample = `Name,Sale Price,Original Price (₹),Short Description,image_url
Misty Rainforest,"1,245.00","1,500",Closed jar ecosystem,misty.jpg
Broken Row,abc,100,Nope,x.jpg
,35.50,,,
`

func TestParse(t *testing.T) {
	products, err := Parse(strings.NewReader(sample), logger.NewNop())
	require.NoError(t, err)
	require.Len(t, products, 2)

	first := products[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "Misty Rainforest", first.Name)
	assert.True(t, decimal.RequireFromString("1245").Equal(first.Price))
	assert.True(t, decimal.RequireFromString("1500").Equal(first.OriginalPrice))
	assert.True(t, first.Discounted())
	assert.Equal(t, "misty.jpg", first.Image)

	// строка 2 пропущена, но её номер не переиспользуется
	last := products[1]
	assert.Equal(t, int64(3), last.ID)
	assert.Equal(t, "Unnamed Product 3", last.Name)
	assert.Equal(t, DefaultDescription, last.Description)
	assert.Equal(t, DefaultImage, last.Image)
	assert.True(t, last.OriginalPrice.IsZero())
}

func TestParse_MissingOptionalColumns(t *testing.T) {
	products, err := Parse(strings.NewReader("Name,Sale Price\nFern Bowl,20\n"), logger.NewNop())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, products[0].OriginalPrice.IsZero())
	assert.Equal(t, DefaultDescription, products[0].Description)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{name: "empty file", data: "", want: e.ErrEmptyCatalog},
		{name: "header only", data: "Name,Sale Price\n", want: e.ErrEmptyCatalog},
		{name: "every row broken", data: "Name,Sale Price\nA,x\nB,-1\n", want: e.ErrEmptyCatalog},
		{name: "unknown columns", data: "foo,bar\n1,2\n", want: e.ErrMissingColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.data), logger.NewNop())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("parsed", func(t *testing.T) {
		c := NewLoader(stubSource{data: sample}, logger.NewNop()).Load(ctx)
		assert.Equal(t, 2, c.Len())
		_, ok := c.Product(3)
		assert.True(t, ok)
	})

	fallbackCases := map[string]stubSource{
		"missing source": {err: e.Wrap("terra.csv", e.ErrCatalogNotFound)},
		"io failure":     {err: errors.New("disk on fire")},
		"no rows":        {data: "Name,Sale Price\n"},
	}
	for name, src := range fallbackCases {
		t.Run(name, func(t *testing.T) {
			c := NewLoader(src, logger.NewNop()).Load(ctx)
			require.Equal(t, 2, c.Len())

			p, ok := c.Product(1)
			require.True(t, ok)
			assert.Equal(t, "The Misty Rainforest (Fallback)", p.Name)
			assert.True(t, decimal.RequireFromString("45.00").Equal(p.Price))

			p, ok = c.Product(2)
			require.True(t, ok)
			assert.True(t, decimal.RequireFromString("35.50").Equal(p.Price))
		})
	}
}
