package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func product(id int64, name, p string) Product {
	return Product{ID: id, Name: name, Price: decimal.RequireFromString(p)}
}

func sampleCart() Cart {
	var c Cart
	c = c.Append(NewPremadeItem(product(1, "Misty", "45.00")))
	c = c.Append(NewPremadeItem(product(2, "Dune", "35.50")))
	c = c.Append(NewCustomItem(NewCustomBuildDraft("Soil", []Component{{Name: "Soil", Price: decimal.NewFromInt(5)}})))
	return c
}

func TestCart_AppendDoesNotAlias(t *testing.T) {
	base := Cart{}.Append(NewPremadeItem(product(1, "Misty", "45.00")))
	a := base.Append(NewPremadeItem(product(2, "Dune", "35.50")))
	b := base.Append(NewPremadeItem(product(3, "Fern", "10.00")))

	assert.Equal(t, 1, base.Count())
	assert.Equal(t, int64(2), a[1].ProductID)
	assert.Equal(t, int64(3), b[1].ProductID)
}

func TestCart_RemoveAt(t *testing.T) {
	c := sampleCart()

	got, ok := c.RemoveAt(1)
	assert.True(t, ok)

	want := Cart{c[0], c[2]}
	if diff := cmp.Diff(want, got, decimalEqual); diff != "" {
		t.Errorf("RemoveAt(1) mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, c.Count(), "source cart must stay untouched")
}

func TestCart_RemoveAtOutOfRange(t *testing.T) {
	c := sampleCart()

	for _, idx := range []int{-1, 3, 100} {
		got, ok := c.RemoveAt(idx)
		assert.False(t, ok)
		if diff := cmp.Diff(c, got, decimalEqual); diff != "" {
			t.Errorf("RemoveAt(%d) changed cart (-want +got):\n%s", idx, diff)
		}
	}

	empty, ok := Cart(nil).RemoveAt(0)
	assert.False(t, ok)
	assert.Equal(t, 0, empty.Count())
}

func TestCart_Total(t *testing.T) {
	var c Cart
	c = c.Append(NewPremadeItem(product(1, "Misty", "45.00")))
	c = c.Append(NewPremadeItem(product(2, "Dune", "35.50")))

	assert.Equal(t, "80.50", c.Total().StringFixed(2))
	assert.Equal(t, 2, c.Count())
	assert.True(t, Cart(nil).Total().IsZero())
}

func TestNewPremadeItem(t *testing.T) {
	item := NewPremadeItem(product(7, "Fern Grotto", "12.25"))

	assert.Equal(t, KindPremade, item.Kind)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, int64(7), item.ProductID)
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("12.25")))
}
