package domain

import "github.com/shopspring/decimal"

type LineItemKind string

const (
	KindPremade LineItemKind = "premade"
	KindCustom  LineItemKind = "custom"
)

// CartLineItem — одна позиция корзины. Количество всегда 1.
type CartLineItem struct {
	Kind      LineItemKind
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	ProductID int64 // только для KindPremade
}

func NewPremadeItem(p Product) CartLineItem {
	return CartLineItem{
		Kind:      KindPremade,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
		ProductID: p.ID,
	}
}

func NewCustomItem(d CustomBuildDraft) CartLineItem {
	return CartLineItem{
		Kind:      KindCustom,
		Name:      d.DisplayName,
		UnitPrice: d.TotalPrice,
		Quantity:  1,
	}
}

func (i CartLineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart — упорядоченный список позиций. Методы не изменяют исходный срез и
// возвращают новый снимок.
type Cart []CartLineItem

// Append возвращает корзину с добавленной в конец позицией.
func (c Cart) Append(item CartLineItem) Cart {
	out := make(Cart, len(c), len(c)+1)
	copy(out, c)
	return append(out, item)
}

// RemoveAt возвращает корзину без позиции index и true.
// Для индекса вне [0, len) возвращается исходная корзина и false.
func (c Cart) RemoveAt(index int) (Cart, bool) {
	if index < 0 || index >= len(c) {
		return c, false
	}

	out := make(Cart, 0, len(c)-1)
	out = append(out, c[:index]...)
	return append(out, c[index+1:]...), true
}

// Total считает сумму UnitPrice*Quantity по всем позициям.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (c Cart) Count() int {
	return len(c)
}
