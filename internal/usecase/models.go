package usecase

import (
	"github.com/DRSN-tech/terranova/internal/domain"
	"github.com/shopspring/decimal"
)

// GetCartRes — содержимое корзины с вычисленной суммой.
type GetCartRes struct {
	Items []domain.CartLineItem
	Total decimal.Decimal
	Count int
}

// SubmitBuildReq — значения формы кастомизации в виде "<name>|<price>".
type SubmitBuildReq struct {
	GrowingMedium   string
	DrainageLayer   string
	HardscapeStones string
	Plants          []string
	Care            []string
	Accessories     []string
}

// MAPPERS

func NewGetCartRes(cart domain.Cart) *GetCartRes {
	items := make([]domain.CartLineItem, len(cart))
	copy(items, cart)

	return &GetCartRes{
		Items: items,
		Total: cart.Total(),
		Count: cart.Count(),
	}
}
