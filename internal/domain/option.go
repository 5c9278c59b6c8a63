package domain

import (
	"fmt"
	"strings"

	"github.com/DRSN-tech/terranova/pkg/e"
	"github.com/shopspring/decimal"
)

// optionSeparator разделяет имя и цену в значении поля формы: "<name>|<price>".
const optionSeparator = "|"

// Option — вариант комплектующей для сборки (сосуд, растение, грунт и т.д.).
// Идентифицируется только парой имя+цена.
type Option struct {
	Name  string
	Price decimal.Decimal
}

// Token кодирует вариант в значение поля формы.
func (o Option) Token() string {
	return o.Name + optionSeparator + o.Price.StringFixed(2)
}

// ParseOption разбирает значение вида "Moss Mat|5.00".
// Значение должно содержать ровно один разделитель и неотрицательную цену.
func ParseOption(token string) (Option, error) {
	parts := strings.Split(token, optionSeparator)
	if len(parts) != 2 {
		return Option{}, e.Wrap(fmt.Sprintf("%q", token), e.ErrMalformedOption)
	}

	p, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil || p.IsNegative() {
		return Option{}, e.Wrap(fmt.Sprintf("%q", token), e.ErrMalformedOption)
	}

	return Option{Name: parts[0], Price: p}, nil
}

// OptionTables — статические таблицы вариантов для формы кастомизации.
type OptionTables struct {
	Vessels         []Option
	Plants          []Option
	Substrates      []Option
	DrainageLayers  []Option
	HardscapeStones []Option
	Care            []Option
	Accessories     []Option
}

func opt(name, p string) Option {
	return Option{Name: name, Price: decimal.RequireFromString(p)}
}

// DefaultOptionTables возвращает новую копию встроенных таблиц, изменения копии не затрагивают другие вызовы.
func DefaultOptionTables() OptionTables {
	return OptionTables{
		Vessels: []Option{
			opt("Classic Jar (Small)", "15.00"),
			opt("Geometric Glass", "25.00"),
			opt("Open Bowl (Large)", "30.00"),
		},
		Plants: []Option{
			opt("Fittonia (Red)", "8.00"),
			opt("Moss Mat", "5.00"),
			opt("Small Succulent Mix", "7.50"),
		},
		Substrates: []Option{
			opt("Drainage Layer + Soil", "5.00"),
			opt("Sand & Grit Mix", "4.00"),
		},
		DrainageLayers: []Option{
			opt("Gravel", "3.00"),
			opt("LECA Clay Balls", "4.50"),
			opt("Activated Charcoal", "3.50"),
		},
		HardscapeStones: []Option{
			opt("River Pebbles", "2.00"),
			opt("Dragon Stone", "6.00"),
			opt("Driftwood Piece", "5.50"),
		},
		Care: []Option{
			opt("Spray Bottle", "3.00"),
			opt("Care Guide Card", "0.00"),
		},
		Accessories: []Option{
			opt("Mini Figurine", "4.00"),
			opt("LED Light Cap", "9.00"),
		},
	}
}
