package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Component — выбранный вариант в составе сборки.
type Component struct {
	Name  string
	Price decimal.Decimal
}

// CustomBuildDraft — собранная, но ещё не подтверждённая кастомная сборка.
type CustomBuildDraft struct {
	Components  []Component
	TotalPrice  decimal.Decimal
	DisplayName string
}

// NewCustomBuildDraft считает итоговую цену и формирует имя по seed.
// Пустой seed не заменяется: имя будет "Custom Terrarium: ...".
func NewCustomBuildDraft(seed string, components []Component) CustomBuildDraft {
	total := decimal.Zero
	comps := make([]Component, len(components))
	for i, c := range components {
		comps[i] = c
		total = total.Add(c.Price)
	}

	return CustomBuildDraft{
		Components:  comps,
		TotalPrice:  total,
		DisplayName: fmt.Sprintf("Custom Terrarium: %s...", seed),
	}
}
