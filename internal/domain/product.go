package domain

import "github.com/shopspring/decimal"

// Product описывает готовый террариум из каталога
type Product struct {
	ID            int64 // 1..N в порядке загрузки
	Name          string
	Price         decimal.Decimal // цена продажи
	OriginalPrice decimal.Decimal // 0, если в файле не указана
	Description   string
	Image         string // имя файла или URL
}

// Discounted сообщает, есть ли у товара скидка относительно исходной цены.
func (p Product) Discounted() bool {
	return p.OriginalPrice.GreaterThan(p.Price)
}
