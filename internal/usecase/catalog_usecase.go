package usecase

import "github.com/DRSN-tech/terranova/internal/domain"

// CatalogUseCase отдаёт витрине неизменяемые каталог и таблицы вариантов.
type CatalogUseCase struct {
	catalog *domain.Catalog
	options domain.OptionTables
}

func NewCatalogUC(catalog *domain.Catalog, options domain.OptionTables) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog, options: options}
}

func (c *CatalogUseCase) ListProducts() []domain.Product {
	return c.catalog.Products()
}

// Options возвращает копию таблиц, чтобы вызывающий код не мог их изменить.
func (c *CatalogUseCase) Options() domain.OptionTables {
	clone := func(in []domain.Option) []domain.Option {
		out := make([]domain.Option, len(in))
		copy(out, in)
		return out
	}

	return domain.OptionTables{
		Vessels:         clone(c.options.Vessels),
		Plants:          clone(c.options.Plants),
		Substrates:      clone(c.options.Substrates),
		DrainageLayers:  clone(c.options.DrainageLayers),
		HardscapeStones: clone(c.options.HardscapeStones),
		Care:            clone(c.options.Care),
		Accessories:     clone(c.options.Accessories),
	}
}
