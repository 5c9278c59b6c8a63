package domain

// Catalog — неизменяемый список товаров, собранный один раз при старте.
// Поиск по ID идёт через отдельную карту и не зависит от порядка товаров.
type Catalog struct {
	products []Product
	byID     map[int64]Product
}

// NewCatalog копирует products; дубликаты ID разрешаются в пользу первого товара.
func NewCatalog(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, len(products)),
		byID:     make(map[int64]Product, len(products)),
	}
	copy(c.products, products)

	for _, p := range c.products {
		if _, ok := c.byID[p.ID]; !ok {
			c.byID[p.ID] = p
		}
	}

	return c
}

// Products возвращает копию списка в порядке загрузки.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Product ищет товар по ID.
func (c *Catalog) Product(id int64) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) Len() int {
	return len(c.products)
}
