// Package catalog собирает неизменяемый каталог товаров из CSV-файла.
package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/DRSN-tech/terranova/internal/domain"
	"github.com/DRSN-tech/terranova/internal/usecase"
	"github.com/DRSN-tech/terranova/pkg/e"
	"github.com/DRSN-tech/terranova/pkg/logger"
	"github.com/DRSN-tech/terranova/pkg/price"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

const (
	colName          = "Name"
	colSalePrice     = "Sale Price"
	colOriginalPrice = "Original Price" // в файле колонка называется "Original Price (₹)"
	colDescription   = "Short Description"
	colImage         = "image_url"

	DefaultDescription = "A lovely terrarium."
	DefaultImage       = "default.jpg"
)

// Loader читает каталог из источника. Любая проблема с источником приводит
// к встроенному запасному списку, поэтому витрина никогда не бывает пустой.
type Loader struct {
	source usecase.CatalogSource
	logger logger.Logger
}

func NewLoader(source usecase.CatalogSource, logger logger.Logger) *Loader {
	return &Loader{
		source: source,
		logger: logger,
	}
}

// Load возвращает каталог. Ошибки не возвращаются: они логируются,
// а вместо каталога подставляется FallbackProducts.
func (l *Loader) Load(ctx context.Context) *domain.Catalog {
	products, err := l.load(ctx)
	switch {
	case errors.Is(err, e.ErrCatalogNotFound):
		l.logger.Warnf("catalog %s not found, using fallback products", l.source)
	case errors.Is(err, e.ErrEmptyCatalog), errors.Is(err, e.ErrMissingColumn):
		l.logger.Warnf("catalog %s is unusable (%v), using fallback products", l.source, err)
	case err != nil:
		l.logger.Errorf(err, "failed to read catalog %s, using fallback products", l.source)
	default:
		l.logger.Infof("catalog %s loaded: %d products", l.source, len(products))
		return domain.NewCatalog(products)
	}

	return domain.NewCatalog(FallbackProducts())
}

func (l *Loader) load(ctx context.Context) ([]domain.Product, error) {
	rc, err := l.source.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Parse(rc, l.logger)
}

// Parse разбирает CSV с заголовком. ID товара равен номеру строки данных, начиная с 1;
// пропущенные строки тоже занимают свой номер. Строка с неразбираемой ценой
// пропускается с предупреждением.
func Parse(r io.Reader, log logger.Logger) ([]domain.Product, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, e.Wrap("no header", e.ErrEmptyCatalog)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cols := newColumns(header)
	if cols.name < 0 && cols.salePrice < 0 {
		return nil, e.Wrap(fmt.Sprintf("%s/%s", colName, colSalePrice), e.ErrMissingColumn)
	}

	var products []domain.Product
	for id := int64(1); ; id++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			log.Warnf("failed to process row %d: %v, skipping", id, err)
			continue
		}
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		p, err := cols.product(id, record)
		if err != nil {
			log.Warnf("failed to process row %d: %v, skipping", id, err)
			continue
		}

		products = append(products, p)
	}

	if len(products) == 0 {
		return nil, e.Wrap("no rows", e.ErrEmptyCatalog)
	}

	return products, nil
}

// columns хранит позиции известных колонок, -1 если колонки нет.
type columns struct {
	name, salePrice, originalPrice, description, image int
}

func newColumns(header []string) columns {
	c := columns{-1, -1, -1, -1, -1}
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		switch {
		case h == colName:
			c.name = i
		case h == colSalePrice:
			c.salePrice = i
		case strings.HasPrefix(h, colOriginalPrice) && c.originalPrice < 0:
			c.originalPrice = i
		case h == colDescription:
			c.description = i
		case h == colImage:
			c.image = i
		}
	}
	return c
}

func (c columns) product(id int64, record []string) (domain.Product, error) {
	field := func(i int) (string, bool) {
		if i < 0 || i >= len(record) {
			return "", false
		}
		return strings.TrimSpace(record[i]), true
	}

	p := domain.Product{
		ID:          id,
		Name:        fmt.Sprintf("Unnamed Product %d", id),
		Description: DefaultDescription,
		Image:       DefaultImage,
	}

	if v, ok := field(c.name); ok && v != "" {
		p.Name = v
	}
	if v, ok := field(c.description); ok && v != "" {
		p.Description = v
	}
	if v, ok := field(c.image); ok && v != "" {
		p.Image = v
	}

	// нет колонки цены продажи: цена 0; пустая или битая ячейка: строка пропускается
	if v, ok := field(c.salePrice); ok {
		d, err := price.Parse(v)
		if err != nil {
			return domain.Product{}, e.Wrap(colSalePrice, err)
		}
		p.Price = d
	}

	// исходная цена необязательна, пустая ячейка даёт 0
	if v, ok := field(c.originalPrice); ok && v != "" {
		d, err := price.Parse(v)
		if err != nil {
			return domain.Product{}, e.Wrap(colOriginalPrice, err)
		}
		p.OriginalPrice = d
	}

	return p, nil
}

// FallbackProducts — встроенный список, который показывается, если каталог не загрузился.
func FallbackProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "The Misty Rainforest (Fallback)",
			Price:       decimal.RequireFromString("45.00"),
			Description: "Lush closed ecosystem. (Fallback Data)",
			Image:       "misty.jpg",
		},
		{
			ID:          2,
			Name:        "Desert Dune (Fallback)",
			Price:       decimal.RequireFromString("35.50"),
			Description: "Open terrarium with succulent cacti. (Fallback Data)",
			Image:       "desert.jpg",
		},
	}
}
