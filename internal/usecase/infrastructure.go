package usecase

import (
	"context"
	"io"
)

// CatalogSource отдаёт содержимое файла каталога.
// Если источник отсутствует, Open возвращает ошибку, оборачивающую e.ErrCatalogNotFound.
type CatalogSource interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}
