package fs

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/DRSN-tech/terranova/pkg/e"
	"github.com/jimlawless/whereami"
)

// CatalogSource читает CSV каталога с локального диска.
type CatalogSource struct {
	path string
}

func NewCatalogSource(path string) *CatalogSource {
	return &CatalogSource{path: path}
}

func (c *CatalogSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, e.Wrap(c.path, e.ErrCatalogNotFound)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return f, nil
}

func (c *CatalogSource) String() string {
	return c.path
}
