package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/DRSN-tech/terranova/internal/cfg"
	"github.com/DRSN-tech/terranova/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// CatalogSource читает CSV каталога из объекта MinIO.
type CatalogSource struct {
	mc  *minio.Client
	cfg *cfg.CatalogCfg
}

func NewCatalogSource(mc *minio.Client, cfg *cfg.CatalogCfg) *CatalogSource {
	return &CatalogSource{
		mc:  mc,
		cfg: cfg,
	}
}

// Open возвращает содержимое объекта. GetObject ленивый, поэтому наличие
// объекта проверяется через Stat до того, как читатель уйдёт наружу.
func (c *CatalogSource) Open(ctx context.Context) (io.ReadCloser, error) {
	obj, err := c.mc.GetObject(ctx, c.cfg.Bucket, c.cfg.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, c.wrapErr(err)
	}

	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, c.wrapErr(err)
	}

	return obj, nil
}

func (c *CatalogSource) String() string {
	return fmt.Sprintf("minio://%s/%s", c.cfg.Bucket, c.cfg.Object)
}

func (c *CatalogSource) wrapErr(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return e.Wrap(c.String(), e.ErrCatalogNotFound)
	}

	return e.Wrap(whereami.WhereAmI(), err)
}
