package usecase

import (
	"context"

	"github.com/DRSN-tech/terranova/internal/domain"
)

type CatalogUC interface {
	ListProducts() []domain.Product
	Options() domain.OptionTables
}

type CartUC interface {
	GetCart(ctx context.Context, sessionID string) (*GetCartRes, error)
	AddPremade(ctx context.Context, sessionID string, itemID int64) (int, error)
	RemoveAt(ctx context.Context, sessionID string, index int) error
	Clear(ctx context.Context, sessionID string) error
	CheckoutComplete(ctx context.Context, sessionID string) error
	SubmitBuild(ctx context.Context, sessionID string, req *SubmitBuildReq) (*domain.CustomBuildDraft, error)
	ConfirmCustom(ctx context.Context, sessionID string) (int, error)
}
