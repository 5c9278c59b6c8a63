package usecase

import (
	"context"

	"github.com/DRSN-tech/terranova/internal/domain"
	"github.com/DRSN-tech/terranova/pkg/e"
	"github.com/DRSN-tech/terranova/pkg/logger"
)

// CartUseCase реализует операции корзины и кастомной сборки поверх хранилища сессий.
type CartUseCase struct {
	catalog  *domain.Catalog
	sessions SessionRepository
	logger   logger.Logger
}

func NewCartUC(catalog *domain.Catalog, sessions SessionRepository, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		catalog:  catalog,
		sessions: sessions,
		logger:   logger,
	}
}

// GetCart возвращает корзину сессии; для новой сессии корзина пустая.
func (c *CartUseCase) GetCart(ctx context.Context, sessionID string) (*GetCartRes, error) {
	const op = "CartUseCase.GetCart"

	s, err := c.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewGetCartRes(s.Cart), nil
}

// AddPremade добавляет товар каталога и возвращает новое число позиций.
// Если товара нет, корзина не меняется и возвращается e.ErrProductNotFound.
func (c *CartUseCase) AddPremade(ctx context.Context, sessionID string, itemID int64) (int, error) {
	const op = "CartUseCase.AddPremade"

	product, ok := c.catalog.Product(itemID)
	if !ok {
		return 0, e.Wrap(op, e.ErrProductNotFound)
	}

	s, err := c.sessions.Update(ctx, sessionID, func(s domain.Session) (domain.Session, error) {
		return s.WithCart(s.Cart.Append(domain.NewPremadeItem(product))), nil
	})
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	return s.Cart.Count(), nil
}

// RemoveAt удаляет позицию по индексу. Индекс вне диапазона ничего не меняет.
func (c *CartUseCase) RemoveAt(ctx context.Context, sessionID string, index int) error {
	const op = "CartUseCase.RemoveAt"

	_, err := c.sessions.Update(ctx, sessionID, func(s domain.Session) (domain.Session, error) {
		cart, _ := s.Cart.RemoveAt(index)
		return s.WithCart(cart), nil
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *CartUseCase) Clear(ctx context.Context, sessionID string) error {
	const op = "CartUseCase.Clear"

	if err := c.clearCart(ctx, sessionID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// CheckoutComplete имитирует оформление заказа: корзина очищается, заказ нигде не сохраняется.
func (c *CartUseCase) CheckoutComplete(ctx context.Context, sessionID string) error {
	const op = "CartUseCase.CheckoutComplete"

	if err := c.clearCart(ctx, sessionID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// SubmitBuild собирает черновик из формы и кладёт его в слот сессии, заменяя предыдущий.
// При ошибке в обязательных полях сессия не меняется.
func (c *CartUseCase) SubmitBuild(ctx context.Context, sessionID string, req *SubmitBuildReq) (*domain.CustomBuildDraft, error) {
	const op = "CartUseCase.SubmitBuild"

	draft, err := AssembleBuild(req, c.logger)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	_, err = c.sessions.Update(ctx, sessionID, func(s domain.Session) (domain.Session, error) {
		return s.StageDraft(draft), nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &draft, nil
}

// ConfirmCustom забирает черновик из слота и добавляет его в корзину одной позицией.
// Повторный вызов без новой формы возвращает e.ErrNoDraft.
func (c *CartUseCase) ConfirmCustom(ctx context.Context, sessionID string) (int, error) {
	const op = "CartUseCase.ConfirmCustom"

	s, err := c.sessions.Update(ctx, sessionID, func(s domain.Session) (domain.Session, error) {
		s, draft, ok := s.TakeDraft()
		if !ok {
			return s, e.ErrNoDraft
		}
		return s.WithCart(s.Cart.Append(domain.NewCustomItem(draft))), nil
	})
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	return s.Cart.Count(), nil
}

func (c *CartUseCase) clearCart(ctx context.Context, sessionID string) error {
	_, err := c.sessions.Update(ctx, sessionID, func(s domain.Session) (domain.Session, error) {
		return s.WithCart(nil), nil
	})
	return err
}
