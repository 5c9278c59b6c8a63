package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/terranova/internal/domain"
	"github.com/DRSN-tech/terranova/internal/repository/memory"
	"github.com/DRSN-tech/terranova/internal/usecase"
	"github.com/DRSN-tech/terranova/pkg/e"
	"github.com/DRSN-tech/terranova/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sid = "visitor"

func testCatalog() *domain.Catalog {
	return domain.NewCatalog([]domain.Product{
		{ID: 1, Name: "The Misty Rainforest", Price: decimal.RequireFromString("45.00")},
		{ID: 2, Name: "Desert Dune", Price: decimal.RequireFromString("35.50")},
		{ID: 7, Name: "Fern Grotto", Price: decimal.RequireFromString("60.00")},
	})
}

func newCartUC() *usecase.CartUseCase {
	return usecase.NewCartUC(testCatalog(), memory.NewSessionRepo(100, time.Hour), logger.NewNop())
}

func validBuild() *usecase.SubmitBuildReq {
	return &usecase.SubmitBuildReq{
		GrowingMedium:   "Soil|5.00",
		DrainageLayer:   "Gravel|3.00",
		HardscapeStones: "Rock|2.00",
		Plants:          []string{"Moss Mat|5.00"},
	}
}

func TestCartUseCase_GetCartEmpty(t *testing.T) {
	res, err := newCartUC().GetCart(context.Background(), sid)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Count)
	assert.True(t, res.Total.IsZero())
}

func TestCartUseCase_AddPremade(t *testing.T) {
	ctx := context.Background()
	uc := newCartUC()

	for i, id := range []int64{1, 2, 7} {
		count, err := uc.AddPremade(ctx, sid, id)
		require.NoError(t, err)
		assert.Equal(t, i+1, count)
	}

	res, err := uc.GetCart(ctx, sid)
	require.NoError(t, err)
	require.Len(t, res.Items, 3)
	assert.Equal(t, int64(7), res.Items[2].ProductID)
	assert.True(t, decimal.RequireFromString("60.00").Equal(res.Items[2].UnitPrice))
	assert.True(t, decimal.RequireFromString("140.50").Equal(res.Total))
}

func TestCartUseCase_AddPremadeUnknown(t *testing.T) {
	ctx := context.Background()
	uc := newCartUC()

	// id 3 попадает в диапазон позиций, но такого товара нет
	for _, id := range []int64{0, -1, 3, 4, 100} {
		_, err := uc.AddPremade(ctx, sid, id)
		assert.ErrorIs(t, err, e.ErrProductNotFound, "id %d", id)
	}

	res, err := uc.GetCart(ctx, sid)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestCartUseCase_RemoveAt(t *testing.T) {
	ctx := context.Background()
	uc := newCartUC()

	for _, id := range []int64{1, 2, 7} {
		_, err := uc.AddPremade(ctx, sid, id)
		require.NoError(t, err)
	}

	for _, bad := range []int{-1, 3, 42} {
		require.NoError(t, uc.RemoveAt(ctx, sid, bad))
	}
	res, _ := uc.GetCart(ctx, sid)
	assert.Len(t, res.Items, 3)

	require.NoError(t, uc.RemoveAt(ctx, sid, 1))
	res, _ = uc.GetCart(ctx, sid)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "The Misty Rainforest", res.Items[0].Name)
	assert.Equal(t, "Fern Grotto", res.Items[1].Name)
}

func TestCartUseCase_ClearAndCheckout(t *testing.T) {
	ctx := context.Background()
	uc := newCartUC()

	_, err := uc.AddPremade(ctx, sid, 1)
	require.NoError(t, err)
	require.NoError(t, uc.Clear(ctx, sid))

	res, _ := uc.GetCart(ctx, sid)
	assert.Empty(t, res.Items)

	_, err = uc.AddPremade(ctx, sid, 2)
	require.NoError(t, err)
	require.NoError(t, uc.CheckoutComplete(ctx, sid))

	res, _ = uc.GetCart(ctx, sid)
	assert.Empty(t, res.Items)

	// очистка пустой корзины тоже допустима
	require.NoError(t, uc.Clear(ctx, sid))
}

func TestCartUseCase_CustomBuildRoundTrip(t *testing.T) {
	ctx := context.Background()
	uc := newCartUC()

	draft, err := uc.SubmitBuild(ctx, sid, validBuild())
	require.NoError(t, err)
	assert.Len(t, draft.Components, 4)
	assert.True(t, decimal.RequireFromString("15.00").Equal(draft.TotalPrice))
	assert.Equal(t, "Custom Terrarium: Soil...", draft.DisplayName)

	count, err := uc.ConfirmCustom(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	res, _ := uc.GetCart(ctx, sid)
	require.Len(t, res.Items, 1)
	assert.Equal(t, domain.KindCustom, res.Items[0].Kind)
	assert.Equal(t, 1, res.Items[0].Quantity)
	assert.True(t, draft.TotalPrice.Equal(res.Items[0].UnitPrice))

	// второе подтверждение без новой формы ничего не делает
	_, err = uc.ConfirmCustom(ctx, sid)
	assert.ErrorIs(t, err, e.ErrNoDraft)

	res, _ = uc.GetCart(ctx, sid)
	assert.Len(t, res.Items, 1)
}

func TestCartUseCase_SubmitBuildKeepsEmptyName(t *testing.T) {
	req := validBuild()
	req.GrowingMedium = "|5.00"

	draft, err := newCartUC().SubmitBuild(context.Background(), sid, req)
	require.NoError(t, err)
	assert.Equal(t, "Custom Terrarium: ...", draft.DisplayName)
	assert.True(t, decimal.RequireFromString("15.00").Equal(draft.TotalPrice))
}

func TestCartUseCase_SubmitBuildRejectsRequired(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *usecase.SubmitBuildReq)
		want   error
	}{
		{"missing growing medium", func(r *usecase.SubmitBuildReq) { r.GrowingMedium = "" }, e.ErrMissingField},
		{"missing hardscape", func(r *usecase.SubmitBuildReq) { r.HardscapeStones = "" }, e.ErrMissingField},
		{"no separator", func(r *usecase.SubmitBuildReq) { r.DrainageLayer = "Gravel" }, e.ErrMalformedOption},
		{"non numeric price", func(r *usecase.SubmitBuildReq) { r.DrainageLayer = "Gravel|cheap" }, e.ErrMalformedOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			uc := newCartUC()

			_, err := uc.SubmitBuild(ctx, sid, validBuild())
			require.NoError(t, err)

			req := validBuild()
			req.Plants = []string{"Fittonia (Red)|8.00"}
			tt.mutate(req)

			_, err = uc.SubmitBuild(ctx, sid, req)
			assert.ErrorIs(t, err, tt.want)

			// предыдущий черновик остался нетронутым
			_, err = uc.ConfirmCustom(ctx, sid)
			require.NoError(t, err)
			res, _ := uc.GetCart(ctx, sid)
			require.Len(t, res.Items, 1)
			assert.True(t, decimal.RequireFromString("15.00").Equal(res.Items[0].UnitPrice))
		})
	}
}

func TestCartUseCase_SubmitBuildOverwritesDraft(t *testing.T) {
	ctx := context.Background()
	uc := newCartUC()

	_, err := uc.SubmitBuild(ctx, sid, validBuild())
	require.NoError(t, err)

	second := validBuild()
	second.Plants = nil
	_, err = uc.SubmitBuild(ctx, sid, second)
	require.NoError(t, err)

	_, err = uc.ConfirmCustom(ctx, sid)
	require.NoError(t, err)

	res, _ := uc.GetCart(ctx, sid)
	require.Len(t, res.Items, 1)
	assert.True(t, decimal.RequireFromString("10.00").Equal(res.Total))
}

func TestCartUseCase_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	uc := newCartUC()

	_, err := uc.AddPremade(ctx, "a", 1)
	require.NoError(t, err)

	res, _ := uc.GetCart(ctx, "b")
	assert.Empty(t, res.Items)
}

func TestAssembleBuild_OptionalFieldsAreLenient(t *testing.T) {
	req := validBuild()
	req.Plants = []string{"Moss Mat|5.00", "broken", "Fittonia (Red)|8.00"}
	req.Care = []string{"Spray Bottle|3.00", "Guide|-1"}
	req.Accessories = []string{"LED Light Cap|9.00"}

	draft, err := usecase.AssembleBuild(req, logger.NewNop())
	require.NoError(t, err)

	names := make([]string, 0, len(draft.Components))
	for _, c := range draft.Components {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Soil", "Gravel", "Rock", "Moss Mat", "Fittonia (Red)", "Spray Bottle", "LED Light Cap"}, names)
	assert.True(t, decimal.RequireFromString("35.00").Equal(draft.TotalPrice))
}

type failingRepo struct{ err error }

func (f failingRepo) Load(context.Context, string) (domain.Session, error) {
	return domain.Session{}, f.err
}

func (f failingRepo) Update(context.Context, string, usecase.SessionMutation) (domain.Session, error) {
	return domain.Session{}, f.err
}

func TestCartUseCase_StoreErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	down := errors.New("store down")
	uc := usecase.NewCartUC(testCatalog(), failingRepo{err: down}, logger.NewNop())

	_, err := uc.GetCart(ctx, sid)
	assert.ErrorIs(t, err, down)

	_, err = uc.AddPremade(ctx, sid, 1)
	assert.ErrorIs(t, err, down)

	assert.ErrorIs(t, uc.RemoveAt(ctx, sid, 0), down)
	assert.ErrorIs(t, uc.Clear(ctx, sid), down)
	assert.ErrorIs(t, uc.CheckoutComplete(ctx, sid), down)

	_, err = uc.SubmitBuild(ctx, sid, validBuild())
	assert.ErrorIs(t, err, down)

	_, err = uc.ConfirmCustom(ctx, sid)
	assert.ErrorIs(t, err, down)
}

func TestCatalogUseCase_OptionsAreCopies(t *testing.T) {
	uc := usecase.NewCatalogUC(testCatalog(), domain.DefaultOptionTables())

	opts := uc.Options()
	require.NotEmpty(t, opts.Vessels)
	opts.Vessels[0].Name = "Tampered"

	assert.NotEqual(t, "Tampered", uc.Options().Vessels[0].Name)
	assert.Len(t, uc.ListProducts(), 3)
}
