package http

import (
	"errors"
	"net/http"

	"github.com/DRSN-tech/terranova/internal/usecase"
	"github.com/DRSN-tech/terranova/pkg/e"
	"github.com/DRSN-tech/terranova/pkg/logger"
)

type BuildHandler struct {
	cartUC usecase.CartUC
	pages  *pageRenderer
	logger logger.Logger
}

func NewBuildHandler(cartUC usecase.CartUC, pages *pageRenderer, logger logger.Logger) *BuildHandler {
	return &BuildHandler{cartUC: cartUC, pages: pages, logger: logger}
}

// buildSummary собирает черновик из формы. Ошибка в обязательном поле
// возвращает посетителя к форме, ничего не меняя в сессии.
func (b *BuildHandler) buildSummary(w http.ResponseWriter, r *http.Request) {
	req, err := parseBuildForm(w, r)
	if err != nil {
		b.logger.Warnf("%d %s: %v", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err)
		http.Redirect(w, r, "/customize", http.StatusFound)
		return
	}

	draft, err := b.cartUC.SubmitBuild(r.Context(), SessionID(r.Context()), req)
	switch {
	case errors.Is(err, e.ErrMissingField), errors.Is(err, e.ErrMalformedOption):
		b.logger.Debugf("build rejected: %v", err)
		http.Redirect(w, r, "/customize", http.StatusFound)
		return
	case err != nil:
		b.logger.Errorf(err, "failed to stage custom build")
		writePageError(w, err)
		return
	}

	b.pages.render(w, r, pageSummary, draft)
}

// addCustomToCart переносит черновик в корзину. Без черновика ведёт обратно к форме.
func (b *BuildHandler) addCustomToCart(w http.ResponseWriter, r *http.Request) {
	_, err := b.cartUC.ConfirmCustom(r.Context(), SessionID(r.Context()))
	switch {
	case errors.Is(err, e.ErrNoDraft):
		http.Redirect(w, r, "/customize", http.StatusFound)
		return
	case err != nil:
		b.logger.Errorf(err, "failed to add custom build")
		writePageError(w, err)
		return
	}

	http.Redirect(w, r, "/cart", http.StatusFound)
}
