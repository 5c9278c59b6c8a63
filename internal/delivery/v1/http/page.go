package http

import (
	"net/http"

	"github.com/DRSN-tech/terranova/internal/usecase"
	"github.com/DRSN-tech/terranova/pkg/logger"
)

// pageRenderer дополняет данные страницы глобальными значениями:
// числом позиций в корзине и флагом вступительной анимации.
type pageRenderer struct {
	views  *Views
	cartUC usecase.CartUC
	logger logger.Logger
}

func (p *pageRenderer) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	count := 0
	res, err := p.cartUC.GetCart(r.Context(), SessionID(r.Context()))
	if err != nil {
		p.logger.Warnf("cart count unavailable for %s: %v", r.URL.Path, err)
	} else {
		count = res.Count
	}

	p.renderWithCount(w, r, page, count, data)
}

func (p *pageRenderer) renderWithCount(w http.ResponseWriter, r *http.Request, page string, count int, data any) {
	p.views.Render(w, http.StatusOK, page, ViewData{
		CartCount: count,
		ShowIntro: r.Method == http.MethodGet && r.URL.Path == "/",
		Page:      data,
	})
}
