package http

import (
	"net/http"

	"github.com/DRSN-tech/terranova/internal/domain"
	"github.com/DRSN-tech/terranova/internal/usecase"
)

type shopPage struct {
	Products []domain.Product
}

type customizePage struct {
	Options domain.OptionTables
}

// StoreHandler отдаёт страницы витрины, не меняющие сессию.
type StoreHandler struct {
	catalogUC usecase.CatalogUC
	pages     *pageRenderer
}

func NewStoreHandler(catalogUC usecase.CatalogUC, pages *pageRenderer) *StoreHandler {
	return &StoreHandler{catalogUC: catalogUC, pages: pages}
}

func (s *StoreHandler) home(w http.ResponseWriter, r *http.Request) {
	s.pages.render(w, r, pageHome, nil)
}

func (s *StoreHandler) shop(w http.ResponseWriter, r *http.Request) {
	s.pages.render(w, r, pageShop, shopPage{Products: s.catalogUC.ListProducts()})
}

func (s *StoreHandler) customize(w http.ResponseWriter, r *http.Request) {
	s.pages.render(w, r, pageCustomize, customizePage{Options: s.catalogUC.Options()})
}
