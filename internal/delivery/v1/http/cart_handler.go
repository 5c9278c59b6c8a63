package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/terranova/internal/usecase"
	"github.com/DRSN-tech/terranova/pkg/e"
	"github.com/DRSN-tech/terranova/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartUC usecase.CartUC
	pages  *pageRenderer
	logger logger.Logger
}

func NewCartHandler(cartUC usecase.CartUC, pages *pageRenderer, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUC: cartUC, pages: pages, logger: logger}
}

func (c *CartHandler) viewCart(w http.ResponseWriter, r *http.Request) {
	res, err := c.cartUC.GetCart(r.Context(), SessionID(r.Context()))
	if err != nil {
		c.logger.Errorf(err, "failed to load cart")
		writePageError(w, err)
		return
	}

	c.pages.renderWithCount(w, r, pageCart, res.Count, res)
}

// addPremadeAjax
//
//	@Summary		Добавление готового террариума в корзину
//	@Description	Добавляет товар каталога в корзину текущей сессии и возвращает число позиций
//	@Tags			cart
//	@Produce		json
//	@Param			item_id	path		int					true	"ID товара"
//	@Success		200		{object}	AddToCartResponse	"Товар добавлен"
//	@Failure		400		{object}	ErrorResponse		"Некорректный ID"
//	@Failure		404		{object}	ErrorResponse		"Товар не найден"
//	@Router			/add-premade-to-cart-ajax/{item_id} [post]
func (c *CartHandler) addPremadeAjax(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r)
	if err != nil {
		c.logger.Warnf("%d %s: %v", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err)
		WriteError(w, err)
		return
	}

	count, err := c.cartUC.AddPremade(r.Context(), SessionID(r.Context()), id)
	if err != nil {
		if !errors.Is(err, e.ErrProductNotFound) {
			c.logger.Errorf(err, "failed to add product %d", id)
		}
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, AddToCartResponse{Success: true, CartCount: count})
}

// buyNow добавляет товар и ведёт в корзину; неизвестный товар просто не добавляется.
func (c *CartHandler) buyNow(w http.ResponseWriter, r *http.Request) {
	c.addPremadeAndRedirect(w, r, func(int64) string { return "/cart" })
}

// addPremade используется без JavaScript: возвращает на витрину к карточке товара.
func (c *CartHandler) addPremade(w http.ResponseWriter, r *http.Request) {
	c.addPremadeAndRedirect(w, r, func(id int64) string {
		return fmt.Sprintf("/shop#product-%d", id)
	})
}

func (c *CartHandler) addPremadeAndRedirect(w http.ResponseWriter, r *http.Request, target func(int64) string) {
	id, err := parseItemID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	_, err = c.cartUC.AddPremade(r.Context(), SessionID(r.Context()), id)
	if err != nil && !errors.Is(err, e.ErrProductNotFound) {
		c.logger.Errorf(err, "failed to add product %d", id)
		writePageError(w, err)
		return
	}

	http.Redirect(w, r, target(id), http.StatusFound)
}

// removeFromCart игнорирует некорректный индекс.
func (c *CartHandler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Redirect(w, r, "/cart", http.StatusFound)
		return
	}

	if err := c.cartUC.RemoveAt(r.Context(), SessionID(r.Context()), index); err != nil {
		c.logger.Errorf(err, "failed to remove cart item %d", index)
		writePageError(w, err)
		return
	}

	http.Redirect(w, r, "/cart", http.StatusFound)
}

func (c *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := c.cartUC.Clear(r.Context(), SessionID(r.Context())); err != nil {
		c.logger.Errorf(err, "failed to clear cart")
		writePageError(w, err)
		return
	}

	http.Redirect(w, r, "/cart", http.StatusFound)
}

// checkoutComplete очищает корзину и показывает подтверждение. Заказ нигде не сохраняется.
func (c *CartHandler) checkoutComplete(w http.ResponseWriter, r *http.Request) {
	if err := c.cartUC.CheckoutComplete(r.Context(), SessionID(r.Context())); err != nil {
		c.logger.Errorf(err, "failed to complete checkout")
		writePageError(w, err)
		return
	}

	c.pages.renderWithCount(w, r, pageThankYou, 0, nil)
}
