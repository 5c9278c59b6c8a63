package http

import (
	"net/http"

	_ "github.com/DRSN-tech/terranova/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/terranova/internal/usecase"
	"github.com/DRSN-tech/terranova/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// Deps — всё, что нужно маршрутам витрины.
type Deps struct {
	CatalogUC usecase.CatalogUC
	CartUC    usecase.CartUC
	Sessions  *SessionManager
	Views     *Views
	StaticDir string // если пусто, /static не обслуживается
}

func (r *Router) Init(deps Deps) {
	r.router.Use(middleware.RequestID, middleware.RealIP, AccessLog(r.logger), middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // ссылка на JSON
	))

	if deps.StaticDir != "" {
		r.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(deps.StaticDir))))
	}

	pages := &pageRenderer{views: deps.Views, cartUC: deps.CartUC, logger: r.logger}

	r.router.Group(func(store chi.Router) {
		store.Use(deps.Sessions.Middleware)

		registerStoreRoutes(store, NewStoreHandler(deps.CatalogUC, pages))
		registerCartRoutes(store, NewCartHandler(deps.CartUC, pages, r.logger))
		registerBuildRoutes(store, NewBuildHandler(deps.CartUC, pages, r.logger))
	})
}

func registerStoreRoutes(router chi.Router, h *StoreHandler) {
	router.Get("/", h.home)
	router.Get("/shop", h.shop)
	router.Get("/customize", h.customize)
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Get("/cart", h.viewCart)
	router.Post("/add-premade-to-cart-ajax/{item_id}", h.addPremadeAjax)
	router.Get("/buy-now/{item_id}", h.buyNow)
	router.Get("/add-premade-to-cart/{item_id}", h.addPremade)
	router.Get("/remove-from-cart/{index}", h.removeFromCart)
	router.Get("/clear-cart", h.clearCart)
	router.Get("/checkout-complete", h.checkoutComplete)
}

func registerBuildRoutes(router chi.Router, h *BuildHandler) {
	router.Post("/build-summary", h.buildSummary)
	router.Get("/add-custom-to-cart", h.addCustomToCart)
}
