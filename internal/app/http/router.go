package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/tarhget/quotes-backend/internal/app/config"
	"github.com/tarhget/quotes-backend/internal/app/http/handlers"
	"github.com/tarhget/quotes-backend/internal/app/http/middleware"
)

func NewRouter(cfg config.Config, h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))
	r.Use(httprate.LimitByIP(300, time.Minute))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.InternalAuth(cfg.InternalToken))

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.ListClients)
			r.Post("/", h.CreateClient)
			r.Get("/{id}", h.GetClient)
			r.Put("/{id}", h.UpdateClient)
			r.Delete("/{id}", h.DeleteClient)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Post("/", h.CreateProduct)
			r.Get("/{id}", h.GetProduct)
			r.Put("/{id}", h.UpdateProduct)
			r.Delete("/{id}", h.DeleteProduct)
		})

		r.Route("/quotes", func(r chi.Router) {
			r.Get("/", h.ListQuotes)
			r.Post("/", h.CreateQuote)
			r.Get("/{id}", h.GetQuote)
			r.Put("/{id}", h.UpdateQuote)
			r.Delete("/{id}", h.DeleteQuote)
			r.Patch("/{id}/status", h.UpdateQuoteStatus)
			r.Get("/{id}/document", h.QuoteDocument)
			r.Get("/{id}/pdf", h.QuotePDF)
		})

		r.Get("/company", h.GetCompany)
		r.Put("/company", h.UpdateCompany)

		r.Get("/dashboard", h.Dashboard)
		r.Post("/items/describe", h.DescribeItem)
	})

	return r
}
