package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/tarhget/quotes-backend/internal/app/config"
	apphttp "github.com/tarhget/quotes-backend/internal/app/http"
	"github.com/tarhget/quotes-backend/internal/app/http/handlers"
	"github.com/tarhget/quotes-backend/internal/domain/ai/describer"
	"github.com/tarhget/quotes-backend/internal/domain/money"
	pdfgen "github.com/tarhget/quotes-backend/internal/domain/quote/pdf/gofpdf"
	"github.com/tarhget/quotes-backend/internal/infra/db/postgres"
)

func Run() {
	cfg := config.MustLoad()

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatalf("db schema: %v", err)
	}

	h := handlers.New(handlers.Deps{
		Clients:   postgres.NewClientRepo(db),
		Products:  postgres.NewProductRepo(db),
		Quotes:    postgres.NewQuoteRepo(db),
		Company:   postgres.NewCompanyRepo(db),
		Describer: describer.NewOpenAI(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, nil),
		PDF:       pdfgen.New(),
		Money:     money.NewFormatter(cfg.Locale, cfg.CurrencySymbol),
	})

	router := apphttp.NewRouter(cfg, h)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}
