package router

import (
	"net/http"

	mem "animal-sounds/internal/adapters/storage/memory"
	"animal-sounds/internal/domain/animals"
	"animal-sounds/internal/middleware"

	_ "animal-sounds/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene nil, usa el repo in-memory (modo dev).
	Repo animals.Repository

	Logger zerolog.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.Recover)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	repo := opts.Repo
	if repo == nil {
		opts.Logger.Warn().Msg("no Api1Db connection string, using in-memory store")
		repo = mem.NewAnimalsRepo()
	}

	animals.RegisterRoutes(r, repo)

	return r
}
