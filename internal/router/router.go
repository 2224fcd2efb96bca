package router

import (
	"net/http"

	_ "petclinic/docs"
	mem "petclinic/internal/adapters/storage/memory"
	"petclinic/internal/domain/owners"
	"petclinic/internal/domain/visits"
	"petclinic/internal/middleware"
	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, usa el store en memoria con datos de ejemplo.
	Repo owners.Repository

	Logger   logger.Logger    // nil = descarta logs
	Renderer web.Renderer     // nil = web.JSONRenderer
	Flash    *web.FlashStore  // nil = store nuevo con TTL default
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	repo := opts.Repo
	if repo == nil {
		repo = mem.NewSeededOwnersRepo()
	}

	rs := web.NewResponder(opts.Renderer, opts.Flash, log)

	// Services por módulo
	ownersSvc := owners.NewService(repo)
	visitsSvc := visits.NewService(ownersSvc, repo)

	// Rutas por módulo
	owners.RegisterRoutes(r, ownersSvc, rs)
	visits.RegisterRoutes(r, visitsSvc, rs)

	return r
}
