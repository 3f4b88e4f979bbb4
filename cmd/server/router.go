package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mzhelnin/adboard-api/internal/api"
	apiMiddleware "github.com/mzhelnin/adboard-api/internal/api/middleware"
	"github.com/mzhelnin/adboard-api/internal/api/shared"
	"github.com/mzhelnin/adboard-api/internal/platform/postgres"
	"github.com/mzhelnin/adboard-api/internal/store"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	userStore := postgres.NewPostgresUserStore(app.db, app.logger)
	advStore := postgres.NewPostgresAdvertisementStore(app.db, app.logger)
	txRunner := &store.SQLTxRunner{DB: app.db}

	userHandler := api.NewUserHandler(userStore, app.hasher, txRunner)
	advHandler := api.NewAdvertisementHandler(advStore, txRunner)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.authenticator)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"message": "hi!"})
	})

	r.Post("/user", userHandler.Create)
	r.Route("/user/{id}", func(r chi.Router) {
		r.Get("/", userHandler.Get)
		r.Patch("/", userHandler.Patch)
		r.Delete("/", userHandler.Delete)
	})

	r.Get("/advertisement/{id}", advHandler.Get)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Post("/advertisement", advHandler.Create)
		r.Patch("/advertisement/{id}", advHandler.Patch)
		r.Delete("/advertisement/{id}", advHandler.Delete)
	})

	return r
}
