package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"artist-mgmt/internal/config"
	"artist-mgmt/internal/handler"
	"artist-mgmt/internal/middleware"
	"artist-mgmt/internal/model"
)

func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	artistHandler *handler.ArtistHandler,
	musicHandler *handler.MusicHandler,
	dashboardHandler *handler.DashboardHandler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)
	r.Use(authMiddleware.Authenticate)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/login", authHandler.Login)
			auth.Post("/register", authHandler.Register)
		})

		superAdmin := authMiddleware.RequireRoles(model.RoleSuperAdmin)
		managers := authMiddleware.RequireRoles(model.RoleSuperAdmin, model.RoleArtistManager)

		api.Route("/users", func(users chi.Router) {
			users.Use(authMiddleware.RequireAuth, superAdmin)
			users.Get("/", userHandler.List)
			users.Post("/", userHandler.Create)
			users.Get("/{id}", userHandler.GetByID)
			users.Put("/{id}", userHandler.Update)
			users.Delete("/{id}", userHandler.Delete)
		})

		api.Route("/artists", func(artists chi.Router) {
			artists.Use(authMiddleware.RequireAuth)
			artists.Get("/", artistHandler.List)
			artists.Get("/{id}", artistHandler.GetByID)
			artists.With(managers).Get("/export", artistHandler.Export)
			artists.With(managers).Post("/", artistHandler.Create)
			artists.With(managers).Put("/{id}", artistHandler.Update)
			artists.With(managers).Delete("/{id}", artistHandler.Delete)
			artists.With(managers).Post("/import", artistHandler.Import)
		})

		artistsOwn := authMiddleware.RequireRoles(model.RoleSuperAdmin, model.RoleArtist)

		api.Route("/music", func(music chi.Router) {
			music.Use(authMiddleware.RequireAuth)
			music.With(managers).Get("/artist/{artistId}", musicHandler.ListByArtist)
			music.With(artistsOwn).Post("/artist/{artistId}", musicHandler.Create)
			music.With(artistsOwn).Put("/artist/{artistId}/{id}", musicHandler.Update)
			music.With(artistsOwn).Delete("/artist/{artistId}/{id}", musicHandler.Delete)
		})

		api.With(authMiddleware.RequireAuth).Get("/dashboard", dashboardHandler.Stats)
	})

	return r
}
