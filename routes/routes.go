package routes

import (
	"github.com/Deesus/Swiss-Tournament-Planner/handlers"
	"github.com/Deesus/Swiss-Tournament-Planner/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	playerHandler *handlers.PlayerHandler,
	matchHandler *handlers.MatchHandler,
	standingsHandler *handlers.StandingsHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Post("/auth/login", authHandler.Login)

	router.Route("/players", func(r chi.Router) {
		r.Post("/", playerHandler.RegisterPlayerHandler)
		r.Get("/", playerHandler.ListPlayersHandler)
		r.Get("/count", playerHandler.CountPlayersHandler)

		// Массовая очистка — только для организатора.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate([]byte(jwtSecret)))
			r.Use(middleware.Authorize("organizer"))
			r.Delete("/", playerHandler.ClearPlayersHandler)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Post("/", matchHandler.ReportMatchHandler)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate([]byte(jwtSecret)))
			r.Use(middleware.Authorize("organizer"))
			r.Delete("/", matchHandler.ClearMatchesHandler)
		})
	})

	router.Route("/standings", func(r chi.Router) {
		r.Get("/", standingsHandler.GetStandingsHandler)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate([]byte(jwtSecret)))
			r.Use(middleware.Authorize("organizer"))
			r.Post("/export", standingsHandler.ExportStandingsHandler)
		})
	})

	router.Get("/pairings", standingsHandler.GetPairingsHandler)

	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)

	router.Get("/swagger/*", httpSwagger.WrapHandler)
}
