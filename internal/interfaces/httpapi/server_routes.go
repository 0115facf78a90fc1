package httpapi

import "github.com/go-chi/chi/v5"

func registerMatchRoutes(r chi.Router, handler *Handler, adminTools bool) {
	r.Get("/matches", handler.ListMatches)
	if adminTools {
		r.Post("/matches/seed", handler.SeedMatches)
	}
}

func registerPlayerRoutes(r chi.Router, handler *Handler, adminTools bool) {
	r.Route("/players", func(r chi.Router) {
		r.Get("/", handler.ListPlayers)
		r.Post("/", handler.CreatePlayer)
		r.Get("/live", handler.ListLivePlayers)
		r.Post("/import", handler.ImportPlayers)
		if adminTools {
			r.Post("/fill-stats", handler.FillPlayerStats)
		}
		r.Get("/{playerID}", handler.GetPlayer)
		r.Put("/{playerID}", handler.UpdatePlayer)
		r.Delete("/{playerID}", handler.DeletePlayer)
	})
}
