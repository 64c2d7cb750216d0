package wire

import (
	"brook-rent/internal/adaptor"
	"brook-rent/pkg/middleware"
	"brook-rent/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireFavorite configures favorites routes; every route requires
// authentication
func wireFavorite(
	r chi.Router,
	favoriteHandler *adaptor.FavoriteHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(middleware.Auth(config.JWT.Secret, log)).Route("/api/favorites", func(r chi.Router) {
		r.Post("/", favoriteHandler.AddFavorite)
		r.Get("/", favoriteHandler.GetFavorites)
		r.Delete("/{houseId}", favoriteHandler.RemoveFavorite)
		r.Get("/check/{houseId}", favoriteHandler.CheckFavorite)
	})
}
