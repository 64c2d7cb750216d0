package wire

import (
	"brook-rent/internal/adaptor"
	"brook-rent/internal/data/repository"
	"brook-rent/pkg/middleware"
	"brook-rent/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHouse(
	r chi.Router,
	houseHandler *adaptor.HouseHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Listing reads are public
	r.Get("/api/houses", houseHandler.GetHouses)
	r.Get("/api/houses/{id}", houseHandler.GetHouseByID)

	// ==================== PROTECTED ROUTES ====================
	// Own listings - requires authentication
	r.With(middleware.Auth(config.JWT.Secret, log)).Get("/api/houses/my", houseHandler.GetMyHouses)

	// Creation - requires authentication AND lister role
	r.With(
		middleware.Auth(config.JWT.Secret, log),
		middleware.Lister(repo.User, log),
	).Post("/api/houses", houseHandler.CreateHouse)

	// Mutation - requires authentication; ownership is checked in the
	// service against the stored row on every request
	r.With(middleware.Auth(config.JWT.Secret, log)).Put("/api/houses/{id}", houseHandler.UpdateHouse)
	r.With(middleware.Auth(config.JWT.Secret, log)).Delete("/api/houses/{id}", houseHandler.DeleteHouse)
}
