package adaptor

import (
	"brook-rent/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	House    *HouseHandler
	Favorite *FavoriteHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		House:    NewHouseHandler(service.House, log),
		Favorite: NewFavoriteHandler(service.Favorite, log),
	}
}
