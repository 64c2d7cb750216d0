package usecase

import (
	"brook-rent/internal/data/repository"
	"brook-rent/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	House    HouseService
	Favorite FavoriteService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, NewLogDeliverer(log), log),
		House:    NewHouseService(repo, log),
		Favorite: NewFavoriteService(repo, log),
	}
}
