package usecase

import (
	"context"
	"fmt"

	"brook-rent/internal/data/repository"
	"brook-rent/internal/dto/request"
	"brook-rent/internal/dto/response"
	"brook-rent/pkg/utils"

	"go.uber.org/zap"
)

type FavoriteService interface {
	AddFavorite(ctx context.Context, userID int64, req *request.FavoriteRequest) error
	RemoveFavorite(ctx context.Context, userID, houseID int64) error
	GetFavorites(ctx context.Context, userID int64) ([]response.FavoriteResponse, error)
	CheckFavorite(ctx context.Context, userID, houseID int64) (*response.FavoriteCheckResponse, error)
}

type favoriteService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFavoriteService(repo *repository.Repository, log *zap.Logger) FavoriteService {
	return &favoriteService{
		repo: repo,
		log:  log,
	}
}

func (s *favoriteService) AddFavorite(ctx context.Context, userID int64, req *request.FavoriteRequest) error {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add favorite validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. House must exist
	house, err := s.repo.House.FindByID(ctx, req.HouseID)
	if err != nil {
		s.log.Error("Failed to check house", zap.Error(err), zap.Int64("house_id", req.HouseID))
		return fmt.Errorf("failed to add favorite")
	}
	if house == nil {
		return fmt.Errorf("house not found")
	}

	// 3. Check already favorited
	exists, err := s.repo.Favorite.Exists(ctx, userID, req.HouseID)
	if err != nil {
		s.log.Error("Failed to check favorite", zap.Error(err), zap.Int64("house_id", req.HouseID))
		return fmt.Errorf("failed to add favorite")
	}
	if exists {
		return fmt.Errorf("already favorited")
	}

	// 4. Insert, unique constraint settles the concurrent race
	if err := s.repo.Favorite.Create(ctx, userID, req.HouseID); err != nil {
		if repository.IsUniqueViolation(err) {
			return fmt.Errorf("already favorited")
		}
		s.log.Error("Failed to add favorite", zap.Error(err), zap.Int64("house_id", req.HouseID))
		return fmt.Errorf("failed to add favorite")
	}

	s.log.Info("Favorite added",
		zap.Int64("user_id", userID),
		zap.Int64("house_id", req.HouseID))

	return nil
}

// RemoveFavorite is idempotent: removing a house that was never
// favorited succeeds.
func (s *favoriteService) RemoveFavorite(ctx context.Context, userID, houseID int64) error {
	if err := s.repo.Favorite.Delete(ctx, userID, houseID); err != nil {
		s.log.Error("Failed to remove favorite",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("house_id", houseID))
		return fmt.Errorf("failed to remove favorite")
	}

	s.log.Info("Favorite removed",
		zap.Int64("user_id", userID),
		zap.Int64("house_id", houseID))

	return nil
}

func (s *favoriteService) GetFavorites(ctx context.Context, userID int64) ([]response.FavoriteResponse, error) {
	favorites, err := s.repo.Favorite.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get favorites", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to get favorites")
	}

	return response.FavoritesToResponse(favorites), nil
}

func (s *favoriteService) CheckFavorite(ctx context.Context, userID, houseID int64) (*response.FavoriteCheckResponse, error) {
	exists, err := s.repo.Favorite.Exists(ctx, userID, houseID)
	if err != nil {
		s.log.Error("Failed to check favorite",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("house_id", houseID))
		return nil, fmt.Errorf("failed to check favorite")
	}

	return &response.FavoriteCheckResponse{IsFavorite: exists}, nil
}
