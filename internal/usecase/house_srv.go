package usecase

import (
	"context"
	"fmt"

	"brook-rent/internal/data/entity"
	"brook-rent/internal/data/repository"
	"brook-rent/internal/dto/request"
	"brook-rent/internal/dto/response"
	"brook-rent/pkg/utils"

	"go.uber.org/zap"
)

type HouseService interface {
	GetHouses(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.HouseResponse], error)
	GetHouseByID(ctx context.Context, id int64) (*response.HouseResponse, error)
	GetMyHouses(ctx context.Context, userID int64) ([]response.HouseResponse, error)
	CreateHouse(ctx context.Context, userID int64, req *request.HouseRequest) (*response.HouseResponse, error)
	UpdateHouse(ctx context.Context, userID, houseID int64, req *request.HouseRequest) (*response.HouseResponse, error)
	DeleteHouse(ctx context.Context, userID, houseID int64) error
}

type houseService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHouseService(repo *repository.Repository, log *zap.Logger) HouseService {
	return &houseService{
		repo: repo,
		log:  log,
	}
}

func (s *houseService) GetHouses(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.HouseResponse], error) {
	houses, err := s.repo.House.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get houses", zap.Error(err))
		return nil, fmt.Errorf("failed to get houses")
	}

	total, err := s.repo.House.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count houses", zap.Error(err))
		return nil, fmt.Errorf("failed to get houses")
	}

	return response.NewPaginatedResponse(response.HousesToResponse(houses), req.Page, req.Limit(), total), nil
}

func (s *houseService) GetHouseByID(ctx context.Context, id int64) (*response.HouseResponse, error) {
	house, err := s.repo.House.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get house", zap.Error(err), zap.Int64("house_id", id))
		return nil, fmt.Errorf("failed to get house")
	}
	if house == nil {
		return nil, fmt.Errorf("house not found")
	}

	resp := response.HouseToResponse(house)
	return &resp, nil
}

func (s *houseService) GetMyHouses(ctx context.Context, userID int64) ([]response.HouseResponse, error) {
	houses, err := s.repo.House.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user houses", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to get houses")
	}

	return response.HousesToResponse(houses), nil
}

func (s *houseService) CreateHouse(ctx context.Context, userID int64, req *request.HouseRequest) (*response.HouseResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create house validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Build listing owned by the caller
	house := s.houseFromRequest(req)
	house.UserID = userID

	if err := s.repo.House.Create(ctx, house); err != nil {
		s.log.Error("Failed to create house", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to create house listing")
	}

	s.log.Info("House created",
		zap.Int64("house_id", house.ID),
		zap.Int64("user_id", userID))

	resp := response.HouseToResponse(house)
	return &resp, nil
}

func (s *houseService) UpdateHouse(ctx context.Context, userID, houseID int64, req *request.HouseRequest) (*response.HouseResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update house validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Ownership guard
	existing, err := s.guardOwner(ctx, userID, houseID, "update")
	if err != nil {
		return nil, err
	}

	// 3. Rewrite listing fields, owner and created_at stay
	house := s.houseFromRequest(req)
	house.ID = existing.ID
	house.UserID = existing.UserID
	house.CreatedAt = existing.CreatedAt

	if err := s.repo.House.Update(ctx, house); err != nil {
		s.log.Error("Failed to update house", zap.Error(err), zap.Int64("house_id", houseID))
		return nil, fmt.Errorf("failed to update house listing")
	}

	s.log.Info("House updated",
		zap.Int64("house_id", houseID),
		zap.Int64("user_id", userID))

	resp := response.HouseToResponse(house)
	return &resp, nil
}

func (s *houseService) DeleteHouse(ctx context.Context, userID, houseID int64) error {
	if _, err := s.guardOwner(ctx, userID, houseID, "delete"); err != nil {
		return err
	}

	if err := s.repo.House.Delete(ctx, houseID); err != nil {
		s.log.Error("Failed to delete house", zap.Error(err), zap.Int64("house_id", houseID))
		return fmt.Errorf("failed to delete house listing")
	}

	s.log.Info("House deleted",
		zap.Int64("house_id", houseID),
		zap.Int64("user_id", userID))

	return nil
}

// guardOwner re-fetches the listing and compares its owner to the
// caller on every request. A missing listing and someone else's
// listing get the identical "house not found" so non-owners learn
// nothing about what exists.
func (s *houseService) guardOwner(ctx context.Context, userID, houseID int64, operation string) (*entity.House, error) {
	house, err := s.repo.House.FindByID(ctx, houseID)
	if err != nil {
		s.log.Error("Failed to fetch house for ownership check",
			zap.Error(err),
			zap.Int64("house_id", houseID))
		return nil, fmt.Errorf("failed to %s house listing", operation)
	}

	if house == nil {
		return nil, fmt.Errorf("house not found")
	}

	if house.UserID != userID {
		s.log.Warn("Ownership mismatch",
			zap.String("operation", operation),
			zap.Int64("house_id", houseID),
			zap.Int64("owner_id", house.UserID),
			zap.Int64("caller_id", userID))
		return nil, fmt.Errorf("house not found")
	}

	return house, nil
}

func (s *houseService) houseFromRequest(req *request.HouseRequest) *entity.House {
	return &entity.House{
		PropertyTitle: req.PropertyTitle,
		Images:        req.Images,
		MonthlyRent:   req.MonthlyRent,
		Address:       req.Address,
		PropertyType:  req.PropertyType,
		Rooms:         req.Rooms,
		Bathrooms:     req.Bathrooms,
		SquareFeet:    req.SquareFeet,
		Description:   req.Description,
		ContactName:   req.ContactName,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
	}
}
