package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"brook-rent/internal/dto/request"
	"brook-rent/internal/usecase"
	"brook-rent/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	service usecase.FavoriteService
	log     *zap.Logger
}

func NewFavoriteHandler(service usecase.FavoriteService, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		log:     log.With(zap.String("handler", "favorite")),
	}
}

// AddFavorite handles POST /api/favorites
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.AddFavorite(r.Context(), identity.UserID, &req); err != nil {
		h.handleServiceError(w, err, "add favorite")
		return
	}

	utils.ResponseCreated(w, "Added to favorites", nil)
}

// RemoveFavorite handles DELETE /api/favorites/{houseId}
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	houseID, ok := h.parseHouseID(w, r)
	if !ok {
		return
	}

	if err := h.service.RemoveFavorite(r.Context(), identity.UserID, houseID); err != nil {
		h.handleServiceError(w, err, "remove favorite")
		return
	}

	utils.ResponseSuccess(w, "Removed from favorites", nil)
}

// GetFavorites handles GET /api/favorites
func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	favorites, err := h.service.GetFavorites(r.Context(), identity.UserID)
	if err != nil {
		h.handleServiceError(w, err, "get favorites")
		return
	}

	utils.ResponseSuccess(w, "Favorites retrieved successfully", favorites)
}

// CheckFavorite handles GET /api/favorites/check/{houseId}
func (h *FavoriteHandler) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	houseID, ok := h.parseHouseID(w, r)
	if !ok {
		return
	}

	result, err := h.service.CheckFavorite(r.Context(), identity.UserID, houseID)
	if err != nil {
		h.handleServiceError(w, err, "check favorite")
		return
	}

	utils.ResponseSuccess(w, "Favorite checked", result)
}

func (h *FavoriteHandler) parseHouseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "houseId")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		utils.ResponseBadRequest(w, "Invalid house ID", nil)
		return 0, false
	}
	return id, true
}

// handleServiceError maps service errors to HTTP responses
func (h *FavoriteHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "already favorited"):
		h.log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
