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

type HouseHandler struct {
	service usecase.HouseService
	log     *zap.Logger
}

func NewHouseHandler(service usecase.HouseService, log *zap.Logger) *HouseHandler {
	return &HouseHandler{
		service: service,
		log:     log.With(zap.String("handler", "house")),
	}
}

// GetHouses handles GET /api/houses (public)
func (h *HouseHandler) GetHouses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    parseQueryInt(query.Get("page"), 1),
		PerPage: parseQueryInt(query.Get("per_page"), 10),
	}

	houses, err := h.service.GetHouses(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get houses")
		return
	}

	utils.ResponseSuccess(w, "Houses retrieved successfully", houses)
}

// GetHouseByID handles GET /api/houses/{id} (public)
func (h *HouseHandler) GetHouseByID(w http.ResponseWriter, r *http.Request) {
	houseID, ok := h.parseHouseID(w, r, "id")
	if !ok {
		return
	}

	house, err := h.service.GetHouseByID(r.Context(), houseID)
	if err != nil {
		h.handleServiceError(w, err, "get house")
		return
	}

	utils.ResponseSuccess(w, "House retrieved successfully", house)
}

// GetMyHouses handles GET /api/houses/my
func (h *HouseHandler) GetMyHouses(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	houses, err := h.service.GetMyHouses(r.Context(), identity.UserID)
	if err != nil {
		h.handleServiceError(w, err, "get my houses")
		return
	}

	utils.ResponseSuccess(w, "Houses retrieved successfully", houses)
}

// CreateHouse handles POST /api/houses (lister only)
func (h *HouseHandler) CreateHouse(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.HouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	house, err := h.service.CreateHouse(r.Context(), identity.UserID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create house")
		return
	}

	utils.ResponseCreated(w, "House created successfully", house)
}

// UpdateHouse handles PUT /api/houses/{id} (owner only)
func (h *HouseHandler) UpdateHouse(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	houseID, ok := h.parseHouseID(w, r, "id")
	if !ok {
		return
	}

	var req request.HouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	house, err := h.service.UpdateHouse(r.Context(), identity.UserID, houseID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update house")
		return
	}

	utils.ResponseSuccess(w, "House updated successfully", house)
}

// DeleteHouse handles DELETE /api/houses/{id} (owner only)
func (h *HouseHandler) DeleteHouse(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	houseID, ok := h.parseHouseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteHouse(r.Context(), identity.UserID, houseID); err != nil {
		h.handleServiceError(w, err, "delete house")
		return
	}

	utils.ResponseSuccess(w, "House deleted successfully", nil)
}

func (h *HouseHandler) parseHouseID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	idStr := chi.URLParam(r, param)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		utils.ResponseBadRequest(w, "Invalid house ID", nil)
		return 0, false
	}
	return id, true
}

// handleServiceError maps service errors to HTTP responses. Ownership
// mismatches arrive here already phrased as "not found".
func (h *HouseHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
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

// parseQueryInt converts a query value to int with a default
func parseQueryInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil || result < 1 {
		return defaultValue
	}

	return result
}
