package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/famplan/famplan-server/internal/domain"
	"github.com/famplan/famplan-server/internal/logger"
	"github.com/famplan/famplan-server/internal/menu"
)

// dateLayout is the wire format for menu date ranges.
const dateLayout = "2006-01-02"

type MenuHandler struct {
	service menu.Service
}

func NewMenuHandler(service menu.Service) *MenuHandler {
	return &MenuHandler{service: service}
}

type CreateMenuRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

func (h *MenuHandler) HandleCreateMenu(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create menu"); err != nil {
		return
	}

	userID, startDate, endDate, ok := parseMenuRange(w, req.UserID, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	created, err := h.service.CreateMenu(r.Context(), userID, startDate, endDate)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgCreateMenuFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

type GenerateMenuRequest struct {
	ExcludeRecipeIDs   []string `json:"exclude_recipe_ids" validate:"omitempty,dive,uuid"`
	RequireTags        []string `json:"require_tags" validate:"omitempty,dive,dietarytag"`
	ExcludeIngredients []string `json:"exclude_ingredients" validate:"omitempty,dive,min=1"`
}

func (h *MenuHandler) HandleGenerateMenu(w http.ResponseWriter, r *http.Request) {
	menuID, ok := GetUUIDParam(r, w, "id")
	if !ok {
		return
	}

	// An empty body is a plain regenerate with the user's stored policy.
	var req GenerateMenuRequest
	if r.ContentLength > 0 {
		if err := DecodeAndValidateRequest(r, w, &req, "Generate menu"); err != nil {
			return
		}
	}

	opts, ok := buildGenerateOptions(w, req)
	if !ok {
		return
	}

	generated, err := h.service.Generate(r.Context(), menuID, opts)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgGenerateMenuFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, generated)
}

func (h *MenuHandler) HandleGetMenu(w http.ResponseWriter, r *http.Request) {
	menuID, ok := GetUUIDParam(r, w, "id")
	if !ok {
		return
	}

	found, err := h.service.GetMenu(r.Context(), menuID)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgGetMenuFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, found)
}

func (h *MenuHandler) HandleGetActiveMenu(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUUIDParam(r, w, "user_id")
	if !ok {
		return
	}

	active, err := h.service.GetActiveMenu(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgGetMenuFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, active)
}

func parseMenuRange(w http.ResponseWriter, userIDStr, startStr, endStr string) (userID uuid.UUID, startDate, endDate time.Time, ok bool) {
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidID, http.StatusBadRequest)
		return userID, startDate, endDate, false
	}
	startDate, err = time.Parse(dateLayout, startStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidDate, http.StatusBadRequest)
		return userID, startDate, endDate, false
	}
	endDate, err = time.Parse(dateLayout, endStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidDate, http.StatusBadRequest)
		return userID, startDate, endDate, false
	}
	return userID, startDate, endDate, true
}

func buildGenerateOptions(w http.ResponseWriter, req GenerateMenuRequest) (menu.GenerateOptions, bool) {
	var opts menu.GenerateOptions
	for _, idStr := range req.ExcludeRecipeIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			http.Error(w, ErrMsgInvalidID, http.StatusBadRequest)
			return opts, false
		}
		opts.ExcludeRecipeIDs = append(opts.ExcludeRecipeIDs, id)
	}
	for _, tagStr := range req.RequireTags {
		tag, err := domain.ParseDietaryTag(tagStr)
		if err != nil {
			http.Error(w, ErrMsgInvalidTag, http.StatusBadRequest)
			return opts, false
		}
		opts.RequireTags = append(opts.RequireTags, tag)
	}
	opts.ExcludeIngredients = req.ExcludeIngredients
	return opts, true
}
