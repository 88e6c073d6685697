package handler

import (
	"net/http"

	"github.com/famplan/famplan-server/internal/domain"
	"github.com/famplan/famplan-server/internal/logger"
	"github.com/famplan/famplan-server/internal/user"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

type RegisterUserRequest struct {
	Username      string `json:"username" validate:"required,min=1,max=100"`
	AdultsCount   int    `json:"adults_count" validate:"gte=0"`
	ChildrenCount int    `json:"children_count" validate:"gte=0"`
}

func (h *UserHandler) HandleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
		return
	}

	registered, err := h.service.RegisterUser(r.Context(), req.Username, req.AdultsCount, req.ChildrenCount)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgRegisterUserFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusCreated, registered)
}

func (h *UserHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	// Lookup by id when present, otherwise by username.
	if r.URL.Query().Get("id") != "" {
		userID, ok := GetUUIDParam(r, w, "id")
		if !ok {
			return
		}
		found, err := h.service.GetUserByID(r.Context(), userID)
		if err != nil {
			logger.FromContext(r.Context()).Error(ErrMsgGetUserFailed, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}
		respondJSON(w, http.StatusOK, found)
		return
	}

	username, ok := GetQueryParam(r, w, "username")
	if !ok {
		return
	}
	found, err := h.service.GetUserByUsername(r.Context(), username)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgGetUserFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}
	respondJSON(w, http.StatusOK, found)
}

type UpdateHouseholdRequest struct {
	AdultsCount         int      `json:"adults_count" validate:"gte=0"`
	ChildrenCount       int      `json:"children_count" validate:"gte=0"`
	RequiredTags        []string `json:"required_tags" validate:"omitempty,dive,dietarytag"`
	ExcludedIngredients []string `json:"excluded_ingredients" validate:"omitempty,dive,min=1"`
}

func (h *UserHandler) HandleUpdateHousehold(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUUIDParam(r, w, "id")
	if !ok {
		return
	}

	var req UpdateHouseholdRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update household"); err != nil {
		return
	}

	tags := make([]domain.DietaryTag, 0, len(req.RequiredTags))
	for _, tag := range req.RequiredTags {
		tags = append(tags, domain.DietaryTag(tag))
	}

	updated, err := h.service.UpdateHousehold(r.Context(), userID, req.AdultsCount, req.ChildrenCount, tags, req.ExcludedIngredients)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgUpdateHouseholdFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
