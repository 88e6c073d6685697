package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/famplan/famplan-server/internal/logger"
	"github.com/famplan/famplan-server/internal/shopping"
)

type ShoppingHandler struct {
	service shopping.Service
}

func NewShoppingHandler(service shopping.Service) *ShoppingHandler {
	return &ShoppingHandler{service: service}
}

type GenerateListRequest struct {
	MenuID string `json:"menu_id" validate:"required,uuid"`
	UserID string `json:"user_id" validate:"required,uuid"`
}

func (h *ShoppingHandler) HandleGenerateList(w http.ResponseWriter, r *http.Request) {
	var req GenerateListRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Generate shopping list"); err != nil {
		return
	}

	menuID, err := uuid.Parse(req.MenuID)
	if err != nil {
		http.Error(w, ErrMsgInvalidID, http.StatusBadRequest)
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		http.Error(w, ErrMsgInvalidID, http.StatusBadRequest)
		return
	}

	list, err := h.service.Generate(r.Context(), menuID, userID)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgGenerateListFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusCreated, list)
}

func (h *ShoppingHandler) HandleGetList(w http.ResponseWriter, r *http.Request) {
	listID, ok := GetUUIDParam(r, w, "id")
	if !ok {
		return
	}

	list, err := h.service.GetList(r.Context(), listID)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgGetListFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, list)
}

func (h *ShoppingHandler) HandleGetListsForMenu(w http.ResponseWriter, r *http.Request) {
	menuID, ok := GetUUIDParam(r, w, "menu_id")
	if !ok {
		return
	}

	lists, err := h.service.GetListsForMenu(r.Context(), menuID)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgGetListFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, lists)
}

type SetItemPurchasedRequest struct {
	ListID    string `json:"list_id" validate:"required,uuid"`
	ItemID    string `json:"item_id" validate:"required,uuid"`
	Purchased bool   `json:"purchased"`
}

func (h *ShoppingHandler) HandleSetItemPurchased(w http.ResponseWriter, r *http.Request) {
	var req SetItemPurchasedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set item purchased"); err != nil {
		return
	}

	listID, err := uuid.Parse(req.ListID)
	if err != nil {
		http.Error(w, ErrMsgInvalidID, http.StatusBadRequest)
		return
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		http.Error(w, ErrMsgInvalidID, http.StatusBadRequest)
		return
	}

	if err := h.service.SetItemPurchased(r.Context(), listID, itemID, req.Purchased); err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgUpdateItemFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": MsgItemUpdated})
}
