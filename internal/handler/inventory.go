package handler

import (
	"net/http"

	"github.com/osse101/ChoreQuest_Go/internal/character"
)

// InventoryItemRequest names an item and quantity to add or remove
type InventoryItemRequest struct {
	ItemName string `json:"item_name" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"min=1,max=10000"`
}

// HandleGetInventory returns a character's inventory
// @Summary Get inventory
// @Tags inventory
// @Security BearerAuth
// @Produce json
// @Param characterID path int true "Character ID"
// @Success 200 {object} domain.InventoryView
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/inventory [get]
func HandleGetInventory(svc character.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requirePrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, ParamCharacterID)
		if !ok {
			return
		}

		view, err := svc.GetInventory(r.Context(), p.UserID, id)
		if err != nil {
			respondServiceError(w, r, OpGetInventory, err)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

// HandleAddItem adds items to a character's inventory
// @Summary Add item to inventory
// @Description Fills partial stacks first, then opens new stacks. Fails without changes when capacity is short.
// @Tags inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param characterID path int true "Character ID"
// @Param request body InventoryItemRequest true "Item details"
// @Success 200 {object} domain.InventoryView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/inventory/add [post]
func HandleAddItem(svc character.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requirePrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, ParamCharacterID)
		if !ok {
			return
		}

		var req InventoryItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpAddItem); err != nil {
			return
		}

		view, err := svc.AddItem(r.Context(), p.UserID, id, req.ItemName, req.Quantity)
		if err != nil {
			respondServiceError(w, r, OpAddItem, err)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

// HandleRemoveItem removes items from a character's inventory
// @Summary Remove item from inventory
// @Tags inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param characterID path int true "Character ID"
// @Param request body InventoryItemRequest true "Item details"
// @Success 200 {object} domain.InventoryView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/inventory/remove [post]
func HandleRemoveItem(svc character.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requirePrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, ParamCharacterID)
		if !ok {
			return
		}

		var req InventoryItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpRemoveItem); err != nil {
			return
		}

		view, err := svc.RemoveItem(r.Context(), p.UserID, id, req.ItemName, req.Quantity)
		if err != nil {
			respondServiceError(w, r, OpRemoveItem, err)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}
