package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ChoreQuest_Go/internal/item"
)

// HandleListItems returns the item catalog
// @Summary List items
// @Tags items
// @Produce json
// @Success 200 {array} domain.Item
// @Router /api/v1/items [get]
func HandleListItems(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respondServiceError(w, r, OpListItems, err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleGetItem returns one catalog item by name
// @Summary Get item
// @Tags items
// @Produce json
// @Param name path string true "Item name"
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{name} [get]
func HandleGetItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, ParamItemName)
		if name == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		it, err := svc.GetByName(r.Context(), name)
		if err != nil {
			respondServiceError(w, r, OpGetItem, err)
			return
		}
		respondJSON(w, http.StatusOK, it)
	}
}
