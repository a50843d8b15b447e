package handler

import (
	"net/http"
	"time"

	"github.com/osse101/ChoreQuest_Go/internal/character"
	"github.com/osse101/ChoreQuest_Go/internal/item"
	"github.com/osse101/ChoreQuest_Go/internal/logger"
	"github.com/osse101/ChoreQuest_Go/internal/quest"
)

// AdminHandler serves the API-key protected admin routes
type AdminHandler struct {
	quests     quest.Service
	items      item.Service
	characters character.ProgressionService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(quests quest.Service, items item.Service, characters character.ProgressionService) *AdminHandler {
	return &AdminHandler{
		quests:     quests,
		items:      items,
		characters: characters,
	}
}

// CreateQuestRequest defines a quest
type CreateQuestRequest struct {
	Name             string             `json:"name" validate:"required,max=100"`
	Description      string             `json:"description" validate:"max=2000"`
	DueDate          *time.Time         `json:"due_date,omitempty"`
	IsActive         *bool              `json:"is_active,omitempty"`
	ExperiencePoints int                `json:"experience_points" validate:"gte=0,lte=1000000"`
	Gold             int                `json:"gold" validate:"gte=0,lte=1000000"`
	LootTable        string             `json:"loot_table,omitempty" validate:"max=100"`
	ItemLoot         []QuestLootRequest `json:"item_loot" validate:"dive"`
}

// QuestLootRequest is one item a quest may drop
type QuestLootRequest struct {
	ItemName    string  `json:"item_name" validate:"required,max=100"`
	Quantity    int     `json:"quantity" validate:"min=1,max=10000"`
	Probability float64 `json:"probability" validate:"gte=0,lte=1"`
}

// HandleCreateQuest creates a quest
// @Summary Create quest
// @Tags admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body CreateQuestRequest true "Quest definition"
// @Success 201 {object} domain.Quest
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/admin/quests [post]
func (h *AdminHandler) HandleCreateQuest(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpCreateQuest); err != nil {
		return
	}

	input := quest.QuestInput{
		Name:             req.Name,
		Description:      req.Description,
		DueDate:          req.DueDate,
		IsActive:         true,
		ExperiencePoints: req.ExperiencePoints,
		Gold:             req.Gold,
		LootTable:        req.LootTable,
	}
	if req.IsActive != nil {
		input.IsActive = *req.IsActive
	}
	for _, l := range req.ItemLoot {
		input.ItemLoot = append(input.ItemLoot, quest.ItemLootInput{
			ItemName:    l.ItemName,
			Quantity:    l.Quantity,
			Probability: l.Probability,
		})
	}

	q, err := h.quests.Create(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, OpCreateQuest, err)
		return
	}
	respondJSON(w, http.StatusCreated, q)
}

// HandleSyncItems re-reads the item config and syncs it into the database
// @Summary Sync item catalog
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} item.SyncResult
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/items/sync [post]
func (h *AdminHandler) HandleSyncItems(w http.ResponseWriter, r *http.Request) {
	result, err := h.items.Sync(r.Context())
	if err != nil {
		respondServiceError(w, r, OpSyncItems, err)
		return
	}

	logger.FromContext(r.Context()).Info("Item catalog synced",
		"inserted", result.ItemsInserted,
		"updated", result.ItemsUpdated,
		"skipped", result.ItemsSkipped)
	respondJSON(w, http.StatusOK, result)
}

// HandleGetCacheStats returns item cache statistics
// @Summary Get item cache stats
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} item.CacheStats
// @Router /api/v1/admin/cache/stats [get]
func (h *AdminHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.items.CacheStats())
}

// HandleInvalidateCache drops every cached catalog item
// @Summary Invalidate item cache
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/cache/invalidate [post]
func (h *AdminHandler) HandleInvalidateCache(w http.ResponseWriter, r *http.Request) {
	h.items.InvalidateCache()
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCacheInvalidated})
}

// HandleAwardExperience awards experience to any character
// @Summary Award experience
// @Tags admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param characterID path int true "Character ID"
// @Param request body ExperienceRequest true "Points"
// @Success 200 {object} domain.ExperienceResult
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/characters/{characterID}/experience [post]
func (h *AdminHandler) HandleAwardExperience(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ParamCharacterID)
	if !ok {
		return
	}

	var req ExperienceRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpAddExperience); err != nil {
		return
	}

	result, err := h.characters.AwardExperience(r.Context(), id, req.Points)
	if err != nil {
		respondServiceError(w, r, OpAddExperience, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
