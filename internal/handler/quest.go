package handler

import (
	"net/http"

	"github.com/osse101/ChoreQuest_Go/internal/logger"
	"github.com/osse101/ChoreQuest_Go/internal/quest"
)

// QuestHandler serves quest browsing and the per-character quest lifecycle
type QuestHandler struct {
	questService quest.Service
}

// NewQuestHandler creates a quest handler
func NewQuestHandler(questService quest.Service) *QuestHandler {
	return &QuestHandler{questService: questService}
}

// ProgressRequest sets quest progress
type ProgressRequest struct {
	Progress int `json:"progress" validate:"gte=0,lte=100"`
}

// HandleListQuests returns active quests
// @Summary List active quests
// @Tags quests
// @Produce json
// @Success 200 {array} domain.Quest
// @Router /api/v1/quests [get]
func (h *QuestHandler) HandleListQuests(w http.ResponseWriter, r *http.Request) {
	quests, err := h.questService.ListActive(r.Context())
	if err != nil {
		respondServiceError(w, r, OpListQuests, err)
		return
	}
	respondJSON(w, http.StatusOK, quests)
}

// HandleGetQuest returns one quest
// @Summary Get quest
// @Tags quests
// @Produce json
// @Param questID path int true "Quest ID"
// @Success 200 {object} domain.Quest
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/quests/{questID} [get]
func (h *QuestHandler) HandleGetQuest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ParamQuestID)
	if !ok {
		return
	}

	q, err := h.questService.Get(r.Context(), int(id))
	if err != nil {
		respondServiceError(w, r, OpGetQuest, err)
		return
	}
	respondJSON(w, http.StatusOK, q)
}

// HandleCharacterQuests lists a character's quests
// @Summary List character quests
// @Tags quests
// @Security BearerAuth
// @Produce json
// @Param characterID path int true "Character ID"
// @Success 200 {array} domain.CharacterQuest
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/quests [get]
func (h *QuestHandler) HandleCharacterQuests(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	characterID, ok := pathID(w, r, ParamCharacterID)
	if !ok {
		return
	}

	rows, err := h.questService.ListForCharacter(r.Context(), p.UserID, characterID)
	if err != nil {
		respondServiceError(w, r, OpCharacterQuests, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// HandleAcceptQuest accepts a quest for a character
// @Summary Accept quest
// @Tags quests
// @Security BearerAuth
// @Produce json
// @Param characterID path int true "Character ID"
// @Param questID path int true "Quest ID"
// @Success 200 {object} domain.CharacterQuest
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/quests/{questID}/accept [post]
func (h *QuestHandler) HandleAcceptQuest(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	characterID, questID, ok := characterAndQuestIDs(w, r)
	if !ok {
		return
	}

	cq, err := h.questService.Accept(r.Context(), p.UserID, characterID, questID)
	if err != nil {
		respondServiceError(w, r, OpAcceptQuest, err)
		return
	}
	respondJSON(w, http.StatusOK, cq)
}

// HandleUpdateProgress sets progress on an accepted quest
// @Summary Update quest progress
// @Tags quests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param characterID path int true "Character ID"
// @Param questID path int true "Quest ID"
// @Param request body ProgressRequest true "Progress 0-100"
// @Success 200 {object} domain.CharacterQuest
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/quests/{questID}/progress [post]
func (h *QuestHandler) HandleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	characterID, questID, ok := characterAndQuestIDs(w, r)
	if !ok {
		return
	}

	var req ProgressRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpUpdateProgress); err != nil {
		return
	}

	cq, err := h.questService.UpdateProgress(r.Context(), p.UserID, characterID, questID, req.Progress)
	if err != nil {
		respondServiceError(w, r, OpUpdateProgress, err)
		return
	}
	respondJSON(w, http.StatusOK, cq)
}

// HandleCompleteQuest completes an accepted quest and grants its rewards
// @Summary Complete quest
// @Description Items that do not fit in the inventory are reported as skipped.
// @Tags quests
// @Security BearerAuth
// @Produce json
// @Param characterID path int true "Character ID"
// @Param questID path int true "Quest ID"
// @Success 200 {object} domain.QuestCompletion
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/quests/{questID}/complete [post]
func (h *QuestHandler) HandleCompleteQuest(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	characterID, questID, ok := characterAndQuestIDs(w, r)
	if !ok {
		return
	}

	completion, err := h.questService.Complete(r.Context(), p.UserID, characterID, questID)
	if err != nil {
		respondServiceError(w, r, OpCompleteQuest, err)
		return
	}

	logger.FromContext(r.Context()).Info("Quest completed",
		"character_id", characterID,
		"quest_id", questID,
		"granted", len(completion.Reward.Granted),
		"skipped", len(completion.Reward.Skipped))
	respondJSON(w, http.StatusOK, completion)
}
