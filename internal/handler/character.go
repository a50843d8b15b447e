package handler

import (
	"net/http"

	"github.com/osse101/ChoreQuest_Go/internal/character"
	"github.com/osse101/ChoreQuest_Go/internal/logger"
)

// CreateCharacterRequest names a new character
type CreateCharacterRequest struct {
	Name string `json:"name" validate:"required,min=3,max=100,excludesall=\x00\n\r\t"`
}

// ExperienceRequest awards experience points
type ExperienceRequest struct {
	Points int `json:"experience_points" validate:"gte=0,lte=1000000"`
}

// HandleCreateCharacter creates a character for the caller
// @Summary Create character
// @Tags characters
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateCharacterRequest true "Character name"
// @Success 201 {object} domain.Character
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/characters [post]
func HandleCreateCharacter(svc character.ManagementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		var req CreateCharacterRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpCreateCharacter); err != nil {
			return
		}

		c, err := svc.Create(r.Context(), p.UserID, req.Name)
		if err != nil {
			respondServiceError(w, r, OpCreateCharacter, err)
			return
		}

		logger.FromContext(r.Context()).Info("Character created", "character_id", c.ID, "user_id", p.UserID)
		respondJSON(w, http.StatusCreated, c)
	}
}

// HandleListCharacters lists the caller's characters
// @Summary List characters
// @Tags characters
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Character
// @Router /api/v1/characters [get]
func HandleListCharacters(svc character.ManagementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		chars, err := svc.List(r.Context(), p.UserID)
		if err != nil {
			respondServiceError(w, r, OpListCharacters, err)
			return
		}

		respondJSON(w, http.StatusOK, chars)
	}
}

// HandleGetCharacter returns one of the caller's characters
// @Summary Get character
// @Tags characters
// @Security BearerAuth
// @Produce json
// @Param characterID path int true "Character ID"
// @Success 200 {object} domain.Character
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID} [get]
func HandleGetCharacter(svc character.ManagementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requirePrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, ParamCharacterID)
		if !ok {
			return
		}

		c, err := svc.Get(r.Context(), p.UserID, id)
		if err != nil {
			respondServiceError(w, r, OpGetCharacter, err)
			return
		}

		respondJSON(w, http.StatusOK, c)
	}
}

// HandleDeleteCharacter deletes one of the caller's characters
// @Summary Delete character
// @Tags characters
// @Security BearerAuth
// @Produce json
// @Param characterID path int true "Character ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID} [delete]
func HandleDeleteCharacter(svc character.ManagementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requirePrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, ParamCharacterID)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), p.UserID, id); err != nil {
			respondServiceError(w, r, OpDeleteCharacter, err)
			return
		}

		logger.FromContext(r.Context()).Info("Character deleted", "character_id", id, "user_id", p.UserID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCharacterDeleted})
	}
}

// HandleActivateCharacter makes a character the caller's active one
// @Summary Activate character
// @Tags characters
// @Security BearerAuth
// @Produce json
// @Param characterID path int true "Character ID"
// @Success 200 {object} domain.Character
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/activate [post]
func HandleActivateCharacter(svc character.ManagementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requirePrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, ParamCharacterID)
		if !ok {
			return
		}

		c, err := svc.Activate(r.Context(), p.UserID, id)
		if err != nil {
			respondServiceError(w, r, OpActivateCharacter, err)
			return
		}

		respondJSON(w, http.StatusOK, c)
	}
}

// HandleAddExperience awards experience to one of the caller's characters
// @Summary Add experience
// @Tags characters
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param characterID path int true "Character ID"
// @Param request body ExperienceRequest true "Points"
// @Success 200 {object} domain.ExperienceResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/experience [post]
func HandleAddExperience(svc character.ProgressionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requirePrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, ParamCharacterID)
		if !ok {
			return
		}

		var req ExperienceRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpAddExperience); err != nil {
			return
		}

		result, err := svc.AddExperience(r.Context(), p.UserID, id, req.Points)
		if err != nil {
			respondServiceError(w, r, OpAddExperience, err)
			return
		}

		if result.LevelsGained > 0 {
			logger.FromContext(r.Context()).Info("Character leveled up",
				"character_id", id, "level", result.Level, "levels_gained", result.LevelsGained)
		}
		respondJSON(w, http.StatusOK, result)
	}
}
