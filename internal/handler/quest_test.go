package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
	"github.com/osse101/ChoreQuest_Go/mocks"
)

func questParams(characterID, questID string) map[string]string {
	return map[string]string{ParamCharacterID: characterID, ParamQuestID: questID}
}

func TestQuestHandler_ListAndGet(t *testing.T) {
	svc := mocks.NewMockQuestService(t)
	svc.On("ListActive", mock.Anything).Return([]domain.Quest{{ID: 1, Name: "Dishes"}}, nil)
	svc.On("Get", mock.Anything, 1).Return(&domain.Quest{ID: 1, Name: "Dishes"}, nil)
	svc.On("Get", mock.Anything, 2).Return(nil, domain.ErrQuestNotFound)
	h := NewQuestHandler(svc)

	w := httptest.NewRecorder()
	h.HandleListQuests(w, newRequest(t, http.MethodGet, "/", nil, nil, false))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]domain.Quest](t, w), 1)

	w = httptest.NewRecorder()
	h.HandleGetQuest(w, newRequest(t, http.MethodGet, "/", nil, map[string]string{ParamQuestID: "1"}, false))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Dishes"`)

	w = httptest.NewRecorder()
	h.HandleGetQuest(w, newRequest(t, http.MethodGet, "/", nil, map[string]string{ParamQuestID: "2"}, false))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuestHandler_HandleCharacterQuests(t *testing.T) {
	svc := mocks.NewMockQuestService(t)
	svc.On("ListForCharacter", mock.Anything, testUserID, int64(3)).Return([]domain.CharacterQuest{
		{CharacterID: 3, QuestID: 1, Status: domain.QuestStatusAccepted, Progress: 40},
	}, nil)

	w := httptest.NewRecorder()
	NewQuestHandler(svc).HandleCharacterQuests(w, newRequest(t, http.MethodGet, "/", nil, characterParams("3"), true))

	assert.Equal(t, http.StatusOK, w.Code)
	rows := decodeBody[[]domain.CharacterQuest](t, w)
	assert.Equal(t, domain.QuestStatusAccepted, rows[0].Status)
}

func TestQuestHandler_HandleAcceptQuest(t *testing.T) {
	tests := []struct {
		name           string
		params         map[string]string
		setupMock      func(*mocks.MockQuestService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Accepted",
			params: questParams("3", "1"),
			setupMock: func(m *mocks.MockQuestService) {
				m.On("Accept", mock.Anything, testUserID, int64(3), 1).
					Return(&domain.CharacterQuest{CharacterID: 3, QuestID: 1, Status: domain.QuestStatusAccepted}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"accepted"`,
		},
		{
			name:   "Twice",
			params: questParams("3", "1"),
			setupMock: func(m *mocks.MockQuestService) {
				m.On("Accept", mock.Anything, testUserID, int64(3), 1).Return(nil, domain.ErrQuestAlreadyAccepted)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   domain.ErrMsgQuestAlreadyAccepted,
		},
		{
			name:   "Overdue",
			params: questParams("3", "1"),
			setupMock: func(m *mocks.MockQuestService) {
				m.On("Accept", mock.Anything, testUserID, int64(3), 1).Return(nil, domain.ErrQuestOverdue)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   domain.ErrMsgQuestOverdue,
		},
		{
			name:           "Bad Quest ID",
			params:         questParams("3", "x"),
			setupMock:      func(m *mocks.MockQuestService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ParamQuestID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockQuestService(t)
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			NewQuestHandler(svc).HandleAcceptQuest(w, newRequest(t, http.MethodPost, "/", nil, tt.params, true))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestQuestHandler_HandleUpdateProgress(t *testing.T) {
	InitValidator()

	svc := mocks.NewMockQuestService(t)
	svc.On("UpdateProgress", mock.Anything, testUserID, int64(3), 1, 60).
		Return(&domain.CharacterQuest{CharacterID: 3, QuestID: 1, Status: domain.QuestStatusAccepted, Progress: 60}, nil)
	h := NewQuestHandler(svc)

	w := httptest.NewRecorder()
	h.HandleUpdateProgress(w, newRequest(t, http.MethodPost, "/", ProgressRequest{Progress: 60}, questParams("3", "1"), true))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"progress":60`)

	w = httptest.NewRecorder()
	h.HandleUpdateProgress(w, newRequest(t, http.MethodPost, "/", ProgressRequest{Progress: 101}, questParams("3", "1"), true))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuestHandler_HandleCompleteQuest(t *testing.T) {
	svc := mocks.NewMockQuestService(t)
	svc.On("Complete", mock.Anything, testUserID, int64(3), 1).Return(&domain.QuestCompletion{
		CharacterQuest: domain.CharacterQuest{CharacterID: 3, QuestID: 1, Status: domain.QuestStatusCompleted, Progress: 100},
		Reward: domain.RewardResult{
			Gold:    25,
			Granted: []domain.ItemGrant{{ItemName: "Health Potion", Quantity: 1}},
			Skipped: []domain.ItemGrant{{ItemName: "Iron Ore", Quantity: 3}},
		},
	}, nil)
	svc.On("Complete", mock.Anything, testUserID, int64(3), 2).Return(nil, domain.ErrQuestNotAccepted)
	h := NewQuestHandler(svc)

	w := httptest.NewRecorder()
	h.HandleCompleteQuest(w, newRequest(t, http.MethodPost, "/", nil, questParams("3", "1"), true))
	assert.Equal(t, http.StatusOK, w.Code)
	completion := decodeBody[domain.QuestCompletion](t, w)
	assert.Equal(t, domain.QuestStatusCompleted, completion.CharacterQuest.Status)
	assert.Equal(t, "Iron Ore", completion.Reward.Skipped[0].ItemName)

	w = httptest.NewRecorder()
	h.HandleCompleteQuest(w, newRequest(t, http.MethodPost, "/", nil, questParams("3", "2"), true))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrMsgQuestNotAccepted)
}
