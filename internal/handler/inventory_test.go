package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
	"github.com/osse101/ChoreQuest_Go/mocks"
)

func sampleView() *domain.InventoryView {
	potion := domain.Item{ID: 2, Name: "Health Potion", Stacksize: 10, Weight: decimal.RequireFromString("0.50")}
	return &domain.InventoryView{
		CharacterID:    3,
		Stacks:         []domain.InventoryStack{{ID: 11, CharacterID: 3, Item: potion, Quantity: 4}},
		SlotsUsed:      1,
		MaxSlots:       20,
		CurrentWeight:  decimal.RequireFromString("2.00"),
		MaxCarryWeight: decimal.RequireFromString("50.00"),
	}
}

func TestHandleGetInventory(t *testing.T) {
	svc := mocks.NewMockCharacterService(t)
	svc.On("GetInventory", mock.Anything, testUserID, int64(3)).Return(sampleView(), nil)

	w := httptest.NewRecorder()
	HandleGetInventory(svc).ServeHTTP(w, newRequest(t, http.MethodGet, "/", nil, characterParams("3"), true))

	assert.Equal(t, http.StatusOK, w.Code)
	view := decodeBody[domain.InventoryView](t, w)
	assert.Equal(t, 1, view.SlotsUsed)
	assert.True(t, view.CurrentWeight.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, "Health Potion", view.Stacks[0].Item.Name)
}

func TestHandleAddItem(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockCharacterService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: InventoryItemRequest{ItemName: "Health Potion", Quantity: 4},
			setupMock: func(m *mocks.MockCharacterService) {
				m.On("AddItem", mock.Anything, testUserID, int64(3), "Health Potion", 4).Return(sampleView(), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"slots_used":1`,
		},
		{
			name:           "Zero Quantity",
			body:           InventoryItemRequest{ItemName: "Health Potion", Quantity: 0},
			setupMock:      func(m *mocks.MockCharacterService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "quantity",
		},
		{
			name: "No Room",
			body: InventoryItemRequest{ItemName: "Iron Ore", Quantity: 500},
			setupMock: func(m *mocks.MockCharacterService) {
				m.On("AddItem", mock.Anything, testUserID, int64(3), "Iron Ore", 500).Return(nil, domain.ErrInsufficientCapacity)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "Not enough space or weight capacity in inventory.",
		},
		{
			name: "Unknown Item",
			body: InventoryItemRequest{ItemName: "Unobtainium", Quantity: 1},
			setupMock: func(m *mocks.MockCharacterService) {
				m.On("AddItem", mock.Anything, testUserID, int64(3), "Unobtainium", 1).Return(nil, domain.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   domain.ErrMsgItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockCharacterService(t)
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			HandleAddItem(svc).ServeHTTP(w, newRequest(t, http.MethodPost, "/", tt.body, characterParams("3"), true))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleRemoveItem(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{"Removed", nil, http.StatusOK, `"character_id":3`},
		{"Not Held", domain.ErrItemNotInInventory, http.StatusUnprocessableEntity, "Item not found in inventory."},
		{"Too Many", domain.ErrInsufficientQuantity, http.StatusUnprocessableEntity, "Not enough items to remove."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockCharacterService(t)
			var view *domain.InventoryView
			if tt.err == nil {
				view = sampleView()
			}
			svc.On("RemoveItem", mock.Anything, testUserID, int64(3), "Health Potion", 2).Return(view, tt.err)

			body := InventoryItemRequest{ItemName: "Health Potion", Quantity: 2}
			w := httptest.NewRecorder()
			HandleRemoveItem(svc).ServeHTTP(w, newRequest(t, http.MethodPost, "/", body, characterParams("3"), true))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestInventoryHandlers_DoNotLogMutations(t *testing.T) {
	InitValidator()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	svc := mocks.NewMockCharacterService(t)
	svc.On("AddItem", mock.Anything, testUserID, int64(3), "Health Potion", 1).Return(sampleView(), nil)
	svc.On("RemoveItem", mock.Anything, testUserID, int64(3), "Health Potion", 1).Return(sampleView(), nil)

	body := InventoryItemRequest{ItemName: "Health Potion", Quantity: 1}
	w := httptest.NewRecorder()
	HandleAddItem(svc).ServeHTTP(w, newRequest(t, http.MethodPost, "/", body, characterParams("3"), true))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	HandleRemoveItem(svc).ServeHTTP(w, newRequest(t, http.MethodPost, "/", body, characterParams("3"), true))
	assert.Equal(t, http.StatusOK, w.Code)

	// the inventory service owns these log lines
	assert.NotContains(t, buf.String(), "Item added")
	assert.NotContains(t, buf.String(), "Item removed")
}
