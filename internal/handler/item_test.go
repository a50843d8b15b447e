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

func TestHandleListItems(t *testing.T) {
	svc := mocks.NewMockItemService(t)
	svc.On("List", mock.Anything).Return([]domain.Item{{ID: 1, Name: "Copper Coin Pouch"}, {ID: 2, Name: "Health Potion"}}, nil)

	w := httptest.NewRecorder()
	HandleListItems(svc).ServeHTTP(w, newRequest(t, http.MethodGet, "/", nil, nil, false))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]domain.Item](t, w), 2)
}

func TestHandleGetItem(t *testing.T) {
	tests := []struct {
		name           string
		itemName       string
		err            error
		expectedStatus int
	}{
		{"Found", "Mop of Cleansing", nil, http.StatusOK},
		{"Missing", "Unobtainium", domain.ErrItemNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockItemService(t)
			var it *domain.Item
			if tt.err == nil {
				it = &domain.Item{Name: tt.itemName}
			}
			svc.On("GetByName", mock.Anything, tt.itemName).Return(it, tt.err)

			w := httptest.NewRecorder()
			HandleGetItem(svc).ServeHTTP(w, newRequest(t, http.MethodGet, "/", nil, map[string]string{ParamItemName: tt.itemName}, false))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
