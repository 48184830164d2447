package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callWriteError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, writeError(c, err))
	return rec
}

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"顧客なし", &usecase.CustomerNotFoundError{CustomerID: 7}, http.StatusNotFound},
		{"注文なし", &usecase.OrderNotFoundError{OrderID: 5}, http.StatusNotFound},
		{"在庫不足", &usecase.InsufficientStockError{ProductID: 1, Requested: 5, Available: 2}, http.StatusConflict},
		{"支払済み", &usecase.AlreadyFullyPaidError{OrderID: 5}, http.StatusConflict},
		{"キャンセル済み", &usecase.AlreadyCancelledError{OrderID: 5}, http.StatusConflict},
		{"HTTPErrorはそのまま", usecase.NewHTTPError(http.StatusBadRequest, "invalid body"), http.StatusBadRequest},
		{"未知のエラーは500", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := callWriteError(t, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestWriteError_UnknownErrorMessageNotLeaked(t *testing.T) {
	rec := callWriteError(t, assert.AnError)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	//DB由来の生メッセージは外に出さない
	assert.Equal(t, "internal error", body.Error)
}
