package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/calc-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/calc-service/internal/app"
	"github.com/jsamuelsen/calc-service/internal/domain"
)

// newCalculationHandler creates a handler backed by a cacheless service.
func newCalculationHandler(t *testing.T) *CalculationHandler {
	t.Helper()
	service := app.NewCalculatorService(app.CalculatorServiceConfig{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return NewCalculationHandler(service)
}

func TestNewCalculationHandler(t *testing.T) {
	handler := newCalculationHandler(t)
	require.NotNil(t, handler)
}

func TestToCalculationResponse(t *testing.T) {
	ev := app.Evaluation{
		Calculation: domain.NewCalculation("3", "4", domain.OperationAdd),
		Cached:      true,
	}

	resp := toCalculationResponse(ev)

	assert.Equal(t, "3", resp.A)
	assert.Equal(t, "4", resp.B)
	assert.Equal(t, "add", resp.Operation)
	assert.Equal(t, "Result: 7", resp.Display)
	assert.True(t, resp.Cached)
}

func TestCalculationHandler_Calculate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "addition",
			body:           `{"a":"3","b":"4","operation":"add"}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				t.Helper()
				var resp dto.CalculationResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)
				assert.Equal(t, "Result: 7", resp.Display)
				assert.Equal(t, "add", resp.Operation)
				assert.False(t, resp.Cached)
			},
		},
		{
			name:           "division by zero is a valid outcome",
			body:           `{"a":"5","b":"0","operation":"divide"}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				t.Helper()
				var resp dto.CalculationResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)
				assert.Equal(t, "Result: Error: Division by zero!", resp.Display)
			},
		},
		{
			name:           "unknown operation is a valid outcome",
			body:           `{"a":"5","b":"3","operation":"mod"}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				t.Helper()
				var resp dto.CalculationResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)
				assert.Equal(t, "Result: Invalid operation!", resp.Display)
			},
		},
		{
			name:           "missing keys bind as empty operands",
			body:           `{"operation":"add"}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				t.Helper()
				var resp dto.CalculationResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)
				assert.Equal(t, "Result: NaN", resp.Display)
			},
		},
		{
			name:           "malformed JSON returns bad request",
			body:           `{"a":`,
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				t.Helper()
				var resp dto.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)
				assert.Equal(t, dto.ErrorCodeBadRequest, resp.Error.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newCalculationHandler(t)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(
				http.MethodPost, "/api/v1/calculations", strings.NewReader(tt.body),
			)
			c.Request.Header.Set("Content-Type", "application/json")

			handler.Calculate(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestCalculationHandler_CalculateQuery(t *testing.T) {
	tests := []struct {
		name            string
		query           string
		expectedDisplay string
	}{
		{
			name:            "division",
			query:           "a=10&b=2&operation=divide",
			expectedDisplay: "Result: 5",
		},
		{
			name:            "operands with trailing garbage",
			query:           "a=5abc&b=4xyz&operation=add",
			expectedDisplay: "Result: 9",
		},
		{
			name:            "absent parameters evaluate to NaN",
			query:           "operation=multiply",
			expectedDisplay: "Result: NaN",
		},
		{
			name:            "no operation at all",
			query:           "a=1&b=2",
			expectedDisplay: "Result: Invalid operation!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newCalculationHandler(t)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(
				http.MethodGet, "/api/v1/calculations?"+tt.query, nil,
			)

			handler.CalculateQuery(c)

			assert.Equal(t, http.StatusOK, w.Code)

			var resp dto.CalculationResponse
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedDisplay, resp.Display)
		})
	}
}
