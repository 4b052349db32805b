package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/calc-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/calc-service/internal/app"
)

// CalculationHandler handles calculation HTTP endpoints.
type CalculationHandler struct {
	service *app.CalculatorService
}

// NewCalculationHandler creates a new calculation handler.
func NewCalculationHandler(service *app.CalculatorService) *CalculationHandler {
	return &CalculationHandler{
		service: service,
	}
}

// toCalculationResponse converts an evaluation to an HTTP response.
func toCalculationResponse(ev app.Evaluation) *dto.CalculationResponse {
	return &dto.CalculationResponse{
		A:         ev.A,
		B:         ev.B,
		Operation: string(ev.Operation),
		Display:   ev.Display,
		Cached:    ev.Cached,
	}
}

// Calculate handles POST /api/v1/calculations
// Evaluates a single arithmetic operation on two raw operands.
//
// Division by zero and unknown operations are valid outcomes carried in
// the display string, so every well-formed request returns 200.
//
// @Summary Evaluate a calculation
// @Description Evaluates a + b, a - b, a * b or a / b on raw text operands
// @Tags calculations
// @Accept json
// @Produce json
// @Success 200 {object} dto.CalculationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/calculations [post]
func (h *CalculationHandler) Calculate(c *gin.Context) {
	var req dto.CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			"request body must be a JSON object",
		).WithTraceID(dto.GetTraceID(c)))
		return
	}

	ev := h.service.Evaluate(c.Request.Context(), req.A, req.B, req.Operation)

	c.JSON(http.StatusOK, toCalculationResponse(ev))
}

// CalculateQuery handles GET /api/v1/calculations
// Same semantics as the POST variant, with operands in the query string.
// Absent parameters bind as empty strings.
//
// @Summary Evaluate a calculation via query parameters
// @Description Evaluates the operation given by ?a=&b=&operation=
// @Tags calculations
// @Produce json
// @Success 200 {object} dto.CalculationResponse
// @Router /api/v1/calculations [get]
func (h *CalculationHandler) CalculateQuery(c *gin.Context) {
	req := dto.CalculationRequest{
		A:         c.Query("a"),
		B:         c.Query("b"),
		Operation: c.Query("operation"),
	}

	ev := h.service.Evaluate(c.Request.Context(), req.A, req.B, req.Operation)

	c.JSON(http.StatusOK, toCalculationResponse(ev))
}

// RegisterCalculationRoutes registers calculation routes on the given router group.
func (h *CalculationHandler) RegisterCalculationRoutes(rg *gin.RouterGroup) {
	rg.POST("/calculations", h.Calculate)
	rg.GET("/calculations", h.CalculateQuery)
}
