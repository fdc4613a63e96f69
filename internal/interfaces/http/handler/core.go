package handler

import (
	"github.com/erp/mfgdesk/internal/application/calculation"
	"github.com/erp/mfgdesk/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// CoreHandler serves the stateless validation and calculation endpoints
// data entry screens call while a form is being filled in.
type CoreHandler struct {
	BaseHandler
	calc *calculation.Service
}

// NewCoreHandler creates a new CoreHandler
func NewCoreHandler(calc *calculation.Service) *CoreHandler {
	return &CoreHandler{calc: calc}
}

// RegisterRoutes mounts /validate and /calculate
func (h *CoreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/validate", h.Validate)
	rg.POST("/calculate/line", h.CalculateLine)
	rg.POST("/calculate/totals", h.CalculateTotals)
}

// Validate godoc
// @ID           validateFields
// @Summary      Validate form fields
// @Description  Runs the field validators. Failing fields are listed in the response with a 200 status.
// @Tags         core
// @Accept       json
// @Produce      json
// @Param        request body calculation.ValidateRequest true "Fields to check"
// @Success      200 {object} APIResponse[calculation.ValidateResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /validate [post]
func (h *CoreHandler) Validate(c *gin.Context) {
	var req calculation.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	resp, err := h.calc.Validate(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CalculateLine godoc
// @ID           calculateLine
// @Summary      Calculate one line
// @Tags         core
// @Accept       json
// @Produce      json
// @Param        request body calculation.LineRequest true "Line"
// @Success      200 {object} APIResponse[calculation.LineResponse]
// @Failure      422 {object} ErrorResponse
// @Router       /calculate/line [post]
func (h *CoreHandler) CalculateLine(c *gin.Context) {
	var req calculation.LineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	resp, err := h.calc.CalculateLine(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CalculateTotals godoc
// @ID           calculateTotals
// @Summary      Calculate document totals
// @Tags         core
// @Accept       json
// @Produce      json
// @Param        request body calculation.TotalsRequest true "Draft lines and discount"
// @Success      200 {object} APIResponse[calculation.TotalsResponse]
// @Failure      422 {object} ErrorResponse
// @Router       /calculate/totals [post]
func (h *CoreHandler) CalculateTotals(c *gin.Context) {
	var req calculation.TotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	resp, err := h.calc.CalculateTotals(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
