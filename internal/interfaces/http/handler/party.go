package handler

import (
	masterapp "github.com/erp/mfgdesk/internal/application/master"
	"github.com/erp/mfgdesk/internal/domain/master"
	"github.com/erp/mfgdesk/internal/domain/record"
	"github.com/erp/mfgdesk/internal/interfaces/http/dto"
	"github.com/erp/mfgdesk/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// PartyHandler handles the supplier and buyer master endpoints
type PartyHandler struct {
	BaseHandler
	partyService *masterapp.PartyService
}

// NewPartyHandler creates a new PartyHandler
func NewPartyHandler(partyService *masterapp.PartyService) *PartyHandler {
	return &PartyHandler{partyService: partyService}
}

// RegisterRoutes mounts the party routes under /parties
func (h *PartyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/parties/:subtype")
	g.GET("", h.List)
	g.GET("/export", h.Export)
	g.POST("", h.Create)
	g.POST("/refresh", h.Refresh)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Replace)
	g.DELETE("/:id", h.Delete)
}

// List godoc
// @ID           listParties
// @Summary      List parties
// @Description  Lists a party bucket, optionally filtered by a case-insensitive search term
// @Tags         parties
// @Produce      json
// @Param        subtype path string true "Party bucket" Enums(supplier, buyer)
// @Param        search query string false "Search term"
// @Success      200 {object} APIResponse[[]masterapp.PartyResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /parties/{subtype} [get]
func (h *PartyHandler) List(c *gin.Context) {
	var q dto.SearchRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	parties, err := h.partyService.List(c.Request.Context(), c.Param("subtype"), q.Search)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, parties, len(parties), q.Search)
}

// Get godoc
// @ID           getParty
// @Summary      Get a party
// @Tags         parties
// @Produce      json
// @Param        subtype path string true "Party bucket" Enums(supplier, buyer)
// @Param        id path string true "Record id"
// @Success      200 {object} APIResponse[masterapp.PartyResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /parties/{subtype}/{id} [get]
func (h *PartyHandler) Get(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	party, err := h.partyService.GetByID(c.Request.Context(), c.Param("subtype"), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, party)
}

// Create godoc
// @ID           createParty
// @Summary      Create a party
// @Description  Validates every field and pushes a new record. createdBy is the authenticated operator.
// @Tags         parties
// @Accept       json
// @Produce      json
// @Param        subtype path string true "Party bucket" Enums(supplier, buyer)
// @Param        Idempotency-Key header string false "Rejects a resubmitted form"
// @Param        request body masterapp.PartyRequest true "Party"
// @Success      201 {object} APIResponse[masterapp.PartyResponse]
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /parties/{subtype} [post]
func (h *PartyHandler) Create(c *gin.Context) {
	var req masterapp.PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	party, err := h.partyService.Create(c.Request.Context(), c.Param("subtype"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, party)
}

// Replace godoc
// @ID           replaceParty
// @Summary      Replace a party
// @Description  Full replace; fields left out of the body are cleared
// @Tags         parties
// @Accept       json
// @Produce      json
// @Param        subtype path string true "Party bucket" Enums(supplier, buyer)
// @Param        id path string true "Record id"
// @Param        request body masterapp.PartyRequest true "Party"
// @Success      200 {object} APIResponse[masterapp.PartyResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /parties/{subtype}/{id} [put]
func (h *PartyHandler) Replace(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	var req masterapp.PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	party, err := h.partyService.Replace(c.Request.Context(), c.Param("subtype"), uri.ID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, party)
}

// Delete godoc
// @ID           deleteParty
// @Summary      Delete a party
// @Tags         parties
// @Param        subtype path string true "Party bucket" Enums(supplier, buyer)
// @Param        id path string true "Record id"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /parties/{subtype}/{id} [delete]
func (h *PartyHandler) Delete(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	if err := h.partyService.Delete(c.Request.Context(), c.Param("subtype"), uri.ID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Refresh godoc
// @ID           refreshParties
// @Summary      Re-read a party bucket
// @Description  Evicts the cached bucket so the next read goes to the database
// @Tags         parties
// @Produce      json
// @Param        subtype path string true "Party bucket" Enums(supplier, buyer)
// @Success      200 {object} APIResponse[RefreshData]
// @Router       /parties/{subtype}/refresh [post]
func (h *PartyHandler) Refresh(c *gin.Context) {
	subtype := c.Param("subtype")
	if err := h.partyService.Refresh(c.Request.Context(), subtype); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, RefreshData{Bucket: record.NewBucket(master.PartyCollection, subtype).String()})
}

// Export godoc
// @ID           exportParties
// @Summary      Export parties to Excel
// @Tags         parties
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        subtype path string true "Party bucket" Enums(supplier, buyer)
// @Param        search query string false "Search term"
// @Success      200 {file} file
// @Router       /parties/{subtype}/export [get]
func (h *PartyHandler) Export(c *gin.Context) {
	var q dto.SearchRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	subtype := c.Param("subtype")
	sheet, err := h.partyService.Export(c.Request.Context(), subtype, q.Search)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.writeWorkbook(c, "parties-"+subtype, sheet)
}
