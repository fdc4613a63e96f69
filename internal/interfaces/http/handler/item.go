package handler

import (
	masterapp "github.com/erp/mfgdesk/internal/application/master"
	"github.com/erp/mfgdesk/internal/domain/master"
	"github.com/erp/mfgdesk/internal/domain/record"
	"github.com/erp/mfgdesk/internal/interfaces/http/dto"
	"github.com/erp/mfgdesk/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ItemHandler handles the item master endpoints
type ItemHandler struct {
	BaseHandler
	itemService *masterapp.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService *masterapp.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// RegisterRoutes mounts the item routes under /items
func (h *ItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/items")
	items.GET("/next-code", h.NextCode)

	g := items.Group("/:subtype")
	g.GET("", h.List)
	g.GET("/export", h.Export)
	g.POST("", h.Create)
	g.POST("/refresh", h.Refresh)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Replace)
	g.DELETE("/:id", h.Delete)
}

// NextCode godoc
// @ID           nextItemCode
// @Summary      Preview the next item code
// @Description  Returns IT/<financial year>/<sequence> without reserving it
// @Tags         items
// @Produce      json
// @Success      200 {object} APIResponse[masterapp.NextCodeResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /items/next-code [get]
func (h *ItemHandler) NextCode(c *gin.Context) {
	code, err := h.itemService.NextCode(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, code)
}

// List godoc
// @ID           listItems
// @Summary      List items
// @Tags         items
// @Produce      json
// @Param        subtype path string true "Item bucket" Enums(purchase, sales)
// @Param        search query string false "Search term"
// @Success      200 {object} APIResponse[[]masterapp.ItemResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /items/{subtype} [get]
func (h *ItemHandler) List(c *gin.Context) {
	var q dto.SearchRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	items, err := h.itemService.List(c.Request.Context(), c.Param("subtype"), q.Search)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, items, len(items), q.Search)
}

// Get godoc
// @ID           getItem
// @Summary      Get an item
// @Tags         items
// @Produce      json
// @Param        subtype path string true "Item bucket" Enums(purchase, sales)
// @Param        id path string true "Record id"
// @Success      200 {object} APIResponse[masterapp.ItemResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /items/{subtype}/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	item, err := h.itemService.GetByID(c.Request.Context(), c.Param("subtype"), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Create godoc
// @ID           createItem
// @Summary      Create an item
// @Description  An empty itemCode is filled with the next generated code
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        subtype path string true "Item bucket" Enums(purchase, sales)
// @Param        Idempotency-Key header string false "Rejects a resubmitted form"
// @Param        request body masterapp.ItemRequest true "Item"
// @Success      201 {object} APIResponse[masterapp.ItemResponse]
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /items/{subtype} [post]
func (h *ItemHandler) Create(c *gin.Context) {
	var req masterapp.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	item, err := h.itemService.Create(c.Request.Context(), c.Param("subtype"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// Replace godoc
// @ID           replaceItem
// @Summary      Replace an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        subtype path string true "Item bucket" Enums(purchase, sales)
// @Param        id path string true "Record id"
// @Param        request body masterapp.ItemRequest true "Item"
// @Success      200 {object} APIResponse[masterapp.ItemResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /items/{subtype}/{id} [put]
func (h *ItemHandler) Replace(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	var req masterapp.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	item, err := h.itemService.Replace(c.Request.Context(), c.Param("subtype"), uri.ID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete godoc
// @ID           deleteItem
// @Summary      Delete an item
// @Tags         items
// @Param        subtype path string true "Item bucket" Enums(purchase, sales)
// @Param        id path string true "Record id"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /items/{subtype}/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	if err := h.itemService.Delete(c.Request.Context(), c.Param("subtype"), uri.ID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Refresh godoc
// @ID           refreshItems
// @Summary      Re-read an item bucket
// @Tags         items
// @Produce      json
// @Param        subtype path string true "Item bucket" Enums(purchase, sales)
// @Success      200 {object} APIResponse[RefreshData]
// @Router       /items/{subtype}/refresh [post]
func (h *ItemHandler) Refresh(c *gin.Context) {
	subtype := c.Param("subtype")
	if err := h.itemService.Refresh(c.Request.Context(), subtype); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, RefreshData{Bucket: record.NewBucket(master.ItemCollection, subtype).String()})
}

// Export godoc
// @ID           exportItems
// @Summary      Export items to Excel
// @Tags         items
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        subtype path string true "Item bucket" Enums(purchase, sales)
// @Param        search query string false "Search term"
// @Success      200 {file} file
// @Router       /items/{subtype}/export [get]
func (h *ItemHandler) Export(c *gin.Context) {
	var q dto.SearchRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	subtype := c.Param("subtype")
	sheet, err := h.itemService.Export(c.Request.Context(), subtype, q.Search)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.writeWorkbook(c, "items-"+subtype, sheet)
}
