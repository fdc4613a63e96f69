package handler

import (
	docapp "github.com/erp/mfgdesk/internal/application/document"
	"github.com/erp/mfgdesk/internal/domain/document"
	"github.com/erp/mfgdesk/internal/domain/record"
	"github.com/erp/mfgdesk/internal/interfaces/http/dto"
	"github.com/erp/mfgdesk/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// DocumentHandler handles the transactional document endpoints
type DocumentHandler struct {
	BaseHandler
	documentService *docapp.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentService *docapp.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// RegisterRoutes mounts the document routes under /documents
func (h *DocumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/documents/:kind")
	g.GET("", h.List)
	g.GET("/export", h.Export)
	g.POST("", h.Create)
	g.POST("/refresh", h.Refresh)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Replace)
	g.DELETE("/:id", h.Delete)
}

// List godoc
// @ID           listDocuments
// @Summary      List documents of a kind
// @Tags         documents
// @Produce      json
// @Param        kind path string true "Document kind" Enums(indent, purchase-order, job-work-order, material-receipt, sales-invoice)
// @Param        search query string false "Search term"
// @Success      200 {object} APIResponse[[]docapp.DocumentResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /documents/{kind} [get]
func (h *DocumentHandler) List(c *gin.Context) {
	var q dto.SearchRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	docs, err := h.documentService.List(c.Request.Context(), c.Param("kind"), q.Search)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, docs, len(docs), q.Search)
}

// Get godoc
// @ID           getDocument
// @Summary      Get a document
// @Tags         documents
// @Produce      json
// @Param        kind path string true "Document kind"
// @Param        id path string true "Record id"
// @Success      200 {object} APIResponse[docapp.DocumentResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /documents/{kind}/{id} [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	doc, err := h.documentService.GetByID(c.Request.Context(), c.Param("kind"), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, doc)
}

// Create godoc
// @ID           createDocument
// @Summary      Create a document
// @Description  Line amounts, tax and totals are computed by the server. A document needs at least one line.
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        kind path string true "Document kind"
// @Param        Idempotency-Key header string false "Rejects a resubmitted form"
// @Param        request body docapp.DocumentRequest true "Document"
// @Success      201 {object} APIResponse[docapp.DocumentResponse]
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /documents/{kind} [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	var req docapp.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	doc, err := h.documentService.Create(c.Request.Context(), c.Param("kind"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, doc)
}

// Replace godoc
// @ID           replaceDocument
// @Summary      Replace a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        kind path string true "Document kind"
// @Param        id path string true "Record id"
// @Param        request body docapp.DocumentRequest true "Document"
// @Success      200 {object} APIResponse[docapp.DocumentResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /documents/{kind}/{id} [put]
func (h *DocumentHandler) Replace(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	var req docapp.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	doc, err := h.documentService.Replace(c.Request.Context(), c.Param("kind"), uri.ID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, doc)
}

// Delete godoc
// @ID           deleteDocument
// @Summary      Delete a document
// @Tags         documents
// @Param        kind path string true "Document kind"
// @Param        id path string true "Record id"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /documents/{kind}/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	if err := h.documentService.Delete(c.Request.Context(), c.Param("kind"), uri.ID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Refresh godoc
// @ID           refreshDocuments
// @Summary      Re-read a document bucket
// @Tags         documents
// @Produce      json
// @Param        kind path string true "Document kind"
// @Success      200 {object} APIResponse[RefreshData]
// @Router       /documents/{kind}/refresh [post]
func (h *DocumentHandler) Refresh(c *gin.Context) {
	kind := c.Param("kind")
	if err := h.documentService.Refresh(c.Request.Context(), kind); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, RefreshData{Bucket: record.NewBucket(document.Collection, kind).String()})
}

// Export godoc
// @ID           exportDocuments
// @Summary      Export documents to Excel
// @Tags         documents
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        kind path string true "Document kind"
// @Param        search query string false "Search term"
// @Success      200 {file} file
// @Router       /documents/{kind}/export [get]
func (h *DocumentHandler) Export(c *gin.Context) {
	var q dto.SearchRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	kind := c.Param("kind")
	sheet, err := h.documentService.Export(c.Request.Context(), kind, q.Search)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.writeWorkbook(c, kind, sheet)
}
