package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	importapp "github.com/erp/mfgdesk/internal/application/import"
	"github.com/erp/mfgdesk/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// maxImportFileSize bounds a single CSV upload
const maxImportFileSize = 10 << 20

// ImportHandler handles CSV uploads into the party and item masters
type ImportHandler struct {
	BaseHandler
	importService *importapp.MasterImportService
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(importService *importapp.MasterImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// RegisterRoutes mounts the import routes next to the master record routes
func (h *ImportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/parties/:subtype/import", h.ImportParties)
	rg.POST("/items/:subtype/import", h.ImportItems)
}

// ImportParties godoc
// @ID           importParties
// @Summary      Import parties from CSV
// @Description  Creates one party per row. Headers match the JSON field names or the export column labels; other columns are ignored. Rows that fail validation are reported and skipped.
// @Tags         parties
// @Accept       multipart/form-data
// @Produce      json
// @Param        subtype path string true "Party bucket" Enums(supplier, buyer)
// @Param        file formData file true "CSV file"
// @Success      200 {object} APIResponse[importapp.ImportResult]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      413 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /parties/{subtype}/import [post]
func (h *ImportHandler) ImportParties(c *gin.Context) {
	h.handleUpload(c, h.importService.ImportParties)
}

// ImportItems godoc
// @ID           importItems
// @Summary      Import items from CSV
// @Description  Creates one item per row. Rows with a blank item code get the next generated code.
// @Tags         items
// @Accept       multipart/form-data
// @Produce      json
// @Param        subtype path string true "Item bucket" Enums(purchase, sales)
// @Param        file formData file true "CSV file"
// @Success      200 {object} APIResponse[importapp.ImportResult]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      413 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /items/{subtype}/import [post]
func (h *ImportHandler) ImportItems(c *gin.Context) {
	h.handleUpload(c, h.importService.ImportItems)
}

func (h *ImportHandler) handleUpload(c *gin.Context, run func(context.Context, string, io.Reader) (*importapp.ImportResult, error)) {
	header, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			h.Error(c, dto.ErrCodeBadRequest, "A CSV file is required in the \"file\" field.")
			return
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.Error(c, dto.ErrCodeTooLarge, "The CSV file exceeds 10 MB.")
			return
		}
		h.Error(c, dto.ErrCodeBadRequest, "Could not read the uploaded file.")
		return
	}
	if header.Size > maxImportFileSize {
		h.Error(c, dto.ErrCodeTooLarge, "The CSV file exceeds 10 MB.")
		return
	}

	file, err := header.Open()
	if err != nil {
		h.Error(c, dto.ErrCodeBadRequest, "Could not read the uploaded file.")
		return
	}
	defer file.Close()

	result, err := run(c.Request.Context(), c.Param("subtype"), file)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
