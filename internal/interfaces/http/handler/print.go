package handler

import (
	"errors"
	"fmt"
	"net/http"

	printapp "github.com/erp/mfgdesk/internal/application/printing"
	"github.com/erp/mfgdesk/internal/domain/document"
	infra "github.com/erp/mfgdesk/internal/infrastructure/printing"
	"github.com/erp/mfgdesk/internal/interfaces/http/dto"
	"github.com/erp/mfgdesk/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

const invoicePageCSP = "default-src 'none'; style-src 'unsafe-inline'; frame-ancestors 'self'"

// PrintHandler serves printable sales invoices
type PrintHandler struct {
	BaseHandler
	printService *printapp.PrintService
}

// NewPrintHandler creates a new PrintHandler
func NewPrintHandler(printService *printapp.PrintService) *PrintHandler {
	return &PrintHandler{printService: printService}
}

// PrintQuery selects the output format
type PrintQuery struct {
	Format string `form:"format" binding:"omitempty,oneof=html pdf"`
}

// RegisterRoutes mounts the print route next to the document routes
func (h *PrintHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/documents/:kind/:id/print", h.Print)
}

// Print godoc
// @ID           printInvoice
// @Summary      Print a sales invoice
// @Description  format=html returns the printable page. Otherwise the invoice is rendered to PDF; when object storage is configured the PDF is archived and a presigned download link is returned instead of the file.
// @Tags         documents
// @Produce      application/pdf
// @Produce      text/html
// @Produce      json
// @Param        kind path string true "Document kind" Enums(sales-invoice)
// @Param        id path string true "Record id"
// @Param        format query string false "Output format" Enums(html, pdf)
// @Success      200 {object} APIResponse[printapp.InvoicePDF]
// @Failure      404 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /documents/{kind}/{id}/print [get]
func (h *PrintHandler) Print(c *gin.Context) {
	if c.Param("kind") != string(document.KindSalesInvoice) {
		h.Error(c, dto.ErrCodeNotFound, "Only sales invoices can be printed")
		return
	}
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	var q PrintQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindError(c, err)
		return
	}

	if q.Format == "html" {
		page, err := h.printService.InvoiceHTML(c.Request.Context(), uri.ID)
		if err != nil {
			h.handlePrintError(c, err)
			return
		}
		// the page carries its own inline styles
		c.Header("Content-Security-Policy", invoicePageCSP)
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
		return
	}

	pdf, err := h.printService.InvoicePDF(c.Request.Context(), uri.ID)
	if err != nil {
		h.handlePrintError(c, err)
		return
	}
	if pdf.Archived() {
		h.Success(c, pdf)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, pdf.Filename))
	c.Data(http.StatusOK, "application/pdf", pdf.Data)
}

func (h *PrintHandler) handlePrintError(c *gin.Context, err error) {
	var renderErr *infra.RenderError
	if errors.As(err, &renderErr) && renderErr.Code == infra.ErrCodeRenderTimeout {
		h.Error(c, dto.ErrCodeUnavailable, "The invoice took too long to render. Please try again.")
		return
	}
	h.HandleError(c, err)
}
