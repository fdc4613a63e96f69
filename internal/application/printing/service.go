package printing

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/erp/mfgdesk/internal/domain/document"
	"github.com/erp/mfgdesk/internal/domain/shared"
	infra "github.com/erp/mfgdesk/internal/infrastructure/printing"
	"github.com/erp/mfgdesk/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// ErrPrintingDisabled is returned when no PDF renderer is configured
var ErrPrintingDisabled = shared.NewDomainError("PRINTING_DISABLED", "PDF printing is not enabled")

// DocumentReader loads a stored document with full-precision amounts
type DocumentReader interface {
	Get(ctx context.Context, kind, id string) (*document.Document, error)
}

// ObjectStorage archives rendered PDFs and hands out download links
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	DownloadURL(ctx context.Context, key string) (string, time.Time, error)
}

// PrintService renders sales invoices
type PrintService struct {
	documents DocumentReader
	printer   *infra.InvoicePrinter
	storage   ObjectStorage
	logger    *zap.Logger
}

// NewPrintService creates a new PrintService. storage may be nil, in which
// case PDFs are returned inline only.
func NewPrintService(documents DocumentReader, printer *infra.InvoicePrinter, storage ObjectStorage, logger *zap.Logger) *PrintService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PrintService{
		documents: documents,
		printer:   printer,
		storage:   storage,
		logger:    logger,
	}
}

// InvoiceHTML renders the invoice page for preview
func (s *PrintService) InvoiceHTML(ctx context.Context, id string) (string, error) {
	doc, err := s.documents.Get(ctx, string(document.KindSalesInvoice), id)
	if err != nil {
		return "", err
	}
	return s.printer.HTML(doc)
}

// InvoicePDF renders the invoice to PDF and, with storage configured,
// archives it under invoices/<id>/<number>.pdf.
func (s *PrintService) InvoicePDF(ctx context.Context, id string) (_ *InvoicePDF, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "print", "invoice_pdf", telemetry.AttrRecordID, id)
	defer func() { telemetry.EndSpan(span, err) }()

	doc, err := s.documents.Get(ctx, string(document.KindSalesInvoice), id)
	if err != nil {
		return nil, err
	}

	result, err := s.printer.PDF(ctx, doc)
	if err != nil {
		var renderErr *infra.RenderError
		if errors.As(err, &renderErr) && renderErr.Code == infra.ErrCodeRendererDisabled {
			return nil, ErrPrintingDisabled
		}
		return nil, err
	}

	out := &InvoicePDF{
		Filename:  invoiceFilename(doc),
		PageCount: result.PageCount,
		SizeBytes: len(result.PDFData),
		Data:      result.PDFData,
	}
	s.logger.Info("Invoice rendered",
		zap.String("id", id),
		zap.String("document_number", doc.DocumentNumber),
		zap.Int("pages", result.PageCount),
		zap.Duration("duration", result.RenderDuration),
	)

	if s.storage == nil {
		return out, nil
	}
	key := fmt.Sprintf("invoices/%s/%s", id, out.Filename)
	if err := s.storage.Upload(ctx, key, result.PDFData, "application/pdf"); err != nil {
		return nil, fmt.Errorf("failed to archive invoice: %w", err)
	}
	url, expiresAt, err := s.storage.DownloadURL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to presign invoice: %w", err)
	}
	out.StorageKey = key
	out.DownloadURL = url
	out.ExpiresAt = expiresAt
	return out, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func invoiceFilename(doc *document.Document) string {
	name := unsafeFilenameChars.ReplaceAllString(doc.DocumentNumber, "-")
	if name == "" || name == "-" {
		name = "invoice"
	}
	return name + ".pdf"
}
