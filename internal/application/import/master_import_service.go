// Package importapp loads party and item master records in bulk from CSV.
package importapp

import (
	"context"
	"errors"
	"io"

	masterapp "github.com/erp/mfgdesk/internal/application/master"
	"github.com/erp/mfgdesk/internal/domain/master"
	"github.com/erp/mfgdesk/internal/domain/shared"
	csvimport "github.com/erp/mfgdesk/internal/infrastructure/import"
	"github.com/erp/mfgdesk/internal/infrastructure/logger"
	"github.com/erp/mfgdesk/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// PartyCreator stores one party
type PartyCreator interface {
	Create(ctx context.Context, subtype string, req masterapp.PartyRequest) (*masterapp.PartyResponse, error)
}

// ItemCreator stores one item
type ItemCreator interface {
	Create(ctx context.Context, subtype string, req masterapp.ItemRequest) (*masterapp.ItemResponse, error)
}

// ImportResult summarizes one upload
type ImportResult struct {
	TotalRows      int                  `json:"totalRows"`
	ImportedRows   int                  `json:"importedRows"`
	ErrorRows      int                  `json:"errorRows"`
	Errors         []csvimport.RowError `json:"errors"`
	IsTruncated    bool                 `json:"isTruncated,omitempty"`
	TotalErrors    int                  `json:"totalErrors"`
	IgnoredColumns []string             `json:"ignoredColumns,omitempty"`
}

// MasterImportService creates master records row by row from CSV uploads.
// Rows are stored as they pass; a row rejected by validation does not stop
// the rest. A store failure aborts the upload, leaving earlier rows in place.
type MasterImportService struct {
	parties   PartyCreator
	items     ItemCreator
	maxRows   int
	maxErrors int
}

// Option configures a MasterImportService
type Option func(*MasterImportService)

// WithMaxRows caps the data rows of one upload
func WithMaxRows(n int) Option {
	return func(s *MasterImportService) { s.maxRows = n }
}

// WithMaxErrors caps the row errors returned; the rest are only counted
func WithMaxErrors(n int) Option {
	return func(s *MasterImportService) { s.maxErrors = n }
}

// NewMasterImportService creates a new MasterImportService
func NewMasterImportService(parties PartyCreator, items ItemCreator, opts ...Option) *MasterImportService {
	s := &MasterImportService{
		parties:   parties,
		items:     items,
		maxRows:   csvimport.DefaultMaxRows,
		maxErrors: 100,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ImportParties creates one party per CSV row in the given bucket
func (s *MasterImportService) ImportParties(ctx context.Context, subtype string, r io.Reader) (_ *ImportResult, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "import", "parties", telemetry.AttrSubtype, subtype)
	defer func() { telemetry.EndSpan(span, err) }()

	if !master.PartySubtype(subtype).IsValid() {
		return nil, masterapp.ErrInvalidSubtype
	}
	result, err := importRows(ctx, s, r, func(ctx context.Context, req masterapp.PartyRequest) error {
		_, err := s.parties.Create(ctx, subtype, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	logImport(ctx, master.PartyCollection, subtype, result)
	return result, nil
}

// ImportItems creates one item per CSV row in the given bucket.
// Rows without an item code get the next generated one.
func (s *MasterImportService) ImportItems(ctx context.Context, subtype string, r io.Reader) (_ *ImportResult, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "import", "items", telemetry.AttrSubtype, subtype)
	defer func() { telemetry.EndSpan(span, err) }()

	if !master.ItemSubtype(subtype).IsValid() {
		return nil, masterapp.ErrInvalidSubtype
	}
	result, err := importRows(ctx, s, r, func(ctx context.Context, req masterapp.ItemRequest) error {
		_, err := s.items.Create(ctx, subtype, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	logImport(ctx, master.ItemCollection, subtype, result)
	return result, nil
}

func importRows[T any](ctx context.Context, s *MasterImportService, r io.Reader, create func(context.Context, T) error) (*ImportResult, error) {
	parser, err := csvimport.NewParser(r, csvimport.WithMaxRows(s.maxRows))
	if err != nil {
		return nil, toDomainError(err)
	}
	errs := csvimport.NewErrorCollection(s.maxErrors)
	rows, err := parser.ReadAll(errs)
	if err != nil {
		return nil, toDomainError(err)
	}
	mapping := csvimport.NewMapping[T](parser.Headers())

	result := &ImportResult{
		TotalRows:      len(rows) + errs.TotalCount(),
		ErrorRows:      errs.TotalCount(),
		IgnoredColumns: mapping.Ignored(),
	}

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var req T
		if decodeErrs := mapping.Decode(row, &req); len(decodeErrs) > 0 {
			for _, e := range decodeErrs {
				errs.Add(e)
			}
			result.ErrorRows++
			continue
		}

		err := create(ctx, req)
		if err == nil {
			result.ImportedRows++
			continue
		}
		var dup *shared.DuplicateKeyError
		if errors.As(err, &dup) {
			errs.Add(csvimport.RowError{Row: row.Line, Column: dup.Field, Code: shared.ErrAlreadyExists.Code, Message: dup.Error()})
			result.ErrorRows++
			continue
		}
		var fieldErrs shared.FieldErrors
		fieldErrs.Add(err)
		if len(fieldErrs) == 0 {
			return nil, err
		}
		for _, fe := range fieldErrs {
			errs.Add(csvimport.RowError{Row: row.Line, Column: fe.Field, Code: fe.Code, Message: fe.Message})
		}
		result.ErrorRows++
	}

	result.Errors = errs.Errors()
	result.IsTruncated = errs.IsTruncated()
	result.TotalErrors = errs.TotalCount()
	return result, nil
}

// Import error codes
const (
	CodeInvalidFile = "INVALID_IMPORT_FILE"
	CodeTooManyRows = "IMPORT_TOO_LARGE"
)

func toDomainError(err error) error {
	switch {
	case errors.Is(err, csvimport.ErrTooManyRows):
		return shared.NewDomainError(CodeTooManyRows, err.Error())
	case errors.Is(err, csvimport.ErrEmptyFile),
		errors.Is(err, csvimport.ErrInvalidEncoding),
		errors.Is(err, csvimport.ErrMissingHeader),
		errors.Is(err, csvimport.ErrNoDataRows):
		return shared.NewDomainError(CodeInvalidFile, err.Error())
	}
	return err
}

func logImport(ctx context.Context, collection, subtype string, result *ImportResult) {
	logger.L(ctx).Info("CSV import finished",
		zap.String("collection", collection),
		zap.String("subtype", subtype),
		zap.Int("total_rows", result.TotalRows),
		zap.Int("imported_rows", result.ImportedRows),
		zap.Int("error_rows", result.ErrorRows),
		zap.Strings("ignored_columns", result.IgnoredColumns),
	)
}
