package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/erp/mfgdesk/internal/domain/document"
	"github.com/erp/mfgdesk/internal/domain/record"
	"github.com/erp/mfgdesk/internal/domain/shared"
	"github.com/erp/mfgdesk/internal/infrastructure/cache"
	"github.com/erp/mfgdesk/internal/infrastructure/export"
	"github.com/erp/mfgdesk/internal/infrastructure/logger"
	"github.com/erp/mfgdesk/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// ErrInvalidKind is returned for a path segment that names no document kind
var ErrInvalidKind = shared.NewDomainError("INVALID_KIND", "Unknown document kind")

// WriteObserver is told about every successful create, replace and delete
type WriteObserver interface {
	ObserveWrite(collection, subtype, op string)
}

// Option configures a DocumentService
type Option func(*DocumentService)

// WithClock sets the time source used for document timestamps
func WithClock(now func() time.Time) Option {
	return func(s *DocumentService) {
		s.now = now
	}
}

// WithWriteObserver registers an observer for document writes
func WithWriteObserver(observer WriteObserver) Option {
	return func(s *DocumentService) {
		s.observer = observer
	}
}

// WithLocker sets the lock that serializes writes to one kind, so document
// numbers are checked and stored as one step
func WithLocker(locker cache.Locker, ttl time.Duration) Option {
	return func(s *DocumentService) {
		s.locker = locker
		if ttl > 0 {
			s.lockTTL = ttl
		}
	}
}

// DocumentService handles every transactional document kind. Totals are
// recomputed from the lines on each save, and document numbers are unique
// within a kind.
type DocumentService struct {
	repo     record.Repository[document.Document]
	now      func() time.Time
	observer WriteObserver
	locker   cache.Locker
	lockTTL  time.Duration
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(repo record.Repository[document.Document], opts ...Option) *DocumentService {
	s := &DocumentService{repo: repo, now: time.Now, lockTTL: 5 * time.Second}
	for _, opt := range opts {
		opt(s)
	}
	if s.locker == nil {
		s.locker = cache.NewLocalLocker()
	}
	return s
}

// ParseKind validates a kind path segment
func ParseKind(kind string) (document.Kind, error) {
	k := document.Kind(kind)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

// List returns the documents of kind matching search (all when search is empty)
func (s *DocumentService) List(ctx context.Context, kind, search string) (_ []DocumentResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "document", "list", telemetry.AttrSubtype, kind)
	defer func() { telemetry.EndSpan(span, err) }()

	k, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.FindAll(ctx, string(k))
	if err != nil {
		return nil, err
	}

	out := make([]DocumentResponse, 0, len(entries))
	for i := range entries {
		if entries[i].Value.Matches(search) {
			out = append(out, toResponse(&entries[i]))
		}
	}
	span.SetAttributes(telemetry.Attributes(telemetry.AttrResultSize, len(out))...)
	return out, nil
}

// GetByID returns a single document
func (s *DocumentService) GetByID(ctx context.Context, kind, id string) (*DocumentResponse, error) {
	entry, err := s.get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(entry)
	return &resp, nil
}

// Get returns the stored document with full-precision amounts
func (s *DocumentService) Get(ctx context.Context, kind, id string) (*document.Document, error) {
	entry, err := s.get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	return &entry.Value, nil
}

func (s *DocumentService) get(ctx context.Context, kind, id string) (*record.Entry[document.Document], error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, string(k), id)
}

// Create builds, validates and stores a new document
func (s *DocumentService) Create(ctx context.Context, kind string, req DocumentRequest) (_ *DocumentResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "document", "create", telemetry.AttrSubtype, kind)
	defer func() { telemetry.EndSpan(span, err) }()

	k, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}
	doc, err := s.build(k, req)
	if err != nil {
		return nil, err
	}
	doc.CreatedBy = logger.GetUser(ctx)
	if err := doc.Prepare(s.now()); err != nil {
		return nil, err
	}

	unlock, err := s.lockKind(ctx, k)
	if err != nil {
		return nil, err
	}
	defer unlock()
	if err := s.checkNumber(ctx, k, doc.DocumentNumber, ""); err != nil {
		return nil, err
	}

	entry, err := s.repo.Create(ctx, string(k), *doc)
	if err != nil {
		return nil, err
	}
	s.observe(k, "create")
	logger.L(ctx).Info("Document created",
		zap.String("kind", string(k)),
		zap.String("id", entry.ID),
		zap.String("document_number", doc.DocumentNumber),
		zap.String("grand_total", doc.TotalAmount.String()),
	)
	resp := toResponse(entry)
	return &resp, nil
}

// Replace overwrites an existing document. Any status may be set; there are
// no transition rules.
func (s *DocumentService) Replace(ctx context.Context, kind, id string, req DocumentRequest) (_ *DocumentResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "document", "replace",
		telemetry.AttrSubtype, kind, telemetry.AttrRecordID, id)
	defer func() { telemetry.EndSpan(span, err) }()

	pathKind, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}
	unlock, err := s.lockKind(ctx, pathKind)
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := s.repo.FindByID(ctx, string(pathKind), id)
	if err != nil {
		return nil, err
	}
	k := existing.Value.Kind
	if k == "" {
		k = pathKind
	}

	doc, err := s.build(k, req)
	if err != nil {
		return nil, err
	}
	doc.CreatedAt = existing.Value.CreatedAt
	doc.CreatedBy = existing.Value.CreatedBy
	if err := doc.Prepare(s.now()); err != nil {
		return nil, err
	}
	if err := s.checkNumber(ctx, pathKind, doc.DocumentNumber, id); err != nil {
		return nil, err
	}

	entry, err := s.repo.Replace(ctx, string(k), id, *doc)
	if err != nil {
		return nil, err
	}
	s.observe(k, "replace")
	resp := toResponse(entry)
	return &resp, nil
}

func (s *DocumentService) lockKind(ctx context.Context, k document.Kind) (func(), error) {
	key := "bucket:" + k.Bucket().String()
	release, err := s.locker.Obtain(ctx, key, s.lockTTL)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			logger.L(ctx).Warn("Failed to release bucket lock", zap.String("key", key), zap.Error(err))
		}
	}, nil
}

// checkNumber rejects number when another document of kind k than exceptID
// carries it. Callers hold the kind's lock.
func (s *DocumentService) checkNumber(ctx context.Context, k document.Kind, number, exceptID string) error {
	entries, err := s.repo.FindAll(record.Fresh(ctx), string(k))
	if err != nil {
		return err
	}
	if record.FindByKey(entries, func(d *document.Document) string { return d.DocumentNumber }, number, exceptID) != nil {
		return shared.NewDuplicateKeyError("documentNumber", "Document number", number)
	}
	return nil
}

// Delete removes a document outright
func (s *DocumentService) Delete(ctx context.Context, kind, id string) (err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "document", "delete",
		telemetry.AttrSubtype, kind, telemetry.AttrRecordID, id)
	defer func() { telemetry.EndSpan(span, err) }()

	k, err := ParseKind(kind)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, string(k), id); err != nil {
		return err
	}
	s.observe(k, "delete")
	logger.L(ctx).Info("Document deleted", zap.String("kind", string(k)), zap.String("id", id))
	return nil
}

// Refresh drops the cached copy of the kind's bucket
func (s *DocumentService) Refresh(ctx context.Context, kind string) error {
	k, err := ParseKind(kind)
	if err != nil {
		return err
	}
	return s.repo.Refresh(ctx, string(k))
}

// Export returns the filtered list as a spreadsheet
func (s *DocumentService) Export(ctx context.Context, kind, search string) (*export.Sheet, error) {
	docs, err := s.List(ctx, kind, search)
	if err != nil {
		return nil, err
	}
	k := document.Kind(kind)
	party := k.CounterpartyLabel()
	if party == "" {
		party = "Counterparty"
	}

	sheet := &export.Sheet{
		Name: k.Label(),
		Columns: []export.Column{
			{Header: "Document No", Width: 18},
			{Header: "Date", Width: 12},
			{Header: party + " Code", Width: 14},
			{Header: party, Width: 28},
			{Header: "Status", Width: 16},
			{Header: "Items", Width: 8},
			{Header: "Subtotal", Width: 14},
			{Header: "Tax", Width: 12},
			{Header: "Discount", Width: 12},
			{Header: "Total", Width: 14},
		},
	}
	for _, d := range docs {
		sheet.AddRow(
			d.DocumentNumber,
			d.DocumentDate,
			d.CounterpartyCode,
			d.CounterpartyName,
			string(d.Status),
			d.Totals.ItemCount,
			d.Totals.Subtotal.InexactFloat64(),
			d.Totals.TotalTax.InexactFloat64(),
			d.Totals.Discount.InexactFloat64(),
			d.Totals.GrandTotal.InexactFloat64(),
		)
	}
	return sheet, nil
}

// build converts req to a document of kind k, building every line through
// document.NewLineItem. Line failures are reported as items[i].<field>.
func (s *DocumentService) build(k document.Kind, req DocumentRequest) (*document.Document, error) {
	doc := req.toDocument(k)

	var errs shared.FieldErrors
	for i, line := range req.Items {
		item, err := document.NewLineItem(k, line.input())
		if err != nil {
			var lineErrs shared.FieldErrors
			if errors.As(err, &lineErrs) {
				for _, fe := range lineErrs {
					errs.Add(&shared.FieldError{
						Field:   fmt.Sprintf("items[%d].%s", i, fe.Field),
						Code:    fe.Code,
						Message: fe.Message,
					})
				}
				continue
			}
			return nil, err
		}
		doc.Items = append(doc.Items, item)
	}
	if len(errs) > 0 {
		// Report header failures alongside the line failures.
		doc.ApplyDefaults()
		errs.Add(doc.Validate())
		return nil, errs
	}
	return doc, nil
}

func (s *DocumentService) observe(k document.Kind, op string) {
	if s.observer != nil {
		s.observer.ObserveWrite(document.Collection, string(k), op)
	}
}
