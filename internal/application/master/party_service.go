package master

import (
	"context"

	"github.com/erp/mfgdesk/internal/domain/master"
	"github.com/erp/mfgdesk/internal/domain/record"
	"github.com/erp/mfgdesk/internal/domain/shared"
	"github.com/erp/mfgdesk/internal/infrastructure/export"
	"github.com/erp/mfgdesk/internal/infrastructure/logger"
	"github.com/erp/mfgdesk/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// PartyService handles supplier and buyer records
type PartyService struct {
	repo record.Repository[master.Party]
	opts serviceOptions
}

// NewPartyService creates a new PartyService
func NewPartyService(repo record.Repository[master.Party], opts ...Option) *PartyService {
	return &PartyService{repo: repo, opts: newServiceOptions(opts)}
}

func parsePartySubtype(subtype string) (master.PartySubtype, error) {
	st := master.PartySubtype(subtype)
	if !st.IsValid() {
		return "", ErrInvalidSubtype
	}
	return st, nil
}

// List returns the parties of subtype matching search (all when search is empty)
func (s *PartyService) List(ctx context.Context, subtype, search string) (_ []PartyResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "party", "list", telemetry.AttrSubtype, subtype)
	defer func() { telemetry.EndSpan(span, err) }()

	st, err := parsePartySubtype(subtype)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.FindAll(ctx, string(st))
	if err != nil {
		return nil, err
	}

	out := make([]PartyResponse, 0, len(entries))
	for i := range entries {
		if entries[i].Value.Matches(search) {
			out = append(out, s.toResponse(&entries[i]))
		}
	}
	span.SetAttributes(telemetry.Attributes(telemetry.AttrResultSize, len(out))...)
	return out, nil
}

// GetByID returns a single party
func (s *PartyService) GetByID(ctx context.Context, subtype, id string) (*PartyResponse, error) {
	st, err := parsePartySubtype(subtype)
	if err != nil {
		return nil, err
	}
	entry, err := s.repo.FindByID(ctx, string(st), id)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(entry)
	return &resp, nil
}

// Create validates and stores a new party under a generated id.
// createdBy is taken from the authenticated user when there is one.
func (s *PartyService) Create(ctx context.Context, subtype string, req PartyRequest) (_ *PartyResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "party", "create", telemetry.AttrSubtype, subtype)
	defer func() { telemetry.EndSpan(span, err) }()

	st, err := parsePartySubtype(subtype)
	if err != nil {
		return nil, err
	}
	party := req.toParty()
	party.CreatedBy = logger.GetUser(ctx)
	if err := party.Prepare(s.opts.now()); err != nil {
		return nil, err
	}

	unlock, err := s.opts.lockBucket(ctx, master.PartyCollection, string(st))
	if err != nil {
		return nil, err
	}
	defer unlock()
	if err := s.checkCode(ctx, string(st), party.PartyCode, ""); err != nil {
		return nil, err
	}

	entry, err := s.repo.Create(ctx, string(st), party)
	if err != nil {
		return nil, err
	}
	s.opts.observe(master.PartyCollection, string(st), "create")
	logger.L(ctx).Info("Party created",
		zap.String("subtype", string(st)),
		zap.String("id", entry.ID),
		zap.String("party_code", party.PartyCode),
	)
	resp := s.toResponse(entry)
	return &resp, nil
}

// Replace overwrites an existing party with req. The original createdAt and
// createdBy are kept.
func (s *PartyService) Replace(ctx context.Context, subtype, id string, req PartyRequest) (_ *PartyResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "party", "replace",
		telemetry.AttrSubtype, subtype, telemetry.AttrRecordID, id)
	defer func() { telemetry.EndSpan(span, err) }()

	st, err := parsePartySubtype(subtype)
	if err != nil {
		return nil, err
	}
	unlock, err := s.opts.lockBucket(ctx, master.PartyCollection, string(st))
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := s.repo.FindByID(ctx, string(st), id)
	if err != nil {
		return nil, err
	}

	party := req.toParty()
	party.CreatedAt = existing.Value.CreatedAt
	party.CreatedBy = existing.Value.CreatedBy
	if err := party.Prepare(s.opts.now()); err != nil {
		return nil, err
	}
	if err := s.checkCode(ctx, string(st), party.PartyCode, id); err != nil {
		return nil, err
	}

	entry, err := s.repo.Replace(ctx, string(st), id, party)
	if err != nil {
		return nil, err
	}
	s.opts.observe(master.PartyCollection, string(st), "replace")
	resp := s.toResponse(entry)
	return &resp, nil
}

// checkCode rejects code when another party of the bucket than exceptID has it.
// Callers hold the bucket lock.
func (s *PartyService) checkCode(ctx context.Context, subtype, code, exceptID string) error {
	entries, err := s.repo.FindAll(record.Fresh(ctx), subtype)
	if err != nil {
		return err
	}
	if record.FindByKey(entries, func(p *master.Party) string { return p.PartyCode }, code, exceptID) != nil {
		return shared.NewDuplicateKeyError("partyCode", "Party code", code)
	}
	return nil
}

// Delete removes a party outright
func (s *PartyService) Delete(ctx context.Context, subtype, id string) (err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "party", "delete",
		telemetry.AttrSubtype, subtype, telemetry.AttrRecordID, id)
	defer func() { telemetry.EndSpan(span, err) }()

	st, err := parsePartySubtype(subtype)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, string(st), id); err != nil {
		return err
	}
	s.opts.observe(master.PartyCollection, string(st), "delete")
	logger.L(ctx).Info("Party deleted", zap.String("subtype", string(st)), zap.String("id", id))
	return nil
}

// Refresh drops the cached copy of the subtype bucket
func (s *PartyService) Refresh(ctx context.Context, subtype string) error {
	st, err := parsePartySubtype(subtype)
	if err != nil {
		return err
	}
	return s.repo.Refresh(ctx, string(st))
}

// CountActive returns the number of active parties across both buckets
func (s *PartyService) CountActive(ctx context.Context) (int, error) {
	total := 0
	for _, st := range master.PartySubtypes() {
		entries, err := s.repo.FindAll(ctx, string(st))
		if err != nil {
			return 0, err
		}
		for i := range entries {
			if entries[i].Value.IsActive() {
				total++
			}
		}
	}
	return total, nil
}

// Export returns the filtered list as a spreadsheet
func (s *PartyService) Export(ctx context.Context, subtype, search string) (*export.Sheet, error) {
	parties, err := s.List(ctx, subtype, search)
	if err != nil {
		return nil, err
	}

	sheet := &export.Sheet{
		Name: "Parties",
		Columns: []export.Column{
			{Header: "Party Code", Width: 14},
			{Header: "Party Name", Width: 30},
			{Header: "Category", Width: 14},
			{Header: "Party Type", Width: 12},
			{Header: "Contact Person", Width: 20},
			{Header: "Contact Number", Width: 16},
			{Header: "Email", Width: 26},
			{Header: "GSTIN", Width: 18},
			{Header: "PAN No", Width: 12},
			{Header: "Credit Limit", Width: 14},
			{Header: "Credit Period", Width: 12},
			{Header: "Status", Width: 10},
		},
	}
	for _, p := range parties {
		sheet.AddRow(
			p.PartyCode,
			p.PartyName,
			p.Category,
			p.PartyType,
			p.ContactPerson,
			p.ContactNumberE164,
			p.Email,
			p.GSTIN,
			p.PANNo,
			p.CreditLimit.InexactFloat64(),
			p.CreditPeriod,
			p.Status,
		)
	}
	return sheet, nil
}
