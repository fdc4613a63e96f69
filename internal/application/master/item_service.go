package master

import (
	"context"
	"strings"

	"github.com/erp/mfgdesk/internal/domain/master"
	"github.com/erp/mfgdesk/internal/domain/record"
	"github.com/erp/mfgdesk/internal/domain/shared"
	"github.com/erp/mfgdesk/internal/infrastructure/export"
	"github.com/erp/mfgdesk/internal/infrastructure/logger"
	"github.com/erp/mfgdesk/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

const itemCodeLockKey = "item-code"

// ItemService handles purchase and sales item records
type ItemService struct {
	repo record.Repository[master.Item]
	opts serviceOptions
}

// NewItemService creates a new ItemService
func NewItemService(repo record.Repository[master.Item], opts ...Option) *ItemService {
	return &ItemService{repo: repo, opts: newServiceOptions(opts)}
}

func parseItemSubtype(subtype string) (master.ItemSubtype, error) {
	st := master.ItemSubtype(subtype)
	if !st.IsValid() {
		return "", ErrInvalidSubtype
	}
	return st, nil
}

// List returns the items of subtype matching search (all when search is empty)
func (s *ItemService) List(ctx context.Context, subtype, search string) (_ []ItemResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "item", "list", telemetry.AttrSubtype, subtype)
	defer func() { telemetry.EndSpan(span, err) }()

	st, err := parseItemSubtype(subtype)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.FindAll(ctx, string(st))
	if err != nil {
		return nil, err
	}

	out := make([]ItemResponse, 0, len(entries))
	for i := range entries {
		if entries[i].Value.Matches(search) {
			out = append(out, toItemResponse(&entries[i]))
		}
	}
	span.SetAttributes(telemetry.Attributes(telemetry.AttrResultSize, len(out))...)
	return out, nil
}

// GetByID returns a single item
func (s *ItemService) GetByID(ctx context.Context, subtype, id string) (*ItemResponse, error) {
	st, err := parseItemSubtype(subtype)
	if err != nil {
		return nil, err
	}
	entry, err := s.repo.FindByID(ctx, string(st), id)
	if err != nil {
		return nil, err
	}
	resp := toItemResponse(entry)
	return &resp, nil
}

// NextCode previews the code the next generated item would get.
// The code is not reserved.
func (s *ItemService) NextCode(ctx context.Context) (*NextCodeResponse, error) {
	code, err := s.nextCode(ctx)
	if err != nil {
		return nil, err
	}
	return &NextCodeResponse{ItemCode: code, FinancialYear: master.FinancialYear(s.opts.now())}, nil
}

// nextCode scans both item buckets; sequences are shared between them.
// The buckets are read past the cache.
func (s *ItemService) nextCode(ctx context.Context) (string, error) {
	ctx = record.Fresh(ctx)
	var codes []string
	for _, st := range master.ItemSubtypes() {
		entries, err := s.repo.FindAll(ctx, string(st))
		if err != nil {
			return "", err
		}
		for i := range entries {
			codes = append(codes, entries[i].Value.ItemCode)
		}
	}
	return master.NextItemCode(codes, s.opts.now()), nil
}

// Create validates and stores a new item. When req carries no item code the
// next code is allocated under the item code lock, which is held until the
// item is stored so concurrent creates never share a sequence. An item code
// already used in the bucket is rejected.
func (s *ItemService) Create(ctx context.Context, subtype string, req ItemRequest) (_ *ItemResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "item", "create", telemetry.AttrSubtype, subtype)
	defer func() { telemetry.EndSpan(span, err) }()

	st, err := parseItemSubtype(subtype)
	if err != nil {
		return nil, err
	}
	item := req.toItem()

	if strings.TrimSpace(item.ItemCode) == "" {
		release, err := s.opts.locker.Obtain(ctx, itemCodeLockKey, s.opts.lockTTL)
		if err != nil {
			return nil, err
		}
		defer func() {
			if rerr := release(context.WithoutCancel(ctx)); rerr != nil {
				logger.L(ctx).Warn("Failed to release item code lock", zap.Error(rerr))
			}
		}()

		if item.ItemCode, err = s.nextCode(ctx); err != nil {
			return nil, err
		}
	}

	if err := item.Prepare(s.opts.now()); err != nil {
		return nil, err
	}

	unlock, err := s.opts.lockBucket(ctx, master.ItemCollection, string(st))
	if err != nil {
		return nil, err
	}
	defer unlock()
	if err := s.checkCode(ctx, string(st), item.ItemCode, ""); err != nil {
		return nil, err
	}

	entry, err := s.repo.Create(ctx, string(st), item)
	if err != nil {
		return nil, err
	}
	s.opts.observe(master.ItemCollection, string(st), "create")
	logger.L(ctx).Info("Item created",
		zap.String("subtype", string(st)),
		zap.String("id", entry.ID),
		zap.String("item_code", item.ItemCode),
	)
	resp := toItemResponse(entry)
	return &resp, nil
}

// Replace overwrites an existing item with req, keeping its createdAt
func (s *ItemService) Replace(ctx context.Context, subtype, id string, req ItemRequest) (_ *ItemResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "item", "replace",
		telemetry.AttrSubtype, subtype, telemetry.AttrRecordID, id)
	defer func() { telemetry.EndSpan(span, err) }()

	st, err := parseItemSubtype(subtype)
	if err != nil {
		return nil, err
	}
	unlock, err := s.opts.lockBucket(ctx, master.ItemCollection, string(st))
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := s.repo.FindByID(ctx, string(st), id)
	if err != nil {
		return nil, err
	}

	item := req.toItem()
	item.CreatedAt = existing.Value.CreatedAt
	if err := item.Prepare(s.opts.now()); err != nil {
		return nil, err
	}
	if err := s.checkCode(ctx, string(st), item.ItemCode, id); err != nil {
		return nil, err
	}
	entry, err := s.repo.Replace(ctx, string(st), id, item)
	if err != nil {
		return nil, err
	}
	s.opts.observe(master.ItemCollection, string(st), "replace")
	resp := toItemResponse(entry)
	return &resp, nil
}

// checkCode rejects code when another item of the bucket than exceptID has it.
// Callers hold the bucket lock.
func (s *ItemService) checkCode(ctx context.Context, subtype, code, exceptID string) error {
	entries, err := s.repo.FindAll(record.Fresh(ctx), subtype)
	if err != nil {
		return err
	}
	if record.FindByKey(entries, func(it *master.Item) string { return it.ItemCode }, code, exceptID) != nil {
		return shared.NewDuplicateKeyError("itemCode", "Item code", code)
	}
	return nil
}

// Delete removes an item outright
func (s *ItemService) Delete(ctx context.Context, subtype, id string) (err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "item", "delete",
		telemetry.AttrSubtype, subtype, telemetry.AttrRecordID, id)
	defer func() { telemetry.EndSpan(span, err) }()

	st, err := parseItemSubtype(subtype)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, string(st), id); err != nil {
		return err
	}
	s.opts.observe(master.ItemCollection, string(st), "delete")
	logger.L(ctx).Info("Item deleted", zap.String("subtype", string(st)), zap.String("id", id))
	return nil
}

// Refresh drops the cached copy of the subtype bucket
func (s *ItemService) Refresh(ctx context.Context, subtype string) error {
	st, err := parseItemSubtype(subtype)
	if err != nil {
		return err
	}
	return s.repo.Refresh(ctx, string(st))
}

// Count returns the number of items across both buckets
func (s *ItemService) Count(ctx context.Context) (int, error) {
	total := 0
	for _, st := range master.ItemSubtypes() {
		entries, err := s.repo.FindAll(ctx, string(st))
		if err != nil {
			return 0, err
		}
		total += len(entries)
	}
	return total, nil
}

// Export returns the filtered list as a spreadsheet
func (s *ItemService) Export(ctx context.Context, subtype, search string) (*export.Sheet, error) {
	items, err := s.List(ctx, subtype, search)
	if err != nil {
		return nil, err
	}

	sheet := &export.Sheet{
		Name: "Items",
		Columns: []export.Column{
			{Header: "Item Code", Width: 22},
			{Header: "Item Name", Width: 30},
			{Header: "Item Type", Width: 16},
			{Header: "Machine", Width: 16},
			{Header: "Group", Width: 14},
			{Header: "UOM", Width: 12},
			{Header: "HSN Code", Width: 10},
			{Header: "Lead Time (days)", Width: 10},
			{Header: "Price", Width: 12},
			{Header: "Currency", Width: 8},
			{Header: "Tax %", Width: 8},
		},
	}
	for _, it := range items {
		var leadTime, price, tax any
		if it.LeadTime != nil {
			leadTime = *it.LeadTime
		}
		if it.Price != nil {
			price = it.Price.InexactFloat64()
		}
		if it.Tax != nil {
			tax = it.Tax.InexactFloat64()
		}
		sheet.AddRow(
			it.ItemCode,
			it.ItemName,
			it.ItemType,
			it.MachineName,
			it.ItemGroup,
			it.UOM,
			it.HSNCode,
			leadTime,
			price,
			it.Currency,
			tax,
		)
	}
	return sheet, nil
}
