package master

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/erp/mfgdesk/internal/domain/master"
	"github.com/erp/mfgdesk/internal/domain/record"
	"github.com/erp/mfgdesk/internal/domain/shared"
	"github.com/erp/mfgdesk/internal/infrastructure/logger"
	"github.com/erp/mfgdesk/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validPartyRequest() PartyRequest {
	limit := decimal.NewFromInt(500000)
	return PartyRequest{
		PartyCode:     "SUP-001",
		PartyName:     "Acme Metals",
		Category:      "Manufacturer",
		PartyType:     "Supplier",
		ContactPerson: "R. Kumar",
		ContactNumber: "9876543210",
		Email:         "sales@acme.in",
		GSTIN:         "27aapfu0939f1zv",
		CreditLimit:   &limit,
	}
}

func newPartyService(t *testing.T, observer WriteObserver) *PartyService {
	t.Helper()
	repo := persistence.NewRecordRepository[master.Party](newRecordStore(t), master.PartyCollection)
	opts := []Option{WithClock(func() time.Time { return fixedNow })}
	if observer != nil {
		opts = append(opts, WithWriteObserver(observer))
	}
	return NewPartyService(repo, opts...)
}

func TestPartyService_Create(t *testing.T) {
	observer := &recordingObserver{}
	svc := newPartyService(t, observer)
	ctx := logger.WithUser(context.Background(), "priya")

	resp, err := svc.Create(ctx, "supplier", validPartyRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "supplier", resp.Subtype)
	assert.Equal(t, "27AAPFU0939F1ZV", resp.GSTIN)
	assert.Equal(t, "Active", resp.Status)
	assert.Equal(t, "+919876543210", resp.ContactNumberE164)
	assert.Equal(t, "priya", resp.CreatedBy)
	assert.True(t, fixedNow.Equal(resp.CreatedAt))
	assert.Equal(t, []string{"partyMaster/supplier:create"}, observer.writes)

	got, err := svc.GetByID(ctx, "supplier", resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Metals", got.PartyName)
	assert.True(t, decimal.NewFromInt(500000).Equal(got.CreditLimit))
}

func TestPartyService_Create_ValidationFailures(t *testing.T) {
	svc := newPartyService(t, nil)

	req := validPartyRequest()
	req.ContactNumber = "98765"
	req.PANNo = "bad"
	req.Category = ""

	_, err := svc.Create(context.Background(), "supplier", req)
	require.Error(t, err)

	var fieldErrs shared.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, "Contact number must be 10 digits.", fieldErrs.Lookup("contactNumber").Message)
	assert.Equal(t, "Invalid PAN number.", fieldErrs.Lookup("panNo").Message)
	assert.Equal(t, "Category is required.", fieldErrs.Lookup("category").Message)
	assert.Equal(t, shared.CodeRequiredFieldMissing, fieldErrs.Code())

	list, err := svc.List(context.Background(), "supplier", "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPartyService_InvalidSubtype(t *testing.T) {
	svc := newPartyService(t, nil)

	_, err := svc.Create(context.Background(), "vendor", validPartyRequest())
	assert.ErrorIs(t, err, ErrInvalidSubtype)
	_, err = svc.List(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidSubtype)
}

func TestPartyService_ListSearch(t *testing.T) {
	svc := newPartyService(t, nil)
	ctx := context.Background()
	faker := gofakeit.New(42)

	for i := 0; i < 5; i++ {
		req := validPartyRequest()
		req.PartyCode = fmt.Sprintf("BUY-%04d", i+1)
		req.PartyName = faker.Company()
		req.Email = ""
		req.GSTIN = ""
		_, err := svc.Create(ctx, "buyer", req)
		require.NoError(t, err)
	}
	req := validPartyRequest()
	req.PartyName = "Zenith Packaging"
	req.Category = "Job Work"
	_, err := svc.Create(ctx, "buyer", req)
	require.NoError(t, err)

	all, err := svc.List(ctx, "buyer", "")
	require.NoError(t, err)
	assert.Len(t, all, 6)

	found, err := svc.List(ctx, "buyer", "zenith")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Zenith Packaging", found[0].PartyName)

	byCategory, err := svc.List(ctx, "buyer", "JOB WORK")
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	suppliers, err := svc.List(ctx, "supplier", "")
	require.NoError(t, err)
	assert.Empty(t, suppliers)
}

func TestPartyService_ReplaceAndDelete(t *testing.T) {
	observer := &recordingObserver{}
	svc := newPartyService(t, observer)
	ctx := logger.WithUser(context.Background(), "priya")

	created, err := svc.Create(ctx, "supplier", validPartyRequest())
	require.NoError(t, err)

	req := validPartyRequest()
	req.PartyName = "Acme Metals Pvt Ltd"
	req.Status = "Inactive"
	req.Email = ""
	replaced, err := svc.Replace(logger.WithUser(context.Background(), "arun"), "supplier", created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, created.ID, replaced.ID)
	assert.Equal(t, "Acme Metals Pvt Ltd", replaced.PartyName)
	assert.Equal(t, "Inactive", replaced.Status)
	assert.Empty(t, replaced.Email, "replace is wholesale")
	assert.Equal(t, "priya", replaced.CreatedBy)
	assert.Greater(t, replaced.Version, created.Version)

	active, err := svc.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, active)

	require.NoError(t, svc.Delete(ctx, "supplier", created.ID))
	_, err = svc.GetByID(ctx, "supplier", created.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "supplier", created.ID), shared.ErrNotFound)

	assert.Equal(t, []string{
		"partyMaster/supplier:create",
		"partyMaster/supplier:replace",
		"partyMaster/supplier:delete",
	}, observer.writes)
}

func TestPartyService_DuplicateCode(t *testing.T) {
	svc := newPartyService(t, nil)
	ctx := context.Background()

	first, err := svc.Create(ctx, "supplier", validPartyRequest())
	require.NoError(t, err)

	again := validPartyRequest()
	again.PartyCode = " sup-001 "
	again.PartyName = "Another Acme"
	_, err = svc.Create(ctx, "supplier", again)
	require.ErrorIs(t, err, shared.ErrAlreadyExists)
	var dup *shared.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "partyCode", dup.Field)

	_, err = svc.Create(ctx, "buyer", validPartyRequest())
	require.NoError(t, err, "codes are unique per bucket")

	other := validPartyRequest()
	other.PartyCode = "SUP-002"
	second, err := svc.Create(ctx, "supplier", other)
	require.NoError(t, err)

	_, err = svc.Replace(ctx, "supplier", second.ID, validPartyRequest())
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)

	_, err = svc.Replace(ctx, "supplier", first.ID, validPartyRequest())
	require.NoError(t, err, "a record keeps its own code")

	list, err := svc.List(ctx, "supplier", "")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestPartyService_Replace_Missing(t *testing.T) {
	svc := newPartyService(t, nil)
	_, err := svc.Replace(context.Background(), "supplier", "nope", validPartyRequest())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestPartyService_PersistenceFailure(t *testing.T) {
	repo := new(MockRepository[master.Party])
	observer := &recordingObserver{}
	svc := NewPartyService(repo, WithWriteObserver(observer))
	storeErr := shared.NewPersistenceError("push", "partyMaster/supplier", errors.New("connection reset"))

	repo.On("FindAll", mock.Anything, "supplier").Return([]record.Entry[master.Party]{}, nil)
	repo.On("Create", mock.Anything, "supplier", mock.AnythingOfType("master.Party")).Return(nil, storeErr)

	_, err := svc.Create(context.Background(), "supplier", validPartyRequest())
	assert.True(t, shared.IsPersistenceFailure(err))
	assert.Empty(t, observer.writes)
	repo.AssertExpectations(t)
}

func TestPartyService_Export(t *testing.T) {
	svc := newPartyService(t, nil)
	ctx := context.Background()
	_, err := svc.Create(ctx, "supplier", validPartyRequest())
	require.NoError(t, err)

	sheet, err := svc.Export(ctx, "supplier", "")
	require.NoError(t, err)
	assert.Equal(t, "Parties", sheet.Name)
	require.Len(t, sheet.Rows, 1)
	assert.Len(t, sheet.Rows[0], len(sheet.Columns))
	assert.Equal(t, "SUP-001", sheet.Rows[0][0])
	assert.Equal(t, "+919876543210", sheet.Rows[0][5])
	assert.Equal(t, 500000.0, sheet.Rows[0][9])
}
