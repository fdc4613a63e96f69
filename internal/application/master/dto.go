package master

import (
	"time"

	"github.com/erp/mfgdesk/internal/domain/master"
	"github.com/erp/mfgdesk/internal/domain/record"
	"github.com/erp/mfgdesk/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Party DTOs
// =============================================================================

// PartyRequest is the body of a party create or full replace.
// master.Party.Validate is authoritative; the pattern tags reject malformed
// identifiers at binding time with the same messages.
type PartyRequest struct {
	PartyCode     string           `json:"partyCode" binding:"max=50"`
	PartyName     string           `json:"partyName" binding:"max=200"`
	Category      string           `json:"category"`
	PartyType     string           `json:"partyType"`
	ContactPerson string           `json:"contactPerson" binding:"max=100"`
	ContactNumber string           `json:"contactNumber" binding:"omitempty,phone10"`
	Email         string           `json:"email" binding:"max=200"`
	Website       string           `json:"website" binding:"max=200"`
	PartyAddress  string           `json:"partyAddress" binding:"max=500"`
	GSTIN         string           `json:"gstin" binding:"omitempty,gstin"`
	PANNo         string           `json:"panNo" binding:"omitempty,pan"`
	CINNo         string           `json:"cinNo" binding:"omitempty,cin"`
	MSMEID        string           `json:"msmeId" binding:"omitempty,msme"`
	CreditLimit   *decimal.Decimal `json:"creditLimit"`
	CreditPeriod  string           `json:"creditPeriod"`
	ApprovedBy    string           `json:"approvedBy"`
	Status        string           `json:"status"`
}

func (r PartyRequest) toParty() master.Party {
	p := master.Party{
		PartyCode:     r.PartyCode,
		PartyName:     r.PartyName,
		Category:      master.PartyCategory(r.Category),
		PartyType:     master.PartyType(r.PartyType),
		ContactPerson: r.ContactPerson,
		ContactNumber: r.ContactNumber,
		Email:         r.Email,
		Website:       r.Website,
		PartyAddress:  r.PartyAddress,
		GSTIN:         r.GSTIN,
		PANNo:         r.PANNo,
		CINNo:         r.CINNo,
		MSMEID:        r.MSMEID,
		CreditPeriod:  r.CreditPeriod,
		ApprovedBy:    r.ApprovedBy,
		Status:        master.PartyStatus(r.Status),
	}
	if r.CreditLimit != nil {
		p.CreditLimit = *r.CreditLimit
	}
	return p
}

// PartyResponse represents a party in API responses
type PartyResponse struct {
	ID                string          `json:"id"`
	Subtype           string          `json:"subtype"`
	PartyCode         string          `json:"partyCode"`
	PartyName         string          `json:"partyName"`
	Category          string          `json:"category"`
	PartyType         string          `json:"partyType"`
	ContactPerson     string          `json:"contactPerson"`
	ContactNumber     string          `json:"contactNumber"`
	ContactNumberE164 string          `json:"contactNumberE164"`
	Email             string          `json:"email"`
	Website           string          `json:"website"`
	PartyAddress      string          `json:"partyAddress"`
	GSTIN             string          `json:"gstin"`
	PANNo             string          `json:"panNo"`
	CINNo             string          `json:"cinNo"`
	MSMEID            string          `json:"msmeId"`
	CreditLimit       decimal.Decimal `json:"creditLimit"`
	CreditPeriod      string          `json:"creditPeriod"`
	CreatedBy         string          `json:"createdBy"`
	ApprovedBy        string          `json:"approvedBy"`
	Status            string          `json:"status"`
	Version           int64           `json:"version"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func (s *PartyService) toResponse(e *record.Entry[master.Party]) PartyResponse {
	p := e.Value
	return PartyResponse{
		ID:                e.ID,
		Subtype:           e.Subtype,
		PartyCode:         p.PartyCode,
		PartyName:         p.PartyName,
		Category:          string(p.Category),
		PartyType:         string(p.PartyType),
		ContactPerson:     p.ContactPerson,
		ContactNumber:     p.ContactNumber,
		ContactNumberE164: s.opts.phones.Display(p.ContactNumber),
		Email:             p.Email,
		Website:           p.Website,
		PartyAddress:      p.PartyAddress,
		GSTIN:             p.GSTIN,
		PANNo:             p.PANNo,
		CINNo:             p.CINNo,
		MSMEID:            p.MSMEID,
		CreditLimit:       valueobject.RoundMoney(p.CreditLimit),
		CreditPeriod:      p.CreditPeriod,
		CreatedBy:         p.CreatedBy,
		ApprovedBy:        p.ApprovedBy,
		Status:            string(p.Status),
		Version:           e.Version,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// =============================================================================
// Item DTOs
// =============================================================================

// ItemRequest is the body of an item create or full replace.
// An empty itemCode on create is filled with the next generated code.
type ItemRequest struct {
	ItemCode    string           `json:"itemCode" binding:"max=50"`
	ItemName    string           `json:"itemName" binding:"max=200"`
	Description string           `json:"description" binding:"max=1000"`
	ItemType    string           `json:"itemType"`
	MachineName string           `json:"machineName"`
	ItemGroup   string           `json:"itemGroup"`
	UOM         string           `json:"uom"`
	HSNCode     string           `json:"hsnCode" binding:"omitempty,hsn"`
	LeadTime    *int             `json:"leadTime"`
	Price       *decimal.Decimal `json:"price"`
	Currency    string           `json:"currency"`
	Tax         *decimal.Decimal `json:"tax"`
}

func (r ItemRequest) toItem() master.Item {
	return master.Item{
		ItemCode:    r.ItemCode,
		ItemName:    r.ItemName,
		Description: r.Description,
		ItemType:    master.ItemType(r.ItemType),
		MachineName: master.MachineName(r.MachineName),
		ItemGroup:   master.ItemGroup(r.ItemGroup),
		UOM:         master.UOM(r.UOM),
		HSNCode:     r.HSNCode,
		LeadTime:    r.LeadTime,
		Price:       r.Price,
		Currency:    valueobject.Currency(r.Currency),
		Tax:         r.Tax,
	}
}

// ItemResponse represents an item in API responses
type ItemResponse struct {
	ID             string           `json:"id"`
	Subtype        string           `json:"subtype"`
	ItemCode       string           `json:"itemCode"`
	ItemName       string           `json:"itemName"`
	Description    string           `json:"description"`
	ItemType       string           `json:"itemType"`
	MachineName    string           `json:"machineName"`
	ItemGroup      string           `json:"itemGroup"`
	UOM            string           `json:"uom"`
	HSNCode        string           `json:"hsnCode"`
	LeadTime       *int             `json:"leadTime"`
	Price          *decimal.Decimal `json:"price"`
	Currency       string           `json:"currency"`
	CurrencySymbol string           `json:"currencySymbol"`
	Tax            *decimal.Decimal `json:"tax"`
	Version        int64            `json:"version"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

func toItemResponse(e *record.Entry[master.Item]) ItemResponse {
	it := e.Value
	resp := ItemResponse{
		ID:             e.ID,
		Subtype:        e.Subtype,
		ItemCode:       it.ItemCode,
		ItemName:       it.ItemName,
		Description:    it.Description,
		ItemType:       string(it.ItemType),
		MachineName:    string(it.MachineName),
		ItemGroup:      string(it.ItemGroup),
		UOM:            string(it.UOM),
		HSNCode:        it.HSNCode,
		LeadTime:       it.LeadTime,
		Currency:       string(it.Currency),
		CurrencySymbol: it.Currency.Symbol(),
		Tax:            it.Tax,
		Version:        e.Version,
		CreatedAt:      it.CreatedAt,
		UpdatedAt:      it.UpdatedAt,
	}
	if it.Price != nil {
		price := valueobject.RoundMoney(*it.Price)
		resp.Price = &price
	}
	return resp
}

// NextCodeResponse carries a generated item code
type NextCodeResponse struct {
	ItemCode      string `json:"itemCode"`
	FinancialYear string `json:"financialYear"`
}
