package master

import (
	"slices"
	"strings"
	"time"

	"github.com/erp/mfgdesk/internal/domain/document"
	"github.com/erp/mfgdesk/internal/domain/record"
	"github.com/erp/mfgdesk/internal/domain/shared"
	"github.com/erp/mfgdesk/internal/domain/shared/valueobject"
	"github.com/erp/mfgdesk/internal/domain/validation"
	"github.com/shopspring/decimal"
)

// ItemCollection is the record collection holding catalog items
const ItemCollection = "itemMaster"

// ItemSubtype partitions items into buckets
type ItemSubtype string

const (
	ItemSubtypePurchase ItemSubtype = "purchase"
	ItemSubtypeSales    ItemSubtype = "sales"
)

// ItemSubtypes returns every item bucket subtype
func ItemSubtypes() []ItemSubtype {
	return []ItemSubtype{ItemSubtypePurchase, ItemSubtypeSales}
}

// IsValid checks if the subtype is known
func (s ItemSubtype) IsValid() bool {
	return s == ItemSubtypePurchase || s == ItemSubtypeSales
}

// Bucket returns the record bucket of the subtype
func (s ItemSubtype) Bucket() record.Bucket {
	return record.NewBucket(ItemCollection, string(s))
}

type ItemType string

const (
	ItemTypeCapitalGoods ItemType = "capital-goods"
	ItemTypeConsumables  ItemType = "consumables"
	ItemTypeGeneral      ItemType = "general-item"
)

func (t ItemType) IsValid() bool {
	return slices.Contains([]ItemType{ItemTypeCapitalGoods, ItemTypeConsumables, ItemTypeGeneral}, t)
}

type MachineName string

const (
	MachineFlowrap        MachineName = "flowrap"
	MachinePackingMachine MachineName = "packing-machine"
	MachineOthers         MachineName = "others"
)

func (m MachineName) IsValid() bool {
	return slices.Contains([]MachineName{MachineFlowrap, MachinePackingMachine, MachineOthers}, m)
}

type ItemGroup string

const (
	ItemGroupMechanical ItemGroup = "mechanical"
	ItemGroupElectrical ItemGroup = "electrical"
	ItemGroupAutomation ItemGroup = "automation"
)

func (g ItemGroup) IsValid() bool {
	return slices.Contains([]ItemGroup{ItemGroupMechanical, ItemGroupElectrical, ItemGroupAutomation}, g)
}

// UOM is the unit an item is stocked and sold in
type UOM string

const (
	UOMNos         UOM = "nos"
	UOMKgs         UOM = "kgs"
	UOMSquareMeter UOM = "square-meter"
	UOMMeter       UOM = "meter"
	UOMFeet        UOM = "feet"
	UOMCubicFeet   UOM = "cubic-feet"
	UOMCubicMeter  UOM = "cubic-meter"
)

func (u UOM) IsValid() bool {
	return slices.Contains([]UOM{
		UOMNos, UOMKgs, UOMSquareMeter, UOMMeter, UOMFeet, UOMCubicFeet, UOMCubicMeter,
	}, u)
}

// Item is a catalog entry. LeadTime, Price and Tax are pointers so that
// "not entered" can be told apart from zero.
type Item struct {
	ItemCode    string               `json:"itemCode"`
	ItemName    string               `json:"itemName"`
	Description string               `json:"description,omitempty"`
	ItemType    ItemType             `json:"itemType"`
	MachineName MachineName          `json:"machineName"`
	ItemGroup   ItemGroup            `json:"itemGroup"`
	UOM         UOM                  `json:"uom"`
	HSNCode     string               `json:"hsnCode"`
	LeadTime    *int                 `json:"leadTime"`
	Price       *decimal.Decimal     `json:"price"`
	Currency    valueobject.Currency `json:"currency"`
	Tax         *decimal.Decimal     `json:"tax"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// ItemLegacyFields maps field names used by older item records
func ItemLegacyFields() record.FieldRenames {
	return record.FieldRenames{
		{Legacy: "code", Canonical: "itemCode"},
		{Legacy: "name", Canonical: "itemName"},
		{Legacy: "unit", Canonical: "uom"},
		{Legacy: "hsn", Canonical: "hsnCode"},
	}
}

// Validate checks every field and returns all failures as shared.FieldErrors
func (it *Item) Validate() error {
	var errs shared.FieldErrors
	required := func(field, value, message string) bool {
		if strings.TrimSpace(value) == "" {
			errs.Add(shared.NewRequiredFieldError(field, message))
			return false
		}
		return true
	}

	required("itemCode", it.ItemCode, "Item code is required.")
	required("itemName", it.ItemName, "Item name is required.")
	if required("itemType", string(it.ItemType), "Item type is required.") && !it.ItemType.IsValid() {
		errs.Add(shared.NewFormatError("itemType", "Invalid item type."))
	}
	if required("machineName", string(it.MachineName), "Machine name is required.") && !it.MachineName.IsValid() {
		errs.Add(shared.NewFormatError("machineName", "Invalid machine name."))
	}
	if required("itemGroup", string(it.ItemGroup), "Item group is required.") && !it.ItemGroup.IsValid() {
		errs.Add(shared.NewFormatError("itemGroup", "Invalid item group."))
	}
	if required("uom", string(it.UOM), "Unit of measurement is required.") && !it.UOM.IsValid() {
		errs.Add(shared.NewFormatError("uom", "Invalid unit of measurement."))
	}
	if required("currency", string(it.Currency), "Currency is required.") && !it.Currency.IsValid() {
		errs.Add(shared.NewFormatError("currency", "Invalid currency."))
	}

	errs.Add(validation.Validate(validation.FieldHSNCode, it.HSNCode))

	switch {
	case it.LeadTime == nil:
		errs.Add(shared.NewRequiredFieldError("leadTime", "Lead time is required."))
	case *it.LeadTime < 0:
		errs.Add(shared.NewFormatError("leadTime", "Lead time cannot be negative."))
	}
	switch {
	case it.Price == nil:
		errs.Add(shared.NewRequiredFieldError("price", "Price is required."))
	case it.Price.IsNegative():
		errs.Add(shared.NewFormatError("price", "Price cannot be negative."))
	}
	switch {
	case it.Tax == nil:
		errs.Add(shared.NewRequiredFieldError("tax", "Tax is required."))
	case !document.IsAllowedTaxRate(*it.Tax):
		errs.Add(shared.NewFormatError("tax", "Tax must be one of 0, 5, 12, 18 or 28."))
	}

	return errs.Err()
}

// Prepare trims free text and validates the item ahead of a save.
// CreatedAt is kept when already set.
func (it *Item) Prepare(now time.Time) error {
	it.ItemCode = strings.TrimSpace(it.ItemCode)
	it.ItemName = strings.TrimSpace(it.ItemName)
	it.HSNCode = strings.TrimSpace(it.HSNCode)
	if err := it.Validate(); err != nil {
		return err
	}
	if it.CreatedAt.IsZero() {
		it.CreatedAt = now
	}
	it.UpdatedAt = now
	return nil
}

// Matches reports whether term occurs in any searchable field
func (it *Item) Matches(term string) bool {
	return shared.MatchesSearch(term,
		it.ItemName,
		it.ItemCode,
		string(it.ItemType),
		string(it.ItemGroup),
		it.Description,
		it.HSNCode,
	)
}
