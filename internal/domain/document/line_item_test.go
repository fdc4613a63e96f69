package document

import (
	"errors"
	"testing"

	"github.com/erp/mfgdesk/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) shared.FieldErrors {
	t.Helper()
	var errs shared.FieldErrors
	require.True(t, errors.As(err, &errs), "expected shared.FieldErrors, got %v", err)
	return errs
}

func TestParseNumber(t *testing.T) {
	t.Run("empty is not entered", func(t *testing.T) {
		v, err := ParseNumber("quantity", "  ")
		assert.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("parses decimals", func(t *testing.T) {
		v, err := ParseNumber("rate", " 45.50 ")
		require.NoError(t, err)
		assert.True(t, dec("45.5").Equal(*v))
	})

	t.Run("non-numeric is a format error", func(t *testing.T) {
		_, err := ParseNumber("rate", "12a")
		var fe *shared.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, shared.CodeFormatError, fe.Code)
		assert.Equal(t, "rate must be a number.", fe.Message)
	})
}

func TestLineDraft_Input(t *testing.T) {
	t.Run("reports every unparsable number", func(t *testing.T) {
		_, err := LineDraft{ItemCode: "A", Quantity: "ten", Rate: "x", TaxRate: "18"}.Input()
		errs := fieldErrors(t, err)
		assert.Len(t, errs, 2)
		assert.NotNil(t, errs.Lookup("quantity"))
		assert.NotNil(t, errs.Lookup("rate"))
	})

	t.Run("keeps blanks as nil", func(t *testing.T) {
		in, err := LineDraft{ItemCode: "A", Quantity: "3", LineStatus: " Partial "}.Input()
		require.NoError(t, err)
		assert.True(t, dec("3").Equal(*in.Quantity))
		assert.Nil(t, in.Rate)
		assert.Equal(t, LineStatusPartial, in.LineStatus)
	})
}

func TestNewLineItem(t *testing.T) {
	t.Run("refuses unselected item", func(t *testing.T) {
		_, err := NewLineItem(KindPurchaseOrder, LineInput{Quantity: decPtr("1"), Rate: decPtr("1")})
		errs := fieldErrors(t, err)
		fe := errs.Lookup("itemCode")
		require.NotNil(t, fe)
		assert.True(t, fe.IsRequired())
		assert.Equal(t, "Please select an item.", fe.Message)
	})

	t.Run("requires quantity and rate on orders", func(t *testing.T) {
		_, err := NewLineItem(KindPurchaseOrder, LineInput{ItemCode: "A"})
		errs := fieldErrors(t, err)
		assert.Equal(t, shared.CodeRequiredFieldMissing, errs.Code())
		require.Len(t, errs, 2)
		assert.Equal(t, "quantity", errs[0].Field)
		assert.Equal(t, "rate", errs[1].Field)
	})

	t.Run("indent needs quantity and required date but no rate", func(t *testing.T) {
		_, err := NewLineItem(KindIndent, LineInput{ItemCode: "A", Quantity: decPtr("5")})
		errs := fieldErrors(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "requiredDate", errs[0].Field)

		item, err := NewLineItem(KindIndent, LineInput{ItemCode: "A", Quantity: decPtr("5"), RequiredDate: "2024-06-01"})
		require.NoError(t, err)
		assert.True(t, item.Amount.IsZero())
		assert.Nil(t, item.TaxRate)
	})

	t.Run("rejects bad required date", func(t *testing.T) {
		_, err := NewLineItem(KindIndent, LineInput{ItemCode: "A", Quantity: decPtr("5"), RequiredDate: "01/06/2024"})
		errs := fieldErrors(t, err)
		assert.Equal(t, shared.CodeFormatError, errs.Lookup("requiredDate").Code)
	})

	t.Run("rejects negative numbers", func(t *testing.T) {
		_, err := NewLineItem(KindPurchaseOrder, LineInput{ItemCode: "A", Quantity: decPtr("-1"), Rate: decPtr("-2")})
		errs := fieldErrors(t, err)
		require.Len(t, errs, 2)
		assert.Equal(t, "quantity", errs[0].Field)
		assert.Equal(t, "rate", errs[1].Field)
		assert.Equal(t, shared.CodeFormatError, errs.Code())
	})

	t.Run("material receipt bills received quantity", func(t *testing.T) {
		item, err := NewLineItem(KindMaterialReceipt, LineInput{
			ItemCode: "RM-1", OrderedQty: decPtr("100"), ReceivedQty: decPtr("80"), Rate: decPtr("12.5"),
		})
		require.NoError(t, err)
		assert.True(t, dec("80").Equal(item.Quantity))
		assert.True(t, dec("1000").Equal(item.Amount))
		assert.Equal(t, LineStatusComplete, item.LineStatus)
	})

	t.Run("material receipt keeps operator line status", func(t *testing.T) {
		item, err := NewLineItem(KindMaterialReceipt, LineInput{
			ItemCode: "RM-1", OrderedQty: decPtr("100"), ReceivedQty: decPtr("100"), Rate: decPtr("1"),
			LineStatus: LineStatusRejected,
		})
		require.NoError(t, err)
		assert.Equal(t, LineStatusRejected, item.LineStatus)
	})

	t.Run("material receipt requires both quantities", func(t *testing.T) {
		_, err := NewLineItem(KindMaterialReceipt, LineInput{ItemCode: "RM-1", Rate: decPtr("1")})
		errs := fieldErrors(t, err)
		assert.NotNil(t, errs.Lookup("orderedQty"))
		assert.NotNil(t, errs.Lookup("receivedQty"))
	})

	t.Run("invoice defaults tax rate", func(t *testing.T) {
		item, err := NewLineItem(KindSalesInvoice, LineInput{ItemCode: "A", Quantity: decPtr("10"), Rate: decPtr("10")})
		require.NoError(t, err)
		require.NotNil(t, item.TaxRate)
		assert.True(t, DefaultTaxRate.Equal(*item.TaxRate))
		assert.True(t, dec("18").Equal(*item.TaxAmount))
	})

	t.Run("invoice rejects unknown tax rate", func(t *testing.T) {
		_, err := NewLineItem(KindSalesInvoice, LineInput{
			ItemCode: "A", Quantity: decPtr("1"), Rate: decPtr("1"), TaxRate: decPtr("15"),
		})
		errs := fieldErrors(t, err)
		assert.NotNil(t, errs.Lookup("taxRate"))
	})

	t.Run("tax is dropped on non-invoice kinds", func(t *testing.T) {
		item, err := NewLineItem(KindPurchaseOrder, LineInput{
			ItemCode: "A", Quantity: decPtr("1"), Rate: decPtr("1"), TaxRate: decPtr("15"),
		})
		require.NoError(t, err)
		assert.Nil(t, item.TaxRate)
		assert.Nil(t, item.TaxAmount)
	})
}

func TestLineItem_Recalculate(t *testing.T) {
	t.Run("overwrites client supplied amounts", func(t *testing.T) {
		tax := dec("999")
		item := LineItem{ItemCode: "A", Quantity: dec("2"), Rate: dec("50"), Amount: dec("1"), TaxAmount: &tax}
		item.Recalculate(KindSalesInvoice)
		assert.True(t, dec("100").Equal(item.Amount))
		assert.True(t, dec("18").Equal(*item.TaxAmount))
	})

	t.Run("round trips through Input", func(t *testing.T) {
		item, err := NewLineItem(KindMaterialReceipt, LineInput{
			ItemCode: "RM-1", OrderedQty: decPtr("10"), ReceivedQty: decPtr("4"), Rate: decPtr("2.5"),
			LineStatus: LineStatusPartial,
		})
		require.NoError(t, err)

		again, err := NewLineItem(KindMaterialReceipt, item.Input())
		require.NoError(t, err)
		assert.True(t, item.Amount.Equal(again.Amount))
		assert.Equal(t, item.LineStatus, again.LineStatus)
	})
}
