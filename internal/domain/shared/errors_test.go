package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrors(t *testing.T) {
	t.Run("Err is nil when nothing failed", func(t *testing.T) {
		var errs FieldErrors
		assert.NoError(t, errs.Err())
	})

	t.Run("Add collects single and multiple errors", func(t *testing.T) {
		var errs FieldErrors
		errs.Add(nil)
		errs.Add(NewFormatError("gstin", "Invalid GSTIN."))
		errs.Add(FieldErrors{
			NewFormatError("panNo", "Invalid PAN number."),
			NewRequiredFieldError("category", "Category is required."),
		})

		require.Len(t, errs, 3)
		assert.Equal(t, "Invalid PAN number.", errs.Lookup("panNo").Message)
		assert.Nil(t, errs.Lookup("email"))
	})

	t.Run("Code prefers required over format", func(t *testing.T) {
		errs := FieldErrors{NewFormatError("email", "Invalid email address.")}
		assert.Equal(t, CodeFormatError, errs.Code())

		errs = append(errs, NewRequiredFieldError("contactNumber", ""))
		assert.Equal(t, CodeRequiredFieldMissing, errs.Code())
	})

	t.Run("errors.As finds FieldErrors through wrapping", func(t *testing.T) {
		err := fmt.Errorf("submit party: %w", FieldErrors{NewFormatError("cinNo", "Invalid CIN number.")}.Err())

		var errs FieldErrors
		require.True(t, errors.As(err, &errs))
		assert.Equal(t, "cinNo", errs[0].Field)
	})

	t.Run("default required message names the field", func(t *testing.T) {
		err := NewRequiredFieldError("itemCode", "")
		assert.Equal(t, "itemCode is required.", err.Message)
		assert.True(t, err.IsRequired())
	})
}

func TestPersistenceError(t *testing.T) {
	t.Run("wraps and unwraps the cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewPersistenceError("put", "partyMaster/supplier/abc", cause)

		assert.True(t, IsPersistenceFailure(err))
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "partyMaster/supplier/abc")
	})

	t.Run("leaves domain errors untouched", func(t *testing.T) {
		err := NewPersistenceError("get", "x/y/z", ErrNotFound)
		assert.Same(t, ErrNotFound, err)
		assert.False(t, IsPersistenceFailure(err))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, NewPersistenceError("delete", "", nil))
	})
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, MatchesSearch("", "anything"))
	assert.True(t, MatchesSearch("acme", "ACME Industries"))
	assert.True(t, MatchesSearch("  29abc ", "", "29ABCDE1234F1Z5"))
	assert.False(t, MatchesSearch("steel", "Acme", "PA/IC/2024-25/00001"))
}

func TestDuplicateKeyError(t *testing.T) {
	err := fmt.Errorf("create party: %w", NewDuplicateKeyError("partyCode", "Party code", "SUP-001"))

	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.NotErrorIs(t, err, ErrNotFound)

	var dup *DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "partyCode", dup.Field)
	assert.Equal(t, "Party code SUP-001 already exists.", dup.Error())
}
