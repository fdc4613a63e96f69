package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	importapp "github.com/erp/mfgdesk/internal/application/import"
	masterapp "github.com/erp/mfgdesk/internal/application/master"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) upload(t *testing.T, path, field, content string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		part, err := mw.CreateFormFile(field, "upload.csv")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func TestImportHandler_Parties(t *testing.T) {
	env := newTestEnv(t)

	csv := "Party Code,Party Name,Category,Contact Number\n" +
		"BUY-001,Sunrise Foods,Manufacturer,9876543210\n" +
		"BUY-002,,Manufacturer,9876543211\n"

	w := env.upload(t, "/api/v1/parties/buyer/import", "file", csv)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[importapp.ImportResult](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Data.TotalRows)
	assert.Equal(t, 1, resp.Data.ImportedRows)
	assert.Equal(t, 1, resp.Data.ErrorRows)
	require.Len(t, resp.Data.Errors, 1)
	assert.Equal(t, 3, resp.Data.Errors[0].Row)
	assert.Equal(t, "partyName", resp.Data.Errors[0].Column)

	w = env.do(t, http.MethodGet, "/api/v1/parties/buyer", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]masterapp.PartyResponse](t, w)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "BUY-001", list.Data[0].PartyCode)
}

func TestImportHandler_Items(t *testing.T) {
	env := newTestEnv(t)

	csv := "itemName,itemType,machineName,itemGroup,uom,hsnCode,leadTime,price,currency,tax\n" +
		"Sealing Jaw Heater,consumables,flowrap,electrical,nos,85168000,7,1250.50,INR,18\n"

	w := env.upload(t, "/api/v1/items/sales/import", "file", csv)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[importapp.ImportResult](t, w)
	assert.Equal(t, 1, resp.Data.ImportedRows)
	assert.Empty(t, resp.Data.Errors)
}

func TestImportHandler_Failures(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		path   string
		field  string
		body   string
		status int
		code   string
	}{
		{"missing file", "/api/v1/parties/buyer/import", "", "", http.StatusBadRequest, "ERR_BAD_REQUEST"},
		{"wrong field", "/api/v1/parties/buyer/import", "upload", "partyCode\nA\n", http.StatusBadRequest, "ERR_BAD_REQUEST"},
		{"empty file", "/api/v1/parties/buyer/import", "file", "", http.StatusBadRequest, "ERR_INVALID_INPUT"},
		{"unknown subtype", "/api/v1/parties/vendor/import", "file", "partyCode\nA\n", http.StatusNotFound, "ERR_NOT_FOUND"},
		{"unknown item subtype", "/api/v1/items/spares/import", "file", "itemName\nA\n", http.StatusNotFound, "ERR_NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.upload(t, tt.path, tt.field, tt.body)
			require.Equal(t, tt.status, w.Code, w.Body.String())
			resp := decode[any](t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}
