package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/erp/mfgdesk/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type partyForm struct {
	PartyName     string `json:"partyName" binding:"required,max=100"`
	ContactNumber string `json:"contactNumber" binding:"omitempty,phone10"`
	GSTIN         string `json:"gstin" binding:"omitempty,gstin"`
	PanNo         string `json:"panNo" binding:"omitempty,pan"`
	CinNo         string `json:"cinNo" binding:"omitempty,cin"`
	MsmeID        string `json:"msmeId" binding:"omitempty,msme"`
	HSNCode       string `json:"hsnCode" binding:"omitempty,hsn"`
}

func bindEngine(t *testing.T) *gin.Engine {
	t.Helper()
	require.NoError(t, SetupValidator())
	r := gin.New()
	r.Use(RequestID())
	r.POST("/bind", func(c *gin.Context) {
		var form partyForm
		if err := c.ShouldBindJSON(&form); err != nil {
			HandleBindError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(form))
	})
	return r
}

func TestSetupValidator_Idempotent(t *testing.T) {
	require.NoError(t, SetupValidator())
	require.NoError(t, SetupValidator())
}

func TestCustomTags_Accept(t *testing.T) {
	r := bindEngine(t)
	body := `{
		"partyName": "Zenith Foods",
		"contactNumber": "9876543210",
		"gstin": "27aapfu0939f1zv",
		"panNo": "AAPFU0939F",
		"cinNo": "U74999MH2016PTC123456",
		"msmeId": "UDYAM-MH-01-0012345",
		"hsnCode": "84229090"
	}`
	w := serve(r, httptest.NewRequest(http.MethodPost, "/bind", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestCustomTags_Reject(t *testing.T) {
	r := bindEngine(t)
	body := `{
		"partyName": "Zenith Foods",
		"contactNumber": "98765",
		"gstin": "27AAPFU0939F1Z",
		"panNo": "AAPF0939F",
		"hsnCode": "842"
	}`
	w := serve(r, httptest.NewRequest(http.MethodPost, "/bind", strings.NewReader(body)))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.NotEmpty(t, resp.Error.RequestID)

	messages := map[string]string{}
	for _, d := range resp.Error.Details {
		messages[d.Field] = d.Message
	}
	assert.Equal(t, map[string]string{
		"contactNumber": "Contact number must be 10 digits.",
		"gstin":         "Invalid GSTIN.",
		"panNo":         "Invalid PAN number.",
		"hsnCode":       "HSN Code must be between 4 and 8 digits.",
	}, messages)
}

func TestHandleBindError_MalformedJSON(t *testing.T) {
	r := bindEngine(t)

	tests := []struct {
		name string
		body string
	}{
		{"truncated object", `{"partyName":`},
		{"truncated string", `{"partyName": "Acme`},
		{"empty body", ``},
		{"syntax error", `{"partyName" "Acme"}`},
		{"wrong type", `{"partyName": 12}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, httptest.NewRequest(http.MethodPost, "/bind", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), dto.ErrCodeInvalidJSON)
		})
	}
}
