package docs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag/v2"
)

func loadDoc(t *testing.T) *openapi2.T {
	t.Helper()
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc openapi2.T
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return &doc
}

func TestSwaggerDoc_IsValidOpenAPI(t *testing.T) {
	doc := loadDoc(t)
	assert.Equal(t, "mfgdesk API", doc.Info.Title)
	assert.Equal(t, "/api/v1", doc.BasePath)

	v3, err := openapi2conv.ToV3(doc)
	require.NoError(t, err)
	require.NoError(t, v3.Validate(context.Background()))
}

func TestSwaggerDoc_CoversRoutes(t *testing.T) {
	doc := loadDoc(t)

	routes := map[string][]string{
		"/parties/{subtype}":           {"GET", "POST"},
		"/parties/{subtype}/{id}":      {"GET", "PUT", "DELETE"},
		"/parties/{subtype}/refresh":   {"POST"},
		"/parties/{subtype}/export":    {"GET"},
		"/parties/{subtype}/import":    {"POST"},
		"/items/{subtype}/import":      {"POST"},
		"/items/next-code":             {"GET"},
		"/items/{subtype}":             {"GET", "POST"},
		"/items/{subtype}/{id}":        {"GET", "PUT", "DELETE"},
		"/documents/{kind}":            {"GET", "POST"},
		"/documents/{kind}/{id}":       {"GET", "PUT", "DELETE"},
		"/documents/{kind}/{id}/print": {"GET"},
		"/validate":                    {"POST"},
		"/calculate/line":              {"POST"},
		"/calculate/totals":            {"POST"},
		"/dashboard":                   {"GET"},
		"/system/health":               {"GET"},
	}
	for path, methods := range routes {
		item, ok := doc.Paths[path]
		require.True(t, ok, "missing path %s", path)
		for _, method := range methods {
			assert.NotNil(t, item.GetOperation(method), "missing %s %s", method, path)
		}
	}
}

func TestSwaggerDoc_DocumentKinds(t *testing.T) {
	doc := loadDoc(t)

	op := doc.Paths["/documents/{kind}"].Get
	require.NotNil(t, op)
	var kinds []any
	for _, p := range op.Parameters {
		if p.Name == "kind" {
			kinds = p.Enum
		}
	}
	assert.ElementsMatch(t,
		[]any{"indent", "purchase-order", "job-work-order", "material-receipt", "sales-invoice"},
		kinds)
}
