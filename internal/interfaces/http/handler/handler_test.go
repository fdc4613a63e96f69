package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	calcapp "github.com/erp/mfgdesk/internal/application/calculation"
	docapp "github.com/erp/mfgdesk/internal/application/document"
	importapp "github.com/erp/mfgdesk/internal/application/import"
	masterapp "github.com/erp/mfgdesk/internal/application/master"
	printapp "github.com/erp/mfgdesk/internal/application/printing"
	"github.com/erp/mfgdesk/internal/application/report"
	"github.com/erp/mfgdesk/internal/domain/document"
	"github.com/erp/mfgdesk/internal/domain/master"
	"github.com/erp/mfgdesk/internal/infrastructure/config"
	"github.com/erp/mfgdesk/internal/infrastructure/persistence"
	infra "github.com/erp/mfgdesk/internal/infrastructure/printing"
	"github.com/erp/mfgdesk/internal/infrastructure/storage"
	"github.com/erp/mfgdesk/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

// testEnv is an engine with every resource handler mounted on a fresh
// in-memory database
type testEnv struct {
	engine    *gin.Engine
	documents *docapp.DocumentService
}

type envOptions struct {
	renderer infra.PDFRenderer
	storage  printapp.ObjectStorage
}

func newTestEnv(t *testing.T, opts ...func(*envOptions)) *testEnv {
	t.Helper()
	require.NoError(t, middleware.SetupValidator())

	var o envOptions
	for _, opt := range opts {
		opt(&o)
	}

	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })

	store := persistence.NewGormRecordStore(db.DB, persistence.WithNormalizer(persistence.DefaultNormalizer()))
	parties := persistence.NewRecordRepository[master.Party](store, master.PartyCollection)
	items := persistence.NewRecordRepository[master.Item](store, master.ItemCollection)
	docs := persistence.NewRecordRepository[document.Document](store, document.Collection)

	clock := func() time.Time { return testNow }
	partyService := masterapp.NewPartyService(parties, masterapp.WithClock(clock))
	itemService := masterapp.NewItemService(items, masterapp.WithClock(clock))
	documentService := docapp.NewDocumentService(docs, docapp.WithClock(clock))

	printer, err := infra.NewInvoicePrinter(infra.Letterhead{Name: "Shakti Packaging Works"}, nil, o.renderer)
	require.NoError(t, err)
	printService := printapp.NewPrintService(documentService, printer, o.storage, nil)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	api := engine.Group("/api/v1")
	for _, r := range []interface{ RegisterRoutes(*gin.RouterGroup) }{
		NewPartyHandler(partyService),
		NewItemHandler(itemService),
		NewImportHandler(importapp.NewMasterImportService(partyService, itemService)),
		NewDocumentHandler(documentService),
		NewPrintHandler(printService),
		NewCoreHandler(calcapp.NewService()),
		NewDashboardHandler(report.NewDashboardService(parties, items, docs)),
	} {
		r.RegisterRoutes(api)
	}
	return &testEnv{engine: engine, documents: documentService}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// envelope mirrors dto.Response with a typed payload
type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Error   *struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
		Details   []struct {
			Field   string `json:"field"`
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
	Meta *struct {
		Total  int    `json:"total"`
		Search string `json:"search"`
	} `json:"meta"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var out envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// createdID posts body and returns the id of the new record
func (e *testEnv) createdID(t *testing.T, path string, body any) string {
	t.Helper()
	w := e.do(t, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[struct {
		ID string `json:"id"`
	}](t, w).Data.ID
}

// fixedRenderer returns the same PDF for every request
type fixedRenderer struct {
	pdf []byte
	err error
}

func (r fixedRenderer) Render(context.Context, *infra.RenderRequest) (*infra.RenderResult, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &infra.RenderResult{PDFData: r.pdf, PageCount: 1}, nil
}

func (fixedRenderer) Close() error { return nil }

func withRenderer(r infra.PDFRenderer) func(*envOptions) {
	return func(o *envOptions) { o.renderer = r }
}

func withStorage(s *storage.MemoryObjectStorage) func(*envOptions) {
	return func(o *envOptions) { o.storage = s }
}
