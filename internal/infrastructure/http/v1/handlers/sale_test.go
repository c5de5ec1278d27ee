package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/core/apperror"
	appctx "salesdesk/internal/core/context"
	"salesdesk/internal/core/id"
	"salesdesk/internal/domain/sales"
	"salesdesk/internal/infrastructure/http/v1/middleware"
)

// stubSaleService records calls and returns canned results.
type stubSaleService struct {
	listFn   func(shopID string, page, limit int) (sales.Page, error)
	getFn    func(saleID id.ID, shopID string) (*sales.Sale, error)
	createFn func(sale *sales.Sale) error
	updateFn func(sale *sales.Sale) error
	deleteFn func(saleID id.ID, shopID string) error
	searchFn func(shopID string, filter sales.SearchFilter) ([]*sales.Sale, error)

	calls int
}

func (s *stubSaleService) List(ctx context.Context, shopID string, page, limit int) (sales.Page, error) {
	s.calls++
	return s.listFn(shopID, page, limit)
}

func (s *stubSaleService) GetByID(ctx context.Context, saleID id.ID, shopID string) (*sales.Sale, error) {
	s.calls++
	return s.getFn(saleID, shopID)
}

func (s *stubSaleService) Create(ctx context.Context, sale *sales.Sale) error {
	s.calls++
	return s.createFn(sale)
}

func (s *stubSaleService) Update(ctx context.Context, sale *sales.Sale) error {
	s.calls++
	return s.updateFn(sale)
}

func (s *stubSaleService) Delete(ctx context.Context, saleID id.ID, shopID string) error {
	s.calls++
	return s.deleteFn(saleID, shopID)
}

func (s *stubSaleService) Search(ctx context.Context, shopID string, filter sales.SearchFilter) ([]*sales.Sale, error) {
	s.calls++
	return s.searchFn(shopID, filter)
}

// setupSaleRouter builds a router with the error middleware and an
// optional fixed shop scope, mirroring production wiring.
func setupSaleRouter(svc SaleService, shopID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	if shopID != "" {
		r.Use(func(c *gin.Context) {
			ctx := appctx.WithShop(c.Request.Context(), &appctx.ShopContext{ShopID: shopID})
			c.Request = c.Request.WithContext(ctx)
		})
	}

	NewSaleHandler(NewBaseHandler(), svc).RegisterRoutes(r.Group("/api/v1/sales"))
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSaleListMissingShopScope(t *testing.T) {
	svc := &stubSaleService{}
	r := setupSaleRouter(svc, "")

	w := doRequest(r, http.MethodGet, "/api/v1/sales", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, svc.calls, "no service call without shop scope")

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
}

func TestSaleListMetadata(t *testing.T) {
	svc := &stubSaleService{
		listFn: func(shopID string, page, limit int) (sales.Page, error) {
			assert.Equal(t, "shop-1", shopID)
			assert.Equal(t, 2, page)
			assert.Equal(t, 5, limit)
			return sales.Page{
				Sales:       []*sales.Sale{sales.NewSale(shopID)},
				Total:       11,
				Pages:       3,
				CurrentPage: 2,
				Limit:       5,
			}, nil
		},
	}
	r := setupSaleRouter(svc, "shop-1")

	w := doRequest(r, http.MethodGet, "/api/v1/sales?page=2&limit=5", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	meta := body["metadata"].(map[string]any)
	assert.Equal(t, float64(11), meta["total"])
	assert.Equal(t, float64(3), meta["pages"])
	assert.Equal(t, float64(2), meta["currentPage"])
	assert.Equal(t, float64(5), meta["limit"])
}

func TestSaleListDefaultsWhenUnpaged(t *testing.T) {
	svc := &stubSaleService{
		listFn: func(shopID string, page, limit int) (sales.Page, error) {
			assert.Equal(t, sales.DefaultPage, page)
			assert.Equal(t, sales.DefaultLimit, limit)
			return sales.Page{CurrentPage: page, Limit: limit}, nil
		},
	}
	r := setupSaleRouter(svc, "shop-1")

	w := doRequest(r, http.MethodGet, "/api/v1/sales", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSaleGetInvalidID(t *testing.T) {
	svc := &stubSaleService{}
	r := setupSaleRouter(svc, "shop-1")

	w := doRequest(r, http.MethodGet, "/api/v1/sales/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestSaleGetNotFound(t *testing.T) {
	svc := &stubSaleService{
		getFn: func(saleID id.ID, shopID string) (*sales.Sale, error) {
			return nil, apperror.NewNotFound("sale", saleID.String())
		},
	}
	r := setupSaleRouter(svc, "shop-1")

	w := doRequest(r, http.MethodGet, "/api/v1/sales/"+id.New().String(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "sale not found", body["message"])
}

func TestSaleCreateParsesTextualDate(t *testing.T) {
	var captured *sales.Sale
	svc := &stubSaleService{
		createFn: func(sale *sales.Sale) error {
			captured = sale
			return nil
		},
	}
	r := setupSaleRouter(svc, "shop-1")

	w := doRequest(r, http.MethodPost, "/api/v1/sales",
		`{"buyer":"b1","saleDate":"2024-01-15","amount":"10.50","quantity":2}`)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "shop-1", captured.ShopID, "shop comes from scope, not body")
	assert.Equal(t, 15, captured.SaleDate.Day())
	assert.True(t, captured.Amount.Equal(decimal.RequireFromString("10.50")))

	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["id"], "external representation exposes id")
}

func TestSaleCreateValidationError(t *testing.T) {
	svc := &stubSaleService{
		createFn: func(sale *sales.Sale) error {
			return apperror.NewValidation("amount must not be negative")
		},
	}
	r := setupSaleRouter(svc, "shop-1")

	w := doRequest(r, http.MethodPost, "/api/v1/sales", `{"amount":"-1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaleUpdateAppliesPartialPayload(t *testing.T) {
	existing := sales.NewSale("shop-1")
	existing.ProductName = "widget"
	existing.Quantity = 1

	var updated *sales.Sale
	svc := &stubSaleService{
		getFn: func(saleID id.ID, shopID string) (*sales.Sale, error) {
			return existing, nil
		},
		updateFn: func(sale *sales.Sale) error {
			updated = sale
			return nil
		},
	}
	r := setupSaleRouter(svc, "shop-1")

	w := doRequest(r, http.MethodPatch, "/api/v1/sales/"+existing.ID.String(), `{"quantity":9}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, updated)
	assert.Equal(t, 9, updated.Quantity)
	assert.Equal(t, "widget", updated.ProductName, "absent fields stay untouched")
}

func TestSaleDeleteSuccessIsBareMessage(t *testing.T) {
	svc := &stubSaleService{
		deleteFn: func(saleID id.ID, shopID string) error { return nil },
	}
	r := setupSaleRouter(svc, "shop-1")

	w := doRequest(r, http.MethodDelete, "/api/v1/sales/"+id.New().String(), "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "sale deleted successfully", body["message"])
	assert.NotContains(t, body, "success", "delete bypasses the envelope")
}

func TestSaleDeleteAnyFailureIs404(t *testing.T) {
	// Even a non-not-found failure answers 404 on this endpoint.
	svc := &stubSaleService{
		deleteFn: func(saleID id.ID, shopID string) error {
			return apperror.NewInternal(assert.AnError)
		},
	}
	r := setupSaleRouter(svc, "shop-1")

	w := doRequest(r, http.MethodDelete, "/api/v1/sales/"+id.New().String(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body, "message")
}

func TestSaleDeleteMissingIDShortCircuits(t *testing.T) {
	svc := &stubSaleService{}
	r := setupSaleRouter(svc, "shop-1")

	w := doRequest(r, http.MethodDelete, "/api/v1/sales/bogus", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestSaleSearchReturnsBareArray(t *testing.T) {
	svc := &stubSaleService{
		searchFn: func(shopID string, filter sales.SearchFilter) ([]*sales.Sale, error) {
			assert.Equal(t, "Jane", filter.BuyerName)
			return []*sales.Sale{sales.NewSale(shopID)}, nil
		},
	}
	r := setupSaleRouter(svc, "shop-1")

	w := doRequest(r, http.MethodGet, "/api/v1/sales/search?buyerName=Jane", "")

	require.Equal(t, http.StatusOK, w.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items), "search answers a bare array")
	assert.Len(t, items, 1)
}

func TestSaleSearchBadDate(t *testing.T) {
	svc := &stubSaleService{}
	r := setupSaleRouter(svc, "shop-1")

	w := doRequest(r, http.MethodGet, "/api/v1/sales/search?startDate=whenever", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestSaleSearchNotCapturedAsID(t *testing.T) {
	svc := &stubSaleService{
		searchFn: func(shopID string, filter sales.SearchFilter) ([]*sales.Sale, error) {
			return nil, nil
		},
	}
	r := setupSaleRouter(svc, "shop-1")

	w := doRequest(r, http.MethodGet, "/api/v1/sales/search", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
