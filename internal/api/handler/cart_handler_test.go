package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/api/metrics"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/service"
)

func newCartContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder, *service.Cart) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	cart := service.NewCart()
	c.Set("cart", cart)
	return c, rec, cart
}

func decodeCartView(t *testing.T, rec *httptest.ResponseRecorder) domain.CartView {
	t.Helper()
	var view domain.CartView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return view
}

func TestCartHandler_Add_Success(t *testing.T) {
	c, rec, cart := newCartContext(t, http.MethodPost, "/cart/items",
		`{"product_id":"11","name":"Oak Chair","price":120.5,"image":"chair.jpg"}`)
	handler := NewCartHandler()

	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	view := decodeCartView(t, rec)
	if view.ItemCount != 1 || view.Total != 120.5 {
		t.Fatalf("unexpected view: %+v", view)
	}
	if cart.ItemCount() != 1 {
		t.Fatalf("cart not updated")
	}
}

func TestCartHandler_Add_MergesDuplicates(t *testing.T) {
	handler := NewCartHandler()

	var rec *httptest.ResponseRecorder
	e := echo.New()
	e.Validator = NewValidator()
	cart := service.NewCart()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/cart/items",
			strings.NewReader(`{"product_id":"11","name":"Oak Chair","price":120.5}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec = httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("cart", cart)
		if err := handler.Add(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
	}

	view := decodeCartView(t, rec)
	if len(view.Items) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(view.Items))
	}
	if view.ItemCount != 2 || view.Total != 241 {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestCartHandler_Add_RejectsInvalidPayload(t *testing.T) {
	c, _, cart := newCartContext(t, http.MethodPost, "/cart/items",
		`{"product_id":"","price":-1}`)
	handler := NewCartHandler()

	err := handler.Add(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if cart.ItemCount() != 0 {
		t.Fatalf("cart should stay empty on bad input")
	}
}

func TestCartHandler_UpdateQuantity_ZeroRemoves(t *testing.T) {
	c, rec, cart := newCartContext(t, http.MethodPut, "/cart/items/11", `{"quantity":0}`)
	c.SetParamNames("id")
	c.SetParamValues("11")
	cart.Add(domain.CartProduct{ID: "11", Name: "Oak Chair", Price: 120.5})
	handler := NewCartHandler()

	updatesBefore := testutil.ToFloat64(metrics.CartOperationsTotal.WithLabelValues("update"))

	if err := handler.UpdateQuantity(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	view := decodeCartView(t, rec)
	if len(view.Items) != 0 || view.ItemCount != 0 {
		t.Fatalf("expected empty cart, got %+v", view)
	}
	if got := testutil.ToFloat64(metrics.CartOperationsTotal.WithLabelValues("update")) - updatesBefore; got != 1 {
		t.Fatalf("expected one cart operation with op %q, got %v", "update", got)
	}
}

func TestCartHandler_Remove_AbsentProductIsNoop(t *testing.T) {
	c, rec, cart := newCartContext(t, http.MethodDelete, "/cart/items/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	cart.Add(domain.CartProduct{ID: "11", Name: "Oak Chair", Price: 120.5})
	handler := NewCartHandler()

	if err := handler.Remove(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	view := decodeCartView(t, rec)
	if view.ItemCount != 1 {
		t.Fatalf("existing line should survive, got %+v", view)
	}
}

func TestCartHandler_Clear(t *testing.T) {
	c, rec, cart := newCartContext(t, http.MethodDelete, "/cart", "")
	cart.Add(domain.CartProduct{ID: "11", Name: "Oak Chair", Price: 120.5})
	cart.Add(domain.CartProduct{ID: "12", Name: "Teak Table", Price: 300})
	handler := NewCartHandler()

	if err := handler.Clear(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	view := decodeCartView(t, rec)
	if view.ItemCount != 0 || view.Total != 0 {
		t.Fatalf("expected cleared cart, got %+v", view)
	}
}
