package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/domain"
)

func TestCreateProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := doRequest(t, newStubs().router(), http.MethodPost, "/products", `{"name":"Mug","price":9.99}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var got domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.ID == 0 || got.Name != "Mug" || got.Price != 9.99 {
		t.Fatalf("unexpected record %+v", got)
	}
}

func TestCreateProductMissingPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := doRequest(t, newStubs().router(), http.MethodPost, "/products", `{"name":"Mug"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if _, ok := body["price"]; !ok {
		t.Fatalf("expected error keyed by price, got %v", body)
	}
}

func TestCreateProductNegativePrice(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := doRequest(t, newStubs().router(), http.MethodPost, "/products", `{"name":"Mug","price":-1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative price, got %d", rec.Code)
	}
}

func TestCreateProductZeroPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := doRequest(t, newStubs().router(), http.MethodPost, "/products", `{"name":"Freebie","price":0}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for zero price, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetProductNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := doRequest(t, newStubs().router(), http.MethodGet, "/product/42", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestListProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stubs := newStubs()
	stubs.products.list = []domain.Product{{ID: 1, Name: "Mug", Price: 9.99}}
	rec := doRequest(t, stubs.router(), http.MethodGet, "/products", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Mug" {
		t.Fatalf("unexpected list %+v", got)
	}
}

func TestDeleteProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := doRequest(t, newStubs().router(), http.MethodDelete, "/product/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestDeleteProductNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stubs := newStubs()
	stubs.products.deleteErr = domain.ErrNotFound
	rec := doRequest(t, stubs.router(), http.MethodDelete, "/product/42", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
