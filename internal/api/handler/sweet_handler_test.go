package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

type stubSweetService struct {
	createFn func(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error)
	listFn   func(ctx context.Context) ([]*domain.Sweet, error)
}

func (s *stubSweetService) Create(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
	return s.createFn(ctx, input)
}

func (s *stubSweetService) List(ctx context.Context) ([]*domain.Sweet, error) {
	return s.listFn(ctx)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("account_id", "acc-1")
	c.Set("role", domain.RoleUser)
	return c
}

func TestSweetHandler_Create_Success(t *testing.T) {
	e := newEcho()
	stub := &stubSweetService{
		createFn: func(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
			if input.Name != "Ladoo" || input.Category != "Indian" || input.Price != 5.0 || input.Quantity != 10 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Sweet{
				ID:        "sweet-1",
				Name:      input.Name,
				Category:  input.Category,
				Price:     input.Price,
				Quantity:  input.Quantity,
				CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	h := NewSweetHandler(stub)

	body := strings.NewReader(`{"name":"Ladoo","category":"Indian","price":5.0,"quantity":10}`)
	req := httptest.NewRequest(http.MethodPost, "/api/sweets", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "sweet-1" || resp["quantity"] != float64(10) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestSweetHandler_Create_NoClaims(t *testing.T) {
	e := newEcho()
	stub := &stubSweetService{
		createFn: func(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewSweetHandler(stub)

	body := strings.NewReader(`{"name":"Ladoo","category":"Indian","price":5.0,"quantity":10}`)
	req := httptest.NewRequest(http.MethodPost, "/api/sweets", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestSweetHandler_Create_Validation(t *testing.T) {
	e := newEcho()
	stub := &stubSweetService{
		createFn: func(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewSweetHandler(stub)

	cases := []string{
		`{"category":"Indian","price":5.0,"quantity":10}`,
		`{"name":"Ladoo","price":5.0,"quantity":10}`,
		`{"name":"Ladoo","category":"Indian","price":-1,"quantity":10}`,
		`{"name":"Ladoo","category":"Indian","price":5.0,"quantity":-2}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/sweets", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := authedContext(e, req, rec)

		err := h.Create(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %q, got %v", body, err)
		}
	}
}

func TestSweetHandler_List(t *testing.T) {
	e := newEcho()
	stub := &stubSweetService{
		listFn: func(ctx context.Context) ([]*domain.Sweet, error) {
			return []*domain.Sweet{
				{ID: "sweet-1", Name: "Ladoo", Category: "Indian", Price: 5, Quantity: 10},
				{ID: "sweet-2", Name: "Barfi", Category: "Indian", Price: 3.5, Quantity: 4},
			}, nil
		},
	}
	h := NewSweetHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/sweets", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["id"] != "sweet-1" || resp[1]["name"] != "Barfi" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestSweetHandler_List_Empty(t *testing.T) {
	e := newEcho()
	stub := &stubSweetService{
		listFn: func(ctx context.Context) ([]*domain.Sweet, error) {
			return nil, nil
		},
	}
	h := NewSweetHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/sweets", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %q", rec.Body.String())
	}
}
