package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storekit/catalog-api/internal/api/middleware"
	"github.com/storekit/catalog-api/internal/core/domain"
	"github.com/storekit/catalog-api/internal/core/ports"
)

type stubProductService struct {
	createFn func(ctx context.Context, ownerID string, input ports.CreateProductInput) (*domain.Product, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	listFn   func(ctx context.Context) ([]*domain.Product, error)
	searchFn func(ctx context.Context, name string) ([]*domain.Product, error)
	updateFn func(ctx context.Context, id string, actor ports.Actor, input ports.UpdateProductInput) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string, actor ports.Actor) error
}

func (s *stubProductService) Create(ctx context.Context, ownerID string, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, ownerID, input)
}

func (s *stubProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) SearchByName(ctx context.Context, name string) ([]*domain.Product, error) {
	return s.searchFn(ctx, name)
}

func (s *stubProductService) Update(ctx context.Context, id string, actor ports.Actor, input ports.UpdateProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, actor, input)
}

func (s *stubProductService) Delete(ctx context.Context, id string, actor ports.Actor) error {
	return s.deleteFn(ctx, id, actor)
}

func newProductContext(t *testing.T, method, path, body string, pathParam ...string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(pathParam) == 2 {
		c.SetParamNames(pathParam[0])
		c.SetParamValues(pathParam[1])
	}
	return c, rec
}

func asActor(c echo.Context, userID, role string) {
	c.Set(middleware.CtxUserID, userID)
	c.Set(middleware.CtxRole, role)
}

func TestProductHandler_Create_Success(t *testing.T) {
	stub := &stubProductService{
		createFn: func(_ context.Context, ownerID string, input ports.CreateProductInput) (*domain.Product, error) {
			if ownerID != "user_1" {
				t.Fatalf("unexpected owner: %s", ownerID)
			}
			return &domain.Product{
				ID:      "prod_1",
				Name:    input.Name,
				Price:   input.Price,
				Stock:   input.Stock,
				OwnerID: ownerID,
			}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodPost, "/products",
		`{"name":"Desk Lamp","price":19.99,"stock":5}`)
	asActor(c, "user_1", domain.RoleCustomer)

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
	if resp["name"] != "Desk Lamp" || resp["owner_id"] != "user_1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp["in_stock"] != true {
		t.Fatalf("expected in_stock for stock=5, got %v", resp["in_stock"])
	}
}

func TestProductHandler_Create_Unauthenticated(t *testing.T) {
	h := NewProductHandler(&stubProductService{})

	c, _ := newProductContext(t, http.MethodPost, "/products",
		`{"name":"Desk Lamp","price":19.99}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestProductHandler_Create_ValidationFailure(t *testing.T) {
	h := NewProductHandler(&stubProductService{
		createFn: func(context.Context, string, ports.CreateProductInput) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	// name too short, price missing
	c, _ := newProductContext(t, http.MethodPost, "/products", `{"name":"ab"}`)
	asActor(c, "user_1", domain.RoleCustomer)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	h := NewProductHandler(&stubProductService{
		getFn: func(context.Context, string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	})

	c, _ := newProductContext(t, http.MethodGet, "/products/prod_404", "", "id", "prod_404")

	if err := h.Get(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_List(t *testing.T) {
	h := NewProductHandler(&stubProductService{
		listFn: func(context.Context) ([]*domain.Product, error) {
			return []*domain.Product{
				{ID: "prod_1", Name: "Desk Lamp"},
				{ID: "prod_2", Name: "Mouse"},
			}, nil
		},
	})

	c, rec := newProductContext(t, http.MethodGet, "/products", "")

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
	if len(resp) != 2 {
		t.Fatalf("expected 2 products, got %d", len(resp))
	}
}

func TestProductHandler_Search_PassesName(t *testing.T) {
	h := NewProductHandler(&stubProductService{
		searchFn: func(_ context.Context, name string) ([]*domain.Product, error) {
			if name != "lamp" {
				t.Fatalf("unexpected search term: %s", name)
			}
			return nil, nil
		},
	})

	c, rec := newProductContext(t, http.MethodGet, "/products/search/lamp", "", "name", "lamp")

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Update_Forbidden(t *testing.T) {
	h := NewProductHandler(&stubProductService{
		updateFn: func(context.Context, string, ports.Actor, ports.UpdateProductInput) (*domain.Product, error) {
			return nil, domain.ErrForbidden
		},
	})

	c, _ := newProductContext(t, http.MethodPut, "/products/prod_1",
		`{"name":"Desk Lamp","price":25,"stock":3}`, "id", "prod_1")
	asActor(c, "user_2", domain.RoleCustomer)

	if err := h.Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestProductHandler_Patch_PartialFields(t *testing.T) {
	h := NewProductHandler(&stubProductService{
		updateFn: func(_ context.Context, id string, actor ports.Actor, input ports.UpdateProductInput) (*domain.Product, error) {
			if input.Price == nil || *input.Price != 42 {
				t.Fatalf("expected only price set, got %+v", input)
			}
			if input.Name != nil || input.Stock != nil {
				t.Fatalf("unexpected fields set: %+v", input)
			}
			return &domain.Product{ID: id, Name: "Desk Lamp", Price: 42}, nil
		},
	})

	c, rec := newProductContext(t, http.MethodPatch, "/products/prod_1",
		`{"price":42}`, "id", "prod_1")
	asActor(c, "user_1", domain.RoleCustomer)

	if err := h.Patch(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Patch_EmptyBody(t *testing.T) {
	h := NewProductHandler(&stubProductService{
		updateFn: func(context.Context, string, ports.Actor, ports.UpdateProductInput) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	c, _ := newProductContext(t, http.MethodPatch, "/products/prod_1", `{}`, "id", "prod_1")
	asActor(c, "user_1", domain.RoleCustomer)

	err := h.Patch(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestProductHandler_Delete_Success(t *testing.T) {
	var deleted string
	h := NewProductHandler(&stubProductService{
		deleteFn: func(_ context.Context, id string, actor ports.Actor) error {
			deleted = id
			if actor.UserID != "user_1" {
				t.Fatalf("unexpected actor: %+v", actor)
			}
			return nil
		},
	})

	c, rec := newProductContext(t, http.MethodDelete, "/products/prod_1", "", "id", "prod_1")
	asActor(c, "user_1", domain.RoleCustomer)

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "prod_1" {
		t.Fatalf("expected prod_1 deleted, got %s", deleted)
	}
}
