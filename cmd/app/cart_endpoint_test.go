package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/YOBOUEARNAUD/e-commerce/internal/middleware"
	"github.com/YOBOUEARNAUD/e-commerce/internal/model"
	"github.com/YOBOUEARNAUD/e-commerce/internal/repository"
	"github.com/YOBOUEARNAUD/e-commerce/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCartStore struct {
	carts map[string]*model.Cart
}

func (s *memCartStore) Get(_ context.Context, userID string) (*model.Cart, error) {
	if c, ok := s.carts[userID]; ok {
		cp := *c
		cp.Items = append([]model.CartLine{}, c.Items...)
		return &cp, nil
	}
	return &model.Cart{UserID: userID, Items: []model.CartLine{}}, nil
}

func (s *memCartStore) Put(_ context.Context, cart *model.Cart) error {
	cp := *cart
	cp.Items = append([]model.CartLine{}, cart.Items...)
	s.carts[cart.UserID] = &cp
	return nil
}

func (s *memCartStore) Delete(_ context.Context, userID string) error {
	delete(s.carts, userID)
	return nil
}

type memProductRepo struct {
	products map[string]*model.Product
}

func (r *memProductRepo) List(context.Context, repository.ProductFilter) ([]model.Product, error) {
	out := []model.Product{}
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*model.Product, error) {
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repository.ErrProductNotFound
}

func (r *memProductRepo) Create(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func newCartTestServer(t *testing.T) (*echo.Echo, *memCartStore, string) {
	t.Helper()
	store := &memCartStore{carts: map[string]*model.Cart{}}
	products := &memProductRepo{products: map[string]*model.Product{
		"p1": {ID: "p1", Name: "product p1", Price: 1000, Stock: 10},
	}}
	tokens := middleware.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.GenerateToken("u1")
	require.NoError(t, err)

	e := echo.New()
	registerCartRoutes(e.Group("/api"), services.NewCartService(store, products), tokens)
	return e, store, token
}

func postCart(e *echo.Echo, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAddOmittedQuantityDefaultsToOne(t *testing.T) {
	e, store, token := newCartTestServer(t)

	rec := postCart(e, token, `{"productId":"p1"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	cart := store.carts["u1"]
	require.NotNil(t, cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestAddExplicitZeroQuantityRejected(t *testing.T) {
	e, store, token := newCartTestServer(t)

	rec := postCart(e, token, `{"productId":"p1","quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.carts)
}

func TestAddNegativeQuantityRejected(t *testing.T) {
	e, store, token := newCartTestServer(t)

	rec := postCart(e, token, `{"productId":"p1","quantity":-2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.carts)
}
