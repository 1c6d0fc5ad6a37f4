package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/YOBOUEARNAUD/e-commerce/internal/model"
	"github.com/YOBOUEARNAUD/e-commerce/internal/repository"
)

type mockCartStore struct {
	m     sync.RWMutex
	carts map[string]*model.Cart
	err   error
}

func newMockCartStore() *mockCartStore {
	return &mockCartStore{carts: map[string]*model.Cart{}}
}

func (s *mockCartStore) Get(_ context.Context, userID string) (*model.Cart, error) {
	s.m.RLock()
	defer s.m.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	if cart, ok := s.carts[userID]; ok {
		// hand back a copy so callers cannot mutate stored state in place
		cp := *cart
		cp.Items = append([]model.CartLine{}, cart.Items...)
		return &cp, nil
	}
	return &model.Cart{UserID: userID, Items: []model.CartLine{}}, nil
}

func (s *mockCartStore) Put(_ context.Context, cart *model.Cart) error {
	s.m.Lock()
	defer s.m.Unlock()
	if s.err != nil {
		return s.err
	}
	cp := *cart
	cp.Items = append([]model.CartLine{}, cart.Items...)
	s.carts[cart.UserID] = &cp
	return nil
}

func (s *mockCartStore) Delete(_ context.Context, userID string) error {
	s.m.Lock()
	defer s.m.Unlock()
	if s.err != nil {
		return s.err
	}
	delete(s.carts, userID)
	return nil
}

type mockProductRepo struct {
	m        sync.RWMutex
	products map[string]*model.Product
}

func newMockProductRepo(products ...*model.Product) *mockProductRepo {
	r := &mockProductRepo{products: map[string]*model.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *mockProductRepo) List(context.Context, repository.ProductFilter) ([]model.Product, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	out := []model.Product{}
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *mockProductRepo) GetByID(_ context.Context, id string) (*model.Product, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repository.ErrProductNotFound
}

func (r *mockProductRepo) Create(_ context.Context, p *model.Product) error {
	r.m.Lock()
	defer r.m.Unlock()
	r.products[p.ID] = p
	return nil
}

func (r *mockProductRepo) Update(_ context.Context, p *model.Product) error {
	r.m.Lock()
	defer r.m.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return repository.ErrProductNotFound
	}
	r.products[p.ID] = p
	return nil
}

func (r *mockProductRepo) Delete(_ context.Context, id string) error {
	r.m.Lock()
	defer r.m.Unlock()
	if _, ok := r.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

type mockOrderRepo struct {
	m      sync.RWMutex
	orders map[string]*model.Order
	err    error
	nextID int
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: map[string]*model.Order{}}
}

func (r *mockOrderRepo) Create(_ context.Context, order *model.Order) error {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return r.err
	}
	if order.ID == "" {
		r.nextID++
		order.ID = fmt.Sprintf("order-%d", r.nextID)
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *mockOrderRepo) GetByID(_ context.Context, id string) (*model.Order, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	if o, ok := r.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, repository.ErrOrderNotFound
}

func (r *mockOrderRepo) ListByUser(_ context.Context, userID string) ([]model.Order, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	out := []model.Order{}
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *mockOrderRepo) ListAll(context.Context) ([]model.Order, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	out := []model.Order{}
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *mockOrderRepo) UpdateStatus(_ context.Context, id string, status model.OrderStatus) error {
	r.m.Lock()
	defer r.m.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func (r *mockOrderRepo) Delete(_ context.Context, id string) error {
	r.m.Lock()
	defer r.m.Unlock()
	if _, ok := r.orders[id]; !ok {
		return repository.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

type mockUserRepo struct {
	m     sync.RWMutex
	users map[string]*model.User // keyed by id
}

func newMockUserRepo(users ...*model.User) *mockUserRepo {
	r := &mockUserRepo{users: map[string]*model.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *mockUserRepo) Create(_ context.Context, user *model.User) error {
	r.m.Lock()
	defer r.m.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrUserNotFound
}

func (r *mockUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockUserRepo) CreateIndexes(context.Context) error { return nil }

func (r *mockUserRepo) UpdateDetails(_ context.Context, id, username, email string) (*model.User, error) {
	r.m.Lock()
	defer r.m.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	u.Username = username
	u.Email = email
	cp := *u
	return &cp, nil
}
