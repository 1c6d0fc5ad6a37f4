package services

import (
	"context"
	"time"

	"github.com/YOBOUEARNAUD/e-commerce/internal/model"
	"github.com/YOBOUEARNAUD/e-commerce/internal/repository"
)

// CartService is the authoritative view of what a user intends to buy. Every
// mutation is written through the store before returning, so the cart
// survives restarts exactly as left.
type CartService struct {
	Store    repository.CartStore
	Products repository.ProductRepository
}

func NewCartService(store repository.CartStore, products repository.ProductRepository) *CartService {
	return &CartService{Store: store, Products: products}
}

// Get returns the cart with its total and item count. A first access or an
// unreadable persisted state both yield an empty cart.
func (s *CartService) Get(ctx context.Context, userID string) (*model.CartResponse, error) {
	cart, err := s.Store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.CartResponse{
		Items:     cart.Items,
		Total:     model.CalculateTotal(cart.Items),
		ItemCount: model.CountItems(cart.Items),
	}, nil
}

// Add puts quantity units of a product into the cart. An existing line for
// the same product is incremented, not duplicated. Non-positive quantities
// are rejected outright.
func (s *CartService) Add(ctx context.Context, userID, productID string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	product, err := s.Products.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	cart, err := s.Store.Get(ctx, userID)
	if err != nil {
		return err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			if cart.Items[i].Quantity+quantity > product.Stock {
				return ErrInsufficientStock
			}
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		if quantity > product.Stock {
			return ErrInsufficientStock
		}
		cart.Items = append(cart.Items, model.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
			Image:     product.Image,
		})
	}

	return s.persist(ctx, cart)
}

// UpdateQuantity sets a line to exactly quantity. Zero or negative behaves as
// Remove.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, userID, productID)
	}

	product, err := s.Products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if quantity > product.Stock {
		return ErrInsufficientStock
	}

	cart, err := s.Store.Get(ctx, userID)
	if err != nil {
		return err
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			return s.persist(ctx, cart)
		}
	}
	// no line for this product; nothing to update
	return nil
}

// Remove deletes the line for productID. Removing an absent line is a no-op.
func (s *CartService) Remove(ctx context.Context, userID, productID string) error {
	cart, err := s.Store.Get(ctx, userID)
	if err != nil {
		return err
	}

	kept := cart.Items[:0]
	for _, it := range cart.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(cart.Items) {
		return nil
	}
	cart.Items = kept

	return s.persist(ctx, cart)
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.Store.Delete(ctx, userID)
}

func (s *CartService) persist(ctx context.Context, cart *model.Cart) error {
	now := time.Now()
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now
	return s.Store.Put(ctx, cart)
}
